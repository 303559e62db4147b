package lanes

import (
	"testing"
	"time"

	"github.com/vovakirdan/lanefall/internal/config"
	"github.com/vovakirdan/lanefall/internal/games/lanes/engine"
)

func TestParamsFromConfig(t *testing.T) {
	cfg := config.DefaultLanesConfig()
	cfg.Tracks.Types = []string{"blue", "red"}
	cfg.Spawn.Policy = config.PolicyCycle

	p, err := ParamsFromConfig(cfg, Lanes, 9)
	if err != nil {
		t.Fatalf("ParamsFromConfig() error: %v", err)
	}

	if p.Field.Left != -cfg.Field.Width/2 || p.Field.Bottom != cfg.Field.Height/2 {
		t.Errorf("field %+v should be centered on the origin", p.Field)
	}
	if p.DistanceDelta != cfg.Tracks.DistanceDelta {
		t.Errorf("dead-zone = %f, expected %f", p.DistanceDelta, cfg.Tracks.DistanceDelta)
	}
	if len(p.TrackTypes) != 2 || p.TrackTypes[0] != engine.TokenBlue {
		t.Errorf("track types = %v", p.TrackTypes)
	}
	if p.SpawnPolicy != engine.SpawnCycle || p.Seed != 9 {
		t.Errorf("policy = %d seed = %d", p.SpawnPolicy, p.Seed)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("converted params invalid: %v", err)
	}
}

func TestParamsFromConfigClassicHasNoDeadZone(t *testing.T) {
	p, err := ParamsFromConfig(config.DefaultLanesConfig(), Classic, 0)
	if err != nil {
		t.Fatal(err)
	}
	if p.DistanceDelta != 0 {
		t.Errorf("classic dead-zone = %f, expected 0", p.DistanceDelta)
	}
}

func TestParamsFromConfigRejectsUnknownType(t *testing.T) {
	cfg := config.DefaultLanesConfig()
	cfg.Tracks.Types = []string{"red", "purple"}

	if _, err := ParamsFromConfig(cfg, Lanes, 0); err == nil {
		t.Error("expected error for unknown token type")
	}
}

func TestPacerFollowsDifficulty(t *testing.T) {
	cfg := config.DefaultLanesConfig()
	pacer := NewPacer(cfg)

	base := pacer.SpawnInterval(0, 0)
	if base != cfg.Spawn.Interval() {
		t.Errorf("interval at score 0 = %v, expected %v", base, cfg.Spawn.Interval())
	}

	hard := pacer.SpawnInterval(cfg.Difficulty.Progression.MaxAt, 0)
	if hard >= base || hard < cfg.Spawn.MinInterval() {
		t.Errorf("interval at max difficulty = %v, expected in [%v, %v)", hard, cfg.Spawn.MinInterval(), base)
	}

	if g := pacer.Gravity(cfg.Difficulty.Progression.MaxAt, 0); g <= cfg.Physics.Gravity {
		t.Errorf("gravity at max difficulty = %f, expected above %f", g, cfg.Physics.Gravity)
	}

	cfg.Difficulty.Enabled = false
	fixed := NewPacer(cfg)
	if fixed.SpawnInterval(1000, 0) != time.Duration(cfg.Spawn.IntervalMS)*time.Millisecond {
		t.Error("disabled difficulty should keep the base interval")
	}
}
