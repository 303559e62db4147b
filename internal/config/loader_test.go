package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultLanesConfig()) {
		t.Errorf("embedded defaults drifted from DefaultLanesConfig():\n got  %+v\n want %+v", cfg, DefaultLanesConfig())
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lanes.yaml")
	data := []byte("tracks:\n  count: 3\nspawn:\n  policy: cycle\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Tracks.Count != 3 {
		t.Errorf("tracks.count = %d, expected 3", cfg.Tracks.Count)
	}
	if cfg.Spawn.Policy != PolicyCycle {
		t.Errorf("spawn.policy = %q, expected cycle", cfg.Spawn.Policy)
	}
	// Untouched keys keep their defaults
	if cfg.Tracks.HalfWidth != DefaultLanesConfig().Tracks.HalfWidth {
		t.Errorf("tracks.half_width = %f, expected default", cfg.Tracks.HalfWidth)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist, got %v", err)
	}
}

func TestLoadCustomPathInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lanes.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  damping: 1.5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*LanesConfig)
	}{
		{"zero tracks", func(c *LanesConfig) { c.Tracks.Count = 0 }},
		{"tracks wider than field", func(c *LanesConfig) { c.Tracks.Count = 10 }},
		{"negative dead-zone", func(c *LanesConfig) { c.Tracks.DistanceDelta = -1 }},
		{"inset swallows actor", func(c *LanesConfig) { c.Actor.Inset = 20 }},
		{"unknown policy", func(c *LanesConfig) { c.Spawn.Policy = "lottery" }},
		{"zero score step", func(c *LanesConfig) { c.Score.Step = 0 }},
		{"zero action distance", func(c *LanesConfig) { c.Action.Distance = 0 }},
	}

	if err := DefaultLanesConfig().Validate(); err != nil {
		t.Fatalf("defaults should be valid: %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultLanesConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultLanesConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultLanesConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard initial level = %f, expected 0.7", cfg.Difficulty.InitialLevel)
	}
	if cfg.Spawn.IntervalMS >= DefaultLanesConfig().Spawn.IntervalMS {
		t.Error("hard preset should spawn more often")
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset("easy"); !ok || p != DifficultyEasy {
		t.Errorf("ParsePreset(easy) = %q, %v", p, ok)
	}
	if _, ok := ParsePreset("brutal"); ok {
		t.Error("unknown preset should not parse")
	}
}

func TestMarshalRoundTripsThroughParse(t *testing.T) {
	data, err := Marshal(DefaultLanesConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if _, err := Parse(data); err != nil {
		t.Errorf("marshalled defaults do not parse: %v", err)
	}
}
