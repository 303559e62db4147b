package engine

import (
	"fmt"
	"math/rand"
)

// SpawnPolicy selects the lane and type of new actors.
type SpawnPolicy int

const (
	// SpawnRandom picks a random lane and the type of another random lane.
	SpawnRandom SpawnPolicy = iota
	// SpawnCycle walks lanes in order, rotating types by one every full pass.
	SpawnCycle
)

// ParseSpawnPolicy resolves the policy names used in configuration.
func ParseSpawnPolicy(s string) (SpawnPolicy, error) {
	switch s {
	case "random", "":
		return SpawnRandom, nil
	case "cycle":
		return SpawnCycle, nil
	default:
		return 0, fmt.Errorf("unknown spawn policy %q", s)
	}
}

// Spawner chooses lane/type pairs. Given the same seed it yields the same
// sequence.
type Spawner struct {
	policy SpawnPolicy
	rng    *rand.Rand
	count  int
}

// NewSpawner creates a spawner for the given policy and seed.
func NewSpawner(policy SpawnPolicy, seed int64) *Spawner {
	return &Spawner{
		policy: policy,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Next returns the lane index and token type for the next actor.
func (sp *Spawner) Next(tracks []Track) (int, TokenType) {
	n := len(tracks)
	k := sp.count
	sp.count++

	if sp.policy == SpawnCycle {
		lane := k % n
		return lane, tracks[(k+k/n)%n].Type
	}

	lane := sp.rng.Intn(n)
	typ := tracks[sp.rng.Intn(n)].Type
	return lane, typ
}
