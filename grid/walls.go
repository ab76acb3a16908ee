package grid

import (
	"fmt"
	"math/rand"
	"time"
)

// Wall percentage bounds accepted by RandomizeWalls.
const (
	minWallPercent = 0
	maxWallPercent = 100
)

// WallOption configures RandomizeWalls.
type WallOption func(*wallConfig)

// wallConfig holds the resolved knobs for one RandomizeWalls call.
type wallConfig struct {
	rng *rand.Rand
}

// WithSeed makes wall generation reproducible: the same seed on the same
// grid size yields the same walls.
func WithSeed(seed int64) WallOption {
	return func(c *wallConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand draws from r instead of a fresh clock-seeded source.
// A nil r is ignored.
func WithRand(r *rand.Rand) WallOption {
	return func(c *wallConfig) {
		if r != nil {
			c.rng = r
		}
	}
}

// RandomizeWalls marks each cell a wall independently with probability
// percent/100, visiting cells in row-major order. Cells that are already
// walls stay walls. Nothing guarantees that open cells remain connected.
//
// Returns ErrInvalidPercent (and changes nothing) if percent is outside [0,100].
// Complexity: O(W×H).
func (g *Grid) RandomizeWalls(percent int, opts ...WallOption) error {
	if percent < minWallPercent || percent > maxWallPercent {
		return fmt.Errorf("%w: %d (want %d..%d)", ErrInvalidPercent, percent, minWallPercent, maxWallPercent)
	}
	cfg := wallConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	for i := range g.cells {
		if cfg.rng.Intn(maxWallPercent) < percent {
			g.cells[i].IsWall = true
		}
	}

	return nil
}

// WallCount returns the number of wall cells.
func (g *Grid) WallCount() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].IsWall {
			n++
		}
	}

	return n
}
