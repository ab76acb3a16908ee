package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"

	"github.com/katalvlaran/gridpath/grid"
)

// errNoOpenCell is returned when endpoints must be picked but every cell is a wall.
var errNoOpenCell = errors.New("no open cell to place an endpoint")

// buildGrid loads cfg.mapPath, or generates a cfg.width×cfg.height grid with
// cfg.walls percent walls drawn from rng.
func buildGrid(cfg config, rng *rand.Rand) (*grid.Grid, error) {
	if cfg.mapPath != "" {
		f, err := os.Open(cfg.mapPath)
		if err != nil {
			return nil, fmt.Errorf("open map: %w", err)
		}
		defer f.Close()

		g, err := grid.Read(f)
		if err != nil {
			return nil, fmt.Errorf("map %s: %w", cfg.mapPath, err)
		}

		return g, nil
	}

	g, err := grid.New(cfg.width, cfg.height)
	if err != nil {
		return nil, err
	}
	if err := g.RandomizeWalls(cfg.walls, grid.WithRand(rng)); err != nil {
		return nil, err
	}

	return g, nil
}

// pickEndpoints fills in whichever of cfg.start and cfg.dest is unset with a
// random open cell. A missing endpoint is drawn from the region of the given
// one, or from the largest region when neither is given, so the pair is
// reachable whenever the choice is ours.
func pickEndpoints(g *grid.Grid, cfg config, rng *rand.Rand) (grid.Coordinate, grid.Coordinate, error) {
	if cfg.start != nil && cfg.dest != nil {
		return *cfg.start, *cfg.dest, nil
	}

	regions := g.Regions()
	pool := largestRegion(regions)
	if anchor := firstNonNil(cfg.start, cfg.dest); anchor != nil {
		pool = regionOf(regions, *anchor)
	}
	if len(pool) == 0 {
		return grid.Coordinate{}, grid.Coordinate{}, errNoOpenCell
	}

	start, dest := cfg.start, cfg.dest
	if start == nil {
		c := pool[rng.Intn(len(pool))]
		start = &c
	}
	if dest == nil {
		c := pool[rng.Intn(len(pool))]
		dest = &c
	}

	return *start, *dest, nil
}

// runBatch performs one search and prints the dump to out.
func runBatch(cfg config, rng *rand.Rand, out io.Writer, logger *slog.Logger) error {
	g, err := buildGrid(cfg, rng)
	if err != nil {
		return err
	}
	logger.Debug("grid ready", "width", g.Width(), "height", g.Height(), "walls", g.WallCount())

	start, dest, err := pickEndpoints(g, cfg, rng)
	if err != nil {
		return err
	}

	g.Reset()
	res, err := g.Search(start, dest)
	switch {
	case errors.Is(err, grid.ErrNoPath):
		logger.Warn("no path", "start", start, "dest", dest, "expanded", res.Expanded)
	case err != nil:
		return err
	default:
		logger.Info("path found",
			"start", start, "dest", dest,
			"length", len(res.Path)-1, "expanded", res.Expanded)
	}

	if _, err := g.WriteTo(out); err != nil {
		return fmt.Errorf("write grid: %w", err)
	}

	return nil
}

func largestRegion(regions [][]grid.Coordinate) []grid.Coordinate {
	var best []grid.Coordinate
	for _, r := range regions {
		if len(r) > len(best) {
			best = r
		}
	}

	return best
}

// regionOf returns the region holding c, or nil if c is a wall or outside.
func regionOf(regions [][]grid.Coordinate, c grid.Coordinate) []grid.Coordinate {
	for _, r := range regions {
		for _, rc := range r {
			if rc == c {
				return r
			}
		}
	}

	return nil
}

func firstNonNil(cs ...*grid.Coordinate) *grid.Coordinate {
	for _, c := range cs {
		if c != nil {
			return c
		}
	}

	return nil
}
