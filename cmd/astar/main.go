// Command astar builds a grid with random walls (or loads one from a dump),
// finds a shortest path between two cells and prints the result. With
// -interactive it opens a terminal board: click a start, click a destination,
// watch the route.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"time"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.level}))

	seed := cfg.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("configuration resolved",
		"width", cfg.width, "height", cfg.height, "walls", cfg.walls,
		"seed", seed, "map", cfg.mapPath, "interactive", cfg.interactive)
	rng := rand.New(rand.NewSource(seed))

	if cfg.interactive {
		return runViewer(cfg, rng, logger)
	}

	return runBatch(cfg, rng, stdout, logger)
}
