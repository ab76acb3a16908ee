package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// Defaults match the original 50×50 board with one cell in five walled.
const (
	defaultWidth  = 50
	defaultHeight = 50
	defaultWalls  = 20
)

// config is the resolved command line.
type config struct {
	width, height int
	walls         int
	seed          int64
	mapPath       string
	start, dest   *grid.Coordinate // nil picks a random reachable cell
	interactive   bool
	level         slog.Level
}

// parseFlags resolves args into a config. Usage and parse errors go to stderr.
func parseFlags(args []string, stderr io.Writer) (config, error) {
	var (
		cfg       config
		startFlag string
		destFlag  string
		levelFlag string
	)
	fs := flag.NewFlagSet("astar", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		_, _ = fmt.Fprintln(stderr, "Usage: astar [options]")
		_, _ = fmt.Fprintln(stderr, "\nFinds a shortest 4-directional path across a grid with walls.")
		_, _ = fmt.Fprintln(stderr, "\nOptions:")
		fs.PrintDefaults()
	}
	fs.IntVar(&cfg.width, "width", defaultWidth, "grid width in cells")
	fs.IntVar(&cfg.height, "height", defaultHeight, "grid height in cells")
	fs.IntVar(&cfg.walls, "walls", defaultWalls, "percent chance for each cell to be a wall (0-100)")
	fs.Int64Var(&cfg.seed, "seed", 0, "random seed; 0 seeds from the clock")
	fs.StringVar(&cfg.mapPath, "map", "", "read the grid from a dump file ('-' wall, '.' open) instead of generating it")
	fs.StringVar(&startFlag, "start", "", "start cell as x,y (default: random reachable cell)")
	fs.StringVar(&destFlag, "dest", "", "destination cell as x,y (default: random reachable cell)")
	fs.BoolVar(&cfg.interactive, "interactive", false, "open the terminal viewer")
	fs.StringVar(&levelFlag, "log-level", "info", "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() > 0 {
		return config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	var err error
	if cfg.start, err = parseCoordinate(startFlag); err != nil {
		return config{}, fmt.Errorf("-start: %w", err)
	}
	if cfg.dest, err = parseCoordinate(destFlag); err != nil {
		return config{}, fmt.Errorf("-dest: %w", err)
	}
	if cfg.level, err = parseLevel(levelFlag); err != nil {
		return config{}, err
	}
	if cfg.mapPath == "" && (cfg.width < 1 || cfg.height < 1) {
		return config{}, fmt.Errorf("grid size %dx%d: %w", cfg.width, cfg.height, grid.ErrEmptyGrid)
	}

	return cfg, nil
}

// parseCoordinate reads "x,y". An empty string yields nil.
func parseCoordinate(s string) (*grid.Coordinate, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return nil, fmt.Errorf("coordinate %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return nil, fmt.Errorf("coordinate %q: x: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return nil, fmt.Errorf("coordinate %q: y: %w", s, err)
	}

	return &grid.Coordinate{X: x, Y: y}, nil
}

// parseLevel maps a level name onto slog.
func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level: %s", s)
	}
}
