package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/grid"
)

// cellWidth is the number of terminal columns per grid cell; two keeps
// cells roughly square in most fonts.
const cellWidth = 2

// Board colors. Start and destination overlay everything; otherwise on-path
// beats wall beats visited beats open.
var (
	colorOpen    = tcell.ColorWhite
	colorWall    = tcell.ColorBlack
	colorVisited = tcell.NewRGBColor(201, 201, 255)
	colorPath    = tcell.NewRGBColor(0, 201, 255)
	colorStart   = tcell.ColorGreen
	colorDest    = tcell.ColorRed
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

// viewer is the interactive board. It owns the grid; every search runs on the
// event goroutine, so no locking is needed.
type viewer struct {
	screen tcell.Screen
	grid   *grid.Grid
	cfg    config
	rng    *rand.Rand
	log    *slog.Logger

	start, dest *grid.Coordinate
	buttons     tcell.ButtonMask // buttons held at the previous mouse event
	status      string
}

func runViewer(cfg config, rng *rand.Rand, logger *slog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer screen.Fini()

	v, err := newViewer(screen, cfg, rng, logger)
	if err != nil {
		return err
	}
	v.run()

	return nil
}

func newViewer(screen tcell.Screen, cfg config, rng *rand.Rand, logger *slog.Logger) (*viewer, error) {
	g, err := buildGrid(cfg, rng)
	if err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.Clear()

	return &viewer{
		screen: screen,
		grid:   g,
		cfg:    cfg,
		rng:    rng,
		log:    logger,
		status: "click a start cell",
	}, nil
}

func (v *viewer) run() {
	v.draw()
	for {
		ev := v.screen.PollEvent()
		if ev == nil {
			return
		}
		if !v.handle(ev) {
			return
		}
		v.draw()
	}
}

// handle applies one event and reports whether the viewer should keep running.
func (v *viewer) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case 'r':
				v.regenerate()
			case 'c':
				v.clear()
			}
		}

	case *tcell.EventMouse:
		pressed := ev.Buttons() &^ v.buttons
		v.buttons = ev.Buttons()
		x, y := ev.Position()
		switch {
		case pressed&tcell.ButtonPrimary != 0:
			v.click(grid.Coordinate{X: x / cellWidth, Y: y})
		case pressed&tcell.ButtonSecondary != 0:
			v.clear()
		}

	case *tcell.EventResize:
		v.screen.Sync()
	}

	return true
}

// click follows the original interaction: first click picks the start, second
// the destination and runs the search, third clears the board.
func (v *viewer) click(c grid.Coordinate) {
	cell, err := v.grid.Node(c)
	if err != nil || cell.IsWall {
		return
	}

	switch {
	case v.start == nil:
		v.start = &c
		v.status = fmt.Sprintf("start %v, click a destination", c)
	case v.dest == nil:
		v.dest = &c
		v.search()
	default:
		v.clear()
	}
}

func (v *viewer) search() {
	v.grid.Reset()
	res, err := v.grid.Search(*v.start, *v.dest)
	switch {
	case errors.Is(err, grid.ErrNoPath):
		v.status = fmt.Sprintf("no path from %v to %v (%d cells explored)", *v.start, *v.dest, res.Expanded)
		v.log.Debug("no path", "start", *v.start, "dest", *v.dest, "expanded", res.Expanded)
	case err != nil:
		v.status = "search failed: " + err.Error()
		v.log.Error("search failed", "err", err)
	default:
		v.status = fmt.Sprintf("%d moves, %d cells explored", len(res.Path)-1, res.Expanded)
		v.log.Debug("path found", "start", *v.start, "dest", *v.dest, "length", len(res.Path)-1)
	}
}

func (v *viewer) clear() {
	v.grid.Reset()
	v.start, v.dest = nil, nil
	v.status = "click a start cell"
}

func (v *viewer) regenerate() {
	g, err := buildGrid(v.cfg, v.rng)
	if err != nil {
		v.status = "regenerate failed: " + err.Error()
		return
	}
	v.grid = g
	v.start, v.dest = nil, nil
	v.status = fmt.Sprintf("new board, %d walls; click a start cell", g.WallCount())
	v.screen.Clear()
}

// colorAt picks the fill for c following the overlay precedence.
func (v *viewer) colorAt(c grid.Cell) tcell.Color {
	switch {
	case v.start != nil && c.Position == *v.start:
		return colorStart
	case v.dest != nil && c.Position == *v.dest:
		return colorDest
	case c.OnPath:
		return colorPath
	case c.IsWall:
		return colorWall
	case c.Visited:
		return colorVisited
	default:
		return colorOpen
	}
}

func (v *viewer) draw() {
	w, h := v.grid.Width(), v.grid.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c, err := v.grid.Node(grid.Coordinate{X: x, Y: y})
			if err != nil {
				continue
			}
			style := tcell.StyleDefault.Background(v.colorAt(c))
			for i := 0; i < cellWidth; i++ {
				v.screen.SetContent(x*cellWidth+i, y, ' ', nil, style)
			}
		}
	}

	line := v.status + "  [left] pick  [right/c] clear  [r] new board  [q] quit"
	sw, _ := v.screen.Size()
	for i := 0; i < sw; i++ {
		r := ' '
		if i < len(line) {
			r = rune(line[i])
		}
		v.screen.SetContent(i, h, r, nil, styleStatus)
	}
	v.screen.Show()
}
