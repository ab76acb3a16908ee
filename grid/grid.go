package grid

import "fmt"

// Grid is a width×height board of Cells stored in row-major order.
type Grid struct {
	width, height int
	cells         []Cell
}

// New allocates a width×height grid: no walls, every cost at +Inf.
// Returns ErrEmptyGrid if either dimension is below one.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, width, height)
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := &g.cells[g.index(Coordinate{X: x, Y: y})]
			c.Position = Coordinate{X: x, Y: y}
			c.clear()
		}
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether c lies inside [0,Width)×[0,Height).
func (g *Grid) InBounds(c Coordinate) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Index maps c to its row-major slot y*Width + x.
// Returns ErrOutOfBounds rather than clamping.
func (g *Grid) Index(c Coordinate) (int, error) {
	if !g.InBounds(c) {
		return 0, fmt.Errorf("%w: %v on %dx%d", ErrOutOfBounds, c, g.width, g.height)
	}

	return g.index(c), nil
}

// Coordinate converts a row-major index back to its position.
// It is the inverse of Index over the valid range.
func (g *Grid) Coordinate(i int) (Coordinate, error) {
	if i < 0 || i >= len(g.cells) {
		return Coordinate{}, fmt.Errorf("%w: index %d on %dx%d", ErrOutOfBounds, i, g.width, g.height)
	}

	return Coordinate{X: i % g.width, Y: i / g.width}, nil
}

// Node returns a copy of the cell at c. Mutating the copy does not affect
// the grid. Returns ErrOutOfBounds for positions outside the grid.
func (g *Grid) Node(c Coordinate) (Cell, error) {
	i, err := g.Index(c)
	if err != nil {
		return Cell{}, err
	}

	return g.cells[i], nil
}

// Reset clears costs, predecessors, Visited and OnPath on every cell.
// Walls are kept. Safe to call any number of times.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i].clear()
	}
}

// index is the unchecked row-major mapping used once bounds are known.
func (g *Grid) index(c Coordinate) int {
	return c.Y*g.width + c.X
}
