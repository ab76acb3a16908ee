package grid

import (
	"fmt"
	"math"
)

// Coordinate is a cell position. X grows east, Y grows south.
type Coordinate struct {
	X, Y int
}

// String renders c as "(x,y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Distance returns the Euclidean distance between a and b. It is symmetric,
// non-negative and zero only when a == b. For 4-directional moves it never
// overestimates the remaining walking cost, which keeps A* optimal.
func Distance(a, b Coordinate) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y

	return math.Sqrt(float64(dx*dx + dy*dy))
}

// Cell is the search state of one grid position.
//
// Position never changes after construction. IsWall survives Reset; Visited
// and OnPath describe the most recent search. The cost fields start at +Inf,
// meaning "not yet reached", and always satisfy CostSoFar ≤ EstimatedTotal.
type Cell struct {
	Position Coordinate
	IsWall   bool // impassable
	Visited  bool // expanded by the last search
	OnPath   bool // part of the last reconstructed route, start excluded

	g         float64
	f         float64
	parent    Coordinate
	hasParent bool
}

// CostSoFar returns the best known cost from the search start (g-score).
func (c Cell) CostSoFar() float64 { return c.g }

// EstimatedTotal returns cost-so-far plus the heuristic to the destination (f-score).
func (c Cell) EstimatedTotal() float64 { return c.f }

// Predecessor returns the cell this one was reached from, if any.
func (c Cell) Predecessor() (Coordinate, bool) { return c.parent, c.hasParent }

// clear drops all per-search state, keeping Position and IsWall.
func (c *Cell) clear() {
	c.g = math.Inf(1)
	c.f = math.Inf(1)
	c.parent = Coordinate{}
	c.hasParent = false
	c.Visited = false
	c.OnPath = false
}

// Result describes a finished search.
//
//   - Found:    destination reached.
//   - Path:     coordinates from start to destination inclusive; nil if not Found.
//   - Cost:     walking cost of Path (its number of moves).
//   - Expanded: cells marked Visited by this search.
type Result struct {
	Found    bool
	Path     []Coordinate
	Cost     float64
	Expanded int
}

// SearchOption configures Search via functional arguments.
type SearchOption func(*SearchOptions)

// SearchOptions holds the callbacks that customize a search.
type SearchOptions struct {
	// OnExpand is called each time a cell is marked Visited, in expansion order.
	OnExpand func(c Coordinate)
}

// DefaultSearchOptions returns options with a no-op OnExpand hook.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		OnExpand: func(Coordinate) {},
	}
}

// WithOnExpand registers a callback run whenever a cell is expanded.
// A nil fn is ignored.
func WithOnExpand(fn func(c Coordinate)) SearchOption {
	return func(o *SearchOptions) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// neighborOffsets lists the 4-connected moves in expansion order:
// west, north, south, east. The order is part of the tie-break contract.
var neighborOffsets = [4][2]int{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}
