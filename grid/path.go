package grid

import "fmt"

// trace walks predecessor links back from dest to start, flags every cell it
// passes OnPath (dest included, start excluded) and returns the route from
// start to dest.
//
// The chain is validated before any flag is set, so a failure leaves the grid
// as it was. The walk is capped at the cell count: a missing predecessor or a
// loop yields ErrBrokenChain instead of hanging.
func (g *Grid) trace(start, dest int) ([]Coordinate, error) {
	var chain []int
	for at := dest; at != start; {
		if len(chain) >= len(g.cells) {
			return nil, fmt.Errorf("%w: no return to %v after %d steps",
				ErrBrokenChain, g.cells[start].Position, len(chain))
		}
		c := &g.cells[at]
		if !c.hasParent {
			return nil, fmt.Errorf("%w: %v has no predecessor", ErrBrokenChain, c.Position)
		}
		chain = append(chain, at)
		at = g.index(c.parent)
	}

	path := make([]Coordinate, 0, len(chain)+1)
	path = append(path, g.cells[start].Position)
	for i := len(chain) - 1; i >= 0; i-- {
		c := &g.cells[chain[i]]
		c.OnPath = true
		path = append(path, c.Position)
	}

	return path, nil
}

// PathCount returns the number of cells flagged OnPath.
func (g *Grid) PathCount() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].OnPath {
			n++
		}
	}

	return n
}
