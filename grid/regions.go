package grid

// Regions finds all 4-connected areas of open (non-wall) cells.
// Regions are returned in the row-major order of their first cell; the cells
// of each region are listed in breadth-first discovery order using the same
// west, north, south, east neighbor order as Search.
//
// Two open cells share a region exactly when Search can connect them.
// Time:   O(W·H).
// Memory: O(W·H) for seen flags and output.
func (g *Grid) Regions() [][]Coordinate {
	var regions [][]Coordinate
	seen := make([]bool, len(g.cells))
	for i := range g.cells {
		if g.cells[i].IsWall || seen[i] {
			continue
		}
		regions = append(regions, g.flood(i, seen))
	}

	return regions
}

// Connected reports whether a and b are open cells in the same region.
// Returns ErrOutOfBounds if either lies outside the grid.
func (g *Grid) Connected(a, b Coordinate) (bool, error) {
	ai, err := g.Index(a)
	if err != nil {
		return false, err
	}
	bi, err := g.Index(b)
	if err != nil {
		return false, err
	}
	if g.cells[ai].IsWall || g.cells[bi].IsWall {
		return false, nil
	}
	seen := make([]bool, len(g.cells))
	g.floodIndex(ai, seen)

	return seen[bi], nil
}

// flood collects the region containing the open cell at i as coordinates.
func (g *Grid) flood(i int, seen []bool) []Coordinate {
	idx := g.floodIndex(i, seen)
	out := make([]Coordinate, len(idx))
	for k, u := range idx {
		out[k] = g.cells[u].Position
	}

	return out
}

// floodIndex runs a BFS from the open cell at i over unseen open cells,
// marking them in seen, and returns their indices in discovery order.
func (g *Grid) floodIndex(i int, seen []bool) []int {
	queue := []int{i}
	seen[i] = true
	for qi := 0; qi < len(queue); qi++ {
		p := g.cells[queue[qi]].Position
		for _, d := range neighborOffsets {
			nc := Coordinate{X: p.X + d[0], Y: p.Y + d[1]}
			if !g.InBounds(nc) {
				continue
			}
			v := g.index(nc)
			if seen[v] || g.cells[v].IsWall {
				continue
			}
			seen[v] = true
			queue = append(queue, v)
		}
	}

	return queue
}
