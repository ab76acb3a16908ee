// Package grid models a rectangular board of cells with impassable walls and
// finds shortest 4-directional walking paths across it with A*.
//
// What:
//
//   - Grid owns width×height Cells in row-major order (index = y*width + x).
//   - Each Cell carries search bookkeeping (cost-so-far, estimated total,
//     predecessor) plus the flags a renderer reads: IsWall, Visited, OnPath.
//   - Search runs A* from a start to a destination, marking expanded cells
//     Visited and, on success, the reconstructed route OnPath.
//   - Regions lists 4-connected areas of open cells.
//
// Why:
//
//   - Path visualisers: the per-cell flags are exactly what a UI needs to draw
//     the explored area and the final route.
//   - Game maps and robot floor plans: unit-cost moves between free tiles.
//
// Search order:
//
//	Neighbors are examined west, north, south, east. The frontier is a binary
//	heap keyed by (estimated total, insertion sequence), so among equal
//	estimates the earliest inserted cell is expanded first. Together these two
//	rules make every search fully deterministic.
//
// Lifecycle:
//
//	g, _ := grid.New(50, 50)
//	_ = g.RandomizeWalls(20, grid.WithSeed(7))
//	g.Reset()
//	res, err := g.Search(grid.Coordinate{X: 0, Y: 0}, grid.Coordinate{X: 49, Y: 49})
//
//	Walls persist across Reset; everything else is cleared. Call Reset before
//	every Search.
//
// Complexity:
//
//   - Search:         O(W·H·log(W·H)) time, O(W·H) memory.
//   - Reset, String:  O(W·H).
//   - Regions:        O(W·H) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid:      width or height below one, or no rows to parse.
//   - ErrNonRectangular: parsed rows differ in length.
//   - ErrBadGlyph:       parsed row contains a rune outside "-.x".
//   - ErrInvalidPercent: wall percentage outside [0,100].
//   - ErrOutOfBounds:    coordinate or index outside the grid.
//   - ErrNoPath:         destination unreachable from start.
//   - ErrBrokenChain:    predecessor links do not lead back to start.
//
// A Grid is not safe for concurrent use.
package grid
