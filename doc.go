// Package gridpath is a small toolkit for shortest walking paths on
// rectangular boards with walls, plus a terminal viewer to watch A* work.
//
// What is inside?
//
//	grid/        the board model, random wall generation, text dump and
//	               parsing, 4-connected regions, and the A* Search itself
//	cmd/astar/   command-line front end: one-shot batch search that prints
//	               the dump, or an interactive tcell viewer driven by the mouse
//	examples/    a runnable floor-plan routing scenario
//
// Why gridpath?
//
//   - Deterministic: fixed neighbor order and a stable frontier give the same
//     path and the same explored area for the same board every time
//   - Observable: every cell exposes Visited and OnPath flags, and Search
//     accepts an OnExpand hook
//   - Plain errors: every failure is a sentinel that works with errors.Is
//
// Quick ASCII example (start top-left, destination bottom-right):
//
//	...        ...
//	...   →    xx.
//	...        .xx
//
// Dump glyphs: 'x' on path, '-' wall, '.' open.
//
//	go install github.com/katalvlaran/gridpath/cmd/astar@latest
package gridpath
