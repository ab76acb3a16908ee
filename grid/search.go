package grid

import (
	"container/heap"
	"fmt"
)

// Search runs A* from start to dest over the 4-connected open cells.
//
// Behavior:
//  1. start gets cost 0 and estimate Distance(start, dest); it seeds the frontier.
//  2. Pop the frontier minimum by (estimate, insertion order).
//  3. If it is dest, reconstruct the path and stop.
//  4. Otherwise mark it Visited and relax its neighbors west, north, south, east.
//
// A neighbor whose tentative cost improves gets new costs and a predecessor,
// even when it is a wall; it joins the frontier only if it is open, not yet
// visited and not already queued. A queued neighbor whose estimate drops is
// re-sifted in place and keeps its original insertion order.
//
// Returns:
//   - Result with Found=true and the route on success.
//   - ErrNoPath with Found=false when the frontier runs dry.
//   - ErrOutOfBounds if start or dest lies outside the grid (grid untouched).
//   - ErrBrokenChain if reconstruction cannot walk back to start.
//
// Search does not clear earlier state; call Reset first.
// Complexity: O(W·H·log(W·H)) time, O(W·H) memory.
func (g *Grid) Search(start, dest Coordinate, opts ...SearchOption) (Result, error) {
	cfg := DefaultSearchOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	si, err := g.Index(start)
	if err != nil {
		return Result{}, fmt.Errorf("start: %w", err)
	}
	di, err := g.Index(dest)
	if err != nil {
		return Result{}, fmt.Errorf("destination: %w", err)
	}

	r := &runner{
		g:        g,
		options:  cfg,
		dest:     dest,
		open:     make(frontier, 0, g.width+g.height),
		queued:   make([]*frontierItem, len(g.cells)),
		expanded: 0,
	}

	s := &g.cells[si]
	s.g = 0
	s.f = Distance(start, dest)
	heap.Init(&r.open)
	r.push(si)

	for r.open.Len() > 0 {
		item := heap.Pop(&r.open).(*frontierItem)
		r.queued[item.at] = nil

		if item.at == di {
			path, err := g.trace(si, di)
			if err != nil {
				return Result{Expanded: r.expanded}, err
			}

			return Result{
				Found:    true,
				Path:     path,
				Cost:     g.cells[di].g,
				Expanded: r.expanded,
			}, nil
		}

		r.expand(item.at)
	}

	return Result{Expanded: r.expanded}, fmt.Errorf("%w: %v to %v", ErrNoPath, start, dest)
}

// runner holds the mutable state of a single Search call.
type runner struct {
	g        *Grid
	options  SearchOptions
	dest     Coordinate
	open     frontier        // cells discovered but not expanded
	queued   []*frontierItem // cell index → its heap item while queued, else nil
	seq      uint64          // next insertion sequence
	expanded int
}

// push queues the cell at i with its current estimate.
func (r *runner) push(i int) {
	item := &frontierItem{at: i, f: r.g.cells[i].f, seq: r.seq}
	r.seq++
	r.queued[i] = item
	heap.Push(&r.open, item)
}

// expand marks the cell at u Visited and relaxes its neighbors.
func (r *runner) expand(u int) {
	cur := &r.g.cells[u]
	cur.Visited = true
	r.expanded++
	r.options.OnExpand(cur.Position)

	for _, d := range neighborOffsets {
		nc := Coordinate{X: cur.Position.X + d[0], Y: cur.Position.Y + d[1]}
		if !r.g.InBounds(nc) {
			continue
		}
		v := r.g.index(nc)
		nb := &r.g.cells[v]

		tentative := cur.g + Distance(cur.Position, nc)
		if tentative >= nb.g {
			continue
		}
		nb.parent = cur.Position
		nb.hasParent = true
		nb.g = tentative
		nb.f = tentative + Distance(nc, r.dest)

		if item := r.queued[v]; item != nil {
			item.f = nb.f
			heap.Fix(&r.open, item.index)
			continue
		}
		if nb.IsWall || nb.Visited {
			continue
		}
		r.push(v)
	}
}
