package grid

// frontierItem is one queued cell. f mirrors the cell's estimated total and is
// refreshed through fix whenever that estimate drops while queued.
type frontierItem struct {
	at    int     // row-major cell index
	f     float64 // estimated total at last update
	seq   uint64  // insertion sequence; never changes once queued
	index int     // position inside the heap, maintained by Swap
}

// frontier is a min-heap of *frontierItem ordered by (f, seq). Ordering on the
// insertion sequence makes extraction a stable minimum: of all cells with the
// smallest estimate, the one queued first comes out first.
type frontier []*frontierItem

func (q frontier) Len() int { return len(q) }

func (q frontier) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}

	return q[i].seq < q[j].seq
}

func (q frontier) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

// Push appends x; called by heap.Push. x must be *frontierItem.
func (q *frontier) Push(x interface{}) {
	item := x.(*frontierItem)
	item.index = len(*q)
	*q = append(*q, item)
}

// Pop removes the last element; called by heap.Pop.
func (q *frontier) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*q = old[:n-1]

	return item
}
