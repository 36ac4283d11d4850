package bfs

import "github.com/katalvlaran/geokernel/core"

// queueItem pairs a vertex with its depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	queue []queueItem
	res   *Result
}

// Walk runs breadth-first search from every root in roots.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input, or any
// OnVisit error.
func Walk(g *core.Graph, roots []int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	for _, r := range roots {
		if !g.HasVertex(r) {
			return nil, ErrStartVertexNotFound
		}
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}
	// Seed with roots; duplicates collapse.
	for _, r := range roots {
		if !w.res.Visited(r) {
			w.enqueue(r, 0, -1)
		}
	}

	return w.res, w.loop()
}

func (w *walker) enqueue(id, depth, parent int) {
	w.res.Depth[id] = depth
	if parent >= 0 {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: depth})
}

// loop processes the queue until empty or a hook error.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		// 1. Visit
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return err
		}
		// 2. Enqueue unseen successors in ascending order
		for _, nbr := range w.graph.Successors(item.id) {
			if w.res.Visited(nbr) {
				continue
			}
			w.enqueue(nbr, item.depth+1, item.id)
		}
	}

	return nil
}
