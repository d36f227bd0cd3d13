package graphorder

import (
	"fmt"
	"maps"
	"slices"

	"github.com/dominikbraun/graph"
	"github.com/eapache/queue"
)

// kind selects the frontier discipline of a Walk.
type kind int

const (
	breadthFirst kind = iota
	depthFirst
)

// frontierItem pairs a vertex with its depth from the start.
type frontierItem struct {
	id    int
	depth int
}

// Walk is a lazy graph traversal exposed as an index.TrustedSource.
// Each NextIndex call emits one vertex and expands its neighbors.
//
// Unique because a vertex is emitted only if it is not yet in visited,
// and is added to visited when emitted.
type Walk struct {
	adj     map[int]map[int]graph.Edge[int]
	opts    Options
	kind    kind
	queue   *queue.Queue   // breadth-first frontier
	stack   []frontierItem // depth-first frontier
	visited map[int]bool
	depth   map[int]int
	done    bool
}

// BFS returns a Walk emitting the vertices reachable from start in
// breadth-first order, neighbors in ascending order.
func BFS(g graph.Graph[int, int], start int, opts ...Option) (*Walk, error) {
	return newWalk(g, start, breadthFirst, opts)
}

// DFS returns a Walk emitting the vertices reachable from start in
// depth-first pre-order, neighbors in ascending order.
func DFS(g graph.Graph[int, int], start int, opts ...Option) (*Walk, error) {
	return newWalk(g, start, depthFirst, opts)
}

func newWalk(g graph.Graph[int, int], start int, k kind, opts []Option) (*Walk, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if _, err := g.Vertex(start); err != nil {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}
	adj, err := g.AdjacencyMap()
	if err != nil {
		return nil, fmt.Errorf("graphorder: adjacency map: %w", err)
	}

	w := &Walk{
		adj:     adj,
		opts:    o,
		kind:    k,
		visited: make(map[int]bool, len(adj)),
		depth:   make(map[int]int, len(adj)),
	}
	// Seed the frontier with the start vertex
	switch k {
	case breadthFirst:
		w.queue = queue.New()
		w.visited[start] = true
		w.queue.Add(frontierItem{id: start, depth: 0})
	case depthFirst:
		w.stack = []frontierItem{{id: start, depth: 0}}
	}

	return w, nil
}

// NextIndex implements index.TrustedSource. n is not consulted: a vertex
// past the slice length surfaces as a bounds panic in the driver.
func (w *Walk) NextIndex(_ int) (int, bool) {
	if w.done {
		return 0, false
	}

	var (
		item frontierItem
		ok   bool
	)
	switch w.kind {
	case breadthFirst:
		item, ok = w.dequeue()
	case depthFirst:
		item, ok = w.pop()
	}
	if !ok {
		w.done = true
		return 0, false
	}

	w.depth[item.id] = item.depth
	w.opts.OnVisit(item.id, item.depth)

	return item.id, true
}

// dequeue pops the next breadth-first vertex and enqueues its unseen
// neighbors. Vertices are marked visited on enqueue.
func (w *Walk) dequeue() (frontierItem, bool) {
	if w.queue.Length() == 0 {
		return frontierItem{}, false
	}
	item := w.queue.Remove().(frontierItem)

	for _, nbr := range w.expand(item) {
		if !w.visited[nbr] {
			w.visited[nbr] = true
			w.queue.Add(frontierItem{id: nbr, depth: item.depth + 1})
		}
	}

	return item, true
}

// pop takes the next depth-first vertex, skipping ones already emitted, and
// pushes its neighbors so the smallest is explored first.
// Vertices are marked visited on emission.
func (w *Walk) pop() (frontierItem, bool) {
	for len(w.stack) > 0 {
		item := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		if w.visited[item.id] {
			continue
		}
		w.visited[item.id] = true

		nbrs := w.expand(item)
		for k := len(nbrs) - 1; k >= 0; k-- {
			if !w.visited[nbrs[k]] {
				w.stack = append(w.stack, frontierItem{id: nbrs[k], depth: item.depth + 1})
			}
		}

		return item, true
	}

	return frontierItem{}, false
}

// expand returns the sorted neighbors of item that pass FilterNeighbor and
// the depth limit.
func (w *Walk) expand(item frontierItem) []int {
	if w.opts.MaxDepth > 0 && item.depth+1 > w.opts.MaxDepth {
		return nil
	}
	nbrs := slices.Sorted(maps.Keys(w.adj[item.id]))
	kept := nbrs[:0]
	for _, nbr := range nbrs {
		if nbr == item.id {
			continue
		}
		if w.opts.FilterNeighbor(item.id, nbr) {
			kept = append(kept, nbr)
		}
	}

	return kept
}

// Depth reports the depth at which id was emitted.
func (w *Walk) Depth(id int) (int, bool) {
	d, ok := w.depth[id]

	return d, ok
}

// Emitted returns how many vertices the walk has produced so far.
func (w *Walk) Emitted() int {
	return len(w.depth)
}

// AssertsUniqueIndices implements index.TrustedSource.
func (*Walk) AssertsUniqueIndices() {}
