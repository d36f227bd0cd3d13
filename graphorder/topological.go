package graphorder

import (
	"fmt"
	"maps"
	"slices"

	"github.com/dominikbraun/graph"

	"github.com/katalvlaran/mutiter/index"
)

// Vertex states for cycle detection.
const (
	white = iota // not visited yet
	gray         // on the current DFS path
	black        // fully explored
)

// Topological returns a source yielding every vertex of the directed acyclic
// graph g so that each edge u→v has u before v. The order is deterministic:
// graph.StableTopologicalSort breaks ties by ascending position.
//
// Returns ErrGraphNil, ErrNotDirected or ErrCycleDetected. Failures reading
// the graph are wrapped as returned by dominikbraun/graph. A negative vertex
// is rejected with index.ErrIndexOutOfRange.
func Topological(g graph.Graph[int, int]) (*index.Permutation, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Traits().IsDirected {
		return nil, ErrNotDirected
	}

	adj, err := g.AdjacencyMap()
	if err != nil {
		return nil, fmt.Errorf("graphorder: adjacency map: %w", err)
	}
	if cycle, ok := findCycle(adj); ok {
		return nil, fmt.Errorf("%w: through vertex %d", ErrCycleDetected, cycle)
	}

	order, err := graph.StableTopologicalSort(g, func(a, b int) bool { return a < b })
	if err != nil {
		return nil, fmt.Errorf("graphorder: topological sort: %w", err)
	}

	return index.NewPermutation(order)
}

// findCycle runs a three-color DFS over adj and reports a vertex on the
// first back edge found (self-loops included).
//
// Complexity: O(V log V + E log E) with sorted iteration for determinism.
func findCycle(adj map[int]map[int]graph.Edge[int]) (int, bool) {
	state := make(map[int]int, len(adj))

	var visit func(v int) (int, bool)
	visit = func(v int) (int, bool) {
		state[v] = gray
		for _, nbr := range slices.Sorted(maps.Keys(adj[v])) {
			switch state[nbr] {
			case gray:
				return nbr, true
			case white:
				if c, ok := visit(nbr); ok {
					return c, true
				}
			}
		}
		state[v] = black

		return 0, false
	}

	for _, v := range slices.Sorted(maps.Keys(adj)) {
		if state[v] == white {
			if c, ok := visit(v); ok {
				return c, true
			}
		}
	}

	return 0, false
}
