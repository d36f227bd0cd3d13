// Package graphorder provides index.TrustedSource implementations whose
// order comes from a graph traversal.
//
// Vertices are slice positions: the graph is a graph.Graph[int, int] from
// github.com/dominikbraun/graph built with graph.IntHash, so vertex v stands
// for values[v]. NewIndexGraph creates such a graph with vertices 0..n-1.
//
// What
//
//   - BFS(g, start, opts...): lazy breadth-first order from start.
//   - DFS(g, start, opts...): lazy depth-first pre-order from start.
//   - Topological(g): deterministic topological order of a DAG, ties
//     broken by ascending position.
//
// Uniqueness
//
//	BFS and DFS keep a visited set and never emit a vertex twice.
//	Topological returns an index.Permutation, which rejects repeats at
//	construction. Only vertices reachable from start are emitted, so a
//	walk may cover a subset of the slice.
//
// Determinism
//
//	The adjacency map is snapshotted when the walk is built and neighbors
//	are expanded in ascending order, so the visit sequence is reproducible
//	and later mutations of g do not affect a running walk.
//
// Options (BFS and DFS)
//
//   - WithMaxDepth(d):          stop expanding beyond depth d (>0); 0 = no limit.
//   - WithFilterNeighbor(fn):   skip edges for which fn(curr, neighbor) == false.
//   - WithOnVisit(fn):          hook called as each vertex is emitted.
//
// Errors
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if start is not a vertex of g.
//   - ErrOptionViolation        for invalid options (e.g. negative depth).
//   - ErrNotDirected            Topological on an undirected graph.
//   - ErrCycleDetected          Topological on a graph with a cycle.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E log E) over a full walk (neighbor sorting).
//   - Memory: O(V + E) for the adjacency snapshot and visited set.
package graphorder
