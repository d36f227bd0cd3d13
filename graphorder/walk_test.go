package graphorder_test

import (
	"testing"

	"github.com/dominikbraun/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mutiter/graphorder"
	"github.com/katalvlaran/mutiter/index"
)

// buildTree constructs a small undirected tree over positions 0..5:
//
//	    0
//	   / \
//	  1   2
//	  |   |
//	  3   4
//	  |
//	  5
func buildTree(t *testing.T) graph.Graph[int, int] {
	t.Helper()
	g, err := graphorder.NewIndexGraph(6)
	require.NoError(t, err)
	for _, e := range [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 4}, {3, 5}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

// drain pulls every position out of src.
func drain(src index.TrustedSource, n int) []int {
	out := []int{}
	for {
		i, ok := src.NextIndex(n)
		if !ok {
			return out
		}
		out = append(out, i)
	}
}

func TestBFS_Order(t *testing.T) {
	w, err := graphorder.BFS(buildTree(t), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, drain(index.Checked(w), 6))
	assert.Equal(t, 6, w.Emitted())

	for id, want := range map[int]int{0: 0, 1: 1, 2: 1, 3: 2, 4: 2, 5: 3} {
		d, ok := w.Depth(id)
		require.True(t, ok, "vertex %d not emitted", id)
		assert.Equal(t, want, d, "Depth[%d]", id)
	}

	_, ok := w.NextIndex(6)
	assert.False(t, ok)
}

func TestDFS_Order(t *testing.T) {
	w, err := graphorder.DFS(buildTree(t), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 5, 2, 4}, drain(index.Checked(w), 6))

	d, ok := w.Depth(5)
	require.True(t, ok)
	assert.Equal(t, 3, d)
}

// TestWalk_Cycle ensures a cyclic graph never emits a vertex twice.
func TestWalk_Cycle(t *testing.T) {
	// 0–1–2–3–0 undirected cycle
	g, err := graphorder.NewIndexGraph(4)
	require.NoError(t, err)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	bfs, err := graphorder.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 2}, drain(index.Checked(bfs), 4))

	dfs, err := graphorder.DFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, drain(index.Checked(dfs), 4))
}

func TestWalk_Disconnected(t *testing.T) {
	g, err := graphorder.NewIndexGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(2, 3))

	w, err := graphorder.BFS(g, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, drain(w, 4))
}

func TestWalk_Directed(t *testing.T) {
	g, err := graphorder.NewIndexGraph(3, graph.Directed())
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(1, 0))
	require.NoError(t, g.AddEdge(1, 2))

	// edges only leave 1, so starting at 0 reaches nothing else
	w, err := graphorder.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, drain(w, 3))

	w, err = graphorder.DFS(g, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 2}, drain(w, 3))
}

func TestWalk_Options(t *testing.T) {
	g := buildTree(t)

	w, err := graphorder.BFS(g, 0, graphorder.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, drain(w, 6))

	w, err = graphorder.DFS(g, 0, graphorder.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 2, 4}, drain(w, 6))

	// prune the 0→2 branch
	w, err = graphorder.BFS(g, 0, graphorder.WithFilterNeighbor(func(curr, nbr int) bool {
		return !(curr == 0 && nbr == 2)
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 5}, drain(w, 6))

	var visits [][2]int
	w, err = graphorder.DFS(g, 3, graphorder.WithOnVisit(func(id, depth int) {
		visits = append(visits, [2]int{id, depth})
	}))
	require.NoError(t, err)
	drain(w, 6)
	assert.Equal(t, [][2]int{{3, 0}, {1, 1}, {0, 2}, {2, 3}, {4, 4}, {5, 1}}, visits)
}

func TestWalk_Errors(t *testing.T) {
	_, err := graphorder.BFS(nil, 0)
	assert.ErrorIs(t, err, graphorder.ErrGraphNil)
	_, err = graphorder.DFS(nil, 0)
	assert.ErrorIs(t, err, graphorder.ErrGraphNil)

	g := buildTree(t)
	_, err = graphorder.BFS(g, 42)
	assert.ErrorIs(t, err, graphorder.ErrStartVertexNotFound)
	_, err = graphorder.DFS(g, 0, graphorder.WithMaxDepth(-1))
	assert.ErrorIs(t, err, graphorder.ErrOptionViolation)
}

// TestWalk_Snapshot checks that edges added after construction are ignored.
func TestWalk_Snapshot(t *testing.T) {
	g, err := graphorder.NewIndexGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))

	w, err := graphorder.BFS(g, 0)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(1, 2))
	assert.Equal(t, []int{0, 1}, drain(w, 3))
}
