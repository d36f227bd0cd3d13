package graphorder

import (
	"errors"
	"testing"

	"github.com/dominikbraun/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// brokenStore is a directed graph whose adjacency lookup always fails.
// Methods other than Traits and AdjacencyMap are not used by Topological.
type brokenStore struct {
	graph.Graph[int, int]
	err error
}

func (b brokenStore) Traits() *graph.Traits { return &graph.Traits{IsDirected: true} }

func (b brokenStore) AdjacencyMap() (map[int]map[int]graph.Edge[int], error) {
	return nil, b.err
}

// TestTopological_ReadFailureIsNotACycle keeps graph read errors distinct
// from ErrCycleDetected and preserves their chain.
func TestTopological_ReadFailureIsNotACycle(t *testing.T) {
	errStore := errors.New("store unavailable")
	_, err := Topological(brokenStore{err: errStore})
	require.Error(t, err)
	assert.ErrorIs(t, err, errStore)
	assert.NotErrorIs(t, err, ErrCycleDetected)
}

func TestFindCycle(t *testing.T) {
	edges := func(pairs ...[2]int) map[int]map[int]graph.Edge[int] {
		adj := map[int]map[int]graph.Edge[int]{}
		for _, p := range pairs {
			if adj[p[0]] == nil {
				adj[p[0]] = map[int]graph.Edge[int]{}
			}
			if adj[p[1]] == nil {
				adj[p[1]] = map[int]graph.Edge[int]{}
			}
			adj[p[0]][p[1]] = graph.Edge[int]{Source: p[0], Target: p[1]}
		}
		return adj
	}

	_, ok := findCycle(edges([2]int{0, 1}, [2]int{1, 2}, [2]int{0, 2}))
	assert.False(t, ok, "acyclic graph reported as cyclic")

	c, ok := findCycle(edges([2]int{0, 1}, [2]int{1, 2}, [2]int{2, 1}))
	require.True(t, ok)
	assert.Contains(t, []int{1, 2}, c)

	c, ok = findCycle(edges([2]int{3, 3}))
	require.True(t, ok)
	assert.Equal(t, 3, c)
}
