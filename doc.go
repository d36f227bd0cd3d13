// Package mutiter hands out mutable element pointers from a slice in any
// order you choose, with a contract that no two of them ever alias.
//
// 🚀 What is mutiter?
//
//	A small, zero-overhead library that separates two concerns:
//		• Which position comes next: an index.TrustedSource
//		• How a position becomes a *V: a driver.Driver over a borrowed []V
//
// ✨ Why?
//
//   - Traverse a slice in permuted, filtered, shuffled or graph-driven
//     order and write through every element you get.
//   - Hold many returned pointers at once: they are guaranteed distinct.
//   - Pay nothing at run time: uniqueness is asserted by the source, and an
//     optional check (driver.WithChecks, -tags mutiter_debug) verifies it
//     while testing.
//
// Under the hood, everything is organized under three subpackages:
//
//	index/      — TrustedSource contract, Range, Step, Reverse, Permutation,
//	              Filter, Limit, Shuffle, Checked
//	driver/     — Driver[V]: Next, NextIndexed, All, Indexed, Each
//	graphorder/ — BFS, DFS and topological orders over dominikbraun/graph
//
// Quick example:
//
//	values := []int{1, 2, 3}
//	order, _ := index.NewPermutation([]int{2, 0, 1})
//	for p := range driver.MapValues(values, order).All() {
//	    *p *= 10
//	}
//	// values == [10 20 30], visited as 3, 1, 2
//
//	go get github.com/katalvlaran/mutiter
package mutiter
