package partial_test

import (
	"testing"

	"github.com/katalvlaran/molfrag/bondgraph"
	"github.com/katalvlaran/molfrag/partial"
	"github.com/katalvlaran/molfrag/topology"
)

// chainGraph builds a linear chain of n atoms (ids 1..n).
func chainGraph(n int) *bondgraph.Graph {
	bonds := make([]topology.Bond, 0, n-1)
	for i := 1; i < n; i++ {
		bonds = append(bonds, topology.Bond{AtomIDs: [2]int{i, i + 1}})
	}
	return bondgraph.Build(bonds)
}

// BenchmarkSelect_Chain measures a default-bound selection in the middle
// of a 10k-atom chain; the walk itself touches only the bounded region.
func BenchmarkSelect_Chain(b *testing.B) {
	g := chainGraph(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := partial.Select(g, []int{5_000}); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSelect_WideBound covers the pathological wide-bound case where
// most of the chain survives and edge classification dominates.
func BenchmarkSelect_WideBound(b *testing.B) {
	g := chainGraph(2_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := partial.Select(g, []int{1_000}, partial.WithMaxBondDistance(900)); err != nil {
			b.Fatal(err)
		}
	}
}
