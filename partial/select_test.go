package partial_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molfrag/bondgraph"
	"github.com/katalvlaran/molfrag/partial"
	"github.com/katalvlaran/molfrag/topology"
)

// buildGraph wires the given id pairs as bonds.
func buildGraph(pairs ...[2]int) *bondgraph.Graph {
	bonds := make([]topology.Bond, 0, len(pairs))
	for _, p := range pairs {
		bonds = append(bonds, topology.Bond{AtomIDs: p})
	}
	return bondgraph.Build(bonds)
}

// validIDs flattens the surviving set for order-insensitive comparison.
func validIDs(sel *partial.Selection) []int {
	out := make([]int, 0, len(sel.Valid))
	for id := range sel.Valid {
		out = append(out, id)
	}
	return out
}

func TestSelect_Errors(t *testing.T) {
	g := buildGraph([2]int{1, 2})

	_, err := partial.Select(nil, []int{1})
	assert.ErrorIs(t, err, partial.ErrGraphNil)

	_, err = partial.Select(g, nil)
	assert.ErrorIs(t, err, partial.ErrConfig, "empty bonding atoms")

	_, err = partial.Select(g, []int{1}, partial.WithMaxBondDistance(0))
	assert.ErrorIs(t, err, partial.ErrConfig, "non-positive distance bound")

	_, err = partial.Select(g, []int{1}, partial.WithDeleteAtoms(1))
	assert.ErrorIs(t, err, partial.ErrConfig, "bonding atom marked for deletion")
}

// TestSelect_DistanceOne is the canonical truncation scenario:
// seeds {5}, max distance 1 over bonds {5-6, 6-7, 5-8}.
func TestSelect_DistanceOne(t *testing.T) {
	g := buildGraph([2]int{5, 6}, [2]int{6, 7}, [2]int{5, 8})

	sel, err := partial.Select(g, []int{5}, partial.WithMaxBondDistance(1))
	require.NoError(t, err)

	assert.ElementsMatch(t, []int{5, 6, 8}, validIDs(sel))
	// 6 loses its bond to 7; 5 keeps every direct neighbor, so 7 being
	// two hops away does not make 5 an edge atom.
	assert.Equal(t, []int{6}, sel.EdgeAtoms)
	assert.Equal(t, 0, sel.Dist[5])
	assert.Equal(t, 1, sel.Dist[6])
	assert.Equal(t, 1, sel.Dist[8])
}

// TestSelect_DeleteAtom removes atom 6 before traversal: 5 becomes an
// edge atom (its neighbor 6 is excluded) and 6 never appears.
func TestSelect_DeleteAtom(t *testing.T) {
	g := buildGraph([2]int{5, 6}, [2]int{6, 7}, [2]int{5, 8})

	sel, err := partial.Select(g, []int{5},
		partial.WithMaxBondDistance(1),
		partial.WithDeleteAtoms(6),
	)
	require.NoError(t, err)

	assert.ElementsMatch(t, []int{5, 8}, validIDs(sel))
	assert.False(t, sel.Contains(6))
	assert.True(t, sel.Deleted(6))
	assert.Equal(t, []int{5}, sel.EdgeAtoms)
}

// TestSelect_DeletedAtomNotTraversable checks that traversal cannot pass
// THROUGH a deleted atom even when the far side would be in range.
func TestSelect_DeletedAtomNotTraversable(t *testing.T) {
	// 1-2-3-4 chain; deleting 2 must hide 3 and 4 from seed 1.
	g := buildGraph([2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4})

	sel, err := partial.Select(g, []int{1}, partial.WithDeleteAtoms(2))
	require.NoError(t, err)

	assert.ElementsMatch(t, []int{1}, validIDs(sel))
	assert.Equal(t, []int{1}, sel.EdgeAtoms)
}

func TestSelect_MultiSeed(t *testing.T) {
	// two seeds on a 7-chain cover it from both ends at distance 1
	g := buildGraph([2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4}, [2]int{4, 5}, [2]int{5, 6}, [2]int{6, 7})

	sel, err := partial.Select(g, []int{2, 6}, partial.WithMaxBondDistance(1))
	require.NoError(t, err)

	assert.ElementsMatch(t, []int{1, 2, 3, 5, 6, 7}, validIDs(sel))
	// 3 and 5 each lose their bond to the pruned atom 4
	assert.Equal(t, []int{3, 5}, sel.EdgeAtoms)
	assert.Equal(t, 0, sel.Dist[2])
	assert.Equal(t, 0, sel.Dist[6])
}

// TestSelect_DistanceBound asserts the reachability invariant: every
// surviving atom sits within the configured bond distance of some seed.
func TestSelect_DistanceBound(t *testing.T) {
	g := buildGraph(
		[2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4}, [2]int{4, 5},
		[2]int{5, 6}, [2]int{6, 7}, [2]int{7, 8}, [2]int{2, 9},
		[2]int{9, 10}, [2]int{10, 11},
	)

	sel, err := partial.Select(g, []int{1})
	require.NoError(t, err)

	for id := range sel.Valid {
		d, ok := sel.Dist[id]
		require.True(t, ok, "atom %d has no recorded distance", id)
		assert.LessOrEqual(t, d, partial.DefaultMaxBondDistance, "atom %d", id)
	}
	// atoms exactly at the default bound survive, one past it does not
	assert.True(t, sel.Contains(4))
	assert.False(t, sel.Contains(5))
	assert.True(t, sel.Contains(10))
	assert.False(t, sel.Contains(11))
}

// TestSelect_SeedCanBeEdgeAtom covers truncation immediately adjacent to
// a seed.
func TestSelect_SeedCanBeEdgeAtom(t *testing.T) {
	g := buildGraph([2]int{1, 2}, [2]int{1, 3})

	sel, err := partial.Select(g, []int{1},
		partial.WithMaxBondDistance(1),
		partial.WithDeleteAtoms(3),
	)
	require.NoError(t, err)

	assert.Equal(t, []int{1}, sel.EdgeAtoms)
}

func TestSelect_DuplicateSeedsHarmless(t *testing.T) {
	g := buildGraph([2]int{1, 2})

	sel, err := partial.Select(g, []int{1, 1, 1})
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1, 2}, validIDs(sel))
}

func TestExtend_AdmitsAndReclassifies(t *testing.T) {
	// 1-2-3-4 chain, distance 1 from seed 1: valid {1,2}, edge {2}
	g := buildGraph([2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4})

	sel, err := partial.Select(g, []int{1}, partial.WithMaxBondDistance(1))
	require.NoError(t, err)
	require.Equal(t, []int{2}, sel.EdgeAtoms)

	// admit 3 through edge atom 2: 2 stops being an edge atom, 3 starts
	require.NoError(t, sel.Extend(map[int][]int{2: {3}}))

	assert.ElementsMatch(t, []int{1, 2, 3}, validIDs(sel))
	assert.Equal(t, []int{3}, sel.EdgeAtoms)
	_, hasDist := sel.Dist[3]
	assert.False(t, hasDist, "extension-admitted atoms carry no distance")
}

func TestExtend_Errors(t *testing.T) {
	g := buildGraph([2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4})

	sel, err := partial.Select(g, []int{1},
		partial.WithMaxBondDistance(1),
		partial.WithDeleteAtoms(4),
	)
	require.NoError(t, err)

	// key must be a current edge atom
	err = sel.Extend(map[int][]int{1: {3}})
	assert.ErrorIs(t, err, partial.ErrConfig)

	// an atom cannot be both deleted and force-extended
	err = sel.Extend(map[int][]int{2: {4}})
	assert.ErrorIs(t, err, partial.ErrConfig)

	// failed extension leaves the selection untouched
	assert.ElementsMatch(t, []int{1, 2}, validIDs(sel))
	assert.Equal(t, []int{2}, sel.EdgeAtoms)
}

func TestExtend_NilRequestIsNoop(t *testing.T) {
	g := buildGraph([2]int{1, 2}, [2]int{2, 3})

	sel, err := partial.Select(g, []int{1}, partial.WithMaxBondDistance(1))
	require.NoError(t, err)
	before := append([]int(nil), sel.EdgeAtoms...)

	require.NoError(t, sel.Extend(nil))
	assert.Equal(t, before, sel.EdgeAtoms)
}
