package bondgraph

import (
	"sort"

	"github.com/katalvlaran/molfrag/topology"
)

// Graph is an immutable undirected adjacency view over atom ids.
// The zero value is not usable; construct with Build.
type Graph struct {
	adj map[int]map[int]struct{}
}

// Build derives a Graph from a bond record collection.
// Both endpoints of every bond see each other; duplicate bonds are
// harmless. Pure transform, no validation.
// Complexity: O(B) time, O(B) memory.
func Build(bonds []topology.Bond) *Graph {
	adj := make(map[int]map[int]struct{}, 2*len(bonds))
	for _, b := range bonds {
		link(adj, b.AtomIDs[0], b.AtomIDs[1])
		link(adj, b.AtomIDs[1], b.AtomIDs[0])
	}
	return &Graph{adj: adj}
}

// link records a one-directional adjacency from u to v.
func link(adj map[int]map[int]struct{}, u, v int) {
	set, ok := adj[u]
	if !ok {
		set = make(map[int]struct{})
		adj[u] = set
	}
	set[v] = struct{}{}
}

// HasAtom reports whether id participates in at least one bond.
func (g *Graph) HasAtom(id int) bool {
	_, ok := g.adj[id]
	return ok
}

// Degree returns the number of distinct bonded partners of id.
// Atoms absent from the bond collection have degree 0.
func (g *Graph) Degree(id int) int {
	return len(g.adj[id])
}

// Neighbors returns the bonded partners of id in ascending order.
// Returns nil for atoms that participate in no bond.
func (g *Graph) Neighbors(id int) []int {
	set, ok := g.adj[id]
	if !ok {
		return nil
	}
	out := make([]int, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// ExternalNeighbors returns the bonded partners of id that are absent
// from keep, in ascending order. This is the pruned-partner query used
// for edge-atom classification and fingerprint capture.
func (g *Graph) ExternalNeighbors(id int, keep map[int]struct{}) []int {
	set, ok := g.adj[id]
	if !ok {
		return nil
	}
	var out []int
	for n := range set {
		if _, in := keep[n]; !in {
			out = append(out, n)
		}
	}
	sort.Ints(out)
	return out
}

// AtomIDs returns every atom id that participates in at least one bond,
// in ascending order.
func (g *Graph) AtomIDs() []int {
	out := make([]int, 0, len(g.adj))
	for id := range g.adj {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}
