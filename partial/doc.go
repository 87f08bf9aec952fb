// Package partial selects the bond-distance-bounded sub-structure around
// a set of bonding (seed) atoms and classifies its truncation boundary.
//
// 🚀 What it does:
//
//	Breadth-first traversal from all seeds simultaneously over a
//	bondgraph.Graph, bounded by a maximum bond distance (default 3),
//	produces the surviving atom set (ValidAtomSet) and the edge atoms:
//	retained atoms with at least one bonded neighbor pruned away.
//
// ✨ Key behaviors:
//   - multi-seed BFS, every seed at distance 0
//   - explicitly deleted atoms are non-traversable: the walk neither
//     enters nor passes through them, so their neighbors become boundary
//     candidates
//   - seeds themselves may classify as edge atoms when truncation happens
//     immediately next to them
//   - optional boundary extension re-admits named atoms next to chosen
//     edge atoms and recomputes the edge set against the enlarged
//     selection; extension is single-pass and non-recursive
//   - deterministic: set membership is order-independent and edge atoms
//     are reported in ascending original atom id order
//
// ⚙️ Usage:
//
//	g := bondgraph.Build(top.Bonds)
//	sel, err := partial.Select(g, []int{5, 12},
//	  partial.WithMaxBondDistance(3),
//	  partial.WithDeleteAtoms(40),
//	)
//	if err != nil { ... }
//	err = sel.Extend(map[int][]int{17: {18}})
//
// Complexity: Select is O(V + E) over the reachable region;
// edge classification is O(Σ d log d) over retained atoms.
package partial
