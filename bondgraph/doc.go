// Package bondgraph builds an undirected adjacency view over atom ids
// from a bond record collection.
//
// The graph is always derived from the FULL bond collection of the source
// topology, never from a filtered one: boundary classification must still
// see neighbors that truncation has pruned away.
//
// ✨ Properties:
//   - undirected: both directions of every bond are recorded
//   - duplicate bonds are absorbed by set semantics, never corrupting adjacency
//   - immutable once built; all queries are read-only
//   - deterministic: neighbor slices are returned in ascending atom id order
//
// Complexity: Build is O(B); Neighbors/ExternalNeighbors are
// O(d log d) for vertex degree d (sorted copy).
package bondgraph
