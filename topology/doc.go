// Package topology defines the record types of a molecular topology:
// atoms and the four relational record kinds (bonds, angles, dihedrals,
// impropers), plus the Topology aggregate that a parser hands to the
// extraction pipeline.
//
// Records are plain values. A relational record is an id, a type id, and
// an ordered tuple of atom ids; it is meaningful only while every atom id
// it references exists in the owning atom collection. The extraction
// pipeline (bondgraph, partial, remap, molecule) preserves that invariant
// end to end.
//
// Atom ids in a freshly parsed Topology come straight from the source
// file: unique, positive, in file order, and not assumed contiguous.
// Only the remap package ever rewrites them.
package topology
