// Package molfrag extracts bounded partial structures from molecular
// topologies and renumbers them consistently for cross-reaction atom
// matching.
//
// 🚀 What is molfrag?
//
//	Given a LAMMPS read_data topology and a set of "bonding atoms" marking
//	the reacting region, molfrag keeps only the atoms within a bond
//	distance bound of those seeds, detects the edge atoms where bonds were
//	cut, fingerprints the chemical identity pruned away at each cut, and
//	rewrites atoms, bonds, angles, dihedrals and impropers onto dense
//	1-based ids without ever emitting a dangling reference.
//
// ✨ Why?
//
//	Pre- and post-reaction partial structures extracted this way can be
//	matched atom-to-atom by an external mapper: the edge fingerprints
//	preserve exactly the identity information truncation would otherwise
//	destroy.
//
// Everything is organized per concern:
//
//	topology/    — atom and relational record types, the Topology aggregate
//	bondgraph/   — undirected adjacency over atom ids from bond records
//	partial/     — bounded multi-seed BFS selection, deletion, boundary
//	               extension, edge-atom classification
//	fingerprint/ — pruned-partner capture and element fingerprint rendering
//	remap/       — dense renumbering of atoms and every dependent record kind
//	molecule/    — the assembled extraction pipeline and its output value
//	lammps/      — read_data parsing and molecule-format serialization
//	cmd/molfrag/ — the command-line tool (single extraction and YAML batch)
//
// All core stages are pure, single-threaded, and deterministic: identical
// inputs give identical outputs, so callers are free to parallelize across
// independent topology files.
package molfrag
