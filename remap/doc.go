// Package remap renumbers a surviving atom set densely from 1 and
// rewrites every atom-referencing column of the relational record kinds
// (bonds, angles, dihedrals, impropers) consistently.
//
// Contract:
//   - atoms are walked in file order; survivors get new ids 1,2,3,… in
//     encounter order, recorded in a Map (old → new bijection)
//   - a relational record survives only if EVERY atom it references
//     survives; survivors get their atom columns rewritten through the
//     Map and their own record id reassigned 1-based in survival order,
//     independent of atom numbering
//   - a supplied prior Map is reused and extended, so a later pass over
//     the same fragment keeps the numbering already handed out
//
// Integrity: a surviving record whose atom id fails to resolve in the Map
// indicates a defect in upstream selection; the rewrite fails loudly with
// ErrIntegrity instead of emitting a dangling reference.
package remap
