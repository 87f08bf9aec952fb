// Package fingerprint captures and renders edge-atom fingerprints:
// stable signatures over the chemical identity lost at a truncation
// boundary.
//
// Capture records, for every edge atom, the bonded neighbors that
// truncation pruned away, reading the ORIGINAL bond graph against the
// FINAL surviving atom set. Rendering is deferred until an element lookup
// is available: each pruned partner id becomes its element symbol, and
// the symbols are sorted and concatenated into one string per edge atom.
//
// Two edge atoms whose pruned partners form the same element multiset
// render to the same string regardless of neighbor order. That is
// intentional: the downstream cross-fragment mapper resolves such ties,
// this package does not.
package fingerprint
