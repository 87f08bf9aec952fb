// Package molecule assembles the partial-structure extraction pipeline
// into a single output value.
//
// Extract runs the full control flow in memory — bond graph build,
// bounded selection, optional boundary extension, fingerprint capture and
// rendering, consistent renumbering — and only then hands back a complete
// Molecule. Nothing is emitted while any stage can still fail, so a
// serializer never sees a partial result.
//
// The returned renumber map stays available to callers: any original atom
// id they hold (bonding atoms, delete atoms) can be translated into the
// renumbered space before being surfaced in output comments or fed to the
// downstream cross-fragment mapper.
package molecule
