// Package molecule: extraction options and the Molecule output value.
package molecule

import (
	"github.com/katalvlaran/molfrag/partial"
	"github.com/katalvlaran/molfrag/remap"
	"github.com/katalvlaran/molfrag/topology"
)

// Option configures Extract via functional arguments.
type Option func(*Options)

// Options holds extraction parameters beyond the mandatory seeds and
// element lookup.
type Options struct {
	// MaxBondDistance bounds the selection walk; 0 means the partial
	// package default.
	MaxBondDistance int

	// DeleteAtoms are forcibly excluded from the extracted structure.
	DeleteAtoms []int

	// Extend maps edge atom ids to additional atoms forced into the
	// structure after selection.
	Extend map[int][]int

	// PriorMap, when non-nil, is reused so a repeat pass over the same
	// fragment keeps the numbering already handed out.
	PriorMap remap.Map
}

// WithMaxBondDistance overrides the selection bound.
func WithMaxBondDistance(d int) Option {
	return func(o *Options) { o.MaxBondDistance = d }
}

// WithDeleteAtoms marks atoms for forced exclusion.
func WithDeleteAtoms(ids ...int) Option {
	return func(o *Options) { o.DeleteAtoms = append(o.DeleteAtoms, ids...) }
}

// WithExtend supplies the boundary-extension request.
func WithExtend(ext map[int][]int) Option {
	return func(o *Options) { o.Extend = ext }
}

// WithPriorMap reuses an existing renumber map.
func WithPriorMap(m remap.Map) Option {
	return func(o *Options) { o.PriorMap = m }
}

// Molecule is one extracted, renumbered partial structure together with
// its boundary annotations. Record slices are dense: every id field runs
// 1..len(slice) and every atom column resolves inside Atoms.
type Molecule struct {
	Atoms     []topology.Atom
	Bonds     []topology.Bond
	Angles    []topology.Angle
	Dihedrals []topology.Dihedral
	Impropers []topology.Improper

	// BondingAtoms and EdgeAtoms are in the renumbered space.
	BondingAtoms []int
	EdgeAtoms    []int

	// Fingerprints is aligned with EdgeAtoms.
	Fingerprints []string

	// DeleteAtoms keeps the ORIGINAL ids of forcibly excluded atoms:
	// they never survive, so they have no renumbered identity.
	DeleteAtoms []int

	// Map is the old→new renumber bijection for caller-side translation.
	Map remap.Map

	// Selection is the underlying selection, kept for diagnostics.
	Selection *partial.Selection
}

// Counts returns the per-kind record counts of the extracted structure.
// Zero is a valid count for any kind.
func (m *Molecule) Counts() (atoms, bonds, angles, dihedrals, impropers int) {
	return len(m.Atoms), len(m.Bonds), len(m.Angles), len(m.Dihedrals), len(m.Impropers)
}
