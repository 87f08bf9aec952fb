// Package partial: tunable options, sentinel errors, and the Selection
// result type.
package partial

import (
	"errors"
	"fmt"
)

// DefaultMaxBondDistance is the default traversal bound, in bonds,
// from any seed atom.
const DefaultMaxBondDistance = 3

// Sentinel errors for structure selection.
var (
	// ErrGraphNil is returned if a nil bond graph is passed.
	ErrGraphNil = errors.New("partial: bond graph is nil")

	// ErrConfig is returned for invalid extraction configuration:
	// an empty bonding-atom set, a bonding atom marked for deletion,
	// an atom both deleted and force-extended, or an extension keyed
	// by an atom that is not an edge atom.
	ErrConfig = errors.New("partial: invalid extraction configuration")
)

// Option configures Select via functional arguments. An invalid Option
// is recorded internally and surfaced as ErrConfig when Select runs.
type Option func(*Options)

// Options holds the selection parameters.
type Options struct {
	// MaxBondDistance bounds the BFS: an atom survives only if its
	// minimum distance from some seed is ≤ MaxBondDistance.
	MaxBondDistance int

	// DeleteAtoms are forcibly excluded regardless of reachability and
	// treated as non-traversable during the walk.
	DeleteAtoms []int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the default bond distance bound
// and no deletions.
func DefaultOptions() Options {
	return Options{
		MaxBondDistance: DefaultMaxBondDistance,
	}
}

// WithMaxBondDistance overrides the traversal bound.
//
//	d ≥ 1: limit to d bonds from the nearest seed
//	d < 1: invalid option → ErrConfig
func WithMaxBondDistance(d int) Option {
	return func(o *Options) {
		if d < 1 {
			o.err = fmt.Errorf("%w: max bond distance must be ≥ 1 (got %d)", ErrConfig, d)
			return
		}
		o.MaxBondDistance = d
	}
}

// WithDeleteAtoms marks atoms for forced exclusion. May be given more
// than once; ids accumulate.
func WithDeleteAtoms(ids ...int) Option {
	return func(o *Options) {
		o.DeleteAtoms = append(o.DeleteAtoms, ids...)
	}
}

// Selection is the outcome of a structure selection:
//   - Valid: the surviving atom set (grows only via Extend, never shrinks)
//   - EdgeAtoms: retained atoms with ≥1 pruned neighbor, ascending id order
//   - Dist: minimum bond distance from any seed, for atoms reached by the
//     walk (atoms admitted by Extend carry no entry)
type Selection struct {
	Valid     map[int]struct{}
	EdgeAtoms []int
	Dist      map[int]int

	graph   graphView
	deleted map[int]struct{}
}

// graphView is the read-only slice of bondgraph.Graph the selector needs.
// Accepting the interface keeps this package decoupled from construction.
type graphView interface {
	Neighbors(id int) []int
	ExternalNeighbors(id int, keep map[int]struct{}) []int
}

// Contains reports whether id survived selection.
func (s *Selection) Contains(id int) bool {
	_, ok := s.Valid[id]
	return ok
}

// IsEdgeAtom reports whether id is currently classified as an edge atom.
func (s *Selection) IsEdgeAtom(id int) bool {
	for _, e := range s.EdgeAtoms {
		if e == id {
			return true
		}
	}
	return false
}

// Deleted reports whether id was forcibly excluded.
func (s *Selection) Deleted(id int) bool {
	_, ok := s.deleted[id]
	return ok
}
