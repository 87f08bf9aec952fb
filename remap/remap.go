package remap

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/molfrag/topology"
)

// ErrIntegrity is returned when a surviving relational record references
// an atom id absent from the renumber map. This is a logic fault in
// surviving-set construction, not bad input; it is fatal and not retried.
var ErrIntegrity = errors.New("remap: record references atom absent from renumber map")

// Map is the old→new atom id bijection produced while renumbering.
// New ids are 1-based and dense over the surviving atoms.
type Map map[int]int

// NewID returns the renumbered id for old and whether old survived.
func (m Map) NewID(old int) (int, bool) {
	id, ok := m[old]
	return id, ok
}

// Translate maps a slice of original atom ids into the renumbered space,
// preserving order. Used to rewrite caller-facing references (bonding
// atoms, edge atoms) for output comments. Returns ErrIntegrity if any id
// did not survive.
func (m Map) Translate(old []int) ([]int, error) {
	out := make([]int, len(old))
	for i, id := range old {
		newID, ok := m[id]
		if !ok {
			return nil, fmt.Errorf("%w: atom %d", ErrIntegrity, id)
		}
		out[i] = newID
	}
	return out, nil
}

// Atoms filters the atom collection down to valid and renumbers the
// survivors densely from 1 in file order, rewriting only the ID field.
// When prev is non-nil its assignments are kept and new survivors extend
// it; pass nil to start numbering fresh. Returns the kept atoms in file
// order and the (possibly extended) Map.
func Atoms(atoms []topology.Atom, valid map[int]struct{}, prev Map) ([]topology.Atom, Map) {
	m := prev
	if m == nil {
		m = make(Map, len(valid))
	}
	out := make([]topology.Atom, 0, len(valid))
	for _, a := range atoms {
		if _, keep := valid[a.ID]; !keep {
			continue
		}
		newID, ok := m[a.ID]
		if !ok {
			newID = len(m) + 1
			m[a.ID] = newID
		}
		a.ID = newID
		out = append(out, a)
	}
	return out, m
}

// Bonds keeps only bonds whose both atoms survive and rewrites them
// through m. Record ids are reassigned 1-based in survival order.
func Bonds(bonds []topology.Bond, valid map[int]struct{}, m Map) ([]topology.Bond, error) {
	out := make([]topology.Bond, 0, len(bonds))
	for _, b := range bonds {
		ids, keep, err := rewrite("bond", b.ID, b.AtomIDs[:], valid, m)
		if err != nil {
			return nil, err
		}
		if !keep {
			continue
		}
		nb := topology.Bond{ID: len(out) + 1, TypeID: b.TypeID}
		copy(nb.AtomIDs[:], ids)
		out = append(out, nb)
	}
	return out, nil
}

// Angles keeps only angles whose every atom survives; see Bonds.
func Angles(angles []topology.Angle, valid map[int]struct{}, m Map) ([]topology.Angle, error) {
	out := make([]topology.Angle, 0, len(angles))
	for _, a := range angles {
		ids, keep, err := rewrite("angle", a.ID, a.AtomIDs[:], valid, m)
		if err != nil {
			return nil, err
		}
		if !keep {
			continue
		}
		na := topology.Angle{ID: len(out) + 1, TypeID: a.TypeID}
		copy(na.AtomIDs[:], ids)
		out = append(out, na)
	}
	return out, nil
}

// Dihedrals keeps only dihedrals whose every atom survives; see Bonds.
func Dihedrals(dihedrals []topology.Dihedral, valid map[int]struct{}, m Map) ([]topology.Dihedral, error) {
	out := make([]topology.Dihedral, 0, len(dihedrals))
	for _, d := range dihedrals {
		ids, keep, err := rewrite("dihedral", d.ID, d.AtomIDs[:], valid, m)
		if err != nil {
			return nil, err
		}
		if !keep {
			continue
		}
		nd := topology.Dihedral{ID: len(out) + 1, TypeID: d.TypeID}
		copy(nd.AtomIDs[:], ids)
		out = append(out, nd)
	}
	return out, nil
}

// Impropers keeps only impropers whose every atom survives; see Bonds.
func Impropers(impropers []topology.Improper, valid map[int]struct{}, m Map) ([]topology.Improper, error) {
	out := make([]topology.Improper, 0, len(impropers))
	for _, im := range impropers {
		ids, keep, err := rewrite("improper", im.ID, im.AtomIDs[:], valid, m)
		if err != nil {
			return nil, err
		}
		if !keep {
			continue
		}
		ni := topology.Improper{ID: len(out) + 1, TypeID: im.TypeID}
		copy(ni.AtomIDs[:], ids)
		out = append(out, ni)
	}
	return out, nil
}

// rewrite decides survival of one record and maps its atom tuple.
// A record is dropped whole as soon as one referenced atom is outside
// valid; there is no partial truncation at the record level. An atom that
// IS valid but missing from m violates the bijection and is ErrIntegrity.
func rewrite(kind string, recID int, atomIDs []int, valid map[int]struct{}, m Map) ([]int, bool, error) {
	for _, id := range atomIDs {
		if _, keep := valid[id]; !keep {
			return nil, false, nil
		}
	}
	out := make([]int, len(atomIDs))
	for i, id := range atomIDs {
		newID, ok := m[id]
		if !ok {
			return nil, false, fmt.Errorf("%w: %s %d references atom %d", ErrIntegrity, kind, recID, id)
		}
		out[i] = newID
	}
	return out, true, nil
}
