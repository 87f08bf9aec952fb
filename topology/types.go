// Package topology declares Atom, the relational record kinds,
// Header, and the Topology aggregate.
package topology

// Atom is a single atom record in atom_style full order:
// id, molecule-group id, type, charge, x, y, z.
// Everything but ID is read-only to the extraction pipeline.
type Atom struct {
	// ID uniquely identifies the atom within its Topology.
	ID int

	// MolID is the molecule-group the atom belongs to.
	MolID int

	// TypeID is the force-field atom type (1-based).
	TypeID int

	// Charge is the partial charge.
	Charge float64

	// X, Y, Z are the cartesian coordinates.
	X, Y, Z float64
}

// Bond connects two atoms.
type Bond struct {
	ID      int
	TypeID  int
	AtomIDs [2]int
}

// Angle spans three atoms.
type Angle struct {
	ID      int
	TypeID  int
	AtomIDs [3]int
}

// Dihedral spans four atoms.
type Dihedral struct {
	ID      int
	TypeID  int
	AtomIDs [4]int
}

// Improper spans four atoms.
type Improper struct {
	ID      int
	TypeID  int
	AtomIDs [4]int
}

// Header carries the count lines and box bounds of a data file.
// Counts describe the file as parsed; after extraction they are
// recomputed from the surviving records.
type Header struct {
	Atoms     int
	Bonds     int
	Angles    int
	Dihedrals int
	Impropers int

	AtomTypes     int
	BondTypes     int
	AngleTypes    int
	DihedralTypes int
	ImproperTypes int

	// Box bounds as [lo, hi] per axis.
	XBounds [2]float64
	YBounds [2]float64
	ZBounds [2]float64
}

// Topology is one fully loaded topology file: ordered atom and relational
// record collections plus header metadata. Slices keep file order.
type Topology struct {
	Header    Header
	Atoms     []Atom
	Bonds     []Bond
	Angles    []Angle
	Dihedrals []Dihedral
	Impropers []Improper
}

// Counts returns the per-kind record counts of the collections as held,
// ignoring the possibly stale Header values.
func (t *Topology) Counts() (atoms, bonds, angles, dihedrals, impropers int) {
	return len(t.Atoms), len(t.Bonds), len(t.Angles), len(t.Dihedrals), len(t.Impropers)
}

// AtomByID returns the atom with the given id and whether it exists.
// Linear scan; collections are small enough that no index is kept.
func (t *Topology) AtomByID(id int) (Atom, bool) {
	for _, a := range t.Atoms {
		if a.ID == id {
			return a, true
		}
	}
	return Atom{}, false
}
