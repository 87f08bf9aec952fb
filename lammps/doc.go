// Package lammps reads LAMMPS read_data files into topology values and
// writes extracted partial structures as LAMMPS molecule-format files.
//
// Reading assumes atom_style full and the conventional Moltemplate-style
// header: a comment line, per-kind count lines, type-count lines, and box
// bounds, followed by keyword-delimited sections (Masses, the Coeffs
// families, Atoms, Velocities, Bonds, Angles, Dihedrals, Impropers).
// Input is tidied first: inline "#" comments and blank lines are dropped
// and whitespace is collapsed. Open handles .gz files transparently.
//
// Writing emits the molecule counterpart: annotation comments
// (Bonding_Atoms, Edge_Atoms, Edge_Atom_Fingerprints, Delete_Atoms), a
// count header recomputed from the records actually emitted, and the
// Types / Charges / Coords / Bonds / Angles / Dihedrals / Impropers
// sections, skipping empty ones. Header count fields always equal the
// number of emitted records per section.
package lammps
