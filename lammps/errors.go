package lammps

import "errors"

// Sentinel errors for data-file reading and element lookup.
var (
	// ErrBadRecord indicates a section line that does not parse as a
	// record of its section's kind.
	ErrBadRecord = errors.New("lammps: malformed record line")

	// ErrNoSection indicates a required section (Atoms) is absent.
	ErrNoSection = errors.New("lammps: required section missing")

	// ErrBadHeader indicates an unparseable count or bounds line.
	ErrBadHeader = errors.New("lammps: malformed header line")

	// ErrElementRange indicates an atom type with no entry in the
	// elements-by-type list.
	ErrElementRange = errors.New("lammps: atom type outside elements-by-type list")
)
