package lammps

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/molfrag/topology"
)

// parseHeaderLine interprets one tidied pre-section line. Recognized
// forms, per the conventional Moltemplate header:
//
//	<n> atoms|bonds|angles|dihedrals|impropers
//	<n> atom|bond|angle|dihedral|improper types
//	<lo> <hi> xlo xhi   (same for y, z)
//
// Unrecognized header lines are ignored rather than rejected; data files
// in the wild carry extras (extra bond per atom, ellipsoids, …).
func parseHeaderLine(h *topology.Header, line string) error {
	f := strings.Fields(line)
	switch {
	case len(f) == 2:
		n, err := strconv.Atoi(f[0])
		if err != nil {
			return fmt.Errorf("%w: %q", ErrBadHeader, line)
		}
		switch f[1] {
		case "atoms":
			h.Atoms = n
		case "bonds":
			h.Bonds = n
		case "angles":
			h.Angles = n
		case "dihedrals":
			h.Dihedrals = n
		case "impropers":
			h.Impropers = n
		}
	case len(f) == 3 && f[2] == "types":
		n, err := strconv.Atoi(f[0])
		if err != nil {
			return fmt.Errorf("%w: %q", ErrBadHeader, line)
		}
		switch f[1] {
		case "atom":
			h.AtomTypes = n
		case "bond":
			h.BondTypes = n
		case "angle":
			h.AngleTypes = n
		case "dihedral":
			h.DihedralTypes = n
		case "improper":
			h.ImproperTypes = n
		}
	case len(f) == 4 && strings.HasSuffix(f[2], "lo"):
		lo, errLo := strconv.ParseFloat(f[0], 64)
		hi, errHi := strconv.ParseFloat(f[1], 64)
		if errLo != nil || errHi != nil {
			return fmt.Errorf("%w: %q", ErrBadHeader, line)
		}
		switch f[2] {
		case "xlo":
			h.XBounds = [2]float64{lo, hi}
		case "ylo":
			h.YBounds = [2]float64{lo, hi}
		case "zlo":
			h.ZBounds = [2]float64{lo, hi}
		}
	}
	return nil
}
