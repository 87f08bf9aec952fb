package lammps

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/molfrag/molecule"
)

// WriteMolecule serializes an extracted partial structure in LAMMPS
// molecule format: annotation comments, the count header, then the
// Types, Charges, Coords, Bonds, Angles, Dihedrals and Impropers
// sections. Empty sections are omitted; header counts always equal the
// number of records actually emitted.
func WriteMolecule(w io.Writer, mol *molecule.Molecule) error {
	bw := bufio.NewWriter(w)

	writeComment(bw, "Bonding_Atoms", intFields(mol.BondingAtoms))
	writeComment(bw, "Edge_Atoms", intFields(mol.EdgeAtoms))
	writeComment(bw, "Edge_Atom_Fingerprints", mol.Fingerprints)
	if len(mol.DeleteAtoms) > 0 {
		writeComment(bw, "Delete_Atoms", intFields(mol.DeleteAtoms))
	}
	fmt.Fprintln(bw)

	atoms, bonds, angles, dihedrals, impropers := mol.Counts()
	fmt.Fprintf(bw, "%d atoms\n", atoms)
	fmt.Fprintf(bw, "%d bonds\n", bonds)
	fmt.Fprintf(bw, "%d angles\n", angles)
	fmt.Fprintf(bw, "%d dihedrals\n", dihedrals)
	fmt.Fprintf(bw, "%d impropers\n", impropers)

	if len(mol.Atoms) > 0 {
		section(bw, "Types")
		for _, a := range mol.Atoms {
			fmt.Fprintf(bw, "%d %d\n", a.ID, a.TypeID)
		}
		section(bw, "Charges")
		for _, a := range mol.Atoms {
			fmt.Fprintf(bw, "%d %s\n", a.ID, ftoa(a.Charge))
		}
		section(bw, "Coords")
		for _, a := range mol.Atoms {
			fmt.Fprintf(bw, "%d %s %s %s\n", a.ID, ftoa(a.X), ftoa(a.Y), ftoa(a.Z))
		}
	}

	if len(mol.Bonds) > 0 {
		section(bw, "Bonds")
		for _, b := range mol.Bonds {
			fmt.Fprintf(bw, "%d %d %d %d\n", b.ID, b.TypeID, b.AtomIDs[0], b.AtomIDs[1])
		}
	}
	if len(mol.Angles) > 0 {
		section(bw, "Angles")
		for _, a := range mol.Angles {
			fmt.Fprintf(bw, "%d %d %d %d %d\n", a.ID, a.TypeID, a.AtomIDs[0], a.AtomIDs[1], a.AtomIDs[2])
		}
	}
	if len(mol.Dihedrals) > 0 {
		section(bw, "Dihedrals")
		for _, d := range mol.Dihedrals {
			fmt.Fprintf(bw, "%d %d %d %d %d %d\n", d.ID, d.TypeID, d.AtomIDs[0], d.AtomIDs[1], d.AtomIDs[2], d.AtomIDs[3])
		}
	}
	if len(mol.Impropers) > 0 {
		section(bw, "Impropers")
		for _, im := range mol.Impropers {
			fmt.Fprintf(bw, "%d %d %d %d %d %d\n", im.ID, im.TypeID, im.AtomIDs[0], im.AtomIDs[1], im.AtomIDs[2], im.AtomIDs[3])
		}
	}

	return bw.Flush()
}

// WriteMoleculeFile writes the molecule to path, creating or truncating.
func WriteMoleculeFile(path string, mol *molecule.Molecule) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = WriteMolecule(f, mol); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// writeComment emits one "# Keyword value value …" annotation line.
func writeComment(w io.Writer, keyword string, values []string) {
	fields := append([]string{"# " + keyword}, values...)
	fmt.Fprintln(w, strings.Join(fields, " "))
}

func intFields(ids []int) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = strconv.Itoa(id)
	}
	return out
}

// section emits a blank-line-delimited section keyword.
func section(w io.Writer, keyword string) {
	fmt.Fprintf(w, "\n%s\n\n", keyword)
}

// ftoa formats a float the shortest way that round-trips.
func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
