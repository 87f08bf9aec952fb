package lammps

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/katalvlaran/molfrag/topology"
)

// sectionKeywords are the body keywords this reader recognizes. Sections
// the extractor does not consume (Masses, Velocities, the Coeffs
// families) are detected so their bodies can be skipped cleanly.
var sectionKeywords = map[string]bool{
	"Masses":     true,
	"Atoms":      true,
	"Velocities": true,
	"Bonds":      true,
	"Angles":     true,
	"Dihedrals":  true,
	"Impropers":  true,
}

// Open reads a data file from disk, decompressing transparently when the
// name ends in .gz, and parses it.
func Open(path string) (*topology.Topology, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("lammps: open %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}
	top, err := Parse(r)
	if err != nil {
		return nil, fmt.Errorf("lammps: parse %s: %w", path, err)
	}
	return top, nil
}

// Parse reads a tidied view of a read_data stream into a Topology.
// The first line is the file comment; header lines follow until the
// first section keyword. Returns ErrNoSection if no Atoms section exists.
func Parse(r io.Reader) (*topology.Topology, error) {
	top := &topology.Topology{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	section := ""
	first := true
	for scanner.Scan() {
		line := tidy(scanner.Text())
		if first {
			// file comment line, even when blank
			first = false
			continue
		}
		if line == "" {
			continue
		}
		if kw, ok := sectionKeyword(line); ok {
			section = kw
			continue
		}

		var err error
		switch section {
		case "":
			err = parseHeaderLine(&top.Header, line)
		case "Atoms":
			err = appendAtom(top, line)
		case "Bonds":
			err = appendBond(top, line)
		case "Angles":
			err = appendAngle(top, line)
		case "Dihedrals":
			err = appendDihedral(top, line)
		case "Impropers":
			err = appendImproper(top, line)
		default:
			// Masses, Velocities, Coeffs bodies: not consumed
		}
		if err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(top.Atoms) == 0 {
		return nil, fmt.Errorf("%w: Atoms", ErrNoSection)
	}
	return top, nil
}

// tidy strips an inline comment and collapses surrounding whitespace.
func tidy(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}

// sectionKeyword reports whether a tidied line is a section keyword.
// Any "<Word> Coeffs" or "<Word> <Word> Coeffs" heading counts.
func sectionKeyword(line string) (string, bool) {
	if sectionKeywords[line] {
		return line, true
	}
	if strings.HasSuffix(line, "Coeffs") {
		return line, true
	}
	return "", false
}

func appendAtom(top *topology.Topology, line string) error {
	f := strings.Fields(line)
	// atom_style full: id mol type charge x y z, optionally image flags
	if len(f) < 7 {
		return fmt.Errorf("%w: atom line %q", ErrBadRecord, line)
	}
	ints, err := atoiAll(f[:3])
	if err != nil {
		return fmt.Errorf("%w: atom line %q: %v", ErrBadRecord, line, err)
	}
	floats, err := parseFloats(f[3:7])
	if err != nil {
		return fmt.Errorf("%w: atom line %q: %v", ErrBadRecord, line, err)
	}
	top.Atoms = append(top.Atoms, topology.Atom{
		ID:     ints[0],
		MolID:  ints[1],
		TypeID: ints[2],
		Charge: floats[0],
		X:      floats[1],
		Y:      floats[2],
		Z:      floats[3],
	})
	return nil
}

func appendBond(top *topology.Topology, line string) error {
	ints, err := relational(line, 2)
	if err != nil {
		return err
	}
	top.Bonds = append(top.Bonds, topology.Bond{
		ID: ints[0], TypeID: ints[1], AtomIDs: [2]int{ints[2], ints[3]},
	})
	return nil
}

func appendAngle(top *topology.Topology, line string) error {
	ints, err := relational(line, 3)
	if err != nil {
		return err
	}
	top.Angles = append(top.Angles, topology.Angle{
		ID: ints[0], TypeID: ints[1], AtomIDs: [3]int{ints[2], ints[3], ints[4]},
	})
	return nil
}

func appendDihedral(top *topology.Topology, line string) error {
	ints, err := relational(line, 4)
	if err != nil {
		return err
	}
	top.Dihedrals = append(top.Dihedrals, topology.Dihedral{
		ID: ints[0], TypeID: ints[1], AtomIDs: [4]int{ints[2], ints[3], ints[4], ints[5]},
	})
	return nil
}

func appendImproper(top *topology.Topology, line string) error {
	ints, err := relational(line, 4)
	if err != nil {
		return err
	}
	top.Impropers = append(top.Impropers, topology.Improper{
		ID: ints[0], TypeID: ints[1], AtomIDs: [4]int{ints[2], ints[3], ints[4], ints[5]},
	})
	return nil
}

// relational parses "id type atom-id…" with the given atom arity.
func relational(line string, arity int) ([]int, error) {
	f := strings.Fields(line)
	if len(f) != arity+2 {
		return nil, fmt.Errorf("%w: record line %q (want %d fields)", ErrBadRecord, line, arity+2)
	}
	ints, err := atoiAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: record line %q: %v", ErrBadRecord, line, err)
	}
	return ints, nil
}

func atoiAll(fields []string) ([]int, error) {
	out := make([]int, len(fields))
	for i, s := range fields {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func parseFloats(fields []string) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, s := range fields {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
