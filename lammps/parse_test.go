package lammps_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molfrag/lammps"
	"github.com/katalvlaran/molfrag/topology"
)

// sampleData is a minimal Moltemplate-style read_data file: a 4-atom
// chain with coefficient and mass sections the extractor must skip.
const sampleData = `Sample chain, atom_style full

4 atoms
3 bonds
2 angles
1 dihedrals
0 impropers

2 atom types
1 bond types
1 angle types
1 dihedral types

0.0 10.0 xlo xhi
-5.0 5.0 ylo yhi
0.0 20.0 zlo zhi

Masses

1 1.008
2 12.011

Pair Coeffs

1 0.03 2.5
2 0.07 3.55

Bond Coeffs

1 340.0 1.09

Atoms

1 1 1 0.06 1.0 0.0 0.0
2 1 2 -0.18 2.0 0.0 0.0  # backbone carbon
3 1 2 -0.18 3.0 0.0 0.0 0 0 1
4 1 1 0.06 4.0 0.0 0.0

Bonds

1 1 1 2
2 1 2 3
3 1 3 4

Angles

1 1 1 2 3
2 1 2 3 4

Dihedrals

1 1 1 2 3 4
`

func TestParse_Header(t *testing.T) {
	top, err := lammps.Parse(strings.NewReader(sampleData))
	require.NoError(t, err)

	h := top.Header
	assert.Equal(t, 4, h.Atoms)
	assert.Equal(t, 3, h.Bonds)
	assert.Equal(t, 2, h.Angles)
	assert.Equal(t, 1, h.Dihedrals)
	assert.Equal(t, 0, h.Impropers)
	assert.Equal(t, 2, h.AtomTypes)
	assert.Equal(t, [2]float64{0, 10}, h.XBounds)
	assert.Equal(t, [2]float64{-5, 5}, h.YBounds)
	assert.Equal(t, [2]float64{0, 20}, h.ZBounds)
}

func TestParse_Records(t *testing.T) {
	top, err := lammps.Parse(strings.NewReader(sampleData))
	require.NoError(t, err)

	require.Len(t, top.Atoms, 4)
	assert.Equal(t, topology.Atom{
		ID: 2, MolID: 1, TypeID: 2, Charge: -0.18, X: 2, Y: 0, Z: 0,
	}, top.Atoms[1], "inline comment stripped")
	assert.Equal(t, topology.Atom{
		ID: 3, MolID: 1, TypeID: 2, Charge: -0.18, X: 3, Y: 0, Z: 0,
	}, top.Atoms[2], "image flags ignored")

	require.Len(t, top.Bonds, 3)
	assert.Equal(t, topology.Bond{ID: 2, TypeID: 1, AtomIDs: [2]int{2, 3}}, top.Bonds[1])

	require.Len(t, top.Angles, 2)
	assert.Equal(t, [3]int{1, 2, 3}, top.Angles[0].AtomIDs)

	require.Len(t, top.Dihedrals, 1)
	assert.Equal(t, [4]int{1, 2, 3, 4}, top.Dihedrals[0].AtomIDs)

	assert.Empty(t, top.Impropers)
}

func TestParse_MissingAtomsSection(t *testing.T) {
	_, err := lammps.Parse(strings.NewReader("comment\n\n0 atoms\n"))
	assert.ErrorIs(t, err, lammps.ErrNoSection)
}

func TestParse_MalformedRecords(t *testing.T) {
	_, err := lammps.Parse(strings.NewReader("c\n\nAtoms\n\n1 1 1 bad 0 0 0\n"))
	assert.ErrorIs(t, err, lammps.ErrBadRecord)

	_, err = lammps.Parse(strings.NewReader("c\n\nAtoms\n\n1 1 1 0.0 0 0 0\n\nBonds\n\n1 1 2\n"))
	assert.ErrorIs(t, err, lammps.ErrBadRecord, "bond arity")
}

func TestOpen_PlainAndGzip(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "sample.data")
	require.NoError(t, os.WriteFile(plain, []byte(sampleData), 0o644))

	zipped := filepath.Join(dir, "sample.data.gz")
	f, err := os.Create(zipped)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte(sampleData))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	fromPlain, err := lammps.Open(plain)
	require.NoError(t, err)
	fromGzip, err := lammps.Open(zipped)
	require.NoError(t, err)

	assert.Equal(t, fromPlain, fromGzip)
}

func TestElementsByAtomID(t *testing.T) {
	top, err := lammps.Parse(strings.NewReader(sampleData))
	require.NoError(t, err)

	elements, err := lammps.ElementsByAtomID(top, []string{"H", "C"})
	require.NoError(t, err)
	assert.Equal(t, map[int]string{1: "H", 2: "C", 3: "C", 4: "H"}, elements)

	_, err = lammps.ElementsByAtomID(top, []string{"H"})
	assert.ErrorIs(t, err, lammps.ErrElementRange, "type 2 outside one-entry list")
}
