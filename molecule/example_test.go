package molecule_test

import (
	"fmt"

	"github.com/katalvlaran/molfrag/molecule"
	"github.com/katalvlaran/molfrag/topology"
)

// ExampleExtract pulls a two-bond neighborhood out of a small chain and
// prints the boundary annotations a serializer would emit as comments.
func ExampleExtract() {
	// H(1)-C(2)-C(3)-C(4)-C(5)-C(6)-H(7)
	top := &topology.Topology{}
	for id := 1; id <= 7; id++ {
		typeID := 2
		if id == 1 || id == 7 {
			typeID = 1
		}
		top.Atoms = append(top.Atoms, topology.Atom{ID: id, MolID: 1, TypeID: typeID})
	}
	for i := 1; i < 7; i++ {
		top.Bonds = append(top.Bonds, topology.Bond{ID: i, TypeID: 1, AtomIDs: [2]int{i, i + 1}})
	}
	elements := map[int]string{1: "H", 2: "C", 3: "C", 4: "C", 5: "C", 6: "C", 7: "H"}

	mol, err := molecule.Extract(top, []int{4}, elements,
		molecule.WithMaxBondDistance(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("bonding atoms:", mol.BondingAtoms)
	fmt.Println("edge atoms:", mol.EdgeAtoms)
	fmt.Println("fingerprints:", mol.Fingerprints)
	// Output:
	// bonding atoms: [3]
	// edge atoms: [1 5]
	// fingerprints: [H H]
}
