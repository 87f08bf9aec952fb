package lammps

import (
	"fmt"

	"github.com/katalvlaran/molfrag/topology"
)

// ElementsByAtomID turns an ordered atom-type→element list into an atom
// id → element symbol map for the given topology. elementsByType is
// indexed by atom type, 1-based: type 1 is elementsByType[0].
// Returns ErrElementRange if any atom's type has no entry.
func ElementsByAtomID(top *topology.Topology, elementsByType []string) (map[int]string, error) {
	out := make(map[int]string, len(top.Atoms))
	for _, a := range top.Atoms {
		if a.TypeID < 1 || a.TypeID > len(elementsByType) {
			return nil, fmt.Errorf("%w: atom %d has type %d, list has %d entries",
				ErrElementRange, a.ID, a.TypeID, len(elementsByType))
		}
		out[a.ID] = elementsByType[a.TypeID-1]
	}
	return out, nil
}
