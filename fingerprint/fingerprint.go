package fingerprint

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrLookup is returned when a pruned neighbor id has no entry in the
// supplied element mapping. Rendering never substitutes a placeholder
// symbol; a gap in the mapping is fatal for the extraction.
var ErrLookup = errors.New("fingerprint: no element for atom")

// graphView is the pruned-partner query Capture needs from a bond graph.
type graphView interface {
	ExternalNeighbors(id int, keep map[int]struct{}) []int
}

// ExternalNeighbors lists the pruned partners of one edge atom.
// Neighbors keeps the deterministic encounter order (ascending id) for
// reproducibility; equivalence is defined on the multiset, not the order.
type ExternalNeighbors struct {
	AtomID    int
	Neighbors []int
}

// Capture collects the pruned partners of every edge atom against the
// final surviving atom set. edgeAtoms is consumed in the given order and
// the result is aligned with it, so captures stay attached to their edge
// atoms through renumbering.
func Capture(g graphView, edgeAtoms []int, valid map[int]struct{}) []ExternalNeighbors {
	caps := make([]ExternalNeighbors, 0, len(edgeAtoms))
	for _, id := range edgeAtoms {
		caps = append(caps, ExternalNeighbors{
			AtomID:    id,
			Neighbors: g.ExternalNeighbors(id, valid),
		})
	}
	return caps
}

// Render converts captures into fingerprint strings using the supplied
// atom id → element symbol mapping. Symbols are sorted and concatenated,
// so any permutation of a capture's neighbors renders identically.
// Returns one string per capture, in capture order, or ErrLookup if any
// neighbor id is missing from elements.
func Render(caps []ExternalNeighbors, elements map[int]string) ([]string, error) {
	out := make([]string, 0, len(caps))
	for _, c := range caps {
		symbols := make([]string, 0, len(c.Neighbors))
		for _, id := range c.Neighbors {
			sym, ok := elements[id]
			if !ok {
				return nil, fmt.Errorf("%w %d (edge atom %d)", ErrLookup, id, c.AtomID)
			}
			symbols = append(symbols, sym)
		}
		sort.Strings(symbols)
		out = append(out, strings.Join(symbols, ""))
	}
	return out, nil
}
