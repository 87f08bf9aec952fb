package partial

import "fmt"

// Extend re-admits the given atoms into the selection, keyed by the edge
// atom whose boundary they sit on, then reclassifies the edge set against
// the enlarged selection. A previously classified edge atom may cease to
// be one once its excluded neighbor is admitted; a newly admitted atom
// may itself become one.
//
// Extension is single-pass: atoms admitted here are not eligible for
// further extension within the same call. Returns ErrConfig when a key is
// not a current edge atom or when an atom is both deleted and
// force-extended; the selection is left untouched on error.
func (s *Selection) Extend(ext map[int][]int) error {
	if len(ext) == 0 {
		return nil
	}

	// Validate the whole request before mutating anything.
	for edge, extra := range ext {
		if !s.IsEdgeAtom(edge) {
			return fmt.Errorf("%w: atom %d is not an edge atom, cannot extend from it", ErrConfig, edge)
		}
		for _, id := range extra {
			if _, gone := s.deleted[id]; gone {
				return fmt.Errorf("%w: atom %d is both deleted and force-extended", ErrConfig, id)
			}
		}
	}

	for _, extra := range ext {
		for _, id := range extra {
			s.Valid[id] = struct{}{}
		}
	}
	s.EdgeAtoms = s.classifyEdges()

	return nil
}
