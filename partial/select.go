package partial

import (
	"fmt"
	"sort"
)

// queueItem pairs an atom id with its BFS distance from the nearest seed.
type queueItem struct {
	id   int
	dist int
}

// Select runs the bounded multi-seed traversal and classifies the
// boundary. seeds are the bonding atoms; every seed starts at distance 0.
// Returns ErrGraphNil for a nil graph and ErrConfig for an empty seed
// set, a bad option, or a seed that is also marked for deletion.
func Select(g graphView, seeds []int, opts ...Option) (*Selection, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(seeds) == 0 {
		return nil, fmt.Errorf("%w: no bonding atoms specified", ErrConfig)
	}

	deleted := make(map[int]struct{}, len(o.DeleteAtoms))
	for _, id := range o.DeleteAtoms {
		deleted[id] = struct{}{}
	}
	for _, s := range seeds {
		if _, gone := deleted[s]; gone {
			return nil, fmt.Errorf("%w: bonding atom %d is marked for deletion", ErrConfig, s)
		}
	}

	sel := &Selection{
		Valid:   make(map[int]struct{}),
		Dist:    make(map[int]int),
		graph:   g,
		deleted: deleted,
	}
	sel.walk(seeds, o.MaxBondDistance)
	sel.EdgeAtoms = sel.classifyEdges()

	return sel, nil
}

// walk performs the breadth-first traversal. Deleted atoms are
// non-traversable: the walk neither enqueues them nor crosses them,
// so every neighbor of a deleted atom is a boundary candidate.
func (s *Selection) walk(seeds []int, maxDist int) {
	queue := make([]queueItem, 0, len(seeds))
	for _, seed := range seeds {
		if s.Contains(seed) {
			continue // duplicate seed
		}
		s.admit(seed, 0)
		queue = append(queue, queueItem{id: seed, dist: 0})
	}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		if item.dist == maxDist {
			continue // frontier: neighbors would exceed the bound
		}
		for _, nbr := range s.graph.Neighbors(item.id) {
			if _, gone := s.deleted[nbr]; gone {
				continue
			}
			if s.Contains(nbr) {
				continue
			}
			s.admit(nbr, item.dist+1)
			queue = append(queue, queueItem{id: nbr, dist: item.dist + 1})
		}
	}
}

// admit records id as surviving at the given distance.
func (s *Selection) admit(id, dist int) {
	s.Valid[id] = struct{}{}
	s.Dist[id] = dist
}

// classifyEdges recomputes the edge atom list against the current Valid
// set: an atom qualifies iff it has ≥1 original-graph neighbor outside
// the set (pruned by distance or deleted). Ascending id order.
func (s *Selection) classifyEdges() []int {
	ids := make([]int, 0, len(s.Valid))
	for id := range s.Valid {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	edges := ids[:0]
	for _, id := range ids {
		if len(s.graph.ExternalNeighbors(id, s.Valid)) > 0 {
			edges = append(edges, id)
		}
	}
	return edges
}
