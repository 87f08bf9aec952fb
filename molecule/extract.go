package molecule

import (
	"fmt"

	"github.com/katalvlaran/molfrag/bondgraph"
	"github.com/katalvlaran/molfrag/fingerprint"
	"github.com/katalvlaran/molfrag/partial"
	"github.com/katalvlaran/molfrag/remap"
	"github.com/katalvlaran/molfrag/topology"
)

// Extract pulls the bounded partial structure around bondingAtoms out of
// top and renumbers it consistently. elements maps original atom ids to
// element symbols and is consumed only for fingerprint rendering.
//
// Stages, all in memory: bondgraph.Build → partial.Select →
// Selection.Extend → fingerprint.Capture/Render → remap. Each stage's
// sentinel errors pass through unchanged (partial.ErrConfig,
// fingerprint.ErrLookup, remap.ErrIntegrity), so callers can branch with
// errors.Is.
func Extract(top *topology.Topology, bondingAtoms []int, elements map[int]string, opts ...Option) (*Molecule, error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	for _, id := range bondingAtoms {
		if _, ok := top.AtomByID(id); !ok {
			return nil, fmt.Errorf("%w: bonding atom %d not present in topology", partial.ErrConfig, id)
		}
	}

	// The graph must reflect the original topology, not the filtered one:
	// boundary atoms beyond the truncation radius stay discoverable.
	g := bondgraph.Build(top.Bonds)

	selOpts := []partial.Option{partial.WithDeleteAtoms(o.DeleteAtoms...)}
	if o.MaxBondDistance > 0 {
		selOpts = append(selOpts, partial.WithMaxBondDistance(o.MaxBondDistance))
	}
	sel, err := partial.Select(g, bondingAtoms, selOpts...)
	if err != nil {
		return nil, err
	}
	if err = sel.Extend(o.Extend); err != nil {
		return nil, err
	}

	caps := fingerprint.Capture(g, sel.EdgeAtoms, sel.Valid)
	prints, err := fingerprint.Render(caps, elements)
	if err != nil {
		return nil, err
	}

	atoms, idMap := remap.Atoms(top.Atoms, sel.Valid, o.PriorMap)
	bonds, err := remap.Bonds(top.Bonds, sel.Valid, idMap)
	if err != nil {
		return nil, err
	}
	angles, err := remap.Angles(top.Angles, sel.Valid, idMap)
	if err != nil {
		return nil, err
	}
	dihedrals, err := remap.Dihedrals(top.Dihedrals, sel.Valid, idMap)
	if err != nil {
		return nil, err
	}
	impropers, err := remap.Impropers(top.Impropers, sel.Valid, idMap)
	if err != nil {
		return nil, err
	}

	newBonding, err := idMap.Translate(bondingAtoms)
	if err != nil {
		return nil, err
	}
	newEdges, err := idMap.Translate(sel.EdgeAtoms)
	if err != nil {
		return nil, err
	}

	return &Molecule{
		Atoms:        atoms,
		Bonds:        bonds,
		Angles:       angles,
		Dihedrals:    dihedrals,
		Impropers:    impropers,
		BondingAtoms: newBonding,
		EdgeAtoms:    newEdges,
		Fingerprints: prints,
		DeleteAtoms:  append([]int(nil), o.DeleteAtoms...),
		Map:          idMap,
		Selection:    sel,
	}, nil
}
