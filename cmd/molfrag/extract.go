package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/molfrag/lammps"
	"github.com/katalvlaran/molfrag/molecule"
	"github.com/katalvlaran/molfrag/partial"
)

// extractOptions holds flags for a single-file extraction.
type extractOptions struct {
	file        string
	out         string
	bonding     []int
	deleteAtoms []int
	extend      []string
	elements    []string
	maxDistance int
}

func newExtractCmd(root *rootOptions) *cobra.Command {
	opts := &extractOptions{}

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract one partial structure to a molecule file",
		Example: "  molfrag extract --file reaction.data --bonding 5,12 \\\n" +
			"    --elements H,H,C,C,N,O,O,O --out pre-molecule.data",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(root.logger, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.file, "file", "", "LAMMPS read_data file (plain or .gz)")
	f.StringVar(&opts.out, "out", "molecule.data", "output molecule file")
	f.IntSliceVar(&opts.bonding, "bonding", nil, "bonding (seed) atom ids")
	f.IntSliceVar(&opts.deleteAtoms, "delete", nil, "atom ids to exclude regardless of reachability")
	f.StringArrayVar(&opts.extend, "extend", nil, "boundary extension edge=extra[,extra…]; repeatable")
	f.StringSliceVar(&opts.elements, "elements", nil, "element symbol per atom type, in type order")
	f.IntVar(&opts.maxDistance, "max-distance", partial.DefaultMaxBondDistance, "maximum bond distance from a bonding atom")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("bonding")
	_ = cmd.MarkFlagRequired("elements")

	return cmd
}

func runExtract(logger *zap.Logger, opts *extractOptions) error {
	ext, err := parseExtend(opts.extend)
	if err != nil {
		return err
	}

	top, err := lammps.Open(opts.file)
	if err != nil {
		return err
	}
	logger.Info("loaded topology",
		zap.String("file", opts.file),
		zap.Int("atoms", len(top.Atoms)),
		zap.Int("bonds", len(top.Bonds)))

	elements, err := lammps.ElementsByAtomID(top, opts.elements)
	if err != nil {
		return err
	}

	mol, err := molecule.Extract(top, opts.bonding, elements,
		molecule.WithMaxBondDistance(opts.maxDistance),
		molecule.WithDeleteAtoms(opts.deleteAtoms...),
		molecule.WithExtend(ext),
	)
	if err != nil {
		return err
	}
	atoms, bonds, angles, dihedrals, impropers := mol.Counts()
	logger.Info("extracted partial structure",
		zap.Int("atoms", atoms),
		zap.Int("bonds", bonds),
		zap.Int("angles", angles),
		zap.Int("dihedrals", dihedrals),
		zap.Int("impropers", impropers),
		zap.Ints("edge_atoms", mol.EdgeAtoms),
		zap.Strings("fingerprints", mol.Fingerprints))

	if err := lammps.WriteMoleculeFile(opts.out, mol); err != nil {
		return err
	}
	logger.Info("wrote molecule file", zap.String("out", opts.out))

	return nil
}

// parseExtend turns repeated "edge=extra[,extra…]" flags into the
// extension map consumed by the extractor.
func parseExtend(specs []string) (map[int][]int, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	out := make(map[int][]int, len(specs))
	for _, spec := range specs {
		key, rest, ok := strings.Cut(spec, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --extend %q: want edge=extra[,extra…]", spec)
		}
		edge, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			return nil, fmt.Errorf("invalid --extend %q: bad edge atom id: %w", spec, err)
		}
		for _, part := range strings.Split(rest, ",") {
			id, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return nil, fmt.Errorf("invalid --extend %q: bad atom id %q: %w", spec, part, err)
			}
			out[edge] = append(out[edge], id)
		}
	}
	return out, nil
}
