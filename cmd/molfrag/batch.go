package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/molfrag/lammps"
	"github.com/katalvlaran/molfrag/molecule"
)

// batchConfig is the YAML schema for a multi-reaction run: each reaction
// names a pre- and a post-reaction topology sharing one elements-by-type
// list, mirroring how reaction test sets are organized on disk.
type batchConfig struct {
	MaxBondDistance int        `yaml:"max_bond_distance"`
	Reactions       []reaction `yaml:"reactions"`
}

type reaction struct {
	Name           string     `yaml:"name"`
	Directory      string     `yaml:"directory"`
	ElementsByType []string   `yaml:"elements_by_type"`
	Pre            extraction `yaml:"pre"`
	Post           extraction `yaml:"post"`
}

type extraction struct {
	File         string        `yaml:"file"`
	Out          string        `yaml:"out"`
	BondingAtoms []int         `yaml:"bonding_atoms"`
	DeleteAtoms  []int         `yaml:"delete_atoms"`
	Extend       map[int][]int `yaml:"extend"`
}

func newBatchCmd(root *rootOptions) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Extract pre/post partial structures for every reaction in a YAML config",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(root.logger, configPath)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "reactions.yaml", "batch config file")

	return cmd
}

func runBatch(logger *zap.Logger, configPath string) error {
	cfg, err := loadBatchConfig(configPath)
	if err != nil {
		return err
	}

	for _, rxn := range cfg.Reactions {
		log := logger.With(zap.String("reaction", rxn.Name))
		log.Info("processing reaction")
		for _, side := range []struct {
			label string
			ext   extraction
		}{
			{"pre", rxn.Pre},
			{"post", rxn.Post},
		} {
			if err := runOne(log.With(zap.String("side", side.label)), &rxn, side.ext, cfg.MaxBondDistance); err != nil {
				return fmt.Errorf("reaction %q (%s): %w", rxn.Name, side.label, err)
			}
		}
	}
	logger.Info("batch complete", zap.Int("reactions", len(cfg.Reactions)))

	return nil
}

func runOne(logger *zap.Logger, rxn *reaction, ext extraction, maxDistance int) error {
	top, err := lammps.Open(filepath.Join(rxn.Directory, ext.File))
	if err != nil {
		return err
	}
	elements, err := lammps.ElementsByAtomID(top, rxn.ElementsByType)
	if err != nil {
		return err
	}

	opts := []molecule.Option{
		molecule.WithDeleteAtoms(ext.DeleteAtoms...),
		molecule.WithExtend(ext.Extend),
	}
	if maxDistance > 0 {
		opts = append(opts, molecule.WithMaxBondDistance(maxDistance))
	}
	mol, err := molecule.Extract(top, ext.BondingAtoms, elements, opts...)
	if err != nil {
		return err
	}

	out := ext.Out
	if out == "" {
		out = ext.File + ".molecule"
	}
	if err := lammps.WriteMoleculeFile(filepath.Join(rxn.Directory, out), mol); err != nil {
		return err
	}
	logger.Info("wrote molecule file",
		zap.String("out", out),
		zap.Int("atoms", len(mol.Atoms)),
		zap.Ints("edge_atoms", mol.EdgeAtoms),
		zap.Strings("fingerprints", mol.Fingerprints))

	return nil
}

func loadBatchConfig(path string) (*batchConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg batchConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(cfg.Reactions) == 0 {
		return nil, fmt.Errorf("%s: no reactions configured", path)
	}
	return &cfg, nil
}
