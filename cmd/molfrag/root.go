package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// version is injected via ldflags.
var version = "dev"

// rootOptions holds global flags shared by all subcommands.
type rootOptions struct {
	logLevel string
	logger   *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:     "molfrag",
		Short:   "Extract renumbered partial molecular structures from LAMMPS data files",
		Long: "molfrag pulls the sub-structure within a bond-distance bound of chosen\n" +
			"bonding atoms out of a LAMMPS read_data file, renumbers atoms and all\n" +
			"dependent records consistently, and writes a molecule-format file whose\n" +
			"truncation boundary is annotated with edge atoms and element fingerprints\n" +
			"for later pre/post reaction matching.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(opts.logLevel)
			if err != nil {
				return err
			}
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	cmd.AddCommand(newExtractCmd(opts))
	cmd.AddCommand(newBatchCmd(opts))

	return cmd
}

// newLogger builds a console zap logger at the requested level.
func newLogger(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.Set(level); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}
