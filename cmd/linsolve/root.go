// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvlalg/internal/sysfile"
	"github.com/katalvlaran/lvlalg/matrix"
)

const (
	appName = "linsolve"
	version = "v0.1.0"
)

// flagValues mirrors the persistent flags; a flag only overrides the file
// when it was set explicitly.
type flagValues struct {
	file     string
	strategy string
	pivot    string
	tiny     float64
	logLevel string
}

func addSystemFlags(fs *pflag.FlagSet, fv *flagValues) {
	fs.StringVarP(&fv.file, "file", "f", "", "YAML system file (required)")
	fs.StringVar(&fv.strategy, "strategy", "", "Elimination strategy (lu|gauss-jordan); overrides the file")
	fs.StringVar(&fv.pivot, "pivot", "", "Null-pivot policy (fail|surrogate); overrides the file")
	fs.Float64Var(&fv.tiny, "tiny", 0, "Surrogate pivot magnitude; overrides the file")
	fs.StringVar(&fv.logLevel, "log-level", "warn", "Log level (debug|info|warn|error)")
}

func newRootCmd() *cobra.Command {
	fv := &flagValues{}

	rootCmd := &cobra.Command{
		Use:           appName,
		Short:         "Solve, invert and factor linear systems",
		Long:          "linsolve reads A (and optional right-hand sides) from a YAML file and runs the generic LU or Gauss-Jordan engine on it.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			lvl, err := zerolog.ParseLevel(fv.logLevel)
			if err != nil {
				return fmt.Errorf("log level %q: %w", fv.logLevel, err)
			}
			log.Logger = log.Logger.Level(lvl)

			return nil
		},
	}
	addSystemFlags(rootCmd.PersistentFlags(), fv)

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "solve",
			Short: "Solve A·x = b for every right-hand side in the file",
			RunE:  func(cmd *cobra.Command, _ []string) error { return runSolve(cmd, fv) },
		},
		&cobra.Command{
			Use:   "invert",
			Short: "Print A⁻¹",
			RunE:  func(cmd *cobra.Command, _ []string) error { return runInvert(cmd, fv) },
		},
		&cobra.Command{
			Use:   "det",
			Short: "Print det(A)",
			RunE:  func(cmd *cobra.Command, _ []string) error { return runDet(cmd, fv) },
		},
		&cobra.Command{
			Use:   "lu",
			Short: "Print the LU factors, pivot record and parity",
			RunE:  func(cmd *cobra.Command, _ []string) error { return runLU(cmd, fv) },
		},
	)

	return rootCmd
}

// loadSystem reads the file and applies explicit flag overrides.
func loadSystem(cmd *cobra.Command, fv *flagValues) (*sysfile.System, []matrix.Option, error) {
	if fv.file == "" {
		return nil, nil, fmt.Errorf("--file is required")
	}
	sys, err := sysfile.Load(fv.file)
	if err != nil {
		return nil, nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("strategy") {
		sys.Strategy = fv.strategy
	}
	if flags.Changed("pivot") {
		sys.Pivot = fv.pivot
	}
	if flags.Changed("tiny") {
		sys.Tiny = fv.tiny
	}
	if err = sys.Validate(); err != nil {
		return nil, nil, err
	}

	opts := append(sys.Options(),
		matrix.WithLogger(log.Logger),
		matrix.WithOnSurrogate(func(col int) {
			log.Warn().Int("col", col).Msg("result is degraded: null pivot replaced")
		}),
	)
	log.Debug().
		Str("file", fv.file).
		Int("n", len(sys.Matrix)).
		Int("rhs", len(sys.RHS)).
		Msg("system loaded")

	return sys, opts, nil
}
