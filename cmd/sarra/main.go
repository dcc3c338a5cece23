// Command sarra runs the gridded crop carbon balance from a control file.
package main

import (
	"fmt"
	"os"

	"github.com/maseology/goHydro/grid"
	"github.com/maseology/sarra"
	"github.com/maseology/sarra/postpro"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose  bool
	progress bool
	nsmpl    int
	ncmplx   int
	seed     int64
	outfp    string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "sarra",
	Short: "Daily crop carbon balance over a grid",
	Long: `sarra steps the daily crop carbon balance of every grid cell over a season:
radiation interception, assimilation, maintenance respiration, biomass
partitioning, yield formation, leaf area, density correction and residue decay.

Phenology, transpiration and weather are read as forcings. A control file names
the forcing, the variety and management parameters and the outputs.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var runCmd = &cobra.Command{
	Use:   "run [control file]",
	Short: "Simulate the season and write the outputs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := sarra.Build(args[0], logger)
		if err != nil {
			return err
		}
		_, r, err := m.Run(progress)
		if err != nil {
			return err
		}
		fmt.Println(r)
		return nil
	},
}

var checkCmd = &cobra.Command{
	Use:   "check [control file]",
	Short: "Summarize the forcing and the final state of a season",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := sarra.Build(args[0], logger)
		if err != nil {
			return err
		}
		m.Frc.CheckAndPrint()
		if m.GD != nil && m.Prfx != "" {
			if err := m.Frc.ToBil(m.GD, m.Prfx+"check."); err != nil {
				return err
			}
		}
		s, err := m.Evaluate(&m.Var, m.Nwrkrs)
		if err != nil {
			return err
		}
		s.CheckAndPrint(s.Nday - 1)
		return nil
	},
}

var sampleCmd = &cobra.Command{
	Use:   "sample [control file]",
	Short: "Evaluate a Latin-hypercube sample of variety parameters",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := sarra.Build(args[0], logger)
		if err != nil {
			return err
		}
		_, err = m.GenerateSamples(nsmpl, seed, m.Prfx)
		return err
	},
}

var calibrateCmd = &cobra.Command{
	Use:   "calibrate [control file]",
	Short: "Calibrate variety parameters to observed yields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := sarra.Build(args[0], logger)
		if err != nil {
			return err
		}
		v, r, err := m.Optimize(ncmplx, seed)
		if err != nil {
			return err
		}
		fmt.Println(r)
		if outfp == "" {
			outfp = m.Prfx + "variety.calibrated.yaml"
		}
		return v.Save(outfp)
	},
}

var peakCmd = &cobra.Command{
	Use:   "peak [grid definition] [output .bin]",
	Short: "Map the season peak and peak day of an output field",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		gd, err := grid.ReadGDEF(args[0], true)
		if err != nil {
			return err
		}
		return postpro.PeakMaps(gd, args[1])
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	runCmd.Flags().BoolVar(&progress, "progress", false, "run serially with a progress bar")
	sampleCmd.Flags().IntVarP(&nsmpl, "n", "n", 100, "number of samples")
	sampleCmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	calibrateCmd.Flags().IntVar(&ncmplx, "complexes", 8, "number of SCE complexes")
	calibrateCmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	calibrateCmd.Flags().StringVarP(&outfp, "out", "o", "", "calibrated variety file (default <prfx>variety.calibrated.yaml)")
	rootCmd.AddCommand(runCmd, checkCmd, sampleCmd, calibrateCmd, peakCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
