// Command checkpoint runs the checkpoint exercises from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/checkpoint/internal/config"
)

var (
	// Global flags
	verbose    bool
	configPath string

	cfg    = config.Default()
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "checkpoint",
	Short: "Run the checkpoint exercises",
	Long: `checkpoint runs small self-contained exercises: integer square roots,
FizzBuzz, unique counts, lucky numbers, random picks, a gearbox script,
calibration sums and grapheme-aware string reversal.

Defaults can be overridden with a YAML file passed via --config.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l

		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		logger.Debug("config loaded", zap.String("path", configPath))

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")

	fizzbuzzCmd.Flags().IntVar(&fizzLimit, "limit", 0, "upper bound, at least 1 (default from config)")
	pickCmd.Flags().Uint64Var(&pickSeed, "seed", 0, "seed for a reproducible pick (0 = random)")
	calibrationCmd.Flags().BoolVar(&calibrationWords, "words", false, "also accept number words as digits")

	rootCmd.AddCommand(sqrtCmd, fizzbuzzCmd, uniqCmd, luckyCmd, pickCmd, carCmd, calibrationCmd, reverseCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
