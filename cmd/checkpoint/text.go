package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/checkpoint/calibration"
	"github.com/katalvlaran/checkpoint/reverse"
)

var calibrationWords bool

var calibrationCmd = &cobra.Command{
	Use:   "calibration [file]",
	Short: "Sum the calibration values of a document",
	Long: `Reads the document from file, or from stdin when no file is given, and
prints the sum of every line's calibration value (first and last digit).

With --words, whitespace-separated number words ("one" ... "nine") count
as digits too.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCalibration,
}

var reverseCmd = &cobra.Command{
	Use:   "reverse <text>...",
	Short: "Reverse each argument by grapheme cluster",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runReverse,
}

func runCalibration(cmd *cobra.Command, args []string) error {
	var r io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("calibration: %w", err)
		}
		defer f.Close()
		r = f
	}

	mode := calibration.Digits
	if calibrationWords {
		mode = calibration.Words
	}
	sum, err := calibration.Sum(r, mode)
	if err != nil {
		return err
	}
	logger.Debug("calibration", zap.Stringer("mode", mode), zap.Int("sum", sum))
	fmt.Fprintf(cmd.OutOrStdout(), "Sum: %d\n", sum)

	return nil
}

func runReverse(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, a := range args {
		fmt.Fprintln(out, reverse.String(a))
	}

	return nil
}
