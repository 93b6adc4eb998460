package main

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/checkpoint/fizzbuzz"
	"github.com/katalvlaran/checkpoint/isqrt"
	"github.com/katalvlaran/checkpoint/lucky"
	"github.com/katalvlaran/checkpoint/pick"
	"github.com/katalvlaran/checkpoint/uniq"
)

var (
	fizzLimit int
	pickSeed  uint64
)

var sqrtCmd = &cobra.Command{
	Use:   "sqrt <n>...",
	Short: "Find the integer square root of numbers in [1, 10000]",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSqrt,
}

var fizzbuzzCmd = &cobra.Command{
	Use:   "fizzbuzz",
	Short: "Print the FizzBuzz sequence",
	Args:  cobra.NoArgs,
	RunE:  runFizzBuzz,
}

var uniqCmd = &cobra.Command{
	Use:   "uniq [name...]",
	Short: "Count total and unique names",
	RunE:  runUniq,
}

var luckyCmd = &cobra.Command{
	Use:   "lucky [n...]",
	Short: "Print the odd numbers in ascending order as lucky numbers",
	RunE:  runLucky,
}

var pickCmd = &cobra.Command{
	Use:   "pick [n...]",
	Short: "Pick a random number from the arguments, or from 1-100",
	RunE:  runPick,
}

func runSqrt(cmd *cobra.Command, args []string) error {
	nums, err := parseInts(args)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, n := range nums {
		r, err := isqrt.Root(n)
		logger.Debug("isqrt", zap.Int("n", n), zap.Int("root", r), zap.Error(err))
		fmt.Fprintln(out, isqrt.Format(n, r, err))
	}

	return nil
}

func runFizzBuzz(cmd *cobra.Command, args []string) error {
	limit := cfg.FizzBuzz.Limit
	if cmd.Flags().Changed("limit") {
		limit = fizzLimit
	}
	seq, err := fizzbuzz.Sequence(limit)
	if err != nil {
		return fmt.Errorf("fizzbuzz --limit %d: %w", limit, err)
	}
	out := cmd.OutOrStdout()
	for _, w := range seq {
		fmt.Fprintln(out, w)
	}

	return nil
}

func runUniq(cmd *cobra.Command, args []string) error {
	names := args
	if len(names) == 0 {
		names = cfg.Uniq.Names
	}
	tally := uniq.Count(names)
	logger.Debug("uniq", zap.Int("total", tally.Total), zap.Int("unique", tally.Unique))
	fmt.Fprintln(cmd.OutOrStdout(), tally)

	return nil
}

func runLucky(cmd *cobra.Command, args []string) error {
	nums := cfg.Lucky.Numbers
	if len(args) > 0 {
		parsed, err := parseInts(args)
		if err != nil {
			return err
		}
		nums = parsed
	}
	out := cmd.OutOrStdout()
	for _, l := range lucky.Lines(nums) {
		fmt.Fprintln(out, l)
	}

	return nil
}

func runPick(cmd *cobra.Command, args []string) error {
	nums, err := parseInts(args)
	if err != nil {
		return err
	}
	var src pick.Source
	if pickSeed != 0 {
		src = rand.New(rand.NewPCG(pickSeed, pickSeed))
	}
	v := pick.Pick(src, nums)
	logger.Debug("pick", zap.Ints("from", nums), zap.Int("picked", v), zap.Uint64("seed", pickSeed))
	fmt.Fprintln(cmd.OutOrStdout(), v)

	return nil
}

// parseInts converts every argument to an int, failing on the first bad one.
func parseInts(args []string) ([]int, error) {
	out := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", a, err)
		}
		out = append(out, n)
	}

	return out, nil
}
