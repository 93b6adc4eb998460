package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/checkpoint/gearbox"
	"github.com/katalvlaran/checkpoint/internal/config"
)

var carCmd = &cobra.Command{
	Use:   "car",
	Short: "Drive the configured gear script",
	Long: `Builds a car from the config (model, seats) and runs car.script,
printing one line per step. Hitting a gear limit is reported and the
script keeps going.`,
	Args: cobra.NoArgs,
	RunE: runCar,
}

func runCar(cmd *cobra.Command, args []string) error {
	car, err := gearbox.New(cfg.Car.Model, cfg.Car.Seats)
	if err != nil {
		return fmt.Errorf("car: %w", err)
	}

	return driveScript(cmd.OutOrStdout(), car, cfg.Car.Script)
}

// driveScript applies each step to car and prints its outcome.
func driveScript(w io.Writer, car *gearbox.Car, script []string) error {
	for i, step := range script {
		var (
			msg string
			err error
		)
		switch step {
		case config.StepUp:
			msg, err = car.ShiftUp()
		case config.StepDown:
			msg, err = car.ShiftDown()
		case config.StepDrive:
			msg = car.ChangeGear(gearbox.Drive)
		case config.StepNeutral:
			msg = car.ChangeGear(gearbox.Neutral)
		case config.StepPark:
			msg = car.ChangeGear(gearbox.Park)
		default:
			return fmt.Errorf("car: step %d: %w: %q", i, config.ErrUnknownStep, step)
		}

		if errors.Is(err, gearbox.ErrTopGear) || errors.Is(err, gearbox.ErrBottomGear) {
			logger.Debug("gear limit", zap.String("step", step), zap.Int("gear", car.Numbered()))
			msg = gearbox.Message(err)
		} else if err != nil {
			return err
		}
		fmt.Fprintln(w, msg)
	}

	return nil
}
