// Package config loads the optional YAML settings for the checkpoint CLI.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/checkpoint/fizzbuzz"
)

// Car script steps.
const (
	StepUp      = "up"
	StepDown    = "down"
	StepPark    = "park"
	StepDrive   = "drive"
	StepNeutral = "neutral"
)

// Sentinel errors returned (wrapped) by Validate.
var (
	ErrBadLimit    = errors.New("config: fizzbuzz.limit must be at least 1")
	ErrEmptyModel  = errors.New("config: car.model must be non-empty")
	ErrBadSeats    = errors.New("config: car.seats must be at least 1")
	ErrUnknownStep = errors.New("config: unknown car.script step")
)

// Config is the root of the YAML document.
type Config struct {
	FizzBuzz FizzBuzz `yaml:"fizzbuzz"`
	Uniq     Uniq     `yaml:"uniq"`
	Lucky    Lucky    `yaml:"lucky"`
	Car      Car      `yaml:"car"`
}

// FizzBuzz configures the fizzbuzz command.
type FizzBuzz struct {
	Limit int `yaml:"limit"`
}

// Uniq configures the uniq command.
type Uniq struct {
	Names []string `yaml:"names"`
}

// Lucky configures the lucky command.
type Lucky struct {
	Numbers []int `yaml:"numbers"`
}

// Car configures the car command.
type Car struct {
	Model  string   `yaml:"model"`
	Seats  int      `yaml:"seats"`
	Script []string `yaml:"script"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	script := []string{StepDrive}
	script = appendN(script, StepUp, 7)
	script = append(script, StepDown)
	script = appendN(script, StepUp, 5)
	script = appendN(script, StepDown, 10)

	return Config{
		FizzBuzz: FizzBuzz{Limit: fizzbuzz.DefaultLimit},
		Uniq: Uniq{Names: []string{
			"Ed", "Romina", "Mackenzie", "Mackenzie",
			"Jimmy", "Jimmy", "Jimmy", "Jimmy", "Jimmy",
		}},
		Lucky: Lucky{Numbers: []int{7, 4, 38, 21, 16, 15, 12, 33, 31, 49}},
		Car:   Car{Model: "Toyota", Seats: 4, Script: script},
	}
}

func appendN(dst []string, s string, n int) []string {
	for i := 0; i < n; i++ {
		dst = append(dst, s)
	}

	return dst
}

// Load reads path and overlays it on Default. An empty path returns Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(raw)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes raw YAML over Default and validates the result.
// Unknown keys are rejected.
func Parse(raw []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var err error
	if c.FizzBuzz.Limit < 1 {
		err = multierr.Append(err, fmt.Errorf("%w: got %d", ErrBadLimit, c.FizzBuzz.Limit))
	}
	if c.Car.Model == "" {
		err = multierr.Append(err, ErrEmptyModel)
	}
	if c.Car.Seats < 1 {
		err = multierr.Append(err, fmt.Errorf("%w: got %d", ErrBadSeats, c.Car.Seats))
	}
	for i, step := range c.Car.Script {
		switch step {
		case StepUp, StepDown, StepPark, StepDrive, StepNeutral:
		default:
			err = multierr.Append(err, fmt.Errorf("%w: %q at index %d", ErrUnknownStep, step, i))
		}
	}

	return err
}
