package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/katalvlaran/checkpoint/internal/config"
)

func TestDefault_Valid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 100, cfg.FizzBuzz.Limit)
	assert.Len(t, cfg.Uniq.Names, 9)
	assert.Equal(t, "Toyota", cfg.Car.Model)
	assert.Len(t, cfg.Car.Script, 24)
	assert.Equal(t, config.StepDrive, cfg.Car.Script[0])
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_Overlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkpoint.yaml")
	body := []byte(`
fizzbuzz:
  limit: 15
car:
  model: Civic
  script: [drive, up, up, down]
`)
	require.NoError(t, os.WriteFile(path, body, 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 15, cfg.FizzBuzz.Limit)
	assert.Equal(t, "Civic", cfg.Car.Model)
	assert.Equal(t, 4, cfg.Car.Seats, "unset fields keep defaults")
	assert.Equal(t, []string{"drive", "up", "up", "down"}, cfg.Car.Script)
	assert.Equal(t, config.Default().Lucky, cfg.Lucky)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_EmptyDocument(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParse_UnknownField(t *testing.T) {
	_, err := config.Parse([]byte("fizbuz:\n  limit: 3\n"))
	assert.Error(t, err)
}

// TestParse_AllViolations expects every bad field to be reported together.
func TestParse_AllViolations(t *testing.T) {
	raw := []byte(`
fizzbuzz:
  limit: 0
car:
  model: ""
  seats: -1
  script: [up, reverse]
`)
	_, err := config.Parse(raw)
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 4)
	assert.ErrorIs(t, err, config.ErrBadLimit)
	assert.ErrorIs(t, err, config.ErrEmptyModel)
	assert.ErrorIs(t, err, config.ErrBadSeats)
	assert.ErrorIs(t, err, config.ErrUnknownStep)
	assert.Contains(t, err.Error(), `"reverse" at index 1`)
}
