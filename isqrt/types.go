package isqrt

import "errors"

const (
	// MinInput is the smallest accepted input.
	MinInput = 1
	// MaxInput is the largest accepted input.
	MaxInput = 10_000
	// ProbeLimit is the largest candidate root tried; ProbeLimit² == MaxInput.
	ProbeLimit = 100
)

// Sentinel errors for Root.
var (
	// ErrOutOfBounds indicates the input lies outside [MinInput, MaxInput].
	ErrOutOfBounds = errors.New("isqrt: input out of bounds")
	// ErrNoRoot indicates the input is in range but is not a perfect square.
	ErrNoRoot = errors.New("isqrt: no integer square root")
)

// User-facing sentences for each outcome.
const (
	msgFound       = "The square root of %d is %d"
	msgOutOfBounds = "Your number is out of bounds."
	msgNoRoot      = "Your number's square root isn't an integer."
)
