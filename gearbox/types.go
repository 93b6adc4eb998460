package gearbox

import "errors"

// Gear is the selector position.
type Gear int

const (
	// Park is the zero value; new cars start parked.
	Park Gear = iota
	// Drive engages the numbered gears.
	Drive
	// Neutral disengages the transmission.
	Neutral
)

// String returns the lower-case gear name.
func (g Gear) String() string {
	switch g {
	case Park:
		return "park"
	case Drive:
		return "drive"
	case Neutral:
		return "neutral"
	default:
		return "unknown"
	}
}

// Numbered gear range.
const (
	MinGear = 1
	MaxGear = 10
)

// Sentinel errors for New and the shift methods.
var (
	// ErrEmptyModel indicates New was called with an empty model name.
	ErrEmptyModel = errors.New("gearbox: model must be non-empty")
	// ErrBadSeats indicates a seat count below 1.
	ErrBadSeats = errors.New("gearbox: seats must be at least 1")
	// ErrTopGear indicates ShiftUp was called in MaxGear.
	ErrTopGear = errors.New("gearbox: already in top gear")
	// ErrBottomGear indicates ShiftDown was called in MinGear.
	ErrBottomGear = errors.New("gearbox: already in first gear")
)

// User-facing sentences for the shift-limit errors.
const (
	msgTopGear    = "You've hit the limit!"
	msgBottomGear = "You're already at first gear!"
)
