package gearbox

import (
	"errors"
	"fmt"
)

// Car stores a model, its seat count and the current gears.
type Car struct {
	Model string
	Seats int

	gear     Gear
	numbered int
}

// New returns a parked Car in first gear.
func New(model string, seats int) (*Car, error) {
	if model == "" {
		return nil, ErrEmptyModel
	}
	if seats < 1 {
		return nil, ErrBadSeats
	}

	return &Car{Model: model, Seats: seats, gear: Park, numbered: MinGear}, nil
}

// Gear reports the selector position.
func (c *Car) Gear() Gear { return c.gear }

// Numbered reports the current numbered gear.
func (c *Car) Numbered() int { return c.numbered }

// ShiftUp moves one numbered gear up. In MaxGear it returns ErrTopGear
// and leaves the gear unchanged.
func (c *Car) ShiftUp() (string, error) {
	if c.numbered >= MaxGear {
		return "", ErrTopGear
	}
	c.numbered++

	return fmt.Sprintf("You've shifted up to gear %d", c.numbered), nil
}

// ShiftDown moves one numbered gear down. In MinGear it returns
// ErrBottomGear and leaves the gear unchanged.
func (c *Car) ShiftDown() (string, error) {
	if c.numbered <= MinGear {
		return "", ErrBottomGear
	}
	c.numbered--

	return fmt.Sprintf("You've shifted down to gear %d", c.numbered), nil
}

// ChangeGear sets the selector to g and describes the new state.
// Unknown gears park the car.
func (c *Car) ChangeGear(g Gear) string {
	switch g {
	case Neutral:
		c.gear = Neutral
		return "Car is in neutral."
	case Drive:
		c.gear = Drive
		return "You're driving now."
	default:
		c.gear = Park
		return "You're parked now."
	}
}

// Message maps a shift-limit error to the sentence shown to drivers.
// Other errors fall back to err.Error(); a nil error yields "".
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTopGear):
		return msgTopGear
	case errors.Is(err, ErrBottomGear):
		return msgBottomGear
	default:
		return err.Error()
	}
}
