package isqrt

import (
	"errors"
	"fmt"
)

// Root returns the integer square root of n.
//
// Algorithm:
//  1. Reject n outside [MinInput, MaxInput] with ErrOutOfBounds.
//  2. For i = 1..ProbeLimit: if i*i == n, return i.
//  3. Otherwise return ErrNoRoot.
//
// The scan is bounded by ProbeLimit, not by √n, so small inputs still
// walk the whole candidate range when they have no root.
func Root(n int) (int, error) {
	if n < MinInput || n > MaxInput {
		return 0, ErrOutOfBounds
	}
	for i := 1; i <= ProbeLimit; i++ {
		if i*i == n {
			return i, nil
		}
	}

	return 0, ErrNoRoot
}

// Message maps an error returned by Root to its user-facing sentence.
// Unknown errors fall back to err.Error(); a nil error yields "".
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrOutOfBounds):
		return msgOutOfBounds
	case errors.Is(err, ErrNoRoot):
		return msgNoRoot
	default:
		return err.Error()
	}
}

// Describe runs Root on n and renders the outcome as a single sentence,
// e.g. "The square root of 81 is 9".
func Describe(n int) string {
	r, err := Root(n)

	return Format(n, r, err)
}

// Format renders a result already obtained from Root(n) without
// repeating the search.
func Format(n, root int, err error) string {
	if err != nil {
		return Message(err)
	}

	return fmt.Sprintf(msgFound, n, root)
}
