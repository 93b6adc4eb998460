package fizzbuzz

import (
	"errors"
	"strconv"
)

// DefaultLimit is the upper bound used by the original exercise.
const DefaultLimit = 100

// ErrBadLimit indicates a limit below 1.
var ErrBadLimit = errors.New("fizzbuzz: limit must be at least 1")

const (
	fizz     = "Fizz"
	buzz     = "Buzz"
	fizzBuzz = fizz + buzz
)

// Word returns the FizzBuzz word for i.
func Word(i int) string {
	switch {
	case i%15 == 0:
		return fizzBuzz
	case i%3 == 0:
		return fizz
	case i%5 == 0:
		return buzz
	default:
		return strconv.Itoa(i)
	}
}

// Sequence returns Word(i) for i = 1..limit.
func Sequence(limit int) ([]string, error) {
	if limit < 1 {
		return nil, ErrBadLimit
	}
	out := make([]string, 0, limit)
	for i := 1; i <= limit; i++ {
		out = append(out, Word(i))
	}

	return out, nil
}
