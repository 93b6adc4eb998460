package calibration

import "errors"

// Mode selects how digits are recognised on a line.
type Mode int

const (
	// Digits counts only decimal digit characters.
	Digits Mode = iota
	// Words also accepts whitespace-separated number words.
	Words
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Digits:
		return "digits"
	case Words:
		return "words"
	default:
		return "unknown"
	}
}

// ErrBadMode indicates a Mode outside Digits and Words.
var ErrBadMode = errors.New("calibration: unknown mode")

// numberWords maps spelled-out digits to their values.
var numberWords = map[string]uint64{
	"one":   1,
	"two":   2,
	"three": 3,
	"four":  4,
	"five":  5,
	"six":   6,
	"seven": 7,
	"eight": 8,
	"nine":  9,
}
