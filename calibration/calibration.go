package calibration

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Sum reads r line by line and returns the total of Value over all lines.
func Sum(r io.Reader, mode Mode) (int, error) {
	if mode != Digits && mode != Words {
		return 0, ErrBadMode
	}
	sc := bufio.NewScanner(r)
	total := 0
	for sc.Scan() {
		v, err := Value(sc.Text(), mode)
		if err != nil {
			return 0, err
		}
		total += v
	}
	if err := sc.Err(); err != nil {
		return 0, fmt.Errorf("calibration: read: %w", err)
	}

	return total, nil
}

// Value returns the calibration value of a single line.
func Value(line string, mode Mode) (int, error) {
	var digits string
	switch mode {
	case Digits:
		digits = digitsOf(line)
	case Words:
		digits = wordDigits(line)
	default:
		return 0, ErrBadMode
	}

	return combine(digits), nil
}

// digitsOf keeps only the ASCII decimal digits of s.
func digitsOf(s string) string {
	var b strings.Builder
	for _, c := range s {
		if c >= '0' && c <= '9' {
			b.WriteRune(c)
		}
	}

	return b.String()
}

// wordDigits concatenates, field by field, either the number formed by the
// field's digits or the value of the field as a number word. Fields that
// are neither are skipped.
func wordDigits(line string) string {
	var b strings.Builder
	for _, field := range strings.Fields(line) {
		if n, err := strconv.ParseUint(digitsOf(field), 10, 32); err == nil {
			b.WriteString(strconv.FormatUint(n, 10))
			continue
		}
		if n, ok := numberWords[field]; ok {
			b.WriteString(strconv.FormatUint(n, 10))
		}
	}

	return b.String()
}

// combine builds the two-digit value from the first and last digit.
// digits contains only ASCII digits.
func combine(digits string) int {
	if digits == "" {
		return 0
	}
	first := int(digits[0] - '0')
	last := int(digits[len(digits)-1] - '0')

	return first*10 + last
}
