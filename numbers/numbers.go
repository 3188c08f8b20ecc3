// Package numbers has small classification and arithmetic helpers
// for single values.
package numbers

import (
	"errors"

	"golang.org/x/exp/constraints"
)

var ErrDivisionByZero = errors.New("division by zero")

// IsEven reports whether n is divisible by 2. Negative numbers work too.
func IsEven[I constraints.Integer](n I) bool {
	return n%2 == 0
}

// Larger returns the larger of a and b.
func Larger[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Describe puts n into one of four buckets:
// "negative", "zero", "small positive" (1 to 10) or "large positive".
func Describe(n int) string {
	switch {
	case n < 0:
		return "negative"
	case n == 0:
		return "zero"
	case n <= 10:
		return "small positive"
	default:
		return "large positive"
	}
}

// Grade describes a letter grade. Only upper case letters are valid.
func Grade(g rune) string {
	switch g {
	case 'A':
		return "Excellent"
	case 'B':
		return "Good"
	case 'C':
		return "Average"
	case 'D':
		return "Below Average"
	case 'F':
		return "Failing"
	default:
		return "Invalid grade"
	}
}

// SafeDivide returns a / b, or ErrDivisionByZero if b is zero.
func SafeDivide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}
