// Package seq provides reductions and in-place transforms
// over slices of numbers.
//
// None of the functions check for overflow. Integer results wrap
// around following the usual Go rules, so callers should make sure
// their inputs fit in E.
package seq

import "golang.org/x/exp/constraints"

// Number is any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum adds up all elements of the slice. The sum of an empty
// slice is 0.
func Sum[S ~[]E, E Number](s S) E {
	var sum E

	for _, v := range s {
		sum += v
	}

	return sum
}

// Max returns the largest element of the slice.
// If the slice is empty, ok is false.
// When several elements compare equal, the first one wins.
func Max[S ~[]E, E constraints.Ordered](s S) (max E, ok bool) {
	for i, v := range s {
		if i == 0 || v > max {
			max = v
		}
	}

	return max, len(s) > 0
}

// Scale multiplies every element of s by factor, in place.
// The backing array of s is modified, so every slice sharing it
// sees the new values.
func Scale[S ~[]E, E Number](s S, factor E) {
	for i := range s {
		s[i] *= factor
	}
}

// Double is Scale(s, 2).
func Double[S ~[]E, E Number](s S) {
	Scale(s, 2)
}

// Find returns the first element of s for which pred returns true.
func Find[S ~[]E, E any](s S, pred func(E) bool) (el E, ok bool) {
	for _, v := range s {
		if pred(v) {
			return v, true
		}
	}

	return
}
