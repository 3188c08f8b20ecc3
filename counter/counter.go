// Package counter counts occurrences of elements in slices and words
// in text, and merges the resulting counting maps.
// It also returns their k most- or least-frequent elements.
//
// A counting map is a plain map[E]int. Functions that return a counter
// always allocate a new map and never modify their arguments, except
// for Normalize, which works in place.
package counter

import (
	"strings"

	"golang.org/x/exp/maps"
)

// Counter counts occurrences of each element of the slice
// and returns a map of elements to their counts.
func Counter[S ~[]E, E comparable](slice S) map[E]int {
	c := make(map[E]int)

	for _, v := range slice {
		c[v]++
	}

	return c
}

// Tokenize splits text around runs of whitespace, as defined by
// unicode.IsSpace. Leading and trailing whitespace never produces
// empty tokens. No other normalisation is done: case and punctuation
// are kept as they are.
func Tokenize(text string) []string {
	return strings.Fields(text)
}

// CountWords counts each whitespace-delimited token in text.
// Tokens are compared by exact string equality.
// Empty or blank text returns an empty map.
func CountWords(text string) map[string]int {
	return Counter(Tokenize(text))
}

// Resolver decides the merged count of a key that is present
// in both counters passed to MergeFunc.
type Resolver func(existing, incoming int) int

var (
	// Sum adds both counts together.
	Sum Resolver = func(existing, incoming int) int { return existing + incoming }
	// KeepFirst keeps the count from the first counter.
	KeepFirst Resolver = func(existing, _ int) int { return existing }
	// KeepLast keeps the count from the second counter.
	KeepLast Resolver = func(_, incoming int) int { return incoming }
)

// MergeFunc copies a, then merges every element of b into the copy.
// An element only in b is inserted with its count; an element in both
// gets resolve(a[el], b[el]). The keys of the result are exactly the
// union of the keys of a and b, even if a resolved count is zero.
func MergeFunc[E comparable](a, b map[E]int, resolve Resolver) map[E]int {
	out := make(map[E]int, len(a)+len(b))

	for el, cnt := range a {
		out[el] = cnt
	}

	for el, cnt := range b {
		if existing, ok := out[el]; ok {
			out[el] = resolve(existing, cnt)
		} else {
			out[el] = cnt
		}
	}

	return out
}

// Merge is MergeFunc with the Sum policy: counts of elements in both
// counters are added together.
func Merge[E comparable](a, b map[E]int) map[E]int {
	return MergeFunc(a, b, Sum)
}

// Add adds counter a and b together and returns a copy.
// It is the same as Merge.
func Add[E comparable](a, b map[E]int) map[E]int {
	return MergeFunc(a, b, Sum)
}

// Subtract subtracts the counter b from a and returns a copy.
// Elements only in b end up with a negative count; use Normalize
// to drop them.
func Subtract[E comparable](a, b map[E]int) map[E]int {
	out := maps.Clone(a)
	if out == nil {
		out = make(map[E]int, len(b))
	}

	for el, cnt := range b {
		out[el] -= cnt
	}

	return out
}

// Normalize deletes every element whose count is zero or negative,
// in place.
func Normalize[E comparable](ctr map[E]int) {
	maps.DeleteFunc(ctr, func(_ E, cnt int) bool {
		return cnt <= 0
	})
}

// Total sums up all counts in the counter.
func Total[E comparable](ctr map[E]int) int {
	sum := 0

	for _, cnt := range ctr {
		sum += cnt
	}

	return sum
}
