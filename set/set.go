// Package set provides a generic set of comparable values,
// backed by a map with empty values.
//
// Sets are unordered. Functions that need a deterministic order,
// like Sorted, say so explicitly.
package set

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Set is a collection of distinct values. The zero value is a nil map:
// it can be read from, but Add will panic. Use New, Of or FromSlice.
type Set[E comparable] map[E]struct{}

// New returns an empty Set.
func New[E comparable]() Set[E] {
	return make(Set[E])
}

// Of returns a Set containing the given elements.
func Of[E comparable](elems ...E) Set[E] {
	return FromSlice(elems)
}

// FromSlice returns a Set of the elements in s. Duplicates collapse,
// so the result is never larger than len(s).
func FromSlice[S ~[]E, E comparable](s S) Set[E] {
	out := make(Set[E], len(s))

	for _, el := range s {
		out[el] = struct{}{}
	}

	return out
}

// Add inserts el and reports whether it was not already in the set.
func (s Set[E]) Add(el E) bool {
	if _, ok := s[el]; ok {
		return false
	}

	s[el] = struct{}{}
	return true
}

// Remove deletes el and reports whether it was in the set.
func (s Set[E]) Remove(el E) bool {
	if _, ok := s[el]; !ok {
		return false
	}

	delete(s, el)
	return true
}

// Has reports whether el is in the set.
func (s Set[E]) Has(el E) bool {
	_, ok := s[el]
	return ok
}

// Len returns the number of elements in the set.
func (s Set[_]) Len() int {
	return len(s)
}

// Slice returns the elements of the set in no particular order.
func (s Set[E]) Slice() []E {
	return maps.Keys(s)
}

// Clone returns a copy of the set.
func (s Set[E]) Clone() Set[E] {
	out := make(Set[E], len(s))

	for el := range s {
		out[el] = struct{}{}
	}

	return out
}

// Equal reports whether both sets contain the same elements.
func (s Set[E]) Equal(other Set[E]) bool {
	return maps.Equal(s, other)
}

// Intersect returns a new set of the elements in both s and other.
func (s Set[E]) Intersect(other Set[E]) Set[E] {
	small, large := s, other
	if len(small) > len(large) {
		small, large = large, small
	}

	out := make(Set[E])
	for el := range small {
		if large.Has(el) {
			out[el] = struct{}{}
		}
	}

	return out
}

// Union returns a new set of the elements in either s or other.
func (s Set[E]) Union(other Set[E]) Set[E] {
	out := s.Clone()

	for el := range other {
		out[el] = struct{}{}
	}

	return out
}

// Sorted returns the elements of s in ascending order.
func Sorted[E constraints.Ordered](s Set[E]) []E {
	out := maps.Keys(s)
	slices.Sort(out)
	return out
}
