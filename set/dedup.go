package set

// HasDuplicates reports whether any element appears more than once in s.
// It scans from the left and returns as soon as it sees a repeat.
func HasDuplicates[S ~[]E, E comparable](s S) bool {
	seen := make(Set[E], len(s))

	for _, el := range s {
		if !seen.Add(el) {
			return true
		}
	}

	return false
}

// Intersect returns the set of elements that appear in both a and b.
// Both slices are deduplicated first, so the result has no repeats
// however often an element occurs in either input.
func Intersect[S ~[]E, E comparable](a, b S) Set[E] {
	return FromSlice(a).Intersect(FromSlice(b))
}

// Unique returns the distinct elements of s in the order of their first
// occurrence. The input is not modified.
func Unique[S ~[]E, E comparable](s S) S {
	seen := make(Set[E], len(s))
	out := make(S, 0, len(s))

	for _, el := range s {
		if seen.Add(el) {
			out = append(out, el)
		}
	}

	return out
}
