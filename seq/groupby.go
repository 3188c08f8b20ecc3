package seq

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// GroupBy splits data into groups of elements sharing the same key.
// Elements keep their relative order within a group, but the order of
// the groups themselves is unspecified.
func GroupBy[K comparable, E any, S ~[]E](data S, key func(E) K) [][]E {
	return groupby(data, key, false)
}

// GroupByStable is like GroupBy, but groups appear in the order their
// first element appears in data.
func GroupByStable[K comparable, E any, S ~[]E](data S, key func(E) K) [][]E {
	return groupby(data, key, true)
}

// GroupAndOrderBy is like GroupBy, but the groups are sorted
// in ascending order of their key.
func GroupAndOrderBy[K constraints.Ordered, E any, S ~[]E](
	data S, key func(E) K,
) [][]E {
	out := GroupBy(data, key)

	// every group has at least one element
	slices.SortFunc(out, func(a, b []E) int {
		ka, kb := key(a[0]), key(b[0])
		switch {
		case ka < kb:
			return -1
		case ka > kb:
			return 1
		default:
			return 0
		}
	})

	return out
}

func groupby[K comparable, E any, S ~[]E](
	data S, key func(E) K, stable bool,
) (out [][]E) {
	index := make(map[K]int)

	for _, el := range data {
		k := key(el)
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, nil)
		}
		out[i] = append(out[i], el)
	}

	if !stable {
		// hand the groups back in map order
		shuffled := make([][]E, 0, len(out))
		for _, i := range index {
			shuffled = append(shuffled, out[i])
		}
		out = shuffled
	}

	return
}
