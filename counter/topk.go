package counter

import (
	"container/heap"

	"go.lepak.sg/tally/seq"
)

// Entry represents an element-count pair.
type Entry[E comparable] struct {
	Element E
	Count   int
}

// Entries returns the element-count pairs of the counter,
// in no particular order.
func Entries[E comparable](ctr map[E]int) []Entry[E] {
	out := make([]Entry[E], 0, len(ctr))

	for el, cnt := range ctr {
		out = append(out, Entry[E]{Element: el, Count: cnt})
	}

	return out
}

// entryHeap orders entries by count. With desc set it is a max-heap,
// otherwise a min-heap.
type entryHeap[E comparable] struct {
	entries []Entry[E]
	desc    bool
}

var _ heap.Interface = (*entryHeap[int])(nil)

func (h *entryHeap[_]) Len() int {
	return len(h.entries)
}

func (h *entryHeap[_]) Less(i, j int) bool {
	// see container/heap PriorityQueue example for the max-heap sign
	if h.desc {
		return h.entries[i].Count > h.entries[j].Count
	}
	return h.entries[i].Count < h.entries[j].Count
}

func (h *entryHeap[_]) Swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
}

func (h *entryHeap[E]) Push(x any) {
	h.entries = append(h.entries, x.(Entry[E]))
}

func (h *entryHeap[E]) Pop() any {
	last := len(h.entries) - 1
	x := h.entries[last]
	h.entries = h.entries[:last]
	return x
}

// heapk builds a heap over the entries of the counter, then pops
// off k entries and returns them.
func heapk[E comparable](ctr map[E]int, k int, desc bool) []Entry[E] {
	if k == 0 {
		return []Entry[E]{}
	} else if k > len(ctr) {
		panic("k is larger than number of elements in ctr")
	} else if k < 0 {
		panic("k is negative")
	}

	h := &entryHeap[E]{
		entries: Entries(ctr),
		desc:    desc,
	}
	heap.Init(h)

	out := make([]Entry[E], k)
	for i := range out {
		out[i] = heap.Pop(h).(Entry[E])
	}

	return out
}

// TopK returns the k most-frequent elements from the counter.
// The returned entries are in descending order of frequency.
// If two elements have the same count, their relative order in
// the returned slice is undefined, however they will be after
// all elements that occur more frequently.
// TopK panics if k is negative or larger than len(ctr).
func TopK[E comparable](ctr map[E]int, k int) []Entry[E] {
	return heapk(ctr, k, true)
}

// BottomK returns the k least-frequent elements from the counter.
// The returned entries are in ascending order of frequency.
// Ties are handled as in TopK.
func BottomK[E comparable](ctr map[E]int, k int) []Entry[E] {
	return heapk(ctr, k, false)
}

// ByCount groups the entries of the counter by their count.
// Groups are in ascending order of count; the order of entries
// inside a group is undefined.
func ByCount[E comparable](ctr map[E]int) [][]Entry[E] {
	return seq.GroupAndOrderBy(Entries(ctr), func(e Entry[E]) int {
		return e.Count
	})
}
