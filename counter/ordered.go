package counter

// Ordered is a counter that remembers the order in which elements
// were first counted. Iteration follows that order.
//
// Every element in an Ordered has a count of at least 1: an element
// whose count drops to zero or below is removed, and counting it
// again later appends it to the end.
//
// The zero value is not ready for use, call NewOrdered.
// Ordered is not safe for concurrent use.
type Ordered[E comparable] struct {
	m map[E]*node[E]

	head, tail *node[E]
}

type node[E comparable] struct {
	el  E
	cnt int

	prev, next *node[E]
}

// NewOrdered returns an empty Ordered counter.
func NewOrdered[E comparable]() *Ordered[E] {
	return &Ordered[E]{
		m: make(map[E]*node[E]),
	}
}

// CountOrdered is like Counter, but returns an Ordered counter
// whose elements are in the order of their first occurrence in slice.
func CountOrdered[S ~[]E, E comparable](slice S) *Ordered[E] {
	o := NewOrdered[E]()

	for _, v := range slice {
		o.Inc(v, 1)
	}

	return o
}

// CountWordsOrdered is like CountWords, but the words are kept
// in the order they first appear in text.
func CountWordsOrdered(text string) *Ordered[string] {
	return CountOrdered(Tokenize(text))
}

func (o *Ordered[E]) unlink(n *node[E]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		if o.head != n {
			panic("node has no previous node but it is not the head")
		}
		o.head = n.next
	}

	if n.next != nil {
		n.next.prev = n.prev
	} else {
		if o.tail != n {
			panic("node has no next node but it is not the tail")
		}
		o.tail = n.prev
	}

	n.prev, n.next = nil, nil
}

func (o *Ordered[E]) pushBack(n *node[E]) {
	if o.tail == nil {
		o.head, o.tail = n, n
		return
	}

	n.prev = o.tail
	o.tail.next = n
	o.tail = n
}

// Inc adds n to the count of el and returns the new count.
// n may be negative. If the count becomes zero or negative,
// el is removed and Inc returns 0.
func (o *Ordered[E]) Inc(el E, n int) int {
	nd, ok := o.m[el]
	if !ok {
		if n <= 0 {
			return 0
		}

		nd = &node[E]{el: el, cnt: n}
		o.m[el] = nd
		o.pushBack(nd)
		return n
	}

	nd.cnt += n
	if nd.cnt <= 0 {
		o.unlink(nd)
		delete(o.m, el)
		return 0
	}

	return nd.cnt
}

// Get returns the count of el, or 0 if it was never counted.
func (o *Ordered[E]) Get(el E) int {
	if nd, ok := o.m[el]; ok {
		return nd.cnt
	}
	return 0
}

// Delete removes el from the counter. ok is false if el was not found.
func (o *Ordered[E]) Delete(el E) (ok bool) {
	nd, ok := o.m[el]
	if !ok {
		return
	}

	o.unlink(nd)
	delete(o.m, el)

	return
}

// Len returns the number of distinct elements in the counter.
func (o *Ordered[_]) Len() int {
	return len(o.m)
}

// Keys returns the elements in order of first occurrence.
func (o *Ordered[E]) Keys() []E {
	keys := make([]E, 0, len(o.m))

	for nd := o.head; nd != nil; nd = nd.next {
		keys = append(keys, nd.el)
	}

	return keys
}

// Entries returns the element-count pairs in order of first occurrence.
func (o *Ordered[E]) Entries() []Entry[E] {
	out := make([]Entry[E], 0, len(o.m))

	for nd := o.head; nd != nil; nd = nd.next {
		out = append(out, Entry[E]{Element: nd.el, Count: nd.cnt})
	}

	return out
}

// Map returns a copy of the counts as a plain counting map,
// which can be passed to the other functions in this package.
func (o *Ordered[E]) Map() map[E]int {
	c := make(map[E]int, len(o.m))

	for el, nd := range o.m {
		c[el] = nd.cnt
	}

	return c
}

// ForEach calls f for every element and its count in order.
// If f returns false, the iteration stops early.
//
// The result of modifying the counter while iterating over it is undefined.
func (o *Ordered[E]) ForEach(f func(el E, cnt int) bool) {
	for nd := o.head; nd != nil; nd = nd.next {
		if !f(nd.el, nd.cnt) {
			return
		}
	}
}

// Iterator returns an iterator starting at the first element.
// The usual idiom is:
//
//	i := o.Iterator()
//	for i.Next() {
//		el, cnt := i.Entry()
//		// ...
//	}
func (o *Ordered[E]) Iterator() Iterator[E] {
	return Iterator[E]{
		head: o.head,
	}
}

// Iterator walks an Ordered counter. See Ordered.Iterator.
type Iterator[E comparable] struct {
	head, cur *node[E]
}

// Next advances the iterator and reports whether there is an entry
// to be read with Entry. Next must be called before Entry.
func (i *Iterator[E]) Next() bool {
	if i.cur == nil {
		if i.head == nil {
			return false
		}
		i.cur = i.head
		return true
	}

	if i.cur.next == nil {
		return false
	}

	i.cur = i.cur.next
	return true
}

// Entry returns the element and count at the current position.
func (i *Iterator[E]) Entry() (el E, cnt int) {
	return i.cur.el, i.cur.cnt
}
