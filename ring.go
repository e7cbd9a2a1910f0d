package coop

import "iter"

// ring is the ready queue: a circular membership list over every
// non-destroyed coroutine record, in insertion order. The cursor tracks
// the member that currently owns the flow; eligibility scans start just
// after it and wrap once, checking the cursor's own slot last.
//
// Members are kept in an index-stable slice rather than a linked list, so
// removal during reclamation cannot leave dangling node references.
type ring[E comparable] struct {
	items []E
	pos   int
}

func (r *ring[E]) Empty() bool {
	return len(r.items) == 0
}

func (r *ring[E]) Len() int {
	return len(r.items)
}

// Push appends v, scheduling it after every member inserted earlier.
func (r *ring[E]) Push(v E) {
	r.items = append(r.items, v)
}

// Scan moves the cursor to the first member after it that satisfies
// eligible, wrapping around once. The member under the cursor itself is
// checked last. Scan reports failure only if no member is eligible.
func (r *ring[E]) Scan(eligible func(E) bool) (v E, ok bool) {
	n := len(r.items)
	for i := 1; i <= n; i++ {
		j := (r.pos + i) % n
		if eligible(r.items[j]) {
			r.pos = j
			return r.items[j], true
		}
	}
	return v, false
}

// Remove deletes v, keeping the cursor on the member it pointed at.
func (r *ring[E]) Remove(v E) bool {
	for i, x := range r.items {
		if x != v {
			continue
		}
		r.items = append(r.items[:i], r.items[i+1:]...)
		switch {
		case i < r.pos:
			r.pos--
		case r.pos >= len(r.items):
			r.pos = 0
		}
		return true
	}
	return false
}

// All yields every member in insertion order.
func (r *ring[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, v := range r.items {
			if !yield(v) {
				return
			}
		}
	}
}
