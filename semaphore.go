package coop

import "slices"

// A Semaphore bounds cooperative access to a resource. Callers request
// access with a given weight; when the remaining capacity is too small,
// the caller is parked until earlier holders release enough of it.
// Waiters are served strictly first in, first out: while any coroutine is
// queued, later Acquire calls queue behind it even if their weight would
// fit.
//
// A Semaphore belongs to the [Runtime] that created it and must only be
// used by coroutines of that runtime.
type Semaphore struct {
	rt      *Runtime
	size    int64
	cur     int64
	waiters []*semWaiter
}

type semWaiter struct {
	co      *Coroutine
	n       int64
	granted bool
}

// NewSemaphore creates a weighted semaphore with the given maximum
// combined weight.
func (rt *Runtime) NewSemaphore(n int64) *Semaphore {
	return &Semaphore{rt: rt, size: n}
}

// Acquire parks the calling coroutine until a weight of n is acquired
// from the semaphore. Acquiring a negative weight, or a weight that
// exceeds the semaphore's size and therefore could never succeed, panics.
func (s *Semaphore) Acquire(n int64) {
	if n < 0 {
		panic("coop: negative semaphore weight")
	}
	if n > s.size {
		panic("coop: semaphore weight exceeds size")
	}
	if len(s.waiters) == 0 && s.size-s.cur >= n {
		s.cur += n
		return
	}
	w := &semWaiter{co: s.rt.current, n: n}
	s.waiters = append(s.waiters, w)
	for !w.granted {
		s.rt.block()
	}
}

// Release returns a weight of n to the semaphore and grants as many
// queued waiters as now fit, in order. Releasing a negative weight, or
// more than is currently held, panics.
func (s *Semaphore) Release(n int64) {
	if n < 0 {
		panic("coop: negative semaphore weight")
	}
	s.cur -= n
	if s.cur < 0 {
		panic("coop: semaphore released more than held")
	}
	s.notifyWaiters()
}

func (s *Semaphore) notifyWaiters() {
	i := 0
	for ; i < len(s.waiters); i++ {
		w := s.waiters[i]
		if s.size-s.cur < w.n {
			break
		}
		s.cur += w.n
		w.granted = true
		s.rt.unblock(w.co)
	}
	s.waiters = slices.Delete(s.waiters, 0, i)
}
