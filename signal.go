package coop

// A Signal parks coroutines until another coroutine notifies it.
//
// Wait suspends the calling coroutine; Notify and Broadcast make waiting
// coroutines runnable again, in the order they started waiting. Woken
// coroutines do not run immediately: the notifier keeps the flow until its
// own next suspension point, and the woken ones resume when the scheduler
// reaches them.
//
// A Signal belongs to the [Runtime] that created it and must only be used
// by coroutines of that runtime.
type Signal struct {
	rt      *Runtime
	waiters []*Coroutine
}

// NewSignal creates a new [Signal].
func (rt *Runtime) NewSignal() *Signal {
	return &Signal{rt: rt}
}

// Wait parks the calling coroutine until s is notified.
func (s *Signal) Wait() {
	s.waiters = append(s.waiters, s.rt.current)
	s.rt.block()
}

// Notify releases the longest-waiting coroutine, if any.
func (s *Signal) Notify() {
	if len(s.waiters) == 0 {
		return
	}
	co := s.waiters[0]
	s.waiters = s.waiters[1:]
	s.rt.unblock(co)
}

// Broadcast releases every coroutine waiting on s.
func (s *Signal) Broadcast() {
	waiters := s.waiters
	s.waiters = nil
	for _, co := range waiters {
		s.rt.unblock(co)
	}
}
