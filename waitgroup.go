package coop

// A WaitGroup is a counter that parks coroutines until it reaches zero.
//
// Calling Add or Done updates the counter and, when it becomes zero,
// releases every coroutine parked in Wait.
//
// A WaitGroup belongs to the [Runtime] that created it and must only be
// used by coroutines of that runtime.
type WaitGroup struct {
	sig Signal
	n   int
}

// NewWaitGroup creates a new [WaitGroup] with a zero counter.
func (rt *Runtime) NewWaitGroup() *WaitGroup {
	return &WaitGroup{sig: Signal{rt: rt}}
}

// Add adds delta, which may be negative, to the counter.
// If the counter becomes zero, Add releases every coroutine parked in
// Wait. If the counter goes negative, Add panics.
func (wg *WaitGroup) Add(delta int) {
	wg.n += delta
	if wg.n < 0 {
		panic("coop: negative WaitGroup counter")
	}
	if wg.n == 0 && delta != 0 {
		wg.sig.Broadcast()
	}
}

// Done decrements the counter by one.
func (wg *WaitGroup) Done() {
	wg.Add(-1)
}

// Wait parks the calling coroutine until the counter is zero.
func (wg *WaitGroup) Wait() {
	for wg.n != 0 {
		wg.sig.Wait()
	}
}
