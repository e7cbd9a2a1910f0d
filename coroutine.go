package coop

import "github.com/google/uuid"

// Status describes where a coroutine is in its lifecycle.
type Status int32

const (
	// StatusNew means the coroutine was spawned but its entry function
	// has not yet been invoked.
	StatusNew Status = iota
	// StatusRunnable means the coroutine is the one running, or is
	// suspended at a yield point and eligible to run again.
	StatusRunnable
	// StatusWaiting means the coroutine is blocked in [Runtime.Wait] or
	// on a synchronization primitive; it is skipped by the scheduler
	// until something makes it runnable again.
	StatusWaiting
	// StatusDead means the entry function has returned; the record
	// remains until a waiter reclaims it or the runtime shuts down.
	StatusDead
)

// String returns the name of s.
func (s Status) String() string {
	switch s {
	case StatusNew:
		return "New"
	case StatusRunnable:
		return "Runnable"
	case StatusWaiting:
		return "Waiting"
	case StatusDead:
		return "Dead"
	default:
		return "Unknown"
	}
}

// An EntryFunc is the body of a coroutine. It is invoked exactly once,
// with the argument supplied at [Runtime.Spawn] time, on the coroutine's
// own stack. The coroutine terminates when it returns.
type EntryFunc func(arg any)

// A Coroutine is one cooperatively scheduled task: an entry function
// executing on a private stack, interleaved with its peers by a [Runtime].
//
// The value returned by [Runtime.Spawn] is the coroutine's handle; pass it
// to [Runtime.Wait] to join the coroutine and reclaim its record.
// A handle must not be used again after the coroutine has been reclaimed.
type Coroutine struct {
	rt   *Runtime
	id   string
	name string

	entry EntryFunc
	arg   any

	status    Status
	waiter    *Coroutine
	reclaimed bool
	completed bool
	panicked  *capturedPanic

	ctx  savedContext
	done chan struct{}
}

func newCoroutine(rt *Runtime, name string, entry EntryFunc, arg any) *Coroutine {
	return &Coroutine{
		rt:     rt,
		id:     uuid.NewString(),
		name:   name,
		entry:  entry,
		arg:    arg,
		status: StatusNew,
		ctx:    newSavedContext(),
		done:   make(chan struct{}),
	}
}

// Name returns the name given at spawn time. Names are diagnostic only;
// uniqueness is not enforced.
func (c *Coroutine) Name() string {
	return c.name
}

// ID returns the unique identifier of c.
func (c *Coroutine) ID() string {
	return c.id
}

// Status returns the current lifecycle status of c.
func (c *Coroutine) Status() Status {
	return c.status
}

// String returns a diagnostic description of c.
func (c *Coroutine) String() string {
	return c.name + " (" + c.id + ")"
}

// main is the body of the backing goroutine. The entry function and its
// argument are consumed here, exactly once.
func (c *Coroutine) main() {
	defer c.finalize()
	entry, arg := c.entry, c.arg
	c.entry, c.arg = nil, nil
	entry(arg)
	c.completed = true
}

// finalize runs when the entry function returns, panics, or is unwound.
// It marks the record dead, wakes the waiter if one is registered, and
// hands the flow to the next eligible coroutine; a coroutine cannot resume
// after death, so its goroutine simply finishes.
func (c *Coroutine) finalize() {
	rt := c.rt
	if v := recover(); v != nil {
		c.panicked = capturePanic(c, v)
	} else if !c.completed {
		if rt.state != stateRunning {
			// Unwound through park during shutdown or after
			// a deadlock report; scheduling is over.
			c.status = StatusDead
			return
		}
		panic("coop: coroutines must not call runtime.Goexit")
	}
	c.status = StatusDead
	rt.log.Debug("coroutine dead", "name", c.name, "id", c.id)
	if w := c.waiter; w != nil {
		w.status = StatusRunnable
	} else if p := c.panicked; p != nil {
		c.panicked = nil
		rt.pending = append(rt.pending, p)
	}
	next, ok := rt.queue.Scan(eligible)
	if !ok {
		rt.deadlock()
		return
	}
	rt.transfer(next)
}
