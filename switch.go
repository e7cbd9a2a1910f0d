package coop

import "runtime"

// resumeMode is the distinguishable return indicator of a resume transfer:
// it tells a parked coroutine why its park call returned.
type resumeMode uint8

const (
	resumeNormal    resumeMode = iota // scheduled to run again
	resumeTerminate                   // runtime is shutting down; unwind
	resumeDeadlock                    // no runnable coroutine anywhere; report
)

// savedContext is the saved execution state of a suspended coroutine.
//
// The record's backing goroutine owns the private stack, and the Go runtime
// owns its register file; saving and restoring machine state therefore
// reduces to parking the goroutine on a per-record handoff channel.
// Sending on the channel is the resume transfer: it makes the park call
// return, with the received mode distinguishing a normal resume from an
// unwind. The buffer slot lets the resumer proceed to its own park without
// waiting for the target to arrive at the receive.
type savedContext struct {
	resume chan resumeMode
}

func newSavedContext() savedContext {
	return savedContext{resume: make(chan resumeMode, 1)}
}

// park suspends c until another coroutine transfers control back.
// Exactly one token is ever in flight: only the running coroutine sends,
// and sending is the last thing it does before giving up the flow.
func (c *Coroutine) park() {
	switch <-c.ctx.resume {
	case resumeTerminate:
		runtime.Goexit()
	case resumeDeadlock:
		panic(ErrDeadlock)
	}
}

// transfer hands the flow to next. The caller must have made all scheduler
// state consistent first; after transfer returns, the caller no longer owns
// the flow and must either park or let its goroutine finish.
func (rt *Runtime) transfer(next *Coroutine) {
	rt.log.Debug("switch", "from", rt.current.name, "to", next.name)
	rt.current = next
	if next.status == StatusNew {
		next.status = StatusRunnable
		rt.firstRun(next)
		return
	}
	next.ctx.resume <- resumeNormal
}

// firstRun populates next's private stack for the first time: it starts the
// backing goroutine, which invokes the entry function with its stored
// argument. This is the only point where a coroutine's stack comes to life.
func (rt *Runtime) firstRun(next *Coroutine) {
	go func() {
		defer close(next.done)
		next.main()
	}()
}
