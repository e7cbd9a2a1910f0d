package coop

import (
	"errors"
	"log/slog"
	"runtime"
)

// ErrDeadlock is the panic value delivered on the primordial coroutine
// when no coroutine anywhere is runnable or startable.
var ErrDeadlock = errors.New("coop: deadlock: every coroutine is waiting")

type runtimeState uint8

const (
	stateRunning runtimeState = iota
	stateDeadlocked
	stateShutdown
)

// A Runtime interleaves coroutines within a single flow of control.
//
// The original flow — the goroutine that calls [New] — is registered as
// the primordial coroutine and owns the flow until it yields or waits.
// The ready queue, the current-coroutine reference, and all records are
// only ever touched by whichever coroutine owns the flow, so the Runtime
// needs no locks; by the same token, its methods must not be called from
// goroutines outside the runtime's flow.
type Runtime struct {
	log        *slog.Logger
	queue      ring[*Coroutine]
	current    *Coroutine
	primordial *Coroutine
	state      runtimeState
	pending    []*capturedPanic
}

// An Option configures a [Runtime].
type Option func(*Runtime)

// WithLogger sets the logger that receives debug-level lifecycle events
// (spawn, switch, death, reclamation, shutdown). The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(rt *Runtime) { rt.log = l }
}

// New creates a [Runtime] and registers the calling goroutine as its
// primordial coroutine, runnable and current before any Spawn call.
//
// The caller owns the runtime's flow from here on and must eventually
// call [Runtime.Shutdown].
func New(opts ...Option) *Runtime {
	rt := &Runtime{log: slog.New(slog.DiscardHandler)}
	for _, o := range opts {
		o(rt)
	}
	main := newCoroutine(rt, "main", nil, nil)
	main.status = StatusRunnable
	rt.queue.Push(main)
	rt.primordial = main
	rt.current = main
	rt.log.Debug("runtime started", "primordial", main.id)
	return rt
}

// Current returns the coroutine that currently owns the flow.
func (rt *Runtime) Current() *Coroutine {
	return rt.current
}

// Spawn creates a coroutine that will run entry(arg) on its own stack and
// appends it to the ready queue, after every coroutine spawned earlier.
// Spawn never switches; the new coroutine first runs when the scheduler
// selects it at somebody's suspension point.
func (rt *Runtime) Spawn(name string, entry EntryFunc, arg any) *Coroutine {
	rt.ensureRunning()
	if entry == nil {
		panic("coop: Spawn called with a nil entry function")
	}
	co := newCoroutine(rt, name, entry, arg)
	rt.queue.Push(co)
	rt.log.Debug("coroutine spawned", "name", co.name, "id", co.id)
	return co
}

// Yield voluntarily relinquishes control. It returns when the calling
// coroutine is next scheduled — immediately, if no other coroutine is
// eligible to run.
func (rt *Runtime) Yield() {
	rt.ensureRunning()
	co := rt.current
	next, ok := rt.queue.Scan(eligible)
	if !ok {
		rt.deadlock()
	}
	if next != co {
		rt.transfer(next)
		co.park()
	}
	rt.deliverPending(co)
}

// Wait blocks the calling coroutine until co has terminated, then reclaims
// co's record. If co is already dead, Wait returns without suspending.
//
// Each coroutine supports at most one waiter, and Wait must be called at
// most once per handle; violations panic. If co's entry function panicked,
// Wait re-raises the captured panic after reclamation.
func (rt *Runtime) Wait(co *Coroutine) {
	rt.ensureRunning()
	caller := rt.current
	switch {
	case co == nil:
		panic("coop: Wait called with a nil coroutine")
	case co.rt != rt:
		panic("coop: Wait called on a coroutine of another runtime")
	case co == caller:
		panic("coop: coroutine cannot wait on itself")
	case co.reclaimed:
		panic("coop: coroutine has already been reclaimed")
	}
	if co.status != StatusDead {
		if co.waiter != nil {
			panic("coop: coroutine already has a waiter")
		}
		co.waiter = caller
		caller.status = StatusWaiting
		rt.Yield()
	}
	rt.reclaim(co)
	if p := co.panicked; p != nil {
		co.panicked = nil
		panic(p)
	}
	rt.deliverPending(caller)
}

// Shutdown releases every coroutine record still present and ends the
// runtime. Parked coroutines are terminated one at a time through their
// suspension point, so their deferred functions run; records that never
// started are dropped. Shutdown must be called from the primordial
// coroutine. Calling it more than once is a no-op.
func (rt *Runtime) Shutdown() {
	if rt.state == stateShutdown {
		return
	}
	if rt.current != rt.primordial {
		panic("coop: Shutdown must be called from the primordial coroutine")
	}
	rt.state = stateShutdown
	for co := range rt.queue.All() {
		switch {
		case co == rt.primordial || co.status == StatusNew:
		case co.status == StatusDead:
			<-co.done
		default:
			co.ctx.resume <- resumeTerminate
			<-co.done
		}
	}
	rt.queue = ring[*Coroutine]{}
	rt.current = nil
	rt.pending = nil
	rt.log.Debug("runtime shut down")
}

func eligible(c *Coroutine) bool {
	return c.status == StatusRunnable || c.status == StatusNew
}

func (rt *Runtime) ensureRunning() {
	if rt.state != stateRunning {
		panic("coop: runtime is shut down")
	}
}

// reclaim removes co from the ready queue and releases its record.
// This is the single point of destruction for a coroutine record.
func (rt *Runtime) reclaim(co *Coroutine) {
	<-co.done
	rt.queue.Remove(co)
	co.reclaimed = true
	co.waiter = nil
	rt.log.Debug("coroutine reclaimed", "name", co.name, "id", co.id)
}

// deadlock reports scheduler exhaustion: no record anywhere is runnable or
// startable, which is only reachable through a wait cycle. The report is
// delivered on the primordial coroutine; the detecting goroutine unwinds.
func (rt *Runtime) deadlock() {
	co := rt.current
	rt.state = stateDeadlocked
	rt.log.Error("deadlock: every coroutine is waiting")
	if co == rt.primordial {
		panic(ErrDeadlock)
	}
	rt.current = rt.primordial
	rt.primordial.ctx.resume <- resumeDeadlock
	runtime.Goexit()
}

// block marks the current coroutine waiting and yields. The caller must
// have arranged for some other coroutine to unblock it.
func (rt *Runtime) block() {
	rt.current.status = StatusWaiting
	rt.Yield()
}

// unblock makes a blocked coroutine eligible again. It runs when the
// scheduler next reaches it; the flow is not transferred here.
func (rt *Runtime) unblock(co *Coroutine) {
	if co.status == StatusWaiting {
		co.status = StatusRunnable
	}
}

// deliverPending re-raises, on the primordial coroutine, panics of dead
// coroutines that nobody waited on.
func (rt *Runtime) deliverPending(co *Coroutine) {
	if co != rt.primordial || len(rt.pending) == 0 {
		return
	}
	p := rt.pending[0]
	rt.pending = rt.pending[1:]
	panic(p)
}
