// Package coop implements stackful cooperative coroutines.
//
// A coroutine is a logical task with its own private execution stack.
// A [Runtime] interleaves any number of coroutines within a single flow of
// control: exactly one coroutine executes at any instant, and control moves
// to another one only at explicit suspension points, namely
// [Runtime.Yield], [Runtime.Wait] and the synchronization primitives built
// on them, or when a coroutine's entry function returns.
// There is no preemption and there are no locks on the scheduling path;
// because only one coroutine ever runs, all of the runtime's state is
// accessed by a single flow.
//
// # The Runtime and the Primordial Coroutine
//
// A Runtime is created with [New], which registers the calling goroutine as
// the primordial coroutine: the execution flow that existed before any
// [Runtime.Spawn] call. The primordial coroutine drives everything; it
// spawns the first coroutines, yields into them, and waits for them.
// When it is done, it calls [Runtime.Shutdown], which releases any
// coroutine records still present.
// One can create as many runtimes as they like; each is independent.
//
// All methods of a Runtime and of the primitives it creates must be called
// from whichever coroutine currently owns the flow. They are not safe for
// concurrent use from other goroutines.
//
// # Scheduling
//
// Scheduling is strict round-robin over creation order.
// Yield scans the other coroutines starting just after the caller,
// wrapping once, and transfers control to the first one that is runnable
// or not yet started; the caller's own slot is considered last, so a
// coroutine that yields with no runnable peer simply keeps running and
// Yield returns immediately.
// Given a fixed spawn sequence and a fixed pattern of suspension points,
// execution order is fully deterministic.
//
// # Waiting
//
// [Runtime.Wait] blocks the calling coroutine until the target coroutine's
// entry function has returned, and then reclaims the target's record.
// Each coroutine can be waited on by at most one other coroutine, and
// reclaimed exactly once; violating either rule panics rather than
// corrupting scheduler state.
//
// # Deadlock
//
// If no coroutine anywhere is runnable or startable, no flow can ever make
// progress again; this is only reachable when every live coroutine is
// waiting on another. The runtime reports it by panicking on the
// primordial coroutine with [ErrDeadlock].
//
// # Panic Propagation
//
// An entry function that panics does not unwind the host and does not
// corrupt the scheduler. The coroutine still terminates normally from the
// scheduler's point of view; the panic value, along with a stack trace of
// the panicking coroutine, is re-raised in the waiter's [Runtime.Wait]
// call, or on the primordial coroutine if nobody waits.
// Entry functions must not call [runtime.Goexit].
package coop
