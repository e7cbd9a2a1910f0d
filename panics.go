package coop

import (
	"fmt"
	"runtime/debug"
)

// A capturedPanic carries a panic raised by an entry function, together
// with the stack trace of the panicking coroutine, so that it can be
// re-raised where someone is listening: in the joiner's [Runtime.Wait]
// call, or on the primordial coroutine if the record has no waiter.
type capturedPanic struct {
	coroutine string
	value     any
	stack     []byte
}

func capturePanic(c *Coroutine, v any) *capturedPanic {
	return &capturedPanic{coroutine: c.String(), value: v, stack: debug.Stack()}
}

func (p *capturedPanic) Error() string {
	return fmt.Sprintf("coop: coroutine %s panicked: %v\n\n%s", p.coroutine, p.value, p.stack)
}

func (p *capturedPanic) Unwrap() error {
	if err, ok := p.value.(error); ok {
		return err
	}
	return nil
}
