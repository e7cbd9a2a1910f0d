package coop_test

import (
	"testing"

	"github.com/b97tsk/coop"
	"github.com/stretchr/testify/require"
)

func TestWaitGroup(t *testing.T) {
	rt := coop.New()
	defer rt.Shutdown()

	wg := rt.NewWaitGroup()
	wg.Wait() // Zero counter; returns immediately.

	wg.Add(2)

	var done int

	rt.Spawn("w1", func(any) { done++; wg.Done() }, nil)
	rt.Spawn("w2", func(any) { done++; wg.Done() }, nil)

	doneAtJoin := -1

	join := rt.Spawn("join", func(any) {
		wg.Wait()
		doneAtJoin = done
	}, nil)

	rt.Wait(join)
	require.Equal(t, 2, doneAtJoin, "Wait must not return before the counter reaches zero")
}

func TestWaitGroupParksUntilZero(t *testing.T) {
	rt := coop.New()
	defer rt.Shutdown()

	wg := rt.NewWaitGroup()
	wg.Add(1)

	var order []string

	join := rt.Spawn("join", func(any) {
		order = append(order, "join: waiting")
		wg.Wait()
		order = append(order, "join: done")
	}, nil)
	rt.Spawn("worker", func(any) {
		order = append(order, "worker")
		wg.Done()
	}, nil)

	rt.Wait(join)

	require.Equal(t, []string{"join: waiting", "worker", "join: done"}, order)
}

func TestWaitGroupNegativeCounter(t *testing.T) {
	rt := coop.New()
	defer rt.Shutdown()

	wg := rt.NewWaitGroup()

	require.PanicsWithValue(t, "coop: negative WaitGroup counter", func() {
		wg.Done()
	})
}
