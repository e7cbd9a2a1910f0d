package coop_test

import (
	"testing"

	"github.com/b97tsk/coop"
	"github.com/stretchr/testify/require"
)

func TestState(t *testing.T) {
	rt := coop.New()
	defer rt.Shutdown()

	s := coop.NewState(rt, 1)
	require.Equal(t, 1, s.Get())

	s.Set(2)
	require.Equal(t, 2, s.Get())

	s.Update(func(v int) int { return v * 10 })
	require.Equal(t, 20, s.Get())
}

func TestStateWakesWaiters(t *testing.T) {
	rt := coop.New()
	defer rt.Shutdown()

	s := coop.NewState(rt, 1)

	var got int

	w := rt.Spawn("watcher", func(any) {
		for s.Get() < 10 {
			s.Wait()
		}
		got = s.Get()
	}, nil)
	rt.Spawn("setter", func(any) {
		s.Set(5)
		rt.Yield()
		s.Set(12)
	}, nil)

	rt.Wait(w)

	require.Equal(t, 12, got, "the watcher re-examines the value on every change")
}
