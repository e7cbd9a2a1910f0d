package coop_test

import (
	"fmt"

	"github.com/b97tsk/coop"
)

func Example() {
	// Create a runtime. The calling goroutine becomes the primordial
	// coroutine and owns the flow until it yields or waits.
	rt := coop.New()
	defer rt.Shutdown()

	// Spawn two coroutines. Nothing runs yet; they first run when the
	// scheduler selects them at a suspension point.
	a := rt.Spawn("a", func(arg any) {
		fmt.Println("a: first")
		rt.Yield()
		fmt.Println("a: second")
	}, nil)
	b := rt.Spawn("b", func(arg any) {
		fmt.Println("b: first")
		rt.Yield()
		fmt.Println("b: second")
	}, nil)

	// Join both. Waiting suspends the primordial coroutine, so a and b
	// run, in spawn order, interleaving at their yield points.
	rt.Wait(a)
	rt.Wait(b)

	// Output:
	// a: first
	// b: first
	// a: second
	// b: second
}

func Example_roundRobin() {
	rt := coop.New()
	defer rt.Shutdown()

	count := func(arg any) {
		name := arg.(string)
		for i := 1; i <= 2; i++ {
			fmt.Println(name, i)
			rt.Yield()
		}
	}

	a := rt.Spawn("A", count, "A")
	b := rt.Spawn("B", count, "B")

	rt.Wait(a)
	rt.Wait(b)

	// Output:
	// A 1
	// B 1
	// A 2
	// B 2
}

func ExampleRuntime_Wait() {
	rt := coop.New()
	defer rt.Shutdown()

	counter := 0

	x := rt.Spawn("x", func(arg any) {
		counter++
	}, nil)
	y := rt.Spawn("y", func(arg any) {
		rt.Wait(x) // Returns once x is dead; x's record is reclaimed here.
		counter++
	}, nil)

	rt.Wait(y)
	fmt.Println("counter =", counter)

	// Output:
	// counter = 2
}

func ExampleWaitGroup() {
	rt := coop.New()
	defer rt.Shutdown()

	wg := rt.NewWaitGroup()
	wg.Add(2)

	rt.Spawn("w1", func(arg any) {
		fmt.Println("work 1")
		wg.Done()
	}, nil)
	rt.Spawn("w2", func(arg any) {
		fmt.Println("work 2")
		wg.Done()
	}, nil)

	join := rt.Spawn("join", func(arg any) {
		wg.Wait()
		fmt.Println("all done")
	}, nil)

	rt.Wait(join)

	// Output:
	// work 1
	// work 2
	// all done
}

func ExampleSemaphore() {
	rt := coop.New()
	defer rt.Shutdown()

	sema := rt.NewSemaphore(2)

	worker := func(arg any) {
		name := arg.(string)
		sema.Acquire(1)
		fmt.Println(name, "acquired")
		rt.Yield()
		sema.Release(1)
		fmt.Println(name, "released")
	}

	w1 := rt.Spawn("w1", worker, "w1")
	w2 := rt.Spawn("w2", worker, "w2")
	w3 := rt.Spawn("w3", worker, "w3")

	rt.Wait(w1)
	rt.Wait(w2)
	rt.Wait(w3)

	// Output:
	// w1 acquired
	// w2 acquired
	// w1 released
	// w2 released
	// w3 acquired
	// w3 released
}
