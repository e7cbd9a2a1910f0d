package coop

// A State is a [Signal] that carries a value.
// To retrieve the value, call the Get method.
//
// Calling Set updates the value and releases every coroutine parked in
// the embedded Signal's Wait, so a coroutine can sleep until the value
// changes and then re-examine it.
//
// A State belongs to the [Runtime] it was created with and must only be
// used by coroutines of that runtime.
type State[T any] struct {
	Signal
	value T
}

// NewState creates a new [State] with its initial value set to v.
func NewState[T any](rt *Runtime, v T) *State[T] {
	return &State[T]{Signal: Signal{rt: rt}, value: v}
}

// Get retrieves the value of s.
func (s *State[T]) Get() T {
	return s.value
}

// Set updates the value of s and releases every coroutine waiting on s.
func (s *State[T]) Set(v T) {
	s.value = v
	s.Broadcast()
}

// Update sets the value of s to f(s.Get()).
func (s *State[T]) Update(f func(v T) T) {
	s.Set(f(s.value))
}
