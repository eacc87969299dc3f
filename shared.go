package sensorflow

import "sync"

// Shared is a value mutated by one writer and sampled by any number of
// readers. All access goes through a single mutex which is held only for the
// duration of the caller's function.
//
// If a function panics while holding the lock the value is marked poisoned:
// it may be half-updated, so every later Update or Extract returns
// ErrPoisoned instead of exposing it.
type Shared[T any] struct {
	mu       sync.Mutex
	value    T
	poisoned bool
}

// NewShared creates shared state holding initial.
func NewShared[T any](initial T) *Shared[T] {
	return &Shared[T]{value: initial}
}

// Update applies fn to the value under the lock.
// fn must not block and must not touch the Shared it is given.
func (s *Shared[T]) Update(fn func(*T)) error {
	s.mu.Lock()
	if s.poisoned {
		s.mu.Unlock()
		return ErrPoisoned
	}

	completed := false
	defer func() {
		if !completed {
			s.poisoned = true
		}
		s.mu.Unlock()
	}()

	fn(&s.value)
	completed = true
	return nil
}

// Load returns a copy of the value.
func (s *Shared[T]) Load() (T, error) {
	return Extract(s, func(v T) T { return v })
}

// Poisoned reports whether a previous holder panicked while holding the lock.
func (s *Shared[T]) Poisoned() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.poisoned
}

// Extract applies fn to a copy of the value under the lock and returns the
// derived result. fn must be a pure read; it must not retain references into
// the value after returning.
func Extract[S, T any](s *Shared[S], fn func(S) T) (T, error) {
	var zero T

	s.mu.Lock()
	if s.poisoned {
		s.mu.Unlock()
		return zero, ErrPoisoned
	}

	completed := false
	defer func() {
		if !completed {
			s.poisoned = true
		}
		s.mu.Unlock()
	}()

	v := fn(s.value)
	completed = true
	return v, nil
}
