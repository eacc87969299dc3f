package led

import "sync"

// FakeLight records every state it is switched to.
type FakeLight struct {
	mu     sync.Mutex
	states []bool
	closed bool

	// SetError, if set, is returned by Set.
	SetError error
}

// Set records on.
func (f *FakeLight) Set(on bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.SetError != nil {
		return f.SetError
	}
	f.states = append(f.states, on)
	return nil
}

// States returns the recorded states in order.
func (f *FakeLight) States() []bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]bool(nil), f.states...)
}

// Close marks the light as closed.
func (f *FakeLight) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

// Closed reports whether Close was called.
func (f *FakeLight) Closed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}
