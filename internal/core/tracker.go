package core

import (
	"errors"
	"sync"
)

// ErrAlreadyPending is returned when a diagnosis is started while another
// is still outstanding.
var ErrAlreadyPending = errors.New("a diagnosis request is already in progress")

// State is the lifecycle of the single outstanding diagnosis.
type State int

const (
	StateIdle State = iota
	StatePending
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	}
	return "idle"
}

// Result is a snapshot of a Tracker.
type Result struct {
	State State
	Text  string
	Err   error
}

// Tracker holds at most one outstanding diagnosis and its last result.
type Tracker struct {
	mu     sync.Mutex
	result Result
	done   chan struct{}
}

// Run starts fn in a new goroutine unless one is already pending. Starting
// from a terminal state discards the previous result.
func (t *Tracker) Run(fn func() (string, error)) error {
	t.mu.Lock()
	if t.result.State == StatePending {
		t.mu.Unlock()
		return ErrAlreadyPending
	}
	t.result = Result{State: StatePending}
	done := make(chan struct{})
	t.done = done
	t.mu.Unlock()

	go func() {
		defer close(done)
		text, err := fn()
		t.mu.Lock()
		defer t.mu.Unlock()
		if err != nil {
			t.result = Result{State: StateFailed, Err: err}
			return
		}
		t.result = Result{State: StateSucceeded, Text: text}
	}()
	return nil
}

// Snapshot returns the current state.
func (t *Tracker) Snapshot() Result {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.result
}

// Wait blocks until the current request, if any, has finished.
func (t *Tracker) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()
	if done != nil {
		<-done
	}
}
