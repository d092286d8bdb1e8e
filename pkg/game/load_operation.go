package game

import (
	"math"
	"sync"
)

// LoadState is the lifecycle of a LoadOperation.
type LoadState int

const (
	LoadIdle LoadState = iota
	LoadLoading
	LoadDone
)

// String returns the state name for logs.
func (s LoadState) String() string {
	switch s {
	case LoadIdle:
		return "Idle"
	case LoadLoading:
		return "Loading"
	case LoadDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// LoadOperation is a polling handle for an asynchronous scene load.
//
// The loader goroutine reports progress; the update loop polls Progress and
// IsDone once per frame. Cancellation is not supported.
type LoadOperation struct {
	mu       sync.RWMutex
	state    LoadState
	progress float64
}

// NewLoadOperation creates an idle operation.
func NewLoadOperation() *LoadOperation {
	return &LoadOperation{}
}

// Progress returns the progress in [0, 1].
func (op *LoadOperation) Progress() float64 {
	op.mu.RLock()
	defer op.mu.RUnlock()
	return op.progress
}

// IsDone reports whether the operation completed.
func (op *LoadOperation) IsDone() bool {
	op.mu.RLock()
	defer op.mu.RUnlock()
	return op.state == LoadDone
}

// State returns the current state.
func (op *LoadOperation) State() LoadState {
	op.mu.RLock()
	defer op.mu.RUnlock()
	return op.state
}

// UpdateProgress records progress. A value of 1 or more completes the
// operation with progress 1.
func (op *LoadOperation) UpdateProgress(progress float64) {
	op.mu.Lock()
	defer op.mu.Unlock()

	if progress >= 1 {
		op.progress = 1
		op.state = LoadDone
		return
	}
	op.progress = math.Max(0, progress)
	if op.state == LoadIdle {
		op.state = LoadLoading
	}
}

// Done completes the operation without touching the progress.
func (op *LoadOperation) Done() {
	op.mu.Lock()
	defer op.mu.Unlock()
	op.state = LoadDone
}

// Reset returns the operation to Idle with no progress.
func (op *LoadOperation) Reset() {
	op.mu.Lock()
	defer op.mu.Unlock()
	op.progress = 0
	op.state = LoadIdle
}
