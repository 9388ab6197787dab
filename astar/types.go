// Package astar defines the session states, sentinel errors and functional
// options of the A* search.
package astar

import (
	"errors"
)

// Sentinel errors returned by the astar package.
var (
	// ErrNilGraph indicates a nil *grid.Graph was passed to New.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrBudgetExhausted indicates Search stopped after expanding
	// MaxExpansions nodes without reaching the goal. The path is empty.
	ErrBudgetExhausted = errors.New("astar: expansion budget exhausted")

	// ErrBadMaxExpansions indicates a negative expansion budget.
	ErrBadMaxExpansions = errors.New("astar: MaxExpansions must be non-negative")
)

// Status describes where a search session stands.
type Status int

const (
	// Idle: no search started, or the session was reset.
	Idle Status = iota

	// Searching: the main loop is running (observable only from within a
	// single-threaded call stack, e.g. not at all in normal use).
	Searching

	// Done: the last Search finished, with the outcome readable via Path.
	Done
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Searching:
		return "Searching"
	case Done:
		return "Done"
	default:
		return "Status(?)"
	}
}

// Options configures a search session.
//
// MaxExpansions – hard cap on nodes expanded per Search; 0 means unlimited.
// Bounds worst-case runtime on large or fully-connected graphs.
type Options struct {
	MaxExpansions int
}

// Option is a functional option for configuring an AStar session.
type Option func(*Options)

// WithMaxExpansions caps how many nodes one Search may expand before giving
// up with ErrBudgetExhausted. Zero disables the cap. Panics with
// ErrBadMaxExpansions for negative n.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxExpansions.Error())
		}
		o.MaxExpansions = n
	}
}

// DefaultOptions returns the defaults: no expansion cap.
func DefaultOptions() Options {
	return Options{MaxExpansions: 0}
}
