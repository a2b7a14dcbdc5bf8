// Package urxtest provides helpers for testing code built on urx.
package urxtest

import (
	"github.com/spectonic/urx"
)

// Call is one recorded event: a handler invocation or a teardown run.
type Call[T any] struct {
	Kind  Kind
	Value T
	Err   error
}

type Kind string

const (
	KindNext     Kind = "next"
	KindError    Kind = "error"
	KindComplete Kind = "complete"
	KindTeardown Kind = "teardown"
)

// Recorder records every handler invocation and teardown run, in order.
//
// Recorder is not safe for concurrent use, matching urx.Observer.
type Recorder[T any] struct {
	calls []Call[T]
}

// NewRecorder constructs a Recorder.
func NewRecorder[T any]() *Recorder[T] {
	return &Recorder[T]{}
}

// Handlers returns a full handler set that records into r.
func (r *Recorder[T]) Handlers() urx.Handlers[T] {
	return urx.Handlers[T]{
		Next: func(v T) {
			r.calls = append(r.calls, Call[T]{Kind: KindNext, Value: v})
		},
		Error: func(err error) {
			r.calls = append(r.calls, Call[T]{Kind: KindError, Err: err})
		},
		Complete: func() {
			r.calls = append(r.calls, Call[T]{Kind: KindComplete})
		},
	}
}

// Teardown returns a teardown action that records into r.
func (r *Recorder[T]) Teardown() urx.Teardown {
	return func() {
		r.calls = append(r.calls, Call[T]{Kind: KindTeardown})
	}
}

// Calls returns a snapshot copy of recorded calls.
func (r *Recorder[T]) Calls() []Call[T] {
	cp := make([]Call[T], len(r.calls))
	copy(cp, r.calls)
	return cp
}

// Values returns the values passed to Next, in order.
func (r *Recorder[T]) Values() []T {
	var out []T
	for _, c := range r.calls {
		if c.Kind == KindNext {
			out = append(out, c.Value)
		}
	}
	return out
}

// Count returns how many calls of kind were recorded.
func (r *Recorder[T]) Count(kind Kind) int {
	n := 0
	for _, c := range r.calls {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// Kinds returns the kinds of recorded calls, in order.
func (r *Recorder[T]) Kinds() []Kind {
	out := make([]Kind, len(r.calls))
	for i, c := range r.calls {
		out[i] = c.Kind
	}
	return out
}

// Reset clears the recorder.
func (r *Recorder[T]) Reset() {
	r.calls = nil
}
