package urx

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Observer is the per-subscription gate between a producer and the consumer's
// Handlers. Every signal passes through it; once the stream has terminated no
// handler is invoked again and the teardown runs at most once.
//
// An Observer is not safe for concurrent use.
type Observer[T any] struct {
	handlers   Handlers[T]
	terminated bool
	// installed is false while the producer is still running; teardown is
	// deferred until Subscribe hands over the producer's Teardown.
	installed bool
	hooks
	log zerolog.Logger
}

func newObserver[T any](handlers Handlers[T], log zerolog.Logger) *Observer[T] {
	return &Observer[T]{handlers: handlers, log: log}
}

// Next delivers value to the Next handler, if the stream is still active.
func (o *Observer[T]) Next(value T) {
	if o.terminated || o.handlers.Next == nil {
		return
	}
	o.handlers.Next(value)
}

// Error terminates the stream with err. Without an Error handler the error is
// dropped. A panicking handler skips the teardown; a later Unsubscribe retries it.
func (o *Observer[T]) Error(err error) {
	if o.terminated {
		return
	}
	o.terminated = true
	if o.handlers.Error != nil {
		o.handlers.Error(err)
	}
	o.teardown()
}

// Complete terminates the stream normally.
func (o *Observer[T]) Complete() {
	if o.terminated {
		return
	}
	o.terminated = true
	if o.handlers.Complete != nil {
		o.handlers.Complete()
	}
	o.teardown()
}

// Unsubscribe terminates the stream without notifying any handler.
func (o *Observer[T]) Unsubscribe() {
	o.terminated = true
	o.teardown()
}

// IsSubscribed reports whether signals are still being delivered.
func (o *Observer[T]) IsSubscribed() bool {
	return !o.terminated
}

// Notify dispatches a materialized notification.
func (o *Observer[T]) Notify(n Notification[T]) {
	switch n.Type() {
	case OnNext:
		o.Next(n.Value())
	case OnError:
		o.Error(n.Err())
	case OnComplete:
		o.Complete()
	default:
		panic(fmt.Sprintf("urx: unknown notification type %q", n.Type()))
	}
}

// Add registers an extra teardown hook. Hooks run in the order they were
// added; the producer's returned Teardown takes its place in that order when
// the producer returns. If teardown already ran, hook runs now.
func (o *Observer[T]) Add(hook Teardown) {
	if hook == nil {
		return
	}
	if o.finished {
		hook()
		return
	}
	o.hooks.Add(hook)
}

// install is the second phase of construction: Subscribe hands over the
// producer's Teardown once the producer has returned. A stream that already
// terminated during production is torn down right away.
func (o *Observer[T]) install(teardown Teardown) {
	o.installed = true
	o.hooks.Add(teardown)
	if o.terminated {
		o.teardown()
	}
}

func (o *Observer[T]) teardown() {
	if !o.installed || o.finished {
		return
	}
	o.log.Debug().Msg("running teardown")
	o.callHooks()
}
