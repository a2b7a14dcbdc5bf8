// Package urx is a small push-based observable.
//
// An Observable wraps a Producer. Subscribe builds an Observer around the
// consumer's Handlers, runs the producer synchronously with it and returns a
// Subscription whose only capability is Unsubscribe.
//
// # Lifecycle
//
// An Observer is Active until the producer calls Error or Complete, or the
// consumer calls Unsubscribe. After that it is Terminated for good: no handler
// fires again and the teardown returned by the producer runs exactly once.
//
// The producer's Teardown is only known after the producer returns. When a
// producer terminates the stream before returning (From always does), the
// teardown runs as soon as Subscribe receives it, and a later Unsubscribe is a
// no-op.
//
// # Concurrency
//
// Delivery is synchronous and there is no scheduler. An Observer does no
// locking; a producer that hands its Observer to other goroutines must
// serialize the calls itself. CompositeSubscription is the exception and may
// be shared.
//
// # Handler panics
//
// Panics raised by handlers are not recovered and reach whoever triggered the
// delivery. The stream is already marked terminated when a terminal handler
// runs, so a panic there cannot cause a second delivery; only its teardown is
// postponed until the next Unsubscribe.
package urx
