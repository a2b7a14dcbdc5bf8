package urx

import "github.com/rs/zerolog"

// Producer pushes values into the Observer it is given and returns the
// Teardown for that subscription. It may return nil if nothing needs releasing.
type Producer[T any] func(*Observer[T]) Teardown

// Observable describes how values are produced without producing them. It is
// immutable; each Subscribe runs the producer again for a fresh Observer.
type Observable[T any] struct {
	producer Producer[T]
	log      zerolog.Logger
}

// Create builds an Observable from a producer function.
func Create[T any](producer Producer[T], opts ...Option) Observable[T] {
	if producer == nil {
		panic("a nil producer was passed to urx.Create")
	}
	c := newConfig(opts)
	return Observable[T]{producer: producer, log: c.log}
}

// Subscribe runs the producer synchronously and returns once its body has
// returned. If the producer already terminated the stream, its Teardown is
// run before Subscribe returns and later Unsubscribe calls do nothing.
//
// The zero Observable never emits anything.
func (o Observable[T]) Subscribe(handlers Handlers[T]) Subscription {
	if o.producer == nil {
		obs := newObserver(handlers, zerolog.Nop())
		obs.install(nil)
		return subscription[T]{observer: obs}
	}

	obs := newObserver(handlers, o.log)
	o.log.Debug().Msg("subscribing")
	teardown := o.producer(obs)
	o.log.Debug().Bool("terminated", obs.terminated).Msg("producer returned")
	obs.install(teardown)
	return subscription[T]{observer: obs}
}
