package urx

// From emits every element of values in order and then completes. The
// subscription holds no resources; its teardown only logs.
func From[T any](values []T, opts ...Option) Observable[T] {
	c := newConfig(opts)
	return Observable[T]{log: c.log, producer: func(obs *Observer[T]) Teardown {
		for _, value := range values {
			obs.Next(value)
		}
		obs.Complete()
		return func() {
			c.log.Info().Msg("unsubscribed")
		}
	}}
}

// FromChan drains source synchronously, emitting each received value, and
// completes once source is closed. Subscribe blocks until then. Receiving
// stops as soon as the stream is no longer subscribed.
func FromChan[T any](source <-chan T, opts ...Option) Observable[T] {
	if source == nil {
		panic("a nil channel was passed to urx.FromChan")
	}
	c := newConfig(opts)
	return Observable[T]{log: c.log, producer: func(obs *Observer[T]) Teardown {
		for obs.IsSubscribed() {
			next, ok := <-source
			if !ok {
				obs.Complete()
				break
			}
			obs.Next(next)
		}
		return nil
	}}
}
