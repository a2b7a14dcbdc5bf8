package urx

// Subscription is the consumer's handle on a running stream. It can only
// cancel; calling Unsubscribe more than once has no further effect.
type Subscription interface {
	Unsubscribe()
}

type subscription[T any] struct {
	observer *Observer[T]
}

func (s subscription[T]) Unsubscribe() {
	s.observer.Unsubscribe()
}
