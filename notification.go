package urx

import "fmt"

type NotificationType string

const (
	OnNext     NotificationType = "next"
	OnError    NotificationType = "error"
	OnComplete NotificationType = "complete"
)

// Notification is a single materialized signal of a stream.
type Notification[T any] struct {
	t     NotificationType
	value T
	err   error
}

// Next creates an OnNext notification carrying value.
func Next[T any](value T) Notification[T] {
	return Notification[T]{t: OnNext, value: value}
}

// Error creates an OnError notification carrying err.
func Error[T any](err error) Notification[T] {
	return Notification[T]{t: OnError, err: err}
}

// Complete creates an OnComplete notification.
func Complete[T any]() Notification[T] {
	return Notification[T]{t: OnComplete}
}

func (n Notification[T]) Type() NotificationType {
	return n.t
}

func (n Notification[T]) Value() T {
	return n.value
}

func (n Notification[T]) Err() error {
	return n.err
}

func (n Notification[T]) String() string {
	switch n.t {
	case OnNext:
		return fmt.Sprintf("next(%v)", n.value)
	case OnError:
		return fmt.Sprintf("error(%v)", n.err)
	default:
		return string(n.t)
	}
}
