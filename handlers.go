package urx

// Handlers is the set of callbacks a consumer hands to Subscribe. Any of them
// may be nil.
type Handlers[T any] struct {
	Next     func(T)
	Error    func(error)
	Complete func()
}
