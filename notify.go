package rewind

// StateSetFunc observes undo/redo transitions. It receives the tag of the
// snapshot that crossed the undo/redo boundary, which may be nil for
// untagged records.
type StateSetFunc func(tag any)

// notifier is a synchronous callback list. Handlers run on the caller's
// goroutine in registration order and must not re-enter mutating
// operations on the tracker or aggregate that raised the notification.
type notifier[T any] struct {
	handlers []func(T)
}

// add appends a handler to the delivery list. Nil handlers are ignored.
func (n *notifier[T]) add(fn func(T)) {
	if fn == nil {
		return
	}
	n.handlers = append(n.handlers, fn)
}

// emit delivers v to every handler in registration order.
func (n *notifier[T]) emit(v T) {
	for _, fn := range n.handlers {
		fn(v)
	}
}
