// Package stores holds the client-side state containers: each owns one slice
// of in-memory state, exposes derived values, and exposes actions that call
// the api package and reconcile responses into state. Views observe changes
// through the embedded subscription mechanism instead of polling.
//
// Containers are built for a single goroutine, matching the request/response
// flow of an interactive client; they are not safe for concurrent use.
package stores

import "github.com/google/uuid"

// notifier is embedded in every container. Subscribers are invoked after each
// state mutation, with no payload: observers re-read the container.
type notifier struct {
	subscribers map[string]func()
}

// Subscribe registers fn and returns a cancel function that stops delivery.
func (n *notifier) Subscribe(fn func()) (cancel func()) {
	if n.subscribers == nil {
		n.subscribers = make(map[string]func())
	}
	id := uuid.NewString()
	n.subscribers[id] = fn
	return func() {
		delete(n.subscribers, id)
	}
}

func (n *notifier) notify() {
	for _, fn := range n.subscribers {
		fn()
	}
}
