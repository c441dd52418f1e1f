// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewsync

// Event is a list of handlers for one kind of notification. The zero
// Event has no handlers.
type Event[T any] struct {
	handlers []*handler[T]
}

type handler[T any] struct {
	fn        func(T)
	cancelled bool
}

// Subscribe adds fn to e. The returned function removes it again;
// calling it more than once is harmless.
func (e *Event[T]) Subscribe(fn func(T)) (cancel func()) {
	h := &handler[T]{fn: fn}
	e.handlers = append(e.handlers, h)
	return func() {
		if h.cancelled {
			return
		}
		h.cancelled = true
		for i, h2 := range e.handlers {
			if h2 == h {
				e.handlers = append(e.handlers[:i:i], e.handlers[i+1:]...)
				break
			}
		}
	}
}

// Notify calls every handler with arg, in subscription order. A
// handler cancelled by an earlier handler is not called.
func (e *Event[T]) Notify(arg T) {
	hs := append([]*handler[T](nil), e.handlers...)
	for _, h := range hs {
		if !h.cancelled {
			h.fn(arg)
		}
	}
}

// Len returns the number of subscribed handlers.
func (e *Event[T]) Len() int {
	return len(e.handlers)
}

// Subscriptions collects cancel functions so they can be cancelled
// together.
type Subscriptions []func()

func (s *Subscriptions) Add(cancel func()) {
	*s = append(*s, cancel)
}

// Cancel cancels every subscription in s and empties s.
func (s *Subscriptions) Cancel() {
	for _, cancel := range *s {
		cancel()
	}
	*s = nil
}
