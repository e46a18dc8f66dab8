package notify

import (
	"sync"
	"sync/atomic"
)

// Handler receives published values.
type Handler[T any] func(T)

// Stats reports hub activity counters.
type Stats struct {
	Published     uint64
	Delivered     uint64
	HandlerPanics uint64
	Subscribers   int
}

// subscriber pairs a subscription handle with its handler.
type subscriber[T any] struct {
	sub     *Subscription
	handler Handler[T]
}

// Hub fans published values out to subscribers synchronously,
// in subscription order.
type Hub[T any] struct {
	mu   sync.RWMutex
	subs []subscriber[T]

	published     atomic.Uint64
	delivered     atomic.Uint64
	handlerPanics atomic.Uint64
}

// NewHub creates an empty hub.
func NewHub[T any]() *Hub[T] {
	return &Hub[T]{}
}

// Subscribe registers a handler and returns its subscription handle.
// A nil handler returns a subscription that never receives.
func (h *Hub[T]) Subscribe(handler Handler[T]) *Subscription {
	sub := newSubscription()
	if handler == nil {
		sub.Cancel()
		return sub
	}

	h.mu.Lock()
	h.subs = append(h.subs, subscriber[T]{sub: sub, handler: handler})
	h.mu.Unlock()

	return sub
}

// Unsubscribe cancels a subscription and removes it from the hub.
// Returns false if the subscription is unknown.
func (h *Hub[T]) Unsubscribe(sub *Subscription) bool {
	if sub == nil {
		return false
	}
	sub.Cancel()

	h.mu.Lock()
	defer h.mu.Unlock()

	for i, s := range h.subs {
		if s.sub.ID() == sub.ID() {
			h.subs = append(h.subs[:i], h.subs[i+1:]...)
			return true
		}
	}
	return false
}

// Publish delivers v to every active subscriber in subscription order.
// Delivery is synchronous in the caller's goroutine.
func (h *Hub[T]) Publish(v T) {
	h.mu.RLock()
	subs := make([]subscriber[T], len(h.subs))
	copy(subs, h.subs)
	h.mu.RUnlock()

	h.published.Add(1)

	for _, s := range subs {
		if !s.sub.IsActive() {
			continue
		}
		h.deliver(s.handler, v)
	}
}

// deliver calls a handler with panic recovery so a bad subscriber
// cannot take down the publisher.
func (h *Hub[T]) deliver(handler Handler[T], v T) {
	defer func() {
		if r := recover(); r != nil {
			h.handlerPanics.Add(1)
		}
	}()
	handler(v)
	h.delivered.Add(1)
}

// Count returns the number of registered subscriptions,
// including paused ones.
func (h *Hub[T]) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Stats returns current hub counters.
func (h *Hub[T]) Stats() Stats {
	h.mu.RLock()
	n := len(h.subs)
	h.mu.RUnlock()

	return Stats{
		Published:     h.published.Load(),
		Delivered:     h.delivered.Load(),
		HandlerPanics: h.handlerPanics.Load(),
		Subscribers:   n,
	}
}
