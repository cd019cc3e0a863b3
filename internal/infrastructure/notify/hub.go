// Package notify is the in-process broadcast hub for ledger change
// notifications. Signals are payload-less: subscribers re-query whatever
// they derive from the ledger.
package notify

import "sync"

// subscriberBuffer is 1: a pending signal already tells the subscriber to
// re-read, so further signals before it drains are coalesced.
const subscriberBuffer = 1

// Hub fans a change signal out to all current subscribers. Publishing never
// blocks: a subscriber that has not drained its pending signal is skipped.
type Hub struct {
	mu   sync.Mutex
	subs map[int]chan struct{}
	next int
}

func NewHub() *Hub {
	return &Hub{subs: make(map[int]chan struct{})}
}

// Subscribe registers an observer. The returned cancel func removes the
// subscription and must be called when the observer goes away.
func (h *Hub) Subscribe() (<-chan struct{}, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.next
	h.next++
	ch := make(chan struct{}, subscriberBuffer)
	h.subs[id] = ch

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subs, id)
	}
	return ch, cancel
}

// Publish sends one signal to every subscriber, coalescing with any signal
// still pending in a subscriber's channel.
func (h *Hub) Publish() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
