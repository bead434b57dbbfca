// realtime/hub.go - change notification fan-out
package realtime

import "sync"

// Hub fans out table-change signals to subscribers. A signal carries no
// payload: it only tells the subscriber to refetch, so a refetch that still
// observes slightly stale data converges on the next signal. Delivery is
// non-blocking; a subscriber that already has a pending signal is skipped
// rather than waited on.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[chan struct{}]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		subs: make(map[string]map[chan struct{}]struct{}),
	}
}

// Subscribe registers interest in changes to the named table. It returns a
// signal channel and an unsubscribe func; callers must unsubscribe on
// teardown.
func (h *Hub) Subscribe(table string) (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	h.mu.Lock()
	if h.subs[table] == nil {
		h.subs[table] = make(map[chan struct{}]struct{})
	}
	h.subs[table][ch] = struct{}{}
	h.mu.Unlock()

	unsubscribe := func() {
		h.mu.Lock()
		if set, ok := h.subs[table]; ok {
			delete(set, ch)
			if len(set) == 0 {
				delete(h.subs, table)
			}
		}
		h.mu.Unlock()
	}
	return ch, unsubscribe
}

// Notify signals every subscriber of the named table. One slow subscriber
// does not hold up the others or the caller.
func (h *Hub) Notify(table string) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subs[table] {
		select {
		case ch <- struct{}{}:
		default:
			// subscriber already has a pending signal
		}
	}
}

// SubscriberCount reports how many subscribers are registered for a table.
func (h *Hub) SubscriberCount(table string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[table])
}
