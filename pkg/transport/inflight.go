package transport

import (
	"context"
	"sync"
)

// InFlightRegistry tracks open event streams by request ID so they can be
// cancelled individually or all at once when the adapter shuts down. Several
// streams may share one request ID; each is tracked on its own.
//
// All methods are safe for concurrent access.
type InFlightRegistry struct {
	mu      sync.Mutex
	next    uint64
	entries map[string]map[uint64]context.CancelFunc
}

func NewInFlightRegistry() *InFlightRegistry {
	return &InFlightRegistry{entries: make(map[string]map[uint64]context.CancelFunc)}
}

// Register records cancel under id. The returned function forgets this
// entry without cancelling it and leaves other streams under id in place.
func (r *InFlightRegistry) Register(id string, cancel context.CancelFunc) (unregister func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	token := r.next
	byID := r.entries[id]
	if byID == nil {
		byID = make(map[uint64]context.CancelFunc)
		r.entries[id] = byID
	}
	byID[token] = cancel
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if byID, ok := r.entries[id]; ok {
			delete(byID, token)
			if len(byID) == 0 {
				delete(r.entries, id)
			}
		}
	}
}

// Cancel stops every stream registered under id. It reports false when
// none is open.
func (r *InFlightRegistry) Cancel(id string) bool {
	r.mu.Lock()
	byID, ok := r.entries[id]
	delete(r.entries, id)
	r.mu.Unlock()
	for _, cancel := range byID {
		cancel()
	}
	return ok
}

// CancelAll stops every registered stream and returns how many there were.
func (r *InFlightRegistry) CancelAll() int {
	r.mu.Lock()
	entries := r.entries
	r.entries = make(map[string]map[uint64]context.CancelFunc)
	r.mu.Unlock()
	n := 0
	for _, byID := range entries {
		for _, cancel := range byID {
			cancel()
			n++
		}
	}
	return n
}

// Len returns the number of open streams.
func (r *InFlightRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, byID := range r.entries {
		n += len(byID)
	}
	return n
}
