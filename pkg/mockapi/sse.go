package mockapi

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/ANcpLua/qyl/pkg/models"
	"github.com/ANcpLua/qyl/pkg/serialization"
)

// eventWriter writes server-sent events. Headers go out with the first
// write; every event is flushed immediately.
type eventWriter struct {
	w  http.ResponseWriter
	rc *http.ResponseController

	mu      sync.Mutex
	started bool
}

func newEventWriter(w http.ResponseWriter) *eventWriter {
	return &eventWriter{w: w, rc: http.NewResponseController(w)}
}

func (s *eventWriter) start() {
	if s.started {
		return
	}
	s.w.Header().Set("Content-Type", "text/event-stream")
	s.w.Header().Set("Cache-Control", "no-cache")
	s.w.Header().Set("Connection", "keep-alive")
	s.w.WriteHeader(http.StatusOK)
	s.started = true
}

// WriteEvent sends one event formatted as:
//
//	event: {type}\n
//	data: {json}\n
//	\n
func (s *eventWriter) WriteEvent(ev *models.StreamEvent) error {
	data, err := serialization.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.start()
	if _, err := fmt.Fprintf(s.w, "event: %s\ndata: %s\n\n", deref(ev.Type), data); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}
	if err := s.rc.Flush(); err != nil {
		return fmt.Errorf("failed to flush: %w", err)
	}
	return nil
}

// Heartbeat writes a comment line so idle connections stay open.
func (s *eventWriter) Heartbeat() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.start()
	if _, err := fmt.Fprint(s.w, ": heartbeat\n\n"); err != nil {
		return err
	}
	return s.rc.Flush()
}

// Broker fans published events out to stream subscribers. Slow subscribers
// lose events rather than block publishers.
type Broker struct {
	mu   sync.Mutex
	subs map[*subscriber]struct{}
}

type subscriber struct {
	kinds   []string
	service string
	ch      chan *models.StreamEvent
}

func NewBroker() *Broker {
	return &Broker{subs: make(map[*subscriber]struct{})}
}

// Subscribe registers for events whose Type is in kinds (all when empty)
// emitted by service (all when empty). The returned cancel func releases
// the subscription.
func (b *Broker) Subscribe(kinds []string, service string) (<-chan *models.StreamEvent, func()) {
	sub := &subscriber{kinds: kinds, service: service, ch: make(chan *models.StreamEvent, 64)}
	b.mu.Lock()
	b.subs[sub] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	return sub.ch, func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, sub)
			b.mu.Unlock()
		})
	}
}

// Publish delivers ev, emitted by service, to every matching subscriber
// without blocking.
func (b *Broker) Publish(ev *models.StreamEvent, service string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for sub := range b.subs {
		if len(sub.kinds) > 0 && !slices.Contains(sub.kinds, deref(ev.Type)) {
			continue
		}
		if sub.service != "" && sub.service != service {
			continue
		}
		select {
		case sub.ch <- ev:
		default:
		}
	}
}

// Subscribers reports the number of open subscriptions.
func (b *Broker) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// PublishPayload wraps p in an envelope of the given type and publishes it.
func (b *Broker) PublishPayload(kind, service string, p serialization.Parsable, at time.Time) error {
	data, err := serialization.Marshal(p)
	if err != nil {
		return err
	}
	at = at.UTC()
	b.Publish(&models.StreamEvent{Type: &kind, Data: data, Timestamp: &at}, service)
	return nil
}

// serveStream relays broker events to w until the client disconnects.
func serveStream(ctx context.Context, w http.ResponseWriter, events <-chan *models.StreamEvent, heartbeat time.Duration) error {
	ew := newEventWriter(w)
	if err := ew.Heartbeat(); err != nil {
		return err
	}
	ticker := time.NewTicker(heartbeat)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if err := ew.WriteEvent(ev); err != nil {
				return err
			}
		case <-ticker.C:
			if err := ew.Heartbeat(); err != nil {
				return err
			}
		}
	}
}
