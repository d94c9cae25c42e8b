package notifier

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/kudoshq/recognition-api/internal/api/metrics"
	"github.com/kudoshq/recognition-api/internal/core/domain"
	"github.com/kudoshq/recognition-api/internal/core/ports"
)

const subscriberBuffer = 64

type subscriber struct {
	event  string
	filter ports.EventFilter
	ch     chan domain.Event
}

// Bus is an in-process event bus. Each subscriber owns a bounded
// channel; Publish never blocks — when a subscriber's buffer is full
// the event is dropped for that subscriber and counted.
type Bus struct {
	mu     sync.RWMutex
	subs   map[int]*subscriber
	nextID int
	log    zerolog.Logger
}

// NewBus creates an empty Bus.
func NewBus(log zerolog.Logger) *Bus {
	return &Bus{
		subs: make(map[int]*subscriber),
		log:  log,
	}
}

// Subscribe registers interest in events with the given name. A nil
// filter matches every event of that name. The returned cancel func
// unregisters the subscriber and closes its channel; it is safe to
// call more than once.
func (b *Bus) Subscribe(name string, filter ports.EventFilter) (<-chan domain.Event, func()) {
	sub := &subscriber{
		event:  name,
		filter: filter,
		ch:     make(chan domain.Event, subscriberBuffer),
	}

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = sub
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if _, ok := b.subs[id]; !ok {
			return
		}
		delete(b.subs, id)
		close(sub.ch)
	}
	return sub.ch, cancel
}

// Close unregisters every subscriber and closes their channels. The
// bus stays usable for Publish, which then delivers to nobody.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for id, sub := range b.subs {
		delete(b.subs, id)
		close(sub.ch)
	}
}

// Publish delivers the event to every matching subscriber without
// blocking the caller.
func (b *Bus) Publish(event domain.Event) {
	metrics.BusEventsPublishedTotal.WithLabelValues(event.Name).Inc()

	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, sub := range b.subs {
		if sub.event != event.Name {
			continue
		}
		if sub.filter != nil && !sub.filter(event) {
			continue
		}
		select {
		case sub.ch <- event:
		default:
			metrics.BusEventsDroppedTotal.WithLabelValues(event.Name).Inc()
			b.log.Warn().Str("event", event.Name).Msg("subscriber buffer full, event dropped")
		}
	}
}
