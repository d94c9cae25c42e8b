package ports

import (
	"context"

	"github.com/kudoshq/recognition-api/internal/core/analytics"
	"github.com/kudoshq/recognition-api/internal/core/domain"
)

// EventFilter decides whether a subscriber receives an event.
type EventFilter func(domain.Event) bool

// EventBus fans domain events out to in-process subscribers. Publish
// never blocks the caller: subscribers with full buffers miss events.
type EventBus interface {
	// Publish delivers the event to every matching subscriber.
	Publish(event domain.Event)
	// Subscribe registers interest in events with the given name,
	// optionally narrowed by filter (nil matches all). The returned
	// cancel func unregisters the subscriber and closes the channel.
	Subscribe(name string, filter EventFilter) (<-chan domain.Event, func())
}

// ExternalNotifier delivers best-effort messages to an external channel
// (a chat webhook). Implementations log failures and never surface them
// to the caller; the triggering operation must not fail or roll back
// because the external channel is down.
type ExternalNotifier interface {
	NotifyRecognition(ctx context.Context, rec *domain.Recognition, recipientName string)
	NotifyTeamAnalytics(ctx context.Context, teamName string, stats analytics.TeamStats)
}
