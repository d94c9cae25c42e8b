package ports

import (
	"context"

	"github.com/kudoshq/recognition-api/internal/core/domain"
)

// NotificationService manages a user's own notifications.
type NotificationService interface {
	ListMine(ctx context.Context, actor *domain.User) ([]domain.Notification, error)
	// MarkRead flips the read flag; only the owner may do so. Marking
	// an already-read notification is a no-op, not an error.
	MarkRead(ctx context.Context, actor *domain.User, id string) (*domain.Notification, error)
	MarkAllRead(ctx context.Context, actor *domain.User) error
}
