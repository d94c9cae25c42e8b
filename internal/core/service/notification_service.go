package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/kudoshq/recognition-api/internal/core/access"
	"github.com/kudoshq/recognition-api/internal/core/domain"
	"github.com/kudoshq/recognition-api/internal/core/ports"
)

// NotificationService manages a user's own notifications.
type NotificationService struct {
	notifications ports.NotificationRepository
	logger        zerolog.Logger
}

func NewNotificationService(notifications ports.NotificationRepository, logger zerolog.Logger) *NotificationService {
	return &NotificationService{notifications: notifications, logger: logger}
}

// ListMine returns the actor's notifications.
func (s *NotificationService) ListMine(ctx context.Context, actor *domain.User) ([]domain.Notification, error) {
	if !access.IsAuthenticated(actor) {
		return nil, domain.ErrAuthenticationRequired
	}
	return s.notifications.ListByUser(ctx, actor.ID)
}

// MarkRead flips the read flag on a notification owned by the actor.
func (s *NotificationService) MarkRead(ctx context.Context, actor *domain.User, id string) (*domain.Notification, error) {
	if !access.IsAuthenticated(actor) {
		return nil, domain.ErrAuthenticationRequired
	}

	n, err := s.notifications.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("mark notification read: %w", err)
	}
	if n.UserID != actor.ID {
		return nil, domain.ErrForbidden
	}

	if err := s.notifications.MarkRead(ctx, id); err != nil {
		return nil, fmt.Errorf("mark notification read: %w", err)
	}
	n.Read = true
	return n, nil
}

// MarkAllRead marks every notification of the actor as read. Calling it
// again when everything is already read succeeds without effect.
func (s *NotificationService) MarkAllRead(ctx context.Context, actor *domain.User) error {
	if !access.IsAuthenticated(actor) {
		return domain.ErrAuthenticationRequired
	}
	if err := s.notifications.MarkAllRead(ctx, actor.ID); err != nil {
		return fmt.Errorf("mark all notifications read: %w", err)
	}
	return nil
}
