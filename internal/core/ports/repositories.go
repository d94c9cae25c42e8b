package ports

import (
	"context"

	"github.com/kudoshq/recognition-api/internal/core/domain"
)

// UserRepository defines persistence operations for users. List results
// are returned in stable creation order; analytics tie-breaking depends
// on it.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	// UpdateProfile sets name and/or email; empty arguments leave the
	// current value untouched. Role and team are never updated here.
	UpdateProfile(ctx context.Context, id, name, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	ListByTeam(ctx context.Context, teamID string) ([]domain.User, error)
}

// TeamRepository defines persistence operations for teams.
type TeamRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Team, error)
	List(ctx context.Context) ([]domain.Team, error)
}

// RecognitionRepository defines persistence operations for recognitions.
// Recognitions are append-only apart from Remove; no update exists.
type RecognitionRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Recognition, error)
	List(ctx context.Context) ([]domain.Recognition, error)
	ListByRecipient(ctx context.Context, userID string) ([]domain.Recognition, error)
	ListByRecipients(ctx context.Context, userIDs []string) ([]domain.Recognition, error)
	Append(ctx context.Context, rec *domain.Recognition) error
	Remove(ctx context.Context, id string) error
}

// NotificationRepository defines persistence operations for
// notifications. Only the read flag is ever mutated.
type NotificationRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Notification, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Notification, error)
	Append(ctx context.Context, n *domain.Notification) error
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context, userID string) error
}
