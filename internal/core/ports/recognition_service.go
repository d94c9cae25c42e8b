package ports

import (
	"context"

	"github.com/kudoshq/recognition-api/internal/core/domain"
)

// SendRecognitionInput carries the data needed to send a recognition.
type SendRecognitionInput struct {
	ToUserID   string
	Message    string
	Emoji      string
	Visibility domain.Visibility
}

// RecognitionService defines the recognition use cases. Every method
// takes the acting user (nil when unauthenticated) and returns typed
// domain errors on authorization or lookup failure.
type RecognitionService interface {
	Send(ctx context.Context, actor *domain.User, in SendRecognitionInput) (*domain.Recognition, error)
	Delete(ctx context.Context, actor *domain.User, id string) error
	ListMine(ctx context.Context, actor *domain.User) ([]domain.Recognition, error)
	ListByTeam(ctx context.Context, actor *domain.User, teamID string) ([]domain.Recognition, error)
	ListByUser(ctx context.Context, actor *domain.User, userID string) ([]domain.Recognition, error)
	ListAll(ctx context.Context, actor *domain.User) ([]domain.Recognition, error)
}
