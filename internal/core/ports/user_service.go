package ports

import (
	"context"

	"github.com/kudoshq/recognition-api/internal/core/domain"
)

// UpdateProfileInput carries self-service profile changes. Empty fields
// keep their current value; role and team are externally managed and
// not updatable here.
type UpdateProfileInput struct {
	Name  string
	Email string
}

// UserService exposes user and team read operations plus profile
// updates.
type UserService interface {
	Get(ctx context.Context, actor *domain.User, id string) (*domain.User, error)
	Profile(ctx context.Context, actor *domain.User) (*domain.User, error)
	UpdateProfile(ctx context.Context, actor *domain.User, in UpdateProfileInput) (*domain.User, error)
	GetTeam(ctx context.Context, actor *domain.User, id string) (*domain.Team, error)
	ListTeams(ctx context.Context, actor *domain.User) ([]domain.Team, error)
}
