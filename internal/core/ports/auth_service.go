package ports

import (
	"context"

	"github.com/kudoshq/recognition-api/internal/core/domain"
)

// AuthService handles account creation and login. New accounts always
// start as EMPLOYEE; role changes happen outside this API.
type AuthService interface {
	Register(ctx context.Context, name, email, password, teamID string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
