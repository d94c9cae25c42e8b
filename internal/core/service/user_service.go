package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/kudoshq/recognition-api/internal/core/access"
	"github.com/kudoshq/recognition-api/internal/core/domain"
	"github.com/kudoshq/recognition-api/internal/core/ports"
)

// UserService exposes user and team reads plus self-service profile
// updates.
type UserService struct {
	users  ports.UserRepository
	teams  ports.TeamRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, teams ports.TeamRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, teams: teams, logger: logger}
}

// Get returns a user's record subject to the user-data visibility
// rules: HR/ADMIN see anyone, users see themselves, managers see their
// own team.
func (s *UserService) Get(ctx context.Context, actor *domain.User, id string) (*domain.User, error) {
	target, err := s.users.FindByID(ctx, id)
	if err != nil {
		target = nil
	}
	if !access.CanViewUserData(actor, id, target) {
		return nil, deniedError(actor)
	}
	if target == nil {
		return nil, domain.ErrUserNotFound
	}
	return target, nil
}

// Profile returns the actor's own record, freshly loaded.
func (s *UserService) Profile(ctx context.Context, actor *domain.User) (*domain.User, error) {
	if !access.IsAuthenticated(actor) {
		return nil, domain.ErrAuthenticationRequired
	}
	return s.users.FindByID(ctx, actor.ID)
}

// UpdateProfile changes the actor's name and/or email. Empty fields
// keep their current value.
func (s *UserService) UpdateProfile(ctx context.Context, actor *domain.User, in ports.UpdateProfileInput) (*domain.User, error) {
	if !access.IsAuthenticated(actor) {
		return nil, domain.ErrAuthenticationRequired
	}

	updated, err := s.users.UpdateProfile(ctx, actor.ID, in.Name, in.Email)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	s.logger.Info().Str("user_id", actor.ID).Msg("profile updated")
	return updated, nil
}

// GetTeam returns a team's record subject to team-data visibility.
func (s *UserService) GetTeam(ctx context.Context, actor *domain.User, id string) (*domain.Team, error) {
	if !access.CanViewTeamData(actor, id) {
		return nil, deniedError(actor)
	}
	team, err := s.teams.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get team: %w", err)
	}
	return team, nil
}

// ListTeams returns all teams; any authenticated actor may list them.
func (s *UserService) ListTeams(ctx context.Context, actor *domain.User) ([]domain.Team, error) {
	if !access.IsAuthenticated(actor) {
		return nil, domain.ErrAuthenticationRequired
	}
	return s.teams.List(ctx)
}
