package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/kudoshq/recognition-api/internal/core/access"
	"github.com/kudoshq/recognition-api/internal/core/analytics"
	"github.com/kudoshq/recognition-api/internal/core/domain"
	"github.com/kudoshq/recognition-api/internal/core/ports"
)

// AnalyticsService authorizes analytics queries and delegates the
// aggregation itself to the analytics package, always over a fresh
// repository snapshot.
type AnalyticsService struct {
	users         ports.UserRepository
	teams         ports.TeamRepository
	recognitions  ports.RecognitionRepository
	external      ports.ExternalNotifier
	notifyTimeout time.Duration
	logger        zerolog.Logger
}

func NewAnalyticsService(
	users ports.UserRepository,
	teams ports.TeamRepository,
	recognitions ports.RecognitionRepository,
	external ports.ExternalNotifier,
	notifyTimeout time.Duration,
	logger zerolog.Logger,
) *AnalyticsService {
	if notifyTimeout <= 0 {
		notifyTimeout = defaultNotifyTimeout
	}
	return &AnalyticsService{
		users:         users,
		teams:         teams,
		recognitions:  recognitions,
		external:      external,
		notifyTimeout: notifyTimeout,
		logger:        logger,
	}
}

func (s *AnalyticsService) snapshot(ctx context.Context) (analytics.Snapshot, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return analytics.Snapshot{}, fmt.Errorf("snapshot users: %w", err)
	}
	teams, err := s.teams.List(ctx)
	if err != nil {
		return analytics.Snapshot{}, fmt.Errorf("snapshot teams: %w", err)
	}
	recognitions, err := s.recognitions.List(ctx)
	if err != nil {
		return analytics.Snapshot{}, fmt.Errorf("snapshot recognitions: %w", err)
	}
	return analytics.Snapshot{Users: users, Teams: teams, Recognitions: recognitions}, nil
}

// Comprehensive builds the cross-team report. Manager and above only.
func (s *AnalyticsService) Comprehensive(ctx context.Context, actor *domain.User, period string) (*analytics.Report, error) {
	if !access.CanViewAnalytics(actor) {
		return nil, deniedError(actor)
	}
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	report := analytics.Comprehensive(period, snap)
	return &report, nil
}

// Team builds a single team's report. Requires both analytics access
// and visibility into that team.
func (s *AnalyticsService) Team(ctx context.Context, actor *domain.User, teamID, period string) (*analytics.TeamReport, error) {
	if !access.CanViewAnalytics(actor) || !access.CanViewTeamData(actor, teamID) {
		return nil, deniedError(actor)
	}

	team, err := s.teams.FindByID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("team analytics: %w", err)
	}
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return &analytics.TeamReport{Team: *team, TeamStats: analytics.TeamAnalytics(teamID, snap)}, nil
}

// Keyword searches recognitions by keyword. Manager and above only.
func (s *AnalyticsService) Keyword(ctx context.Context, actor *domain.User, keyword string) (*analytics.KeywordStats, error) {
	if !access.CanViewAnalytics(actor) {
		return nil, deniedError(actor)
	}
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	stats := analytics.KeywordAnalytics(keyword, snap)
	return &stats, nil
}

// ShareTeam posts the team's current stats to the external channel.
// Delivery is fire-and-forget; only authorization and lookup failures
// surface to the caller.
func (s *AnalyticsService) ShareTeam(ctx context.Context, actor *domain.User, teamID string) error {
	if !access.CanViewAnalytics(actor) || !access.CanViewTeamData(actor, teamID) {
		return deniedError(actor)
	}

	team, err := s.teams.FindByID(ctx, teamID)
	if err != nil {
		return fmt.Errorf("share team analytics: %w", err)
	}
	snap, err := s.snapshot(ctx)
	if err != nil {
		return err
	}
	stats := analytics.TeamAnalytics(teamID, snap)

	go func() {
		notifyCtx, cancel := context.WithTimeout(context.Background(), s.notifyTimeout)
		defer cancel()
		s.external.NotifyTeamAnalytics(notifyCtx, team.Name, stats)
	}()

	s.logger.Info().Str("team_id", teamID).Str("actor_id", actor.ID).Msg("team analytics shared")
	return nil
}
