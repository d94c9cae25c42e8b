package ports

import (
	"context"

	"github.com/kudoshq/recognition-api/internal/core/analytics"
	"github.com/kudoshq/recognition-api/internal/core/domain"
)

// AnalyticsService exposes the aggregation queries to managers and
// above. The period argument is an opaque label echoed back in the
// report; no time windowing is applied.
type AnalyticsService interface {
	Comprehensive(ctx context.Context, actor *domain.User, period string) (*analytics.Report, error)
	Team(ctx context.Context, actor *domain.User, teamID, period string) (*analytics.TeamReport, error)
	Keyword(ctx context.Context, actor *domain.User, keyword string) (*analytics.KeywordStats, error)
	// ShareTeam posts a team's stats to the external channel,
	// best-effort.
	ShareTeam(ctx context.Context, actor *domain.User, teamID string) error
}
