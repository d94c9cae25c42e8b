package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/kudoshq/recognition-api/internal/core/analytics"
	"github.com/kudoshq/recognition-api/internal/core/domain"
)

type stubAnalyticsService struct {
	keywordFn func(ctx context.Context, actor *domain.User, keyword string) (*analytics.KeywordStats, error)
}

func (s *stubAnalyticsService) Comprehensive(context.Context, *domain.User, string) (*analytics.Report, error) {
	return &analytics.Report{}, nil
}

func (s *stubAnalyticsService) Team(context.Context, *domain.User, string, string) (*analytics.TeamReport, error) {
	return &analytics.TeamReport{}, nil
}

func (s *stubAnalyticsService) Keyword(ctx context.Context, actor *domain.User, keyword string) (*analytics.KeywordStats, error) {
	return s.keywordFn(ctx, actor, keyword)
}

func (s *stubAnalyticsService) ShareTeam(context.Context, *domain.User, string) error {
	return nil
}

// Keyword stats come back from the service as a pointer; the handler
// must flatten them into the response shape with the matching
// recognitions inlined.
func TestAnalyticsHandler_Keyword(t *testing.T) {
	stub := &stubAnalyticsService{
		keywordFn: func(_ context.Context, actor *domain.User, keyword string) (*analytics.KeywordStats, error) {
			if actor == nil || actor.Role != domain.RoleManager {
				t.Fatalf("actor not forwarded: %+v", actor)
			}
			if keyword != "collaboration" {
				t.Fatalf("wrong keyword %q", keyword)
			}
			return &analytics.KeywordStats{
				Keyword: keyword,
				Count:   1,
				Recognitions: []domain.Recognition{{
					ID:         "r1",
					Message:    "Great collaboration",
					Sender:     domain.NewSender(domain.VisibilityPublic, "u1"),
					ToUserID:   "u2",
					Visibility: domain.VisibilityPublic,
				}},
			}, nil
		},
	}
	h := NewAnalyticsHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/v1/analytics/keywords/collaboration", "",
		&domain.User{ID: "m1", Role: domain.RoleManager, TeamID: "t1"})
	c.SetParamNames("keyword")
	c.SetParamValues("collaboration")

	if err := h.Keyword(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp keywordAnalyticsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Keyword != "collaboration" || resp.Count != 1 {
		t.Errorf("unexpected stats: %+v", resp)
	}
	if len(resp.Recognitions) != 1 || resp.Recognitions[0].ID != "r1" {
		t.Errorf("recognitions not inlined: %+v", resp.Recognitions)
	}
}

func TestAnalyticsHandler_Keyword_ServiceError(t *testing.T) {
	stub := &stubAnalyticsService{
		keywordFn: func(context.Context, *domain.User, string) (*analytics.KeywordStats, error) {
			return nil, domain.ErrForbidden
		},
	}
	h := NewAnalyticsHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/v1/analytics/keywords/ship", "",
		&domain.User{ID: "u1", Role: domain.RoleEmployee})
	c.SetParamNames("keyword")
	c.SetParamValues("ship")

	if err := h.Keyword(c); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden passthrough, got %v", err)
	}
}
