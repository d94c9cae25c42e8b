package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kudoshq/recognition-api/internal/core/domain"
)

func rec(id, from, to string, vis domain.Visibility, message string) domain.Recognition {
	return domain.Recognition{
		ID:         id,
		Message:    message,
		Sender:     domain.NewSender(vis, from),
		ToUserID:   to,
		Visibility: vis,
		Keywords:   ExtractKeywords(message),
	}
}

func sampleSnapshot() Snapshot {
	return Snapshot{
		Users: []domain.User{
			{ID: "u1", Name: "Alice", TeamID: "t1"},
			{ID: "u2", Name: "Bob", TeamID: "t1"},
			{ID: "u3", Name: "Carol", TeamID: "t2"},
		},
		Teams: []domain.Team{
			{ID: "t1", Name: "Development"},
			{ID: "t2", Name: "Design"},
		},
		Recognitions: []domain.Recognition{
			rec("r1", "u1", "u2", domain.VisibilityPublic, "Fantastic collaboration on the project"),
			rec("r2", "u3", "u2", domain.VisibilityPrivate, "Great collaboration again"),
			rec("r3", "", "u1", domain.VisibilityAnonymous, "Thanks for the thoughtful review"),
			rec("r4", "u2", "u3", domain.VisibilityPublic, "Wonderful design work"),
		},
	}
}

func TestExtractKeywords(t *testing.T) {
	got := ExtractKeywords("Fantastic collaboration on the API integration!")

	assert.Contains(t, got, "fantastic")
	assert.Contains(t, got, "collaboration")
	assert.Contains(t, got, "integration")
	// Short words and stripped punctuation never survive the filter.
	assert.NotContains(t, got, "on")
	assert.NotContains(t, got, "the")
	assert.NotContains(t, got, "api")
	assert.NotContains(t, got, "integration!")
}

func TestExtractKeywords_DedupePreservesFirstSeen(t *testing.T) {
	got := ExtractKeywords("Review review REVIEW thorough review")
	assert.Equal(t, []string{"review", "thorough"}, got)
}

func TestExtractKeywords_Empty(t *testing.T) {
	assert.Empty(t, ExtractKeywords(""))
	assert.Empty(t, ExtractKeywords("so it was ok"))
}

func TestTeamAnalytics_CountsByVisibility(t *testing.T) {
	stats := TeamAnalytics("t1", sampleSnapshot())

	// r1, r2 and r3 are received by t1 members; r4 goes to t2.
	assert.Equal(t, 3, stats.TotalRecognitions)
	assert.Equal(t, 1, stats.PublicRecognitions)
	assert.Equal(t, 1, stats.PrivateRecognitions)
	assert.Equal(t, 1, stats.AnonymousRecognitions)
}

func TestTeamAnalytics_TopReceivers(t *testing.T) {
	stats := TeamAnalytics("t1", sampleSnapshot())

	require.Len(t, stats.TopReceivers, 2)
	assert.Equal(t, "u2", stats.TopReceivers[0].ID, "Bob received two")
	assert.Equal(t, "u1", stats.TopReceivers[1].ID)
}

// Given counts are taken within the team's received set: u3's r2 to a
// t1 member counts for nothing here because u3 is not a t1 member, and
// u2's r4 to a t2 member is outside the set entirely.
func TestTeamAnalytics_TopGiversScopedToTeamSet(t *testing.T) {
	stats := TeamAnalytics("t1", sampleSnapshot())

	require.Len(t, stats.TopGivers, 2)
	assert.Equal(t, "u1", stats.TopGivers[0].ID, "Alice gave r1 within the set")
	assert.Equal(t, 0, countGivenInSet(stats, "u2"))
}

func countGivenInSet(stats TeamStats, userID string) int {
	// TopGivers is ordered by given count; a user ranked after one with
	// a known count of 1 and tied with nobody gave 0. Resolve directly
	// instead of relying on order.
	snap := sampleSnapshot()
	members := map[string]bool{}
	for _, u := range snap.Users {
		if u.TeamID == "t1" {
			members[u.ID] = true
		}
	}
	given := 0
	for _, r := range snap.Recognitions {
		if members[r.ToUserID] && r.Sender.Is(userID) {
			given++
		}
	}
	return given
}

func TestTeamAnalytics_EmptyTeam(t *testing.T) {
	stats := TeamAnalytics("t-ghost", sampleSnapshot())

	assert.Equal(t, 0, stats.TotalRecognitions)
	assert.Empty(t, stats.TopReceivers)
	assert.Empty(t, stats.TopGivers)
}

func TestKeywordAnalytics_MatchesMessageOrKeywords(t *testing.T) {
	snap := sampleSnapshot()

	// "collaboration" appears in r1 and r2.
	stats := KeywordAnalytics("collaboration", snap)
	assert.Equal(t, 2, stats.Count)

	// "the" is too short to be an extracted keyword but still matches
	// message substrings.
	stats = KeywordAnalytics("the", snap)
	assert.GreaterOrEqual(t, stats.Count, 1)

	// Case-insensitive.
	stats = KeywordAnalytics("FANTASTIC", snap)
	assert.Equal(t, 1, stats.Count)

	stats = KeywordAnalytics("nonexistent", snap)
	assert.Equal(t, 0, stats.Count)
	assert.Empty(t, stats.Recognitions)
}

func TestEngagementScore(t *testing.T) {
	snap := sampleSnapshot()

	// u2: gave r4, received r1 and r2 → (1+2)/10.
	assert.InDelta(t, 0.3, EngagementScore("u2", snap.Recognitions), 1e-9)
	// u1: gave r1, received r3 → (1+1)/10. The anonymous r3 credits no
	// giver.
	assert.InDelta(t, 0.2, EngagementScore("u1", snap.Recognitions), 1e-9)
	assert.InDelta(t, 0, EngagementScore("ghost", snap.Recognitions), 1e-9)
}

func TestComprehensive(t *testing.T) {
	report := Comprehensive("2026-Q3", sampleSnapshot())

	assert.Equal(t, "2026-Q3", report.Period, "period is an opaque label echoed back")
	require.Len(t, report.TeamStats, 2)
	assert.Equal(t, "t1", report.TeamStats[0].Team.ID)
	assert.Equal(t, 3, report.TeamStats[0].TotalRecognitions)
	assert.Equal(t, 1, report.TeamStats[1].TotalRecognitions)

	require.Len(t, report.UserStats, 3)
	assert.Equal(t, 2, report.UserStats[1].RecognitionsReceived, "Bob")
	assert.Equal(t, 1, report.UserStats[1].RecognitionsGiven)

	require.NotEmpty(t, report.KeywordStats)
	assert.Equal(t, "collaboration", report.KeywordStats[0].Keyword)
	assert.Equal(t, 2, report.KeywordStats[0].Count)
}

func TestComprehensive_KeywordTiesKeepFirstEncounterOrder(t *testing.T) {
	snap := Snapshot{
		Recognitions: []domain.Recognition{
			rec("r1", "u1", "u2", domain.VisibilityPublic, "alpha beta"),
			rec("r2", "u2", "u1", domain.VisibilityPublic, "beta alpha"),
		},
	}
	report := Comprehensive("", snap)

	require.Len(t, report.KeywordStats, 2)
	assert.Equal(t, "alpha", report.KeywordStats[0].Keyword)
	assert.Equal(t, "beta", report.KeywordStats[1].Keyword)
	assert.Equal(t, 2, report.KeywordStats[0].Count)
	assert.Equal(t, 2, report.KeywordStats[1].Count)
}
