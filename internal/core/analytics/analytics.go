// Package analytics aggregates recognition records into per-team,
// per-keyword and per-user statistics. All functions are stateless and
// operate on a Snapshot taken from the repositories at call time;
// nothing is cached between queries.
package analytics

import (
	"sort"
	"strings"

	"github.com/kudoshq/recognition-api/internal/core/domain"
)

const (
	topMemberLimit  = 3
	topKeywordLimit = 10
	// engagementDivisor turns raw activity counts into a coarse score.
	// Placeholder metric; a weighted model may replace it.
	engagementDivisor = 10
)

// Snapshot is a point-in-time view of the repository contents. Slice
// order is the repository's stable enumeration order and is significant
// for tie-breaking.
type Snapshot struct {
	Users        []domain.User
	Teams        []domain.Team
	Recognitions []domain.Recognition
}

// TeamStats partitions a team's received recognitions by visibility and
// ranks its most recognized members.
type TeamStats struct {
	TotalRecognitions     int           `json:"total_recognitions"`
	PublicRecognitions    int           `json:"public_recognitions"`
	PrivateRecognitions   int           `json:"private_recognitions"`
	AnonymousRecognitions int           `json:"anonymous_recognitions"`
	TopReceivers          []domain.User `json:"top_receivers"`
	TopGivers             []domain.User `json:"top_givers"`
}

// TeamReport couples a team record with its stats.
type TeamReport struct {
	Team domain.Team `json:"team"`
	TeamStats
}

// KeywordStats lists the recognitions matching a keyword query.
type KeywordStats struct {
	Keyword      string               `json:"keyword"`
	Count        int                  `json:"count"`
	Recognitions []domain.Recognition `json:"-"`
}

// KeywordFrequency is one entry of the global keyword histogram.
type KeywordFrequency struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// UserEngagement scores a single user's recognition activity.
type UserEngagement struct {
	User                 domain.User `json:"user"`
	RecognitionsReceived int         `json:"recognitions_received"`
	RecognitionsGiven    int         `json:"recognitions_given"`
	EngagementScore      float64     `json:"engagement_score"`
}

// Report is the comprehensive analytics view across all teams.
type Report struct {
	Period       string             `json:"period"`
	TeamStats    []TeamReport       `json:"team_stats"`
	KeywordStats []KeywordFrequency `json:"keyword_stats"`
	UserStats    []UserEngagement   `json:"user_stats"`
}

// TeamAnalytics aggregates the recognitions received by members of the
// given team. Given counts are taken within that same received set, so
// a member "gives" here only when recognizing a teammate. Top lists
// hold up to three resolved members, ties broken by the snapshot's user
// enumeration order.
func TeamAnalytics(teamID string, snap Snapshot) TeamStats {
	memberIDs := make([]string, 0)
	members := make(map[string]bool)
	for _, u := range snap.Users {
		if u.TeamID == teamID {
			memberIDs = append(memberIDs, u.ID)
			members[u.ID] = true
		}
	}

	var teamRecs []domain.Recognition
	for _, r := range snap.Recognitions {
		if members[r.ToUserID] {
			teamRecs = append(teamRecs, r)
		}
	}

	stats := TeamStats{TotalRecognitions: len(teamRecs)}
	for _, r := range teamRecs {
		switch r.Visibility {
		case domain.VisibilityPublic:
			stats.PublicRecognitions++
		case domain.VisibilityPrivate:
			stats.PrivateRecognitions++
		case domain.VisibilityAnonymous:
			stats.AnonymousRecognitions++
		}
	}

	type memberCount struct {
		userID   string
		received int
		given    int
	}
	counts := make([]memberCount, len(memberIDs))
	for i, id := range memberIDs {
		counts[i].userID = id
		for _, r := range teamRecs {
			if r.ToUserID == id {
				counts[i].received++
			}
			if r.Sender.Is(id) {
				counts[i].given++
			}
		}
	}

	top := func(count func(memberCount) int) []domain.User {
		ranked := make([]memberCount, len(counts))
		copy(ranked, counts)
		sort.SliceStable(ranked, func(i, j int) bool {
			return count(ranked[i]) > count(ranked[j])
		})
		if len(ranked) > topMemberLimit {
			ranked = ranked[:topMemberLimit]
		}
		// Resolve ids back to user records, dropping any that fail.
		users := make([]domain.User, 0, len(ranked))
		for _, c := range ranked {
			if u := findUser(snap.Users, c.userID); u != nil {
				users = append(users, *u)
			}
		}
		return users
	}

	stats.TopReceivers = top(func(c memberCount) int { return c.received })
	stats.TopGivers = top(func(c memberCount) int { return c.given })
	return stats
}

func findUser(users []domain.User, id string) *domain.User {
	for i := range users {
		if users[i].ID == id {
			return &users[i]
		}
	}
	return nil
}

// KeywordAnalytics returns the recognitions matching the keyword by
// case-insensitive substring on the message text or on any extracted
// keyword. The OR keeps short queries like "api" findable even though
// the length filter excludes them from keyword sets.
func KeywordAnalytics(keyword string, snap Snapshot) KeywordStats {
	needle := strings.ToLower(keyword)
	stats := KeywordStats{Keyword: keyword}
	for _, r := range snap.Recognitions {
		if matchesKeyword(r, needle) {
			stats.Recognitions = append(stats.Recognitions, r)
		}
	}
	stats.Count = len(stats.Recognitions)
	return stats
}

func matchesKeyword(r domain.Recognition, needle string) bool {
	if strings.Contains(strings.ToLower(r.Message), needle) {
		return true
	}
	for _, k := range r.Keywords {
		if strings.Contains(strings.ToLower(k), needle) {
			return true
		}
	}
	return false
}

// EngagementScore is (given + received) / 10 over all recognitions.
func EngagementScore(userID string, recognitions []domain.Recognition) float64 {
	var given, received int
	for _, r := range recognitions {
		if r.Sender.Is(userID) {
			given++
		}
		if r.ToUserID == userID {
			received++
		}
	}
	return float64(given+received) / engagementDivisor
}

// Comprehensive builds the full report: per-team stats for every team,
// the global top-ten keyword histogram (ties broken by first-encounter
// order), and per-user engagement. The period label is echoed back
// without any filtering effect.
func Comprehensive(period string, snap Snapshot) Report {
	report := Report{Period: period}

	for _, team := range snap.Teams {
		report.TeamStats = append(report.TeamStats, TeamReport{
			Team:      team,
			TeamStats: TeamAnalytics(team.ID, snap),
		})
	}

	counts := make(map[string]int)
	var order []string
	for _, r := range snap.Recognitions {
		for _, k := range r.Keywords {
			if counts[k] == 0 {
				order = append(order, k)
			}
			counts[k]++
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > topKeywordLimit {
		order = order[:topKeywordLimit]
	}
	for _, k := range order {
		report.KeywordStats = append(report.KeywordStats, KeywordFrequency{Keyword: k, Count: counts[k]})
	}

	for _, u := range snap.Users {
		var given, received int
		for _, r := range snap.Recognitions {
			if r.Sender.Is(u.ID) {
				given++
			}
			if r.ToUserID == u.ID {
				received++
			}
		}
		report.UserStats = append(report.UserStats, UserEngagement{
			User:                 u,
			RecognitionsReceived: received,
			RecognitionsGiven:    given,
			EngagementScore:      EngagementScore(u.ID, snap.Recognitions),
		})
	}

	return report
}
