package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/kudoshq/recognition-api/internal/api/metrics"
	"github.com/kudoshq/recognition-api/internal/core/analytics"
	"github.com/kudoshq/recognition-api/internal/core/domain"
)

// SlackNotifier posts recognitions and analytics reports to a Slack
// incoming webhook. Delivery is best-effort: every failure is logged
// and swallowed, never surfaced to the triggering operation. An empty
// webhook URL disables delivery entirely.
type SlackNotifier struct {
	webhookURL string
	client     *http.Client
	log        zerolog.Logger
}

func NewSlackNotifier(webhookURL string, timeout time.Duration, log zerolog.Logger) *SlackNotifier {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &SlackNotifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: timeout},
		log:        log,
	}
}

type slackField struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Short bool   `json:"short"`
}

type slackAttachment struct {
	Color  string       `json:"color"`
	Title  string       `json:"title,omitempty"`
	Fields []slackField `json:"fields"`
	Footer string       `json:"footer"`
}

type slackPayload struct {
	Text        string            `json:"text"`
	Attachments []slackAttachment `json:"attachments"`
}

// NotifyRecognition posts a recognition announcement. The sender is
// never named: anonymous recognitions say so, identified ones are
// attributed only to "a colleague".
func (s *SlackNotifier) NotifyRecognition(ctx context.Context, rec *domain.Recognition, recipientName string) {
	if s.webhookURL == "" {
		s.log.Debug().Msg("slack webhook not configured")
		metrics.WebhookDeliveriesTotal.WithLabelValues("skipped").Inc()
		return
	}

	from := "A colleague"
	if rec.Visibility == domain.VisibilityAnonymous {
		from = "Anonymous"
	}

	payload := slackPayload{
		Text: formatRecognitionMessage(rec, recipientName),
		Attachments: []slackAttachment{{
			Color: colorForVisibility(rec.Visibility),
			Fields: []slackField{
				{Title: "Recognition", Value: rec.Message},
				{Title: "From", Value: from, Short: true},
				{Title: "Visibility", Value: string(rec.Visibility), Short: true},
			},
			Footer: "Employee Recognition System",
		}},
	}

	s.post(ctx, payload)
}

// NotifyTeamAnalytics posts a team's recognition statistics.
func (s *SlackNotifier) NotifyTeamAnalytics(ctx context.Context, teamName string, stats analytics.TeamStats) {
	if s.webhookURL == "" {
		s.log.Debug().Msg("slack webhook not configured")
		metrics.WebhookDeliveriesTotal.WithLabelValues("skipped").Inc()
		return
	}

	payload := slackPayload{
		Text: formatAnalyticsMessage(teamName, stats),
		Attachments: []slackAttachment{{
			Color: "#36A2EB",
			Title: teamName + " Team Analytics",
			Fields: []slackField{
				{Title: "Total Recognitions", Value: fmt.Sprint(stats.TotalRecognitions), Short: true},
				{Title: "Public Recognitions", Value: fmt.Sprint(stats.PublicRecognitions), Short: true},
				{Title: "Private Recognitions", Value: fmt.Sprint(stats.PrivateRecognitions), Short: true},
				{Title: "Anonymous Recognitions", Value: fmt.Sprint(stats.AnonymousRecognitions), Short: true},
			},
			Footer: "Employee Recognition System - Analytics",
		}},
	}

	s.post(ctx, payload)
}

func (s *SlackNotifier) post(ctx context.Context, payload slackPayload) {
	body, err := json.Marshal(payload)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to encode slack payload")
		metrics.WebhookDeliveriesTotal.WithLabelValues("error").Inc()
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(body))
	if err != nil {
		s.log.Error().Err(err).Msg("failed to build slack request")
		metrics.WebhookDeliveriesTotal.WithLabelValues("error").Inc()
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to send slack notification")
		metrics.WebhookDeliveriesTotal.WithLabelValues("error").Inc()
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		s.log.Error().Int("status", resp.StatusCode).Msg("slack webhook rejected notification")
		metrics.WebhookDeliveriesTotal.WithLabelValues("error").Inc()
		return
	}

	metrics.WebhookDeliveriesTotal.WithLabelValues("ok").Inc()
}

func formatRecognitionMessage(rec *domain.Recognition, recipientName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s *%s* received a %s recognition!\n\n", rec.Emoji, recipientName, strings.ToLower(string(rec.Visibility)))
	fmt.Fprintf(&b, "> %q\n\n", rec.Message)
	if rec.Visibility == domain.VisibilityAnonymous {
		b.WriteString("This recognition was sent anonymously.")
	} else {
		b.WriteString("This recognition was sent by a colleague.")
	}
	return b.String()
}

func formatAnalyticsMessage(teamName string, stats analytics.TeamStats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 *%s Team Analytics Report*\n\n", teamName)
	fmt.Fprintf(&b, "• Total Recognitions: %d\n", stats.TotalRecognitions)
	fmt.Fprintf(&b, "• Public: %d\n", stats.PublicRecognitions)
	fmt.Fprintf(&b, "• Private: %d\n", stats.PrivateRecognitions)
	fmt.Fprintf(&b, "• Anonymous: %d\n\n", stats.AnonymousRecognitions)
	b.WriteString("Keep up the great work! 🎉")
	return b.String()
}

func colorForVisibility(v domain.Visibility) string {
	switch v {
	case domain.VisibilityPublic:
		return "good"
	case domain.VisibilityPrivate:
		return "warning"
	case domain.VisibilityAnonymous:
		return "#9C27B0"
	default:
		return "#36A2EB"
	}
}
