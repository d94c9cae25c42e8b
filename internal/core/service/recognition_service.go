package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kudoshq/recognition-api/internal/core/access"
	"github.com/kudoshq/recognition-api/internal/core/analytics"
	"github.com/kudoshq/recognition-api/internal/core/domain"
	"github.com/kudoshq/recognition-api/internal/core/ports"
)

// DeliveryDeduper abstracts the idempotency store (Redis) guarding the
// external webhook so a recognition is never posted twice.
type DeliveryDeduper interface {
	IsDuplicate(ctx context.Context, recognitionID string) (bool, error)
	Mark(ctx context.Context, recognitionID string) error
}

const defaultNotifyTimeout = 5 * time.Second

// RecognitionService orchestrates sending, deleting and listing
// recognitions: it authorizes through the access package, persists
// through the repositories, and emits events through the bus. The
// external notification hop is fire-and-forget.
type RecognitionService struct {
	users         ports.UserRepository
	recognitions  ports.RecognitionRepository
	notifications ports.NotificationRepository
	bus           ports.EventBus
	external      ports.ExternalNotifier
	dedup         DeliveryDeduper
	notifyTimeout time.Duration
	logger        zerolog.Logger
}

func NewRecognitionService(
	users ports.UserRepository,
	recognitions ports.RecognitionRepository,
	notifications ports.NotificationRepository,
	bus ports.EventBus,
	external ports.ExternalNotifier,
	dedup DeliveryDeduper,
	notifyTimeout time.Duration,
	logger zerolog.Logger,
) *RecognitionService {
	if notifyTimeout <= 0 {
		notifyTimeout = defaultNotifyTimeout
	}
	return &RecognitionService{
		users:         users,
		recognitions:  recognitions,
		notifications: notifications,
		bus:           bus,
		external:      external,
		dedup:         dedup,
		notifyTimeout: notifyTimeout,
		logger:        logger,
	}
}

// Send creates a recognition addressed to an existing user. Anonymous
// recognitions never persist their sender. The recipient gets an in-app
// notification, events fan out on the bus, and the external webhook is
// notified asynchronously; none of those side effects can fail the send.
func (s *RecognitionService) Send(ctx context.Context, actor *domain.User, in ports.SendRecognitionInput) (*domain.Recognition, error) {
	if !access.IsAuthenticated(actor) {
		return nil, domain.ErrAuthenticationRequired
	}
	if !in.Visibility.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidVisibility, in.Visibility)
	}

	recipient, err := s.users.FindByID(ctx, in.ToUserID)
	if err != nil {
		return nil, fmt.Errorf("send recognition: %w", err)
	}

	rec := &domain.Recognition{
		ID:         uuid.NewString(),
		Message:    in.Message,
		Emoji:      in.Emoji,
		Sender:     domain.NewSender(in.Visibility, actor.ID),
		ToUserID:   recipient.ID,
		Visibility: in.Visibility,
		CreatedAt:  time.Now().UTC(),
		Keywords:   analytics.ExtractKeywords(in.Message),
	}

	if err := s.recognitions.Append(ctx, rec); err != nil {
		s.logger.Error().Err(err).Msg("failed to store recognition")
		return nil, err
	}

	s.logger.Info().
		Str("recognition_id", rec.ID).
		Str("to_user_id", rec.ToUserID).
		Str("visibility", string(rec.Visibility)).
		Msg("recognition sent")

	notification := s.createNotification(ctx, rec, actor)

	s.bus.Publish(domain.Event{Name: domain.EventRecognitionReceived, Recognition: rec})
	s.bus.Publish(domain.Event{Name: domain.EventTeamRecognitionUpdate, Recognition: rec})
	if notification != nil {
		s.bus.Publish(domain.Event{Name: domain.EventNotificationCreated, Notification: notification})
	}

	go s.notifyExternal(rec, recipient.Name)

	return rec, nil
}

// createNotification stores the recipient's in-app notification.
// Failure is logged and swallowed: the recognition itself is already
// committed.
func (s *RecognitionService) createNotification(ctx context.Context, rec *domain.Recognition, actor *domain.User) *domain.Notification {
	message := "You received an anonymous recognition"
	if !rec.Sender.Anonymous() {
		message = "You received a recognition from " + actor.Name
	}

	n := &domain.Notification{
		ID:            uuid.NewString(),
		Type:          domain.NotificationTypeRecognition,
		Message:       message,
		RecognitionID: rec.ID,
		UserID:        rec.ToUserID,
		CreatedAt:     rec.CreatedAt,
	}
	if err := s.notifications.Append(ctx, n); err != nil {
		s.logger.Warn().Err(err).Str("recognition_id", rec.ID).Msg("failed to store notification")
		return nil
	}
	return n
}

// notifyExternal posts the recognition to the external channel with a
// bounded timeout. Redis deduplication keeps retries and fan-out from
// double-posting; any failure here is logged only.
func (s *RecognitionService) notifyExternal(rec *domain.Recognition, recipientName string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.notifyTimeout)
	defer cancel()

	if s.dedup != nil {
		dup, err := s.dedup.IsDuplicate(ctx, rec.ID)
		if err != nil {
			s.logger.Warn().Err(err).Str("recognition_id", rec.ID).Msg("dedup check failed, notifying anyway")
		} else if dup {
			s.logger.Debug().Str("recognition_id", rec.ID).Msg("duplicate external notification skipped")
			return
		}
		if err := s.dedup.Mark(ctx, rec.ID); err != nil {
			s.logger.Warn().Err(err).Str("recognition_id", rec.ID).Msg("failed to set dedup key")
		}
	}

	s.external.NotifyRecognition(ctx, rec, recipientName)
}

// Delete removes a recognition. HR/ADMIN may delete any; otherwise only
// the original sender, which an anonymous recognition has none of.
func (s *RecognitionService) Delete(ctx context.Context, actor *domain.User, id string) error {
	if !access.IsAuthenticated(actor) {
		return domain.ErrAuthenticationRequired
	}

	rec, err := s.recognitions.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete recognition: %w", err)
	}
	if !access.CanDeleteRecognition(actor, rec) {
		return domain.ErrForbidden
	}

	if err := s.recognitions.Remove(ctx, id); err != nil {
		return fmt.Errorf("delete recognition: %w", err)
	}

	s.logger.Info().Str("recognition_id", id).Str("actor_id", actor.ID).Msg("recognition deleted")
	return nil
}

// ListMine returns the recognitions received by the actor.
func (s *RecognitionService) ListMine(ctx context.Context, actor *domain.User) ([]domain.Recognition, error) {
	if !access.IsAuthenticated(actor) {
		return nil, domain.ErrAuthenticationRequired
	}
	return s.recognitions.ListByRecipient(ctx, actor.ID)
}

// ListByTeam returns recognitions received by members of the team.
func (s *RecognitionService) ListByTeam(ctx context.Context, actor *domain.User, teamID string) ([]domain.Recognition, error) {
	if !access.CanViewTeamData(actor, teamID) {
		return nil, deniedError(actor)
	}

	members, err := s.users.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list team recognitions: %w", err)
	}
	ids := make([]string, len(members))
	for i, m := range members {
		ids[i] = m.ID
	}
	return s.recognitions.ListByRecipients(ctx, ids)
}

// ListByUser returns recognitions received by the given user, subject
// to the user-data visibility rules.
func (s *RecognitionService) ListByUser(ctx context.Context, actor *domain.User, userID string) ([]domain.Recognition, error) {
	target, err := s.users.FindByID(ctx, userID)
	if err != nil {
		target = nil
	}
	if !access.CanViewUserData(actor, userID, target) {
		return nil, deniedError(actor)
	}
	if target == nil {
		return nil, domain.ErrUserNotFound
	}
	return s.recognitions.ListByRecipient(ctx, userID)
}

// ListAll returns every recognition; HR/ADMIN only.
func (s *RecognitionService) ListAll(ctx context.Context, actor *domain.User) ([]domain.Recognition, error) {
	if !access.IsHROrAdmin(actor) {
		return nil, deniedError(actor)
	}
	return s.recognitions.List(ctx)
}

// deniedError picks the right failure for a false predicate result.
func deniedError(actor *domain.User) error {
	if !access.IsAuthenticated(actor) {
		return domain.ErrAuthenticationRequired
	}
	return domain.ErrForbidden
}
