package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/kudoshq/recognition-api/internal/core/analytics"
	"github.com/kudoshq/recognition-api/internal/core/domain"
	"github.com/kudoshq/recognition-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stubs shared by the service tests in this package
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byID      map[string]*domain.User
	order     []string
	updateErr error
}

func newStubUserRepo(users ...*domain.User) *stubUserRepo {
	r := &stubUserRepo{byID: make(map[string]*domain.User)}
	for _, u := range users {
		clone := *u
		r.byID[u.ID] = &clone
		r.order = append(r.order, u.ID)
	}
	return r
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, id := range r.order {
		if r.byID[id].Email == email {
			clone := *r.byID[id]
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) error {
	if _, ok := r.byID[u.ID]; ok {
		return domain.ErrUserExists
	}
	clone := *u
	r.byID[u.ID] = &clone
	r.order = append(r.order, u.ID)
	return nil
}

func (r *stubUserRepo) UpdateProfile(_ context.Context, id, name, email string) (*domain.User, error) {
	if r.updateErr != nil {
		return nil, r.updateErr
	}
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if name != "" {
		u.Name = name
	}
	if email != "" {
		u.Email = email
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.byID[id])
	}
	return out, nil
}

func (r *stubUserRepo) ListByTeam(_ context.Context, teamID string) ([]domain.User, error) {
	var out []domain.User
	for _, id := range r.order {
		if r.byID[id].TeamID == teamID {
			out = append(out, *r.byID[id])
		}
	}
	return out, nil
}

type stubTeamRepo struct {
	byID  map[string]*domain.Team
	order []string
}

func newStubTeamRepo(teams ...*domain.Team) *stubTeamRepo {
	r := &stubTeamRepo{byID: make(map[string]*domain.Team)}
	for _, t := range teams {
		clone := *t
		r.byID[t.ID] = &clone
		r.order = append(r.order, t.ID)
	}
	return r
}

func (r *stubTeamRepo) FindByID(_ context.Context, id string) (*domain.Team, error) {
	t, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrTeamNotFound
	}
	clone := *t
	return &clone, nil
}

func (r *stubTeamRepo) List(_ context.Context) ([]domain.Team, error) {
	out := make([]domain.Team, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.byID[id])
	}
	return out, nil
}

type stubRecognitionRepo struct {
	byID      map[string]*domain.Recognition
	order     []string
	appendErr error
}

func newStubRecognitionRepo(recs ...*domain.Recognition) *stubRecognitionRepo {
	r := &stubRecognitionRepo{byID: make(map[string]*domain.Recognition)}
	for _, rec := range recs {
		clone := *rec
		r.byID[rec.ID] = &clone
		r.order = append(r.order, rec.ID)
	}
	return r
}

func (r *stubRecognitionRepo) FindByID(_ context.Context, id string) (*domain.Recognition, error) {
	rec, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrRecognitionNotFound
	}
	clone := *rec
	return &clone, nil
}

func (r *stubRecognitionRepo) List(_ context.Context) ([]domain.Recognition, error) {
	out := make([]domain.Recognition, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.byID[id])
	}
	return out, nil
}

func (r *stubRecognitionRepo) ListByRecipient(_ context.Context, userID string) ([]domain.Recognition, error) {
	var out []domain.Recognition
	for _, id := range r.order {
		if r.byID[id].ToUserID == userID {
			out = append(out, *r.byID[id])
		}
	}
	return out, nil
}

func (r *stubRecognitionRepo) ListByRecipients(_ context.Context, userIDs []string) ([]domain.Recognition, error) {
	want := make(map[string]bool, len(userIDs))
	for _, id := range userIDs {
		want[id] = true
	}
	var out []domain.Recognition
	for _, id := range r.order {
		if want[r.byID[id].ToUserID] {
			out = append(out, *r.byID[id])
		}
	}
	return out, nil
}

func (r *stubRecognitionRepo) Append(_ context.Context, rec *domain.Recognition) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	clone := *rec
	r.byID[rec.ID] = &clone
	r.order = append(r.order, rec.ID)
	return nil
}

func (r *stubRecognitionRepo) Remove(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrRecognitionNotFound
	}
	delete(r.byID, id)
	for i, stored := range r.order {
		if stored == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

type stubNotificationRepo struct {
	byID      map[string]*domain.Notification
	order     []string
	appendErr error
}

func newStubNotificationRepo(notifs ...*domain.Notification) *stubNotificationRepo {
	r := &stubNotificationRepo{byID: make(map[string]*domain.Notification)}
	for _, n := range notifs {
		clone := *n
		r.byID[n.ID] = &clone
		r.order = append(r.order, n.ID)
	}
	return r
}

func (r *stubNotificationRepo) FindByID(_ context.Context, id string) (*domain.Notification, error) {
	n, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotificationNotFound
	}
	clone := *n
	return &clone, nil
}

func (r *stubNotificationRepo) ListByUser(_ context.Context, userID string) ([]domain.Notification, error) {
	var out []domain.Notification
	for _, id := range r.order {
		if r.byID[id].UserID == userID {
			out = append(out, *r.byID[id])
		}
	}
	return out, nil
}

func (r *stubNotificationRepo) Append(_ context.Context, n *domain.Notification) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	clone := *n
	r.byID[n.ID] = &clone
	r.order = append(r.order, n.ID)
	return nil
}

func (r *stubNotificationRepo) MarkRead(_ context.Context, id string) error {
	n, ok := r.byID[id]
	if !ok {
		return domain.ErrNotificationNotFound
	}
	n.Read = true
	return nil
}

func (r *stubNotificationRepo) MarkAllRead(_ context.Context, userID string) error {
	for _, n := range r.byID {
		if n.UserID == userID {
			n.Read = true
		}
	}
	return nil
}

// stubBus records published events synchronously.
type stubBus struct {
	mu     sync.Mutex
	events []domain.Event
}

func (b *stubBus) Publish(event domain.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event)
}

func (b *stubBus) Subscribe(string, ports.EventFilter) (<-chan domain.Event, func()) {
	ch := make(chan domain.Event)
	close(ch)
	return ch, func() {}
}

func (b *stubBus) names() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.events))
	for i, e := range b.events {
		out[i] = e.Name
	}
	return out
}

// stubExternal signals each delivery on a channel so tests can wait for
// the fire-and-forget goroutine.
type stubExternal struct {
	recognitions chan string // recipient names
	teams        chan string // team names
}

func newStubExternal() *stubExternal {
	return &stubExternal{
		recognitions: make(chan string, 4),
		teams:        make(chan string, 4),
	}
}

func (e *stubExternal) NotifyRecognition(_ context.Context, _ *domain.Recognition, recipientName string) {
	e.recognitions <- recipientName
}

func (e *stubExternal) NotifyTeamAnalytics(_ context.Context, teamName string, _ analytics.TeamStats) {
	e.teams <- teamName
}

type stubDeduper struct {
	mu     sync.Mutex
	dup    bool
	err    error
	marked []string
}

func (d *stubDeduper) IsDuplicate(_ context.Context, _ string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dup, d.err
}

func (d *stubDeduper) Mark(_ context.Context, recognitionID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.marked = append(d.marked, recognitionID)
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

func employee(id, name, teamID string) *domain.User {
	return &domain.User{ID: id, Name: name, Role: domain.RoleEmployee, TeamID: teamID}
}

func hrUser(id string) *domain.User {
	return &domain.User{ID: id, Name: "HR", Role: domain.RoleHR, TeamID: "t-hr"}
}

type recognitionFixture struct {
	users    *stubUserRepo
	recs     *stubRecognitionRepo
	notifs   *stubNotificationRepo
	bus      *stubBus
	external *stubExternal
	dedup    *stubDeduper
	svc      *RecognitionService
}

func newRecognitionFixture(users ...*domain.User) *recognitionFixture {
	f := &recognitionFixture{
		users:    newStubUserRepo(users...),
		recs:     newStubRecognitionRepo(),
		notifs:   newStubNotificationRepo(),
		bus:      &stubBus{},
		external: newStubExternal(),
		dedup:    &stubDeduper{},
	}
	f.svc = NewRecognitionService(
		f.users, f.recs, f.notifs, f.bus, f.external, f.dedup,
		time.Second, discardLogger,
	)
	return f
}

func waitFor[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for async delivery")
		panic("unreachable")
	}
}

// ---------------------------------------------------------------------------
// Send tests
// ---------------------------------------------------------------------------

func TestRecognitionService_Send_Success(t *testing.T) {
	f := newRecognitionFixture(employee("u1", "Alice", "t1"), employee("u2", "Bob", "t1"))

	rec, err := f.svc.Send(context.Background(), employee("u1", "Alice", "t1"), ports.SendRecognitionInput{
		ToUserID:   "u2",
		Message:    "Fantastic collaboration on the launch",
		Emoji:      "🎉",
		Visibility: domain.VisibilityPublic,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.ID == "" {
		t.Error("recognition must get an id")
	}
	if rec.CreatedAt.IsZero() {
		t.Error("CreatedAt must not be zero")
	}
	if from, ok := rec.Sender.UserID(); !ok || from != "u1" {
		t.Errorf("expected sender u1, got %q (ok=%v)", from, ok)
	}
	if len(rec.Keywords) == 0 {
		t.Error("keywords must be extracted at send time")
	}
	if _, ok := f.recs.byID[rec.ID]; !ok {
		t.Error("recognition must be persisted")
	}

	waitFor(t, f.external.recognitions)
}

func TestRecognitionService_Send_AnonymousStoresNoSender(t *testing.T) {
	f := newRecognitionFixture(employee("u1", "Alice", "t1"), employee("u2", "Bob", "t1"))

	rec, err := f.svc.Send(context.Background(), employee("u1", "Alice", "t1"), ports.SendRecognitionInput{
		ToUserID:   "u2",
		Message:    "Quietly excellent work",
		Visibility: domain.VisibilityAnonymous,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !rec.Sender.Anonymous() {
		t.Fatal("anonymous recognition must have no sender")
	}
	if rec.Sender.Is("u1") {
		t.Error("originator must not match the sender check")
	}

	stored := f.recs.byID[rec.ID]
	if !stored.Sender.Anonymous() {
		t.Error("persisted copy must also be anonymous")
	}

	waitFor(t, f.external.recognitions)
}

func TestRecognitionService_Send_CreatesNotification(t *testing.T) {
	f := newRecognitionFixture(employee("u1", "Alice", "t1"), employee("u2", "Bob", "t1"))

	rec, err := f.svc.Send(context.Background(), employee("u1", "Alice", "t1"), ports.SendRecognitionInput{
		ToUserID:   "u2",
		Message:    "Great job",
		Visibility: domain.VisibilityPublic,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	notifs, _ := f.notifs.ListByUser(context.Background(), "u2")
	if len(notifs) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifs))
	}
	n := notifs[0]
	if n.Type != domain.NotificationTypeRecognition {
		t.Errorf("wrong type %q", n.Type)
	}
	if n.RecognitionID != rec.ID {
		t.Error("notification must point at the recognition")
	}
	if n.Message != "You received a recognition from Alice" {
		t.Errorf("wrong message %q", n.Message)
	}
	if n.Read {
		t.Error("new notifications start unread")
	}

	waitFor(t, f.external.recognitions)
}

func TestRecognitionService_Send_AnonymousNotificationHidesSender(t *testing.T) {
	f := newRecognitionFixture(employee("u1", "Alice", "t1"), employee("u2", "Bob", "t1"))

	_, err := f.svc.Send(context.Background(), employee("u1", "Alice", "t1"), ports.SendRecognitionInput{
		ToUserID:   "u2",
		Message:    "Great job",
		Visibility: domain.VisibilityAnonymous,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	notifs, _ := f.notifs.ListByUser(context.Background(), "u2")
	if len(notifs) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifs))
	}
	if notifs[0].Message != "You received an anonymous recognition" {
		t.Errorf("notification leaks the sender: %q", notifs[0].Message)
	}

	waitFor(t, f.external.recognitions)
}

func TestRecognitionService_Send_PublishesEvents(t *testing.T) {
	f := newRecognitionFixture(employee("u1", "Alice", "t1"), employee("u2", "Bob", "t1"))

	_, err := f.svc.Send(context.Background(), employee("u1", "Alice", "t1"), ports.SendRecognitionInput{
		ToUserID:   "u2",
		Message:    "Great job",
		Visibility: domain.VisibilityPublic,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	names := f.bus.names()
	want := []string{
		domain.EventRecognitionReceived,
		domain.EventTeamRecognitionUpdate,
		domain.EventNotificationCreated,
	}
	if len(names) != len(want) {
		t.Fatalf("expected %d events, got %d (%v)", len(want), len(names), names)
	}
	for i, name := range want {
		if names[i] != name {
			t.Errorf("event[%d] = %q, want %q", i, names[i], name)
		}
	}

	waitFor(t, f.external.recognitions)
}

func TestRecognitionService_Send_NotificationFailureDoesNotFailSend(t *testing.T) {
	f := newRecognitionFixture(employee("u1", "Alice", "t1"), employee("u2", "Bob", "t1"))
	f.notifs.appendErr = errors.New("db unavailable")

	rec, err := f.svc.Send(context.Background(), employee("u1", "Alice", "t1"), ports.SendRecognitionInput{
		ToUserID:   "u2",
		Message:    "Great job",
		Visibility: domain.VisibilityPublic,
	})
	if err != nil {
		t.Fatalf("send must survive a notification failure: %v", err)
	}
	if _, ok := f.recs.byID[rec.ID]; !ok {
		t.Error("recognition must still be persisted")
	}

	// Only the two recognition events fire; the notification event is
	// skipped when the notification could not be stored.
	names := f.bus.names()
	if len(names) != 2 {
		t.Errorf("expected 2 events, got %v", names)
	}

	waitFor(t, f.external.recognitions)
}

func TestRecognitionService_Send_Unauthenticated(t *testing.T) {
	f := newRecognitionFixture(employee("u2", "Bob", "t1"))

	_, err := f.svc.Send(context.Background(), nil, ports.SendRecognitionInput{
		ToUserID:   "u2",
		Message:    "hi",
		Visibility: domain.VisibilityPublic,
	})
	if !errors.Is(err, domain.ErrAuthenticationRequired) {
		t.Fatalf("expected ErrAuthenticationRequired, got %v", err)
	}
}

func TestRecognitionService_Send_UnknownRecipient(t *testing.T) {
	f := newRecognitionFixture(employee("u1", "Alice", "t1"))

	_, err := f.svc.Send(context.Background(), employee("u1", "Alice", "t1"), ports.SendRecognitionInput{
		ToUserID:   "ghost",
		Message:    "hi",
		Visibility: domain.VisibilityPublic,
	})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if len(f.recs.order) != 0 {
		t.Error("nothing must be persisted")
	}
}

func TestRecognitionService_Send_InvalidVisibility(t *testing.T) {
	f := newRecognitionFixture(employee("u1", "Alice", "t1"), employee("u2", "Bob", "t1"))

	_, err := f.svc.Send(context.Background(), employee("u1", "Alice", "t1"), ports.SendRecognitionInput{
		ToUserID:   "u2",
		Message:    "hi",
		Visibility: domain.Visibility("FRIENDS_ONLY"),
	})
	if !errors.Is(err, domain.ErrInvalidVisibility) {
		t.Fatalf("expected ErrInvalidVisibility, got %v", err)
	}
}

func TestRecognitionService_Send_DuplicateSkipsExternal(t *testing.T) {
	f := newRecognitionFixture(employee("u1", "Alice", "t1"), employee("u2", "Bob", "t1"))
	f.dedup.dup = true

	_, err := f.svc.Send(context.Background(), employee("u1", "Alice", "t1"), ports.SendRecognitionInput{
		ToUserID:   "u2",
		Message:    "Great job",
		Visibility: domain.VisibilityPublic,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	select {
	case <-f.external.recognitions:
		t.Fatal("duplicate must not reach the external channel")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestRecognitionService_Send_MarksDedupKey(t *testing.T) {
	f := newRecognitionFixture(employee("u1", "Alice", "t1"), employee("u2", "Bob", "t1"))

	rec, err := f.svc.Send(context.Background(), employee("u1", "Alice", "t1"), ports.SendRecognitionInput{
		ToUserID:   "u2",
		Message:    "Great job",
		Visibility: domain.VisibilityPublic,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	waitFor(t, f.external.recognitions)

	f.dedup.mu.Lock()
	defer f.dedup.mu.Unlock()
	if len(f.dedup.marked) != 1 || f.dedup.marked[0] != rec.ID {
		t.Errorf("expected dedup mark for %s, got %v", rec.ID, f.dedup.marked)
	}
}

// ---------------------------------------------------------------------------
// Delete tests
// ---------------------------------------------------------------------------

func seededRecognition(from, to string, vis domain.Visibility) *domain.Recognition {
	return &domain.Recognition{
		ID:         "r1",
		Message:    "seed",
		Sender:     domain.NewSender(vis, from),
		ToUserID:   to,
		Visibility: vis,
		CreatedAt:  time.Now().UTC(),
	}
}

func TestRecognitionService_Delete_BySender(t *testing.T) {
	f := newRecognitionFixture(employee("u1", "Alice", "t1"))
	f.recs = newStubRecognitionRepo(seededRecognition("u1", "u2", domain.VisibilityPublic))
	f.svc = NewRecognitionService(f.users, f.recs, f.notifs, f.bus, f.external, f.dedup, time.Second, discardLogger)

	if err := f.svc.Delete(context.Background(), employee("u1", "Alice", "t1"), "r1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.recs.order) != 0 {
		t.Error("recognition must be removed")
	}
}

func TestRecognitionService_Delete_ByHR(t *testing.T) {
	f := newRecognitionFixture()
	f.recs = newStubRecognitionRepo(seededRecognition("u1", "u2", domain.VisibilityPrivate))
	f.svc = NewRecognitionService(f.users, f.recs, f.notifs, f.bus, f.external, f.dedup, time.Second, discardLogger)

	if err := f.svc.Delete(context.Background(), hrUser("hr1"), "r1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRecognitionService_Delete_RecipientForbidden(t *testing.T) {
	f := newRecognitionFixture()
	f.recs = newStubRecognitionRepo(seededRecognition("u1", "u2", domain.VisibilityPublic))
	f.svc = NewRecognitionService(f.users, f.recs, f.notifs, f.bus, f.external, f.dedup, time.Second, discardLogger)

	err := f.svc.Delete(context.Background(), employee("u2", "Bob", "t1"), "r1")
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if len(f.recs.order) != 1 {
		t.Error("recognition must survive a forbidden delete")
	}
}

// The author of an anonymous recognition cannot delete it: the sender
// identity was never stored, so there is nothing to match against.
func TestRecognitionService_Delete_AnonymousOriginatorForbidden(t *testing.T) {
	f := newRecognitionFixture()
	f.recs = newStubRecognitionRepo(seededRecognition("u1", "u2", domain.VisibilityAnonymous))
	f.svc = NewRecognitionService(f.users, f.recs, f.notifs, f.bus, f.external, f.dedup, time.Second, discardLogger)

	err := f.svc.Delete(context.Background(), employee("u1", "Alice", "t1"), "r1")
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRecognitionService_Delete_NotFound(t *testing.T) {
	f := newRecognitionFixture()

	err := f.svc.Delete(context.Background(), hrUser("hr1"), "ghost")
	if !errors.Is(err, domain.ErrRecognitionNotFound) {
		t.Fatalf("expected ErrRecognitionNotFound, got %v", err)
	}
}

func TestRecognitionService_Delete_Unauthenticated(t *testing.T) {
	f := newRecognitionFixture()

	err := f.svc.Delete(context.Background(), nil, "r1")
	if !errors.Is(err, domain.ErrAuthenticationRequired) {
		t.Fatalf("expected ErrAuthenticationRequired, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// List tests
// ---------------------------------------------------------------------------

func TestRecognitionService_ListMine(t *testing.T) {
	f := newRecognitionFixture(employee("u1", "Alice", "t1"))
	f.recs = newStubRecognitionRepo(
		&domain.Recognition{ID: "r1", ToUserID: "u1", Visibility: domain.VisibilityPublic},
		&domain.Recognition{ID: "r2", ToUserID: "u2", Visibility: domain.VisibilityPublic},
	)
	f.svc = NewRecognitionService(f.users, f.recs, f.notifs, f.bus, f.external, f.dedup, time.Second, discardLogger)

	recs, err := f.svc.ListMine(context.Background(), employee("u1", "Alice", "t1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 1 || recs[0].ID != "r1" {
		t.Errorf("expected only r1, got %v", recs)
	}
}

func TestRecognitionService_ListByTeam_MemberAllowed(t *testing.T) {
	f := newRecognitionFixture(
		employee("u1", "Alice", "t1"),
		employee("u2", "Bob", "t1"),
		employee("u3", "Carol", "t2"),
	)
	f.recs = newStubRecognitionRepo(
		&domain.Recognition{ID: "r1", ToUserID: "u2", Visibility: domain.VisibilityPublic},
		&domain.Recognition{ID: "r2", ToUserID: "u3", Visibility: domain.VisibilityPublic},
	)
	f.svc = NewRecognitionService(f.users, f.recs, f.notifs, f.bus, f.external, f.dedup, time.Second, discardLogger)

	recs, err := f.svc.ListByTeam(context.Background(), employee("u1", "Alice", "t1"), "t1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 1 || recs[0].ID != "r1" {
		t.Errorf("expected only r1, got %v", recs)
	}
}

func TestRecognitionService_ListByTeam_OutsiderForbidden(t *testing.T) {
	f := newRecognitionFixture(employee("u3", "Carol", "t2"))

	_, err := f.svc.ListByTeam(context.Background(), employee("u3", "Carol", "t2"), "t1")
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRecognitionService_ListByUser_RBAC(t *testing.T) {
	f := newRecognitionFixture(
		employee("u1", "Alice", "t1"),
		employee("u2", "Bob", "t1"),
	)
	f.recs = newStubRecognitionRepo(
		&domain.Recognition{ID: "r1", ToUserID: "u2", Visibility: domain.VisibilityPublic},
	)
	f.svc = NewRecognitionService(f.users, f.recs, f.notifs, f.bus, f.external, f.dedup, time.Second, discardLogger)

	// Self access works.
	recs, err := f.svc.ListByUser(context.Background(), employee("u2", "Bob", "t1"), "u2")
	if err != nil || len(recs) != 1 {
		t.Fatalf("self access failed: %v (%d recs)", err, len(recs))
	}

	// A peer employee is refused before learning anything.
	if _, err := f.svc.ListByUser(context.Background(), employee("u1", "Alice", "t1"), "u2"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	// A manager from the same team may look.
	mgr := &domain.User{ID: "m1", Role: domain.RoleManager, TeamID: "t1"}
	if _, err := f.svc.ListByUser(context.Background(), mgr, "u2"); err != nil {
		t.Fatalf("same-team manager refused: %v", err)
	}
}

// A non-privileged actor probing for a missing user gets Forbidden, not
// NotFound: authorization fails before existence is revealed.
func TestRecognitionService_ListByUser_MissingUserHiddenFromPeers(t *testing.T) {
	f := newRecognitionFixture(employee("u1", "Alice", "t1"))

	if _, err := f.svc.ListByUser(context.Background(), employee("u1", "Alice", "t1"), "ghost"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	// HR gets the honest answer.
	if _, err := f.svc.ListByUser(context.Background(), hrUser("hr1"), "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound for HR, got %v", err)
	}
}

func TestRecognitionService_ListAll_HROnly(t *testing.T) {
	f := newRecognitionFixture()
	f.recs = newStubRecognitionRepo(
		&domain.Recognition{ID: "r1", ToUserID: "u1", Visibility: domain.VisibilityPrivate},
	)
	f.svc = NewRecognitionService(f.users, f.recs, f.notifs, f.bus, f.external, f.dedup, time.Second, discardLogger)

	if _, err := f.svc.ListAll(context.Background(), employee("u1", "Alice", "t1")); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for employee, got %v", err)
	}
	mgr := &domain.User{ID: "m1", Role: domain.RoleManager, TeamID: "t1"}
	if _, err := f.svc.ListAll(context.Background(), mgr); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for manager, got %v", err)
	}

	recs, err := f.svc.ListAll(context.Background(), hrUser("hr1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 1 {
		t.Errorf("expected 1 recognition, got %d", len(recs))
	}
}
