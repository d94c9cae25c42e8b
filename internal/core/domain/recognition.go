package domain

import "time"

// Visibility controls who may see a recognition.
type Visibility string

const (
	VisibilityPublic    Visibility = "PUBLIC"
	VisibilityPrivate   Visibility = "PRIVATE"
	VisibilityAnonymous Visibility = "ANONYMOUS"
)

// Valid reports whether v is one of the known visibility levels.
func (v Visibility) Valid() bool {
	switch v {
	case VisibilityPublic, VisibilityPrivate, VisibilityAnonymous:
		return true
	}
	return false
}

// Sender identifies who sent a recognition. An anonymous sender carries
// no user id at all, so an anonymous recognition can never leak its
// originator: the invariant "anonymous implies no stored sender" holds
// by construction rather than by convention.
type Sender struct {
	userID string
}

// IdentifiedSender returns a Sender attributed to the given user.
func IdentifiedSender(userID string) Sender {
	return Sender{userID: userID}
}

// AnonymousSender returns a Sender with no attributed user.
func AnonymousSender() Sender {
	return Sender{}
}

// NewSender builds the sender for a recognition with the given
// visibility: anonymous recognitions never persist their originator.
func NewSender(visibility Visibility, fromUserID string) Sender {
	if visibility == VisibilityAnonymous {
		return AnonymousSender()
	}
	return IdentifiedSender(fromUserID)
}

// Anonymous reports whether the sender is unattributed.
func (s Sender) Anonymous() bool {
	return s.userID == ""
}

// UserID returns the sending user's id, and false when anonymous.
func (s Sender) UserID() (string, bool) {
	if s.userID == "" {
		return "", false
	}
	return s.userID, true
}

// Is reports whether the sender is the given user. Always false for an
// anonymous sender, even when asked by the true originator.
func (s Sender) Is(userID string) bool {
	return s.userID != "" && s.userID == userID
}

// Recognition is a short appreciation message from one user to another.
// Recognitions are immutable after creation; the only lifecycle
// operations are create and delete.
type Recognition struct {
	ID         string
	Message    string
	Emoji      string
	Sender     Sender
	ToUserID   string
	Visibility Visibility
	CreatedAt  time.Time
	Keywords   []string
}
