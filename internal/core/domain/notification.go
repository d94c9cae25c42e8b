package domain

import "time"

// NotificationTypeRecognition tags notifications created when a
// recognition is sent.
const NotificationTypeRecognition = "RECOGNITION_RECEIVED"

// Notification is an in-app message owned by a single user. Only the
// Read flag ever mutates, and only the owner may flip it.
type Notification struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	Message       string    `json:"message"`
	RecognitionID string    `json:"recognition_id,omitempty"`
	UserID        string    `json:"user_id"`
	CreatedAt     time.Time `json:"created_at"`
	Read          bool      `json:"read"`
}
