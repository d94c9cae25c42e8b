package domain

// Event names published on the in-process bus.
const (
	EventRecognitionReceived   = "recognition.received"
	EventTeamRecognitionUpdate = "team.recognition.update"
	EventNotificationCreated   = "notification.created"
)

// Event is a domain event carried by the bus. Exactly one payload field
// is set, determined by Name.
type Event struct {
	Name         string
	Recognition  *Recognition
	Notification *Notification
}
