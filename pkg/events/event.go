package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "DOCUMENT_UPDATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent embeds the common implementation.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewDocumentUpdated signals that a session's document tree changed: field
// writes, list growth or list shrink alike.
func NewDocumentUpdated(sessionID, operation string) Event {
	return BaseEvent{
		Type: "DOCUMENT_UPDATED",
		Data: map[string]interface{}{
			"session_id": sessionID,
			"operation":  operation,
		},
		OccurredAt: time.Now(),
	}
}
