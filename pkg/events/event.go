package events

import "time"

// Event codes carried on the bus. The notification worker keys its
// templates off these.
const (
	AnimalCreated       = "ANIMAL_CREATED"
	AnimalStatusChanged = "ANIMAL_STATUS_CHANGED"
	AnimalDeleted       = "ANIMAL_DELETED"
	AdoptionSubmitted   = "ADOPTION_SUBMITTED"
	AdoptionDecided     = "ADOPTION_DECIDED"
	ReportSubmitted     = "REPORT_SUBMITTED"
	ReportAdvanced      = "REPORT_ADVANCED"
	TreatmentRecorded   = "TREATMENT_RECORDED"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "ADOPTION_DECIDED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the concrete event every publisher in this codebase uses.
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
