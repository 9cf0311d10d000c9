package events

import (
	"time"

	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventSubmissionReceived   EventType = "submission_received"
	EventPartnerCreated       EventType = "partner_created"
	EventPartnerStatusChanged EventType = "partner_status_changed"
)

// Event represents a domain event emitted by services.
type Event struct {
	Type      EventType   `json:"type"`
	EntityID  int64       `json:"entity_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// SubmissionReceivedPayload payload.
type SubmissionReceivedPayload struct {
	Type    domain.SubmissionType `json:"type"`
	Email   string                `json:"email"`
	Service *string               `json:"service,omitempty"`
}

// PartnerCreatedPayload payload.
type PartnerCreatedPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PartnerStatusChangedPayload payload.
type PartnerStatusChangedPayload struct {
	OldStatus domain.PartnerStatus `json:"old_status"`
	NewStatus domain.PartnerStatus `json:"new_status"`
}
