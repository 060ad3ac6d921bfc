package domain

import "time"

// EventType identifies a trust event emitted after a successful state change.
type EventType string

const (
	EventInvitationAccepted EventType = "invitation.accepted"
	EventDeviceApproved     EventType = "device.approved"
	EventWebhookReceived    EventType = "webhook.received"
)

// Event is an outbound record consumed asynchronously by external observers
// (analytics, notifications). The core never blocks on its delivery.
type Event struct {
	Type      EventType
	ProjectID string // empty for events without a project scope
	ActorID   string // who caused the transition
	SubjectID string // what the transition was about (invitation id, device id, ...)
	At        time.Time
}
