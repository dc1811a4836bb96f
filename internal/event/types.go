package event

import (
	"time"
)

// Event type constants
const (
	TypeMessageImported = "inbox.message.imported"
	TypeThreadCreated   = "inbox.thread.created"
	TypeLeadCreated     = "crm.lead.created"
)

// Event describes a state change in the inbox or CRM. Consumed by
// presentation-layer subscribers to refresh views after an import.
type Event struct {
	Type      string    `json:"type"`
	Platform  string    `json:"platform,omitempty"`
	ThreadID  string    `json:"thread_id,omitempty"`
	MessageID string    `json:"message_id,omitempty"`
	LeadID    string    `json:"lead_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
