package storage

import (
	"time"
)

// Message direction constants
const (
	DirectionIn  = "in"
	DirectionOut = "out"
)

// Thread status constants
const (
	ThreadOpen   = "open"
	ThreadClosed = "closed"
)

// Lead pipeline statuses
const (
	LeadNew       = "new"
	LeadContacted = "contacted"
	LeadQualified = "qualified"
	LeadWon       = "won"
	LeadLost      = "lost"
)

// LeadStatuses lists the pipeline buckets in display order
var LeadStatuses = []string{LeadNew, LeadContacted, LeadQualified, LeadWon, LeadLost}

// Task priorities
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// SavedReply scopes
const (
	ScopeGlobal = "global"
	ScopePlugin = "plugin"
)

// Thread represents a conversation between one sender and the business on one platform
type Thread struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	Platform      string    `gorm:"uniqueIndex:idx_thread_peer" json:"platform"` // "instagram", "facebook", "whatsapp"
	SenderID      string    `gorm:"uniqueIndex:idx_thread_peer" json:"sender_id"`
	Title         string    `json:"title"`
	Status        string    `gorm:"index;default:open" json:"status"` // "open" or "closed"
	CreatedAt     time.Time `json:"created_at"`
	LastMessageAt time.Time `gorm:"index" json:"last_message_at"`
	Messages      []Message `gorm:"foreignKey:ThreadID" json:"messages"`
}

// Message represents a single inbound or outbound message in a thread.
// Messages are immutable once stored.
type Message struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	ThreadID    string    `gorm:"index" json:"thread_id"`
	SenderID    string    `json:"sender_id"`
	SenderName  string    `json:"sender_name"`
	Platform    string    `gorm:"index" json:"platform"`
	Direction   string    `json:"direction"` // "in" or "out"
	Body        string    `json:"body"`
	Language    string    `json:"language"`
	ReceivedAt  time.Time `gorm:"index" json:"received_at"`
	Raw         string    `json:"raw,omitempty"`
	Fingerprint string    `gorm:"uniqueIndex" json:"-"`
}

// SavedReply is a reusable reply template, either global or owned by a plugin
type SavedReply struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	Language   string    `gorm:"index:idx_reply_scope_lang" json:"language"`
	Scope      string    `gorm:"index:idx_reply_scope_lang" json:"scope"` // "global" or "plugin"
	PluginName string    `gorm:"index" json:"plugin_name,omitempty"`
	Title      string    `json:"title"`
	Body       string    `json:"body"` // may contain {placeholder} tokens
	CreatedAt  time.Time `json:"created_at"`
}

// Lead is a CRM contact record, optionally linked to its originating thread.
// The thread reference is lookup-only, never ownership.
type Lead struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	ThreadID  string    `gorm:"index" json:"thread_id,omitempty"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Status    string    `gorm:"index;default:new" json:"status"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Task is a follow-up item, optionally linked to a lead
type Task struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	LeadID      string    `gorm:"index" json:"lead_id,omitempty"`
	DueAt       time.Time `gorm:"index" json:"due_at"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"` // low, medium, high, urgent
	Done        bool      `gorm:"index" json:"done"`
	CreatedAt   time.Time `json:"created_at"`
}

// WorkspaceProfile is the single business-identity row used for personalization.
// Exactly one logical row exists (id = 1), created with defaults on first access.
type WorkspaceProfile struct {
	ID              uint      `gorm:"primaryKey" json:"-"`
	BusinessName    string    `json:"business_name"`
	BusinessType    string    `json:"business_type"`
	City            string    `json:"city"`
	Phone           string    `json:"phone"`
	Hours           string    `json:"hours"`
	BookingLink     string    `json:"booking_link"`
	LocationLink    string    `json:"location_link"`
	BrandTone       string    `json:"brand_tone"`
	DefaultLanguage string    `json:"default_language"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
