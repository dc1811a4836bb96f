// Package sla derives per-thread response urgency and follow-up timing from
// timestamps. Everything here is computed at read time and never persisted,
// so stored state cannot drift from actual urgency.
package sla

import (
	"time"

	"github.com/socialops/agent/internal/storage"
)

// Status is the derived urgency of an unanswered thread
type Status string

const (
	StatusOK      Status = "ok"
	StatusWarning Status = "warning"
	StatusUrgent  Status = "urgent"
)

const (
	warningAfter = 4 * time.Hour
	urgentAfter  = 24 * time.Hour
)

// followupOffsets maps task priority to the suggested follow-up delay
var followupOffsets = map[string]time.Duration{
	storage.PriorityLow:    72 * time.Hour,
	storage.PriorityMedium: 24 * time.Hour,
	storage.PriorityHigh:   4 * time.Hour,
	storage.PriorityUrgent: time.Hour,
}

// ThreadStatus computes the urgency of a thread from its messages.
// A thread whose most recent message is outbound is already answered.
// Otherwise urgency escalates with the time since the last inbound message.
func ThreadStatus(messages []storage.Message, now time.Time) Status {
	var latest *storage.Message
	for i := range messages {
		if latest == nil || messages[i].ReceivedAt.After(latest.ReceivedAt) {
			latest = &messages[i]
		}
	}
	if latest == nil || latest.Direction == storage.DirectionOut {
		return StatusOK
	}

	elapsed := now.Sub(latest.ReceivedAt)
	switch {
	case elapsed >= urgentAfter:
		return StatusUrgent
	case elapsed >= warningAfter:
		return StatusWarning
	default:
		return StatusOK
	}
}

// FollowupAt suggests when a task of the given priority should be followed
// up, as a pure function of (priority, now). Unknown priorities use the
// medium offset.
func FollowupAt(priority string, now time.Time) time.Time {
	offset, ok := followupOffsets[priority]
	if !ok {
		offset = followupOffsets[storage.PriorityMedium]
	}
	return now.Add(offset)
}
