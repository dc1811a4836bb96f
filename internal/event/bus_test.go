package event

import (
	"testing"
	"time"
)

func TestMatchPattern(t *testing.T) {
	tests := []struct {
		pattern   string
		eventType string
		want      bool
	}{
		{"*", TypeMessageImported, true},
		{"inbox.*", TypeMessageImported, true},
		{"inbox.*", TypeThreadCreated, true},
		{"inbox.*", TypeLeadCreated, false},
		{"inbox.message.imported", TypeMessageImported, true},
		{"inbox.message", TypeMessageImported, false},
		{"crm.*", TypeLeadCreated, true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.eventType, func(t *testing.T) {
			if got := matchPattern(tt.pattern, tt.eventType); got != tt.want {
				t.Errorf("matchPattern(%q, %q) = %v, want %v", tt.pattern, tt.eventType, got, tt.want)
			}
		})
	}
}

func TestPublishDeliversToMatchingSubscribers(t *testing.T) {
	bus := NewBus()

	var inboxEvents, allEvents []Event
	bus.Subscribe([]string{"inbox.*"}, func(e Event) { inboxEvents = append(inboxEvents, e) })
	id := bus.Subscribe([]string{"*"}, func(e Event) { allEvents = append(allEvents, e) })

	bus.Publish(Event{Type: TypeMessageImported, Timestamp: time.Now()})
	bus.Publish(Event{Type: TypeLeadCreated, Timestamp: time.Now()})

	if len(inboxEvents) != 1 {
		t.Errorf("inbox subscriber got %d events, want 1", len(inboxEvents))
	}
	if len(allEvents) != 2 {
		t.Errorf("wildcard subscriber got %d events, want 2", len(allEvents))
	}

	bus.Unsubscribe(id)
	bus.Publish(Event{Type: TypeMessageImported, Timestamp: time.Now()})
	if len(allEvents) != 2 {
		t.Error("unsubscribed handler still received events")
	}
}
