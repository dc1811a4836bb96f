// Package inbox coordinates the unified-inbox flow: import batches into
// threads, route threads to vertical plugins, classify and extract, draft
// personalized replies and convert conversations into leads.
package inbox

import (
	"errors"
	"fmt"
	"time"

	"github.com/socialops/agent/internal/event"
	"github.com/socialops/agent/internal/plugin"
	"github.com/socialops/agent/internal/reply"
	"github.com/socialops/agent/internal/sla"
	"github.com/socialops/agent/internal/storage"
)

// Service ties the stores, the plugin registry and the reply engine together
type Service struct {
	registry *plugin.Registry
	bus      *event.Bus
}

// NewService creates an inbox service. The bus may be nil when no
// presentation layer is listening.
func NewService(registry *plugin.Registry, bus *event.Bus) *Service {
	return &Service{registry: registry, bus: bus}
}

// Analysis is the classification outcome for a thread's newest inbound message
type Analysis struct {
	ThreadID string            `json:"thread_id"`
	Plugin   string            `json:"plugin,omitempty"`
	Handled  bool              `json:"handled"`
	Intent   plugin.Result     `json:"intent"`
	Entities map[string]string `json:"entities"`
}

// ThreadView is a thread with its derived SLA status, for listing surfaces
type ThreadView struct {
	storage.Thread
	SLA sla.Status `json:"sla"`
}

// Import stores an inbound batch and publishes an event per inserted message
// and created thread
func (s *Service) Import(records []storage.InboundRecord) (*storage.ImportResult, error) {
	result, err := storage.ImportMessages(records)
	if err != nil {
		return nil, err
	}

	if s.bus != nil {
		for _, id := range result.CreatedThreads {
			s.bus.Publish(event.Event{
				Type:      event.TypeThreadCreated,
				ThreadID:  id,
				Timestamp: time.Now(),
			})
		}
		for _, msg := range result.Messages {
			s.bus.Publish(event.Event{
				Type:      event.TypeMessageImported,
				Platform:  msg.Platform,
				ThreadID:  msg.ThreadID,
				MessageID: msg.ID,
				Timestamp: time.Now(),
			})
		}
	}
	return result, nil
}

// ListThreads lists threads with their SLA status recomputed at read time
func (s *Service) ListThreads(platform, status string, now time.Time) ([]ThreadView, error) {
	threads, err := storage.ListThreads(platform, status)
	if err != nil {
		return nil, err
	}

	views := make([]ThreadView, 0, len(threads))
	for _, t := range threads {
		full, err := storage.GetThread(t.ID)
		if err != nil {
			return nil, err
		}
		views = append(views, ThreadView{Thread: *full, SLA: sla.ThreadStatus(full.Messages, now)})
	}
	return views, nil
}

// Analyze routes a thread to its platform plugin and classifies the newest
// inbound message. An unsupported platform yields an explicit unhandled
// result with a default intent, never an error.
func (s *Service) Analyze(threadID, lang string) (*Analysis, error) {
	thread, err := storage.GetThread(threadID)
	if err != nil {
		return nil, err
	}

	analysis := &Analysis{
		ThreadID: threadID,
		Intent:   plugin.Result{Intent: plugin.IntentGeneral, Tier: plugin.TierDefault},
		Entities: map[string]string{},
	}

	p, ok := s.registry.Route(thread.Platform)
	if !ok {
		return analysis, nil
	}
	analysis.Plugin = p.Name()
	analysis.Handled = true

	last := newestInbound(thread.Messages)
	if last == nil {
		return analysis, nil
	}
	if lang == "" {
		lang = messageLang(last)
	}

	analysis.Intent = p.Classify(last.Body, lang)
	analysis.Entities = p.Extract(last.Body, lang)
	return analysis, nil
}

// SuggestReply drafts a personalized reply for the thread's newest inbound
// message. The operator approves and sends it through an external surface.
func (s *Service) SuggestReply(threadID, lang string) (string, error) {
	analysis, err := s.Analyze(threadID, lang)
	if err != nil {
		return "", err
	}

	profile, err := storage.GetProfile()
	if err != nil {
		return "", err
	}
	if lang == "" {
		lang = profile.DefaultLanguage
	}

	draft := reply.Fallback(lang)
	if analysis.Handled {
		p, _ := s.registry.Get(analysis.Plugin)
		draft = reply.Draft(p, analysis.Intent.Intent, lang)
	}
	return reply.Personalize(draft, profile), nil
}

// ConvertToLead creates a lead from a thread, carrying over an extracted
// phone number and name. Converting the same thread twice returns the
// existing lead.
func (s *Service) ConvertToLead(threadID string) (string, error) {
	if existing, err := storage.GetLeadByThread(threadID); err == nil {
		return existing.ID, nil
	} else if !errors.Is(err, storage.ErrNotFound) {
		return "", err
	}

	analysis, err := s.Analyze(threadID, "")
	if err != nil {
		return "", fmt.Errorf("analyze thread: %w", err)
	}

	leadID, err := storage.CreateLead(storage.LeadFields{
		Name:  analysis.Entities["name"],
		Phone: analysis.Entities["phone"],
	}, threadID)
	if err != nil {
		return "", err
	}

	if s.bus != nil {
		s.bus.Publish(event.Event{
			Type:      event.TypeLeadCreated,
			ThreadID:  threadID,
			LeadID:    leadID,
			Timestamp: time.Now(),
		})
	}
	return leadID, nil
}

func newestInbound(messages []storage.Message) *storage.Message {
	var last *storage.Message
	for i := range messages {
		if messages[i].Direction != storage.DirectionIn {
			continue
		}
		if last == nil || messages[i].ReceivedAt.After(last.ReceivedAt) {
			last = &messages[i]
		}
	}
	return last
}

func messageLang(msg *storage.Message) string {
	if msg.Language != "" {
		return msg.Language
	}
	return "en"
}
