package inbox

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/socialops/agent/internal/event"
	"github.com/socialops/agent/internal/plugin"
	"github.com/socialops/agent/internal/sla"
	"github.com/socialops/agent/internal/storage"
	"github.com/socialops/agent/plugins/restaurants"
	"github.com/socialops/agent/plugins/salons"
)

func newTestService(t *testing.T) (*Service, *event.Bus) {
	t.Helper()
	require.NoError(t, storage.Init(filepath.Join(t.TempDir(), "test.db")))

	registry := plugin.NewRegistry()
	require.NoError(t, registry.Register(salons.New()))
	require.NoError(t, registry.Register(restaurants.New()))

	bus := event.NewBus()
	return NewService(registry, bus), bus
}

func TestImportPublishesEvents(t *testing.T) {
	svc, bus := newTestService(t)

	var got []event.Event
	bus.Subscribe([]string{"inbox.*"}, func(e event.Event) { got = append(got, e) })

	result, err := svc.Import([]storage.InboundRecord{
		{SenderID: "u1", Platform: "instagram", Body: "hi", ReceivedAt: time.Now()},
		{SenderID: "u1", Platform: "instagram", Body: "how much?", ReceivedAt: time.Now().Add(time.Minute)},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Inserted)

	// One thread-created event plus one per imported message
	require.Len(t, got, 3)
	assert.Equal(t, event.TypeThreadCreated, got[0].Type)
	assert.Equal(t, event.TypeMessageImported, got[1].Type)
	assert.Equal(t, result.Messages[0].ThreadID, got[0].ThreadID)
}

func TestAnalyzeClassifiesNewestInbound(t *testing.T) {
	svc, _ := newTestService(t)

	base := time.Date(2026, 8, 19, 10, 0, 0, 0, time.UTC)
	result, err := svc.Import([]storage.InboundRecord{
		{SenderID: "u1", Platform: "instagram", Body: "hi", ReceivedAt: base},
		{SenderID: "u1", Platform: "instagram", Body: "thanks!", Direction: storage.DirectionOut, ReceivedAt: base.Add(time.Minute)},
		{SenderID: "u1", Platform: "instagram", Body: "how much is makeup? my name is Sarah", ReceivedAt: base.Add(2 * time.Minute)},
	})
	require.NoError(t, err)
	threadID := result.Messages[0].ThreadID

	analysis, err := svc.Analyze(threadID, "en")
	require.NoError(t, err)
	assert.True(t, analysis.Handled)
	assert.Equal(t, "salons", analysis.Plugin)
	assert.Equal(t, "prices", analysis.Intent.Intent)
	assert.Equal(t, "Sarah", analysis.Entities["name"])
}

func TestAnalyzeUnhandledPlatform(t *testing.T) {
	svc, _ := newTestService(t)

	result, err := svc.Import([]storage.InboundRecord{
		{SenderID: "u1", Platform: "telegram", Body: "how much?", ReceivedAt: time.Now()},
	})
	require.NoError(t, err)

	analysis, err := svc.Analyze(result.Messages[0].ThreadID, "en")
	require.NoError(t, err)
	assert.False(t, analysis.Handled)
	assert.Equal(t, plugin.IntentGeneral, analysis.Intent.Intent)
	assert.Empty(t, analysis.Entities)
}

func TestSuggestReplyIsPersonalized(t *testing.T) {
	svc, _ := newTestService(t)

	profile, err := storage.GetProfile()
	require.NoError(t, err)
	profile.BusinessName = "Lina's Salon"
	profile.City = "Dubai"
	require.NoError(t, storage.SaveProfile(profile))

	result, err := svc.Import([]storage.InboundRecord{
		{SenderID: "u1", Platform: "instagram", Body: "how much is a haircut?", ReceivedAt: time.Now()},
	})
	require.NoError(t, err)

	draft, err := svc.SuggestReply(result.Messages[0].ThreadID, "en")
	require.NoError(t, err)
	assert.Contains(t, draft, "Lina's Salon")
	assert.Contains(t, draft, "Dubai")
	assert.NotContains(t, draft, "{business_name}")
}

func TestSuggestReplyUnknownThread(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.SuggestReply("missing", "en")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestConvertToLeadIsIdempotent(t *testing.T) {
	svc, bus := newTestService(t)

	var leadEvents int
	bus.Subscribe([]string{"crm.*"}, func(event.Event) { leadEvents++ })

	result, err := svc.Import([]storage.InboundRecord{
		{SenderID: "u1", Platform: "whatsapp", Body: "my name is Sarah, call +971501234567", ReceivedAt: time.Now()},
	})
	require.NoError(t, err)
	threadID := result.Messages[0].ThreadID

	leadID, err := svc.ConvertToLead(threadID)
	require.NoError(t, err)

	lead, err := storage.GetLead(leadID)
	require.NoError(t, err)
	assert.Equal(t, "Sarah", lead.Name)
	assert.Contains(t, lead.Notes, "+971501234567")

	again, err := svc.ConvertToLead(threadID)
	require.NoError(t, err)
	assert.Equal(t, leadID, again)
	assert.Equal(t, 1, leadEvents)
}

func TestListThreadsCarriesSLA(t *testing.T) {
	svc, _ := newTestService(t)

	now := time.Now()
	_, err := svc.Import([]storage.InboundRecord{
		{SenderID: "stale", Platform: "instagram", Body: "anyone there?", ReceivedAt: now.Add(-5 * time.Hour)},
		{SenderID: "fresh", Platform: "instagram", Body: "hi", ReceivedAt: now.Add(-time.Minute)},
	})
	require.NoError(t, err)

	views, err := svc.ListThreads("", "", now)
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.Equal(t, "fresh", views[0].SenderID)
	assert.Equal(t, sla.StatusOK, views[0].SLA)
	assert.Equal(t, "stale", views[1].SenderID)
	assert.Equal(t, sla.StatusWarning, views[1].SLA)
}
