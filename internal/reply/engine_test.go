package reply

import (
	"strings"
	"testing"

	"github.com/socialops/agent/internal/storage"
	"github.com/socialops/agent/plugins/salons"
)

func TestDraftThenPersonalize(t *testing.T) {
	p := salons.New()

	draft := Draft(p, "prices", "en")
	if draft == "" {
		t.Fatal("draft is empty")
	}

	profile := &storage.WorkspaceProfile{BusinessName: "Lina's Salon", City: "Dubai"}
	out := Personalize(draft, profile)

	if !strings.Contains(out, "Lina's Salon") {
		t.Errorf("output missing business name: %q", out)
	}
	if !strings.Contains(out, "Dubai") {
		t.Errorf("output missing city: %q", out)
	}
	if strings.Contains(out, "{business_name}") || strings.Contains(out, "{city}") {
		t.Errorf("resolved tokens remain: %q", out)
	}
}

func TestDraftFallsBackToEnglishThenGeneric(t *testing.T) {
	p := salons.New()

	// Arabic has no reschedule templates; English does
	draft := Draft(p, "reschedule", "ar")
	if draft == "" {
		t.Fatal("draft is empty")
	}
	if draft == Fallback("ar") {
		t.Error("expected the english template, got the generic fallback")
	}

	// No templates anywhere for an unknown intent: generic per-language default
	draft = Draft(p, "unknown-intent", "ar")
	if draft != Fallback("ar") {
		t.Errorf("draft = %q, want arabic fallback", draft)
	}

	if Fallback("xx") != Fallback("en") {
		t.Error("unknown language should use the english fallback")
	}
}

func TestPersonalizeWithoutProfileIsUnchanged(t *testing.T) {
	body := "Visit {business_name} in {city} or call {phone}"
	if got := Personalize(body, nil); got != body {
		t.Errorf("Personalize(nil profile) = %q, want unchanged", got)
	}
}

func TestPersonalizeLeavesUnresolvedTokensVerbatim(t *testing.T) {
	profile := &storage.WorkspaceProfile{BusinessName: "Lina's Salon"} // no phone configured
	body := "Call {business_name} at {phone} or see {not_a_field}"

	got := Personalize(body, profile)
	want := "Call Lina's Salon at {phone} or see {not_a_field}"
	if got != want {
		t.Errorf("Personalize = %q, want %q", got, want)
	}
}

func TestComposeModes(t *testing.T) {
	if got := Append("Existing draft", "More text"); got != "Existing draft\n\nMore text" {
		t.Errorf("Append = %q", got)
	}
	if got := Append("", "Only text"); got != "Only text" {
		t.Errorf("Append to empty draft = %q", got)
	}
	if got := Replace("Existing draft", "New text"); got != "New text" {
		t.Errorf("Replace = %q", got)
	}
}
