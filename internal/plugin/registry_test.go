package plugin

import (
	"errors"
	"testing"
)

type fakePlugin struct {
	name      string
	platforms []string
}

func (f *fakePlugin) Name() string                 { return f.name }
func (f *fakePlugin) SupportedPlatforms() []string { return f.platforms }
func (f *fakePlugin) Classify(text, lang string) Result {
	return Result{Intent: IntentGeneral, Tier: TierDefault}
}
func (f *fakePlugin) Extract(text, lang string) map[string]string { return map[string]string{} }
func (f *fakePlugin) Templates(lang, intent string) []string      { return nil }

func TestRegisterDuplicateName(t *testing.T) {
	r := NewRegistry()

	if err := r.Register(&fakePlugin{name: "salons", platforms: []string{"instagram"}}); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}

	err := r.Register(&fakePlugin{name: "salons", platforms: []string{"facebook"}})
	if !errors.Is(err, ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}

	// The failed registration must not replace the original
	p, ok := r.Get("salons")
	if !ok || p.SupportedPlatforms()[0] != "instagram" {
		t.Error("original plugin was replaced by conflicting registration")
	}
}

func TestRouteByPlatform(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(&fakePlugin{name: "salons", platforms: []string{"instagram", "whatsapp"}}); err != nil {
		t.Fatal(err)
	}
	if err := r.Register(&fakePlugin{name: "restaurants", platforms: []string{"whatsapp"}}); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		platform string
		want     string
		handled  bool
	}{
		{"instagram", "salons", true},
		{"whatsapp", "salons", true}, // first registered wins
		{"telegram", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.platform, func(t *testing.T) {
			p, ok := r.Route(tt.platform)
			if ok != tt.handled {
				t.Fatalf("Route(%q) handled = %v, want %v", tt.platform, ok, tt.handled)
			}
			if ok && p.Name() != tt.want {
				t.Errorf("Route(%q) = %q, want %q", tt.platform, p.Name(), tt.want)
			}
		})
	}
}

func TestClassifyFirstMatchWins(t *testing.T) {
	rules := []Rule{
		{ID: "x1", Phrase: "how much", Intent: "prices", Tier: TierExact},
		{ID: "k1", Phrase: "book", Intent: "booking", Tier: TierKeyword},
		{ID: "k2", Phrase: "much", Intent: "other", Tier: TierKeyword},
	}

	// "how much" matches both x1 and k2; x1 is first so it wins
	got := Classify(rules, "How much to book a slot?")
	if got.Intent != "prices" || got.Tier != TierExact || got.RuleID != "x1" {
		t.Errorf("Classify = %+v, want prices/exact/x1", got)
	}

	// Reordered rules change the outcome, order is load-bearing
	reordered := []Rule{rules[1], rules[0], rules[2]}
	got = Classify(reordered, "How much to book a slot?")
	if got.Intent != "booking" {
		t.Errorf("Classify with reordered rules = %+v, want booking", got)
	}
}

func TestClassifyDefaultsToGeneral(t *testing.T) {
	got := Classify([]Rule{{ID: "k1", Phrase: "book", Intent: "booking", Tier: TierKeyword}}, "hello there")
	if got.Intent != IntentGeneral || got.Tier != TierDefault || got.RuleID != "" {
		t.Errorf("Classify = %+v, want general/default", got)
	}
}
