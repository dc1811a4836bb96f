package plugin

import (
	"strings"
)

// Confidence tiers for rule-based classification, strongest first
type Tier string

const (
	TierExact   Tier = "exact"   // full-phrase match
	TierKeyword Tier = "keyword" // single keyword match
	TierDefault Tier = "default" // no rule matched
)

// IntentGeneral is the fallback intent when no rule matches
const IntentGeneral = "general"

// Result is the outcome of classifying one message
type Result struct {
	Intent string `json:"intent"`
	Tier   Tier   `json:"tier"`
	RuleID string `json:"rule_id,omitempty"`
}

// Rule is one ordered classification rule. The first rule whose phrase
// appears in the message body wins, so rule order is significant: exact
// phrases are listed before keywords.
type Rule struct {
	ID     string
	Phrase string
	Intent string
	Tier   Tier
}

// Classify evaluates an ordered rule list against a message body.
// It never fails: no match degrades to a low-confidence general intent.
func Classify(rules []Rule, text string) Result {
	lower := strings.ToLower(text)
	for _, rule := range rules {
		if strings.Contains(lower, strings.ToLower(rule.Phrase)) {
			return Result{Intent: rule.Intent, Tier: rule.Tier, RuleID: rule.ID}
		}
	}
	return Result{Intent: IntentGeneral, Tier: TierDefault}
}

// Plugin is a vertical-specific strategy providing classification rules,
// entity extraction and reply templates. Implementations must be safe for
// concurrent use and must never return errors from Classify or Extract:
// both run inline during ingestion and degrade to empty results instead.
type Plugin interface {
	// Name is the unique registry key
	Name() string

	// SupportedPlatforms lists the platforms this plugin handles
	SupportedPlatforms() []string

	// Classify determines the intent of a message body
	Classify(text, lang string) Result

	// Extract pulls structured entities (phone, day, time, ...) from a
	// message body. Returns an empty map when nothing is found.
	Extract(text, lang string) map[string]string

	// Templates returns the ordered candidate reply bodies for an intent
	// in a language. May be empty; the reply engine supplies fallbacks.
	Templates(lang, intent string) []string
}
