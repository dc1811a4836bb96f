// Package reply drafts candidate replies from plugin templates and
// personalizes them from the workspace profile. Drafting never returns an
// empty body and personalization never fails on missing profile data, both
// run inline while an operator is composing.
package reply

import (
	"strings"

	"github.com/socialops/agent/internal/plugin"
	"github.com/socialops/agent/internal/storage"
)

// Built-in generic defaults used when a plugin has no template for an intent
var fallbacks = map[string]string{
	"en": "Thank you for your message! We'll get back to you shortly.",
	"ar": "شكراً على رسالتك! سنرد عليك قريباً.",
}

// Fallback returns the built-in generic reply for a language
func Fallback(lang string) string {
	if body, ok := fallbacks[lang]; ok {
		return body
	}
	return fallbacks["en"]
}

// Draft selects a candidate reply body for (plugin, intent, language).
// Selection order: first candidate for the requested language, first English
// candidate, built-in generic default. The result is never empty.
func Draft(p plugin.Plugin, intent, lang string) string {
	if candidates := p.Templates(lang, intent); len(candidates) > 0 {
		return candidates[0]
	}
	if lang != "en" {
		if candidates := p.Templates("en", intent); len(candidates) > 0 {
			return candidates[0]
		}
	}
	return Fallback(lang)
}

// Personalize replaces {field} tokens with non-empty workspace profile
// fields. Unresolved tokens are left verbatim so a partially configured
// workspace cannot corrupt outgoing text. A nil profile returns the body
// unchanged.
func Personalize(body string, profile *storage.WorkspaceProfile) string {
	if profile == nil {
		return body
	}

	fields := map[string]string{
		"business_name": profile.BusinessName,
		"business_type": profile.BusinessType,
		"city":          profile.City,
		"phone":         profile.Phone,
		"hours":         profile.Hours,
		"booking_link":  profile.BookingLink,
		"location_link": profile.LocationLink,
		"brand_tone":    profile.BrandTone,
	}

	result := body
	for token, value := range fields {
		if value == "" {
			continue
		}
		result = strings.ReplaceAll(result, "{"+token+"}", value)
	}
	return result
}

// Append composes a draft with personalized text appended on a blank line
func Append(draft, personalized string) string {
	if strings.TrimSpace(draft) == "" {
		return personalized
	}
	return strings.TrimRight(draft, "\n") + "\n\n" + personalized
}

// Replace composes by discarding the draft in favor of the personalized text
func Replace(draft, personalized string) string {
	return personalized
}
