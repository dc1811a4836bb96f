// Package salons implements the beauty-salon vertical: booking-centric
// intents with English and Arabic rules and templates.
package salons

import (
	"github.com/socialops/agent/internal/plugin"
)

// Plugin handles salon conversations on Instagram, Facebook and WhatsApp
type Plugin struct{}

// New creates the salons plugin
func New() *Plugin {
	return &Plugin{}
}

// Name is the unique registry key
func (p *Plugin) Name() string {
	return "salons"
}

// SupportedPlatforms lists the platforms this plugin handles
func (p *Plugin) SupportedPlatforms() []string {
	return []string{"instagram", "facebook", "whatsapp"}
}

// Classify determines message intent via the ordered rule list for the
// language, falling back to the English rules for unknown languages.
func (p *Plugin) Classify(text, lang string) plugin.Result {
	langRules, ok := rules[lang]
	if !ok {
		langRules = rules["en"]
	}
	return plugin.Classify(langRules, text)
}

// Extract pulls phone, day, time, service and name entities
func (p *Plugin) Extract(text, lang string) map[string]string {
	if _, ok := dayWords[lang]; !ok {
		lang = "en"
	}
	return extractEntities(text, lang)
}

// Templates returns the candidate reply bodies for an intent in a language
func (p *Plugin) Templates(lang, intent string) []string {
	langTemplates, ok := templates[lang]
	if !ok {
		return nil
	}
	candidates := langTemplates[intent]
	out := make([]string, len(candidates))
	copy(out, candidates)
	return out
}
