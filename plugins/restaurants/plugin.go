// Package restaurants implements the restaurant vertical: reservations,
// menu and delivery inquiries in English and Arabic.
package restaurants

import (
	"regexp"
	"strings"

	"github.com/socialops/agent/internal/plugin"
)

var rules = map[string][]plugin.Rule{
	"en": {
		{ID: "en-reservation-x1", Phrase: "book a table", Intent: "reservation", Tier: plugin.TierExact},
		{ID: "en-reservation-x2", Phrase: "reserve a table", Intent: "reservation", Tier: plugin.TierExact},
		{ID: "en-prices-x1", Phrase: "how much", Intent: "prices", Tier: plugin.TierExact},
		{ID: "en-delivery-x1", Phrase: "do you deliver", Intent: "delivery", Tier: plugin.TierExact},

		{ID: "en-reservation-k1", Phrase: "reservation", Intent: "reservation", Tier: plugin.TierKeyword},
		{ID: "en-reservation-k2", Phrase: "table", Intent: "reservation", Tier: plugin.TierKeyword},
		{ID: "en-menu-k1", Phrase: "menu", Intent: "menu", Tier: plugin.TierKeyword},
		{ID: "en-delivery-k1", Phrase: "delivery", Intent: "delivery", Tier: plugin.TierKeyword},
		{ID: "en-delivery-k2", Phrase: "takeaway", Intent: "delivery", Tier: plugin.TierKeyword},
		{ID: "en-prices-k1", Phrase: "price", Intent: "prices", Tier: plugin.TierKeyword},
		{ID: "en-prices-k2", Phrase: "cost", Intent: "prices", Tier: plugin.TierKeyword},
		{ID: "en-hours-k1", Phrase: "hours", Intent: "hours", Tier: plugin.TierKeyword},
		{ID: "en-hours-k2", Phrase: "open", Intent: "hours", Tier: plugin.TierKeyword},
		{ID: "en-location-k1", Phrase: "location", Intent: "location", Tier: plugin.TierKeyword},
		{ID: "en-location-k2", Phrase: "address", Intent: "location", Tier: plugin.TierKeyword},
		{ID: "en-complaint-k1", Phrase: "complaint", Intent: "complaint", Tier: plugin.TierKeyword},
		{ID: "en-complaint-k2", Phrase: "cold food", Intent: "complaint", Tier: plugin.TierKeyword},
	},
	"ar": {
		{ID: "ar-reservation-x1", Phrase: "حجز طاولة", Intent: "reservation", Tier: plugin.TierExact},

		{ID: "ar-reservation-k1", Phrase: "حجز", Intent: "reservation", Tier: plugin.TierKeyword},
		{ID: "ar-reservation-k2", Phrase: "طاولة", Intent: "reservation", Tier: plugin.TierKeyword},
		{ID: "ar-menu-k1", Phrase: "قائمة", Intent: "menu", Tier: plugin.TierKeyword},
		{ID: "ar-menu-k2", Phrase: "منيو", Intent: "menu", Tier: plugin.TierKeyword},
		{ID: "ar-delivery-k1", Phrase: "توصيل", Intent: "delivery", Tier: plugin.TierKeyword},
		{ID: "ar-prices-k1", Phrase: "سعر", Intent: "prices", Tier: plugin.TierKeyword},
		{ID: "ar-hours-k1", Phrase: "مفتوح", Intent: "hours", Tier: plugin.TierKeyword},
		{ID: "ar-location-k1", Phrase: "موقع", Intent: "location", Tier: plugin.TierKeyword},
		{ID: "ar-complaint-k1", Phrase: "شكوى", Intent: "complaint", Tier: plugin.TierKeyword},
	},
}

var templates = map[string]map[string][]string{
	"en": {
		"reservation": {
			"Thanks for choosing {business_name}! How many guests and what date and time would you like?",
			"We'd love to host you. You can also reserve directly here: {booking_link}. For how many people?",
		},
		"menu": {
			"You can browse our full menu here: {booking_link}. Anything in particular you're craving?",
			"Our menu covers starters, mains, grills and desserts. Would you like a recommendation?",
		},
		"prices": {
			"Thanks for asking! Prices at {business_name} in {city} vary by dish, mains start at a modest range. Which dish interests you?",
		},
		"hours": {
			"We're open {hours}. When would you like to visit?",
		},
		"location": {
			"Find us in {city}: {location_link}. See you soon!",
		},
		"delivery": {
			"Yes, we deliver! Share your area and I'll confirm timing. You can also order via {booking_link}.",
		},
		"complaint": {
			"I'm very sorry to hear that, this is not the experience we want at {business_name}. I'm escalating to our manager, could you share the details?",
		},
	},
	"ar": {
		"reservation": {
			"شكراً لاختيارك {business_name}! كم عدد الضيوف وما التاريخ والوقت المناسب؟",
		},
		"menu": {
			"يمكنك تصفح القائمة كاملة هنا: {booking_link}. هل تبحث عن طبق معين؟",
		},
		"hours": {
			"نحن مفتوحون {hours}. متى تود الزيارة؟",
		},
		"delivery": {
			"نعم، نوفر التوصيل! شارك منطقتك وسأؤكد لك الوقت.",
		},
	},
}

var (
	phonePattern = regexp.MustCompile(`\+?\d[\d\s-]{6,}\d`)
	guestPattern = regexp.MustCompile(`(\d{1,2})\s*(?:people|persons|guests|pax)`)
	timePattern  = regexp.MustCompile(`\d{1,2}:\d{2}|\d{1,2}\s*(am|pm)`)
)

// Plugin handles restaurant conversations on WhatsApp and Facebook
type Plugin struct{}

// New creates the restaurants plugin
func New() *Plugin {
	return &Plugin{}
}

func (p *Plugin) Name() string {
	return "restaurants"
}

func (p *Plugin) SupportedPlatforms() []string {
	return []string{"whatsapp", "facebook"}
}

func (p *Plugin) Classify(text, lang string) plugin.Result {
	langRules, ok := rules[lang]
	if !ok {
		langRules = rules["en"]
	}
	return plugin.Classify(langRules, text)
}

func (p *Plugin) Extract(text, lang string) map[string]string {
	entities := make(map[string]string)
	lower := strings.ToLower(text)

	if m := phonePattern.FindString(text); m != "" {
		entities["phone"] = strings.TrimSpace(m)
	}
	if m := guestPattern.FindStringSubmatch(lower); m != nil {
		entities["guests"] = m[1]
	}
	if m := timePattern.FindString(lower); m != "" {
		entities["time"] = m
	}
	return entities
}

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
