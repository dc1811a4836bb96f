package salons

import (
	"regexp"
	"strings"

	"github.com/socialops/agent/internal/plugin"
)

// Classification rules per language, evaluated top to bottom. Exact phrases
// come before keywords; reordering changes classification outcomes.
var rules = map[string][]plugin.Rule{
	"en": {
		{ID: "en-booking-x1", Phrase: "book an appointment", Intent: "booking", Tier: plugin.TierExact},
		{ID: "en-booking-x2", Phrase: "book me", Intent: "booking", Tier: plugin.TierExact},
		{ID: "en-prices-x1", Phrase: "how much", Intent: "prices", Tier: plugin.TierExact},
		{ID: "en-prices-x2", Phrase: "price list", Intent: "prices", Tier: plugin.TierExact},
		{ID: "en-hours-x1", Phrase: "what are your hours", Intent: "hours", Tier: plugin.TierExact},
		{ID: "en-location-x1", Phrase: "where are you located", Intent: "location", Tier: plugin.TierExact},
		{ID: "en-services-x1", Phrase: "what services", Intent: "services", Tier: plugin.TierExact},
		{ID: "en-cancel-x1", Phrase: "cancellation policy", Intent: "cancellation", Tier: plugin.TierExact},

		{ID: "en-resched-k1", Phrase: "reschedule", Intent: "reschedule", Tier: plugin.TierKeyword},
		{ID: "en-cancel-k1", Phrase: "cancel", Intent: "cancellation", Tier: plugin.TierKeyword},
		{ID: "en-cancel-k2", Phrase: "refund", Intent: "cancellation", Tier: plugin.TierKeyword},
		{ID: "en-booking-k1", Phrase: "appointment", Intent: "booking", Tier: plugin.TierKeyword},
		{ID: "en-booking-k2", Phrase: "book", Intent: "booking", Tier: plugin.TierKeyword},
		{ID: "en-booking-k3", Phrase: "reserve", Intent: "booking", Tier: plugin.TierKeyword},
		{ID: "en-prices-k1", Phrase: "price", Intent: "prices", Tier: plugin.TierKeyword},
		{ID: "en-prices-k2", Phrase: "cost", Intent: "prices", Tier: plugin.TierKeyword},
		{ID: "en-prices-k3", Phrase: "rates", Intent: "prices", Tier: plugin.TierKeyword},
		{ID: "en-location-k1", Phrase: "location", Intent: "location", Tier: plugin.TierKeyword},
		{ID: "en-location-k2", Phrase: "address", Intent: "location", Tier: plugin.TierKeyword},
		{ID: "en-location-k3", Phrase: "directions", Intent: "location", Tier: plugin.TierKeyword},
		{ID: "en-hours-k1", Phrase: "hours", Intent: "hours", Tier: plugin.TierKeyword},
		{ID: "en-hours-k2", Phrase: "open", Intent: "hours", Tier: plugin.TierKeyword},
		{ID: "en-hours-k3", Phrase: "closing", Intent: "hours", Tier: plugin.TierKeyword},
		{ID: "en-services-k1", Phrase: "services", Intent: "services", Tier: plugin.TierKeyword},
		{ID: "en-services-k2", Phrase: "offer", Intent: "services", Tier: plugin.TierKeyword},
		{ID: "en-complaint-k1", Phrase: "complaint", Intent: "complaint", Tier: plugin.TierKeyword},
		{ID: "en-complaint-k2", Phrase: "unhappy", Intent: "complaint", Tier: plugin.TierKeyword},
		{ID: "en-complaint-k3", Phrase: "problem", Intent: "complaint", Tier: plugin.TierKeyword},
		{ID: "en-confirm-k1", Phrase: "confirm", Intent: "confirmation", Tier: plugin.TierKeyword},
		{ID: "en-upsell-k1", Phrase: "add", Intent: "upsell", Tier: plugin.TierKeyword},
		{ID: "en-upsell-k2", Phrase: "upgrade", Intent: "upsell", Tier: plugin.TierKeyword},
	},
	"ar": {
		{ID: "ar-booking-x1", Phrase: "حجز موعد", Intent: "booking", Tier: plugin.TierExact},
		{ID: "ar-prices-x1", Phrase: "كم السعر", Intent: "prices", Tier: plugin.TierExact},

		{ID: "ar-resched-k1", Phrase: "تأجيل", Intent: "reschedule", Tier: plugin.TierKeyword},
		{ID: "ar-cancel-k1", Phrase: "إلغاء", Intent: "cancellation", Tier: plugin.TierKeyword},
		{ID: "ar-booking-k1", Phrase: "حجز", Intent: "booking", Tier: plugin.TierKeyword},
		{ID: "ar-booking-k2", Phrase: "موعد", Intent: "booking", Tier: plugin.TierKeyword},
		{ID: "ar-prices-k1", Phrase: "سعر", Intent: "prices", Tier: plugin.TierKeyword},
		{ID: "ar-prices-k2", Phrase: "بكم", Intent: "prices", Tier: plugin.TierKeyword},
		{ID: "ar-prices-k3", Phrase: "تكلفة", Intent: "prices", Tier: plugin.TierKeyword},
		{ID: "ar-location-k1", Phrase: "موقع", Intent: "location", Tier: plugin.TierKeyword},
		{ID: "ar-location-k2", Phrase: "عنوان", Intent: "location", Tier: plugin.TierKeyword},
		{ID: "ar-hours-k1", Phrase: "ساعات", Intent: "hours", Tier: plugin.TierKeyword},
		{ID: "ar-hours-k2", Phrase: "مفتوح", Intent: "hours", Tier: plugin.TierKeyword},
		{ID: "ar-services-k1", Phrase: "خدمات", Intent: "services", Tier: plugin.TierKeyword},
		{ID: "ar-complaint-k1", Phrase: "شكوى", Intent: "complaint", Tier: plugin.TierKeyword},
		{ID: "ar-complaint-k2", Phrase: "مشكلة", Intent: "complaint", Tier: plugin.TierKeyword},
		{ID: "ar-confirm-k1", Phrase: "تأكيد", Intent: "confirmation", Tier: plugin.TierKeyword},
	},
}

var (
	phonePattern = regexp.MustCompile(`\+?\d[\d\s-]{6,}\d`)
	timePattern  = regexp.MustCompile(`\d{1,2}:\d{2}|\d{1,2}\s*(am|pm)`)
	namePattern  = regexp.MustCompile(`(?i)(?:my name is|i'm|i am)\s+(\w+)`)
	nameArabic   = regexp.MustCompile(`(?:اسمي|أنا)\s+(\p{Arabic}+)`)
)

var dayWords = map[string]map[string]string{
	"en": {
		"monday": "monday", "tuesday": "tuesday", "wednesday": "wednesday",
		"thursday": "thursday", "friday": "friday", "saturday": "saturday",
		"sunday": "sunday", "today": "today", "tomorrow": "tomorrow",
	},
	"ar": {
		"السبت": "saturday", "الأحد": "sunday", "الاثنين": "monday",
		"الثلاثاء": "tuesday", "الأربعاء": "wednesday", "الخميس": "thursday",
		"الجمعة": "friday", "اليوم": "today", "غدا": "tomorrow",
	},
}

var serviceWords = map[string][]string{
	"en": {"hair", "makeup", "nails", "color", "cut", "style", "bridal"},
	"ar": {"شعر", "مكياج", "أظافر", "صبغة", "قص", "عروس"},
}

// extractEntities pulls structured fields out of a message body. It never
// fails: nothing found means an empty map.
func extractEntities(text, lang string) map[string]string {
	entities := make(map[string]string)
	lower := strings.ToLower(text)

	if m := phonePattern.FindString(text); m != "" {
		entities["phone"] = strings.TrimSpace(m)
	}
	if m := timePattern.FindString(lower); m != "" {
		entities["time"] = m
	}

	for word, day := range dayWords[lang] {
		if strings.Contains(lower, word) {
			entities["day"] = day
			break
		}
	}
	for _, word := range serviceWords[lang] {
		if strings.Contains(lower, word) {
			entities["service"] = word
			break
		}
	}

	// Names keep the sender's capitalization, so match the original text
	pattern := namePattern
	if lang == "ar" {
		pattern = nameArabic
	}
	if m := pattern.FindStringSubmatch(text); m != nil {
		entities["name"] = m[1]
	}

	return entities
}
