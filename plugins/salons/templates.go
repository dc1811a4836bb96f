package salons

// Reply template candidates per language and intent. Bodies carry
// {placeholder} tokens resolved against the workspace profile at draft time.
var templates = map[string]map[string][]string{
	"en": {
		"booking": {
			"Thanks for reaching out to {business_name}! I'd love to help you book an appointment. Could you share your preferred date and time?",
			"Great! To book your appointment I'll need the service, your preferred date and your preferred time. You can also book directly here: {booking_link}",
		},
		"prices": {
			"Thanks for asking about pricing at {business_name} in {city}! Our services range by treatment. Which service interests you?",
			"Happy to share prices! Hair styling, makeup and nails each have their own packages at {business_name}. Tell me which treatment you have in mind and I'll send the details.",
		},
		"location": {
			"You can find us here: {location_link}. We're in {city} with parking available. Looking forward to seeing you!",
			"We're located in {city}, map link: {location_link}. For directions call us at {phone}.",
		},
		"hours": {
			"Our opening hours are: {hours}. Which day works for you?",
			"Thanks for asking! We're open {hours}. Is there a specific time that suits you?",
		},
		"services": {
			"{business_name} offers hair styling and coloring, professional makeup, nail care and bridal packages. What interests you?",
			"Our services cover hair, makeup, nails and special-occasion packages. Which one would you like to know more about?",
		},
		"reschedule": {
			"No problem! To reschedule, could you share your current appointment date and the new time you'd prefer?",
			"Of course, we can move your appointment. What new date and time work better for you?",
		},
		"cancellation": {
			"We understand plans change. Cancellation is free up to 24 hours before your appointment; within 24 hours a 50% fee applies. Would you prefer to reschedule instead?",
			"Free cancellation with 24+ hours notice, 50% fee within 24 hours. Rescheduling is always free. What would you prefer?",
		},
		"complaint": {
			"I'm really sorry about your experience, this is not the standard we aim for at {business_name}. Could you share more details so I can escalate this to our manager right away?",
			"My sincere apologies. I'm escalating your concern to our manager, who will contact you directly at {phone}. Thank you for letting us know.",
		},
		"confirmation": {
			"Perfect, your appointment is confirmed! We'll send a reminder a day ahead. See you at {business_name}!",
			"All set, booking confirmed. Please arrive five minutes early. Looking forward to it!",
		},
		"upsell": {
			"Would you like to enhance your visit? Popular add-ons: deep conditioning, a quick makeup touch-up or a manicure. Interested?",
			"Many clients add a second service for a discount. Popular picks: nails, makeup, hair treatment. Shall I add one?",
		},
	},
	"ar": {
		"booking": {
			"شكراً لتواصلك مع {business_name}! يسعدني مساعدتك في حجز موعد. ما التاريخ والوقت المفضل لك؟",
			"رائع! يمكنك الحجز مباشرة هنا: {booking_link} أو أخبريني بالخدمة والتاريخ والوقت المفضل.",
		},
		"prices": {
			"شكراً لسؤالك عن أسعار {business_name} في {city}! الأسعار تختلف حسب الخدمة. أي خدمة تهمك؟",
		},
		"location": {
			"موقعنا في {city}، رابط الخريطة: {location_link}. للاتجاهات اتصلي بنا على {phone}.",
		},
		"hours": {
			"ساعات عملنا: {hours}. أي يوم يناسبك؟",
		},
		"services": {
			"يقدم {business_name} خدمات الشعر والمكياج والأظافر وباقات العرائس. ماذا يهمك؟",
		},
		"complaint": {
			"أعتذر بشدة عن تجربتك، هذا لا يعكس مستوى خدمتنا في {business_name}. سأحيل الأمر إلى المدير فوراً. هل يمكنك مشاركة التفاصيل؟",
		},
	},
}
