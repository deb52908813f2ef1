// Package topic decides whether an utterance belongs to the equipment rental domain.
package topic

import "strings"

// keywords are matched as lower-case substrings, so short words that occur inside unrelated
// words ("hi" in "history") are left out.
var keywords = []string{
	// equipment
	"equipment", "cotton", "candy", "machine", "cargo", "carrier", "rooftop", "roof", "box",
	"luggage", "party", "event", "trip",
	// rental
	"rent", "reserv", "book", "hire", "borrow", "available", "availability", "price", "pricing",
	"cost", "rate", "fee", "deposit", "charge", "pay", "dollar", "$", "cheap", "afford",
	"deliver", "pick up", "pickup", "drop off", "return", "cancel", "policy", "insurance",
	"damage", "catalog", "offer", "item", "stock", "inventory",
	// questions
	"what", "how", "when", "where", "which", "can i", "do you", "is it", "are there", "need",
	"want", "looking for", "help",
	// greetings and closings
	"hello", "hey", "good morning", "good afternoon", "good evening", "thank", "bye",
	"goodbye", "that's all", "that is all", "yes", "yeah", "sure", "okay",
	// dates
	"today", "tomorrow", "tonight", "weekend", "week", "month", "day", "date",
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
	"january", "february", "march", "april", "may", "june", "july", "august",
	"september", "october", "november", "december",
	// contact details
	"name", "email", "phone", "@",
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
}

// Validate reports whether the utterance is plausibly about equipment rental.
func Validate(utterance string) bool {
	text := strings.ToLower(strings.TrimSpace(utterance))
	if text == "" {
		return false
	}

	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}

	return false
}
