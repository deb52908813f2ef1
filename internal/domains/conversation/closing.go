// Package conversation holds the multi-turn assistant conversation.
package conversation

import "strings"

var closingPhrases = []string{
	"goodbye",
	"good bye",
	"bye",
	"bye bye",
	"that's all",
	"that is all",
	"that's it",
	"that is it",
	"no thanks",
	"no thank you",
	"nothing else",
	"i'm done",
	"i am done",
	"have a good day",
	"have a nice day",
	"see you",
}

// IsClosing reports whether the caller's utterance ends the conversation.
func IsClosing(utterance string) bool {
	text := strings.TrimRight(strings.ToLower(strings.TrimSpace(utterance)), ".!?")
	text = strings.TrimSpace(text)

	if text == "no" || text == "nope" {
		return true
	}

	for _, phrase := range closingPhrases {
		if text == phrase || strings.HasPrefix(text, phrase+" ") || strings.HasSuffix(text, " "+phrase) {
			return true
		}
	}

	return false
}
