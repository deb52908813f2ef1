package assistant

import (
	"strings"

	"github.com/aws/aws-lambda-go/events"
)

const (
	StateFulfilled  = "Fulfilled"
	StateInProgress = "InProgress"
	StateFailed     = "Failed"

	DialogActionClose        = "Close"
	DialogActionElicitIntent = "ElicitIntent"

	ContentTypePlainText = "PlainText"
	ContentTypeSSML      = "SSML"

	DefaultIntentName = "RentalQueryIntent"

	telephonyResponseKey = "response_text"
)

type LexMessage struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

type LexResponse struct {
	SessionState LexSessionState `json:"sessionState"`
	Messages     []LexMessage    `json:"messages"`
}

// FormatLex builds the Lex V2 code hook response. The dialog closes unless the state is
// InProgress, in which case Lex waits for the next utterance.
func FormatLex(text, state, intentName string, attrs map[string]string) LexResponse {
	if intentName == "" {
		intentName = DefaultIntentName
	}

	if attrs == nil {
		attrs = map[string]string{}
	}

	action := DialogActionClose
	if state == StateInProgress {
		action = DialogActionElicitIntent
	}

	return LexResponse{
		SessionState: LexSessionState{
			DialogAction:      &LexDialogAction{Type: action},
			Intent:            &LexIntent{Name: intentName, State: state},
			SessionAttributes: attrs,
		},
		Messages: []LexMessage{formatMessage(text)},
	}
}

// FormatTelephony builds the flat attribute map a Connect contact flow reads.
func FormatTelephony(text string) events.ConnectResponse {
	return events.ConnectResponse{telephonyResponseKey: text}
}

func formatMessage(text string) LexMessage {
	if !strings.Contains(text, "<break") {
		return LexMessage{ContentType: ContentTypePlainText, Content: text}
	}

	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "<speak>") {
		trimmed = "<speak>" + trimmed + "</speak>"
	}

	return LexMessage{ContentType: ContentTypeSSML, Content: trimmed}
}
