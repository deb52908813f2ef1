package assistant

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/aws/aws-lambda-go/events"
)

// Kind is the channel an inbound event came from.
type Kind int

const (
	KindLex Kind = iota
	KindTelephony
)

func (k Kind) String() string {
	if k == KindTelephony {
		return "telephony"
	}

	return "lex"
}

// Slot names checked for free text, in order.
const (
	slotRaw      = "Raw"
	slotFreeText = "FreeText"
	slotQuery    = "query"

	paramInputTranscript = "inputTranscript"
)

// Event is either a Lex V2 code hook event or a Connect contact flow invocation.
type Event struct {
	Kind      Kind
	Lex       *LexEvent
	Telephony *events.ConnectEvent
}

type LexEvent struct {
	SessionID        string          `json:"sessionId"`
	InputTranscript  string          `json:"inputTranscript"`
	InvocationSource string          `json:"invocationSource"`
	SessionState     LexSessionState `json:"sessionState"`
}

type LexSessionState struct {
	DialogAction      *LexDialogAction  `json:"dialogAction,omitempty"`
	Intent            *LexIntent        `json:"intent,omitempty"`
	SessionAttributes map[string]string `json:"sessionAttributes"`
}

type LexDialogAction struct {
	Type string `json:"type"`
}

type LexIntent struct {
	Name  string              `json:"name"`
	State string              `json:"state,omitempty"`
	Slots map[string]*LexSlot `json:"slots,omitempty"`
}

type LexSlot struct {
	Value *LexSlotValue `json:"value"`
}

type LexSlotValue struct {
	OriginalValue    string `json:"originalValue"`
	InterpretedValue string `json:"interpretedValue"`
}

// IntentName returns the event's intent, or empty when absent.
func (e *LexEvent) IntentName() string {
	if e == nil || e.SessionState.Intent == nil {
		return ""
	}

	return e.SessionState.Intent.Name
}

// ParseEvent recognizes the event shape. A top-level Details.Parameters object marks a
// telephony event; anything else, malformed input included, is treated as Lex.
func ParseEvent(raw json.RawMessage) Event {
	var probe struct {
		Details *struct {
			Parameters json.RawMessage `json:"Parameters"`
		} `json:"Details"`
	}

	if err := json.Unmarshal(raw, &probe); err == nil && probe.Details != nil &&
		bytes.HasPrefix(bytes.TrimSpace(probe.Details.Parameters), []byte("{")) {
		var connect events.ConnectEvent

		// Non-string parameters are dropped rather than failing the event.
		_ = json.Unmarshal(raw, &connect)

		return Event{Kind: KindTelephony, Telephony: &connect}
	}

	var lex LexEvent

	_ = json.Unmarshal(raw, &lex)

	return Event{Kind: KindLex, Lex: &lex}
}

// Extract returns the caller's utterance and whether one was found.
func Extract(event Event) (string, bool) {
	switch event.Kind {
	case KindTelephony:
		if event.Telephony == nil {
			return "", false
		}

		return nonBlank(event.Telephony.Details.Parameters[paramInputTranscript])
	default:
		return extractLex(event.Lex)
	}
}

func extractLex(event *LexEvent) (string, bool) {
	if event == nil {
		return "", false
	}

	if text, ok := nonBlank(event.InputTranscript); ok {
		return text, true
	}

	if event.SessionState.Intent == nil {
		return "", false
	}

	slots := event.SessionState.Intent.Slots

	for _, name := range []string{slotRaw, slotFreeText, slotQuery} {
		if text, ok := slotText(slots[name]); ok {
			return text, true
		}
	}

	return "", false
}

func slotText(slot *LexSlot) (string, bool) {
	if slot == nil || slot.Value == nil {
		return "", false
	}

	if text, ok := nonBlank(slot.Value.InterpretedValue); ok {
		return text, true
	}

	return nonBlank(slot.Value.OriginalValue)
}

func nonBlank(s string) (string, bool) {
	s = strings.TrimSpace(s)

	return s, s != ""
}
