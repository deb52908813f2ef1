package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"

	// HistoryLimit is the number of turns kept in the session attribute.
	HistoryLimit = 10
)

type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// History is the ordered list of prior turns, oldest first.
type History []Turn

// Append returns a new history with the turns added, dropping the oldest beyond HistoryLimit.
func (h History) Append(turns ...Turn) History {
	res := make(History, 0, len(h)+len(turns))
	res = append(res, h...)
	res = append(res, turns...)

	if len(res) > HistoryLimit {
		res = res[len(res)-HistoryLimit:]
	}

	return res
}

// Encode renders the history as the JSON session attribute value.
func (h History) Encode() string {
	if h == nil {
		h = History{}
	}

	data, err := json.Marshal(h)
	if err != nil {
		return "[]"
	}

	return string(data)
}

// DecodeHistory parses a session attribute. Empty input is an empty history; invalid input
// yields an empty history and an error the caller can log.
func DecodeHistory(raw string) (History, error) {
	if strings.TrimSpace(raw) == "" {
		return History{}, nil
	}

	var h History

	if err := json.Unmarshal([]byte(raw), &h); err != nil {
		return History{}, fmt.Errorf("failed to decode conversation history: %w", err)
	}

	valid := make(History, 0, len(h))

	for _, turn := range h {
		if turn.Role != RoleUser && turn.Role != RoleAssistant {
			continue
		}

		valid = append(valid, turn)
	}

	if len(valid) > HistoryLimit {
		valid = valid[len(valid)-HistoryLimit:]
	}

	return valid, nil
}
