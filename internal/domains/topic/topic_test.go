package topic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hauliday/internal/domains/topic"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		utterance string
		want      bool
	}{
		{utterance: "What equipment do you have available?", want: true},
		{utterance: "How much does the cotton candy machine cost?", want: true},
		{utterance: "Is the cargo carrier available August 30th?", want: true},
		{utterance: "I'd like to book it for next weekend", want: true},
		{utterance: "jane@example.com", want: true},
		{utterance: "555 123 4567", want: true},
		{utterance: "Hello there", want: true},
		{utterance: "Thanks!", want: true},
		{utterance: "Tell me about your company history", want: false},
		{utterance: "Who won the football game last night?", want: false},
		{utterance: "", want: false},
		{utterance: "   ", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.utterance, func(t *testing.T) {
			assert.Equal(t, tt.want, topic.Validate(tt.utterance))
		})
	}
}

func TestValidate_CaseInsensitive(t *testing.T) {
	assert.True(t, topic.Validate("COTTON CANDY"))
}
