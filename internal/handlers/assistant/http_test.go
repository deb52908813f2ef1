package assistant_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hauliday/internal/handlers/assistant"
)

func TestHandler_HandleEvent(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "empty body is rejected",
			body:        "",
			wantStatus:  http.StatusBadRequest,
			wantMessage: "",
		},
		{
			name:        "malformed event gets the repeat prompt",
			body:        `{"malformed":"event"}`,
			wantStatus:  http.StatusOK,
			wantMessage: assistant.RepeatMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _ := newHandler(t)

			router := chi.NewRouter()
			handler.Router(router)

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantMessage == "" {
				assert.Contains(t, recorder.Body.String(), "event body is empty")

				return
			}

			var res assistant.LexResponse
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
			require.Len(t, res.Messages, 1)
			assert.Equal(t, tt.wantMessage, res.Messages[0].Content)
		})
	}
}
