package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hauliday/config"
	"hauliday/infras/otel/mocks"
	conversationMocks "hauliday/internal/domains/conversation/mocks"
	directiveMocks "hauliday/internal/domains/directive/mocks"
	knowledgeMocks "hauliday/internal/domains/knowledge/mocks"
	"hauliday/internal/handlers/assistant"
	transport "hauliday/transport/http"
	"hauliday/transport/http/middleware"
	"hauliday/transport/http/router"
)

func newServer(t *testing.T) *transport.HTTP {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Server.Port = "0"
	cfg.App.Conversation.MaxFailures = 3

	handler := assistant.New(
		conversationMocks.NewMockConversation(ctrl),
		directiveMocks.NewMockProcessor(ctrl),
		knowledgeMocks.NewMockKnowledge(ctrl),
		cfg,
		mocks.NewOtel(),
	)

	return transport.New(
		cfg,
		router.New(router.DomainHandlers{Assistant: handler}),
		middleware.NewAppMiddleware(mocks.NewOtel(), cfg),
	)
}

func TestHTTP_Routes(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{name: "health", method: http.MethodGet, path: "/health", wantStatus: http.StatusOK, wantBody: "OK"},
		{name: "events", method: http.MethodPost, path: "/v1/events", body: `{"inputTranscript":""}`, wantStatus: http.StatusOK, wantBody: "failure_count"},
		{name: "metrics", method: http.MethodGet, path: "/metrics", wantStatus: http.StatusOK, wantBody: "hauliday_turns_total"},
		{name: "unknown route", method: http.MethodGet, path: "/v1/nothing", wantStatus: http.StatusNotFound},
	}

	server := newServer(t)
	handler := server.Handler()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, transport.ServerStateReady, server.State())

			if tt.wantBody != "" {
				assert.Contains(t, recorder.Body.String(), tt.wantBody)
			}
		})
	}
}
