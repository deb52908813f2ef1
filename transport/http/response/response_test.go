package response_test

import (
	"context"
	"encoding/json"
	"hauliday/shared/constant"
	"hauliday/shared/failure"
	"hauliday/transport/http/response"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithError(t *testing.T) {
	request := httptest.NewRequest(http.MethodPost, "/v1/events", nil)
	request = request.WithContext(context.WithValue(request.Context(), constant.ContextKeyRequestID, "req-42"))

	recorder := httptest.NewRecorder()
	response.WithError(recorder, request, failure.EmptyEventError)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, constant.ContentTypeJSON, recorder.Header().Get(constant.RequestHeaderContentType))

	var body response.Status
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, response.Status{Code: http.StatusBadRequest, Error: "event body is empty", RequestID: "req-42"}, body)
}

func TestWithEvent(t *testing.T) {
	recorder := httptest.NewRecorder()
	response.WithEvent(recorder, map[string]string{"response_text": "Hello!"})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"response_text":"Hello!"}`, recorder.Body.String())
}

func TestHealthReplies(t *testing.T) {
	tests := []struct {
		name  string
		write func(http.ResponseWriter)
		code  int
		want  string
	}{
		{name: "preparing shutdown", write: response.WithPreparingShutdown, code: http.StatusServiceUnavailable, want: constant.ResponseErrorPrepareShutdown},
		{name: "unhealthy", write: response.WithUnhealthy, code: http.StatusServiceUnavailable, want: constant.ResponseErrorUnhealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			tt.write(recorder)

			assert.Equal(t, tt.code, recorder.Code)
			assert.JSONEq(t, `{"message":"`+tt.want+`"}`, recorder.Body.String())
		})
	}
}
