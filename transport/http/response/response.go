package response

import (
	"encoding/json"
	"hauliday/shared/constant"
	"hauliday/shared/failure"
	"hauliday/shared/logger"
	"net/http"
)

// Status is the body of health and error replies.
type Status struct {
	Code      int    `json:"code,omitempty"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// WithMessage sends a short status text.
func WithMessage(writer http.ResponseWriter, code int, message string) {
	write(writer, code, Status{Message: message})
}

// WithEvent sends the assistant's reply as the whole body so dev clients see exactly
// what the Lambda would return.
func WithEvent(writer http.ResponseWriter, payload any) {
	write(writer, http.StatusOK, payload)
}

// WithError sends err with the status carried by its failure, echoing the request id.
func WithError(writer http.ResponseWriter, request *http.Request, err error) {
	code := failure.GetCode(err)

	status := Status{Code: code, Error: err.Error()}
	if id, ok := request.Context().Value(constant.ContextKeyRequestID).(string); ok {
		status.RequestID = id
	}

	write(writer, code, status)
}

func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func write(writer http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		writer.WriteHeader(http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
