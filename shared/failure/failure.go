package failure

import (
	"errors"
	"net/http"
)

const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// Failure tags an error with an HTTP status so the dev server and the ops CLI classify
// collaborator faults the same way.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	cause   error
}

var (
	EmptyEventError    = &Failure{Code: http.StatusBadRequest, Message: "event body is empty"}
	MissingConfigError = &Failure{Code: http.StatusPreconditionFailed, Message: "required configuration is missing"}
)

func (e *Failure) Error() string {
	if e.cause == nil {
		return e.Message
	}

	return e.Message + ": " + e.cause.Error()
}

func (e *Failure) Unwrap() error {
	return e.cause
}

// BadRequest marks a caller supplied payload as unusable.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return &Failure{Code: http.StatusBadRequest, Message: "bad request", cause: err}
}

// BadRequestFromString returns a bad request failure carrying msg as is.
func BadRequestFromString(msg string) error {
	return &Failure{Code: http.StatusBadRequest, Message: msg}
}

// Unavailable marks a managed service (generator, table, knowledge base) that could not serve the call.
func Unavailable(service string, err error) error {
	if err == nil {
		return nil
	}

	return &Failure{Code: http.StatusServiceUnavailable, Message: service + " is unavailable", cause: err}
}

// Timeout marks an operation that gave up waiting.
func Timeout(operation string, err error) error {
	return &Failure{Code: http.StatusGatewayTimeout, Message: operation + " timed out", cause: err}
}

// GetCode returns the status of the first Failure in err's chain.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// ExitCode maps err to a process exit status. Problems the operator can fix by changing
// flags or environment exit with ExitUsage.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	code := GetCode(err)
	if code >= http.StatusBadRequest && code < http.StatusInternalServerError {
		return ExitUsage
	}

	return ExitFailure
}
