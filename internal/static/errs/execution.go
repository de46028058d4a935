package errs

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRequest      = errors.New("invalid request")
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrAssessmentNotFound  = errors.New("assessment not found")
	ErrResultNotFound      = errors.New("submission result not found")
	ErrInternal            = errors.New("internal error")
)

// Execution failures. Every failure surfaced by an executor matches exactly one of these.
var (
	ErrExecutionTransport = errors.New("execution backend unavailable")
	ErrExecutionTimeout   = errors.New("execution timed out")
	ErrEncoding           = errors.New("malformed transport encoding")
)

// ExecutionError carries the backend context of a failed execution call.
type ExecutionError struct {
	Kind       error
	StatusCode int
	Body       string
	Err        error
}

func (e *ExecutionError) Error() string {
	msg := e.Kind.Error()
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s: status %d", msg, e.StatusCode)
		if e.Body != "" {
			msg = fmt.Sprintf("%s: %s", msg, e.Body)
		}
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *ExecutionError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NewExecutionError wraps err under kind. An encoding failure is also a transport failure.
func NewExecutionError(kind error, statusCode int, body string, err error) *ExecutionError {
	if errors.Is(kind, ErrEncoding) {
		if err != nil {
			err = fmt.Errorf("%w: %w", ErrEncoding, err)
		} else {
			err = ErrEncoding
		}
		kind = ErrExecutionTransport
	}
	return &ExecutionError{Kind: kind, StatusCode: statusCode, Body: body, Err: err}
}
