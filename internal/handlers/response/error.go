package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"gitlab.com/learnhub-grader.net/internal/static/errs"
)

type ErrorMessage struct {
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

func WriteError(w http.ResponseWriter, err ErrorMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.StatusCode)
	_ = json.NewEncoder(w).Encode(err)
}

func WriteSuccess(w http.ResponseWriter, data interface{}) {
	WriteJSON(w, http.StatusOK, data)
}

func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// StatusCode maps a failure cause to an HTTP status. nil is 200.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, errs.ErrInvalidRequest), errors.Is(err, errs.ErrUnsupportedLanguage):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrAssessmentNotFound), errors.Is(err, errs.ErrResultNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrExecutionTimeout), errors.Is(err, errs.ErrExecutionTransport):
		return http.StatusBadGateway
	case errors.Is(err, errs.MissingAuthorization), errors.Is(err, errs.InvalidToken), errors.Is(err, errs.UnexpectedSigning):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
