package response

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"gitlab.com/learnhub-grader.net/internal/static/errs"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"invalid", fmt.Errorf("%w: code is required", errs.ErrInvalidRequest), http.StatusBadRequest},
		{"language", fmt.Errorf("wrap: %w", errs.ErrUnsupportedLanguage), http.StatusBadRequest},
		{"assessment", fmt.Errorf("%w: a-1", errs.ErrAssessmentNotFound), http.StatusNotFound},
		{"result", errs.ErrResultNotFound, http.StatusNotFound},
		{"timeout", errs.NewExecutionError(errs.ErrExecutionTimeout, 0, "", nil), http.StatusBadGateway},
		{"transport", errs.NewExecutionError(errs.ErrExecutionTransport, 503, "busy", nil), http.StatusBadGateway},
		{"auth", errs.InvalidToken, http.StatusUnauthorized},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusCode(tt.err); got != tt.want {
				t.Fatalf("StatusCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, ErrorMessage{Message: "nope", StatusCode: http.StatusTeapot})

	if rec.Code != http.StatusTeapot {
		t.Fatalf("expected 418, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}
	if body := rec.Body.String(); body != "{\"message\":\"nope\",\"status_code\":418}\n" {
		t.Fatalf("unexpected body %q", body)
	}
}
