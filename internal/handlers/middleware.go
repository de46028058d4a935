package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"gitlab.com/learnhub-grader.net/internal/core/ports/primary"
	"gitlab.com/learnhub-grader.net/internal/handlers/response"
	"gitlab.com/learnhub-grader.net/internal/static/errs"
)

type contextKey string

const userIDKey contextKey = "userId"

// UserIDFromContext returns the authenticated subject, or "" for anonymous requests
func UserIDFromContext(ctx context.Context) string {
	userID, _ := ctx.Value(userIDKey).(string)
	return userID
}

// WithUserID stores the authenticated subject in ctx
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

type MiddlewareProvider struct {
	tokens primary.TokenService
	logger primary.Logger
}

// New creates the middleware provider. A nil token service disables authentication.
func New(tokens primary.TokenService, logger primary.Logger) *MiddlewareProvider {
	return &MiddlewareProvider{
		tokens: tokens,
		logger: logger,
	}
}

// Enabled reports whether bearer tokens are required
func (m *MiddlewareProvider) Enabled() bool {
	return m.tokens != nil
}

// JWTMiddleware validates a bearer token and stores its subject as the user ID.
// Without a token service every request passes through anonymously.
func (m *MiddlewareProvider) JWTMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.Enabled() {
			next.ServeHTTP(w, r)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			m.reject(w, r, errs.MissingAuthorization)
			return
		}

		// Extract token from "Bearer <token>"
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, err := m.tokens.VerifyToken(r.Context(), tokenString)
		if err != nil {
			m.reject(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

func (m *MiddlewareProvider) reject(w http.ResponseWriter, r *http.Request, err error) {
	m.logger.Debug("Rejected request", "path", r.URL.Path, "error", err)
	message := errs.InvalidToken.Error()
	if errors.Is(err, errs.MissingAuthorization) {
		message = errs.MissingAuthorization.Error()
	}
	response.WriteError(w, response.ErrorMessage{
		Message:    message,
		StatusCode: http.StatusUnauthorized,
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// RequestLogger logs one line per request
func RequestLogger(logger primary.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			logger.Info("HTTP request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", time.Since(start).String(),
			)
		})
	}
}
