package primary

import (
	"context"
	"time"
)

// TokenService issues and verifies bearer tokens identifying a user
type TokenService interface {
	IssueToken(ctx context.Context, subject string, ttl time.Duration) (string, error)
	// VerifyToken returns the token subject
	VerifyToken(ctx context.Context, token string) (string, error)
}
