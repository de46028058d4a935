package crypto

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"gitlab.com/learnhub-grader.net/internal/config"
	"gitlab.com/learnhub-grader.net/internal/core/ports/primary"
	"gitlab.com/learnhub-grader.net/internal/static/errs"
)

var _ primary.TokenService = (*JWTServiceImpl)(nil)

const defaultTokenTTL = time.Hour

type JWTServiceImpl struct {
	HMACSecretKey string
	method        *jwt.SigningMethodHMAC
}

func NewJWTService(jwtConfig *config.JwtConfig) *JWTServiceImpl {
	return &JWTServiceImpl{
		HMACSecretKey: jwtConfig.Secret,
		method:        jwt.SigningMethodHS256,
	}
}

// IssueToken signs an HS256 token for subject. A non-positive ttl means one hour.
func (J *JWTServiceImpl) IssueToken(ctx context.Context, subject string, ttl time.Duration) (string, error) {
	if subject == "" {
		return "", fmt.Errorf("%w: subject is required", errs.ErrInvalidRequest)
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(J.method, claims).SignedString([]byte(J.HMACSecretKey))
}

func (J *JWTServiceImpl) VerifyToken(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", errs.MissingAuthorization
	}

	parsedToken, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", errs.UnexpectedSigning, t.Header["alg"])
		}
		return []byte(J.HMACSecretKey), nil
	})
	if err != nil {
		if errors.Is(err, errs.UnexpectedSigning) {
			return "", errs.UnexpectedSigning
		}
		return "", fmt.Errorf("%w: %w", errs.InvalidToken, err)
	}
	if !parsedToken.Valid {
		return "", errs.InvalidToken
	}

	subject, err := parsedToken.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", fmt.Errorf("%w: missing subject", errs.InvalidToken)
	}
	return subject, nil
}
