package secondary

import (
	"context"

	"gitlab.com/learnhub-grader.net/internal/domain"
)

// ResultRepository stores assembled submission responses for later retrieval
type ResultRepository interface {
	// SaveResult saves a submission response under its submission ID
	SaveResult(ctx context.Context, submissionID string, response *domain.SubmissionResponse) error

	// GetResult retrieves a submission response, errs.ErrResultNotFound when absent
	GetResult(ctx context.Context, submissionID string) (*domain.SubmissionResponse, error)
}

// AttemptRepository persists graded attempts
type AttemptRepository interface {
	SaveAttempt(ctx context.Context, attempt *domain.Attempt) error
	GetAttemptsByUser(ctx context.Context, userID string, limit int) ([]*domain.Attempt, error)
}
