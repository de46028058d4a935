package history

import (
	"context"

	"gitlab.com/learnhub-grader.net/internal/domain"
)

// IHistoryService keeps graded responses and attempts after the response is assembled
type IHistoryService interface {
	// Record stores the response and, when the user is known, an attempt. Best effort.
	Record(ctx context.Context, sub *domain.Submission, resp *domain.SubmissionResponse)

	// GetResult retrieves a stored response by submission ID
	GetResult(ctx context.Context, submissionID string) (*domain.SubmissionResponse, error)

	// GetAttempts lists a user's recent attempts
	GetAttempts(ctx context.Context, userID string, limit int) ([]*domain.Attempt, error)
}
