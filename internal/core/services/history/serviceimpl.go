package history

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gitlab.com/learnhub-grader.net/internal/core/ports/primary"
	"gitlab.com/learnhub-grader.net/internal/core/ports/secondary"
	"gitlab.com/learnhub-grader.net/internal/core/services/grading"
	"gitlab.com/learnhub-grader.net/internal/domain"
	"gitlab.com/learnhub-grader.net/internal/static/errs"
)

var _ IHistoryService = (*HistoryService)(nil)

// HistoryService implements IHistoryService. Either repository may be nil, which
// disables that half.
type HistoryService struct {
	results  secondary.ResultRepository
	attempts secondary.AttemptRepository
	logger   primary.Logger
	now      func() time.Time
}

// NewHistoryService creates a new history service
func NewHistoryService(results secondary.ResultRepository, attempts secondary.AttemptRepository, logger primary.Logger) *HistoryService {
	return &HistoryService{
		results:  results,
		attempts: attempts,
		logger:   logger,
		now:      time.Now,
	}
}

// Record stores the response and the attempt. Failures are logged, never returned:
// the student already has their grade.
func (s *HistoryService) Record(ctx context.Context, sub *domain.Submission, resp *domain.SubmissionResponse) {
	if sub == nil || resp == nil || resp.Result == nil {
		return
	}

	if s.results != nil {
		if err := s.results.SaveResult(ctx, sub.ID.String(), resp); err != nil {
			s.logger.Warn("Failed to store submission result", "submissionId", sub.ID, "error", err)
		}
	}

	if s.attempts == nil || sub.UserID == "" {
		return
	}

	attempt := &domain.Attempt{
		ID:           uuid.New(),
		SubmissionID: sub.ID,
		UserID:       sub.UserID,
		Language:     sub.Language,
		Score:        resp.Result.Score,
		Status:       resp.Result.Status,
		PassedCases:  grading.CountPassed(resp.Result.TestResults),
		TotalCases:   len(resp.Result.TestResults),
		CreatedAt:    s.now(),
	}
	if sub.AssessmentID != "" {
		assessmentID := sub.AssessmentID
		attempt.AssessmentID = &assessmentID
	}
	if err := s.attempts.SaveAttempt(ctx, attempt); err != nil {
		s.logger.Warn("Failed to record attempt", "submissionId", sub.ID, "userId", sub.UserID, "error", err)
		return
	}
	s.logger.Debug("Attempt recorded", "attemptId", attempt.ID, "score", attempt.Score)
}

// GetResult retrieves a stored response by submission ID
func (s *HistoryService) GetResult(ctx context.Context, submissionID string) (*domain.SubmissionResponse, error) {
	if s.results == nil {
		return nil, errs.ErrResultNotFound
	}
	if _, err := uuid.Parse(submissionID); err != nil {
		return nil, fmt.Errorf("%w: malformed submission id", errs.ErrInvalidRequest)
	}
	return s.results.GetResult(ctx, submissionID)
}

// GetAttempts lists a user's recent attempts
func (s *HistoryService) GetAttempts(ctx context.Context, userID string, limit int) ([]*domain.Attempt, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user is required", errs.ErrInvalidRequest)
	}
	if s.attempts == nil {
		return []*domain.Attempt{}, nil
	}
	return s.attempts.GetAttemptsByUser(ctx, userID, limit)
}
