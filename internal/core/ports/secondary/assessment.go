package secondary

import (
	"context"

	"gitlab.com/learnhub-grader.net/internal/domain"
)

type AssessmentRepository interface {
	// GetAssessment loads an assessment with its ordered test cases, errs.ErrAssessmentNotFound when absent
	GetAssessment(ctx context.Context, assessmentID string) (*domain.Assessment, error)
}
