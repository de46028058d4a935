package submission

import (
	"context"

	"gitlab.com/learnhub-grader.net/internal/domain"
)

// ISubmissionService runs the submission -> execution -> grading pipeline
type ISubmissionService interface {
	// HandleSubmission validates, executes and grades one submission. It never fails:
	// every outcome, including backend failure, is a well-formed response.
	HandleSubmission(ctx context.Context, sub *domain.Submission) *domain.SubmissionResponse

	// HandleBatch grades several independent submissions concurrently, preserving order
	HandleBatch(ctx context.Context, subs []*domain.Submission) ([]*domain.SubmissionResponse, error)
}
