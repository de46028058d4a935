package submission

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"gitlab.com/learnhub-grader.net/internal/config"
	"gitlab.com/learnhub-grader.net/internal/core/ports/primary"
	"gitlab.com/learnhub-grader.net/internal/core/ports/secondary"
	"gitlab.com/learnhub-grader.net/internal/core/services/grading"
	"gitlab.com/learnhub-grader.net/internal/domain"
	"gitlab.com/learnhub-grader.net/internal/static/errs"
)

const (
	statusError               = "Error"
	feedbackAssessmentMissing = "assessment unavailable"
	feedbackInternalError     = "internal error"
)

var _ ISubmissionService = (*SubmissionService)(nil)

// SubmissionService implements the ISubmissionService interface. It holds no per-request
// state, so one instance serves all concurrent requests. limiter bounds in-flight backend
// calls across every request, batch and per-case fan-out included.
type SubmissionService struct {
	executor    secondary.CodeExecutor
	assessments secondary.AssessmentRepository
	cfg         *config.GradingConfig
	logger      primary.Logger
	limiter     chan struct{}
}

// NewSubmissionService creates a new submission service. assessments may be nil,
// in which case submissions must carry their own test cases.
func NewSubmissionService(
	executor secondary.CodeExecutor,
	assessments secondary.AssessmentRepository,
	cfg *config.GradingConfig,
	logger primary.Logger,
) *SubmissionService {
	concurrency := cfg.MaxConcurrency
	if concurrency < 1 {
		concurrency = 1
	}
	return &SubmissionService{
		executor:    executor,
		assessments: assessments,
		cfg:         cfg,
		logger:      logger,
		limiter:     make(chan struct{}, concurrency),
	}
}

// HandleSubmission validates, executes and grades one submission within RequestTimeout
func (s *SubmissionService) HandleSubmission(ctx context.Context, sub *domain.Submission) *domain.SubmissionResponse {
	ctx, cancel := s.withDeadline(ctx)
	defer cancel()
	return s.handle(ctx, sub)
}

func (s *SubmissionService) handle(ctx context.Context, sub *domain.Submission) (resp *domain.SubmissionResponse) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Recovered from panic while grading", "panic", r)
			resp = failedResponse(sub, fmt.Errorf("%w: %v", errs.ErrInternal, r), failedGrade(feedbackInternalError))
		}
	}()

	if sub == nil {
		return invalidResponse(errors.New("empty submission"))
	}
	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}
	if sub.SourceCode == "" {
		return invalidResponse(errors.New("code is required"))
	}
	languageID, err := domain.ResolveLanguage(sub.Language)
	if err != nil {
		s.logger.Info("Rejected submission", "submissionId", sub.ID, "language", sub.Language)
		return invalidResponse(err)
	}

	if err := s.loadAssessment(ctx, sub); err != nil {
		if errors.Is(err, errs.ErrInvalidRequest) {
			return &domain.SubmissionResponse{Success: false, Error: err.Error(), Reason: err}
		}
		s.logger.Error("Failed to load assessment", "submissionId", sub.ID, "assessmentId", sub.AssessmentID, "error", err)
		return failedResponse(sub, err, failedGrade(feedbackAssessmentMissing))
	}
	if s.cfg.MaxTestCases > 0 && len(sub.TestCases) > s.cfg.MaxTestCases {
		return invalidResponse(fmt.Errorf("%d test cases exceed limit %d", len(sub.TestCases), s.cfg.MaxTestCases))
	}

	s.logger.Info("Handling submission",
		"submissionId", sub.ID,
		"language", sub.Language,
		"testCases", len(sub.TestCases),
		"perCase", s.cfg.PerCaseExecution)

	outcome, err := s.execute(ctx, sub.SourceCode, languageID, sub.PrimaryStdin())
	if err != nil {
		s.logger.Error("Execution failed", "submissionId", sub.ID, "error", err)
		return failedResponse(sub, err, grading.ExecutionFailed())
	}
	if outcome == nil {
		outcome = &domain.ExecutionOutcome{}
	}

	grade := grading.Grade(*outcome, sub.PrimaryExpectedOutput())

	var results []domain.TestCaseResult
	if len(sub.TestCases) > 0 {
		if s.cfg.PerCaseExecution {
			results = s.evaluatePerCase(ctx, sub, languageID, outcome)
		} else {
			results = grading.EvaluateTestCases(sub.TestCases, *outcome)
		}
	}

	s.logger.Info("Submission graded",
		"submissionId", sub.ID,
		"status", outcome.StatusDescription,
		"score", grade.Score,
		"passed", grading.CountPassed(results))

	return assemble(sub, grade, results)
}

// HandleBatch grades several independent submissions concurrently, preserving order
func (s *SubmissionService) HandleBatch(ctx context.Context, subs []*domain.Submission) ([]*domain.SubmissionResponse, error) {
	if len(subs) == 0 {
		return nil, fmt.Errorf("%w: batch is empty", errs.ErrInvalidRequest)
	}
	if len(subs) > s.cfg.MaxBatchSize {
		return nil, fmt.Errorf("%w: batch of %d exceeds limit %d", errs.ErrInvalidRequest, len(subs), s.cfg.MaxBatchSize)
	}

	ctx, cancel := s.withDeadline(ctx)
	defer cancel()

	responses := make([]*domain.SubmissionResponse, len(subs))
	fanOut(ctx, len(subs), s.cfg.MaxConcurrency, func(ctx context.Context, i int) {
		responses[i] = s.handle(ctx, subs[i])
	})
	return responses, nil
}

// withDeadline bounds a whole request so the response is ready before the server gives up on it.
func (s *SubmissionService) withDeadline(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.cfg.RequestTimeout)
}

// execute runs one backend call once a limiter slot is free. A request whose deadline
// passes while waiting fails as a timeout without reaching the backend.
func (s *SubmissionService) execute(ctx context.Context, sourceCode string, languageID domain.LanguageID, stdin string) (*domain.ExecutionOutcome, error) {
	select {
	case s.limiter <- struct{}{}:
	case <-ctx.Done():
		return nil, contextError(ctx)
	}
	defer func() { <-s.limiter }()

	if ctx.Err() != nil {
		return nil, contextError(ctx)
	}
	return s.executor.Execute(ctx, sourceCode, languageID, stdin)
}

func contextError(ctx context.Context) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return errs.NewExecutionError(errs.ErrExecutionTimeout, 0, "", ctx.Err())
	}
	return errs.NewExecutionError(errs.ErrExecutionTransport, 0, "", ctx.Err())
}

// evaluatePerCase runs the program once per test case input. The primary run is reused
// for the case whose input it already executed.
func (s *SubmissionService) evaluatePerCase(ctx context.Context, sub *domain.Submission, languageID domain.LanguageID, primaryOutcome *domain.ExecutionOutcome) []domain.TestCaseResult {
	n := len(sub.TestCases)
	outcomes := make([]*domain.ExecutionOutcome, n)
	execErrs := make([]error, n)
	primaryStdin := sub.PrimaryStdin()

	fanOut(ctx, n, s.cfg.MaxConcurrency, func(ctx context.Context, i int) {
		defer func() {
			if r := recover(); r != nil {
				outcomes[i], execErrs[i] = nil, fmt.Errorf("%w: %v", errs.ErrInternal, r)
			}
		}()

		tc := sub.TestCases[i]
		if tc.Input == primaryStdin {
			outcomes[i] = primaryOutcome
			return
		}
		outcomes[i], execErrs[i] = s.execute(ctx, sub.SourceCode, languageID, tc.Input)
		if execErrs[i] != nil {
			s.logger.Warn("Test case execution failed", "submissionId", sub.ID, "case", i, "error", execErrs[i])
		}
	})

	return grading.EvaluateOutcomes(sub.TestCases, outcomes, execErrs)
}

// loadAssessment fills test cases and expected output from the store when the
// submission references an assessment and carries no oracle of its own.
func (s *SubmissionService) loadAssessment(ctx context.Context, sub *domain.Submission) error {
	if sub.AssessmentID == "" || len(sub.TestCases) > 0 || sub.ExpectedOutput != nil {
		return nil
	}
	if s.assessments == nil {
		return fmt.Errorf("%w: assessments are not available", errs.ErrInvalidRequest)
	}

	assessment, err := s.assessments.GetAssessment(ctx, sub.AssessmentID)
	if err != nil {
		if errors.Is(err, errs.ErrAssessmentNotFound) {
			return fmt.Errorf("%w: %w", errs.ErrInvalidRequest, err)
		}
		return err
	}

	sub.TestCases = assessment.TestCases
	sub.ExpectedOutput = assessment.ExpectedOutput
	return nil
}

func assemble(sub *domain.Submission, grade domain.GradingResult, results []domain.TestCaseResult) *domain.SubmissionResponse {
	if results == nil {
		results = []domain.TestCaseResult{}
	}
	outcome := grade.Outcome
	return &domain.SubmissionResponse{
		Success: true,
		Result: &domain.SubmissionResult{
			ID:            sub.ID.String(),
			Status:        outcome.StatusDescription,
			Output:        outcome.Stdout,
			Error:         outcome.ErrorText(),
			ExecutionTime: outcome.ElapsedTime,
			Memory:        outcome.MemoryUsed,
			Score:         grade.Score,
			Feedback:      grading.Feedback(grade),
			FeedbackLines: grade.FeedbackLines,
			TestResults:   results,
		},
	}
}

func invalidResponse(cause error) *domain.SubmissionResponse {
	err := fmt.Errorf("%w: %w", errs.ErrInvalidRequest, cause)
	return &domain.SubmissionResponse{Success: false, Error: err.Error(), Reason: err}
}

// failedGrade is a zero-score result with a cause-specific feedback line.
func failedGrade(feedback string) domain.GradingResult {
	grade := grading.ExecutionFailed()
	grade.FeedbackLines = []string{feedback}
	return grade
}

// failedResponse is the zero-score response for a submission that could not be run.
// Every declared test case is reported as failed with the same cause.
func failedResponse(sub *domain.Submission, cause error, grade domain.GradingResult) *domain.SubmissionResponse {
	msg := cause.Error()
	result := &domain.SubmissionResult{
		Status:        statusError,
		Error:         msg,
		Score:         grade.Score,
		Feedback:      grading.Feedback(grade),
		FeedbackLines: grade.FeedbackLines,
		TestResults:   []domain.TestCaseResult{},
	}
	if sub != nil {
		result.ID = sub.ID.String()
		for _, tc := range sub.TestCases {
			caseErr := msg
			result.TestResults = append(result.TestResults, domain.TestCaseResult{TestCase: tc, Error: &caseErr})
		}
	}
	return &domain.SubmissionResponse{
		Success: false,
		Error:   msg,
		Result:  result,
		Reason:  cause,
	}
}
