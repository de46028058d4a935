package secondary

import (
	"context"

	"gitlab.com/learnhub-grader.net/internal/domain"
)

type CodeExecutor interface {
	// Execute runs source code once with the given stdin and returns the normalized outcome.
	// Failures match errs.ErrExecutionTransport or errs.ErrExecutionTimeout.
	Execute(ctx context.Context, sourceCode string, languageID domain.LanguageID, stdin string) (*domain.ExecutionOutcome, error)
}
