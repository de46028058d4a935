// Package grading scores execution outcomes. Everything here is pure.
package grading

import (
	"strings"

	"gitlab.com/learnhub-grader.net/internal/domain"
)

const (
	ScoreCorrect             = 100
	ScoreCorrectWithWarnings = 80
	ScoreWrongOutput         = 50
	ScoreFailed              = 20
	// ScoreExecutionFailed is reserved for runs that never produced an outcome.
	ScoreExecutionFailed = 0
)

const (
	FeedbackCorrect         = "Correct! Your output matches the expected output."
	FeedbackWarningPrefix   = "Warning: your program reported errors: "
	FeedbackMismatch        = "Your output does not match the expected output."
	FeedbackExpectedPrefix  = "Expected: "
	FeedbackActualPrefix    = "Actual: "
	FeedbackCompileFailed   = "Your code failed to compile."
	FeedbackRuntimeFailed   = "Your code failed while running."
	FeedbackErrorPrefix     = "Error: "
	FeedbackExecutionFailed = "execution failed"
)

// OutputsMatch compares outputs after trimming leading and trailing whitespace only.
func OutputsMatch(actual, expected string) bool {
	return strings.TrimSpace(actual) == strings.TrimSpace(expected)
}

// Grade scores one outcome against one expected output. Exactly one band applies:
//
//	match,    no errors -> 100
//	match,    errors    -> 80
//	mismatch, no errors -> 50
//	mismatch, errors    -> 20
func Grade(outcome domain.ExecutionOutcome, expectedOutput string) domain.GradingResult {
	match := OutputsMatch(outcome.Stdout, expectedOutput)
	hasErrors := outcome.HasErrors()

	var (
		score int
		lines []string
	)
	switch {
	case match && !hasErrors:
		score = ScoreCorrect
		lines = []string{FeedbackCorrect}
	case match && hasErrors:
		score = ScoreCorrectWithWarnings
		lines = []string{FeedbackCorrect, FeedbackWarningPrefix + outcome.ErrorText()}
	case !match && !hasErrors:
		score = ScoreWrongOutput
		lines = []string{
			FeedbackMismatch,
			FeedbackExpectedPrefix + expectedOutput,
			FeedbackActualPrefix + outcome.Stdout,
		}
	default:
		score = ScoreFailed
		lines = []string{failureLine(outcome), FeedbackErrorPrefix + outcome.ErrorText()}
	}

	return domain.GradingResult{
		Score:         score,
		FeedbackLines: lines,
		Outcome:       &outcome,
	}
}

func failureLine(outcome domain.ExecutionOutcome) string {
	if outcome.CompileOutput != "" || outcome.Status.Kind == domain.StatusCompilationError {
		return FeedbackCompileFailed
	}
	return FeedbackRuntimeFailed
}

// ExecutionFailed is the fixed result used when the executor produced no outcome.
func ExecutionFailed() domain.GradingResult {
	return domain.GradingResult{
		Score:         ScoreExecutionFailed,
		FeedbackLines: []string{FeedbackExecutionFailed},
	}
}

// Feedback joins feedback lines for display.
func Feedback(result domain.GradingResult) string {
	return strings.Join(result.FeedbackLines, "\n")
}
