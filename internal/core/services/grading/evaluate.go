package grading

import (
	"gitlab.com/learnhub-grader.net/internal/domain"
)

// EvaluateTestCases derives a verdict per test case from a single run. Every case is
// compared against the same stdout, so cases with different inputs are not isolated.
func EvaluateTestCases(testCases []domain.TestCase, outcome domain.ExecutionOutcome) []domain.TestCaseResult {
	results := make([]domain.TestCaseResult, 0, len(testCases))
	for _, tc := range testCases {
		results = append(results, evaluate(tc, outcome))
	}
	return results
}

// EvaluateOutcomes derives verdicts from one run per test case. outcomes and execErrs
// are indexed like testCases; a failed run fails only its own case.
func EvaluateOutcomes(testCases []domain.TestCase, outcomes []*domain.ExecutionOutcome, execErrs []error) []domain.TestCaseResult {
	results := make([]domain.TestCaseResult, 0, len(testCases))
	for i, tc := range testCases {
		var err error
		if i < len(execErrs) {
			err = execErrs[i]
		}
		var outcome *domain.ExecutionOutcome
		if i < len(outcomes) {
			outcome = outcomes[i]
		}

		switch {
		case err != nil:
			msg := err.Error()
			results = append(results, domain.TestCaseResult{TestCase: tc, Error: &msg})
		case outcome == nil:
			msg := FeedbackExecutionFailed
			results = append(results, domain.TestCaseResult{TestCase: tc, Error: &msg})
		default:
			results = append(results, evaluate(tc, *outcome))
		}
	}
	return results
}

// CountPassed returns the number of passing verdicts.
func CountPassed(results []domain.TestCaseResult) int {
	passed := 0
	for _, r := range results {
		if r.Passed {
			passed++
		}
	}
	return passed
}

func evaluate(tc domain.TestCase, outcome domain.ExecutionOutcome) domain.TestCaseResult {
	result := domain.TestCaseResult{
		TestCase:     tc,
		Passed:       OutputsMatch(outcome.Stdout, tc.ExpectedOutput),
		ActualOutput: outcome.Stdout,
	}
	if outcome.HasErrors() {
		msg := outcome.ErrorText()
		result.Error = &msg
	}
	return result
}
