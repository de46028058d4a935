package domain

import (
	"time"

	"github.com/google/uuid"
)

// TestCaseResult represents the verdict for a single test case
type TestCaseResult struct {
	TestCase     TestCase `json:"testCase"`
	Passed       bool     `json:"passed"`
	ActualOutput string   `json:"actualOutput"`
	Error        *string  `json:"error"`
}

// GradingResult is the deterministic score of one outcome against one expected output
type GradingResult struct {
	Score         int
	FeedbackLines []string
	Outcome       *ExecutionOutcome
}

// SubmissionResult is the assembled payload returned to the caller
type SubmissionResult struct {
	ID            string           `json:"id,omitempty"`
	Status        string           `json:"status"`
	Output        string           `json:"output"`
	Error         string           `json:"error"`
	ExecutionTime string           `json:"executionTime"`
	Memory        int              `json:"memory"`
	Score         int              `json:"score"`
	Feedback      string           `json:"feedback"`
	FeedbackLines []string         `json:"feedbackLines"`
	TestResults   []TestCaseResult `json:"testResults"`
}

// SubmissionResponse is always well-formed, on success and on failure
type SubmissionResponse struct {
	Success bool              `json:"success"`
	Error   string            `json:"error,omitempty"`
	Result  *SubmissionResult `json:"result,omitempty"`

	// Reason is the failure cause, nil on success. Not serialized.
	Reason error `json:"-"`
}

// Attempt is a graded submission recorded for a user
type Attempt struct {
	ID           uuid.UUID `db:"id"`
	SubmissionID uuid.UUID `db:"submission_id"`
	UserID       string    `db:"user_id"`
	AssessmentID *string   `db:"assessment_id"`
	Language     string    `db:"language"`
	Score        int       `db:"score"`
	Status       string    `db:"status"`
	PassedCases  int       `db:"passed_cases"`
	TotalCases   int       `db:"total_cases"`
	CreatedAt    time.Time `db:"created_at"`
}
