package domain

import (
	"time"

	"github.com/google/uuid"
)

// Submission represents one student code attempt to be executed and graded
type Submission struct {
	ID             uuid.UUID
	UserID         string
	SourceCode     string
	Language       string
	Stdin          string
	TestCases      []TestCase
	ExpectedOutput *string
	AssessmentID   string
	SubmittedAt    time.Time
}

// NewSubmission creates a new submission
func NewSubmission(userID, code, language, stdin string) *Submission {
	return &Submission{
		ID:          uuid.New(),
		UserID:      userID,
		SourceCode:  code,
		Language:    language,
		Stdin:       stdin,
		SubmittedAt: time.Now(),
	}
}

// PrimaryStdin is the stdin used for the primary run: the explicit stdin,
// otherwise the first test case input.
func (s *Submission) PrimaryStdin() string {
	if s.Stdin != "" || len(s.TestCases) == 0 {
		return s.Stdin
	}
	return s.TestCases[0].Input
}

// PrimaryExpectedOutput is the oracle for the primary grade: the explicit
// expected output, otherwise the first test case expectation, otherwise empty.
func (s *Submission) PrimaryExpectedOutput() string {
	if s.ExpectedOutput != nil {
		return *s.ExpectedOutput
	}
	if len(s.TestCases) > 0 {
		return s.TestCases[0].ExpectedOutput
	}
	return ""
}
