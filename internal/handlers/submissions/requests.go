package submissions

import (
	"gitlab.com/learnhub-grader.net/internal/domain"
)

// SubmitRequest represents a request to grade one submission
type SubmitRequest struct {
	Code           string            `json:"code"`
	Language       string            `json:"language"`
	Stdin          string            `json:"stdin"`
	TestCases      []domain.TestCase `json:"testCases"`
	ExpectedOutput *string           `json:"expectedOutput"`
	AssessmentID   string            `json:"assessmentId"`
}

// ToSubmission builds the domain submission for userID
func (r SubmitRequest) ToSubmission(userID string) *domain.Submission {
	sub := domain.NewSubmission(userID, r.Code, r.Language, r.Stdin)
	sub.TestCases = r.TestCases
	sub.ExpectedOutput = r.ExpectedOutput
	sub.AssessmentID = r.AssessmentID
	return sub
}

// BatchSubmitRequest represents a request to grade several submissions
type BatchSubmitRequest struct {
	Submissions []SubmitRequest `json:"submissions"`
}

// BatchSubmitResponse holds one response per submission, in request order
type BatchSubmitResponse struct {
	Results []*domain.SubmissionResponse `json:"results"`
}

// LanguagesResponse lists the supported languages
type LanguagesResponse struct {
	Languages []domain.Language `json:"languages"`
}

// AttemptView is the public shape of a recorded attempt
type AttemptView struct {
	ID           string  `json:"id"`
	SubmissionID string  `json:"submissionId"`
	AssessmentID *string `json:"assessmentId,omitempty"`
	Language     string  `json:"language"`
	Score        int     `json:"score"`
	Status       string  `json:"status"`
	PassedCases  int     `json:"passedCases"`
	TotalCases   int     `json:"totalCases"`
	CreatedAt    string  `json:"createdAt"`
}

// AttemptsResponse lists a user's attempts
type AttemptsResponse struct {
	Attempts []AttemptView `json:"attempts"`
}
