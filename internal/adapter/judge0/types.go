package judge0

import (
	"gitlab.com/learnhub-grader.net/internal/domain"
)

type submissionRequest struct {
	SourceCode string `json:"source_code"`
	LanguageID int    `json:"language_id"`
	Stdin      string `json:"stdin"`
}

type statusPayload struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
}

type submissionResponse struct {
	Token         string         `json:"token"`
	Stdout        *string        `json:"stdout"`
	Stderr        *string        `json:"stderr"`
	CompileOutput *string        `json:"compile_output"`
	Message       *string        `json:"message"`
	Status        *statusPayload `json:"status"`
	Time          flexString     `json:"time"`
	Memory        *int           `json:"memory"`
}

func (r *submissionResponse) status() domain.ExecutionStatus {
	if r.Status == nil {
		return domain.StatusFromJudge0(0, "")
	}
	return domain.StatusFromJudge0(r.Status.ID, r.Status.Description)
}

// toOutcome decodes every text field. A single malformed field fails the whole outcome.
func (r *submissionResponse) toOutcome() (*domain.ExecutionOutcome, error) {
	stdout, err := decodeField("stdout", r.Stdout)
	if err != nil {
		return nil, err
	}
	stderr, err := decodeField("stderr", r.Stderr)
	if err != nil {
		return nil, err
	}
	compileOutput, err := decodeField("compile_output", r.CompileOutput)
	if err != nil {
		return nil, err
	}
	message, err := decodeField("message", r.Message)
	if err != nil {
		return nil, err
	}

	status := r.status()
	outcome := &domain.ExecutionOutcome{
		Stdout:            stdout,
		Stderr:            stderr,
		CompileOutput:     compileOutput,
		Message:           message,
		StatusDescription: status.Description,
		Status:            status,
		ElapsedTime:       string(r.Time),
	}
	if r.Status != nil {
		outcome.StatusID = r.Status.ID
	}
	if r.Memory != nil {
		outcome.MemoryUsed = *r.Memory
	}
	return outcome, nil
}
