package domain

// StatusKind is the closed set of execution states the grader distinguishes.
type StatusKind string

const (
	StatusInQueue           StatusKind = "IN_QUEUE"
	StatusProcessing        StatusKind = "PROCESSING"
	StatusAccepted          StatusKind = "ACCEPTED"
	StatusWrongAnswer       StatusKind = "WRONG_ANSWER"
	StatusTimeLimitExceeded StatusKind = "TIME_LIMIT_EXCEEDED"
	StatusCompilationError  StatusKind = "COMPILATION_ERROR"
	StatusRuntimeError      StatusKind = "RUNTIME_ERROR"
	StatusInternalError     StatusKind = "INTERNAL_ERROR"
	StatusOther             StatusKind = "OTHER"
)

// ExecutionStatus is the backend status as a tagged variant. Description is kept verbatim.
type ExecutionStatus struct {
	Kind        StatusKind `json:"kind"`
	Description string     `json:"description"`
}

// StatusFromJudge0 classifies a Judge0 status id.
func StatusFromJudge0(id int, description string) ExecutionStatus {
	var kind StatusKind
	switch {
	case id == 1:
		kind = StatusInQueue
	case id == 2:
		kind = StatusProcessing
	case id == 3:
		kind = StatusAccepted
	case id == 4:
		kind = StatusWrongAnswer
	case id == 5:
		kind = StatusTimeLimitExceeded
	case id == 6:
		kind = StatusCompilationError
	case id >= 7 && id <= 12:
		kind = StatusRuntimeError
	case id == 13:
		kind = StatusInternalError
	default:
		kind = StatusOther
	}
	return ExecutionStatus{Kind: kind, Description: description}
}

// Pending reports whether the backend has not finished the run yet.
func (s ExecutionStatus) Pending() bool {
	return s.Kind == StatusInQueue || s.Kind == StatusProcessing
}

// ExecutionOutcome is the normalized result of one remote execution.
// Text fields are always plain text.
type ExecutionOutcome struct {
	Stdout            string          `json:"stdout"`
	Stderr            string          `json:"stderr"`
	CompileOutput     string          `json:"compileOutput"`
	Message           string          `json:"message"`
	StatusID          int             `json:"statusId"`
	StatusDescription string          `json:"statusDescription"`
	Status            ExecutionStatus `json:"status"`
	ElapsedTime       string          `json:"elapsedTime"`
	MemoryUsed        int             `json:"memoryUsed"`
}

// HasErrors reports whether the run produced compiler diagnostics or stderr output.
func (o *ExecutionOutcome) HasErrors() bool {
	return o.Stderr != "" || o.CompileOutput != ""
}

// ErrorText joins compile output and stderr, compile output first.
func (o *ExecutionOutcome) ErrorText() string {
	switch {
	case o.CompileOutput != "" && o.Stderr != "":
		return o.CompileOutput + "\n" + o.Stderr
	case o.CompileOutput != "":
		return o.CompileOutput
	default:
		return o.Stderr
	}
}
