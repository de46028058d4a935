package domain

import "encoding/json"

// TestCase represents one input/expected-output pair used to assess a submission
type TestCase struct {
	Input          string `json:"input" db:"input"`
	ExpectedOutput string `json:"expectedOutput" db:"expected_output"`
	Description    string `json:"description" db:"description"`
}

// UnmarshalJSON also accepts expected_output, the column name used by the assessment store.
// expectedOutput wins when both are present.
func (tc *TestCase) UnmarshalJSON(data []byte) error {
	type plain TestCase
	var aux struct {
		plain
		SnakeExpectedOutput *string `json:"expected_output"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*tc = TestCase(aux.plain)

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	if _, ok := keys["expectedOutput"]; !ok && aux.SnakeExpectedOutput != nil {
		tc.ExpectedOutput = *aux.SnakeExpectedOutput
	}
	return nil
}

// Assessment is the test oracle stored for an exercise.
type Assessment struct {
	ID             string     `db:"id"`
	Title          string     `db:"title"`
	ExpectedOutput *string    `db:"expected_output"`
	TestCases      []TestCase `db:"-"`
}
