package domain_test

import (
	"encoding/json"
	"testing"

	"gitlab.com/learnhub-grader.net/internal/domain"
)

func TestTestCaseDecodesBothExpectedOutputKeys(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want domain.TestCase
	}{
		{"camel", `{"input":"1","expectedOutput":"42","description":"d"}`, domain.TestCase{Input: "1", ExpectedOutput: "42", Description: "d"}},
		{"snake", `{"input":"1","expected_output":"42"}`, domain.TestCase{Input: "1", ExpectedOutput: "42"}},
		{"camel wins", `{"expected_output":"a","expectedOutput":"b"}`, domain.TestCase{ExpectedOutput: "b"}},
		{"explicit empty camel wins", `{"expected_output":"a","expectedOutput":""}`, domain.TestCase{}},
		{"neither", `{"input":"x"}`, domain.TestCase{Input: "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got domain.TestCase
			if err := json.Unmarshal([]byte(tt.raw), &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTestCaseRejectsMalformedJSON(t *testing.T) {
	var tc domain.TestCase
	if err := json.Unmarshal([]byte(`{"input":1}`), &tc); err == nil {
		t.Fatalf("expected type error")
	}
}

func TestTestCaseEncodesCamelCase(t *testing.T) {
	raw, err := json.Marshal(domain.TestCase{Input: "1", ExpectedOutput: "2"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `{"input":"1","expectedOutput":"2","description":""}` {
		t.Fatalf("unexpected encoding %s", raw)
	}
}
