package domain_test

import (
	"errors"
	"strings"
	"testing"

	"gitlab.com/learnhub-grader.net/internal/domain"
	"gitlab.com/learnhub-grader.net/internal/static/errs"
)

func TestResolveLanguageIsCaseInsensitiveAndTotal(t *testing.T) {
	t.Parallel()
	for _, lang := range domain.SupportedLanguages() {
		for _, variant := range []string{lang.Name, strings.ToUpper(lang.Name), strings.ToUpper(lang.Name[:1]) + lang.Name[1:], " " + lang.Name + "\n"} {
			id, err := domain.ResolveLanguage(variant)
			if err != nil {
				t.Fatalf("resolve %q: %v", variant, err)
			}
			if id != lang.ID {
				t.Fatalf("resolve %q = %d, want %d", variant, id, lang.ID)
			}
		}
	}
}

func TestResolveLanguageKnownIDs(t *testing.T) {
	t.Parallel()
	tests := map[string]domain.LanguageID{
		"python":     71,
		"JavaScript": 63,
		"C++":        54,
		"c#":         51,
		"Golang":     60,
		"TypeScript": 74,
	}
	for name, want := range tests {
		got, err := domain.ResolveLanguage(name)
		if err != nil {
			t.Fatalf("resolve %q: %v", name, err)
		}
		if got != want {
			t.Fatalf("resolve %q = %d, want %d", name, got, want)
		}
	}
}

func TestResolveLanguageRejectsUnknown(t *testing.T) {
	t.Parallel()
	for _, name := range []string{"cobol", "", "pythonn", "brainf*ck"} {
		if _, err := domain.ResolveLanguage(name); !errors.Is(err, errs.ErrUnsupportedLanguage) {
			t.Fatalf("resolve %q: expected ErrUnsupportedLanguage, got %v", name, err)
		}
	}
}

func TestSupportedLanguagesCoversRequiredSet(t *testing.T) {
	t.Parallel()
	required := []string{"javascript", "python", "java", "cpp", "c", "csharp", "go", "rust", "php", "ruby", "swift", "kotlin", "typescript"}
	have := map[string]bool{}
	for _, lang := range domain.SupportedLanguages() {
		have[lang.Name] = true
	}
	for _, name := range required {
		if !have[name] {
			t.Fatalf("missing language %q", name)
		}
	}

	listed := domain.SupportedLanguages()
	listed[0].ID = -1
	if domain.SupportedLanguages()[0].ID == -1 {
		t.Fatal("registry must not be mutable through the returned slice")
	}
}

func TestStatusFromJudge0(t *testing.T) {
	t.Parallel()
	tests := []struct {
		id   int
		want domain.StatusKind
	}{
		{1, domain.StatusInQueue},
		{2, domain.StatusProcessing},
		{3, domain.StatusAccepted},
		{4, domain.StatusWrongAnswer},
		{5, domain.StatusTimeLimitExceeded},
		{6, domain.StatusCompilationError},
		{7, domain.StatusRuntimeError},
		{12, domain.StatusRuntimeError},
		{13, domain.StatusInternalError},
		{14, domain.StatusOther},
		{0, domain.StatusOther},
	}
	for _, tt := range tests {
		got := domain.StatusFromJudge0(tt.id, "desc")
		if got.Kind != tt.want {
			t.Fatalf("status %d = %s, want %s", tt.id, got.Kind, tt.want)
		}
		if got.Description != "desc" {
			t.Fatalf("description must pass through verbatim")
		}
	}
	if !domain.StatusFromJudge0(2, "Processing").Pending() || domain.StatusFromJudge0(3, "Accepted").Pending() {
		t.Fatal("unexpected pending classification")
	}
}

func TestSubmissionPrimaryInputs(t *testing.T) {
	t.Parallel()
	sub := domain.NewSubmission("u1", "code", "python", "")
	if sub.PrimaryStdin() != "" || sub.PrimaryExpectedOutput() != "" {
		t.Fatal("empty submission should have empty primary inputs")
	}

	sub.TestCases = []domain.TestCase{{Input: "3", ExpectedOutput: "9"}, {Input: "4", ExpectedOutput: "16"}}
	if sub.PrimaryStdin() != "3" || sub.PrimaryExpectedOutput() != "9" {
		t.Fatalf("first test case should drive primary run: %q %q", sub.PrimaryStdin(), sub.PrimaryExpectedOutput())
	}

	expected := "override"
	sub.Stdin = "explicit"
	sub.ExpectedOutput = &expected
	if sub.PrimaryStdin() != "explicit" || sub.PrimaryExpectedOutput() != "override" {
		t.Fatal("explicit stdin and expected output take precedence")
	}
}
