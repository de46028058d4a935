package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gitlab.com/learnhub-grader.net/internal/adapter/crypto"
	"gitlab.com/learnhub-grader.net/internal/config"
	"gitlab.com/learnhub-grader.net/internal/domain"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestBuildSubmission(t *testing.T) {
	src := writeFile(t, "main.py", "print(input())")
	tests := writeFile(t, "cases.json", `[{"input":"1","expectedOutput":"one"},{"input":"2","expected_output":"two","description":"second"}]`)

	sub, err := buildSubmission(&submitArgs{File: src, Language: "python", Expected: "", Tests: tests}, true)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if sub.SourceCode != "print(input())" || sub.Language != "python" {
		t.Fatalf("unexpected submission %+v", sub)
	}
	if sub.ExpectedOutput == nil || *sub.ExpectedOutput != "" {
		t.Fatalf("explicit empty expected output should be kept")
	}
	if len(sub.TestCases) != 2 || sub.TestCases[1].Description != "second" {
		t.Fatalf("unexpected cases %+v", sub.TestCases)
	}
	if sub.TestCases[0].ExpectedOutput != "one" || sub.TestCases[1].ExpectedOutput != "two" {
		t.Fatalf("expected outputs not parsed: %q %q", sub.TestCases[0].ExpectedOutput, sub.TestCases[1].ExpectedOutput)
	}

	sub, err = buildSubmission(&submitArgs{File: src, Language: "python"}, false)
	if err != nil || sub.ExpectedOutput != nil {
		t.Fatalf("expected no oracle, got %v %v", sub.ExpectedOutput, err)
	}
}

func TestBuildSubmissionErrors(t *testing.T) {
	if _, err := buildSubmission(&submitArgs{File: filepath.Join(t.TempDir(), "missing.py")}, false); err == nil {
		t.Fatalf("expected error for missing source")
	}
	src := writeFile(t, "main.py", "x")
	bad := writeFile(t, "cases.json", `{"not":"a list"}`)
	if _, err := buildSubmission(&submitArgs{File: src, Tests: bad}, false); err == nil {
		t.Fatalf("expected error for malformed test cases")
	}
}

func TestApplyOverrides(t *testing.T) {
	judgeCfg := &config.Judge0Config{BaseURL: "https://a", Mode: config.ExecutionModeWait, Timeout: time.Second}
	gradingCfg := &config.GradingConfig{}

	applyOverrides(&submitArgs{Endpoint: "http://b/", APIKey: "k", Mode: "poll", Timeout: 5 * time.Second, PerCase: true}, judgeCfg, gradingCfg)

	if judgeCfg.BaseURL != "http://b" || judgeCfg.APIKey != "k" || judgeCfg.Mode != config.ExecutionModePoll || judgeCfg.Timeout != 5*time.Second {
		t.Fatalf("overrides not applied: %+v", judgeCfg)
	}
	if !gradingCfg.PerCaseExecution {
		t.Fatalf("per-case not applied")
	}

	applyOverrides(&submitArgs{Mode: "bogus"}, judgeCfg, gradingCfg)
	if judgeCfg.Mode != config.ExecutionModePoll {
		t.Fatalf("unknown mode should be ignored")
	}
}

func TestSubmitCommand(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"stdout": base64.StdEncoding.EncodeToString([]byte("42\n")),
			"status": map[string]interface{}{"id": 3, "description": "Accepted"},
			"time":   "0.001",
			"memory": 512,
		})
	}))
	defer backend.Close()

	src := writeFile(t, "answer.go", "package main")
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"submit", "--file", src, "--language", "go", "--expected", "42", "--endpoint", backend.URL})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	var resp domain.SubmissionResponse
	if err := json.Unmarshal(out.Bytes(), &resp); err != nil {
		t.Fatalf("decode output %q: %v", out.String(), err)
	}
	if !resp.Success || resp.Result.Score != 100 {
		t.Fatalf("unexpected response %+v", resp.Result)
	}
}

func TestLanguagesCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"languages"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("languages failed: %v", err)
	}
	if !strings.Contains(out.String(), "python") || !strings.Contains(out.String(), "71") {
		t.Fatalf("unexpected listing %q", out.String())
	}
}

func TestTokenCommand(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-secret")
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"token", "--subject", "student-3"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("token failed: %v", err)
	}

	subject, err := crypto.NewJWTService(&config.JwtConfig{Secret: "cli-secret"}).VerifyToken(context.Background(), strings.TrimSpace(out.String()))
	if err != nil || subject != "student-3" {
		t.Fatalf("issued token did not verify: %q %v", subject, err)
	}
}
