package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"gitlab.com/learnhub-grader.net/internal/adapter/judge0"
	"gitlab.com/learnhub-grader.net/internal/config"
	"gitlab.com/learnhub-grader.net/internal/core/services/submission"
	"gitlab.com/learnhub-grader.net/internal/domain"
	"gitlab.com/learnhub-grader.net/internal/global/logger"
)

var errNotGraded = errors.New("submission was not graded")

type submitArgs struct {
	File     string
	Language string
	Stdin    string
	Expected string
	Tests    string
	Endpoint string
	APIKey   string
	Mode     string
	Timeout  time.Duration
	PerCase  bool
}

var submitFlags submitArgs

// submitCmd represents the submit command
var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Execute and grade a source file",
	Example: `  gradectl submit --file hello.py --language python --expected "hello"
  gradectl submit --file sum.go --language go --tests cases.json --per-case`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sub, err := buildSubmission(&submitFlags, cmd.Flags().Changed("expected"))
		if err != nil {
			return err
		}

		judgeCfg := config.NewJudge0Config()
		gradingCfg := config.NewGradingConfig()
		applyOverrides(&submitFlags, judgeCfg, gradingCfg)

		svc := submission.NewSubmissionService(
			judge0.NewClient(judgeCfg, logger.Logger.Named("judge0")),
			nil,
			gradingCfg,
			logger.Logger.Named("submission"),
		)
		resp := svc.HandleSubmission(cmd.Context(), sub)

		if err := printResponse(cmd.OutOrStdout(), resp); err != nil {
			return err
		}
		if !resp.Success {
			return errNotGraded
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(submitCmd)

	submitCmd.Flags().StringVarP(&submitFlags.File, "file", "f", "", "source file to submit")
	submitCmd.Flags().StringVarP(&submitFlags.Language, "language", "l", "", "language name, e.g. python or c++")
	submitCmd.Flags().StringVar(&submitFlags.Stdin, "stdin", "", "standard input for the primary run")
	submitCmd.Flags().StringVar(&submitFlags.Expected, "expected", "", "expected output of the primary run")
	submitCmd.Flags().StringVar(&submitFlags.Tests, "tests", "", "JSON file with test cases [{\"input\",\"expectedOutput\",\"description\"}]")
	submitCmd.Flags().StringVar(&submitFlags.Endpoint, "endpoint", "", "execution backend base URL (overrides JUDGE0_URL)")
	submitCmd.Flags().StringVar(&submitFlags.APIKey, "api-key", "", "execution backend API key (overrides JUDGE0_API_KEY)")
	submitCmd.Flags().StringVar(&submitFlags.Mode, "mode", "", "wait or poll (overrides JUDGE0_MODE)")
	submitCmd.Flags().DurationVar(&submitFlags.Timeout, "timeout", 0, "execution timeout (overrides JUDGE0_TIMEOUT_SEC)")
	submitCmd.Flags().BoolVar(&submitFlags.PerCase, "per-case", false, "run every test case separately")
	_ = submitCmd.MarkFlagRequired("file")
	_ = submitCmd.MarkFlagRequired("language")
}

func buildSubmission(a *submitArgs, hasExpected bool) (*domain.Submission, error) {
	code, err := os.ReadFile(a.File)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}

	sub := domain.NewSubmission("", string(code), a.Language, a.Stdin)
	if hasExpected {
		expected := a.Expected
		sub.ExpectedOutput = &expected
	}
	if a.Tests != "" {
		sub.TestCases, err = readTestCases(a.Tests)
		if err != nil {
			return nil, err
		}
	}
	return sub, nil
}

func readTestCases(path string) ([]domain.TestCase, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read test cases: %w", err)
	}
	var cases []domain.TestCase
	if err := json.Unmarshal(raw, &cases); err != nil {
		return nil, fmt.Errorf("parse test cases %s: %w", path, err)
	}
	return cases, nil
}

func applyOverrides(a *submitArgs, judgeCfg *config.Judge0Config, gradingCfg *config.GradingConfig) {
	if a.Endpoint != "" {
		judgeCfg.BaseURL = strings.TrimRight(a.Endpoint, "/")
	}
	if a.APIKey != "" {
		judgeCfg.APIKey = a.APIKey
	}
	switch config.ExecutionMode(a.Mode) {
	case config.ExecutionModeWait, config.ExecutionModePoll:
		judgeCfg.Mode = config.ExecutionMode(a.Mode)
	}
	if a.Timeout > 0 {
		judgeCfg.Timeout = a.Timeout
	}
	if a.PerCase {
		gradingCfg.PerCaseExecution = true
	}
}

func printResponse(w io.Writer, resp *domain.SubmissionResponse) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}
