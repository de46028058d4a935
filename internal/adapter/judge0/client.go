package judge0

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
	"unicode/utf8"

	"gitlab.com/learnhub-grader.net/internal/config"
	"gitlab.com/learnhub-grader.net/internal/core/ports/primary"
	"gitlab.com/learnhub-grader.net/internal/core/ports/secondary"
	"gitlab.com/learnhub-grader.net/internal/domain"
	"gitlab.com/learnhub-grader.net/internal/static/errs"
)

const (
	maxResponseBytes = 4 << 20
	maxErrorBody     = 512
	responseFields   = "token,stdout,stderr,compile_output,message,status,time,memory"
)

var _ secondary.CodeExecutor = (*Client)(nil)

// Client executes code on a Judge0 compatible backend. It is safe for concurrent use
// and keeps no state between calls.
type Client struct {
	cfg        *config.Judge0Config
	httpClient *http.Client
	logger     primary.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the default transport.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a new execution backend client
func NewClient(cfg *config.Judge0Config, logger primary.Logger, opts ...Option) *Client {
	c := &Client{
		cfg:        cfg,
		httpClient: &http.Client{},
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Execute runs the source once and returns the decoded outcome. The call is bounded by
// the configured timeout and aborted when ctx is cancelled.
func (c *Client) Execute(ctx context.Context, sourceCode string, languageID domain.LanguageID, stdin string) (*domain.ExecutionOutcome, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req := submissionRequest{
		SourceCode: Encode(sourceCode),
		LanguageID: int(languageID),
		Stdin:      Encode(stdin),
	}

	c.logger.Debug("Submitting code for execution", "languageId", languageID, "mode", c.cfg.Mode)

	var (
		resp *submissionResponse
		err  error
	)
	switch c.cfg.Mode {
	case config.ExecutionModePoll:
		resp, err = c.submitAndPoll(ctx, req)
	default:
		resp, err = c.submitAndWait(ctx, req)
	}
	if err != nil {
		return nil, err
	}

	outcome, err := resp.toOutcome()
	if err != nil {
		return nil, errs.NewExecutionError(errs.ErrEncoding, 0, "", err)
	}

	c.logger.Debug("Execution finished",
		"languageId", languageID,
		"status", outcome.StatusDescription,
		"time", outcome.ElapsedTime)
	return outcome, nil
}

func (c *Client) submitAndWait(ctx context.Context, req submissionRequest) (*submissionResponse, error) {
	var resp submissionResponse
	if err := c.do(ctx, http.MethodPost, c.submissionsURL(true), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// submitAndPoll treats In Queue and Processing as retryable until MaxPollAttempts is spent.
func (c *Client) submitAndPoll(ctx context.Context, req submissionRequest) (*submissionResponse, error) {
	var created submissionResponse
	if err := c.do(ctx, http.MethodPost, c.submissionsURL(false), req, &created); err != nil {
		return nil, err
	}
	if created.Token == "" {
		return nil, errs.NewExecutionError(errs.ErrExecutionTransport, 0, "", errors.New("backend returned no submission token"))
	}

	ticker := time.NewTicker(c.cfg.PollInterval)
	defer ticker.Stop()

	for attempt := 1; attempt <= c.cfg.MaxPollAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return nil, contextError(ctx, ctx.Err())
		case <-ticker.C:
		}

		var resp submissionResponse
		if err := c.do(ctx, http.MethodGet, c.tokenURL(created.Token), nil, &resp); err != nil {
			return nil, err
		}
		if !resp.status().Pending() {
			return &resp, nil
		}
		c.logger.Debug("Submission still processing", "token", created.Token, "attempt", attempt)
	}

	return nil, errs.NewExecutionError(errs.ErrExecutionTimeout, 0, "",
		fmt.Errorf("submission %s still processing after %d polls", created.Token, c.cfg.MaxPollAttempts))
}

// do sends one request, retrying up to MaxRetries times on network errors and gateway statuses.
func (c *Client) do(ctx context.Context, method, endpoint string, payload, out interface{}) error {
	var err error
	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		err = c.doOnce(ctx, method, endpoint, payload, out)
		if err == nil || !retryable(ctx, err) || attempt == c.cfg.MaxRetries {
			break
		}
		c.logger.Warn("Retrying execution backend call", "attempt", attempt+1, "error", err)
	}
	return err
}

func (c *Client) doOnce(ctx context.Context, method, endpoint string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return errs.NewExecutionError(errs.ErrExecutionTransport, 0, "", fmt.Errorf("failed to marshal request: %w", err))
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return errs.NewExecutionError(errs.ErrExecutionTransport, 0, "", fmt.Errorf("failed to build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.cfg.APIKey != "" {
		req.Header.Set("X-RapidAPI-Key", c.cfg.APIKey)
		req.Header.Set("X-RapidAPI-Host", c.cfg.APIHost)
	}
	if c.cfg.AuthToken != "" {
		req.Header.Set("X-Auth-Token", c.cfg.AuthToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return contextError(ctx, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return contextError(ctx, fmt.Errorf("failed to read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errs.NewExecutionError(errs.ErrExecutionTransport, resp.StatusCode, truncate(string(raw), maxErrorBody), nil)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return errs.NewExecutionError(errs.ErrExecutionTransport, resp.StatusCode, truncate(string(raw), maxErrorBody),
			fmt.Errorf("failed to decode response: %w", err))
	}
	return nil
}

func (c *Client) submissionsURL(wait bool) string {
	query := url.Values{}
	query.Set("base64_encoded", "true")
	query.Set("wait", fmt.Sprintf("%t", wait))
	query.Set("fields", responseFields)
	return c.cfg.BaseURL + "/submissions?" + query.Encode()
}

func (c *Client) tokenURL(token string) string {
	query := url.Values{}
	query.Set("base64_encoded", "true")
	query.Set("fields", responseFields)
	return c.cfg.BaseURL + "/submissions/" + url.PathEscape(token) + "?" + query.Encode()
}

// contextError classifies a failed round trip as timeout or transport failure.
func contextError(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return errs.NewExecutionError(errs.ErrExecutionTimeout, 0, "", err)
	}
	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		return errs.NewExecutionError(errs.ErrExecutionTimeout, 0, "", err)
	}
	return errs.NewExecutionError(errs.ErrExecutionTransport, 0, "", err)
}

func retryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	var execErr *errs.ExecutionError
	if !errors.As(err, &execErr) || !errors.Is(execErr.Kind, errs.ErrExecutionTransport) {
		return false
	}
	switch execErr.StatusCode {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	case 0:
		var urlErr *url.Error
		return errors.As(execErr.Err, &urlErr)
	}
	return false
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
