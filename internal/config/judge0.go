package config

import (
	"strings"
	"time"
)

type ExecutionMode string

const (
	// ExecutionModeWait submits with wait=true and blocks on the response.
	ExecutionModeWait ExecutionMode = "wait"
	// ExecutionModePoll submits, then polls the submission token.
	ExecutionModePoll ExecutionMode = "poll"
)

type Judge0Config struct {
	BaseURL         string
	APIKey          string
	APIHost         string
	AuthToken       string
	Mode            ExecutionMode
	Timeout         time.Duration
	PollInterval    time.Duration
	MaxPollAttempts int
	MaxRetries      int
}

func NewJudge0Config() *Judge0Config {
	mode := ExecutionMode(strings.ToLower(getEnv("JUDGE0_MODE", string(ExecutionModeWait))))
	if mode != ExecutionModePoll {
		mode = ExecutionModeWait
	}
	maxRetries := getIntEnv("JUDGE0_MAX_RETRIES", 1)
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &Judge0Config{
		BaseURL:         strings.TrimRight(getEnv("JUDGE0_URL", "https://judge0-ce.p.rapidapi.com"), "/"),
		APIKey:          getEnv("JUDGE0_API_KEY", ""),
		APIHost:         getEnv("JUDGE0_API_HOST", "judge0-ce.p.rapidapi.com"),
		AuthToken:       getEnv("JUDGE0_AUTH_TOKEN", ""),
		Mode:            mode,
		Timeout:         getDurationEnv("JUDGE0_TIMEOUT_SEC", time.Second, 30*time.Second),
		PollInterval:    getDurationEnv("JUDGE0_POLL_INTERVAL_MS", time.Millisecond, 500*time.Millisecond),
		MaxPollAttempts: getIntEnv("JUDGE0_MAX_POLL_ATTEMPTS", 20),
		MaxRetries:      maxRetries,
	}
}
