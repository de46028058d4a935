package config

import "time"

// requestTimeoutMargin leaves room to write the response before the server write timeout fires.
const requestTimeoutMargin = 5 * time.Second

type GradingConfig struct {
	// PerCaseExecution runs the program once per test case input instead of once per submission.
	PerCaseExecution bool
	// MaxConcurrency bounds in-flight backend calls per service, across batch and per-case fan-out.
	MaxConcurrency int
	MaxBatchSize   int
	// MaxTestCases caps test cases per submission. 0 means no cap.
	MaxTestCases int
	// RequestTimeout bounds a whole submission or batch. 0 means no bound.
	RequestTimeout time.Duration
}

func NewGradingConfig() *GradingConfig {
	concurrency := getIntEnv("GRADER_MAX_CONCURRENCY", 4)
	if concurrency < 1 {
		concurrency = 1
	}
	batch := getIntEnv("GRADER_MAX_BATCH", 20)
	if batch < 1 {
		batch = 1
	}
	maxCases := getIntEnv("GRADER_MAX_TEST_CASES", 50)
	if maxCases < 0 {
		maxCases = 0
	}
	return &GradingConfig{
		PerCaseExecution: getBoolEnv("GRADER_PER_CASE_EXECUTION", false),
		MaxConcurrency:   concurrency,
		MaxBatchSize:     batch,
		MaxTestCases:     maxCases,
		RequestTimeout:   getDurationEnv("GRADER_REQUEST_TIMEOUT_SEC", time.Second, 80*time.Second),
	}
}

// FitWithin shortens RequestTimeout so a graded response is always written before
// writeTimeout. A zero or negative writeTimeout leaves the config unchanged.
func (c *GradingConfig) FitWithin(writeTimeout time.Duration) {
	if writeTimeout <= 0 {
		return
	}
	limit := writeTimeout - requestTimeoutMargin
	if limit < time.Second {
		limit = writeTimeout / 2
	}
	if c.RequestTimeout <= 0 || c.RequestTimeout > limit {
		c.RequestTimeout = limit
	}
}
