package config

import "time"

type HTTPConfig struct {
	Port         int
	ServiceName  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// NewHTTPConfig reads the listener settings. The write timeout must outlast the execution timeout.
func NewHTTPConfig() *HTTPConfig {
	return &HTTPConfig{
		Port:         getIntEnv("APP_PORT", 8082),
		ServiceName:  getEnv("SERVICE_NAME", "grader"),
		ReadTimeout:  getDurationEnv("HTTP_READ_TIMEOUT_SEC", time.Second, 15*time.Second),
		WriteTimeout: getDurationEnv("HTTP_WRITE_TIMEOUT_SEC", time.Second, 90*time.Second),
		IdleTimeout:  getDurationEnv("HTTP_IDLE_TIMEOUT_SEC", time.Second, 60*time.Second),
	}
}
