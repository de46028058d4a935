package config

import "time"

type RedisConfig struct {
	Enabled   bool
	DB        int
	Url       string
	Password  string
	ResultTTL time.Duration
}

func NewRedisConfig() *RedisConfig {
	return &RedisConfig{
		Enabled:   getBoolEnv("REDIS_ENABLED", false),
		DB:        getIntEnv("REDIS_DB", 0),
		Url:       getEnv("REDIS_ADDR", "localhost:6379"),
		Password:  getEnv("REDIS_PASSWORD", ""),
		ResultTTL: getDurationEnv("RESULT_TTL_SEC", time.Second, time.Hour),
	}
}
