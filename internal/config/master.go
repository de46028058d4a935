package config

import "os"

type AppConfig struct {
	DebugMode      bool
	LogLevel       string
	HTTPConfig     *HTTPConfig
	Judge0Config   *Judge0Config
	GradingConfig  *GradingConfig
	RedisConfig    *RedisConfig
	PostgresConfig *PostgresConfig
	JwtConfig      *JwtConfig
}

func NewSystemConfig() *AppConfig {
	httpCfg := NewHTTPConfig()
	gradingCfg := NewGradingConfig()
	gradingCfg.FitWithin(httpCfg.WriteTimeout)

	return &AppConfig{
		DebugMode:      os.Getenv("DEBUG_MODE") == "true",
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		HTTPConfig:     httpCfg,
		Judge0Config:   NewJudge0Config(),
		GradingConfig:  gradingCfg,
		RedisConfig:    NewRedisConfig(),
		PostgresConfig: NewPostgresConfig(),
		JwtConfig:      NewJwtConfig(),
	}
}
