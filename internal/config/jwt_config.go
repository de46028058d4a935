package config

import "os"

type JwtConfig struct {
	// Secret is the HMAC key for bearer tokens. Empty disables authentication.
	Secret string
}

func NewJwtConfig() *JwtConfig {
	return &JwtConfig{
		Secret: os.Getenv("JWT_SECRET"),
	}
}
