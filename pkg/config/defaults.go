package config

import "time"

const (
	DefaultPort      = "8000"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultRateLimitRPS   = 20.0
	DefaultRateLimitBurst = 40

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultSeedBookings = true

	DefaultDotEnvFile = ".env"
)
