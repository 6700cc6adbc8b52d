package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvDotEnvFile, filepath.Join(t.TempDir(), "missing.env"))

	cfg := Load("test")

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultMaxRequestSize, cfg.MaxRequestSize)
	assert.Equal(t, DefaultRateLimitBurst, cfg.RateLimitBurst)
	assert.Equal(t, DefaultShutdownTimeout, cfg.ShutdownTimeout)
	assert.True(t, cfg.SeedBookings)
	require.NotNil(t, cfg.Kafka)
	assert.False(t, cfg.Kafka.Enabled())
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvDotEnvFile, filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv(EnvPort, "9090")
	t.Setenv(EnvReadTimeout, "3s")
	t.Setenv(EnvSeedBookings, "false")
	t.Setenv(EnvRateLimitRPS, "2.5")

	cfg := Load("test")

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 3*time.Second, cfg.ReadTimeout)
	assert.False(t, cfg.SeedBookings)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
}

func TestLoad_DotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=7070\nLOG_FORMAT=text\n"), 0o600))
	t.Setenv(EnvDotEnvFile, path)
	// Registered so t restores the variables godotenv sets.
	t.Setenv(EnvPort, "")
	t.Setenv(EnvLogFormat, "")
	require.NoError(t, os.Unsetenv(EnvPort))
	require.NoError(t, os.Unsetenv(EnvLogFormat))

	cfg := Load("test")

	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv(EnvDotEnvFile, filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv(EnvMaxRequestSize, "lots")
	t.Setenv(EnvIdleTimeout, "forever")

	cfg := Load("test")

	assert.Equal(t, DefaultMaxRequestSize, cfg.MaxRequestSize)
	assert.Equal(t, DefaultIdleTimeout, cfg.IdleTimeout)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Port:            "8000",
			MaxRequestSize:  1024,
			RateLimitRPS:    1,
			RateLimitBurst:  1,
			ReadTimeout:     time.Second,
			WriteTimeout:    time.Second,
			IdleTimeout:     time.Second,
			ShutdownTimeout: time.Second,
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "port not a number", mutate: func(c *Config) { c.Port = "http" }, wantErr: "Port must be between"},
		{name: "port out of range", mutate: func(c *Config) { c.Port = "70000" }, wantErr: "Port must be between"},
		{name: "zero request size", mutate: func(c *Config) { c.MaxRequestSize = 0 }, wantErr: "MaxRequestSize"},
		{name: "negative rps", mutate: func(c *Config) { c.RateLimitRPS = -1 }, wantErr: "RateLimitRPS"},
		{name: "zero shutdown timeout", mutate: func(c *Config) { c.ShutdownTimeout = 0 }, wantErr: "ShutdownTimeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
