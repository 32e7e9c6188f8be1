package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			JWTSecret:      "secure-secret-at-least-32-chars-long",
			Port:           "8080",
			DataFile:       "data/posts.json",
			RedisURL:       "localhost:6379",
			AllowedOrigins: "http://localhost:3000",
			Env:            "development",
		}
	}

	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{"valid development", func(c *Config) {}, false},
		{"missing port", func(c *Config) { c.Port = "" }, true},
		{"missing jwt secret", func(c *Config) { c.JWTSecret = "" }, true},
		{"missing data file", func(c *Config) { c.DataFile = "" }, true},
		{"short secret allowed in development", func(c *Config) { c.JWTSecret = "short" }, false},
		{"short secret rejected in production", func(c *Config) {
			c.Env = "production"
			c.JWTSecret = "short"
		}, true},
		{"default secret rejected in production", func(c *Config) {
			c.Env = "production"
			c.JWTSecret = "your-secret-key-change-in-production"
		}, true},
		{"strong secret fine in production", func(c *Config) { c.Env = "production" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("APP_ENV", "development")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "data/posts.json", cfg.DataFile)
	assert.Equal(t, "localhost:6379", cfg.RedisURL)
	assert.Equal(t, "development", cfg.Env)
	assert.NotEmpty(t, cfg.JWTSecret)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("PORT", "9999")
	t.Setenv("DATA_FILE", "/tmp/other.json")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "/tmp/other.json", cfg.DataFile)
}
