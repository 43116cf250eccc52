package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "") // registers cleanup to restore the original value
	os.Unsetenv(key)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/fintrack")
	unsetenv(t, "PORT")
	unsetenv(t, "ALLOWED_ORIGINS")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres://localhost/fintrack", cfg.DatabaseURL)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
}

func TestLoadAllowedOrigins(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/fintrack")
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com, https://staging.example.com ,")

	cfg := Load()
	assert.Equal(t, []string{"https://app.example.com", "https://staging.example.com"}, cfg.AllowedOrigins)
}
