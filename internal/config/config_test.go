package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("RESEND_API_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, int64(64<<10), cfg.Server.MaxBodyBytes)
	assert.Equal(t, "resend", cfg.Email.Provider)
	assert.Equal(t, "onboarding@resend.dev", cfg.Email.From)
	assert.Equal(t, "tinadigital.ok@gmail.com", cfg.Email.To)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 10*time.Minute, cfg.RateLimit.Window)
	assert.False(t, cfg.RateLimit.TrustProxy)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Run("RESEND_API_KEY sets the resend key", func(t *testing.T) {
		t.Setenv("RESEND_API_KEY", "re_123")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "re_123", cfg.Email.Resend.APIKey)
	})

	t.Run("prefixed variables override defaults", func(t *testing.T) {
		t.Setenv("WEBQUEST_SERVER_PORT", "9090")
		t.Setenv("WEBQUEST_LOG_LEVEL", "debug")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, "debug", cfg.Log.Level)
	})
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	yaml := []byte("email:\n  provider: gmail\n  to: otra@example.com\nrate_limit:\n  enabled: true\n  limit: 2\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "gmail", cfg.Email.Provider)
	assert.Equal(t, "otra@example.com", cfg.Email.To)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 2, cfg.RateLimit.Limit)
}
