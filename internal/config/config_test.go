package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("MISTRAL_API_KEY", "sk-test")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "sk-test", cfg.Mistral.APIKey)
	require.Equal(t, "mistral-small-latest", cfg.Mistral.Model)
	require.Equal(t, 60*time.Second, cfg.Mistral.Timeout)
	require.Equal(t, "uploads", cfg.Upload.Dir)
	require.Equal(t, "0.0.0.0:8000", cfg.Addr())
	require.False(t, cfg.RateLimit.Enabled)
	require.Empty(t, cfg.MongoDB.URI)
}

func TestLoadConfigOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("MISTRAL_API_KEY", "sk-test")
	t.Setenv("UPLOAD_DIR", "/tmp/docs")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("MISTRAL_TIMEOUT", "5")
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_RPS", "0.5")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "/tmp/docs", cfg.Upload.Dir)
	require.Equal(t, "9090", cfg.Server.Port)
	require.Equal(t, 5*time.Second, cfg.Mistral.Timeout)
	require.True(t, cfg.RateLimit.Enabled)
	require.Equal(t, 0.5, cfg.RateLimit.RPS)
}

func TestLoadConfigEmptyUploadDirDisablesArchive(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("MISTRAL_API_KEY", "sk-test")
	t.Setenv("UPLOAD_DIR", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Empty(t, cfg.Upload.Dir)
}

func TestLoadConfigRequiresAPIKey(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("MISTRAL_API_KEY", "")

	_, err := LoadConfig()
	require.ErrorIs(t, err, ErrMissingAPIKey)
}
