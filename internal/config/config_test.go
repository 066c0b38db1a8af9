package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "Detektor API", cfg.AppName)
	require.Equal(t, "development", cfg.AppEnv)
	require.Equal(t, ":8080", cfg.HTTPAddress())
	require.Equal(t, 50, cfg.MinTextLength)
	require.Equal(t, 10*time.Minute, cfg.ResultCacheTTL)
	require.Equal(t, 30, cfg.RateLimitMax)
	require.Equal(t, time.Minute, cfg.RateLimitWindow)
	require.False(t, cfg.CacheEnabled())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DETEKT_APP_PORT", "9090")
	t.Setenv("DETEKT_REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("DETEKT_MIN_TEXT_LENGTH", "80")
	t.Setenv("DETEKT_CACHE_TTL", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, ":9090", cfg.HTTPAddress())
	require.True(t, cfg.CacheEnabled())
	require.Equal(t, 80, cfg.MinTextLength)
	require.Equal(t, 30*time.Second, cfg.ResultCacheTTL)
}

func TestLoadRejectsInvalidTTL(t *testing.T) {
	t.Setenv("DETEKT_CACHE_TTL", "not-a-duration")

	_, err := Load()
	require.Error(t, err)
}

func TestHTTPAddressKeepsLeadingColon(t *testing.T) {
	cfg := Config{AppPort: ":3000"}
	require.Equal(t, ":3000", cfg.HTTPAddress())
}
