package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mynewsdev/mynews/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"BIND_ADDR", "NEWSAPI_KEY", "GEMINI_API_KEY", "OPENAI_API_KEY",
		"FEEDS_CONFIG_PATH", "PAGE_SIZE", "REQUEST_TIMEOUT_SECONDS",
		"TTS_TIMEOUT_SECONDS", "BRIEFING_ARTICLES", "DIGEST_ARTICLES",
		"MAX_GEMINI_PER_DAY", "MAX_TTS_PER_DAY", "MAX_AI_PER_DAY",
		"CACHE_MAX_ENTRIES", "BRIEFING_STORE_PATH", "DEBUG",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.BindAddr)
	require.Equal(t, "configs/feeds.yaml", cfg.FeedsConfigPath)
	require.Equal(t, 8, cfg.PageSize)
	require.Equal(t, 15*time.Second, cfg.RequestTimeout)
	require.Equal(t, 50*time.Second, cfg.TTSTimeout)
	require.Equal(t, 12, cfg.BriefingArticles)
	require.Equal(t, 15, cfg.DigestArticles)
	require.Equal(t, 64, cfg.CacheMaxEntries)
	require.False(t, cfg.Debug)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("BIND_ADDR", ":9090")
	t.Setenv("NEWSAPI_KEY", "news-key")
	t.Setenv("GEMINI_API_KEY", "gemini-key")
	t.Setenv("PAGE_SIZE", "20")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "30")
	t.Setenv("MAX_GEMINI_PER_DAY", "50")
	t.Setenv("DEBUG", "true")

	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, ":9090", cfg.BindAddr)
	require.Equal(t, "news-key", cfg.NewsAPIKey)
	require.Equal(t, "gemini-key", cfg.GeminiAPIKey)
	require.Equal(t, 20, cfg.PageSize)
	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
	require.Equal(t, 50, cfg.MaxGeminiPerDay)
	require.True(t, cfg.Debug)
}

func TestValidateRejectsBadPageSize(t *testing.T) {
	clearEnv(t)
	t.Setenv("PAGE_SIZE", "200")

	_, err := config.Load()
	require.Error(t, err)
}
