// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// HTTP settings
	BindAddr string

	// Upstream API keys. NewsAPIKey and GeminiAPIKey may be empty: the
	// service then degrades (feed-only aggregation, AI endpoints 503).
	NewsAPIKey   string
	GeminiAPIKey string
	OpenAIAPIKey string

	// Feed settings
	FeedsConfigPath string
	PageSize        int
	RequestTimeout  time.Duration

	// AI settings
	TTSTimeout       time.Duration
	BriefingArticles int
	DigestArticles   int
	MaxGeminiPerDay  int
	MaxTTSPerDay     int
	MaxAIPerDay      int

	// Cache settings
	CacheMaxEntries   int
	BriefingStorePath string

	// App settings
	Debug bool
}

func Load() (*Config, error) {
	cfg := &Config{
		// Default values
		BindAddr:          ":8080",
		FeedsConfigPath:   "configs/feeds.yaml",
		PageSize:          8,
		RequestTimeout:    15 * time.Second,
		TTSTimeout:        50 * time.Second,
		BriefingArticles:  12,
		DigestArticles:    15,
		MaxGeminiPerDay:   200,
		MaxTTSPerDay:      20,
		MaxAIPerDay:       250,
		CacheMaxEntries:   64,
		BriefingStorePath: "briefings.json",
	}

	cfg.NewsAPIKey = os.Getenv("NEWSAPI_KEY")
	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")

	cfg.BindAddr = getEnvOrDefault("BIND_ADDR", cfg.BindAddr)
	cfg.FeedsConfigPath = getEnvOrDefault("FEEDS_CONFIG_PATH", cfg.FeedsConfigPath)
	cfg.BriefingStorePath = getEnvOrDefault("BRIEFING_STORE_PATH", cfg.BriefingStorePath)

	cfg.PageSize = getEnvIntOrDefault("PAGE_SIZE", cfg.PageSize)
	cfg.BriefingArticles = getEnvIntOrDefault("BRIEFING_ARTICLES", cfg.BriefingArticles)
	cfg.DigestArticles = getEnvIntOrDefault("DIGEST_ARTICLES", cfg.DigestArticles)
	cfg.MaxGeminiPerDay = getEnvIntOrDefault("MAX_GEMINI_PER_DAY", cfg.MaxGeminiPerDay)
	cfg.MaxTTSPerDay = getEnvIntOrDefault("MAX_TTS_PER_DAY", cfg.MaxTTSPerDay)
	cfg.MaxAIPerDay = getEnvIntOrDefault("MAX_AI_PER_DAY", cfg.MaxAIPerDay)
	cfg.CacheMaxEntries = getEnvIntOrDefault("CACHE_MAX_ENTRIES", cfg.CacheMaxEntries)

	if v := os.Getenv("REQUEST_TIMEOUT_SECONDS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.RequestTimeout = time.Duration(val) * time.Second
		}
	}
	if v := os.Getenv("TTS_TIMEOUT_SECONDS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.TTSTimeout = time.Duration(val) * time.Second
		}
	}

	if debug := os.Getenv("DEBUG"); debug == "true" {
		cfg.Debug = true
	}

	return cfg, cfg.Validate()
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil && intValue > 0 {
			return intValue
		}
	}
	return defaultValue
}

func (c *Config) Validate() error {
	if c.BindAddr == "" {
		return fmt.Errorf("BIND_ADDR must not be empty")
	}
	if c.FeedsConfigPath == "" {
		return fmt.Errorf("FEEDS_CONFIG_PATH must not be empty")
	}
	if c.PageSize <= 0 || c.PageSize > 100 {
		return fmt.Errorf("PAGE_SIZE must be between 1 and 100")
	}
	return nil
}
