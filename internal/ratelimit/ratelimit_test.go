package ratelimit

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGeminiBudgetExhaustion(t *testing.T) {
	b := NewAIBudget(2, 0, 0, slog.Default())

	require.NoError(t, b.UseGemini())
	require.NoError(t, b.UseGemini())
	require.Error(t, b.UseGemini())
}

func TestTotalBudgetCoversAllServices(t *testing.T) {
	b := NewAIBudget(0, 0, 2, slog.Default())

	require.NoError(t, b.UseGemini())
	require.NoError(t, b.UseTTS())
	require.Error(t, b.UseGemini())
	require.Error(t, b.UseTTS())
}

func TestZeroLimitsMeanUnlimited(t *testing.T) {
	b := NewAIBudget(0, 0, 0, slog.Default())

	for i := 0; i < 100; i++ {
		require.NoError(t, b.UseGemini())
		require.NoError(t, b.UseTTS())
	}
}

func TestStatsReflectUsage(t *testing.T) {
	b := NewAIBudget(5, 5, 10, slog.Default())

	require.NoError(t, b.UseGemini())
	require.NoError(t, b.UseTTS())
	b.RecordCacheHit()

	stats := b.GetStats()
	require.Equal(t, 1, stats["gemini_used"])
	require.Equal(t, 1, stats["tts_used"])
	require.Equal(t, 2, stats["total_used"])
	require.Equal(t, 1, stats["cache_hits"])
}
