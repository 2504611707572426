// Package ratelimit enforces daily budgets on the paid AI services.
package ratelimit

import (
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// AIBudget tracks daily request counts for the text-generation and
// speech services. A limit of 0 means unlimited. Counters reset 24h
// after the last reset.
type AIBudget struct {
	mu          sync.Mutex
	geminiCount int
	ttsCount    int
	totalCount  int
	maxGemini   int
	maxTTS      int
	maxTotal    int
	resetTime   time.Time
	cacheHits   int
	log         *slog.Logger
}

func NewAIBudget(maxGemini, maxTTS, maxTotal int, log *slog.Logger) *AIBudget {
	return &AIBudget{
		maxGemini: maxGemini,
		maxTTS:    maxTTS,
		maxTotal:  maxTotal,
		resetTime: time.Now().Add(24 * time.Hour),
		log:       log,
	}
}

// UseGemini reserves one text-generation request, or reports that the
// daily budget is exhausted.
func (b *AIBudget) UseGemini() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.checkReset()

	if b.maxGemini > 0 && b.geminiCount >= b.maxGemini {
		return fmt.Errorf("gemini daily budget exceeded (%d/%d)", b.geminiCount, b.maxGemini)
	}
	if b.maxTotal > 0 && b.totalCount >= b.maxTotal {
		return fmt.Errorf("total AI daily budget exceeded (%d/%d)", b.totalCount, b.maxTotal)
	}

	b.geminiCount++
	b.totalCount++
	b.log.Debug("ai budget", slog.Int("gemini", b.geminiCount), slog.Int("total", b.totalCount))
	return nil
}

// UseTTS reserves one speech request.
func (b *AIBudget) UseTTS() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.checkReset()

	if b.maxTTS > 0 && b.ttsCount >= b.maxTTS {
		return fmt.Errorf("tts daily budget exceeded (%d/%d)", b.ttsCount, b.maxTTS)
	}
	if b.maxTotal > 0 && b.totalCount >= b.maxTotal {
		return fmt.Errorf("total AI daily budget exceeded (%d/%d)", b.totalCount, b.maxTotal)
	}

	b.ttsCount++
	b.totalCount++
	b.log.Debug("ai budget", slog.Int("tts", b.ttsCount), slog.Int("total", b.totalCount))
	return nil
}

// RecordCacheHit records a request answered from cache without
// spending budget.
func (b *AIBudget) RecordCacheHit() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cacheHits++
}

func (b *AIBudget) GetStats() map[string]interface{} {
	b.mu.Lock()
	defer b.mu.Unlock()

	return map[string]interface{}{
		"gemini_used":  b.geminiCount,
		"gemini_limit": b.maxGemini,
		"tts_used":     b.ttsCount,
		"tts_limit":    b.maxTTS,
		"total_used":   b.totalCount,
		"total_limit":  b.maxTotal,
		"cache_hits":   b.cacheHits,
		"reset_time":   b.resetTime.Format(time.RFC3339),
	}
}

func (b *AIBudget) checkReset() {
	if time.Now().After(b.resetTime) {
		b.log.Info("resetting ai budget counters",
			slog.Int("gemini_used", b.geminiCount),
			slog.Int("tts_used", b.ttsCount),
			slog.Int("total_used", b.totalCount))
		b.geminiCount = 0
		b.ttsCount = 0
		b.totalCount = 0
		b.cacheHits = 0
		b.resetTime = time.Now().Add(24 * time.Hour)
	}
}
