package metrics

import (
	"sync"
	"time"
)

// Metrics collects process-wide counters exposed on /metrics.
type Metrics struct {
	mu sync.RWMutex

	// Ingestion counters
	FeedsFetched       int64
	FeedFailures       int64
	APIRequests        int64
	APIFailures        int64
	EntriesDropped     int64
	DuplicatesFiltered int64

	// AI counters
	SummariesGenerated int64
	BriefingsGenerated int64
	AudioGenerated     int64
	AIFailures         int64

	// Timings
	LastAggregationTime    time.Duration
	TotalAggregationTime   time.Duration
	AverageAggregationTime time.Duration
	AggregationCount       int64

	// Status
	LastRunTime   time.Time
	LastErrorTime time.Time
	LastError     string
	IsHealthy     bool
}

var Global = &Metrics{IsHealthy: true}

func (m *Metrics) IncrementFeedsFetched() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FeedsFetched++
}

func (m *Metrics) IncrementFeedFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FeedFailures++
}

func (m *Metrics) IncrementAPIRequests() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.APIRequests++
}

func (m *Metrics) IncrementAPIFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.APIFailures++
}

func (m *Metrics) IncrementEntriesDropped() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EntriesDropped++
}

func (m *Metrics) AddDuplicatesFiltered(n int64) {
	if n <= 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DuplicatesFiltered += n
}

func (m *Metrics) IncrementSummariesGenerated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SummariesGenerated++
}

func (m *Metrics) IncrementBriefingsGenerated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.BriefingsGenerated++
}

func (m *Metrics) IncrementAudioGenerated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AudioGenerated++
}

func (m *Metrics) IncrementAIFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AIFailures++
}

func (m *Metrics) RecordAggregationTime(duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.LastAggregationTime = duration
	m.TotalAggregationTime += duration
	m.AggregationCount++
	m.AverageAggregationTime = m.TotalAggregationTime / time.Duration(m.AggregationCount)
}

func (m *Metrics) SetLastRun() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastRunTime = time.Now()
	m.IsHealthy = true
}

func (m *Metrics) SetError(err string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastError = err
	m.LastErrorTime = time.Now()
	m.IsHealthy = false
}

func (m *Metrics) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"feeds_fetched":               m.FeedsFetched,
		"feed_failures":               m.FeedFailures,
		"api_requests":                m.APIRequests,
		"api_failures":                m.APIFailures,
		"entries_dropped":             m.EntriesDropped,
		"duplicates_filtered":         m.DuplicatesFiltered,
		"summaries_generated":         m.SummariesGenerated,
		"briefings_generated":         m.BriefingsGenerated,
		"audio_generated":             m.AudioGenerated,
		"ai_failures":                 m.AIFailures,
		"last_aggregation_time_ms":    m.LastAggregationTime.Milliseconds(),
		"average_aggregation_time_ms": m.AverageAggregationTime.Milliseconds(),
		"last_run_time":               m.LastRunTime.Format(time.RFC3339),
		"last_error_time":             m.LastErrorTime.Format(time.RFC3339),
		"last_error":                  m.LastError,
		"is_healthy":                  m.IsHealthy,
	}
}
