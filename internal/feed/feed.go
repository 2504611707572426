// Package feed merges all news sources into the single ordered list
// served to clients.
package feed

import (
	"context"
	"log/slog"
	"time"

	"github.com/mynewsdev/mynews/internal/metrics"
	"github.com/mynewsdev/mynews/internal/news"
)

const (
	// backfillFloor is the minimum number of live results below which
	// sample data is mixed in.
	backfillFloor = 3
	// backfillCap bounds the combined result after backfill.
	backfillCap = 20
)

// SourceLive marks a response that contains (or could contain) real
// upstream data; SourceMock marks a pure sample-data response.
const (
	SourceLive = "live"
	SourceMock = "mock"
)

// HeadlineSource is the structured-API adapter.
type HeadlineSource interface {
	FetchAll(ctx context.Context) []news.Article
}

// FeedSource is the RSS/Atom adapter.
type FeedSource interface {
	FetchAll(ctx context.Context, disabled map[string]bool) []news.Article
}

// Result is the response shape of the feed endpoint.
type Result struct {
	Articles []news.Article `json:"articles"`
	Source   string         `json:"source"`
}

// Service aggregates the structured API and the feed sources,
// deduplicates, orders by recency and backfills thin results with
// static sample data. It never fails: under total source failure it
// serves the sample set.
type Service struct {
	api     HeadlineSource // nil when no API key is configured
	feeds   FeedSource
	samples []news.Article
	log     *slog.Logger
}

func New(api HeadlineSource, feeds FeedSource, samples []news.Article, log *slog.Logger) *Service {
	return &Service{api: api, feeds: feeds, samples: samples, log: log}
}

// Articles returns the aggregated, filtered article list for one
// category. disabled names feed sources excluded for this request.
func (s *Service) Articles(ctx context.Context, category news.Category, disabled map[string]bool) Result {
	start := time.Now()
	defer func() {
		metrics.Global.RecordAggregationTime(time.Since(start))
		metrics.Global.SetLastRun()
	}()

	var (
		apiArticles, feedArticles []news.Article
		apiFailed, feedsFailed    bool
	)

	done := make(chan struct{}, 2)
	go func() {
		defer func() { done <- struct{}{} }()
		defer func() {
			if r := recover(); r != nil {
				s.log.Error("newsapi adapter panicked", slog.Any("panic", r))
				apiFailed = true
			}
		}()
		if s.api != nil {
			apiArticles = s.api.FetchAll(ctx)
		}
	}()
	go func() {
		defer func() { done <- struct{}{} }()
		defer func() {
			if r := recover(); r != nil {
				s.log.Error("feed adapter panicked", slog.Any("panic", r))
				feedsFailed = true
			}
		}()
		if s.feeds != nil {
			feedArticles = s.feeds.FetchAll(ctx, disabled)
		}
	}()
	<-done
	<-done

	if apiFailed && feedsFailed {
		metrics.Global.SetError("all news sources failed")
		return Result{Articles: news.FilterByCategory(s.samples, category), Source: SourceMock}
	}

	// Structured-API entries go first so they win URL dedup ties.
	merged := make([]news.Article, 0, len(apiArticles)+len(feedArticles))
	merged = append(merged, apiArticles...)
	merged = append(merged, feedArticles...)
	before := len(merged)
	merged = news.DedupeByURL(merged)
	metrics.Global.AddDuplicatesFiltered(int64(before - len(merged)))
	news.SortByRecency(merged)

	articles := news.FilterByCategory(merged, category)
	if len(articles) < backfillFloor {
		articles = append(articles, news.FilterByCategory(s.samples, category)...)
		if len(articles) > backfillCap {
			articles = articles[:backfillCap]
		}
	}

	if articles == nil {
		articles = []news.Article{}
	}

	source := SourceMock
	if s.api != nil || len(feedArticles) > 0 {
		source = SourceLive
	}
	return Result{Articles: articles, Source: source}
}

// Top returns the newest n articles across all categories, for the
// briefing and digest prompts.
func (s *Service) Top(ctx context.Context, n int) []news.Article {
	articles := s.Articles(ctx, news.CategoryForYou, nil).Articles
	if len(articles) > n {
		articles = articles[:n]
	}
	return articles
}
