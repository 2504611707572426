package feed_test

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mynewsdev/mynews/internal/feed"
	"github.com/mynewsdev/mynews/internal/news"
)

type stubAPI struct {
	articles []news.Article
	panics   bool
}

func (s *stubAPI) FetchAll(ctx context.Context) []news.Article {
	if s.panics {
		panic("api down")
	}
	return s.articles
}

type stubFeeds struct {
	articles []news.Article
	panics   bool
}

func (s *stubFeeds) FetchAll(ctx context.Context, disabled map[string]bool) []news.Article {
	if s.panics {
		panic("feeds down")
	}
	return s.articles
}

func testLogger() *slog.Logger {
	return slog.Default()
}

func article(id, url string, category news.Category, age time.Duration) news.Article {
	return news.Article{
		ID:          id,
		Title:       "Titel " + id,
		URL:         url,
		PublishedAt: time.Now().Add(-age),
		Category:    category,
	}
}

func sampleSet() []news.Article {
	return []news.Article{
		article("mock-1", "https://mock/1", news.CategoryPolitik, 48*time.Hour),
		article("mock-2", "https://mock/2", news.CategorySport, 49*time.Hour),
		article("mock-3", "https://mock/3", news.CategorySport, 50*time.Hour),
		article("mock-4", "https://mock/4", news.CategoryTech, 51*time.Hour),
	}
}

func TestArticlesMergesAndSorts(t *testing.T) {
	api := &stubAPI{articles: []news.Article{
		article("api-1", "https://a/1", news.CategoryPolitik, 2*time.Hour),
		article("api-2", "https://a/2", news.CategoryPolitik, 4*time.Hour),
	}}
	feeds := &stubFeeds{articles: []news.Article{
		article("rss-1", "https://r/1", news.CategoryPolitik, 1*time.Hour),
		article("rss-2", "https://r/2", news.CategoryPolitik, 3*time.Hour),
	}}

	svc := feed.New(api, feeds, sampleSet(), testLogger())
	result := svc.Articles(context.Background(), news.CategoryForYou, nil)

	require.Equal(t, feed.SourceLive, result.Source)
	require.Len(t, result.Articles, 4)
	for i := 1; i < len(result.Articles); i++ {
		require.False(t, result.Articles[i].PublishedAt.After(result.Articles[i-1].PublishedAt),
			"articles must be ordered newest first")
	}
}

func TestArticlesDedupePrefersAPI(t *testing.T) {
	shared := "https://example.com/story"
	api := &stubAPI{articles: []news.Article{
		article("api-1", shared, news.CategoryPolitik, 2*time.Hour),
	}}
	feeds := &stubFeeds{articles: []news.Article{
		article("rss-1", shared, news.CategoryPolitik, 1*time.Hour),
		article("rss-2", "https://r/2", news.CategoryPolitik, 1*time.Hour),
		article("rss-3", "https://r/3", news.CategoryPolitik, 1*time.Hour),
	}}

	svc := feed.New(api, feeds, sampleSet(), testLogger())
	result := svc.Articles(context.Background(), news.CategoryForYou, nil)

	ids := make([]string, 0, len(result.Articles))
	for _, a := range result.Articles {
		ids = append(ids, a.ID)
	}
	require.Contains(t, ids, "api-1")
	require.NotContains(t, ids, "rss-1")
}

func TestArticlesCategoryFilter(t *testing.T) {
	feeds := &stubFeeds{articles: []news.Article{
		article("rss-1", "https://r/1", news.CategorySport, time.Hour),
		article("rss-2", "https://r/2", news.CategoryPolitik, time.Hour),
		article("rss-3", "https://r/3", news.CategorySport, time.Hour),
		article("rss-4", "https://r/4", news.CategorySport, time.Hour),
	}}

	svc := feed.New(nil, feeds, sampleSet(), testLogger())
	result := svc.Articles(context.Background(), news.CategorySport, nil)

	require.Len(t, result.Articles, 3)
	for _, a := range result.Articles {
		require.Equal(t, news.CategorySport, a.Category)
	}
}

func TestArticlesBackfillsThinResults(t *testing.T) {
	feeds := &stubFeeds{articles: []news.Article{
		article("rss-1", "https://r/1", news.CategorySport, time.Hour),
	}}

	svc := feed.New(nil, feeds, sampleSet(), testLogger())
	result := svc.Articles(context.Background(), news.CategorySport, nil)

	// One live article plus the two sport samples.
	require.Len(t, result.Articles, 3)
	require.Equal(t, "rss-1", result.Articles[0].ID)
	require.Equal(t, feed.SourceLive, result.Source)
}

func TestArticlesBackfillCappedAtTwenty(t *testing.T) {
	feeds := &stubFeeds{articles: []news.Article{
		article("rss-1", "https://r/1", news.CategorySport, time.Hour),
	}}

	samples := make([]news.Article, 0, 25)
	for i := 0; i < 25; i++ {
		samples = append(samples, article(
			fmt.Sprintf("mock-%d", i),
			fmt.Sprintf("https://mock/%d", i),
			news.CategorySport,
			time.Duration(48+i)*time.Hour,
		))
	}

	svc := feed.New(nil, feeds, samples, testLogger())
	result := svc.Articles(context.Background(), news.CategorySport, nil)

	require.Len(t, result.Articles, 20)
	require.Equal(t, "rss-1", result.Articles[0].ID)
}

func TestArticlesTotalFailureServesSamples(t *testing.T) {
	api := &stubAPI{panics: true}
	feeds := &stubFeeds{panics: true}

	svc := feed.New(api, feeds, sampleSet(), testLogger())
	result := svc.Articles(context.Background(), news.CategoryForYou, nil)

	require.Equal(t, feed.SourceMock, result.Source)
	require.Len(t, result.Articles, len(sampleSet()))
}

func TestArticlesFeedPanicAloneStaysLive(t *testing.T) {
	api := &stubAPI{articles: []news.Article{
		article("api-1", "https://a/1", news.CategoryPolitik, time.Hour),
		article("api-2", "https://a/2", news.CategoryPolitik, time.Hour),
		article("api-3", "https://a/3", news.CategoryPolitik, time.Hour),
	}}
	feeds := &stubFeeds{panics: true}

	svc := feed.New(api, feeds, sampleSet(), testLogger())
	result := svc.Articles(context.Background(), news.CategoryForYou, nil)

	require.Equal(t, feed.SourceLive, result.Source)
	require.Len(t, result.Articles, 3)
}

func TestArticlesNoSourcesConfigured(t *testing.T) {
	feeds := &stubFeeds{}

	svc := feed.New(nil, feeds, sampleSet(), testLogger())
	result := svc.Articles(context.Background(), news.CategoryForYou, nil)

	require.Equal(t, feed.SourceMock, result.Source)
	require.NotEmpty(t, result.Articles)
}

func TestTopLimitsCount(t *testing.T) {
	articles := make([]news.Article, 0, 10)
	for i := 0; i < 10; i++ {
		articles = append(articles, article(
			"rss-"+string(rune('a'+i)),
			"https://r/"+string(rune('a'+i)),
			news.CategoryPolitik,
			time.Duration(i)*time.Hour,
		))
	}
	feeds := &stubFeeds{articles: articles}

	svc := feed.New(nil, feeds, sampleSet(), testLogger())
	top := svc.Top(context.Background(), 5)

	require.Len(t, top, 5)
	require.Equal(t, "rss-a", top[0].ID)
}
