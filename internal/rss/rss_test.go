package rss

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mynewsdev/mynews/internal/news"
)

const testFeedXML = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>Testquelle</title>
<item>
  <title>Erster &lt;b&gt;Artikel&lt;/b&gt;</title>
  <link>https://example.com/1</link>
  <description><![CDATA[<p>Beschreibung mit <img src="https://example.com/bild.jpg"> Markup</p>]]></description>
  <pubDate>Sat, 29 Aug 2026 08:00:00 GMT</pubDate>
</item>
<item>
  <title></title>
  <link>https://example.com/2</link>
  <description>Eintrag ohne Titel</description>
</item>
<item>
  <title>Mit Enclosure</title>
  <link>https://example.com/3</link>
  <description>Text</description>
  <enclosure url="https://example.com/enc.jpg" type="image/jpeg" length="1"/>
</item>
</channel>
</rss>`

func serveXML(t *testing.T, xml string) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(xml))
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestFetchAllNormalizesEntries(t *testing.T) {
	url := serveXML(t, testFeedXML)
	source := NewSource([]FeedConfig{
		{URL: url, Name: "Testquelle", Category: news.CategoryPolitik},
	}, 5*time.Second, slog.Default())

	articles := source.FetchAll(context.Background(), nil)
	require.Len(t, articles, 2, "entry without title must be dropped")

	byID := make(map[string]news.Article, len(articles))
	for _, a := range articles {
		byID[a.ID] = a
	}

	first, ok := byID["rss-testquelle-0"]
	require.True(t, ok)
	require.Equal(t, "Erster Artikel", first.Title)
	require.Equal(t, "Beschreibung mit Markup", first.Description)
	require.Equal(t, "https://example.com/bild.jpg", first.ImageURL)
	require.Equal(t, "Testquelle", first.SourceName)
	require.Equal(t, news.CategoryPolitik, first.Category)
	require.Equal(t, 2026, first.PublishedAt.Year())

	enclosed, ok := byID["rss-testquelle-2"]
	require.True(t, ok)
	require.Equal(t, "https://example.com/enc.jpg", enclosed.ImageURL)
	// No pubDate: normalization stamps the fetch time.
	require.WithinDuration(t, time.Now(), enclosed.PublishedAt, time.Minute)
}

func TestFetchAllDropsEntryWithoutLink(t *testing.T) {
	xml := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>Testquelle</title>
<item>
  <title>Eintrag ohne Link</title>
  <description>Beschreibung vorhanden, Link fehlt.</description>
</item>
</channel>
</rss>`
	url := serveXML(t, xml)
	source := NewSource([]FeedConfig{
		{URL: url, Name: "Testquelle", Category: news.CategoryPolitik},
	}, 5*time.Second, slog.Default())

	articles := source.FetchAll(context.Background(), nil)
	require.Empty(t, articles)
}

func TestFetchAllIsolatesBrokenFeed(t *testing.T) {
	good := serveXML(t, testFeedXML)
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "kaputt", http.StatusInternalServerError)
	}))
	t.Cleanup(broken.Close)

	source := NewSource([]FeedConfig{
		{URL: broken.URL, Name: "Kaputt", Category: news.CategoryPolitik},
		{URL: good, Name: "Testquelle", Category: news.CategoryPolitik},
	}, 5*time.Second, slog.Default())

	articles := source.FetchAll(context.Background(), nil)
	require.Len(t, articles, 2)
	for _, a := range articles {
		require.Equal(t, "Testquelle", a.SourceName)
	}
}

func TestFetchAllSkipsDisabledFeeds(t *testing.T) {
	url := serveXML(t, testFeedXML)
	source := NewSource([]FeedConfig{
		{URL: url, Name: "Testquelle", Category: news.CategoryPolitik},
	}, 5*time.Second, slog.Default())

	articles := source.FetchAll(context.Background(), map[string]bool{"Testquelle": true})
	require.Empty(t, articles)
}

func TestLoadFeeds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feeds.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`feeds:
  - url: "https://example.com/rss"
    name: "Beispiel"
    category: "politik"
    group: "qualitätspresse"
`), 0644))

	feeds, err := LoadFeeds(path)
	require.NoError(t, err)
	require.Len(t, feeds, 1)
	require.Equal(t, "Beispiel", feeds[0].Name)
	require.Equal(t, news.CategoryPolitik, feeds[0].Category)
}

func TestLoadFeedsRejectsIncomplete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feeds.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`feeds:
  - url: "https://example.com/rss"
`), 0644))

	_, err := LoadFeeds(path)
	require.Error(t, err)
}

func TestLoadFeedsMissingFile(t *testing.T) {
	_, err := LoadFeeds(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
