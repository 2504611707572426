// Package rss fetches and normalizes the configured RSS/Atom feeds.
package rss

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
	"gopkg.in/yaml.v3"

	"github.com/mynewsdev/mynews/internal/metrics"
	"github.com/mynewsdev/mynews/internal/news"
	"github.com/mynewsdev/mynews/internal/sanitize"
)

const userAgent = "MyNews/1.0"

// FeedConfig describes one configured feed source.
type FeedConfig struct {
	URL      string        `yaml:"url"`
	Name     string        `yaml:"name"`
	Category news.Category `yaml:"category"`
	// Group is a display label for the profile UI, not used by the
	// pipeline itself.
	Group string `yaml:"group"`
}

type feedsFile struct {
	Feeds []FeedConfig `yaml:"feeds"`
}

// LoadFeeds reads the feed source list from a YAML file.
func LoadFeeds(path string) ([]FeedConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg feedsFile
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse feeds config %s: %w", path, err)
	}
	if len(cfg.Feeds) == 0 {
		return nil, fmt.Errorf("feeds config %s contains no feeds", path)
	}
	for i, fc := range cfg.Feeds {
		if fc.URL == "" || fc.Name == "" {
			return nil, fmt.Errorf("feeds config %s: feed %d is missing url or name", path, i)
		}
	}
	return cfg.Feeds, nil
}

// Source fetches all configured feeds and converts their entries into
// articles. Failures are isolated per feed: a broken or slow feed
// contributes an empty list and never affects the others.
type Source struct {
	feeds   []FeedConfig
	timeout time.Duration
	log     *slog.Logger
	parser  *gofeed.Parser
}

func NewSource(feeds []FeedConfig, timeout time.Duration, log *slog.Logger) *Source {
	parser := gofeed.NewParser()
	parser.UserAgent = userAgent
	return &Source{feeds: feeds, timeout: timeout, log: log, parser: parser}
}

// Feeds returns the configured feed list (for the profile/config UI).
func (s *Source) Feeds() []FeedConfig {
	return s.feeds
}

// FetchAll fetches every active feed concurrently, flattens the
// results, sorts by recency and deduplicates by URL.
func (s *Source) FetchAll(ctx context.Context, disabled map[string]bool) []news.Article {
	active := s.feeds
	if len(disabled) > 0 {
		active = make([]FeedConfig, 0, len(s.feeds))
		for _, fc := range s.feeds {
			if !disabled[fc.Name] {
				active = append(active, fc)
			}
		}
	}

	results := make([][]news.Article, len(active))
	var wg sync.WaitGroup
	for i, fc := range active {
		wg.Add(1)
		go func(i int, fc FeedConfig) {
			defer wg.Done()
			results[i] = s.fetchFeed(ctx, fc)
		}(i, fc)
	}
	wg.Wait()

	var all []news.Article
	for _, r := range results {
		all = append(all, r...)
	}

	news.SortByRecency(all)
	before := len(all)
	all = news.DedupeByURL(all)
	metrics.Global.AddDuplicatesFiltered(int64(before - len(all)))
	return all
}

// fetchFeed downloads and parses a single feed. Any failure (network,
// non-2xx, timeout, unparseable document) is logged and swallowed.
func (s *Source) fetchFeed(ctx context.Context, fc FeedConfig) (articles []news.Article) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("feed fetch panicked", slog.String("feed", fc.Name), slog.Any("panic", r))
			articles = nil
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	feed, err := s.parser.ParseURLWithContext(fc.URL, ctx)
	if err != nil {
		metrics.Global.IncrementFeedFailures()
		s.log.Warn("feed fetch failed", slog.String("feed", fc.Name), slog.Any("err", err))
		return nil
	}
	metrics.Global.IncrementFeedsFetched()

	articles = make([]news.Article, 0, len(feed.Items))
	for i, item := range feed.Items {
		a, ok := articleFromItem(item, fc, i)
		if !ok {
			metrics.Global.IncrementEntriesDropped()
			continue
		}
		articles = append(articles, a)
	}
	s.log.Debug("feed fetched", slog.String("feed", fc.Name), slog.Int("articles", len(articles)))
	return articles
}

// articleFromItem normalizes one feed entry. Entries without a title
// or link after normalization are rejected.
func articleFromItem(item *gofeed.Item, fc FeedConfig, ordinal int) (news.Article, bool) {
	title := sanitize.StripHTML(item.Title)
	description := sanitize.StripHTML(item.Description)
	content := sanitize.StripHTML(item.Content)

	link := strings.TrimSpace(item.Link)
	if link == "" && len(item.Links) > 0 {
		link = strings.TrimSpace(item.Links[0])
	}
	if title == "" || link == "" {
		return news.Article{}, false
	}

	if description == "" {
		description = title
	}
	if content == "" {
		content = description
	}

	published := time.Now()
	switch {
	case item.PublishedParsed != nil:
		published = *item.PublishedParsed
	case item.UpdatedParsed != nil:
		published = *item.UpdatedParsed
	}

	author := ""
	if len(item.Authors) > 0 && item.Authors[0] != nil {
		author = item.Authors[0].Name
	}

	return news.Article{
		ID:              fmt.Sprintf("rss-%s-%d", news.Slugify(fc.Name), ordinal),
		Title:           title,
		Description:     description,
		Content:         content,
		URL:             link,
		ImageURL:        extractImage(item),
		SourceName:      fc.Name,
		Author:          author,
		PublishedAt:     published,
		Category:        news.Categorize(title, description, fc.Category),
		Language:        "de",
		ReadTimeMinutes: news.EstimateReadTime(title + " " + description + " " + content),
		Tags:            []string{},
		FeedReason:      news.ReasonInterest,
	}, true
}

// extractImage picks an article image in priority order: enclosure
// with an image MIME type, media:content/media:thumbnail url, then
// the first <img src> embedded in the content or description markup.
func extractImage(item *gofeed.Item) string {
	for _, enc := range item.Enclosures {
		if enc != nil && strings.HasPrefix(enc.Type, "image") && enc.URL != "" {
			return enc.URL
		}
	}

	if media, ok := item.Extensions["media"]; ok {
		for _, tag := range []string{"content", "thumbnail"} {
			for _, ext := range media[tag] {
				if url := ext.Attrs["url"]; url != "" {
					return url
				}
			}
		}
	}

	for _, markup := range []string{item.Content, item.Description} {
		if !strings.Contains(markup, "<img") {
			continue
		}
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
		if err != nil {
			continue
		}
		if src, ok := doc.Find("img[src]").First().Attr("src"); ok && src != "" {
			return src
		}
	}

	return ""
}
