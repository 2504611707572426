// Package newsapi adapts the NewsAPI "everything" endpoint into the
// common article shape, one German search query per category.
package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/mynewsdev/mynews/internal/metrics"
	"github.com/mynewsdev/mynews/internal/news"
)

const DefaultBaseURL = "https://newsapi.org/v2"

// Category-specific German search queries for the "everything" endpoint.
var categoryQueries = map[news.Category]string{
	news.CategoryForYou:       "Deutschland OR Nachrichten",
	news.CategoryPolitik:      "Politik OR Regierung OR Bundestag OR Wahl OR Partei",
	news.CategoryWirtschaft:   "Wirtschaft OR Börse OR Unternehmen OR Aktien OR DAX",
	news.CategorySport:        "Fußball OR Bundesliga OR Sport OR Champions League OR Formel 1",
	news.CategoryTech:         "Technologie OR KI OR Apple OR Google OR Software OR Startup",
	news.CategoryWissenschaft: "Wissenschaft OR Forschung OR Studie OR Universität",
	news.CategoryUnterhaltung: "Film OR Musik OR Kino OR Streaming OR Serie",
	news.CategoryGesundheit:   "Gesundheit OR Ernährung OR Krankheit OR WHO OR Medizin",
	news.CategoryKultur:       "Kultur OR Museum OR Theater OR Ausstellung OR Literatur",
}

type apiArticle struct {
	Source struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"source"`
	Author      string `json:"author"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
	PublishedAt string `json:"publishedAt"`
	Content     string `json:"content"`
}

type apiResponse struct {
	Status       string       `json:"status"`
	TotalResults int          `json:"totalResults"`
	Articles     []apiArticle `json:"articles"`
}

// Client queries NewsAPI once per category, in parallel. Per-category
// failures are isolated: a failed query contributes an empty list.
type Client struct {
	// BaseURL may be overridden in tests.
	BaseURL string

	apiKey     string
	pageSize   int
	httpClient *http.Client
	log        *slog.Logger
}

func New(apiKey string, pageSize int, timeout time.Duration, log *slog.Logger) *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		pageSize:   pageSize,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// FetchAll queries every topical category concurrently, flattens the
// results, sorts by recency and deduplicates by URL (first wins).
func (c *Client) FetchAll(ctx context.Context) []news.Article {
	results := make([][]news.Article, len(news.Categories))
	var wg sync.WaitGroup
	for i, cat := range news.Categories {
		wg.Add(1)
		go func(i int, cat news.Category) {
			defer wg.Done()
			articles, err := c.fetchCategory(ctx, cat)
			if err != nil {
				metrics.Global.IncrementAPIFailures()
				c.log.Warn("newsapi query failed", slog.String("category", string(cat)), slog.Any("err", err))
				return
			}
			results[i] = articles
		}(i, cat)
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

func (c *Client) fetchCategory(ctx context.Context, category news.Category) ([]news.Article, error) {
	endpoint := fmt.Sprintf("%s/everything?q=%s&language=de&sortBy=publishedAt&pageSize=%d&apiKey=%s",
		c.BaseURL, url.QueryEscape(categoryQueries[category]), c.pageSize, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	metrics.Global.IncrementAPIRequests()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("newsapi returned status %d", resp.StatusCode)
	}

	var payload apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	articles := make([]news.Article, 0, len(payload.Articles))
	for i, raw := range payload.Articles {
		a, ok := toArticle(raw, category, i)
		if !ok {
			metrics.Global.IncrementEntriesDropped()
			continue
		}
		articles = append(articles, a)
	}
	return articles, nil
}

// toArticle maps one raw item. Items with an empty or placeholder
// title, no description, or no URL are dropped.
func toArticle(raw apiArticle, category news.Category, ordinal int) (news.Article, bool) {
	if raw.Title == "" || raw.Title == "[Removed]" {
		return news.Article{}, false
	}
	if raw.Description == "" || raw.URL == "" {
		return news.Article{}, false
	}

	published, err := time.Parse(time.RFC3339, strings.TrimSpace(raw.PublishedAt))
	if err != nil {
		published = time.Now()
	}

	return news.Article{
		ID:              fmt.Sprintf("news-%s-%d", category, ordinal),
		Title:           raw.Title,
		Description:     raw.Description,
		Content:         raw.Content,
		URL:             raw.URL,
		ImageURL:        raw.URLToImage,
		SourceName:      raw.Source.Name,
		Author:          raw.Author,
		PublishedAt:     published,
		Category:        category,
		Language:        "de",
		ReadTimeMinutes: news.EstimateReadTime(raw.Title + " " + raw.Description + " " + raw.Content),
		Tags:            []string{},
		FeedReason:      news.ReasonInterest,
	}, true
}
