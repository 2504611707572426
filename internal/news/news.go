// Package news holds the normalized article model shared by every
// source adapter and the aggregation service.
package news

import (
	"regexp"
	"sort"
	"strings"
	"time"
)

// Category is one of the fixed topical tags plus the synthetic
// "for-you" aggregate.
type Category string

const (
	CategoryForYou       Category = "for-you"
	CategoryPolitik      Category = "politik"
	CategoryWirtschaft   Category = "wirtschaft"
	CategorySport        Category = "sport"
	CategoryTech         Category = "tech"
	CategoryWissenschaft Category = "wissenschaft"
	CategoryUnterhaltung Category = "unterhaltung"
	CategoryGesundheit   Category = "gesundheit"
	CategoryKultur       Category = "kultur"
)

// Categories lists the real topical categories (without "for-you").
var Categories = []Category{
	CategoryPolitik,
	CategoryWirtschaft,
	CategorySport,
	CategoryTech,
	CategoryWissenschaft,
	CategoryUnterhaltung,
	CategoryGesundheit,
	CategoryKultur,
}

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// FeedReason tags why an article landed in the feed. The ingestion
// pipeline always sets "interest"; the other values are assigned
// elsewhere (mock data, future ranking).
type FeedReason string

const (
	ReasonInterest FeedReason = "interest"
	ReasonTrending FeedReason = "trending"
	ReasonDiscover FeedReason = "discover"
)

// Article is the normalized unit flowing through the pipeline.
// Constructed once per aggregation request, never mutated afterwards.
type Article struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Content         string     `json:"content,omitempty"`
	URL             string     `json:"url"`
	ImageURL        string     `json:"imageUrl,omitempty"`
	SourceName      string     `json:"sourceName"`
	Author          string     `json:"author,omitempty"`
	PublishedAt     time.Time  `json:"publishedAt"`
	Category        Category   `json:"category"`
	AISummary       string     `json:"aiSummary,omitempty"`
	Sentiment       Sentiment  `json:"sentiment,omitempty"`
	Language        string     `json:"language"`
	ReadTimeMinutes int        `json:"readTimeMinutes"`
	Tags            []string   `json:"tags"`
	FeedReason      FeedReason `json:"feedReason"`
	IsBreaking      bool       `json:"isBreaking,omitempty"`
}

const wordsPerMinute = 200

// EstimateReadTime returns reading minutes for the given text at
// 200 words per minute, rounded up, never below 2.
func EstimateReadTime(text string) int {
	words := len(strings.Fields(text))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 2 {
		return 2
	}
	return minutes
}

var slugSpaces = regexp.MustCompile(`\s+`)

// Slugify lowercases a source name and collapses whitespace runs into
// dashes, for use in deterministic article IDs.
func Slugify(name string) string {
	return slugSpaces.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}

// SortByRecency orders articles by publishedAt descending, in place.
func SortByRecency(articles []Article) {
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].PublishedAt.After(articles[j].PublishedAt)
	})
}

// DedupeByURL drops articles whose URL was already seen, preserving
// order. The first occurrence wins.
func DedupeByURL(articles []Article) []Article {
	seen := make(map[string]struct{}, len(articles))
	out := articles[:0:0]
	for _, a := range articles {
		if _, dup := seen[a.URL]; dup {
			continue
		}
		seen[a.URL] = struct{}{}
		out = append(out, a)
	}
	return out
}

// FilterByCategory returns articles matching the category. The
// synthetic "for-you" aggregate matches everything.
func FilterByCategory(articles []Article, category Category) []Article {
	if category == CategoryForYou {
		return articles
	}
	out := make([]Article, 0, len(articles))
	for _, a := range articles {
		if a.Category == category {
			out = append(out, a)
		}
	}
	return out
}
