// Package scraper fetches full article text for entries whose feed
// only carries a teaser.
package scraper

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// maxContentChars bounds extracted text so prompts stay small.
const maxContentChars = 1800

// Paragraph selectors tried in order, most specific first.
var contentSelectors = []string{
	"article p",
	".article-body p",
	".article-content p",
	".content p",
	".post-content p",
	".entry-content p",
	"main p",
	"p",
}

// Junk markers common in German news page boilerplate.
var junkIndicators = []string{
	"cookie", "datenschutz", "newsletter", "abonnieren", "anzeige",
	"werbung", "mehr zum thema", "lesen sie auch", "jetzt teilen",
	"impressum", "alle rechte vorbehalten",
}

type Scraper struct {
	httpClient *http.Client
}

func New(timeout time.Duration) *Scraper {
	return &Scraper{httpClient: &http.Client{Timeout: timeout}}
}

// ExtractContent downloads a page and returns its main article text.
func (s *Scraper) ExtractContent(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "MyNews/1.0")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("load page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("page returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parse page: %w", err)
	}

	content := extractParagraphs(doc)
	if content == "" {
		return "", fmt.Errorf("no article content found")
	}
	return content, nil
}

// extractParagraphs walks the selector list and keeps the first one
// that yields at least three usable paragraphs.
func extractParagraphs(doc *goquery.Document) string {
	for _, selector := range contentSelectors {
		var paragraphs []string
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			text := strings.TrimSpace(sel.Text())
			if len(text) > 20 && !isJunk(text) {
				paragraphs = append(paragraphs, text)
			}
		})
		if len(paragraphs) >= 3 {
			return clampParagraphs(paragraphs)
		}
	}
	return ""
}

func isJunk(text string) bool {
	lower := strings.ToLower(text)
	for _, indicator := range junkIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}

// clampParagraphs joins whole paragraphs up to the content limit.
func clampParagraphs(paragraphs []string) string {
	var selected []string
	total := 0
	for _, p := range paragraphs {
		if total+len(p) > maxContentChars && len(selected) > 0 {
			break
		}
		selected = append(selected, p)
		total += len(p) + 2
	}
	return strings.Join(selected, "\n\n")
}
