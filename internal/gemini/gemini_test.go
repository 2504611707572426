package gemini

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/mynewsdev/mynews/internal/news"
)

func TestExtractJSONStripsSurroundingText(t *testing.T) {
	raw := "Hier ist das Briefing:\n{\"greeting\": \"Guten Morgen\"}\nViel Spaß!"
	got, err := extractJSON(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `{"greeting": "Guten Morgen"}` {
		t.Errorf("unexpected extraction: %q", got)
	}
}

func TestExtractJSONReplacesGermanQuotes(t *testing.T) {
	raw := `{"headline": "Kanzler sagt „Wir schaffen das“ erneut"}`
	got, err := extractJSON(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !json.Valid([]byte(got)) {
		t.Errorf("sanitized output is not valid JSON: %q", got)
	}
	if strings.ContainsAny(got, "„“”«»") {
		t.Errorf("german quotes left in output: %q", got)
	}
}

func TestExtractJSONNoObject(t *testing.T) {
	if _, err := extractJSON("keine strukturierte Antwort"); err == nil {
		t.Error("expected error for response without JSON object")
	}
}

func TestFormatGermanDate(t *testing.T) {
	ts := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)
	got := formatGermanDate(ts)
	if got != "Sonntag, 30. August 2026" {
		t.Errorf("unexpected date format: %q", got)
	}
}

func TestFormatArticleList(t *testing.T) {
	articles := []news.Article{
		{Title: "Titel Eins", Description: "Beschreibung eins.", SourceName: "Quelle A", Category: news.CategoryPolitik},
		{Title: "Titel Zwei", Description: "Beschreibung zwei.", SourceName: "Quelle B", Category: news.CategorySport},
	}
	got := formatArticleList(articles)

	if !strings.Contains(got, "1. [POLITIK] Titel Eins") {
		t.Errorf("missing first entry header: %q", got)
	}
	if !strings.Contains(got, "Quelle: Quelle B") {
		t.Errorf("missing source line: %q", got)
	}
	if !strings.Contains(got, "2. [SPORT] Titel Zwei") {
		t.Errorf("missing second entry header: %q", got)
	}
}

func TestTruncateTextShortUnchanged(t *testing.T) {
	if got := truncateText("kurz", 100); got != "kurz" {
		t.Errorf("short text must pass through, got %q", got)
	}
}

func TestTruncateTextCutsOnRuneBoundary(t *testing.T) {
	long := strings.Repeat("ä", 7000)
	got := truncateText(long, maxArticleChars)
	if len([]rune(got)) > maxArticleChars {
		t.Errorf("expected at most %d runes, got %d", maxArticleChars, len([]rune(got)))
	}
	if !strings.HasPrefix(long, got) {
		t.Error("truncation must be a prefix of the input")
	}
}
