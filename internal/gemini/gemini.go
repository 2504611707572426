// Package gemini generates the German-language AI content: per-article
// summaries, the morning briefing and the evening digest.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/mynewsdev/mynews/internal/metrics"
	"github.com/mynewsdev/mynews/internal/news"
	"github.com/mynewsdev/mynews/internal/retry"
)

const (
	modelName = "gemini-1.5-flash"

	// maxArticleChars bounds the article text embedded in a prompt.
	maxArticleChars = 6000
)

type Client struct {
	client *genai.Client
}

// Summary is the result of a single-article summarization.
type Summary struct {
	Summary   string         `json:"summary"`
	Sentiment news.Sentiment `json:"sentiment"`
}

func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Client{client: client}, nil
}

func (c *Client) Close() {
	if c.client != nil {
		c.client.Close()
	}
}

// SummarizeArticle produces a three-sentence German summary plus a
// sentiment label for one article.
func (c *Client) SummarizeArticle(ctx context.Context, title, description, content string) (*Summary, error) {
	parts := make([]string, 0, 3)
	for _, p := range []string{title, description, content} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	articleText := truncateText(strings.Join(parts, "\n\n"), maxArticleChars)

	prompt := fmt.Sprintf(`Du bist ein Nachrichten-Analyst für MyNews.com, eine deutsche News-Plattform. Analysiere den folgenden Nachrichtenartikel und erstelle:

1. Eine prägnante Zusammenfassung in genau 3 kurzen Sätzen auf Deutsch.
2. Eine Sentiment-Bewertung: "positive", "neutral" oder "negative".

Antworte NUR im folgenden JSON-Format, ohne Markdown-Codeblöcke:
{"summary": "Satz 1. Satz 2. Satz 3.", "sentiment": "neutral"}

Artikel:
%s`, articleText)

	raw, err := c.generate(ctx, prompt)
	if err != nil {
		metrics.Global.IncrementAIFailures()
		return nil, err
	}

	jsonText, err := extractJSON(raw)
	if err != nil {
		metrics.Global.IncrementAIFailures()
		return nil, err
	}

	var result Summary
	if err := json.Unmarshal([]byte(jsonText), &result); err != nil {
		metrics.Global.IncrementAIFailures()
		return nil, fmt.Errorf("parse summary response: %w", err)
	}
	if result.Sentiment != news.SentimentPositive && result.Sentiment != news.SentimentNegative {
		result.Sentiment = news.SentimentNeutral
	}

	metrics.Global.IncrementSummariesGenerated()
	return &result, nil
}

// MorningBriefing produces the structured morning briefing for the
// given day as a validated JSON string.
func (c *Client) MorningBriefing(ctx context.Context, articles []news.Article, now time.Time) (string, error) {
	prompt := fmt.Sprintf(`Du bist der KI-Redakteur von MyNews.com, einer deutschen Nachrichtenplattform. Erstelle ein "Morgen-Briefing" für den %s.

Basierend auf diesen aktuellen Top-Nachrichten:

%s

Erstelle ein strukturiertes Morgen-Briefing im folgenden JSON-Format (ohne Markdown-Codeblöcke):

{
  "greeting": "Guten Morgen! Hier ist dein Briefing für [Wochentag].",
  "topics": [
    {
      "emoji": "🏛️",
      "category": "Politik",
      "headline": "Kurze, knackige Überschrift",
      "summary": "2-3 Sätze Zusammenfassung, neutral und faktisch.",
      "source": "Quellenname"
    }
  ],
  "outro": "Ein motivierender Abschluss-Satz für den Tag."
}

Regeln:
- Erstelle 5-7 Topics, eines pro Nachrichtenkategorie
- Verwende passende Emojis pro Kategorie (🏛️ Politik, 💰 Wirtschaft, ⚽ Sport, 💻 Technologie, 🔬 Wissenschaft, 🎭 Unterhaltung, 🏥 Gesundheit, 🎨 Kultur)
- Schreibe auf Deutsch, neutral und professionell
- Jede Summary sollte 2-3 Sätze haben
- Fasse ähnliche Themen zusammen statt sie doppelt zu nennen
- WICHTIG: Verwende KEINE deutschen Anführungszeichen (also nicht „ oder “). Verwende stattdessen einfache Anführungszeichen (') für Zitate.`,
		formatGermanDate(now), formatArticleList(articles))

	content, err := c.generateJSON(ctx, prompt)
	if err != nil {
		metrics.Global.IncrementAIFailures()
		return "", err
	}
	metrics.Global.IncrementBriefingsGenerated()
	return content, nil
}

// EveningDigest produces the structured evening digest as a validated
// JSON string.
func (c *Client) EveningDigest(ctx context.Context, articles []news.Article, now time.Time) (string, error) {
	prompt := fmt.Sprintf(`Du bist der KI-Redakteur von MyNews.com. Erstelle einen "Abend-Digest" - eine Zusammenfassung des Tages für den %s.

Basierend auf diesen Nachrichten des Tages:

%s

Erstelle ein strukturiertes Abend-Digest im folgenden JSON-Format (ohne Markdown-Codeblöcke):

{
  "greeting": "Guten Abend! Hier ist dein Tagesrückblick.",
  "highlight": {
    "emoji": "🔥",
    "headline": "Die wichtigste Story des Tages in einem Satz",
    "summary": "2-3 Sätze warum das heute besonders relevant war."
  },
  "topics": [
    {
      "emoji": "🏛️",
      "category": "Politik",
      "headline": "Kurze Überschrift",
      "summary": "1-2 Sätze Zusammenfassung."
    }
  ],
  "outlook": "Was morgen wichtig wird: 1-2 Sätze Ausblick.",
  "goodnight": "Ein freundlicher Abschluss-Satz."
}

Regeln:
- "highlight" ist DIE Top-Story des Tages
- "topics" enthält 4-5 weitere wichtige Themen
- Verwende passende Emojis pro Kategorie
- Schreibe auf Deutsch, neutral und professionell
- WICHTIG: Verwende KEINE deutschen Anführungszeichen. Verwende stattdessen einfache Anführungszeichen (') für Zitate.`,
		formatGermanDate(now), formatArticleList(articles))

	content, err := c.generateJSON(ctx, prompt)
	if err != nil {
		metrics.Global.IncrementAIFailures()
		return "", err
	}
	metrics.Global.IncrementBriefingsGenerated()
	return content, nil
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	model := c.client.GenerativeModel(modelName)

	var resp *genai.GenerateContentResponse
	err := retry.WithRetry(ctx, retry.Config{MaxAttempts: 2, Delay: 2 * time.Second}, func() error {
		var genErr error
		resp, genErr = model.GenerateContent(ctx, genai.Text(prompt))
		return genErr
	})
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from Gemini")
	}
	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

// generateJSON runs a prompt whose answer must be a JSON object and
// returns the sanitized, validated JSON string.
func (c *Client) generateJSON(ctx context.Context, prompt string) (string, error) {
	raw, err := c.generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	jsonText, err := extractJSON(raw)
	if err != nil {
		return "", err
	}
	if !json.Valid([]byte(jsonText)) {
		return "", fmt.Errorf("model returned invalid JSON")
	}
	return jsonText, nil
}

var germanQuotes = strings.NewReplacer(
	"„", "'", // „
	"“", "'", // “
	"”", "'", // ”
	"«", "'", // «
	"»", "'", // »
)

// extractJSON pulls the outermost {...} block from a model response and
// replaces German quotation marks, which break JSON string literals.
func extractJSON(text string) (string, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return "", fmt.Errorf("no JSON object in model response")
	}
	return germanQuotes.Replace(text[start : end+1]), nil
}

// formatArticleList renders the numbered article list embedded in the
// briefing and digest prompts.
func formatArticleList(articles []news.Article) string {
	var b strings.Builder
	for i, a := range articles {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "%d. [%s] %s\n   %s\n   Quelle: %s",
			i+1, strings.ToUpper(string(a.Category)), a.Title, a.Description, a.SourceName)
	}
	return b.String()
}

var (
	germanWeekdays = [...]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"}
	germanMonths   = [...]string{"", "Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"}
)

// formatGermanDate renders e.g. "Montag, 3. August 2026".
func formatGermanDate(t time.Time) string {
	return fmt.Sprintf("%s, %d. %s %d", germanWeekdays[t.Weekday()], t.Day(), germanMonths[t.Month()], t.Year())
}

// truncateText cuts on a rune boundary, preferring a sentence end.
func truncateText(s string, maxChars int) string {
	if utf8.RuneCountInString(s) <= maxChars {
		return s
	}
	runes := []rune(s)
	trimmed := string(runes[:maxChars])
	if idx := strings.LastIndex(trimmed, ". "); idx > 1200 {
		trimmed = trimmed[:idx+1]
	}
	return trimmed
}
