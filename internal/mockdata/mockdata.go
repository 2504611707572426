// Package mockdata holds the static sample content used to backfill
// thin feeds and to serve the pipeline when every upstream source is
// unavailable.
package mockdata

import (
	"time"

	"github.com/mynewsdev/mynews/internal/news"
)

// TrendingTopic is a static trending entry for the start page.
type TrendingTopic struct {
	ID           string        `json:"id"`
	Label        string        `json:"label"`
	ArticleCount int           `json:"articleCount"`
	Category     news.Category `json:"category"`
}

// Topics returns the static trending topics list.
func Topics() []TrendingTopic {
	return []TrendingTopic{
		{ID: "t1", Label: "Klimagipfel 2026", ArticleCount: 24, Category: news.CategoryPolitik},
		{ID: "t2", Label: "Champions League", ArticleCount: 18, Category: news.CategorySport},
		{ID: "t3", Label: "Apple Vision Pro 2", ArticleCount: 15, Category: news.CategoryTech},
		{ID: "t4", Label: "EZB Zinsentscheid", ArticleCount: 12, Category: news.CategoryWirtschaft},
		{ID: "t5", Label: "Berlinale 2026", ArticleCount: 9, Category: news.CategoryKultur},
	}
}

func hoursAgo(hours int) time.Time {
	return time.Now().Add(-time.Duration(hours) * time.Hour)
}

// Articles returns the sample article set with fresh relative
// timestamps so recency ordering stays sensible.
func Articles() []news.Article {
	return []news.Article{
		{
			ID:          "mock-1",
			Title:       "Bundesregierung beschließt historisches Klimaschutzpaket mit weitreichenden Folgen",
			Description: "Das Kabinett hat ein umfassendes Klimaschutzgesetz verabschiedet, das CO₂-Emissionen bis 2035 um 65% senken soll. Industrie und Umweltverbände reagieren gespalten auf die Maßnahmen.",
			URL:         "https://example.com/klimaschutz",
			ImageURL:    "https://images.unsplash.com/photo-1532601224476-15c79f2f7a51?w=800&q=80",
			SourceName:  "Spiegel",
			Author:      "Anna Müller",
			PublishedAt: hoursAgo(2),
			Category:    news.CategoryPolitik,
			AISummary:   "Die Bundesregierung hat ein Klimaschutzpaket mit einer CO₂-Reduktion um 65% bis 2035 beschlossen. Es umfasst einen CO₂-Preis von 85€ pro Tonne und Investitionen in erneuerbare Energien. Umweltverbände begrüßen die Maßnahmen, die Industrie warnt vor steigenden Kosten.",
			Sentiment:   news.SentimentNeutral,
			Language:    "de", ReadTimeMinutes: 5,
			Tags:       []string{"Klimaschutz", "Deutschland"},
			FeedReason: news.ReasonInterest,
		},
		{
			ID:          "mock-2",
			Title:       "Bayern München sichert sich Tabellenführung nach Spektakel-Sieg",
			Description: "Mit einem 4:2-Sieg gegen Borussia Dortmund übernimmt der FC Bayern die Bundesliga-Spitze. Harry Kane erzielt einen Hattrick.",
			URL:         "https://example.com/bayern-bvb",
			ImageURL:    "https://images.unsplash.com/photo-1574629810360-7efbbe195018?w=800&q=80",
			SourceName:  "Sport1",
			Author:      "Marcus Weber",
			PublishedAt: hoursAgo(1),
			Category:    news.CategorySport,
			AISummary:   "Bayern München hat das Topspiel gegen Borussia Dortmund mit 4:2 gewonnen und die Tabellenführung übernommen. Harry Kane war mit drei Toren der überragende Spieler.",
			Sentiment:   news.SentimentPositive,
			Language:    "de", ReadTimeMinutes: 3,
			Tags:       []string{"Bundesliga", "Bayern München"},
			FeedReason: news.ReasonInterest,
		},
		{
			ID:          "mock-3",
			Title:       "OpenAI stellt GPT-5 vor: Neues Sprachmodell soll menschliches Denken simulieren",
			Description: "Das neue Modell zeigt erstmals echtes logisches Schlussfolgern und übertrifft menschliche Experten in wissenschaftlichen Benchmarks.",
			URL:         "https://example.com/gpt5",
			ImageURL:    "https://images.unsplash.com/photo-1677442136019-21780ecad995?w=800&q=80",
			SourceName:  "t3n",
			Author:      "Lisa Chen",
			PublishedAt: hoursAgo(3),
			Category:    news.CategoryTech,
			AISummary:   "OpenAI hat GPT-5 vorgestellt, das laut Unternehmensangaben einen Durchbruch beim logischen Schlussfolgern darstellt. Kritiker fordern eine unabhängige Evaluation der Ergebnisse.",
			Sentiment:   news.SentimentNeutral,
			Language:    "de", ReadTimeMinutes: 6,
			Tags:       []string{"KI", "OpenAI"},
			FeedReason: news.ReasonTrending,
		},
		{
			ID:          "mock-4",
			Title:       "EZB senkt Leitzins auf 2,5% – Märkte reagieren positiv",
			Description: "Die Europäische Zentralbank hat den Leitzins wie erwartet um 0,25 Prozentpunkte gesenkt. Der DAX steigt auf ein neues Allzeithoch.",
			URL:         "https://example.com/ezb-zinsen",
			ImageURL:    "https://images.unsplash.com/photo-1611974789855-9c2a0a7236a3?w=800&q=80",
			SourceName:  "Handelsblatt",
			Author:      "Thomas Berg",
			PublishedAt: hoursAgo(4),
			Category:    news.CategoryWirtschaft,
			AISummary:   "Die EZB hat den Leitzins auf 2,5% gesenkt. Die Märkte reagierten positiv, der DAX erreichte ein Allzeithoch. Analysten erwarten einen weiteren Zinsschritt im Herbst.",
			Sentiment:   news.SentimentPositive,
			Language:    "de", ReadTimeMinutes: 4,
			Tags:       []string{"EZB", "Zinsen"},
			FeedReason: news.ReasonInterest,
		},
		{
			ID:          "mock-5",
			Title:       "Durchbruch in der Fusionsforschung: Reaktor erzeugt erstmals Netto-Energie über Stunden",
			Description: "Einem europäischen Forschungsteam ist es gelungen, eine Fusionsreaktion über mehrere Stunden stabil zu halten und dabei mehr Energie zu gewinnen als einzusetzen.",
			URL:         "https://example.com/fusion",
			ImageURL:    "https://images.unsplash.com/photo-1462331940025-496dfbfc7564?w=800&q=80",
			SourceName:  "Spektrum",
			Author:      "Dr. Julia Hoffmann",
			PublishedAt: hoursAgo(6),
			Category:    news.CategoryWissenschaft,
			AISummary:   "Ein europäisches Forschungsteam hat eine Fusionsreaktion stundenlang stabil gehalten und Netto-Energie erzeugt. Experten sprechen von einem Meilenstein auf dem Weg zur kommerziellen Fusionsenergie.",
			Sentiment:   news.SentimentPositive,
			Language:    "de", ReadTimeMinutes: 7,
			Tags:       []string{"Fusion", "Energie"},
			FeedReason: news.ReasonDiscover,
		},
		{
			ID:          "mock-6",
			Title:       "Streaming-Kampf eskaliert: Netflix und Disney kündigen gemeinsames Sport-Paket an",
			Description: "Die beiden Streaming-Riesen bündeln erstmals ihre Sportrechte in einem gemeinsamen Abo-Modell für den europäischen Markt.",
			URL:         "https://example.com/streaming-sport",
			ImageURL:    "https://images.unsplash.com/photo-1522869635100-9f4c5e86aa37?w=800&q=80",
			SourceName:  "DWDL",
			PublishedAt: hoursAgo(8),
			Category:    news.CategoryUnterhaltung,
			AISummary:   "Netflix und Disney bündeln ihre Sportrechte in einem gemeinsamen Abo für Europa. Das Paket soll ab Sommer verfügbar sein und setzt klassische TV-Sender unter Druck.",
			Sentiment:   news.SentimentNeutral,
			Language:    "de", ReadTimeMinutes: 3,
			Tags:       []string{"Streaming"},
			FeedReason: news.ReasonInterest,
		},
		{
			ID:          "mock-7",
			Title:       "WHO warnt vor neuer Grippewelle: Impfquote in Deutschland zu niedrig",
			Description: "Die Weltgesundheitsorganisation rechnet mit einer ungewöhnlich starken Grippesaison. Besonders ältere Menschen sollten sich jetzt impfen lassen.",
			URL:         "https://example.com/grippewelle",
			ImageURL:    "https://images.unsplash.com/photo-1584036561566-baf8f5f1b144?w=800&q=80",
			SourceName:  "Ärzteblatt",
			Author:      "Petra Schulz",
			PublishedAt: hoursAgo(10),
			Category:    news.CategoryGesundheit,
			AISummary:   "Die WHO erwartet eine starke Grippesaison und kritisiert die niedrige Impfquote in Deutschland. Ärzteverbände empfehlen insbesondere Risikogruppen eine rasche Impfung.",
			Sentiment:   news.SentimentNegative,
			Language:    "de", ReadTimeMinutes: 4,
			Tags:       []string{"Grippe", "WHO"},
			FeedReason: news.ReasonInterest,
		},
		{
			ID:          "mock-8",
			Title:       "Berlinale 2026: Deutscher Film gewinnt Goldenen Bären",
			Description: "Überraschung bei den Filmfestspielen: Das Drama einer Berliner Regisseurin setzt sich gegen starke internationale Konkurrenz durch.",
			URL:         "https://example.com/berlinale",
			ImageURL:    "https://images.unsplash.com/photo-1485846234645-a62644f84728?w=800&q=80",
			SourceName:  "Zeit Online",
			Author:      "Frank Lehmann",
			PublishedAt: hoursAgo(12),
			Category:    news.CategoryKultur,
			AISummary:   "Bei der Berlinale 2026 gewann erstmals seit Jahren wieder ein deutscher Film den Goldenen Bären. Die Jury lobte die präzise Erzählweise des Berliner Dramas.",
			Sentiment:   news.SentimentPositive,
			Language:    "de", ReadTimeMinutes: 3,
			Tags:       []string{"Berlinale", "Film"},
			FeedReason: news.ReasonInterest,
		},
		{
			ID:          "mock-9",
			Title:       "Koalition einigt sich auf Rentenreform: Eintrittsalter bleibt bei 67",
			Description: "Nach wochenlangem Streit steht der Kompromiss: Das Renteneintrittsalter wird nicht erhöht, dafür steigen die Beiträge moderat.",
			URL:         "https://example.com/rentenreform",
			ImageURL:    "https://images.unsplash.com/photo-1473186505569-9c61870c11f9?w=800&q=80",
			SourceName:  "FAZ",
			Author:      "Claudia Richter",
			PublishedAt: hoursAgo(14),
			Category:    news.CategoryPolitik,
			AISummary:   "Die Koalition hat sich auf eine Rentenreform geeinigt: Das Eintrittsalter bleibt bei 67 Jahren, die Beiträge steigen schrittweise. Opposition und Arbeitgeberverbände kritisieren den Kompromiss.",
			Sentiment:   news.SentimentNeutral,
			Language:    "de", ReadTimeMinutes: 5,
			Tags:       []string{"Rente", "Koalition"},
			FeedReason: news.ReasonInterest,
		},
		{
			ID:          "mock-10",
			Title:       "Deutsche Autobauer verdoppeln Absatz von Elektroautos in China",
			Description: "Nach Jahren der Krise melden VW, BMW und Mercedes deutlich steigende E-Auto-Verkäufe auf dem wichtigsten Automarkt der Welt.",
			URL:         "https://example.com/eautos-china",
			ImageURL:    "https://images.unsplash.com/photo-1593941707882-a5bba14938c7?w=800&q=80",
			SourceName:  "Handelsblatt",
			PublishedAt: hoursAgo(16),
			Category:    news.CategoryWirtschaft,
			AISummary:   "VW, BMW und Mercedes haben ihren E-Auto-Absatz in China verdoppelt. Neue, günstigere Modelle und lokale Partnerschaften gelten als Treiber der Trendwende.",
			Sentiment:   news.SentimentPositive,
			Language:    "de", ReadTimeMinutes: 4,
			Tags:       []string{"Elektroauto", "China"},
			FeedReason: news.ReasonDiscover,
		},
	}
}
