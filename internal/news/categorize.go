package news

import "strings"

// Keyword sets per category, checked in this order. First category
// with a matching keyword wins. Matching is plain substring over the
// lowercased title+description; keywords with a trailing space (e.g.
// "ki ", "tor ") avoid the worst partial-word hits, but partial
// matches inside longer words are an accepted tradeoff of the
// heuristic, not something to fix here.
var categoryKeywords = []struct {
	category Category
	keywords []string
}{
	{
		category: CategorySport,
		keywords: []string{"sport", "fußball", "bundesliga", "champions league", "formel 1", "olympi", "handball", "tennis", "dfb", "kicker", "tor ", "trainer"},
	},
	{
		category: CategoryWirtschaft,
		keywords: []string{"wirtschaft", "börse", "aktien", "dax", "unternehmen", "inflation", "ezb", "handel", "konjunktur", "finanzen", "bank"},
	},
	{
		category: CategoryTech,
		keywords: []string{"technologie", "digital", "ki ", "künstliche intelligenz", "software", "apple", "google", "microsoft", "startup", "app ", "cyber", "internet", "computer"},
	},
	{
		category: CategoryWissenschaft,
		keywords: []string{"wissenschaft", "forschung", "studie", "klima", "weltraum", "nasa", "universität", "medizinisch"},
	},
	{
		category: CategoryGesundheit,
		keywords: []string{"gesundheit", "corona", "impf", "krankenhaus", "medizin", "who", "pandemie", "pflege", "patient"},
	},
	{
		category: CategoryKultur,
		keywords: []string{"kultur", "museum", "theater", "ausstellung", "literatur", "film", "oscar", "buch", "kunst"},
	},
	{
		category: CategoryUnterhaltung,
		keywords: []string{"unterhaltung", "promi", "tv ", "fernsehen", "show", "streaming", "musik", "konzert", "star "},
	},
}

// Categorize assigns a topical category from title+description text.
// When no keyword set matches it returns fallback, the calling
// source's typical topic.
func Categorize(title, description string, fallback Category) Category {
	text := strings.ToLower(title + " " + description)
	for _, set := range categoryKeywords {
		if containsAny(text, set.keywords) {
			return set.category
		}
	}
	return fallback
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
