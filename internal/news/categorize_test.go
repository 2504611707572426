package news

import "testing"

func TestCategorizeByKeyword(t *testing.T) {
	cases := []struct {
		title string
		want  Category
	}{
		{"Bundesliga: Bayern gewinnt das Topspiel", CategorySport},
		{"DAX erreicht neues Allzeithoch", CategoryWirtschaft},
		{"Neue KI von Google vorgestellt", CategoryTech},
		{"Studie der Universität Heidelberg zur Impfforschung", CategoryWissenschaft},
		{"WHO warnt vor neuer Pandemie", CategoryGesundheit},
		{"Neue Ausstellung im Museum eröffnet", CategoryKultur},
		{"Streaming-Dienst kündigt neue Show an", CategoryUnterhaltung},
	}
	for _, tc := range cases {
		if got := Categorize(tc.title, "", CategoryPolitik); got != tc.want {
			t.Errorf("Categorize(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestCategorizeFallback(t *testing.T) {
	if got := Categorize("Ein Text ohne erkennbares Thema", "", CategoryPolitik); got != CategoryPolitik {
		t.Errorf("expected fallback category, got %q", got)
	}
}

func TestCategorizeUsesDescription(t *testing.T) {
	if got := Categorize("Überraschung am Wochenende", "Der Trainer wechselt den Verein", CategoryPolitik); got != CategorySport {
		t.Errorf("expected sport from description keyword, got %q", got)
	}
}

func TestCategorizePriorityOrder(t *testing.T) {
	// "fußball" (sport) is checked before "unternehmen" (wirtschaft).
	if got := Categorize("Fußball-Unternehmen expandiert", "", CategoryForYou); got != CategorySport {
		t.Errorf("expected sport to win, got %q", got)
	}
}
