package quiz

import (
	"fmt"
	"testing"

	"refquiz/internal/bank"
)

func tfQuestion(id int, cat bank.Category, text string) bank.Question {
	return bank.Question{
		ID:       id,
		Category: cat,
		Text:     text,
		Type:     bank.TypeTrueFalse,
		Answer:   bank.BoolAnswer(true),
	}
}

func makeBankQuestions(kata, kumite, parakarate int) []bank.Question {
	out := make([]bank.Question, 0, kata+kumite+parakarate)
	id := 0
	add := func(cat bank.Category, n int) {
		for i := 0; i < n; i++ {
			id++
			out = append(out, tfQuestion(id, cat, fmt.Sprintf("%s pregunta %d", cat, id)))
		}
	}
	add(bank.CategoryKata, kata)
	add(bank.CategoryKumite, kumite)
	add(bank.CategoryParakarate, parakarate)
	return out
}

func optionsWith(enabled ...bank.Category) []CategoryOption {
	opts := defaultCategoryOptions()
	for i := range opts {
		opts[i].Enabled = false
		for _, key := range enabled {
			if opts[i].Key == key {
				opts[i].Enabled = true
			}
		}
	}
	return opts
}

func TestEligible_FiltersByCategory(t *testing.T) {
	questions := makeBankQuestions(3, 3, 2)

	got := Eligible(questions, optionsWith(bank.CategoryKata))
	if len(got) != 3 {
		t.Fatalf("expected 3 eligible, got %d", len(got))
	}
	for _, q := range got {
		if q.Category != bank.CategoryKata {
			t.Fatalf("unexpected category %s", q.Category)
		}
	}
}

func TestEligible_DeduplicatesByNormalizedText(t *testing.T) {
	questions := []bank.Question{
		tfQuestion(1, bank.CategoryKata, "¿Qué es Jogai?"),
		tfQuestion(2, bank.CategoryKumite, "  ¿qué es   JOGAI? "),
		tfQuestion(3, bank.CategoryKumite, "Otra pregunta"),
	}

	got := Eligible(questions, defaultCategoryOptions())
	if len(got) != 2 {
		t.Fatalf("expected 2 after dedup, got %d", len(got))
	}
	if got[0].ID != 1 {
		t.Fatalf("expected first occurrence (id 1) to win, got %d", got[0].ID)
	}
}

func TestCanStart(t *testing.T) {
	questions := makeBankQuestions(3, 3, 0)

	tests := []struct {
		name    string
		options []CategoryOption
		n       int
		want    bool
	}{
		{name: "all enabled enough", options: defaultCategoryOptions(), n: 5, want: true},
		{name: "all enabled exact", options: defaultCategoryOptions(), n: 6, want: true},
		{name: "all enabled short", options: defaultCategoryOptions(), n: 7, want: false},
		{name: "one category short", options: optionsWith(bank.CategoryKata), n: 5, want: false},
		{name: "none enabled", options: optionsWith(), n: 1, want: false},
		{name: "empty category enabled only", options: optionsWith(bank.CategoryParakarate), n: 1, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanStart(questions, tc.options, tc.n); got != tc.want {
				t.Fatalf("expected canStart=%v, got=%v", tc.want, got)
			}
		})
	}
}

func TestCanStart_HoldsUnderToggleSequence(t *testing.T) {
	questions := makeBankQuestions(3, 3, 0)
	opts := defaultCategoryOptions()

	toggle := func(key bank.Category) {
		for i := range opts {
			if opts[i].Key == key {
				opts[i].Enabled = !opts[i].Enabled
			}
		}
	}

	sequence := []bank.Category{
		bank.CategoryKata, bank.CategoryKumite, bank.CategoryParakarate,
		bank.CategoryKata, bank.CategoryKumite, bank.CategoryParakarate,
		bank.CategoryKata,
	}
	for _, key := range sequence {
		toggle(key)

		enabled := 0
		for _, o := range opts {
			if o.Enabled {
				enabled++
			}
		}
		want := enabled >= 1 && len(Eligible(questions, opts)) >= 5
		if got := CanStart(questions, opts, 5); got != want {
			t.Fatalf("canStart property violated after toggling %s: got=%v want=%v", key, got, want)
		}
	}
}
