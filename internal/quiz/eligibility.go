package quiz

import "refquiz/internal/bank"

// CategoryOption is one toggleable category row on the setup screen.
type CategoryOption struct {
	Key     bank.Category `json:"key"`
	Label   string        `json:"label"`
	Hint    string        `json:"hint"`
	Enabled bool          `json:"enabled"`
}

func defaultCategoryOptions() []CategoryOption {
	return []CategoryOption{
		{Key: bank.CategoryKata, Label: "Kata", Hint: "Técnica y precisión", Enabled: true},
		{Key: bank.CategoryKumite, Label: "Kumite", Hint: "Combate y control", Enabled: true},
		{Key: bank.CategoryParakarate, Label: "Parakarate", Hint: "Adaptación y seguridad", Enabled: true},
	}
}

// Eligible returns the questions whose category is enabled, deduplicated by
// normalized text. The first occurrence of a text wins; later near-duplicates
// are dropped, which guards against the source repeating a question across
// categories.
func Eligible(questions []bank.Question, options []CategoryOption) []bank.Question {
	enabled := make(map[bank.Category]bool, len(options))
	for _, opt := range options {
		if opt.Enabled {
			enabled[opt.Key] = true
		}
	}

	seen := make(map[string]bool, len(questions))
	out := make([]bank.Question, 0, len(questions))
	for _, q := range questions {
		if !enabled[q.Category] {
			continue
		}
		key := bank.NormalizeText(q.Text)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, q)
	}
	return out
}

// CanStart reports whether an exam of n questions can be drawn: at least one
// category enabled and enough deduplicated eligible questions.
func CanStart(questions []bank.Question, options []CategoryOption, n int) bool {
	anyEnabled := false
	for _, opt := range options {
		if opt.Enabled {
			anyEnabled = true
			break
		}
	}
	if !anyEnabled {
		return false
	}
	return len(Eligible(questions, options)) >= n
}
