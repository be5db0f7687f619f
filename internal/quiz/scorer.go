package quiz

import "refquiz/internal/bank"

// Display labels follow the shipped content language.
const (
	labelTrue       = "Verdadero"
	labelFalse      = "Falso"
	labelUnanswered = "Sin respuesta"
	labelUndefined  = "Sin definir"
)

// WrongItem is one incorrectly answered question in exam order, with
// human-readable labels for the review screen.
type WrongItem struct {
	Question     bank.Question `json:"question"`
	UserAnswer   bank.Answer   `json:"user_answer"`
	GivenLabel   string        `json:"given_label"`
	CorrectLabel string        `json:"correct_label"`
}

// AnsweredCount counts the questions whose recorded answer is not the
// unanswered marker.
func AnsweredCount(s *Session) int {
	if s == nil {
		return 0
	}
	count := 0
	for _, q := range s.Questions {
		if s.Answers[q.ID].IsAnswered() {
			count++
		}
	}
	return count
}

// Score counts the answered questions whose answer matches the correct one.
// Equality is type-homogeneous: booleans against booleans, letters against
// letters. Unanswered questions never score.
func Score(s *Session) int {
	if s == nil {
		return 0
	}
	score := 0
	for _, q := range s.Questions {
		given := s.Answers[q.ID]
		if given.IsAnswered() && q.Answer.Equal(given) {
			score++
		}
	}
	return score
}

// WrongItems lists, in exam order, every question that was answered but not
// answered correctly. Unanswered questions are excluded: finishing early
// lowers the answered count, nothing more.
func WrongItems(s *Session) []WrongItem {
	if s == nil {
		return nil
	}
	items := make([]WrongItem, 0)
	for _, q := range s.Questions {
		given := s.Answers[q.ID]
		if !given.IsAnswered() || q.Answer.Equal(given) {
			continue
		}
		items = append(items, WrongItem{
			Question:     q,
			UserAnswer:   given,
			GivenLabel:   DisplayAnswer(q, given),
			CorrectLabel: DisplayCorrectAnswer(q),
		})
	}
	return items
}

// DisplayAnswer renders a recorded answer for review. Multiple-choice answers
// show "letter. text" when the letter matches an option.
func DisplayAnswer(q bank.Question, a bank.Answer) string {
	if !a.IsAnswered() {
		return labelUnanswered
	}
	if q.Type == bank.TypeMultiple {
		for _, opt := range q.Options {
			if opt.Letter == a.Letter {
				return opt.Letter + ". " + opt.Text
			}
		}
		return a.Letter
	}
	if a.Bool {
		return labelTrue
	}
	return labelFalse
}

// DisplayCorrectAnswer renders the correct answer, or a placeholder when a
// multiple-choice question has no option marked correct.
func DisplayCorrectAnswer(q bank.Question) string {
	if q.Type == bank.TypeMultiple {
		if opt, ok := q.CorrectOption(); ok {
			return opt.Letter + ". " + opt.Text
		}
		return labelUndefined
	}
	if q.Answer.Bool {
		return labelTrue
	}
	return labelFalse
}
