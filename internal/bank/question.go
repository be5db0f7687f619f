package bank

import "strings"

// Category is one of the three fixed referee exam disciplines.
type Category string

const (
	CategoryKata       Category = "kata"
	CategoryKumite     Category = "kumite"
	CategoryParakarate Category = "parakarate"
)

// Categories lists every valid category in display order.
func Categories() []Category {
	return []Category{CategoryKata, CategoryKumite, CategoryParakarate}
}

type QuestionType string

const (
	TypeTrueFalse QuestionType = "true_false"
	TypeMultiple  QuestionType = "multiple"
)

// AnswerKind tags which payload of an Answer is meaningful.
type AnswerKind int

const (
	AnswerNone AnswerKind = iota
	AnswerBool
	AnswerLetter
)

// Answer is a tagged union holding either a true/false value or an option
// letter. The zero value is the unanswered marker.
type Answer struct {
	Kind   AnswerKind `json:"kind"`
	Bool   bool       `json:"bool,omitempty"`
	Letter string     `json:"letter,omitempty"`
}

func BoolAnswer(v bool) Answer {
	return Answer{Kind: AnswerBool, Bool: v}
}

func LetterAnswer(letter string) Answer {
	return Answer{Kind: AnswerLetter, Letter: letter}
}

func (a Answer) IsAnswered() bool {
	return a.Kind != AnswerNone
}

// Equal compares two answers with type-homogeneous equality: booleans only
// match booleans, letters only match letters. An empty letter never matches,
// so a multiple question without a marked correct option can never be
// answered correctly.
func (a Answer) Equal(other Answer) bool {
	if a.Kind != other.Kind {
		return false
	}
	switch a.Kind {
	case AnswerBool:
		return a.Bool == other.Bool
	case AnswerLetter:
		return a.Letter != "" && a.Letter == other.Letter
	default:
		return false
	}
}

type Option struct {
	Letter  string `json:"letter"`
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
}

// Question is an immutable bank entry. For TypeMultiple the Answer holds the
// letter of the single correct option, or an empty letter when the source
// marked none.
type Question struct {
	ID          int          `json:"id"`
	Category    Category     `json:"category"`
	Text        string       `json:"text"`
	Explanation string       `json:"explanation"`
	Type        QuestionType `json:"type"`
	Answer      Answer       `json:"answer"`
	Options     []Option     `json:"options,omitempty"`
}

// CorrectOption returns the option marked correct, if any.
func (q Question) CorrectOption() (Option, bool) {
	for _, opt := range q.Options {
		if opt.Correct {
			return opt, true
		}
	}
	return Option{}, false
}

// NormalizeText lowercases and collapses runs of whitespace so near-duplicate
// question texts compare equal.
func NormalizeText(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}
