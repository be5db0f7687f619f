package bank

import "strings"

// RawQuestion mirrors one record of the published exam document. Field names
// follow the source content, which is authored in Spanish.
type RawQuestion struct {
	Numero     int         `json:"numero" yaml:"numero"`
	Categoria  string      `json:"categoria" yaml:"categoria"`
	Pregunta   string      `json:"pregunta" yaml:"pregunta"`
	Respuesta  *bool       `json:"respuesta" yaml:"respuesta"`
	Aclaracion string      `json:"aclaracion,omitempty" yaml:"aclaracion,omitempty"`
	Tipo       string      `json:"tipo,omitempty" yaml:"tipo,omitempty"`
	Opciones   []RawOption `json:"opciones,omitempty" yaml:"opciones,omitempty"`
}

type RawOption struct {
	Letra    string `json:"letra" yaml:"letra"`
	Texto    string `json:"texto" yaml:"texto"`
	Correcta bool   `json:"correcta" yaml:"correcta"`
}

// RawDocument is the top-level shape of the exam document.
type RawDocument struct {
	Preguntas []RawQuestion `json:"preguntas" yaml:"preguntas"`
}

const tipoOpcionMultiple = "opcion_multiple"

// categoryMap folds raw category codes onto the closed category set. The
// source publishes parakarate kata questions under a dedicated code.
var categoryMap = map[string]Category{
	"kata":            CategoryKata,
	"kumite":          CategoryKumite,
	"kata_parakarate": CategoryParakarate,
	"parakarate":      CategoryParakarate,
}

// Normalize converts one raw record into a Question. Malformed records are
// discarded (ok=false), never rejected with an error, so a single corrupt
// entry cannot abort a bank load. Rules, in order: unknown category discards;
// a multiple-choice record with options becomes a multiple question whose
// answer is the first option marked correct (empty letter when none); a
// true/false record without a defined answer discards; anything else is a
// true/false question.
func Normalize(raw RawQuestion) (Question, bool) {
	category, ok := categoryMap[strings.TrimSpace(raw.Categoria)]
	if !ok {
		return Question{}, false
	}

	if raw.Tipo == tipoOpcionMultiple && len(raw.Opciones) > 0 {
		options := make([]Option, 0, len(raw.Opciones))
		for _, opt := range raw.Opciones {
			options = append(options, Option{
				Letter:  opt.Letra,
				Text:    opt.Texto,
				Correct: opt.Correcta,
			})
		}
		answer := ""
		for _, opt := range options {
			if opt.Correct {
				answer = opt.Letter
				break
			}
		}
		return Question{
			ID:          raw.Numero,
			Category:    category,
			Text:        raw.Pregunta,
			Explanation: raw.Aclaracion,
			Type:        TypeMultiple,
			Answer:      Answer{Kind: AnswerLetter, Letter: answer},
			Options:     options,
		}, true
	}

	if raw.Respuesta == nil {
		return Question{}, false
	}

	return Question{
		ID:          raw.Numero,
		Category:    category,
		Text:        raw.Pregunta,
		Explanation: raw.Aclaracion,
		Type:        TypeTrueFalse,
		Answer:      BoolAnswer(*raw.Respuesta),
	}, true
}

// NormalizeAll filters a batch of raw records into questions.
func NormalizeAll(raws []RawQuestion) []Question {
	out := make([]Question, 0, len(raws))
	for _, raw := range raws {
		if q, ok := Normalize(raw); ok {
			out = append(out, q)
		}
	}
	return out
}
