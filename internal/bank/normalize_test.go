package bank

import "testing"

func boolp(v bool) *bool { return &v }

func TestNormalize_TrueFalse(t *testing.T) {
	tests := []struct {
		name       string
		raw        RawQuestion
		wantOK     bool
		wantCat    Category
		wantAnswer bool
	}{
		{
			name:       "kata true",
			raw:        RawQuestion{Numero: 1, Categoria: "kata", Pregunta: "¿Jogai es salida del área?", Respuesta: boolp(true)},
			wantOK:     true,
			wantCat:    CategoryKata,
			wantAnswer: true,
		},
		{
			name:       "kumite false",
			raw:        RawQuestion{Numero: 2, Categoria: "kumite", Pregunta: "¿Se permite jogai?", Respuesta: boolp(false)},
			wantOK:     true,
			wantCat:    CategoryKumite,
			wantAnswer: false,
		},
		{
			name:    "kata_parakarate folds to parakarate",
			raw:     RawQuestion{Numero: 3, Categoria: "kata_parakarate", Pregunta: "Pregunta", Respuesta: boolp(true)},
			wantOK:  true,
			wantCat: CategoryParakarate,
		},
		{
			name:   "null respuesta without tipo discards",
			raw:    RawQuestion{Numero: 4, Categoria: "kata", Pregunta: "Pregunta", Respuesta: nil},
			wantOK: false,
		},
		{
			name:   "unknown category discards",
			raw:    RawQuestion{Numero: 5, Categoria: "kobudo", Pregunta: "Pregunta", Respuesta: boolp(true)},
			wantOK: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q, ok := Normalize(tc.raw)
			if ok != tc.wantOK {
				t.Fatalf("expected ok=%v, got=%v", tc.wantOK, ok)
			}
			if !ok {
				return
			}
			if q.Category != tc.wantCat {
				t.Fatalf("expected category=%s, got=%s", tc.wantCat, q.Category)
			}
			if q.Type != TypeTrueFalse {
				t.Fatalf("expected type=%s, got=%s", TypeTrueFalse, q.Type)
			}
			if q.Answer.Kind != AnswerBool {
				t.Fatalf("expected bool answer, got kind=%d", q.Answer.Kind)
			}
			if tc.name != "kata_parakarate folds to parakarate" && q.Answer.Bool != tc.wantAnswer {
				t.Fatalf("expected answer=%v, got=%v", tc.wantAnswer, q.Answer.Bool)
			}
		})
	}
}

func TestNormalize_Multiple(t *testing.T) {
	raw := RawQuestion{
		Numero:    10,
		Categoria: "kumite",
		Pregunta:  "¿Qué señala el árbitro?",
		Tipo:      "opcion_multiple",
		Opciones: []RawOption{
			{Letra: "A", Texto: "Yuko"},
			{Letra: "B", Texto: "Waza-ari", Correcta: true},
			{Letra: "C", Texto: "Ippon"},
		},
	}

	q, ok := Normalize(raw)
	if !ok {
		t.Fatal("expected multiple question to normalize")
	}
	if q.Type != TypeMultiple {
		t.Fatalf("expected type=%s, got=%s", TypeMultiple, q.Type)
	}
	if len(q.Options) != 3 {
		t.Fatalf("expected 3 options, got %d", len(q.Options))
	}
	if q.Answer.Kind != AnswerLetter || q.Answer.Letter != "B" {
		t.Fatalf("expected answer letter B, got %+v", q.Answer)
	}
}

func TestNormalize_MultipleWithoutCorrectOption(t *testing.T) {
	raw := RawQuestion{
		Numero:    11,
		Categoria: "kata",
		Pregunta:  "Pregunta sin clave",
		Tipo:      "opcion_multiple",
		Opciones: []RawOption{
			{Letra: "A", Texto: "Uno"},
			{Letra: "B", Texto: "Dos"},
		},
	}

	q, ok := Normalize(raw)
	if !ok {
		t.Fatal("expected question to normalize despite missing key")
	}
	if q.Answer.Letter != "" {
		t.Fatalf("expected empty answer letter, got %q", q.Answer.Letter)
	}
	// The empty letter is unmatchable: no user selection can ever equal it.
	if q.Answer.Equal(LetterAnswer("A")) || q.Answer.Equal(LetterAnswer("")) {
		t.Fatal("empty answer key must never match a selection")
	}
}

func TestNormalize_MultipleWithoutOptionsFallsThrough(t *testing.T) {
	// tipo set but no options: treated as true/false, and discarded when the
	// boolean answer is missing too.
	raw := RawQuestion{Numero: 12, Categoria: "kata", Pregunta: "Pregunta", Tipo: "opcion_multiple"}
	if _, ok := Normalize(raw); ok {
		t.Fatal("expected record without options and without respuesta to be discarded")
	}

	raw.Respuesta = boolp(true)
	q, ok := Normalize(raw)
	if !ok || q.Type != TypeTrueFalse {
		t.Fatalf("expected true/false fallback, got ok=%v type=%s", ok, q.Type)
	}
}

func TestNormalizeAll_FiltersBadRecords(t *testing.T) {
	raws := []RawQuestion{
		{Numero: 1, Categoria: "kata", Pregunta: "Uno", Respuesta: boolp(true)},
		{Numero: 2, Categoria: "desconocida", Pregunta: "Dos", Respuesta: boolp(true)},
		{Numero: 3, Categoria: "kumite", Pregunta: "Tres", Respuesta: nil},
	}
	got := NormalizeAll(raws)
	if len(got) != 1 {
		t.Fatalf("expected 1 question, got %d", len(got))
	}
	if got[0].ID != 1 {
		t.Fatalf("expected question 1 to survive, got %d", got[0].ID)
	}
}

func TestNormalizeText(t *testing.T) {
	a := NormalizeText("  ¿Qué es   JOGAI? ")
	b := NormalizeText("¿qué es jogai?")
	if a != b {
		t.Fatalf("expected equal normalized texts, got %q vs %q", a, b)
	}
}
