package bank

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ExcelSource reads the exam bank from a spreadsheet, for content maintainers
// who author questions in xlsx rather than the published JSON document.
// Expected header columns: numero, categoria, pregunta, respuesta,
// aclaracion, tipo, correcta, opcion_a .. opcion_f. For multiple-choice rows,
// `correcta` holds the letter of the right option.
type ExcelSource struct {
	Path string
}

var optionColumns = []string{"opcion_a", "opcion_b", "opcion_c", "opcion_d", "opcion_e", "opcion_f"}

func (s *ExcelSource) Fetch(ctx context.Context) ([]RawQuestion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open excel: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("excel sheet is empty")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, errors.New("no data rows found")
	}

	header := map[string]int{}
	for i, h := range rows[0] {
		header[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range []string{"numero", "categoria", "pregunta"} {
		if _, ok := header[col]; !ok {
			return nil, fmt.Errorf("missing required column: %s", col)
		}
	}

	out := make([]RawQuestion, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		get := func(key string) string {
			idx, ok := header[key]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		numero, err := strconv.Atoi(get("numero"))
		if err != nil {
			// Malformed rows are skipped, mirroring the normalizer's
			// discard-on-invalid contract.
			continue
		}

		raw := RawQuestion{
			Numero:     numero,
			Categoria:  strings.ToLower(get("categoria")),
			Pregunta:   get("pregunta"),
			Aclaracion: get("aclaracion"),
			Tipo:       strings.ToLower(get("tipo")),
			Respuesta:  parseRespuesta(get("respuesta")),
		}

		if raw.Tipo == tipoOpcionMultiple {
			correcta := strings.ToUpper(get("correcta"))
			for _, col := range optionColumns {
				text := get(col)
				if text == "" {
					continue
				}
				letter := strings.ToUpper(strings.TrimPrefix(col, "opcion_"))
				raw.Opciones = append(raw.Opciones, RawOption{
					Letra:    letter,
					Texto:    text,
					Correcta: letter == correcta,
				})
			}
		}

		out = append(out, raw)
	}

	return out, nil
}

// parseRespuesta interprets a loose true/false cell; an empty or
// unrecognized value is treated as absent.
func parseRespuesta(v string) *bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "verdadero", "true", "si", "1":
		t := true
		return &t
	case "falso", "false", "no", "0":
		f := false
		return &f
	default:
		return nil
	}
}
