package bank

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeExamSheet(t *testing.T, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for col, v := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+1)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	path := filepath.Join(t.TempDir(), "examen.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save xlsx: %v", err)
	}
	return path
}

func TestExcelSource_Fetch(t *testing.T) {
	path := writeExamSheet(t, [][]any{
		{"numero", "categoria", "pregunta", "respuesta", "aclaracion", "tipo", "correcta", "opcion_a", "opcion_b"},
		{1, "kata", "¿Uno?", "verdadero", "Regla 5", "", "", "", ""},
		{2, "kumite", "¿Dos?", "falso", "", "", "", "", ""},
		{3, "kumite", "¿Tres?", "", "", "opcion_multiple", "B", "Primera", "Segunda"},
		{"x", "kata", "fila corrupta", "", "", "", "", "", ""},
	})

	src := &ExcelSource{Path: path}
	raws, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(raws) != 3 {
		t.Fatalf("expected 3 records (corrupt row skipped), got %d", len(raws))
	}

	if raws[0].Respuesta == nil || !*raws[0].Respuesta {
		t.Fatalf("expected row 1 respuesta=true, got %+v", raws[0].Respuesta)
	}
	if raws[1].Respuesta == nil || *raws[1].Respuesta {
		t.Fatalf("expected row 2 respuesta=false, got %+v", raws[1].Respuesta)
	}
	if raws[0].Aclaracion != "Regla 5" {
		t.Fatalf("expected aclaracion, got %q", raws[0].Aclaracion)
	}

	mc := raws[2]
	if mc.Tipo != "opcion_multiple" || len(mc.Opciones) != 2 {
		t.Fatalf("unexpected multiple-choice record: %+v", mc)
	}
	if !mc.Opciones[1].Correcta || mc.Opciones[0].Correcta {
		t.Fatalf("expected option B correct, got %+v", mc.Opciones)
	}

	questions := NormalizeAll(raws)
	if len(questions) != 3 {
		t.Fatalf("expected 3 normalized questions, got %d", len(questions))
	}
	if questions[2].Answer.Letter != "B" {
		t.Fatalf("expected answer B, got %q", questions[2].Answer.Letter)
	}
}

func TestExcelSource_MissingColumns(t *testing.T) {
	path := writeExamSheet(t, [][]any{
		{"numero", "pregunta"},
		{1, "sin categoria"},
	})

	src := &ExcelSource{Path: path}
	if _, err := src.Fetch(context.Background()); err == nil {
		t.Fatal("expected error for missing required column")
	}
}
