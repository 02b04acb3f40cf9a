package exporter

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"workpulse/internal/model"
)

func TestWriteDailyScores(t *testing.T) {
	t.Parallel()

	month := model.Month{Year: 2025, Month: 3}
	var weighted model.Vector
	weighted[0] = 0.25

	scores := &model.DailyScores{Month: month, Sheets: []model.DailySheet{
		{Day: "2025-03-01", Records: []model.DailyRecord{
			{Email: "a@x.co", Username: "Ana", Cat: "01", Weighted: weighted, Productivity: 0.25},
		}},
		{Day: "2025-03-02"},
	}}

	path := filepath.Join(t.TempDir(), "productivity_by_day.xlsx")
	if err := WriteDailyScores(scores, path); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 {
		t.Fatalf("unexpected sheets: %v", sheets)
	}

	rows, err := f.GetRows("2025-03-01")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("unexpected row count: %d", len(rows))
	}
	if rows[0][0] != "Email" || rows[0][3] != "Sent emails" || rows[0][13] != "Productivity" {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	if rows[1][0] != "a@x.co" || rows[1][3] != "0.25" {
		t.Fatalf("unexpected record row: %v", rows[1])
	}
}

func TestWriteFinalReport(t *testing.T) {
	t.Parallel()

	month := model.Month{Year: 2025, Month: 2}
	report := &model.FinalReport{Month: month, Rows: []model.ReportRow{
		{
			Email: "a@x.co", Username: "Ana", Cat: "01",
			Division: "Vías", Departamento: "Diseño",
			Scores: map[string]float64{"01": 0.5, "28": 1},
		},
	}}

	path := filepath.Join(t.TempDir(), "final_table_with_results.xlsx")
	if err := WriteFinalReport(report, path); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Resultados")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	header := rows[0]
	// 5 固定列 + 2 月 28 天
	if len(header) != 33 {
		t.Fatalf("unexpected header width: %d", len(header))
	}
	if header[5] != "01" || header[32] != "28" {
		t.Fatalf("unexpected day columns: %v", header[5:])
	}

	row := rows[1]
	if row[3] != "Vías" || row[4] != "Diseño" {
		t.Fatalf("org columns wrong: %v", row[:5])
	}
	if row[5] != "0.5" {
		t.Fatalf("day 01 score wrong: %q", row[5])
	}
	// 无数据的天留空
	if len(row) > 6 && row[6] != "" {
		t.Fatalf("empty day must stay blank: %q", row[6])
	}
}
