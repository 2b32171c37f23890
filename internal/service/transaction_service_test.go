package service

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestBuildExcel(t *testing.T) {
	buf, err := buildExcel("Income", []string{"Source", "Amount", "Date"}, [][]any{
		{"Salary", 5000.0, "2026-08-01"},
		{"Bonus", 750.5, "2026-08-10"},
	})
	if err != nil {
		t.Fatalf("buildExcel failed: %v", err)
	}

	file, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("generated spreadsheet does not open: %v", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) != 1 || sheets[0] != "Income" {
		t.Fatalf("want single sheet Income, got %v", sheets)
	}

	rows, err := file.GetRows("Income")
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("want header plus 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "Source" || rows[0][1] != "Amount" || rows[0][2] != "Date" {
		t.Errorf("unexpected header row: %v", rows[0])
	}
	if rows[1][0] != "Salary" || rows[1][2] != "2026-08-01" {
		t.Errorf("unexpected first data row: %v", rows[1])
	}
}

func TestBuildExcelNoRows(t *testing.T) {
	buf, err := buildExcel("Expense", []string{"Category", "Amount", "Date"}, nil)
	if err != nil {
		t.Fatalf("buildExcel failed: %v", err)
	}

	file, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("generated spreadsheet does not open: %v", err)
	}
	defer file.Close()

	rows, err := file.GetRows("Expense")
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("want header only, got %d rows", len(rows))
	}
}
