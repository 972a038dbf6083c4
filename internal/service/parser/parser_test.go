package parser

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

func TestParseFile_CSV(t *testing.T) {
	csv := "항목,2023,2024\n" +
		"매출액,400,500\n" +
		"매출원가,180,\n" +
		"판관비,90,100\n"

	rows, err := ParseFile("is.csv", strings.NewReader(csv), 2024)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].Account != "매출액" || !rows[0].Amount.Valid || !rows[0].Amount.Decimal.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	// 空单元格 → 金额缺失，而不是 0
	if rows[1].Account != "매출원가" || rows[1].Amount.Valid {
		t.Fatalf("empty cell must yield null amount: %+v", rows[1])
	}
}

func TestParseFile_千分位与非法金额(t *testing.T) {
	csv := "항목,2024\n" +
		"매출액,\"1,234.50\"\n" +
		"매출원가,abc\n"

	rows, err := ParseFile("is.csv", strings.NewReader(csv), 2024)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if !rows[0].Amount.Valid || !rows[0].Amount.Decimal.Equal(decimal.RequireFromString("1234.5")) {
		t.Fatalf("thousands separator should be stripped: %+v", rows[0])
	}
	if rows[1].Amount.Valid {
		t.Fatalf("unparsable amount must yield null: %+v", rows[1])
	}
}

func TestParseFile_空白科目行跳过(t *testing.T) {
	csv := "항목,2024\n" +
		"  ,100\n" +
		" 현금 ,1000\n"

	rows, err := ParseFile("bs.csv", strings.NewReader(csv), 2024)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(rows) != 1 || rows[0].Account != "현금" {
		t.Fatalf("expected only trimmed 현금 row, got %+v", rows)
	}
}

func TestParseFile_不支持的文件类型(t *testing.T) {
	_, err := ParseFile("report.txt", strings.NewReader("x"), 2024)
	assertValidationError(t, err, KindUnsupportedFileType)
}

func TestParseFile_缺少科目列(t *testing.T) {
	csv := "계정,2024\n현금,1000\n"
	_, err := ParseFile("bs.csv", strings.NewReader(csv), 2024)
	assertValidationError(t, err, KindMissingAccountColumn)
}

func TestParseFile_缺少年度列(t *testing.T) {
	csv := "항목,2023\n현금,1000\n"
	_, err := ParseFile("bs.csv", strings.NewReader(csv), 2024)
	assertValidationError(t, err, KindMissingYearColumn)
}

func TestParseFile_Excel(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	data := [][]any{
		{"항목", "2023", "2024"},
		{"현금", 900, 1000},
		{"단기차입금", 150, nil},
	}
	for i, row := range data {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	rows, err := ParseFile("bs.xlsx", bytes.NewReader(buf.Bytes()), 2024)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if !rows[0].Amount.Valid || !rows[0].Amount.Decimal.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("unexpected 현금 amount: %+v", rows[0])
	}
	if rows[1].Amount.Valid {
		t.Fatalf("empty excel cell must yield null amount: %+v", rows[1])
	}
}

func assertValidationError(t *testing.T, err error, kind string) {
	t.Helper()
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Kind != kind {
		t.Fatalf("kind = %q, want %q", ve.Kind, kind)
	}
	if ve.Message == "" {
		t.Fatal("validation error must carry a user message")
	}
}
