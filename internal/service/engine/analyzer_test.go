package engine

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/seoulyoojin-design/finance-ai-agent/internal/model"
)

func mustEqual(t *testing.T, name string, got decimal.NullDecimal, want string) {
	t.Helper()
	if !got.Valid {
		t.Fatalf("%s should be present, got null", name)
	}
	if !got.Decimal.Equal(decimal.RequireFromString(want)) {
		t.Fatalf("%s = %s, want %s", name, got.Decimal, want)
	}
}

func TestAnalyze_流动性比率(t *testing.T) {
	items := []model.LineItem{
		li(model.StatementBS, "현금", 2024, "1000"),
		li(model.StatementBS, "매출채권", 2024, "500"),
		li(model.StatementBS, "재고자산", 2024, "200"),
		li(model.StatementBS, "단기차입금", 2024, "200"),
	}

	result := Analyze(items)
	mustEqual(t, "current assets", result.CurrentAssets, "1700")
	mustEqual(t, "current liabilities", result.CurrentLiabilities, "200")
	mustEqual(t, "current ratio", result.CurrentRatio, "8.5")
}

func TestAnalyze_재고자산未声明按零计(t *testing.T) {
	items := []model.LineItem{
		li(model.StatementBS, "현금", 2024, "1000"),
		li(model.StatementBS, "매출채권", 2024, "500"),
		li(model.StatementBS, "단기차입금", 2024, "300"),
	}

	result := Analyze(items)
	mustEqual(t, "current assets", result.CurrentAssets, "1500")
	mustEqual(t, "current ratio", result.CurrentRatio, "5")
}

func TestAnalyze_재고자산声明过但为空则整组置空(t *testing.T) {
	items := []model.LineItem{
		li(model.StatementBS, "현금", 2024, "1000"),
		li(model.StatementBS, "매출채권", 2024, "500"),
		li(model.StatementBS, "재고자산", 2024, ""),
		li(model.StatementBS, "단기차입금", 2024, "300"),
	}

	result := Analyze(items)
	if result.CurrentAssets.Valid || result.CurrentRatio.Valid {
		t.Fatalf("declared-but-null 재고자산 must null the whole group: %+v", result)
	}
}

func TestAnalyze_단기차입금为零时比率取零(t *testing.T) {
	items := []model.LineItem{
		li(model.StatementBS, "현금", 2024, "1000"),
		li(model.StatementBS, "매출채권", 2024, "500"),
		li(model.StatementBS, "재고자산", 2024, "200"),
		li(model.StatementBS, "단기차입금", 2024, "0"),
	}

	result := Analyze(items)
	// 除零保护：比率为 0 且存在（不是数据不足）
	mustEqual(t, "current ratio", result.CurrentRatio, "0")
	mustEqual(t, "current assets", result.CurrentAssets, "1700")
}

func TestAnalyze_盈利性比率(t *testing.T) {
	items := []model.LineItem{
		li(model.StatementIS, "매출액", 2024, "500"),
		li(model.StatementIS, "매출원가", 2024, "200"),
		li(model.StatementIS, "판관비", 2024, "100"),
	}

	result := Analyze(items)
	mustEqual(t, "gross margin", result.GrossMargin, "0.6")
	mustEqual(t, "operating margin", result.OperatingMargin, "0.4")
}

func TestAnalyze_매출액为零时利润率取零(t *testing.T) {
	items := []model.LineItem{
		li(model.StatementIS, "매출액", 2024, "0"),
		li(model.StatementIS, "매출원가", 2024, "200"),
		li(model.StatementIS, "판관비", 2024, "100"),
	}

	result := Analyze(items)
	mustEqual(t, "gross margin", result.GrossMargin, "0")
	mustEqual(t, "operating margin", result.OperatingMargin, "0")
}

func TestAnalyze_数据不足为空而非零(t *testing.T) {
	// 판관비 缺失：盈利性整组置空
	items := []model.LineItem{
		li(model.StatementIS, "매출액", 2024, "500"),
		li(model.StatementIS, "매출원가", 2024, "200"),
	}

	result := Analyze(items)
	if result.GrossMargin.Valid || result.OperatingMargin.Valid {
		t.Fatalf("insufficient data must be null, not zero: %+v", result)
	}
}

func TestAnalyze_两组比率相互独立(t *testing.T) {
	// BS 数据不足不影响 IS 比率
	items := []model.LineItem{
		li(model.StatementBS, "현금", 2024, ""),
		li(model.StatementIS, "매출액", 2024, "500"),
		li(model.StatementIS, "매출원가", 2024, "200"),
		li(model.StatementIS, "판관비", 2024, "100"),
	}

	result := Analyze(items)
	if result.CurrentRatio.Valid {
		t.Fatalf("liquidity group should be null: %+v", result)
	}
	mustEqual(t, "gross margin", result.GrossMargin, "0.6")
}

func TestAnalyze_只取最新期间(t *testing.T) {
	items := []model.LineItem{
		li(model.StatementIS, "매출액", 2023, "999"),
		li(model.StatementIS, "매출액", 2024, "500"),
		li(model.StatementIS, "매출원가", 2024, "200"),
		li(model.StatementIS, "판관비", 2024, "100"),
	}

	result := Analyze(items)
	mustEqual(t, "gross margin", result.GrossMargin, "0.6")
}

func TestAnalyze_이익의질恒为数据不足(t *testing.T) {
	if got := Analyze(nil).CashFlowQuality; got != CashFlowInsufficient {
		t.Fatalf("cash flow quality = %q, want %q", got, CashFlowInsufficient)
	}
}
