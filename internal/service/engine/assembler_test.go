package engine

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/seoulyoojin-design/finance-ai-agent/internal/model"
)

func TestBuildReport_完整报告(t *testing.T) {
	result := model.AnalysisResult{
		CurrentAssets:      present(decimal.NewFromInt(1700)),
		CurrentLiabilities: present(decimal.NewFromInt(200)),
		CurrentRatio:       present(decimal.RequireFromString("8.5")),
		GrossMargin:        present(decimal.RequireFromString("0.6")),
		OperatingMargin:    present(decimal.RequireFromString("0.4")),
		CashFlowQuality:    CashFlowInsufficient,
	}
	entries := []model.ReconciliationEntry{{
		Timestamp:     time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		StatementType: model.StatementBS,
		Account:       "단기차입금",
		ProvidedValue: decimal.NewFromInt(200),
		Action:        "Filled by User Input",
		Period:        2024,
	}}

	report := BuildReport("p1", result, entries)

	if report.Status != model.StatusCompleted {
		t.Fatalf("status = %q, want %q", report.Status, model.StatusCompleted)
	}

	// 摘要：比率存在则出句子，用语以 [[용어]] 包裹
	for _, fragment := range []string{
		"[[유동비율]]은 **8.50배**",
		"[[단기 지급 능력]]",
		"[[매출총이익률]]은 **60.00%**",
		"[[영업이익률]]은 **40.00%**",
		"**최종 결론:**",
	} {
		if !strings.Contains(report.ExecutiveSummary, fragment) {
			t.Fatalf("summary missing %q:\n%s", fragment, report.ExecutiveSummary)
		}
	}

	detail, ok := report.DetailedAnalysis["수익성 분석"]
	if !ok {
		t.Fatalf("expected 수익성 분석 detail, got %v", report.DetailedAnalysis)
	}
	if !strings.Contains(detail.What, "60.00%") {
		t.Fatalf("detail what missing percentage: %q", detail.What)
	}

	if len(report.Glossary) != 7 {
		t.Fatalf("glossary size = %d, want 7", len(report.Glossary))
	}
	if len(report.ReconciliationLog) != 1 || report.ReconciliationLog[0].Account != "단기차입금" {
		t.Fatalf("unexpected reconciliation log: %v", report.ReconciliationLog)
	}
}

func TestBuildReport_比率缺失不出句子(t *testing.T) {
	report := BuildReport("p1", model.AnalysisResult{CashFlowQuality: CashFlowInsufficient}, nil)

	for _, fragment := range []string{"[[유동비율]]", "[[매출총이익률]]", "[[영업이익률]]"} {
		if strings.Contains(report.ExecutiveSummary, fragment) {
			t.Fatalf("summary should omit %q when ratio is null:\n%s", fragment, report.ExecutiveSummary)
		}
	}
	if len(report.DetailedAnalysis) != 0 {
		t.Fatalf("expected no details, got %v", report.DetailedAnalysis)
	}

	// 空日志序列化为 []，不是 null
	if report.ReconciliationLog == nil {
		t.Fatal("reconciliation log must be an empty slice, not nil")
	}
}

func TestGlossary_覆盖摘要中的用语(t *testing.T) {
	glossary := Glossary()
	for _, term := range []string{"유동비율", "단기 지급 능력", "매출총이익률", "매출원가", "판관비"} {
		if _, ok := glossary[term]; !ok {
			t.Fatalf("glossary missing term %q", term)
		}
	}
}
