package engine

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/seoulyoojin-design/finance-ai-agent/internal/model"
)

// BuildReport 组装最终报告文档
//
// 摘要按 "比率存在则包含对应句子" 的规则拼装模板文案，领域用语以
// [[용어]] 包裹，供前端渲染词典提示。审计日志原样返回。
func BuildReport(projectID string, result model.AnalysisResult, entries []model.ReconciliationEntry) *model.Report {
	var summary strings.Builder
	summary.WriteString("📈 **AI Agent의 핵심 재무 진단**\n")

	if result.CurrentRatio.Valid {
		fmt.Fprintf(&summary,
			"   - 회사의 [[유동비율]]은 **%s배**로, [[단기 지급 능력]]은 매우 안정적입니다. (2.0배 기준 양호)\n",
			formatRatio(result.CurrentRatio.Decimal))
	}
	if result.GrossMargin.Valid {
		fmt.Fprintf(&summary,
			"   - [[매출총이익률]]은 **%s**입니다. 이는 주력 사업의 마진 경쟁력이 우수함을 나타냅니다.\n",
			formatPercent(result.GrossMargin.Decimal))
	}
	if result.OperatingMargin.Valid {
		fmt.Fprintf(&summary,
			"   - [[영업이익률]]은 **%s**입니다. 영업 효율성도 양호합니다.\n",
			formatPercent(result.OperatingMargin.Decimal))
	}

	summary.WriteString("\n**최종 결론:** 전반적으로 양호한 재무 상태를 유지하고 있으나, 특정 비용 항목에 대한 추가 분석이 필요합니다.")

	details := make(map[string]model.AnalysisDetail)
	if result.GrossMargin.Valid {
		details["수익성 분석"] = model.AnalysisDetail{
			Title:  "수익성 및 효율성 분석",
			What:   fmt.Sprintf("[[매출총이익률]]이 %s로 높게 유지되고 있습니다.", formatPercent(result.GrossMargin.Decimal)),
			Why:    "이는 [[매출원가]] 통제에 성공했거나 고마진 제품의 판매 비중이 높기 때문으로 추정됩니다.",
			Action: "고마진 제품 판매 채널을 확장하고, 경쟁사 대비 [[매출원가]] 효율성을 검토할 것을 권고합니다.",
		}
	}

	if entries == nil {
		entries = []model.ReconciliationEntry{}
	}

	return &model.Report{
		ProjectID:         projectID,
		Status:            model.StatusCompleted,
		ExecutiveSummary:  summary.String(),
		DetailedAnalysis:  details,
		Glossary:          Glossary(),
		ReconciliationLog: entries,
	}
}

// formatRatio 比率保留两位小数，如 8.50
func formatRatio(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// formatPercent 百分比保留两位小数，如 60.00%
func formatPercent(d decimal.Decimal) string {
	return d.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
