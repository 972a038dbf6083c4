package engine

import (
	"github.com/shopspring/decimal"

	"github.com/seoulyoojin-design/finance-ai-agent/internal/model"
)

// CashFlowInsufficient CFS 无数据来源时的固定占位结论
const CashFlowInsufficient = "데이터 부족"

// Analyze 对最新期间的行项目做比率计算，纯函数、可重复调用
//
// 两组比率相互独立，任意一组的输入只要有一个为空，该组结果即为空
// （区别于 0，也不会从结果中省略）：
//
//	流动性：유동자산 = 현금 + 매출채권 + 재고자산，재고자산 从未声明时按 0 计，
//	        已声明但为空时整组置空；유동비율 = 유동자산 / 단기차입금，
//	        단기차입금 为 0 时比率取 0（除零保护，不置空）。
//	盈利性：매출액/매출원가/판관비 齐备时计算毛利率与营业利润率，
//	        매출액 为 0 时两个比率取 0。
//
// CFS 没有任何生产路径，이익의질 恒为 "데이터 부족"。
func Analyze(items []model.LineItem) model.AnalysisResult {
	indexes := buildIndexes(items)
	result := model.AnalysisResult{CashFlowQuality: CashFlowInsufficient}

	if bs, ok := indexes[model.StatementBS]; ok {
		analyzeLiquidity(bs, &result)
	}
	if is, ok := indexes[model.StatementIS]; ok {
		analyzeProfitability(is, &result)
	}

	return result
}

// analyzeLiquidity 流动性分析（BS）
func analyzeLiquidity(bs *statementIndex, result *model.AnalysisResult) {
	cash, cashOK := bs.latestValue("현금")
	receivables, recvOK := bs.latestValue("매출채권")
	borrowings, borrowOK := bs.latestValue("단기차입금")

	// 재고자산 特例：从未声明按 0 计，声明过但为空则整组数据不足
	inventory := decimal.Zero
	inventoryOK := true
	if bs.has("재고자산") {
		inventory, inventoryOK = bs.latestValue("재고자산")
	}

	if !cashOK || !recvOK || !inventoryOK || !borrowOK {
		return
	}

	assets := cash.Add(receivables).Add(inventory)
	result.CurrentAssets = present(assets)
	result.CurrentLiabilities = present(borrowings)

	if borrowings.IsZero() {
		result.CurrentRatio = present(decimal.Zero)
	} else {
		result.CurrentRatio = present(assets.Div(borrowings))
	}
}

// analyzeProfitability 盈利性分析（IS）
func analyzeProfitability(is *statementIndex, result *model.AnalysisResult) {
	revenue, revOK := is.latestValue("매출액")
	cogs, cogsOK := is.latestValue("매출원가")
	sgna, sgnaOK := is.latestValue("판관비")

	if !revOK || !cogsOK || !sgnaOK {
		return
	}

	grossProfit := revenue.Sub(cogs)
	operatingIncome := grossProfit.Sub(sgna)

	if revenue.IsZero() {
		result.GrossMargin = present(decimal.Zero)
		result.OperatingMargin = present(decimal.Zero)
		return
	}
	result.GrossMargin = present(grossProfit.Div(revenue))
	result.OperatingMargin = present(operatingIncome.Div(revenue))
}

func present(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: true}
}
