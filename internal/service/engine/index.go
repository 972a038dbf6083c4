package engine

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/seoulyoojin-design/finance-ai-agent/internal/model"
)

// statementIndex 单张报表的科目/期间索引
// "最新期间" 定义为期间键的最大值，与插入顺序无关
type statementIndex struct {
	accounts map[string]struct{}
	periods  []int // 升序
	amounts  map[string]map[int]decimal.NullDecimal
}

// buildIndexes 按报表类型构建索引，没有任何行的报表不会出现在结果中
func buildIndexes(items []model.LineItem) map[model.StatementType]*statementIndex {
	indexes := make(map[model.StatementType]*statementIndex)

	for _, item := range items {
		ix, ok := indexes[item.StatementType]
		if !ok {
			ix = &statementIndex{
				accounts: make(map[string]struct{}),
				amounts:  make(map[string]map[int]decimal.NullDecimal),
			}
			indexes[item.StatementType] = ix
		}

		ix.accounts[item.Account] = struct{}{}
		if _, ok := ix.amounts[item.Account]; !ok {
			ix.amounts[item.Account] = make(map[int]decimal.NullDecimal)
		}
		ix.amounts[item.Account][item.Period] = item.Amount

		seen := false
		for _, p := range ix.periods {
			if p == item.Period {
				seen = true
				break
			}
		}
		if !seen {
			ix.periods = append(ix.periods, item.Period)
		}
	}

	for _, ix := range indexes {
		sort.Ints(ix.periods)
	}

	return indexes
}

// latest 返回最新期间，调用方需保证索引非空
func (ix *statementIndex) latest() int {
	return ix.periods[len(ix.periods)-1]
}

// has 判断科目是否在任一期间出现过
func (ix *statementIndex) has(account string) bool {
	_, ok := ix.accounts[account]
	return ok
}

// valueAt 读取科目在指定期间的金额
// ok=false 表示该期间无记录或金额为空
func (ix *statementIndex) valueAt(account string, period int) (decimal.Decimal, bool) {
	byPeriod, ok := ix.amounts[account]
	if !ok {
		return decimal.Decimal{}, false
	}
	amount, ok := byPeriod[period]
	if !ok || !amount.Valid {
		return decimal.Decimal{}, false
	}
	return amount.Decimal, true
}

// latestValue 读取科目在最新期间的金额
func (ix *statementIndex) latestValue(account string) (decimal.Decimal, bool) {
	return ix.valueAt(account, ix.latest())
}
