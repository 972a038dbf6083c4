package engine

import (
	"github.com/seoulyoojin-design/finance-ai-agent/internal/model"
)

// mandatoryAccounts 各报表的必填科目清单（固定策略，不开放配置）
// CFS 目前没有任何上传来源会参与分析，清单保留以保持检测逻辑统一
var mandatoryAccounts = map[model.StatementType][]string{
	model.StatementBS:  {"현금", "매출채권", "재고자산", "단기차입금", "자본금"},
	model.StatementIS:  {"매출액", "매출원가", "영업이익"},
	model.StatementCFS: {"영업활동현금흐름", "투자활동현금흐름", "재무활동현금흐름"},
}

// DetectMissing 扫描最新期间的必填科目缺口
//
// 规则：
//   - 一行数据都没有的报表直接跳过，不会整表报缺
//   - 科目在任一期间出现过、且最新期间金额为空（或无记录）才算缺失
//   - 从未录入过的科目不报缺（补录也只能写入已声明的科目）
//
// 返回空 map 表示对账完成。无副作用。
func DetectMissing(items []model.LineItem) model.MissingItems {
	indexes := buildIndexes(items)
	missing := model.MissingItems{}

	for _, st := range model.StatementTypes {
		ix, ok := indexes[st]
		if !ok {
			continue
		}

		latest := ix.latest()
		var gaps []string
		for _, account := range mandatoryAccounts[st] {
			if !ix.has(account) {
				continue
			}
			if _, ok := ix.valueAt(account, latest); !ok {
				gaps = append(gaps, account)
			}
		}
		if len(gaps) > 0 {
			missing[st] = gaps
		}
	}

	return missing
}
