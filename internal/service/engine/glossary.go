package engine

import (
	"github.com/seoulyoojin-design/finance-ai-agent/internal/model"
)

// glossaryTerms 用语词典，进程级只读数据，所有项目共享
var glossaryTerms = map[string]model.GlossaryTerm{
	"유동자산": {
		Explanation: "1년 안에 현금으로 바꿀 수 있는 자산.",
		Guidance:    "단기 자금 동원력",
	},
	"유동부채": {
		Explanation: "1년 안에 갚아야 하는 빚.",
		Guidance:    "단기 상환 의무",
	},
	"유동비율": {
		Explanation: "단기 빚을 갚을 능력을 보여주는 지표.",
		Guidance:    "200% 이상이 양호",
	},
	"매출총이익률": {
		Explanation: "매출액에서 원가를 뺀 마진율.",
		Guidance:    "핵심 사업 경쟁력",
	},
	"판관비": {
		Explanation: "물건을 팔거나 회사를 운영하는 데 들어가는 비용.",
		Guidance:    "영업 효율성",
	},
	"단기 지급 능력": {
		Explanation: "가까운 시일(보통 1년 이내)에 예상되는 빚을 제때 갚을 수 있는 회사의 능력을 의미합니다.",
		Guidance:    "유동비율과 당좌비율 등을 통해 측정합니다.",
	},
	"매출원가": {
		Explanation: "물건을 만들거나 서비스를 제공하는 데 직접 들어간 비용입니다.",
		Guidance:    "주력 사업의 비용 효율성",
	},
}

// Glossary 返回完整用语词典（调用方只读使用）
func Glossary() map[string]model.GlossaryTerm {
	return glossaryTerms
}
