package engine

import (
	"github.com/shopspring/decimal"

	"github.com/seoulyoojin-design/finance-ai-agent/internal/model"
)

// Repository 行项目与审计日志的持久化接口
// 引擎只依赖该接口，不感知具体存储实现
type Repository interface {
	// GetLineItems 返回项目的全部行项目
	GetLineItems(projectID string) ([]model.LineItem, error)
	// UpsertAmount 写入指定 (报表, 科目, 期间) 的金额
	UpsertAmount(projectID string, st model.StatementType, account string, period int, value decimal.Decimal) error
	// AppendReconciliation 追加一条审计日志
	AppendReconciliation(projectID string, entry model.ReconciliationEntry) error
	// GetReconciliationLog 按写入顺序返回审计日志
	GetReconciliationLog(projectID string) ([]model.ReconciliationEntry, error)
}
