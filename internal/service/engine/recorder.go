package engine

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/seoulyoojin-design/finance-ai-agent/internal/model"
)

// UnknownAccountError 补录目标科目在该报表中不存在
type UnknownAccountError struct {
	StatementType model.StatementType
	Account       string
}

func (e *UnknownAccountError) Error() string {
	return fmt.Sprintf("'%s' 재무제표에 '%s' 항목이 없거나 처리할 수 없습니다.", e.StatementType, e.Account)
}

// Recorder 补录记录器：把用户提供的数值写入最新期间并追加审计日志
type Recorder struct {
	repo Repository
	now  func() time.Time
}

// NewRecorder 创建补录记录器
func NewRecorder(repo Repository) *Recorder {
	return &Recorder{repo: repo, now: time.Now}
}

// Reconcile 写入用户补录值
//
// 只允许写入已在该报表任一期间声明过的科目，否则返回 UnknownAccountError，
// 且不会创建新科目。写入目标固定为该报表的最新期间，写入后对同一项目的
// 后续检测/分析立即可见。重复提交同一数值时最终状态不变，但审计日志每次
// 都会追加一条。
func (r *Recorder) Reconcile(projectID string, st model.StatementType, account string, value decimal.Decimal) (*model.ReconciliationEntry, error) {
	if !st.Valid() {
		return nil, &UnknownAccountError{StatementType: st, Account: account}
	}

	items, err := r.repo.GetLineItems(projectID)
	if err != nil {
		return nil, fmt.Errorf("load line items: %w", err)
	}

	ix, ok := buildIndexes(items)[st]
	if !ok || !ix.has(account) {
		return nil, &UnknownAccountError{StatementType: st, Account: account}
	}

	period := ix.latest()
	if err := r.repo.UpsertAmount(projectID, st, account, period, value); err != nil {
		return nil, fmt.Errorf("write amount: %w", err)
	}

	entry := model.ReconciliationEntry{
		Timestamp:     r.now(),
		StatementType: st,
		Account:       account,
		ProvidedValue: value,
		Action:        "Filled by User Input",
		Period:        period,
	}
	if err := r.repo.AppendReconciliation(projectID, entry); err != nil {
		return nil, fmt.Errorf("append reconciliation log: %w", err)
	}

	return &entry, nil
}
