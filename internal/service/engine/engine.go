package engine

import (
	"fmt"

	"github.com/seoulyoojin-design/finance-ai-agent/internal/model"
)

// Engine 对账与分析流程的编排器
//
// 状态机只有两个派生状态：AWAITING_RECONCILIATION 和 Completed，
// 均由当前数据实时推导，持久化的项目状态只是缓存
type Engine struct {
	repo Repository
}

// New 创建引擎
func New(repo Repository) *Engine {
	return &Engine{repo: repo}
}

// Result 单次 Run 的结果：要么是缺口清单，要么是完整报告
type Result struct {
	Status       string             `json:"status"`
	MissingItems model.MissingItems `json:"missing_items,omitempty"`
	Message      string             `json:"message,omitempty"`
	Report       *model.Report      `json:"report,omitempty"`
}

// Run 执行检测 →（有缺口则提前返回）→ 分析 → 组装
//
// 有缺口时返回 AWAITING_RECONCILIATION，对本次调用是终态；
// 补录完成后再次 Run 会走完整分析流程。协作方错误原样上抛，无重试。
func (e *Engine) Run(projectID string) (*Result, error) {
	items, err := e.repo.GetLineItems(projectID)
	if err != nil {
		return nil, fmt.Errorf("load line items: %w", err)
	}

	missing := DetectMissing(items)
	if len(missing) > 0 {
		return &Result{
			Status:       model.StatusAwaiting,
			MissingItems: missing,
			Message:      "필수 재무 데이터가 누락되었습니다. 입력해주세요.",
		}, nil
	}

	analysis := Analyze(items)

	entries, err := e.repo.GetReconciliationLog(projectID)
	if err != nil {
		return nil, fmt.Errorf("load reconciliation log: %w", err)
	}

	return &Result{
		Status: model.StatusCompleted,
		Report: BuildReport(projectID, analysis, entries),
	}, nil
}
