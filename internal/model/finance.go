package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementType 财务报表类型
type StatementType string

const (
	StatementBS  StatementType = "BS"  // 资产负债表
	StatementIS  StatementType = "IS"  // 利润表
	StatementCFS StatementType = "CFS" // 现金流量表
)

// StatementTypes 固定的报表遍历顺序
var StatementTypes = []StatementType{StatementBS, StatementIS, StatementCFS}

// Valid 判断报表类型是否合法
func (st StatementType) Valid() bool {
	switch st {
	case StatementBS, StatementIS, StatementCFS:
		return true
	}
	return false
}

// 项目状态（缓存值，引擎每次调用都会实时重算）
const (
	StatusUploaded  = "Uploaded"
	StatusAwaiting  = "AWAITING_RECONCILIATION"
	StatusCompleted = "Completed"
)

// LineItem 标准化后的财务行项目
// 以 (project, statement_type, account, period) 唯一，金额缺失与金额为 0 是不同状态
type LineItem struct {
	ID            int64               `json:"id"`
	ProjectID     string              `json:"projectId"`
	StatementType StatementType       `json:"statementType"`
	Account       string              `json:"account"` // 标准科目名
	Period        int                 `json:"period"`  // 会计年度
	Amount        decimal.NullDecimal `json:"amount"`
}

// Project 项目头信息
type Project struct {
	ProjectID  string    `json:"project_id"`
	UserID     string    `json:"user_id"`
	FiscalYear int       `json:"fiscal_year"`
	Status     string    `json:"status"`
	UploadDate time.Time `json:"upload_date"`
}

// ReconciliationEntry 补录审计日志条目，仅追加、不可修改
type ReconciliationEntry struct {
	Timestamp     time.Time       `json:"timestamp"`
	StatementType StatementType   `json:"statement_type"`
	Account       string          `json:"item"`
	ProvidedValue decimal.Decimal `json:"provided_value"`
	Action        string          `json:"agent_action"`
	Period        int             `json:"fiscal_year"` // 写入的是哪个年度的数据
}

// MissingItems 各报表缺失的必填科目（有序），空 map 表示已对账完成
type MissingItems map[StatementType][]string

// AnalysisResult 比率分析结果，每次请求重算、不落库
// Valid=false 表示数据不足（区别于数值为 0）
type AnalysisResult struct {
	CurrentAssets      decimal.NullDecimal // 유동자산（流动资产）
	CurrentLiabilities decimal.NullDecimal // 유동부채（流动负债）
	CurrentRatio       decimal.NullDecimal // 유동비율（流动比率）
	GrossMargin        decimal.NullDecimal // 매출총이익률（毛利率）
	OperatingMargin    decimal.NullDecimal // 영업이익률（营业利润率）
	CashFlowQuality    string              // 이익의질：CFS 无数据来源，恒为提示文案
}

// GlossaryTerm 用语词典条目，进程级只读共享
type GlossaryTerm struct {
	Explanation string `json:"explanation"` // 쉬운 설명
	Guidance    string `json:"guidance"`    // 분석 기준
}

// AnalysisDetail 报告的 what/why/action 三元组
type AnalysisDetail struct {
	Title  string `json:"title"`
	What   string `json:"what"`
	Why    string `json:"why"`
	Action string `json:"action"`
}

// Report 最终报告文档
type Report struct {
	ProjectID         string                    `json:"project_id"`
	Status            string                    `json:"status"`
	ExecutiveSummary  string                    `json:"executive_summary"`
	DetailedAnalysis  map[string]AnalysisDetail `json:"detailed_analysis"`
	Glossary          map[string]GlossaryTerm   `json:"glossary"`
	ReconciliationLog []ReconciliationEntry     `json:"reconciliation_log"`
}
