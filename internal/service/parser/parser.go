package parser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
)

// AccountColumn 上传文件中的科目列名
const AccountColumn = "항목"

// 校验错误类别
const (
	KindUnsupportedFileType  = "UnsupportedFileType"
	KindMissingAccountColumn = "MissingAccountColumn"
	KindMissingYearColumn    = "MissingYearColumn"
)

// ValidationError 上传文件结构校验失败，Kind 标明违反的具体规则
type ValidationError struct {
	Kind    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func errUnsupportedFileType() *ValidationError {
	return &ValidationError{
		Kind:    KindUnsupportedFileType,
		Message: "지원하지 않는 파일 형식입니다. CSV 또는 Excel 파일을 업로드해주세요.",
	}
}

func errMissingAccountColumn() *ValidationError {
	return &ValidationError{
		Kind:    KindMissingAccountColumn,
		Message: fmt.Sprintf("파일에 '%s' 컬럼이 없습니다.", AccountColumn),
	}
}

func errMissingYearColumn(fiscalYear int) *ValidationError {
	return &ValidationError{
		Kind:    KindMissingYearColumn,
		Message: fmt.Sprintf("파일에 '%d'년 컬럼이 없습니다.", fiscalYear),
	}
}

// Row 标准化后的单行：科目 + 金额（可缺失）
type Row struct {
	Account string
	Amount  decimal.NullDecimal
}

// StandardizeAccount 把上传的科目名映射为标准科目名
// 目前为恒等映射（仅去除首尾空白）；接入 LLM 科目映射时替换此实现
var StandardizeAccount = func(name string) string {
	return strings.TrimSpace(name)
}

// ParseFile 按扩展名解析上传文件，提取指定会计年度列的 (科目, 金额) 对
func ParseFile(filename string, r io.Reader, fiscalYear int) ([]Row, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return parseCSV(r, fiscalYear)
	case ".xls", ".xlsx":
		return parseExcel(r, fiscalYear)
	default:
		return nil, errUnsupportedFileType()
	}
}

// extractRows 从表头 + 数据行中提取目标年度的科目金额
// 表头必须包含科目列和与会计年度同名的列
func extractRows(header []string, records [][]string, fiscalYear int) ([]Row, error) {
	accountIdx := -1
	yearIdx := -1
	yearCol := fmt.Sprintf("%d", fiscalYear)

	for i, col := range header {
		switch strings.TrimSpace(col) {
		case AccountColumn:
			accountIdx = i
		case yearCol:
			yearIdx = i
		}
	}

	if accountIdx < 0 {
		return nil, errMissingAccountColumn()
	}
	if yearIdx < 0 {
		return nil, errMissingYearColumn(fiscalYear)
	}

	rows := make([]Row, 0, len(records))
	for _, record := range records {
		if accountIdx >= len(record) {
			continue
		}
		account := StandardizeAccount(record[accountIdx])
		if account == "" {
			continue
		}

		var amount decimal.NullDecimal
		if yearIdx < len(record) {
			amount = parseAmount(record[yearIdx])
		}
		rows = append(rows, Row{Account: account, Amount: amount})
	}

	return rows, nil
}

// parseAmount 解析金额单元格，空白或无法解析时视为缺失
func parseAmount(cell string) decimal.NullDecimal {
	val := strings.TrimSpace(cell)
	if val == "" {
		return decimal.NullDecimal{}
	}
	// 移除千分位分隔符
	val = strings.ReplaceAll(val, ",", "")
	d, err := decimal.NewFromString(val)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}
