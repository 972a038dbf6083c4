package store

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/seoulyoojin-design/finance-ai-agent/internal/model"
)

// BatchInsertLineItems 批量写入行项目
// 同一 (项目, 报表, 科目, 期间) 重复上传时以新值覆盖，已有行不会被删除
func (s *Store) BatchInsertLineItems(items []*model.LineItem) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO line_items (project_id, statement_type, account, period, amount)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (project_id, statement_type, account, period)
		DO UPDATE SET amount = excluded.amount
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, item := range items {
		_, err := stmt.Exec(item.ProjectID, string(item.StatementType), item.Account, item.Period, item.Amount)
		if err != nil {
			return fmt.Errorf("failed to insert line item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetLineItems 返回项目的全部行项目（按写入顺序）
func (s *Store) GetLineItems(projectID string) ([]model.LineItem, error) {
	rows, err := s.db.Query(`
		SELECT id, project_id, statement_type, account, period, amount
		FROM line_items WHERE project_id = ?
		ORDER BY id
	`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query line items: %w", err)
	}
	defer rows.Close()

	var items []model.LineItem
	for rows.Next() {
		var item model.LineItem
		var st string
		if err := rows.Scan(&item.ID, &item.ProjectID, &st, &item.Account, &item.Period, &item.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan line item: %w", err)
		}
		item.StatementType = model.StatementType(st)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return items, nil
}

// UpsertAmount 写入指定 (报表, 科目, 期间) 的金额
// 科目在最新期间还没有行时会补出该行（科目本身必须已由引擎校验存在）
func (s *Store) UpsertAmount(projectID string, st model.StatementType, account string, period int, value decimal.Decimal) error {
	_, err := s.db.Exec(`
		INSERT INTO line_items (project_id, statement_type, account, period, amount)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (project_id, statement_type, account, period)
		DO UPDATE SET amount = excluded.amount
	`, projectID, string(st), account, period, value.String())
	if err != nil {
		return fmt.Errorf("failed to upsert amount: %w", err)
	}
	return nil
}
