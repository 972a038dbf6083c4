package store

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/seoulyoojin-design/finance-ai-agent/internal/model"
)

// AppendReconciliation 追加一条补录审计日志
func (s *Store) AppendReconciliation(projectID string, entry model.ReconciliationEntry) error {
	_, err := s.db.Exec(`
		INSERT INTO reconciliation_log (project_id, timestamp, statement_type, account, provided_value, agent_action, period)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, projectID,
		entry.Timestamp.UTC().Format(time.RFC3339Nano),
		string(entry.StatementType),
		entry.Account,
		entry.ProvidedValue.String(),
		entry.Action,
		entry.Period)
	if err != nil {
		return fmt.Errorf("failed to append reconciliation entry: %w", err)
	}
	return nil
}

// GetReconciliationLog 按写入顺序返回项目的审计日志
func (s *Store) GetReconciliationLog(projectID string) ([]model.ReconciliationEntry, error) {
	rows, err := s.db.Query(`
		SELECT timestamp, statement_type, account, provided_value, agent_action, period
		FROM reconciliation_log WHERE project_id = ?
		ORDER BY id
	`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query reconciliation log: %w", err)
	}
	defer rows.Close()

	var entries []model.ReconciliationEntry
	for rows.Next() {
		var entry model.ReconciliationEntry
		var ts, st, value string
		if err := rows.Scan(&ts, &st, &entry.Account, &value, &entry.Action, &entry.Period); err != nil {
			return nil, fmt.Errorf("failed to scan reconciliation entry: %w", err)
		}
		if t, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			entry.Timestamp = t
		}
		d, err := decimal.NewFromString(value)
		if err != nil {
			return nil, fmt.Errorf("failed to parse provided value: %w", err)
		}
		entry.ProvidedValue = d
		entry.StatementType = model.StatementType(st)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return entries, nil
}
