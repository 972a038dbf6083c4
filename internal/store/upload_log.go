package store

import (
	"fmt"

	"github.com/seoulyoojin-design/finance-ai-agent/internal/model"
)

// CreateUploadLog 记录一次文件上传，返回 upload_log_id
func (s *Store) CreateUploadLog(projectID, filename string, fileSize int64, fileHash string, st model.StatementType, fiscalYear int, status string) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO upload_logs (project_id, filename, file_size, file_hash, statement_type, fiscal_year, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, projectID, filename, fileSize, fileHash, string(st), fiscalYear, status)
	if err != nil {
		return 0, fmt.Errorf("failed to create upload log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get upload log id: %w", err)
	}
	return id, nil
}
