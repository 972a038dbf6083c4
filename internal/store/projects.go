package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/seoulyoojin-design/finance-ai-agent/internal/model"
)

// CreateProject 创建项目头记录
func (s *Store) CreateProject(p *model.Project) error {
	_, err := s.db.Exec(`
		INSERT INTO projects (project_id, user_id, fiscal_year, status, upload_date)
		VALUES (?, ?, ?, ?, ?)
	`, p.ProjectID, p.UserID, p.FiscalYear, p.Status, p.UploadDate.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// GetProject 根据 ID 获取项目头
func (s *Store) GetProject(projectID string) (*model.Project, error) {
	row := s.db.QueryRow(`
		SELECT project_id, user_id, fiscal_year, status, upload_date
		FROM projects WHERE project_id = ?
	`, projectID)

	p := &model.Project{}
	var uploadDate string
	err := row.Scan(&p.ProjectID, &p.UserID, &p.FiscalYear, &p.Status, &uploadDate)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan project: %w", err)
	}
	if t, err := time.Parse(time.RFC3339, uploadDate); err == nil {
		p.UploadDate = t
	}
	return p, nil
}

// UpdateProjectStatus 更新项目状态缓存
// 状态真值始终由引擎实时推导，这里只是回写最近一次结果
func (s *Store) UpdateProjectStatus(projectID, status string) error {
	_, err := s.db.Exec("UPDATE projects SET status = ? WHERE project_id = ?", status, projectID)
	if err != nil {
		return fmt.Errorf("failed to update project status: %w", err)
	}
	return nil
}

// ListProjectsByUser 列出用户的全部项目（按上传时间倒序）
func (s *Store) ListProjectsByUser(userID string) ([]*model.Project, error) {
	rows, err := s.db.Query(`
		SELECT project_id, user_id, fiscal_year, status, upload_date
		FROM projects WHERE user_id = ?
		ORDER BY upload_date DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	var out []*model.Project
	for rows.Next() {
		p := &model.Project{}
		var uploadDate string
		if err := rows.Scan(&p.ProjectID, &p.UserID, &p.FiscalYear, &p.Status, &uploadDate); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, uploadDate); err == nil {
			p.UploadDate = t
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return out, nil
}

// CountProjects 统计项目总数
func (s *Store) CountProjects() (int, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM projects").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count projects: %w", err)
	}
	return count, nil
}
