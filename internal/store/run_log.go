package store

import "fmt"

// 运行状态
const (
	RunStatusProcessing = "processing"
	RunStatusSuccess    = "success"
	RunStatusFailed     = "failed"
)

// HasProcessed 判断某周期是否已成功处理过。
// 自动化驱动用它做周期级互斥：成功过的周期不再重跑。
func (s *Store) HasProcessed(period string) (bool, error) {
	var count int
	err := s.db.QueryRow(`
		SELECT COUNT(*) FROM run_logs WHERE period = ? AND status = ?
	`, period, RunStatusSuccess).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check processed period: %w", err)
	}
	return count > 0, nil
}

// CreateRunLog 创建运行日志
func (s *Store) CreateRunLog(runID, period string) error {
	_, err := s.db.Exec(`
		INSERT INTO run_logs (run_id, period, status) VALUES (?, ?, ?)
	`, runID, period, RunStatusProcessing)
	if err != nil {
		return fmt.Errorf("failed to create run log: %w", err)
	}
	return nil
}

// FinishRunLog 完成运行日志更新
func (s *Store) FinishRunLog(runID, status, errorMessage string) error {
	_, err := s.db.Exec(`
		UPDATE run_logs SET
			status = ?,
			error_message = ?,
			completed_at = CURRENT_TIMESTAMP
		WHERE run_id = ?
	`, status, errorMessage, runID)
	if err != nil {
		return fmt.Errorf("failed to finish run log: %w", err)
	}
	return nil
}

// RunLog 一次周期运行的记录
type RunLog struct {
	ID           int64  `json:"id"`
	RunID        string `json:"run_id"`
	Period       string `json:"period"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	StartedAt    string `json:"started_at"`
	CompletedAt  string `json:"completed_at"`
}

// ListRunLogs 某周期的运行历史，最近的在前
func (s *Store) ListRunLogs(period string) ([]RunLog, error) {
	rows, err := s.db.Query(`
		SELECT id, run_id, period, status,
		       COALESCE(error_message, ''), COALESCE(started_at, ''), COALESCE(completed_at, '')
		FROM run_logs WHERE period = ? ORDER BY id DESC
	`, period)
	if err != nil {
		return nil, fmt.Errorf("failed to list run logs: %w", err)
	}
	defer rows.Close()

	var logs []RunLog
	for rows.Next() {
		var l RunLog
		if err := rows.Scan(&l.ID, &l.RunID, &l.Period, &l.Status, &l.ErrorMessage, &l.StartedAt, &l.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run log: %w", err)
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
