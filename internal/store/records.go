package store

import (
	"database/sql"
	"fmt"

	"workpulse/internal/model"
)

// ProductivityRecord 持久化后的每日生产力记录
type ProductivityRecord struct {
	ID            int64   `json:"id"`
	Email         string  `json:"email"`
	Username      string  `json:"username"`
	Cat           string  `json:"cat"`
	Division      string  `json:"division"`
	Departamento  string  `json:"departamento"`
	Productividad float64 `json:"productividad"`
	Fecha         string  `json:"fecha"`
}

// SavePeriodScores 持久化一个周期的全部打分记录。
// 先清掉该月已有记录再整月写入，保证重复运行落库结果一致。
func (s *Store) SavePeriodScores(scores *model.DailyScores, roster *model.Roster) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback()

	monthPrefix := scores.Month.String() + "-%"
	if _, err := tx.Exec(`DELETE FROM productivity WHERE fecha LIKE ?`, monthPrefix); err != nil {
		return fmt.Errorf("failed to clear period records: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO productivity (email, username, cat, division, departamento, productividad, fecha)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, sheet := range scores.Sheets {
		for _, rec := range sheet.Records {
			var division, departamento string
			if entry, ok := roster.Lookup(rec.Email); ok {
				division = entry.Division
				departamento = entry.Departamento
			}
			if _, err := stmt.Exec(rec.Email, rec.Username, rec.Cat, division, departamento, rec.Productivity, sheet.Day); err != nil {
				return fmt.Errorf("failed to insert record %s/%s: %w", rec.Email, sheet.Day, err)
			}
		}
	}

	return tx.Commit()
}

// ListEmployees 已落库的员工邮箱列表（去重、排序）
func (s *Store) ListEmployees() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT email FROM productivity ORDER BY email`)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("failed to scan email: %w", err)
		}
		emails = append(emails, email)
	}
	return emails, rows.Err()
}

// GetEmployeeRecords 某员工的全部记录，按日期排序
func (s *Store) GetEmployeeRecords(email string) ([]ProductivityRecord, error) {
	return s.queryRecords(`
		SELECT id, email, username, cat, division, departamento, productividad, fecha
		FROM productivity WHERE email = ? ORDER BY fecha
	`, email)
}

// MetricsQuery 指标查询过滤条件，零值字段不过滤
type MetricsQuery struct {
	Email      string
	Categoria  string
	FechaDesde string // YYYY-MM-DD，含
	FechaHasta string // YYYY-MM-DD，含
}

// QueryMetrics 按过滤条件查询记录
func (s *Store) QueryMetrics(q MetricsQuery) ([]ProductivityRecord, error) {
	query := `
		SELECT id, email, username, cat, division, departamento, productividad, fecha
		FROM productivity WHERE 1=1
	`
	var args []interface{}
	if q.Email != "" {
		query += " AND email = ?"
		args = append(args, q.Email)
	}
	if q.Categoria != "" {
		query += " AND cat = ?"
		args = append(args, q.Categoria)
	}
	if q.FechaDesde != "" {
		query += " AND fecha >= ?"
		args = append(args, q.FechaDesde)
	}
	if q.FechaHasta != "" {
		query += " AND fecha <= ?"
		args = append(args, q.FechaHasta)
	}
	query += " ORDER BY fecha, email"

	return s.queryRecords(query, args...)
}

func (s *Store) queryRecords(query string, args ...interface{}) ([]ProductivityRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var records []ProductivityRecord
	for rows.Next() {
		var r ProductivityRecord
		var division, departamento sql.NullString
		if err := rows.Scan(&r.ID, &r.Email, &r.Username, &r.Cat, &division, &departamento, &r.Productividad, &r.Fecha); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		r.Division = division.String
		r.Departamento = departamento.String
		records = append(records, r)
	}
	return records, rows.Err()
}
