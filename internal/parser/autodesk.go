package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Autodesk 工作簿（Autodesk.xlsx）的三张表：
//
//	Uso                  每次使用记录（email, day_used）
//	Autodesk users       工具用户清单（Email），用于系数档位判定
//	Detalles del usuario  月均使用量（email, monthly_average），备用模式
const (
	autodeskSheetUsage   = "Uso"
	autodeskSheetUsers   = "Autodesk users"
	autodeskSheetAverage = "Detalles del usuario"

	autodeskColEmailLower = "email"
	autodeskColDayUsed    = "day_used"
	autodeskColEmail      = "Email"
	autodeskColAverage    = "monthly_average"
)

// UsageRow Uso 表的一行：某员工某天使用过 CAD 工具
type UsageRow struct {
	Email string // 已转小写
	Day   string // YYYY-MM-DD；识别不了的日期留空，由归一器丢弃
}

// AverageRow Detalles del usuario 表的一行
type AverageRow struct {
	Email          string // 已转小写
	MonthlyAverage float64
}

// ParseAutodeskUsage 解析逐日使用记录
func ParseAutodeskUsage(path string) ([]UsageRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open autodesk file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(autodeskSheetUsage)
	if err != nil {
		return nil, fmt.Errorf("read autodesk sheet %s: %w", autodeskSheetUsage, err)
	}
	if len(rows) <= 1 {
		return []UsageRow{}, nil
	}

	header := rows[0]
	colEmail, err := requireCol(header, autodeskColEmailLower, "autodesk usage")
	if err != nil {
		return nil, err
	}
	colDay, err := requireCol(header, autodeskColDayUsed, "autodesk usage")
	if err != nil {
		return nil, err
	}

	out := make([]UsageRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		email := strings.ToLower(getCell(row, colEmail))
		if email == "" {
			continue
		}
		out = append(out, UsageRow{
			Email: email,
			Day:   normalizeDay(getCell(row, colDay)),
		})
	}

	return out, nil
}

// ParseAutodeskUsers 解析工具用户清单
func ParseAutodeskUsers(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open autodesk file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(autodeskSheetUsers)
	if err != nil {
		return nil, fmt.Errorf("read autodesk sheet %s: %w", autodeskSheetUsers, err)
	}
	if len(rows) <= 1 {
		return []string{}, nil
	}

	colEmail, err := requireCol(rows[0], autodeskColEmail, "autodesk users")
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		email := strings.ToLower(getCell(row, colEmail))
		if email == "" {
			continue
		}
		out = append(out, email)
	}

	return out, nil
}

// ParseAutodeskAverages 解析月均使用量（备用归一模式的数据源）
func ParseAutodeskAverages(path string) ([]AverageRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open autodesk file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(autodeskSheetAverage)
	if err != nil {
		return nil, fmt.Errorf("read autodesk sheet %s: %w", autodeskSheetAverage, err)
	}
	if len(rows) <= 1 {
		return []AverageRow{}, nil
	}

	header := rows[0]
	colEmail, err := requireCol(header, autodeskColEmailLower, "autodesk averages")
	if err != nil {
		return nil, err
	}
	colAvg, err := requireCol(header, autodeskColAverage, "autodesk averages")
	if err != nil {
		return nil, err
	}

	out := make([]AverageRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		email := strings.ToLower(getCell(row, colEmail))
		if email == "" {
			continue
		}
		out = append(out, AverageRow{
			Email:          email,
			MonthlyAverage: parseFloat(getCell(row, colAvg)),
		})
	}

	return out, nil
}
