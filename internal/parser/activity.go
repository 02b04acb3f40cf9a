package parser

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"workpulse/internal/model"
)

// 清洗后活动工作簿（data_cleaned.xlsx）的规范表头
const (
	activityColEmail           = "Email"
	activityColUsername        = "Username"
	activityColSentEmails      = "Sent emails"
	activityColEmailLastUse    = "Email last use"
	activityColEditedFiles     = "Edited files"
	activityColViewedFiles     = "Viewed files"
	activityColDriveLastUse    = "Drive last use"
	activityColAddedFiles      = "Added files"
	activityColOtherAddedFiles = "Other added files"
)

// ActivityRow 清洗后活动工作簿的一行（某天某员工的原始计数/时间戳）
type ActivityRow struct {
	Email           string
	Username        string
	SentEmails      float64
	EmailLastUse    string // 时间戳字符串，与当天日期比对
	EditedFiles     float64
	ViewedFiles     float64
	DriveLastUse    string // 时间戳字符串，与当天日期比对
	AddedFiles      float64
	OtherAddedFiles float64
}

// ActivityBook 整月的清洗后活动数据：每个日期一张表
type ActivityBook struct {
	Month  model.Month
	Sheets map[string][]ActivityRow // 日期键 -> 行
}

// SortedDays 有数据的日期键，按日序
func (b *ActivityBook) SortedDays() []string {
	days := make([]string, 0, len(b.Sheets))
	for day := range b.Sheets {
		days = append(days, day)
	}
	sort.Strings(days)
	return days
}

// ParseActivityBook 解析清洗后的活动工作簿。
// 工作表名即日期键；目标月之外的表丢弃；任何一张表缺必需列则整体失败。
func ParseActivityBook(path string, month model.Month) (*ActivityBook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open activity workbook: %w", err)
	}
	defer f.Close()

	book := &ActivityBook{
		Month:  month,
		Sheets: make(map[string][]ActivityRow),
	}

	for _, sheet := range f.GetSheetList() {
		if !month.Contains(sheet) {
			continue
		}
		rows, err := parseActivitySheet(f, sheet)
		if err != nil {
			return nil, err
		}
		book.Sheets[sheet] = rows
	}

	if len(book.Sheets) == 0 {
		return nil, fmt.Errorf("activity workbook has no sheets for %s", month)
	}

	return book, nil
}

func parseActivitySheet(f *excelize.File, sheet string) ([]ActivityRow, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read activity sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("activity sheet %s: empty", sheet)
	}

	header := rows[0]
	source := "activity sheet " + sheet

	colEmail, err := requireCol(header, activityColEmail, source)
	if err != nil {
		return nil, err
	}
	colUsername, err := requireCol(header, activityColUsername, source)
	if err != nil {
		return nil, err
	}
	colSent, err := requireCol(header, activityColSentEmails, source)
	if err != nil {
		return nil, err
	}
	colEmailUse, err := requireCol(header, activityColEmailLastUse, source)
	if err != nil {
		return nil, err
	}
	colEdited, err := requireCol(header, activityColEditedFiles, source)
	if err != nil {
		return nil, err
	}
	colViewed, err := requireCol(header, activityColViewedFiles, source)
	if err != nil {
		return nil, err
	}
	colDriveUse, err := requireCol(header, activityColDriveLastUse, source)
	if err != nil {
		return nil, err
	}
	colAdded, err := requireCol(header, activityColAddedFiles, source)
	if err != nil {
		return nil, err
	}
	colOtherAdded, err := requireCol(header, activityColOtherAddedFiles, source)
	if err != nil {
		return nil, err
	}

	out := make([]ActivityRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		email := getCell(row, colEmail)
		if email == "" {
			continue
		}
		out = append(out, ActivityRow{
			Email:           email,
			Username:        getCell(row, colUsername),
			SentEmails:      parseFloat(getCell(row, colSent)),
			EmailLastUse:    getCell(row, colEmailUse),
			EditedFiles:     parseFloat(getCell(row, colEdited)),
			ViewedFiles:     parseFloat(getCell(row, colViewed)),
			DriveLastUse:    getCell(row, colDriveUse),
			AddedFiles:      parseFloat(getCell(row, colAdded)),
			OtherAddedFiles: parseFloat(getCell(row, colOtherAdded)),
		})
	}

	return out, nil
}
