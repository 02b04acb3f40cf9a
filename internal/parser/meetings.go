package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// 会议日志（Meetings.xlsx）
const (
	meetingsColFecha = "Fecha"
	meetingsColActor = "Actor"
	meetingsColCode  = "Código de reunión"
)

// MeetingRow 会议日志的一行
type MeetingRow struct {
	Day   string // YYYY-MM-DD
	Actor string
	Code  string // 会议码，用于同日同会议去重
}

// ParseMeetings 解析会议日志
func ParseMeetings(path string) ([]MeetingRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open meetings file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("meetings file has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read meetings sheet: %w", err)
	}
	if len(rows) <= 1 {
		return []MeetingRow{}, nil
	}

	header := rows[0]
	colFecha, err := requireCol(header, meetingsColFecha, "meetings")
	if err != nil {
		return nil, err
	}
	colActor, err := requireCol(header, meetingsColActor, "meetings")
	if err != nil {
		return nil, err
	}
	colCode, err := requireCol(header, meetingsColCode, "meetings")
	if err != nil {
		return nil, err
	}

	out := make([]MeetingRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		actor := getCell(row, colActor)
		if actor == "" {
			continue
		}
		out = append(out, MeetingRow{
			Day:   splitDay(getCell(row, colFecha)),
			Actor: actor,
			Code:  getCell(row, colCode),
		})
	}

	return out, nil
}
