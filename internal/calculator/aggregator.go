package calculator

import (
	"fmt"

	"workpulse/internal/model"
)

// BuildFinalReport 月度汇总。
//
// 以当月最后一天的打分表作为最终报表的员工清单：名册构成允许月内漂移，
// 最后一天视为最新口径。事业部/部门从名册左连接补齐；
// 每一天按邮箱分配得分到以日序数字命名的列，只出现在当天表里、
// 不在最终清单中的员工静默剔除。
func BuildFinalReport(scores *model.DailyScores, roster *model.Roster) (*model.FinalReport, error) {
	lastDay := scores.Month.LastDayKey()
	lastSheet, ok := scores.Sheet(lastDay)
	if !ok {
		return nil, fmt.Errorf("daily scores: missing sheet for last day %s", lastDay)
	}

	report := &model.FinalReport{Month: scores.Month}
	rowIndex := make(map[string]int, len(lastSheet.Records))
	for _, rec := range lastSheet.Records {
		row := model.ReportRow{
			Email:    rec.Email,
			Username: rec.Username,
			Cat:      rec.Cat,
			Scores:   make(map[string]float64),
		}
		if entry, ok := roster.Lookup(rec.Email); ok {
			row.Division = entry.Division
			row.Departamento = entry.Departamento
		}
		rowIndex[rec.Email] = len(report.Rows)
		report.Rows = append(report.Rows, row)
	}

	for _, sheet := range scores.Sheets {
		col := dayColumn(sheet.Day)
		for _, rec := range sheet.Records {
			idx, ok := rowIndex[rec.Email]
			if !ok {
				continue // 不在月末清单中的员工剔除，不报错
			}
			report.Rows[idx].Scores[col] = rec.Productivity
		}
	}

	return report, nil
}

// dayColumn 日期键的日序数字列名："2024-03-05" -> "05"
func dayColumn(dayKey string) string {
	if len(dayKey) >= 10 {
		return dayKey[8:10]
	}
	return dayKey
}
