package signal

import (
	"workpulse/internal/model"
	"workpulse/internal/parser"
)

// 回填启发式：原始日志只覆盖部分活跃日时，均值达到该阈值的员工视为整月活跃
const autodeskBackfillMean = 0.3

// 月均模式阈值：月均使用量超过该值的员工整月记 1
const autodeskAverageThreshold = 10

// NormalizeAutodeskDaily CAD 使用归一器（逐日模式）。
// 按 (email, 使用日) 二值化；对既不在透视结果也不在观测日集合里的日历日做回填：
// 员工在已观测日上的均值 ≥ 0.3 则缺失日全部记 1，否则记 0。
// 均值的分母是全体员工的观测日并集，不是该员工自己的使用日数。
func NormalizeAutodeskDaily(rows []parser.UsageRow, month model.Month) *model.SignalTable {
	table := model.NewSignalTable(month)

	// 观测日并集（仅目标月内）
	observed := make(map[string]bool)
	for _, row := range rows {
		if row.Day == "" || !month.Contains(row.Day) {
			continue
		}
		observed[row.Day] = true
		table.Set(row.Email, row.Day, 1)
	}

	if len(observed) == 0 {
		return table
	}

	var missing []string
	for _, day := range month.Days() {
		if !observed[day] {
			missing = append(missing, day)
		}
	}
	if len(missing) == 0 {
		return table
	}

	for _, email := range table.Emails() {
		sum := 0.0
		for day := range observed {
			sum += table.Value(email, day)
		}
		mean := sum / float64(len(observed))

		fill := 0.0
		if mean >= autodeskBackfillMean {
			fill = 1
		}
		for _, day := range missing {
			table.Set(email, day, fill)
		}
	}

	return table
}

// NormalizeAutodeskAverage CAD 使用归一器（月均模式）。
// 只有月均使用量可用时的备用方案：按 email 汇总 monthly_average，
// 超过阈值的员工当月每天记 1，否则每天记 0。
func NormalizeAutodeskAverage(rows []parser.AverageRow, month model.Month) *model.SignalTable {
	table := model.NewSignalTable(month)

	totals := make(map[string]float64)
	for _, row := range rows {
		totals[row.Email] += row.MonthlyAverage
	}

	for email, total := range totals {
		value := 0.0
		if total > autodeskAverageThreshold {
			value = 1
		}
		for _, day := range month.Days() {
			table.Set(email, day, value)
		}
	}

	return table
}
