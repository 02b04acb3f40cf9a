package model

// DailyRecord 每日生产力记录：打分器每天为每名员工产出一行。
// Weighted 为 10 个维度的加权分量（信号×系数），Productivity 为截断后的总分，值域 [0,1]。
type DailyRecord struct {
	Email        string
	Username     string
	Cat          string
	Weighted     Vector
	Productivity float64
}

// DailySheet 某一天的全部记录
type DailySheet struct {
	Day     string // 日期键 YYYY-MM-DD
	Records []DailyRecord
}

// DailyScores 整月的打分结果，按日序排列
type DailyScores struct {
	Month  Month
	Sheets []DailySheet
}

// Sheet 按日期键取当天的记录表
func (s *DailyScores) Sheet(day string) (DailySheet, bool) {
	for _, sheet := range s.Sheets {
		if sheet.Day == day {
			return sheet, true
		}
	}
	return DailySheet{}, false
}

// ReportRow 最终报表的一行：一名员工加上每天一列的得分。
// 某天无数据时 Scores 中不含该日，导出时对应单元格留空。
type ReportRow struct {
	Email        string
	Username     string
	Cat          string
	Division     string
	Departamento string
	Scores       map[string]float64 // 日序数字列("01".."31") -> 得分
}

// FinalReport 最终月度报表：每行对应月末名册中的一名员工
type FinalReport struct {
	Month Month
	Rows  []ReportRow
}
