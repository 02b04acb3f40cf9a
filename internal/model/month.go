package model

import (
	"fmt"
	"time"
)

// Month 目标月份：一次运行只处理一个 (year, month) 周期
type Month struct {
	Year  int
	Month int
}

// NewMonth 创建目标月份
func NewMonth(year, month int) (Month, error) {
	if year < 2000 || year > 2100 {
		return Month{}, fmt.Errorf("invalid year: %d", year)
	}
	if month < 1 || month > 12 {
		return Month{}, fmt.Errorf("invalid month: %d", month)
	}
	return Month{Year: year, Month: month}, nil
}

// LastDay 当月最后一天（日数）
func (m Month) LastDay() int {
	// 下月第一天减一天
	first := time.Date(m.Year, time.Month(m.Month), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, 1, -1).Day()
}

// DayKey 第 day 天的日期键，格式 YYYY-MM-DD
func (m Month) DayKey(day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", m.Year, m.Month, day)
}

// Days 当月全部日期键，按日序
func (m Month) Days() []string {
	last := m.LastDay()
	days := make([]string, 0, last)
	for d := 1; d <= last; d++ {
		days = append(days, m.DayKey(d))
	}
	return days
}

// LastDayKey 当月最后一天的日期键
func (m Month) LastDayKey() string {
	return m.DayKey(m.LastDay())
}

// Contains 判断日期键是否落在当月
func (m Month) Contains(dayKey string) bool {
	t, err := time.Parse("2006-01-02", dayKey)
	if err != nil {
		return false
	}
	return t.Year() == m.Year && int(t.Month()) == m.Month
}

// String 周期标识，格式 YYYY-MM（用于目录名与运行日志）
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, m.Month)
}
