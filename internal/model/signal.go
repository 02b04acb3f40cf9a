package model

import "sort"

// SignalTable 信号表：员工×日期的稀疏矩阵，列恰好为目标月的全部日期键。
// 值域由来源决定（出现次数、二值、MB 流量），缺失的员工/日期组合取 0。
type SignalTable struct {
	month  Month
	days   []string
	values map[string]map[string]float64 // email -> dayKey -> value
}

// NewSignalTable 创建空信号表，列固定为目标月的日期键
func NewSignalTable(month Month) *SignalTable {
	return &SignalTable{
		month:  month,
		days:   month.Days(),
		values: make(map[string]map[string]float64),
	}
}

// Month 信号表所属月份
func (t *SignalTable) Month() Month {
	return t.month
}

// Days 全部日期键，按日序
func (t *SignalTable) Days() []string {
	return t.days
}

// Add 累加一个值。目标月之外的日期直接丢弃（边界不变式）。
func (t *SignalTable) Add(email, dayKey string, value float64) {
	if !t.month.Contains(dayKey) {
		return
	}
	row, ok := t.values[email]
	if !ok {
		row = make(map[string]float64)
		t.values[email] = row
	}
	row[dayKey] += value
}

// Set 覆盖一个值。目标月之外的日期直接丢弃。
func (t *SignalTable) Set(email, dayKey string, value float64) {
	if !t.month.Contains(dayKey) {
		return
	}
	row, ok := t.values[email]
	if !ok {
		row = make(map[string]float64)
		t.values[email] = row
	}
	row[dayKey] = value
}

// Value 读取值，缺失组合返回 0
func (t *SignalTable) Value(email, dayKey string) float64 {
	row, ok := t.values[email]
	if !ok {
		return 0
	}
	return row[dayKey]
}

// Binary 读取二值信号：非零取 1
func (t *SignalTable) Binary(email, dayKey string) float64 {
	if t.Value(email, dayKey) > 0 {
		return 1
	}
	return 0
}

// Emails 全部员工邮箱，排序后返回（保证重复运行输出一致）
func (t *SignalTable) Emails() []string {
	emails := make([]string, 0, len(t.values))
	for email := range t.values {
		emails = append(emails, email)
	}
	sort.Strings(emails)
	return emails
}

// KnownDays 某员工有记录的日期键集合
func (t *SignalTable) KnownDays(email string) map[string]bool {
	known := make(map[string]bool)
	for day := range t.values[email] {
		known[day] = true
	}
	return known
}

// Clamp01 将所有非零值压成 1（聊天等来源的统一二值化规则）
func (t *SignalTable) Clamp01() {
	for _, row := range t.values {
		for day, v := range row {
			if v > 0 {
				row[day] = 1
			} else {
				row[day] = 0
			}
		}
	}
}
