package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// findExactCol 在表头中查找完全匹配的列，找不到返回 -1
func findExactCol(headers []string, want string) int {
	for i, h := range headers {
		if strings.TrimSpace(h) == want {
			return i
		}
	}
	return -1
}

// requireCol 查找必需列，缺失即为来源结构错误（整次运行致命）
func requireCol(headers []string, want, source string) (int, error) {
	idx := findExactCol(headers, want)
	if idx < 0 {
		return -1, fmt.Errorf("%s: missing column %q", source, want)
	}
	return idx, nil
}

func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func parseFloat(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, ",", "")
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

// splitDay 取时间戳的日期部分："2024-03-05T09:12:00" -> "2024-03-05"
func splitDay(timestamp string) string {
	return strings.SplitN(strings.TrimSpace(timestamp), "T", 2)[0]
}

// splitHour 取时间戳的小时部分："2024-03-05T09:12:00" -> "09"
func splitHour(timestamp string) string {
	parts := strings.SplitN(strings.TrimSpace(timestamp), "T", 2)
	if len(parts) < 2 || len(parts[1]) < 2 {
		return ""
	}
	return parts[1][:2]
}

// 日期单元格在不同导出里格式不统一，按常见格式依次尝试
var dayLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"01-02-06",
	"1/2/06 15:04",
	"2006/01/02",
}

// normalizeDay 将日期单元格规范成 YYYY-MM-DD，识别不了返回空串
func normalizeDay(cell string) string {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return ""
	}
	cell = splitDay(cell)
	for _, layout := range dayLayouts {
		if t, err := time.Parse(layout, cell); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}
