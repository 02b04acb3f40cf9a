package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// VPNRow VPN 日志的一行，流量已折算成 MB
type VPNRow struct {
	User      string // 原始用户名（不含邮箱域）
	IP        string
	TrafficMB float64
	Day       string // YYYY-MM-DD
}

// ParseVPN 解析 VPN 日志 CSV。
// 列按位置取（用户、IP、出站流量、日期 dd/mm/yyyy），与来源系统的导出格式一致。
func ParseVPN(path string) ([]VPNRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vpn file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	// 首行是表头，列名随导出语言变化，不做匹配只跳过
	if _, err := r.Read(); err != nil {
		return nil, fmt.Errorf("read vpn header: %w", err)
	}

	var out []VPNRow
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read vpn row: %w", err)
		}
		if len(record) < 4 {
			continue
		}

		user := getCell(record, 0)
		if user == "" {
			continue
		}

		out = append(out, VPNRow{
			User:      user,
			IP:        getCell(record, 1),
			TrafficMB: ParseTrafficMB(getCell(record, 2)),
			Day:       parseVPNDay(getCell(record, 3)),
		})
	}

	return out, nil
}

// ParseTrafficMB 将带单位后缀的流量字符串折算成 MB。
// "3 GB" -> 3072；"512 KB" -> 0.5；单位识别不了按 0 流量处理（本地恢复，不中断运行）。
func ParseTrafficMB(s string) float64 {
	parts := strings.Fields(strings.TrimSpace(s))
	if len(parts) != 2 {
		return 0
	}
	value, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0
	}
	switch parts[1] {
	case "GB":
		return value * 1024
	case "MB":
		return value
	case "KB":
		return value / 1024
	default:
		return 0
	}
}

func parseVPNDay(s string) string {
	t, err := time.Parse("02/01/2006", strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return t.Format("2006-01-02")
}
