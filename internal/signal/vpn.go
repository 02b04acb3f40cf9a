package signal

import (
	"strings"

	"workpulse/internal/model"
	"workpulse/internal/parser"
)

// VPN 二值化阈值：单日出站流量超过 5MB 视为使用
const vpnTrafficThresholdMB = 5

// NormalizeVPN VPN 归一器。
// 用户名补上组织邮箱域得到 email，按 (email, 日期) 汇总 MB 流量，
// 再按固定阈值二值化；缺失日按 0 流量处理。
func NormalizeVPN(rows []parser.VPNRow, month model.Month, mailDomain string) *model.SignalTable {
	traffic := model.NewSignalTable(month)

	for _, row := range rows {
		if row.Day == "" {
			continue
		}
		email := strings.ToLower(row.User) + "@" + mailDomain
		traffic.Add(email, row.Day, row.TrafficMB)
	}

	table := model.NewSignalTable(month)
	for _, email := range traffic.Emails() {
		for _, day := range month.Days() {
			if traffic.Value(email, day) > vpnTrafficThresholdMB {
				table.Set(email, day, 1)
			}
		}
	}

	return table
}
