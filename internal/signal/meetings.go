// Package signal 将各来源的原始日志归一成 员工×日期 的信号表。
// 所有归一器满足同一契约：列恰好为目标月的日期键，目标月之外的记录丢弃，
// 同一输入重复运行产出同一张表。
package signal

import (
	"strings"

	"workpulse/internal/model"
	"workpulse/internal/parser"
)

// NormalizeMeetings 会议归一器。
// 仅保留 actor 含组织域名标记的行；按 (actor, 会议码, 日期) 去重，
// 同一会议当天的重复心跳只计一次；产出出现次数（打分时按非零压成 1）。
func NormalizeMeetings(rows []parser.MeetingRow, month model.Month, domainMarker string) *model.SignalTable {
	table := model.NewSignalTable(month)

	seen := make(map[string]bool)
	for _, row := range rows {
		if !strings.Contains(row.Actor, domainMarker) {
			continue
		}
		key := row.Actor + "\x00" + row.Code + "\x00" + row.Day
		if seen[key] {
			continue
		}
		seen[key] = true
		table.Add(row.Actor, row.Day, 1)
	}

	return table
}
