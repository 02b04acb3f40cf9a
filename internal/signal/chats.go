package signal

import (
	"workpulse/internal/model"
	"workpulse/internal/parser"
)

// NormalizeChats 聊天归一器。
// 按 (actor, 日期) 统计消息数后把非零计数统一压成 1：
// 来源系统只压 count>1，单条消息的日子会以原始值漏出去，这里按一致规则处理。
func NormalizeChats(rows []parser.ChatRow, month model.Month) *model.SignalTable {
	table := model.NewSignalTable(month)

	for _, row := range rows {
		table.Add(row.Actor, row.Day, 1)
	}
	table.Clamp01()

	return table
}
