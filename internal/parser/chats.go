package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// 聊天日志（chats_source.csv），列：Actor, Fecha
const (
	chatsColActor = "Actor"
	chatsColFecha = "Fecha"
)

// ChatRow 聊天日志的一行，时间戳已拆成日期与小时
type ChatRow struct {
	Actor string
	Day   string // YYYY-MM-DD
	Hour  string // "00".."23"
}

// ParseChats 解析聊天日志 CSV
func ParseChats(path string) ([]ChatRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open chats file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // 行尾列数不齐时不致命，逐行校验

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read chats header: %w", err)
	}
	colActor, err := requireCol(header, chatsColActor, "chats")
	if err != nil {
		return nil, err
	}
	colFecha, err := requireCol(header, chatsColFecha, "chats")
	if err != nil {
		return nil, err
	}

	var out []ChatRow
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read chats row: %w", err)
		}
		actor := getCell(record, colActor)
		fecha := getCell(record, colFecha)
		if actor == "" || fecha == "" {
			continue
		}
		out = append(out, ChatRow{
			Actor: actor,
			Day:   splitDay(fecha),
			Hour:  splitHour(fecha),
		})
	}

	return out, nil
}
