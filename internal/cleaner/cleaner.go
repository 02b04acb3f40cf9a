// Package cleaner 把来源系统导出的原始活动工作簿清洗成打分引擎消费的标准工作簿。
package cleaner

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"workpulse/internal/model"
)

// 原始导出中各字段的列下标。来源系统的导出列固定，按位置取列比按表头更稳：
// 表头语言随导出账号的语言设置变化。
var rawColumnIndexes = []int{0, 12, 15, 19, 20, 21, 22, 23, 24}

// 清洗后工作簿的规范表头，顺序与 rawColumnIndexes 一一对应
var cleanedHeaders = []string{
	"Email",
	"Username",
	"Sent emails",
	"Email last use",
	"Edited files",
	"Viewed files",
	"Drive last use",
	"Added files",
	"Other added files",
}

// Cleaner 活动工作簿清洗器
type Cleaner struct {
	month         model.Month
	excludeEmails map[string]bool
}

// New 创建清洗器。excludeEmails 为上游配置的剔除名单（服务账号、测试账号等）。
func New(month model.Month, excludeEmails []string) *Cleaner {
	excluded := make(map[string]bool, len(excludeEmails))
	for _, email := range excludeEmails {
		excluded[email] = true
	}
	return &Cleaner{month: month, excludeEmails: excluded}
}

// Clean 读取原始工作簿并写出清洗后的工作簿。
//
// 每张表按位置选列、换成规范表头；以最后一张表的用户列为参照名单
// （名册月内会漂移，最后一天最新），剔除名单中的邮箱，
// 再把每天的数据左连接到参照名单上，丢掉没有用户名的行。
func (c *Cleaner) Clean(rawPath, cleanedPath string) error {
	raw, err := excelize.OpenFile(rawPath)
	if err != nil {
		return fmt.Errorf("打开原始活动工作簿失败: %w", err)
	}
	defer raw.Close()

	sheets := raw.GetSheetList()
	if len(sheets) == 0 {
		return fmt.Errorf("原始活动工作簿没有工作表")
	}

	reference, err := c.referenceEmails(raw, sheets[len(sheets)-1])
	if err != nil {
		return err
	}

	out := excelize.NewFile()
	defer out.Close()

	for _, sheet := range sheets {
		if err := c.cleanSheet(raw, out, sheet, reference); err != nil {
			return err
		}
	}

	// 去掉 excelize 的默认表
	if err := out.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("删除默认工作表失败: %w", err)
	}

	if err := out.SaveAs(cleanedPath); err != nil {
		return fmt.Errorf("写出清洗后工作簿失败: %w", err)
	}
	return nil
}

// referenceEmails 取最后一张表的用户列作为参照名单，剔除名单中的邮箱不进入任何一天
func (c *Cleaner) referenceEmails(raw *excelize.File, lastSheet string) ([]string, error) {
	rows, err := raw.GetRows(lastSheet)
	if err != nil {
		return nil, fmt.Errorf("读取参照表 %s 失败: %w", lastSheet, err)
	}
	if len(rows) <= 1 {
		return nil, fmt.Errorf("参照表 %s 为空", lastSheet)
	}

	emailIdx := rawColumnIndexes[0]
	var reference []string
	seen := make(map[string]bool)
	for _, row := range rows[1:] {
		if emailIdx >= len(row) {
			continue
		}
		email := row[emailIdx]
		if email == "" || seen[email] || c.excludeEmails[email] {
			continue
		}
		seen[email] = true
		reference = append(reference, email)
	}

	return reference, nil
}

func (c *Cleaner) cleanSheet(raw, out *excelize.File, sheet string, reference []string) error {
	rows, err := raw.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("读取工作表 %s 失败: %w", sheet, err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("工作表 %s 为空", sheet)
	}

	// 该表内 邮箱 -> 选列后的行
	byEmail := make(map[string][]string, len(rows)-1)
	for _, row := range rows[1:] {
		selected := make([]string, len(rawColumnIndexes))
		for i, idx := range rawColumnIndexes {
			if idx < len(row) {
				selected[i] = row[idx]
			}
		}
		if selected[0] == "" {
			continue
		}
		if _, ok := byEmail[selected[0]]; !ok {
			byEmail[selected[0]] = selected
		}
	}

	if _, err := out.NewSheet(sheet); err != nil {
		return fmt.Errorf("创建工作表 %s 失败: %w", sheet, err)
	}

	header := make([]interface{}, len(cleanedHeaders))
	for i, h := range cleanedHeaders {
		header[i] = h
	}
	if err := out.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("写表头失败: %w", err)
	}

	rowNo := 2
	for _, email := range reference {
		selected, ok := byEmail[email]
		if !ok || selected[1] == "" {
			continue // 左连接后用户名为空的行丢弃
		}
		cells := make([]interface{}, len(selected))
		for i, v := range selected {
			cells[i] = v
		}
		cell := fmt.Sprintf("A%d", rowNo)
		if err := out.SetSheetRow(sheet, cell, &cells); err != nil {
			return fmt.Errorf("写工作表 %s 第 %d 行失败: %w", sheet, rowNo, err)
		}
		rowNo++
	}

	return nil
}
