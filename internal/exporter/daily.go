// Package exporter 将打分结果写成工作簿：逐日得分簿与最终月度报表。
package exporter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"workpulse/internal/model"
)

// WriteDailyScores 写出逐日得分工作簿：当月每天一张表，
// 列为 Email, Username, Cat, 10 个加权维度, Productivity。
func WriteDailyScores(scores *model.DailyScores, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	header := make([]interface{}, 0, 3+model.DimensionCount+1)
	header = append(header, "Email", "Username", "Cat")
	for _, dim := range model.Dimensions {
		header = append(header, string(dim))
	}
	header = append(header, "Productivity")

	for _, sheet := range scores.Sheets {
		if _, err := f.NewSheet(sheet.Day); err != nil {
			return fmt.Errorf("创建工作表 %s 失败: %w", sheet.Day, err)
		}
		if err := f.SetSheetRow(sheet.Day, "A1", &header); err != nil {
			return fmt.Errorf("写表头失败: %w", err)
		}

		for i, rec := range sheet.Records {
			cells := make([]interface{}, 0, len(header))
			cells = append(cells, rec.Email, rec.Username, rec.Cat)
			for _, w := range rec.Weighted {
				cells = append(cells, w)
			}
			cells = append(cells, rec.Productivity)

			cell := fmt.Sprintf("A%d", i+2)
			if err := f.SetSheetRow(sheet.Day, cell, &cells); err != nil {
				return fmt.Errorf("写工作表 %s 第 %d 行失败: %w", sheet.Day, i+2, err)
			}
		}
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("删除默认工作表失败: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("写出逐日得分簿失败: %w", err)
	}
	return nil
}
