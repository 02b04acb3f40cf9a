package exporter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"workpulse/internal/model"
)

const reportSheet = "Resultados"

// WriteFinalReport 写出最终月度报表：每名员工一行，当月每天一列（以日序数字命名）。
// 员工某天无数据时对应单元格留空，不写 0。
func WriteFinalReport(report *model.FinalReport, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(reportSheet); err != nil {
		return fmt.Errorf("创建工作表失败: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("删除默认工作表失败: %w", err)
	}

	lastDay := report.Month.LastDay()

	header := make([]interface{}, 0, 5+lastDay)
	header = append(header, "Email", "Username", "Cat", "División", "Departamento")
	for d := 1; d <= lastDay; d++ {
		header = append(header, fmt.Sprintf("%02d", d))
	}
	if err := f.SetSheetRow(reportSheet, "A1", &header); err != nil {
		return fmt.Errorf("写表头失败: %w", err)
	}

	for i, row := range report.Rows {
		cells := make([]interface{}, 0, len(header))
		cells = append(cells, row.Email, row.Username, row.Cat, row.Division, row.Departamento)
		for d := 1; d <= lastDay; d++ {
			col := fmt.Sprintf("%02d", d)
			if score, ok := row.Scores[col]; ok {
				cells = append(cells, score)
			} else {
				cells = append(cells, nil) // 无数据留空
			}
		}

		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(reportSheet, cell, &cells); err != nil {
			return fmt.Errorf("写第 %d 行失败: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("写出最终报表失败: %w", err)
	}
	return nil
}
