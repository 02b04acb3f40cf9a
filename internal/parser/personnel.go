package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"workpulse/internal/model"
)

// 人事导出表（INFORME_PERSONAL.xlsx）
const (
	personnelColEmail        = "Email"
	personnelColCat          = "Cat"
	personnelColDivision     = "División"
	personnelColDepartamento = "Departamento"
)

// ParsePersonnel 解析人事导出表，产出名册原始行。
// 行级清洗（小写、去重、域名过滤、类别截断）由 model.BuildRoster 负责。
func ParsePersonnel(path string) ([]model.PersonnelRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open personnel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("personnel file has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read personnel sheet: %w", err)
	}
	if len(rows) <= 1 {
		return []model.PersonnelRow{}, nil
	}

	header := rows[0]
	colEmail, err := requireCol(header, personnelColEmail, "personnel")
	if err != nil {
		return nil, err
	}
	colCat, err := requireCol(header, personnelColCat, "personnel")
	if err != nil {
		return nil, err
	}
	// 部门与事业部列允许缺失：名册仍可用于打分，仅最终报表缺这两列信息
	colDivision := findExactCol(header, personnelColDivision)
	colDepartamento := findExactCol(header, personnelColDepartamento)

	out := make([]model.PersonnelRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		out = append(out, model.PersonnelRow{
			Email:        getCell(row, colEmail),
			Cat:          getCell(row, colCat),
			Division:     getCell(row, colDivision),
			Departamento: getCell(row, colDepartamento),
		})
	}

	return out, nil
}
