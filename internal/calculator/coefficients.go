// Package calculator 实现生产力计算核心：系数矩阵、逐日打分与月度汇总。
package calculator

import (
	"workpulse/internal/model"
)

// cat12345 档位覆盖的名册类别
var cat12345Categories = map[string]bool{
	"01": true,
	"02": true,
	"03": true,
	"04": true,
	"05": true,
}

// BuildCoefficientMatrix 构建系数矩阵：名册中每名员工一行。
//
// 档位判定按固定顺序，后面的规则覆盖前面的：
//  1. 默认 others
//  2. 邮箱出现在 CAD 工具用户清单（与名册取交集，名册外的用户忽略）则 modelers
//  3. 名册类别属于 01..05 则 cat12345（与规则 2 重叠时以本条为准）
func BuildCoefficientMatrix(roster *model.Roster, profiles model.ProfileSet, cadUsers []string) *model.CoefficientMatrix {
	cadSet := make(map[string]bool, len(cadUsers))
	for _, email := range cadUsers {
		if roster.Contains(email) {
			cadSet[email] = true
		}
	}

	rows := make([]model.CoefficientRow, 0, roster.Len())
	for _, entry := range roster.Entries() {
		weights := profiles.Others.Weights
		if cadSet[entry.Email] {
			weights = profiles.Modelers.Weights
		}
		if cat12345Categories[entry.Cat] {
			weights = profiles.Cat12345.Weights
		}
		rows = append(rows, model.CoefficientRow{
			Email:   entry.Email,
			Cat:     entry.Cat,
			Weights: weights,
		})
	}

	return model.NewCoefficientMatrix(rows)
}
