package calculator

import (
	"fmt"
	"strings"

	"workpulse/internal/model"
	"workpulse/internal/parser"
)

// SourceTables 四个可选来源的归一结果。某员工在某来源缺失不致命，按 0 信号处理。
type SourceTables struct {
	Chats    *model.SignalTable
	Meetings *model.SignalTable
	Autodesk *model.SignalTable
	VPN      *model.SignalTable
}

// Scorer 逐日打分器。系数矩阵与来源信号表构建后只读，按天独立对齐。
type Scorer struct {
	matrix  *model.CoefficientMatrix
	sources SourceTables
}

// NewScorer 创建打分器
func NewScorer(matrix *model.CoefficientMatrix, sources SourceTables) *Scorer {
	return &Scorer{matrix: matrix, sources: sources}
}

// ScoreMonth 对整月逐日打分。
// 月内任何一天缺表、或系数矩阵为空，都是整次运行的致命错误（不产出部分结果）。
func (s *Scorer) ScoreMonth(book *parser.ActivityBook) (*model.DailyScores, error) {
	if s.matrix.Len() == 0 {
		return nil, fmt.Errorf("coefficient matrix is empty")
	}

	scores := &model.DailyScores{Month: book.Month}
	for _, day := range book.Month.Days() {
		rows, ok := book.Sheets[day]
		if !ok {
			return nil, fmt.Errorf("activity workbook: missing sheet for %s", day)
		}
		records := s.scoreDay(day, rows)
		scores.Sheets = append(scores.Sheets, model.DailySheet{Day: day, Records: records})
	}

	return scores, nil
}

// scoreDay 单日打分：
//  1. 从活动行派生 6 个二值指标，叠加 4 个来源信号列
//  2. 活动表与系数矩阵取员工对称差并剔除，只给两边都有的员工打分
//  3. 信号向量与权重向量逐元素相乘后按列求和，超过 1 截到 1
func (s *Scorer) scoreDay(day string, rows []parser.ActivityRow) []model.DailyRecord {
	records := make([]model.DailyRecord, 0, len(rows))

	seen := make(map[string]bool, len(rows))
	for _, row := range rows {
		email := strings.ToLower(strings.TrimSpace(row.Email))
		if email == "" || seen[email] {
			continue
		}
		seen[email] = true

		coef, ok := s.matrix.Lookup(email)
		if !ok {
			continue // 对称差剔除：矩阵里没有权重行的员工当天不打分
		}

		signals := s.signalVector(email, day, row)
		weighted := signals.Mul(coef.Weights)

		productivity := weighted.Sum()
		if productivity > 1 {
			productivity = 1 // 得分封顶，不设下限
		}

		records = append(records, model.DailyRecord{
			Email:        email,
			Username:     row.Username,
			Cat:          coef.Cat,
			Weighted:     weighted,
			Productivity: productivity,
		})
	}

	return records
}

// signalVector 某员工某天的 10 维信号向量，顺序与 model.Dimensions 一致
func (s *Scorer) signalVector(email, day string, row parser.ActivityRow) model.Vector {
	var v model.Vector
	v[model.DimensionIndex(model.DimSentEmails)] = binarize(row.SentEmails)
	v[model.DimensionIndex(model.DimEmailLastUse)] = matchesDay(row.EmailLastUse, day)
	v[model.DimensionIndex(model.DimEditedFiles)] = binarize(row.EditedFiles)
	v[model.DimensionIndex(model.DimViewedFiles)] = binarize(row.ViewedFiles)
	v[model.DimensionIndex(model.DimDriveLastUse)] = matchesDay(row.DriveLastUse, day)
	v[model.DimensionIndex(model.DimAddFiles)] = binarize(row.AddedFiles + row.OtherAddedFiles)
	v[model.DimensionIndex(model.DimChat)] = s.sources.Chats.Binary(email, day)
	v[model.DimensionIndex(model.DimMeetings)] = s.sources.Meetings.Binary(email, day)
	v[model.DimensionIndex(model.DimAutodesk)] = s.sources.Autodesk.Binary(email, day)
	v[model.DimensionIndex(model.DimVPN)] = s.sources.VPN.Binary(email, day)
	return v
}

func binarize(x float64) float64 {
	if x > 0 {
		return 1
	}
	return 0
}

// matchesDay 最后使用时间戳落在当天则记 1
func matchesDay(timestamp, day string) float64 {
	if strings.SplitN(strings.TrimSpace(timestamp), "T", 2)[0] == day {
		return 1
	}
	return 0
}
