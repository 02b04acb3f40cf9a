package model

import "fmt"

// 系数档位名称
const (
	ProfileModelers = "modelers"
	ProfileCat12345 = "cat12345"
	ProfileOthers   = "others"
)

// Profile 系数档位：10 个活动维度上的固定权重向量，属于不可变输入配置
type Profile struct {
	Name    string
	Weights Vector
}

// ProfileFromMap 将配置中的 按维度名 权重表转成按固定顺序对齐的档位。
// 要求恰好覆盖全部 10 个维度，多余或缺失都视为配置错误。
func ProfileFromMap(name string, weights map[string]float64) (Profile, error) {
	p := Profile{Name: name}
	if len(weights) != DimensionCount {
		return p, fmt.Errorf("profile %s: expected %d dimensions, got %d", name, DimensionCount, len(weights))
	}
	for dim, w := range weights {
		idx := DimensionIndex(Dimension(dim))
		if idx < 0 {
			return p, fmt.Errorf("profile %s: unknown dimension %q", name, dim)
		}
		if w < 0 {
			return p, fmt.Errorf("profile %s: negative weight for %q", name, dim)
		}
		p.Weights[idx] = w
	}
	return p, nil
}

// ProfileSet 三个档位的完整集合
type ProfileSet struct {
	Modelers Profile
	Cat12345 Profile
	Others   Profile
}

// CoefficientRow 系数矩阵的一行：一名员工的类别与权重向量
type CoefficientRow struct {
	Email   string
	Cat     string
	Weights Vector
}

// CoefficientMatrix 系数矩阵：名册中每名员工一行，按邮箱键控。
// 构建完成后不再修改；打分阶段按天做只读对齐。
type CoefficientMatrix struct {
	rows    []CoefficientRow
	byEmail map[string]int
}

// NewCoefficientMatrix 由已排序的行构建矩阵
func NewCoefficientMatrix(rows []CoefficientRow) *CoefficientMatrix {
	m := &CoefficientMatrix{
		rows:    rows,
		byEmail: make(map[string]int, len(rows)),
	}
	for i, r := range rows {
		m.byEmail[r.Email] = i
	}
	return m
}

// Len 行数
func (m *CoefficientMatrix) Len() int {
	return len(m.rows)
}

// Rows 全部行（只读使用）
func (m *CoefficientMatrix) Rows() []CoefficientRow {
	return m.rows
}

// Lookup 按邮箱取行
func (m *CoefficientMatrix) Lookup(email string) (CoefficientRow, bool) {
	idx, ok := m.byEmail[email]
	if !ok {
		return CoefficientRow{}, false
	}
	return m.rows[idx], true
}
