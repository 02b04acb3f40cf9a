package model

// Dimension 活动维度：每日生产力得分由 10 个维度的加权和构成。
// 系数矩阵与每日活动表共用这份枚举，按固定顺序对齐，避免按列位置对齐的脆弱性。
type Dimension string

const (
	DimSentEmails   Dimension = "Sent emails"
	DimEmailLastUse Dimension = "Email last use"
	DimEditedFiles  Dimension = "Edited files"
	DimViewedFiles  Dimension = "Viewed files"
	DimDriveLastUse Dimension = "Drive last use"
	DimAddFiles     Dimension = "Add files"
	DimChat         Dimension = "Chat"
	DimMeetings     Dimension = "Meetings"
	DimAutodesk     Dimension = "Autodesk"
	DimVPN          Dimension = "VPN"
)

// Dimensions 全部维度，顺序固定
var Dimensions = []Dimension{
	DimSentEmails,
	DimEmailLastUse,
	DimEditedFiles,
	DimViewedFiles,
	DimDriveLastUse,
	DimAddFiles,
	DimChat,
	DimMeetings,
	DimAutodesk,
	DimVPN,
}

// DimensionCount 维度数量
const DimensionCount = 10

// DimensionIndex 维度在固定顺序中的下标，未知维度返回 -1
func DimensionIndex(d Dimension) int {
	for i, dim := range Dimensions {
		if dim == d {
			return i
		}
	}
	return -1
}

// Vector 按维度顺序对齐的数值向量
type Vector [DimensionCount]float64

// Sum 向量各分量之和
func (v Vector) Sum() float64 {
	total := 0.0
	for _, x := range v {
		total += x
	}
	return total
}

// Mul 逐元素相乘
func (v Vector) Mul(o Vector) Vector {
	var out Vector
	for i := range v {
		out[i] = v[i] * o[i]
	}
	return out
}
