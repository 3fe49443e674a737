package components

// PositionComponent 实体在世界坐标系中的位置
// X/Y 表示实体的中心点
type PositionComponent struct {
	X, Y float64
}
