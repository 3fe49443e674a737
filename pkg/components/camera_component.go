package components

import "github.com/gonewx/aura/pkg/ecs"

// CameraComponent 摄像机状态
// X/Y 为视口左上角的世界坐标，用于屏幕坐标与世界坐标之间的转换
type CameraComponent struct {
	X, Y float64

	// ViewWidth, ViewHeight 视口尺寸（逻辑像素）
	ViewWidth, ViewHeight float64

	// Target 跟随的实体，0 表示不跟随
	Target ecs.EntityID
}
