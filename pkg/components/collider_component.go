package components

import "github.com/gonewx/aura/pkg/types"

// ColliderComponent 碰撞盒组件
// 以 PositionComponent 为中心的轴对齐矩形，供 VisibilityTraceSystem 做射线检测
type ColliderComponent struct {
	// Width, Height 碰撞盒尺寸（世界坐标）
	Width, Height float64

	// Layer 叠放层级，数值越大越靠前，光标下有多个实体时取最高层
	Layer int

	// Responses 阻挡的碰撞通道
	Responses types.ChannelMask
}

// Contains 检查点 (px, py) 是否落在以 (cx, cy) 为中心的碰撞盒内（含边界）
func (c *ColliderComponent) Contains(cx, cy, px, py float64) bool {
	halfW := c.Width / 2
	halfH := c.Height / 2
	return px >= cx-halfW && px <= cx+halfW &&
		py >= cy-halfH && py <= cy+halfH
}
