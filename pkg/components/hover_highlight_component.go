package components

// HoverHighlightComponent 悬停高亮组件
// 用于实体被鼠标悬停时的持续高亮效果（不闪烁）
//
// 挂载此组件的实体即具备 Highlightable 能力；
// RenderSystem 在 IsActive 时为实体绘制描边。
type HoverHighlightComponent struct {
	// Intensity 高亮强度（0.0 - 1.0）
	// 1.0 = 最亮，0.0 = 无效果
	Intensity float64

	// IsActive 是否激活
	IsActive bool
}

var _ Highlightable = (*HoverHighlightComponent)(nil)

// Highlight 激活高亮
func (c *HoverHighlightComponent) Highlight() {
	c.IsActive = true
}

// Unhighlight 关闭高亮
func (c *HoverHighlightComponent) Unhighlight() {
	c.IsActive = false
}
