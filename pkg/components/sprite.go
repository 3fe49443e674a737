package components

import "image/color"

// SpriteComponent 简单的矩形精灵，由 RenderSystem 绘制
type SpriteComponent struct {
	Width, Height float64
	Color         color.RGBA
}
