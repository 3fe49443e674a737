package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// CursorSource 提供当前帧的光标屏幕坐标
// 测试中可替换为固定坐标
type CursorSource interface {
	CursorPosition() (int, int)
}

// PointerCursor 基于 ebiten 的光标来源
// 有活动触摸时取第一个触摸点（移动端"悬停"即按住），否则取鼠标位置
type PointerCursor struct{}

// CursorPosition 实现 CursorSource
func (PointerCursor) CursorPosition() (int, int) {
	return GetPointerPosition()
}

// GetPointerPosition 获取当前指针位置（触摸或鼠标）
// 优先返回触摸位置，如果没有触摸则返回鼠标位置
func GetPointerPosition() (int, int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}
	return ebiten.CursorPosition()
}

// FixedCursor 固定坐标的光标来源
type FixedCursor struct {
	X, Y int
}

// CursorPosition 实现 CursorSource
func (c *FixedCursor) CursorPosition() (int, int) {
	return c.X, c.Y
}
