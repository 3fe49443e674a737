package systems

import (
	"github.com/charmbracelet/log"
	"github.com/gonewx/aura/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// CursorModeFor 根据控制器设置计算光标模式
//
// ebiten 的 Captured 模式总会隐藏光标，因此只有在"锁定 + 锁定时隐藏"
// 同时开启时才使用 Captured；锁定但要求显示光标时退化为 Visible。
func CursorModeFor(settings *game.ControllerSettings) ebiten.CursorModeType {
	if !settings.ShowMouseCursor {
		return ebiten.CursorModeHidden
	}
	if settings.LockCursorToWindow && settings.HideCursorOnCapture {
		return ebiten.CursorModeCaptured
	}
	return ebiten.CursorModeVisible
}

// ApplyInputMode 应用光标显示和输入模式（场景开始时调用一次）
func ApplyInputMode(settings *game.ControllerSettings) {
	mode := CursorModeFor(settings)
	ebiten.SetCursorMode(mode)
	ebiten.SetCursorShape(ebiten.CursorShapeDefault)

	if settings.LockCursorToWindow && mode == ebiten.CursorModeVisible {
		log.Warnf("[InputMode] 锁定光标需要同时隐藏光标，已保持可见且不锁定")
	}
	log.Debugf("[InputMode] 光标模式: %v", mode)
}
