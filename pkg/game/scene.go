package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene (e.g., a playable level).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Lifecycle 是一个可选接口，场景实现后由 SceneManager 在切换时调用
//
//   - OnEnter: 场景成为活动场景时调用（开始模拟）
//   - OnExit: 场景被替换或程序退出时调用（结束模拟）
type Lifecycle interface {
	OnEnter()
	OnExit()
}
