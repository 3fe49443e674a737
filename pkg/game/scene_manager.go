package game

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 用于创建指定ID的关卡场景，避免循环依赖
type SceneFactory func(levelID string) (Scene, error)

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory // 场景工厂函数，用于创建新场景
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
// The previous scene receives OnExit and the new one OnEnter if they implement Lifecycle.
func (sm *SceneManager) SwitchTo(scene Scene) {
	if lc, ok := sm.currentScene.(Lifecycle); ok {
		lc.OnExit()
	}
	sm.currentScene = scene
	if lc, ok := scene.(Lifecycle); ok {
		lc.OnEnter()
	}
}

// GetCurrentScene 返回当前活动的场景
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// LoadLevel 加载指定ID的关卡场景
// 创建失败时保留当前场景并返回错误
func (sm *SceneManager) LoadLevel(levelID string) error {
	log.Infof("[SceneManager] 加载关卡: %s", levelID)

	if sm.sceneFactory == nil {
		return errNoSceneFactory
	}

	newScene, err := sm.sceneFactory(levelID)
	if err != nil {
		return err
	}
	sm.SwitchTo(newScene)
	log.Debugf("[SceneManager] 成功切换到关卡: %s", levelID)
	return nil
}

// Shutdown 结束当前场景
func (sm *SceneManager) Shutdown() {
	sm.SwitchTo(nil)
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
