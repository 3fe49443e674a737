package scenes

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/gonewx/aura/pkg/config"
	"github.com/gonewx/aura/pkg/ecs"
	"github.com/gonewx/aura/pkg/entities"
	"github.com/gonewx/aura/pkg/game"
	"github.com/gonewx/aura/pkg/systems"
	"github.com/gonewx/aura/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.opentelemetry.io/otel/trace"
)

const (
	// debugToggleKey 切换调试面板
	debugToggleKey = ebiten.KeyF3
	// debugDespawnKey 调试模式下销毁当前悬停目标
	debugDespawnKey = ebiten.KeyDelete
)

// LevelSceneDeps 场景的外部输入来源，零值使用 ebiten 的键盘和鼠标
type LevelSceneDeps struct {
	Keys   systems.KeyReader
	Cursor utils.CursorSource
	Tracer trace.Tracer
}

// LevelScene 可游玩的关卡场景
//
// 每帧的系统顺序：输入 → 移动 → 摄像机 → 悬停目标 → 清理销毁的实体。
// 悬停目标在摄像机之后更新，保证射线使用本帧的视口。
type LevelScene struct {
	entityManager *ecs.EntityManager
	level         *config.LevelConfig
	settings      *game.ControllerSettings

	inputSystem    *systems.InputSystem
	movementSystem *systems.MovementSystem
	cameraSystem   *systems.CameraSystem
	traceSystem    *systems.VisibilityTraceSystem
	hoverSystem    *systems.HoverTargetSystem
	renderSystem   *systems.RenderSystem

	keys     systems.KeyReader
	keysDown map[ebiten.Key]bool // 上一帧的按键状态，用于边沿检测

	player    ecs.EntityID
	showDebug bool

	applyInputMode func(*game.ControllerSettings)
}

// NewLevelScene 创建关卡场景并生成玩家和关卡角色
func NewLevelScene(
	level *config.LevelConfig,
	mapping *config.InputMappingContext,
	settings *game.ControllerSettings,
	deps LevelSceneDeps,
) (*LevelScene, error) {
	if level == nil {
		return nil, fmt.Errorf("level config cannot be nil")
	}
	if mapping == nil {
		return nil, fmt.Errorf("input mapping context cannot be nil")
	}
	if settings == nil {
		settings = game.DefaultControllerSettings()
	}
	if deps.Keys == nil {
		deps.Keys = systems.EbitenKeys{}
	}
	if deps.Cursor == nil {
		deps.Cursor = utils.PointerCursor{}
	}

	em := ecs.NewEntityManager()
	s := &LevelScene{
		entityManager:  em,
		level:          level,
		settings:       settings,
		keys:           deps.Keys,
		keysDown:       make(map[ebiten.Key]bool),
		applyInputMode: systems.ApplyInputMode,
	}

	player, err := entities.NewPlayerEntity(em, level)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	s.player = player

	if _, err := entities.SpawnLevelActors(em, level, settings.HighlightIntensity); err != nil {
		return nil, fmt.Errorf("failed to spawn actors: %w", err)
	}

	s.inputSystem = systems.NewInputSystem(em, deps.Keys)
	s.inputSystem.AddMappingContext(mapping)
	s.movementSystem = systems.NewMovementSystem(em, level.Width, level.Height)
	s.cameraSystem = systems.NewCameraSystem(em,
		float64(config.GameWindowWidth), float64(config.GameWindowHeight),
		level.Width, level.Height, player)
	s.traceSystem = systems.NewVisibilityTraceSystem(em, level.Surfaces)
	s.hoverSystem = systems.NewHoverTargetSystem(em, s.traceSystem, deps.Cursor)
	s.hoverSystem.SetTracer(deps.Tracer)
	s.renderSystem = systems.NewRenderSystem(em, level.Surfaces)

	log.Infof("[LevelScene] 关卡 %s 已创建: %d 个实体", level.ID, em.EntityCount())
	return s, nil
}

// OnEnter 应用光标显示和输入模式
func (s *LevelScene) OnEnter() {
	log.Debugf("[LevelScene] 进入关卡 %s", s.level.ID)
	s.applyInputMode(s.settings)
}

// OnExit 结束模拟，丢弃悬停状态
func (s *LevelScene) OnExit() {
	log.Debugf("[LevelScene] 退出关卡 %s", s.level.ID)
	s.hoverSystem.Cleanup()
}

// Update 推进一帧
func (s *LevelScene) Update(deltaTime float64) {
	if s.justPressed(debugToggleKey) {
		s.showDebug = !s.showDebug
		log.Debugf("[LevelScene] 调试面板: %v", s.showDebug)
	}
	if s.showDebug && s.justPressed(debugDespawnKey) {
		s.despawnHovered()
	}

	s.inputSystem.Update()
	s.movementSystem.Update(deltaTime)
	s.cameraSystem.Update(deltaTime)
	s.hoverSystem.Update()

	if n := s.entityManager.RemoveMarkedEntities(); n > 0 {
		log.Debugf("[LevelScene] 清理了 %d 个实体", n)
	}
}

// despawnHovered 销毁当前悬停目标（帧末清理）
func (s *LevelScene) despawnHovered() {
	target := s.hoverSystem.CurrentTarget()
	if target == 0 {
		return
	}
	log.Infof("[LevelScene] 销毁悬停目标 %d", target)
	s.entityManager.DestroyEntity(target)
}

// justPressed 按键边沿检测：本帧按下且上一帧未按下
func (s *LevelScene) justPressed(key ebiten.Key) bool {
	down := s.keys.IsKeyPressed(key)
	was := s.keysDown[key]
	s.keysDown[key] = down
	return down && !was
}

// Draw 绘制关卡和调试面板
func (s *LevelScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)
	if s.showDebug {
		ebitenutil.DebugPrint(screen, s.debugText())
	}
}

func (s *LevelScene) debugText() string {
	prev, cur := s.hoverSystem.Targets()
	return fmt.Sprintf("level: %s\nhover: previous=%d current=%d\nentities: %d\nTPS: %.0f",
		s.level.ID, prev, cur, s.entityManager.EntityCount(), ebiten.ActualTPS())
}

// EntityManager 返回场景的实体管理器
func (s *LevelScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// Player 返回玩家实体ID
func (s *LevelScene) Player() ecs.EntityID {
	return s.player
}

// HoverTargets 返回悬停系统的 (previous, current)
func (s *LevelScene) HoverTargets() (ecs.EntityID, ecs.EntityID) {
	return s.hoverSystem.Targets()
}

// DebugVisible 调试面板是否可见
func (s *LevelScene) DebugVisible() bool {
	return s.showDebug
}
