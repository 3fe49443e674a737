// Package app 提供游戏应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来：加载设置和输入映射、创建场景管理器、
// 实现 ebiten.Game 接口。调用前必须先调用 embedded.Init() 初始化嵌入资源。
package app

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/gonewx/aura/pkg/config"
	"github.com/gonewx/aura/pkg/game"
	"github.com/gonewx/aura/pkg/scenes"
	"github.com/gonewx/aura/pkg/telemetry"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
	"go.opentelemetry.io/otel/trace"
)

// AppName 用于 gdata 存储目录
const AppName = "aura"

// Config 定义应用启动配置
type Config struct {
	// Level 要加载的关卡ID，为空时使用 config.DefaultLevelID
	Level string
	// Trace 启用 OpenTelemetry 追踪（需要先调用 telemetry.Setup）
	Trace bool

	// 命令行覆盖的控制器设置，nil 表示沿用已保存的值
	HighlightIntensity *float64
	ShowCursor         *bool
	LockCursor         *bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
func NewApp(cfg Config) (*App, error) {
	// gdata 不可用时进入降级模式：设置只保存在内存中
	gdataManager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Warnf("[App] gdata 不可用，设置不会持久化: %v", err)
		gdataManager = nil
	}
	settingsManager := game.NewSettingsManager(gdataManager)
	if applySettingOverrides(settingsManager, cfg) {
		if err := settingsManager.Save(); err != nil {
			log.Warnf("[App] 保存设置失败: %v", err)
		}
	}

	mapping, err := config.LoadInputMapping(config.InputMappingPath)
	if err != nil {
		return nil, fmt.Errorf("输入映射加载失败: %w", err)
	}
	log.Debugf("[App] 输入映射 %s 已加载", mapping.Name)

	tracer := telemetry.NoopTracer()
	if cfg.Trace {
		tracer = telemetry.Tracer("hover")
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(newLevelSceneFactory(mapping, settingsManager.GetSettings(), tracer))

	levelID := cfg.Level
	if levelID == "" {
		levelID = config.DefaultLevelID
	}
	if err := sceneManager.LoadLevel(levelID); err != nil {
		return nil, fmt.Errorf("关卡 %s 加载失败: %w", levelID, err)
	}

	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
	}, nil
}

// applySettingOverrides 应用命令行覆盖的设置，返回是否有修改
func applySettingOverrides(sm *game.SettingsManager, cfg Config) bool {
	changed := false
	if cfg.HighlightIntensity != nil {
		sm.SetHighlightIntensity(*cfg.HighlightIntensity)
		changed = true
	}
	if cfg.ShowCursor != nil {
		sm.SetShowMouseCursor(*cfg.ShowCursor)
		changed = true
	}
	if cfg.LockCursor != nil {
		sm.SetLockCursorToWindow(*cfg.LockCursor)
		// 锁定时隐藏光标，否则 ebiten 无法捕获
		sm.GetSettings().HideCursorOnCapture = *cfg.LockCursor
		changed = true
	}
	return changed
}

// newLevelSceneFactory 按关卡ID加载配置并创建关卡场景
func newLevelSceneFactory(
	mapping *config.InputMappingContext,
	settings *game.ControllerSettings,
	tracer trace.Tracer,
) game.SceneFactory {
	return func(levelID string) (game.Scene, error) {
		level, err := config.LoadLevelConfig(config.LevelPath(levelID))
		if err != nil {
			return nil, err
		}
		scene, err := scenes.NewLevelScene(level, mapping, settings, scenes.LevelSceneDeps{Tracer: tracer})
		if err != nil {
			return nil, err
		}
		return scene, nil
	}
}

// Update 更新游戏逻辑
// 每个 tick 调用一次
func (a *App) Update() error {
	// 退出全屏后需要等待几帧才能正确设置窗口大小
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	a.sceneManager.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

// toggleFullscreen 切换全屏并保存设置
func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)
	if !fullscreen {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
	}

	a.settingsManager.SetFullscreen(fullscreen)
	if err := a.settingsManager.Save(); err != nil {
		log.Warnf("[App] 保存设置失败: %v", err)
	}
	log.Debugf("[App] 全屏: %v", fullscreen)
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时两侧填充黑色，使用线性滤波缩放
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Close 结束当前场景并保存设置
func (a *App) Close() error {
	a.sceneManager.Shutdown()
	return a.settingsManager.Save()
}
