package game

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// ControllerSettings 玩家控制器设置
// 光标显示、输入模式和高亮表现，跨会话持久化
type ControllerSettings struct {
	// 光标设置
	ShowMouseCursor     bool `yaml:"showMouseCursor"`     // 是否显示系统光标
	LockCursorToWindow  bool `yaml:"lockCursorToWindow"`  // 是否将光标锁定在窗口内
	HideCursorOnCapture bool `yaml:"hideCursorOnCapture"` // 锁定光标时是否隐藏

	// 悬停高亮强度 0.0 ~ 1.0
	HighlightIntensity float64 `yaml:"highlightIntensity"`

	// 显示设置
	Fullscreen bool `yaml:"fullscreen"` // 启动时是否全屏
}

// DefaultControllerSettings 返回默认设置
// 光标可见、不锁定、锁定时不隐藏
func DefaultControllerSettings() *ControllerSettings {
	return &ControllerSettings{
		ShowMouseCursor:     true,
		LockCursorToWindow:  false,
		HideCursorOnCapture: false,
		HighlightIntensity:  0.6,
		Fullscreen:          false,
	}
}

// SettingsManager 设置管理器
// 负责控制器设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager      // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *ControllerSettings // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "controller"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 加载失败不是致命错误，使用默认设置并记录警告。
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultControllerSettings(),
	}

	if err := sm.Load(); err != nil {
		log.Warnf("[SettingsManager] Failed to load settings: %v (using defaults)", err)
	}

	return sm
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或数据不存在，使用默认设置
func (sm *SettingsManager) Load() error {
	// 降级模式：无法持久化，使用默认设置
	if sm.gdataManager == nil {
		sm.settings = DefaultControllerSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultControllerSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultControllerSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// 以默认值为底，旧版本数据缺失的字段保持默认
	loaded := DefaultControllerSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultControllerSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.HighlightIntensity = clampUnit(loaded.HighlightIntensity)

	sm.settings = loaded
	log.Debugf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Debugf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *ControllerSettings {
	return sm.settings
}

// SetHighlightIntensity 设置悬停高亮强度
// 值会被限制在 0.0 ~ 1.0；仅修改内存中的设置，需调用 Save() 持久化
func (sm *SettingsManager) SetHighlightIntensity(intensity float64) {
	sm.settings.HighlightIntensity = clampUnit(intensity)
}

// SetShowMouseCursor 设置是否显示光标
func (sm *SettingsManager) SetShowMouseCursor(show bool) {
	sm.settings.ShowMouseCursor = show
}

// SetLockCursorToWindow 设置是否锁定光标
func (sm *SettingsManager) SetLockCursorToWindow(lock bool) {
	sm.settings.LockCursorToWindow = lock
}

// SetFullscreen 设置全屏模式
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// clampUnit 将值限制在 0.0 ~ 1.0 范围内
func clampUnit(v float64) float64 {
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}
