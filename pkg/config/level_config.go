package config

import (
	"fmt"
	"image/color"
	"os"

	"github.com/gonewx/aura/pkg/embedded"
	"github.com/gonewx/aura/pkg/types"
	"gopkg.in/yaml.v3"
)

// LevelConfig 关卡配置数据结构
// 定义关卡边界、可行走地表和场景中的角色
//
// 配置文件位置: data/levels/<id>.yaml
type LevelConfig struct {
	ID          string        `yaml:"id"`          // 关卡ID，如 "courtyard"
	Name        string        `yaml:"name"`        // 关卡名称
	Width       float64       `yaml:"width"`       // 关卡宽度（世界坐标）
	Height      float64       `yaml:"height"`      // 关卡高度（世界坐标）
	PlayerStart PointConfig   `yaml:"playerStart"` // 玩家出生点
	PlayerSpeed float64       `yaml:"playerSpeed"` // 玩家移动速度（像素/秒），默认 DefaultPlayerSpeed
	Surfaces    []SurfaceRect `yaml:"surfaces"`    // 静态地表（射线命中但不关联实体）
	Actors      []ActorConfig `yaml:"actors"`      // 场景角色
}

// PointConfig 世界坐标点
type PointConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// SurfaceRect 静态地表矩形（左上角 + 尺寸）
// 地表之外、关卡之内的区域（如深坑）射线不会命中任何东西
type SurfaceRect struct {
	Name   string  `yaml:"name"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Color  string  `yaml:"color"` // "#rrggbb"，可选
}

// Contains 检查世界坐标点是否落在地表内（含边界）
func (s SurfaceRect) Contains(x, y float64) bool {
	return x >= s.X && x <= s.X+s.Width &&
		y >= s.Y && y <= s.Y+s.Height
}

// ActorConfig 场景角色配置
type ActorConfig struct {
	Name   string  `yaml:"name"`
	Kind   string  `yaml:"kind"` // "enemy" | "prop"
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Layer  int     `yaml:"layer"`
	Color  string  `yaml:"color"`

	// Blocks 阻挡的碰撞通道，为空时阻挡 visibility 和 pawn
	Blocks []string `yaml:"blocks"`
}

// Responses 返回角色碰撞盒阻挡的通道掩码
func (a ActorConfig) Responses() (types.ChannelMask, error) {
	if len(a.Blocks) == 0 {
		return types.MaskOf(types.ChannelVisibility, types.ChannelPawn), nil
	}
	var mask types.ChannelMask
	for _, name := range a.Blocks {
		c, err := types.ParseCollisionChannel(name)
		if err != nil {
			return 0, err
		}
		mask |= types.MaskOf(c)
	}
	return mask, nil
}

const (
	// DefaultPlayerSpeed 默认玩家移动速度（像素/秒）
	DefaultPlayerSpeed = 220.0
	// DefaultActorSize 角色未配置尺寸时使用的边长
	DefaultActorSize = 48.0
)

// LoadLevelConfig 从YAML文件加载关卡配置
//
// 路径以 "data/" 开头且嵌入资源已初始化时从 embed.FS 读取，否则从磁盘读取。
//
// 返回：
//   - *LevelConfig: 解析后的关卡配置对象
//   - error: 如果文件读取、解析或验证失败，返回错误信息
func LoadLevelConfig(path string) (*LevelConfig, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level config file %s: %w", path, err)
	}

	levelConfig, err := ParseLevelConfig(data)
	if err != nil {
		return nil, fmt.Errorf("level config %s: %w", path, err)
	}
	return levelConfig, nil
}

// ParseLevelConfig 解析并验证YAML格式的关卡配置
func ParseLevelConfig(data []byte) (*LevelConfig, error) {
	var levelConfig LevelConfig
	if err := yaml.Unmarshal(data, &levelConfig); err != nil {
		return nil, fmt.Errorf("failed to parse level config YAML: %w", err)
	}

	applyDefaults(&levelConfig)

	if err := levelConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid level config: %w", err)
	}

	return &levelConfig, nil
}

// applyDefaults 为缺失的可选字段设置默认值
func applyDefaults(config *LevelConfig) {
	if config.PlayerSpeed == 0 {
		config.PlayerSpeed = DefaultPlayerSpeed
	}
	for i := range config.Actors {
		if config.Actors[i].Width == 0 {
			config.Actors[i].Width = DefaultActorSize
		}
		if config.Actors[i].Height == 0 {
			config.Actors[i].Height = DefaultActorSize
		}
	}
}

// Validate 验证关卡配置
//
// 检查：
//   - ID 不能为空，关卡尺寸必须为正
//   - 至少有一块地表，且地表尺寸为正
//   - 玩家出生点在关卡范围内
//   - 角色类别合法（玩家由 playerStart 生成，不能出现在 actors 中）
//   - 颜色字符串格式正确
//   - 碰撞通道名称合法
func (c *LevelConfig) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("level id is required")
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("level size must be positive, got %.0fx%.0f", c.Width, c.Height)
	}
	if len(c.Surfaces) == 0 {
		return fmt.Errorf("level %s has no surfaces", c.ID)
	}
	for i, s := range c.Surfaces {
		if s.Width <= 0 || s.Height <= 0 {
			return fmt.Errorf("surface %d (%s) has non-positive size", i, s.Name)
		}
		if _, err := ParseHexColor(s.Color); err != nil {
			return fmt.Errorf("surface %d (%s): %w", i, s.Name, err)
		}
	}
	if c.PlayerStart.X < 0 || c.PlayerStart.X > c.Width ||
		c.PlayerStart.Y < 0 || c.PlayerStart.Y > c.Height {
		return fmt.Errorf("player start (%.1f, %.1f) outside level bounds", c.PlayerStart.X, c.PlayerStart.Y)
	}
	for i, a := range c.Actors {
		kind, err := types.ParseActorKind(a.Kind)
		if err != nil {
			return fmt.Errorf("actor %d (%s): %w", i, a.Name, err)
		}
		if kind == types.ActorPlayer {
			return fmt.Errorf("actor %d (%s): player is spawned from playerStart", i, a.Name)
		}
		if a.Width < 0 || a.Height < 0 {
			return fmt.Errorf("actor %d (%s) has negative size", i, a.Name)
		}
		if _, err := ParseHexColor(a.Color); err != nil {
			return fmt.Errorf("actor %d (%s): %w", i, a.Name, err)
		}
		if _, err := a.Responses(); err != nil {
			return fmt.Errorf("actor %d (%s): %w", i, a.Name, err)
		}
	}
	return nil
}

// ParseHexColor 解析 "#rrggbb" 颜色字符串
// 空字符串返回不透明白色
func ParseHexColor(s string) (color.RGBA, error) {
	c := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if s == "" {
		return c, nil
	}
	if len(s) != 7 || s[0] != '#' {
		return c, fmt.Errorf("invalid color %q, want #rrggbb", s)
	}
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return c, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c, nil
}

// readConfigFile 读取配置文件，优先使用嵌入资源
func readConfigFile(path string) ([]byte, error) {
	if embedded.IsInitialized() && embedded.Exists(path) {
		return embedded.ReadFile(path)
	}
	return os.ReadFile(path)
}
