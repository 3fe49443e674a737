package config

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnknownKey 输入映射中出现了无法识别的按键名
var ErrUnknownKey = errors.New("unknown key name")

// InputMappingConfig 输入映射上下文的 YAML 表示
//
// 配置文件位置: data/input/mapping.yaml
//
//	name: default
//	priority: 0
//	move:
//	  up: [W, ArrowUp]
//	  down: [S, ArrowDown]
//	  left: [A, ArrowLeft]
//	  right: [D, ArrowRight]
type InputMappingConfig struct {
	Name     string            `yaml:"name"`
	Priority int               `yaml:"priority"`
	Move     MoveBindingConfig `yaml:"move"`
}

// MoveBindingConfig Move 动作四个方向的按键名列表
type MoveBindingConfig struct {
	Up    []string `yaml:"up"`
	Down  []string `yaml:"down"`
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
}

// InputMappingContext 解析后的输入映射上下文
type InputMappingContext struct {
	Name     string
	Priority int

	// Move 动作的按键绑定
	Up, Down, Left, Right []ebiten.Key
}

// keyNames 配置中可用的按键名
var keyNames = map[string]ebiten.Key{
	"A": ebiten.KeyA, "B": ebiten.KeyB, "C": ebiten.KeyC, "D": ebiten.KeyD,
	"E": ebiten.KeyE, "F": ebiten.KeyF, "G": ebiten.KeyG, "H": ebiten.KeyH,
	"I": ebiten.KeyI, "J": ebiten.KeyJ, "K": ebiten.KeyK, "L": ebiten.KeyL,
	"M": ebiten.KeyM, "N": ebiten.KeyN, "O": ebiten.KeyO, "P": ebiten.KeyP,
	"Q": ebiten.KeyQ, "R": ebiten.KeyR, "S": ebiten.KeyS, "T": ebiten.KeyT,
	"U": ebiten.KeyU, "V": ebiten.KeyV, "W": ebiten.KeyW, "X": ebiten.KeyX,
	"Y": ebiten.KeyY, "Z": ebiten.KeyZ,

	"ArrowUp":    ebiten.KeyArrowUp,
	"ArrowDown":  ebiten.KeyArrowDown,
	"ArrowLeft":  ebiten.KeyArrowLeft,
	"ArrowRight": ebiten.KeyArrowRight,

	"Numpad8": ebiten.KeyNumpad8,
	"Numpad2": ebiten.KeyNumpad2,
	"Numpad4": ebiten.KeyNumpad4,
	"Numpad6": ebiten.KeyNumpad6,
}

// ParseKey 将按键名解析为 ebiten.Key
func ParseKey(name string) (ebiten.Key, error) {
	key, ok := keyNames[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKey, name)
	}
	return key, nil
}

// LoadInputMapping 从 YAML 文件加载输入映射上下文
func LoadInputMapping(path string) (*InputMappingContext, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input mapping %s: %w", path, err)
	}

	ctx, err := ParseInputMapping(data)
	if err != nil {
		return nil, fmt.Errorf("input mapping %s: %w", path, err)
	}
	return ctx, nil
}

// ParseInputMapping 解析并验证 YAML 格式的输入映射
//
// 每个方向至少绑定一个按键，所有按键名必须能被 ParseKey 识别。
func ParseInputMapping(data []byte) (*InputMappingContext, error) {
	var cfg InputMappingConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse input mapping YAML: %w", err)
	}
	if cfg.Name == "" {
		return nil, fmt.Errorf("input mapping name is required")
	}

	ctx := &InputMappingContext{
		Name:     cfg.Name,
		Priority: cfg.Priority,
	}

	axes := []struct {
		name  string
		names []string
		dst   *[]ebiten.Key
	}{
		{"up", cfg.Move.Up, &ctx.Up},
		{"down", cfg.Move.Down, &ctx.Down},
		{"left", cfg.Move.Left, &ctx.Left},
		{"right", cfg.Move.Right, &ctx.Right},
	}
	for _, axis := range axes {
		if len(axis.names) == 0 {
			return nil, fmt.Errorf("move.%s has no key bindings", axis.name)
		}
		keys := make([]ebiten.Key, 0, len(axis.names))
		for _, name := range axis.names {
			key, err := ParseKey(name)
			if err != nil {
				return nil, fmt.Errorf("move.%s: %w", axis.name, err)
			}
			keys = append(keys, key)
		}
		*axis.dst = keys
	}

	return ctx, nil
}
