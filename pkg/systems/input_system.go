package systems

import (
	"math"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/gonewx/aura/pkg/components"
	"github.com/gonewx/aura/pkg/config"
	"github.com/gonewx/aura/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// KeyReader 按键状态来源
type KeyReader interface {
	IsKeyPressed(key ebiten.Key) bool
}

// EbitenKeys 基于 ebiten 的按键状态
type EbitenKeys struct{}

// IsKeyPressed 实现 KeyReader
func (EbitenKeys) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

// InputSystem 输入映射系统
//
// 持有一组按优先级排序的输入映射上下文，每帧把 Move 动作的按键状态
// 合成为归一化的二维向量，写入所有玩家控制实体的 MoveInputComponent。
type InputSystem struct {
	entityManager *ecs.EntityManager
	keys          KeyReader
	contexts      []*config.InputMappingContext // 优先级从高到低
}

// NewInputSystem 创建输入映射系统
func NewInputSystem(em *ecs.EntityManager, keys KeyReader) *InputSystem {
	return &InputSystem{
		entityManager: em,
		keys:          keys,
	}
}

// AddMappingContext 注册输入映射上下文
// 同名上下文会被替换
func (s *InputSystem) AddMappingContext(ctx *config.InputMappingContext) {
	s.RemoveMappingContext(ctx.Name)
	s.contexts = append(s.contexts, ctx)
	sort.SliceStable(s.contexts, func(i, j int) bool {
		return s.contexts[i].Priority > s.contexts[j].Priority
	})
	log.Debugf("[InputSystem] 注册输入映射上下文: %s (priority=%d)", ctx.Name, ctx.Priority)
}

// RemoveMappingContext 移除指定名称的上下文，返回是否存在
func (s *InputSystem) RemoveMappingContext(name string) bool {
	for i, ctx := range s.contexts {
		if ctx.Name == name {
			s.contexts = append(s.contexts[:i], s.contexts[i+1:]...)
			return true
		}
	}
	return false
}

// HasMappingContext 检查是否已注册指定名称的上下文
func (s *InputSystem) HasMappingContext(name string) bool {
	for _, ctx := range s.contexts {
		if ctx.Name == name {
			return true
		}
	}
	return false
}

// Update 每帧调用一次
func (s *InputSystem) Update() {
	x, y := s.MoveVector()

	entities := ecs.GetEntitiesWith2[*components.PlayerControlledComponent, *components.MoveInputComponent](s.entityManager)
	for _, id := range entities {
		input, _ := ecs.GetComponent[*components.MoveInputComponent](s.entityManager, id)
		input.X = x
		input.Y = y
	}
}

// MoveVector 根据当前按键计算移动向量
// X 为向右，Y 为向前；斜向移动长度归一化为 1
func (s *InputSystem) MoveVector() (float64, float64) {
	var up, down, left, right bool
	for _, ctx := range s.contexts {
		up = up || s.anyPressed(ctx.Up)
		down = down || s.anyPressed(ctx.Down)
		left = left || s.anyPressed(ctx.Left)
		right = right || s.anyPressed(ctx.Right)
	}

	x := axis(right, left)
	y := axis(up, down)
	if length := math.Hypot(x, y); length > 1 {
		x /= length
		y /= length
	}
	return x, y
}

func (s *InputSystem) anyPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if s.keys.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// axis 正向键减反向键，同时按下互相抵消
func axis(positive, negative bool) float64 {
	v := 0.0
	if positive {
		v++
	}
	if negative {
		v--
	}
	return v
}
