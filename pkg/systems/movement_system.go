package systems

import (
	"github.com/gonewx/aura/pkg/components"
	"github.com/gonewx/aura/pkg/ecs"
)

// MovementSystem 根据移动输入更新位置
//
// 俯视固定摄像机：向前为屏幕上方（-Y），向右为 +X。
// 位置限制在关卡范围内。
type MovementSystem struct {
	entityManager *ecs.EntityManager
	boundsW       float64
	boundsH       float64
}

// NewMovementSystem 创建移动系统
func NewMovementSystem(em *ecs.EntityManager, levelWidth, levelHeight float64) *MovementSystem {
	return &MovementSystem{
		entityManager: em,
		boundsW:       levelWidth,
		boundsH:       levelHeight,
	}
}

// Update 每帧调用一次
func (s *MovementSystem) Update(dt float64) {
	entities := ecs.GetEntitiesWith3[*components.MoveInputComponent, *components.MovementComponent, *components.PositionComponent](s.entityManager)
	for _, id := range entities {
		input, _ := ecs.GetComponent[*components.MoveInputComponent](s.entityManager, id)
		movement, _ := ecs.GetComponent[*components.MovementComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		if input.X == 0 && input.Y == 0 {
			continue
		}

		pos.X = clamp(pos.X+input.X*movement.Speed*dt, 0, s.boundsW)
		pos.Y = clamp(pos.Y-input.Y*movement.Speed*dt, 0, s.boundsH)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
