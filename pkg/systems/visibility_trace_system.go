package systems

import (
	"github.com/gonewx/aura/pkg/components"
	"github.com/gonewx/aura/pkg/config"
	"github.com/gonewx/aura/pkg/ecs"
	"github.com/gonewx/aura/pkg/types"
	"github.com/gonewx/aura/pkg/utils"
)

// VisibilityTraceSystem 光标射线检测
//
// 2D 俯视场景中，"射线"就是光标对应的世界坐标点：
//  1. 阻挡该通道、且碰撞盒包含该点的实体，取 Layer 最高者（同层取 ID 最小）
//  2. 否则检查静态地表，命中则 Entity 为 0
//  3. 都没有命中（深坑、关卡之外）返回未命中
type VisibilityTraceSystem struct {
	entityManager *ecs.EntityManager
	surfaces      []config.SurfaceRect
}

var _ Raycaster = (*VisibilityTraceSystem)(nil)

// NewVisibilityTraceSystem 创建射线检测系统
func NewVisibilityTraceSystem(em *ecs.EntityManager, surfaces []config.SurfaceRect) *VisibilityTraceSystem {
	return &VisibilityTraceSystem{
		entityManager: em,
		surfaces:      surfaces,
	}
}

// Trace 实现 Raycaster
func (s *VisibilityTraceSystem) Trace(screenX, screenY int, channel types.CollisionChannel) TraceResult {
	worldX, worldY := float64(screenX), float64(screenY)
	if _, cam, err := utils.FindCamera(s.entityManager); err == nil {
		worldX, worldY = utils.ScreenToWorld(cam, worldX, worldY)
	}

	result := TraceResult{WorldX: worldX, WorldY: worldY}

	if id, ok := s.traceEntities(worldX, worldY, channel); ok {
		result.BlockingHit = true
		result.Entity = id
		return result
	}

	for _, surface := range s.surfaces {
		if surface.Contains(worldX, worldY) {
			result.BlockingHit = true
			return result
		}
	}

	return result
}

// traceEntities 查找包含世界坐标点的最上层实体
func (s *VisibilityTraceSystem) traceEntities(worldX, worldY float64, channel types.CollisionChannel) (ecs.EntityID, bool) {
	var best ecs.EntityID
	bestLayer := 0

	// 结果按 ID 升序，只在 Layer 严格更高时替换，同层保留 ID 最小者
	entities := ecs.GetEntitiesWith2[*components.PositionComponent, *components.ColliderComponent](s.entityManager)
	for _, id := range entities {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		col, _ := ecs.GetComponent[*components.ColliderComponent](s.entityManager, id)

		if !col.Responses.Blocks(channel) {
			continue
		}
		if !col.Contains(pos.X, pos.Y, worldX, worldY) {
			continue
		}
		if best == 0 || col.Layer > bestLayer {
			best = id
			bestLayer = col.Layer
		}
	}

	return best, best != 0
}
