package systems

import (
	"math"

	"github.com/gonewx/aura/pkg/components"
	"github.com/gonewx/aura/pkg/ecs"
)

// CameraSystem 摄像机跟随系统
// 摄像机以跟随目标为中心，限制在关卡范围内，按指数衰减平滑移动
type CameraSystem struct {
	entityManager *ecs.EntityManager
	cameraEntity  ecs.EntityID
	levelW        float64
	levelH        float64

	// Smoothing 平滑系数（1/秒），0 表示直接对齐目标
	Smoothing float64
}

// NewCameraSystem 创建摄像机系统并生成摄像机实体
func NewCameraSystem(em *ecs.EntityManager, viewW, viewH, levelW, levelH float64, target ecs.EntityID) *CameraSystem {
	cs := &CameraSystem{
		entityManager: em,
		levelW:        levelW,
		levelH:        levelH,
		Smoothing:     8,
	}

	cs.cameraEntity = em.CreateEntity()
	ecs.AddComponent(em, cs.cameraEntity, &components.CameraComponent{
		ViewWidth:  viewW,
		ViewHeight: viewH,
		Target:     target,
	})

	// 初始位置直接对齐，避免开场从原点滑过来
	cs.snap()
	return cs
}

// GetCameraEntity 返回摄像机实体ID
func (cs *CameraSystem) GetCameraEntity() ecs.EntityID {
	return cs.cameraEntity
}

// Update 每帧调用一次
func (cs *CameraSystem) Update(dt float64) {
	cam, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity)
	if !ok {
		return
	}
	targetX, targetY, ok := cs.desired(cam)
	if !ok {
		return
	}

	if cs.Smoothing <= 0 {
		cam.X, cam.Y = targetX, targetY
		return
	}

	// 指数衰减，与帧率无关
	k := 1 - math.Exp(-cs.Smoothing*dt)
	cam.X += (targetX - cam.X) * k
	cam.Y += (targetY - cam.Y) * k
}

func (cs *CameraSystem) snap() {
	cam, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity)
	if !ok {
		return
	}
	if x, y, ok := cs.desired(cam); ok {
		cam.X, cam.Y = x, y
	}
}

// desired 计算目标视口左上角
func (cs *CameraSystem) desired(cam *components.CameraComponent) (float64, float64, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](cs.entityManager, cam.Target)
	if !ok {
		return 0, 0, false
	}
	x := clamp(pos.X-cam.ViewWidth/2, 0, math.Max(0, cs.levelW-cam.ViewWidth))
	y := clamp(pos.Y-cam.ViewHeight/2, 0, math.Max(0, cs.levelH-cam.ViewHeight))
	return x, y, true
}
