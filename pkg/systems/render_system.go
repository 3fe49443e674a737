package systems

import (
	"image/color"
	"sort"

	"github.com/gonewx/aura/pkg/components"
	"github.com/gonewx/aura/pkg/config"
	"github.com/gonewx/aura/pkg/ecs"
	"github.com/gonewx/aura/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// highlightColor 悬停描边颜色（alpha 由高亮强度决定）
var highlightColor = color.RGBA{R: 255, G: 220, B: 64, A: 255}

// highlightStrokeWidth 描边宽度（像素）
const highlightStrokeWidth = 3

// RenderSystem 绘制关卡地表和实体
//
// 渲染顺序（从底到顶）：地表 → 实体（按碰撞层、ID 排序）→ 悬停描边。
// 所有坐标均为世界坐标，绘制时减去摄像机偏移。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	surfaces      []config.SurfaceRect
	surfaceColors []color.RGBA
}

// NewRenderSystem 创建渲染系统
// 地表颜色在创建时解析，非法颜色按白色绘制（关卡加载时已校验过）
func NewRenderSystem(em *ecs.EntityManager, surfaces []config.SurfaceRect) *RenderSystem {
	colors := make([]color.RGBA, len(surfaces))
	for i, surface := range surfaces {
		c, err := config.ParseHexColor(surface.Color)
		if err != nil {
			c = color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
		colors[i] = c
	}
	return &RenderSystem{
		entityManager: em,
		surfaces:      surfaces,
		surfaceColors: colors,
	}
}

// Draw 绘制整个场景
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	var camX, camY float64
	if _, cam, err := utils.FindCamera(s.entityManager); err == nil {
		camX, camY = cam.X, cam.Y
	}

	for i, surface := range s.surfaces {
		vector.DrawFilledRect(screen,
			float32(surface.X-camX), float32(surface.Y-camY),
			float32(surface.Width), float32(surface.Height),
			s.surfaceColors[i], false)
	}

	for _, id := range s.drawOrder() {
		s.drawEntity(screen, id, camX, camY)
	}
}

// drawOrder 返回可绘制实体，低层在前
func (s *RenderSystem) drawOrder() []ecs.EntityID {
	entities := ecs.GetEntitiesWith2[*components.PositionComponent, *components.SpriteComponent](s.entityManager)
	layer := func(id ecs.EntityID) int {
		if col, ok := ecs.GetComponent[*components.ColliderComponent](s.entityManager, id); ok {
			return col.Layer
		}
		return 0
	}
	sort.SliceStable(entities, func(i, j int) bool {
		return layer(entities[i]) < layer(entities[j])
	})
	return entities
}

func (s *RenderSystem) drawEntity(screen *ebiten.Image, id ecs.EntityID, camX, camY float64) {
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)

	// 位置是中心点
	x := float32(pos.X - sprite.Width/2 - camX)
	y := float32(pos.Y - sprite.Height/2 - camY)
	w, h := float32(sprite.Width), float32(sprite.Height)

	vector.DrawFilledRect(screen, x, y, w, h, sprite.Color, false)

	hover, ok := ecs.GetComponent[*components.HoverHighlightComponent](s.entityManager, id)
	if !ok || !hover.IsActive {
		return
	}
	pad := float32(highlightStrokeWidth)
	vector.StrokeRect(screen, x-pad, y-pad, w+2*pad, h+2*pad, highlightStrokeWidth, HighlightOutlineColor(hover.Intensity), false)
}

// HighlightOutlineColor 按强度（0-1）计算描边颜色
func HighlightOutlineColor(intensity float64) color.RGBA {
	c := highlightColor
	c.A = uint8(clamp(intensity, 0, 1) * 255)
	return c
}
