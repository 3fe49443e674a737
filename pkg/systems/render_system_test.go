package systems

import (
	"testing"

	"github.com/gonewx/aura/pkg/components"
	"github.com/gonewx/aura/pkg/config"
	"github.com/gonewx/aura/pkg/ecs"
)

func TestHighlightOutlineColor(t *testing.T) {
	tests := []struct {
		intensity float64
		alpha     uint8
	}{
		{0, 0},
		{1, 255},
		{0.5, 127},
		{-1, 0},
		{3, 255},
	}

	for _, tt := range tests {
		got := HighlightOutlineColor(tt.intensity)
		if got.A != tt.alpha {
			t.Errorf("HighlightOutlineColor(%v).A = %d, want %d", tt.intensity, got.A, tt.alpha)
		}
		if got.R != highlightColor.R || got.G != highlightColor.G || got.B != highlightColor.B {
			t.Errorf("HighlightOutlineColor(%v) changed RGB: %+v", tt.intensity, got)
		}
	}
}

func TestRenderSystem_DrawOrderByLayer(t *testing.T) {
	em := ecs.NewEntityManager()
	s := NewRenderSystem(em, nil)

	spawn := func(layer int, collider bool) ecs.EntityID {
		id := em.CreateEntity()
		ecs.AddComponent(em, id, &components.PositionComponent{})
		ecs.AddComponent(em, id, &components.SpriteComponent{Width: 10, Height: 10})
		if collider {
			ecs.AddComponent(em, id, &components.ColliderComponent{Width: 10, Height: 10, Layer: layer})
		}
		return id
	}

	top := spawn(3, true)
	ground := spawn(0, false)
	mid := spawn(1, true)
	alsoMid := spawn(1, true)

	// 没有精灵的实体不参与绘制
	hidden := em.CreateEntity()
	ecs.AddComponent(em, hidden, &components.PositionComponent{})

	order := s.drawOrder()
	want := []ecs.EntityID{ground, mid, alsoMid, top}
	if len(order) != len(want) {
		t.Fatalf("drawOrder() = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("drawOrder()[%d] = %d, want %d", i, order[i], want[i])
		}
	}
}

func TestNewRenderSystem_SurfaceColors(t *testing.T) {
	surfaces := []config.SurfaceRect{
		{Name: "grass", Width: 10, Height: 10, Color: "#336633"},
		{Name: "broken", Width: 10, Height: 10, Color: "green"},
	}
	s := NewRenderSystem(ecs.NewEntityManager(), surfaces)

	if got := s.surfaceColors[0]; got.R != 0x33 || got.G != 0x66 || got.B != 0x33 || got.A != 255 {
		t.Errorf("grass color = %+v", got)
	}
	if got := s.surfaceColors[1]; got.R != 255 || got.G != 255 || got.B != 255 {
		t.Errorf("invalid color should fall back to white, got %+v", got)
	}
}
