package systems

import (
	"testing"

	"github.com/gonewx/aura/pkg/components"
	"github.com/gonewx/aura/pkg/ecs"
)

func createMovingEntity(em *ecs.EntityManager, x, y, ix, iy, speed float64) (*components.PositionComponent, *components.MoveInputComponent) {
	id := em.CreateEntity()
	pos := &components.PositionComponent{X: x, Y: y}
	in := &components.MoveInputComponent{X: ix, Y: iy}
	ecs.AddComponent(em, id, pos)
	ecs.AddComponent(em, id, in)
	ecs.AddComponent(em, id, &components.MovementComponent{Speed: speed})
	return pos, in
}

func TestMovementSystem_ForwardIsScreenUp(t *testing.T) {
	em := ecs.NewEntityManager()
	pos, _ := createMovingEntity(em, 100, 100, 0, 1, 200)

	NewMovementSystem(em, 1000, 1000).Update(0.5)

	if pos.X != 100 || pos.Y != 0 {
		t.Errorf("position = (%v, %v), want (100, 0)", pos.X, pos.Y)
	}
}

func TestMovementSystem_RightIsPositiveX(t *testing.T) {
	em := ecs.NewEntityManager()
	pos, _ := createMovingEntity(em, 100, 100, 1, 0, 100)

	NewMovementSystem(em, 1000, 1000).Update(1)

	if pos.X != 200 || pos.Y != 100 {
		t.Errorf("position = (%v, %v), want (200, 100)", pos.X, pos.Y)
	}
}

func TestMovementSystem_ClampedToBounds(t *testing.T) {
	em := ecs.NewEntityManager()
	pos, _ := createMovingEntity(em, 950, 20, 1, 1, 500)

	NewMovementSystem(em, 1000, 800).Update(1)

	if pos.X != 1000 || pos.Y != 0 {
		t.Errorf("position = (%v, %v), want (1000, 0)", pos.X, pos.Y)
	}
}

func TestMovementSystem_IdleDoesNotMove(t *testing.T) {
	em := ecs.NewEntityManager()
	pos, _ := createMovingEntity(em, 10, 10, 0, 0, 500)

	NewMovementSystem(em, 1000, 800).Update(1)

	if pos.X != 10 || pos.Y != 10 {
		t.Errorf("position = (%v, %v), want (10, 10)", pos.X, pos.Y)
	}
}
