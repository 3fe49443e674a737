package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testVelocityComponent struct {
	VX, VY float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// 测试实体ID唯一性
	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// 测试ID从1开始
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}

	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	pos := &testPositionComponent{X: 100, Y: 200}
	em.AddComponent(id, pos)

	comp, found := em.GetComponent(id, reflect.TypeOf(&testPositionComponent{}))
	if !found {
		t.Fatal("Component should be found")
	}

	retrieved := comp.(*testPositionComponent)
	if retrieved.X != 100 || retrieved.Y != 200 {
		t.Errorf("Component data mismatch, expected (100, 200), got (%f, %f)", retrieved.X, retrieved.Y)
	}
}

func TestGenericComponentAccess(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testVelocityComponent{VX: 3, VY: 4})

	vel, ok := GetComponent[*testVelocityComponent](em, id)
	if !ok {
		t.Fatal("Generic GetComponent should find the component")
	}
	if vel.VX != 3 || vel.VY != 4 {
		t.Errorf("Expected (3, 4), got (%f, %f)", vel.VX, vel.VY)
	}

	// 泛型与反射接口共享同一份存储
	if !em.HasComponent(id, reflect.TypeOf(&testVelocityComponent{})) {
		t.Error("Reflection HasComponent should see component added via generics")
	}

	RemoveComponent[*testVelocityComponent](em, id)
	if HasComponent[*testVelocityComponent](em, id) {
		t.Error("Component should be gone after RemoveComponent")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{})

	// 标记删除
	em.DestroyEntity(id)

	// 清理前实体仍存在
	if !em.IsAlive(id) {
		t.Error("Entity should still be alive before cleanup")
	}

	// 清理后实体消失
	if removed := em.RemoveMarkedEntities(); removed != 1 {
		t.Errorf("Expected 1 removed entity, got %d", removed)
	}
	if em.IsAlive(id) {
		t.Error("Entity should not be alive after cleanup")
	}
	if em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Entity should be removed after cleanup")
	}
}

// TestEntityIDsAreNeverReused 已销毁实体的 ID 不会分配给新实体
func TestEntityIDsAreNeverReused(t *testing.T) {
	em := NewEntityManager()
	old := em.CreateEntity()
	em.DestroyEntity(old)
	em.RemoveMarkedEntities()

	for i := 0; i < 10; i++ {
		if id := em.CreateEntity(); id == old {
			t.Fatalf("Entity ID %d was reused", old)
		}
	}
	if em.IsAlive(old) {
		t.Error("Stale ID must not resolve to a live entity")
	}
}

func TestIsAliveZeroID(t *testing.T) {
	em := NewEntityManager()
	em.CreateEntity()
	if em.IsAlive(0) {
		t.Error("ID 0 is reserved and must never be alive")
	}
}

func TestDoubleDestroyCountsOnce(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.DestroyEntity(id)
	em.DestroyEntity(id)

	if removed := em.RemoveMarkedEntities(); removed != 1 {
		t.Errorf("Expected 1 removed entity, got %d", removed)
	}
	if em.EntityCount() != 0 {
		t.Errorf("Expected 0 entities, got %d", em.EntityCount())
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	em.AddComponent(id1, &testPositionComponent{})
	em.AddComponent(id1, &testVelocityComponent{})

	id2 := em.CreateEntity()
	em.AddComponent(id2, &testPositionComponent{})

	id3 := em.CreateEntity()
	em.AddComponent(id3, &testVelocityComponent{})

	entities := GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em)
	if len(entities) != 1 || entities[0] != id1 {
		t.Errorf("Expected only id1, got %v", entities)
	}

	// 结果按 ID 升序
	posEntities := GetEntitiesWith1[*testPositionComponent](em)
	if len(posEntities) != 2 || posEntities[0] != id1 || posEntities[1] != id2 {
		t.Errorf("Expected [%d %d], got %v", id1, id2, posEntities)
	}
}
