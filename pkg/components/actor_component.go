package components

import "github.com/gonewx/aura/pkg/types"

// ActorComponent 场景角色的基础信息
type ActorComponent struct {
	Name string
	Kind types.ActorKind
}
