package types

import "fmt"

// ActorKind 定义场景中角色的类别
type ActorKind int

const (
	// ActorUnknown 未知类别
	ActorUnknown ActorKind = iota
	ActorPlayer  // 玩家角色
	ActorEnemy   // 敌人（可被悬停高亮）
	ActorProp    // 道具/障碍物（阻挡射线但不可高亮）
)

// String 返回类别名称
func (k ActorKind) String() string {
	switch k {
	case ActorPlayer:
		return "player"
	case ActorEnemy:
		return "enemy"
	case ActorProp:
		return "prop"
	default:
		return "unknown"
	}
}

// ParseActorKind 从关卡配置中的字符串解析角色类别
func ParseActorKind(name string) (ActorKind, error) {
	switch name {
	case "player":
		return ActorPlayer, nil
	case "enemy":
		return ActorEnemy, nil
	case "prop":
		return ActorProp, nil
	}
	return ActorUnknown, fmt.Errorf("unknown actor kind %q", name)
}
