package entities

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/gonewx/aura/pkg/components"
	"github.com/gonewx/aura/pkg/config"
	"github.com/gonewx/aura/pkg/ecs"
	"github.com/gonewx/aura/pkg/types"
)

const (
	// PlayerSize 玩家角色边长
	PlayerSize = 40.0
	// PlayerLayer 玩家碰撞层
	PlayerLayer = 1
)

// playerColor 玩家颜色
var playerColor = color.RGBA{R: 64, G: 160, B: 255, A: 255}

// NewPlayerEntity 创建玩家实体
//
// 玩家阻挡可见性射线，但不挂载高亮组件：光标停在玩家身上时当前目标为"无"。
//
// 参数:
//   - em: 实体管理器
//   - level: 关卡配置（出生点和移动速度）
func NewPlayerEntity(em *ecs.EntityManager, level *config.LevelConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if level == nil {
		return 0, fmt.Errorf("level config cannot be nil")
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: level.PlayerStart.X, Y: level.PlayerStart.Y})
	ecs.AddComponent(em, id, &components.ActorComponent{Name: "player", Kind: types.ActorPlayer})
	ecs.AddComponent(em, id, &components.SpriteComponent{Width: PlayerSize, Height: PlayerSize, Color: playerColor})
	ecs.AddComponent(em, id, &components.ColliderComponent{
		Width:     PlayerSize,
		Height:    PlayerSize,
		Layer:     PlayerLayer,
		Responses: types.MaskOf(types.ChannelVisibility, types.ChannelPawn),
	})
	ecs.AddComponent(em, id, &components.PlayerControlledComponent{})
	ecs.AddComponent(em, id, &components.MoveInputComponent{})
	ecs.AddComponent(em, id, &components.MovementComponent{Speed: level.PlayerSpeed})

	log.Debugf("[ActorFactory] 创建玩家 %d @ (%.0f, %.0f)", id, level.PlayerStart.X, level.PlayerStart.Y)
	return id, nil
}

// NewActorEntity 按关卡配置创建场景角色
//
// 敌人挂载 HoverHighlightComponent（可被悬停高亮），道具只阻挡射线。
// intensity 为高亮强度（0-1），来自控制器设置。
func NewActorEntity(em *ecs.EntityManager, cfg config.ActorConfig, intensity float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	kind, err := types.ParseActorKind(cfg.Kind)
	if err != nil {
		return 0, fmt.Errorf("actor %s: %w", cfg.Name, err)
	}
	if kind == types.ActorPlayer {
		return 0, fmt.Errorf("actor %s: use NewPlayerEntity for the player", cfg.Name)
	}
	c, err := config.ParseHexColor(cfg.Color)
	if err != nil {
		return 0, fmt.Errorf("actor %s: %w", cfg.Name, err)
	}
	responses, err := cfg.Responses()
	if err != nil {
		return 0, fmt.Errorf("actor %s: %w", cfg.Name, err)
	}

	w, h := cfg.Width, cfg.Height
	if w == 0 {
		w = config.DefaultActorSize
	}
	if h == 0 {
		h = config.DefaultActorSize
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: cfg.X, Y: cfg.Y})
	ecs.AddComponent(em, id, &components.ActorComponent{Name: cfg.Name, Kind: kind})
	ecs.AddComponent(em, id, &components.SpriteComponent{Width: w, Height: h, Color: c})
	ecs.AddComponent(em, id, &components.ColliderComponent{
		Width:     w,
		Height:    h,
		Layer:     cfg.Layer,
		Responses: responses,
	})

	if kind == types.ActorEnemy {
		ecs.AddComponent(em, id, &components.HoverHighlightComponent{Intensity: intensity})
	}

	log.Debugf("[ActorFactory] 创建%s %q (%d) @ (%.0f, %.0f)", kind, cfg.Name, id, cfg.X, cfg.Y)
	return id, nil
}

// SpawnLevelActors 创建关卡中的全部角色，返回实体ID（与配置顺序一致）
func SpawnLevelActors(em *ecs.EntityManager, level *config.LevelConfig, intensity float64) ([]ecs.EntityID, error) {
	ids := make([]ecs.EntityID, 0, len(level.Actors))
	for _, actor := range level.Actors {
		id, err := NewActorEntity(em, actor, intensity)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
