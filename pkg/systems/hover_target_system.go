package systems

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/gonewx/aura/pkg/components"
	"github.com/gonewx/aura/pkg/ecs"
	"github.com/gonewx/aura/pkg/types"
	"github.com/gonewx/aura/pkg/utils"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Raycaster 射线检测服务
// 给定光标屏幕坐标和碰撞通道，返回命中结果；同一帧内结果是确定的
type Raycaster interface {
	Trace(screenX, screenY int, channel types.CollisionChannel) TraceResult
}

// TraceResult 射线检测结果
type TraceResult struct {
	// BlockingHit 射线是否命中了阻挡表面
	BlockingHit bool
	// Entity 命中表面所属的实体，静态地表为 0
	Entity ecs.EntityID
	// WorldX, WorldY 命中点（世界坐标）
	WorldX, WorldY float64
}

// HighlightResolver 将实体解析为 Highlightable
// 实体不存在或不具备该能力时返回 false
type HighlightResolver func(id ecs.EntityID) (components.Highlightable, bool)

// HoverTargetSystem 光标悬停目标系统
//
// 每帧向射线服务查询光标下的实体，与上一帧的目标比较，
// 在目标变化时通知旧目标 Unhighlight、新目标 Highlight（先旧后新）。
//
// 状态只有两个非拥有的实体句柄 previous/current（0 表示无）。
// 射线未命中时整帧跳过，两个句柄都保持不变；
// 命中无实体的地表则会清空当前目标。
type HoverTargetSystem struct {
	entityManager *ecs.EntityManager
	raycaster     Raycaster
	cursor        utils.CursorSource
	resolve       HighlightResolver
	tracer        trace.Tracer

	previous ecs.EntityID // 上一次命中时的目标
	current  ecs.EntityID // 本次命中时的目标
}

// NewHoverTargetSystem 创建悬停目标系统
//
// 参数：
//   - em: 实体管理器，用于判断句柄是否仍然存活
//   - raycaster: 射线检测服务
//   - cursor: 光标坐标来源
func NewHoverTargetSystem(em *ecs.EntityManager, raycaster Raycaster, cursor utils.CursorSource) *HoverTargetSystem {
	s := &HoverTargetSystem{
		entityManager: em,
		raycaster:     raycaster,
		cursor:        cursor,
		tracer:        noop.NewTracerProvider().Tracer("aura/noop"),
	}
	s.resolve = s.resolveHoverHighlight
	return s
}

// SetTracer 设置用于记录目标切换的 tracer
func (s *HoverTargetSystem) SetTracer(tracer trace.Tracer) {
	if tracer != nil {
		s.tracer = tracer
	}
}

// SetHighlightResolver 替换实体到 Highlightable 的解析方式
func (s *HoverTargetSystem) SetHighlightResolver(resolve HighlightResolver) {
	if resolve != nil {
		s.resolve = resolve
	}
}

// resolveHoverHighlight 默认解析：存活且挂载 HoverHighlightComponent 的实体
func (s *HoverTargetSystem) resolveHoverHighlight(id ecs.EntityID) (components.Highlightable, bool) {
	if !s.entityManager.IsAlive(id) {
		return nil, false
	}
	comp, ok := ecs.GetComponent[*components.HoverHighlightComponent](s.entityManager, id)
	if !ok {
		return nil, false
	}
	return comp, true
}

// Update 每帧调用一次
func (s *HoverTargetSystem) Update() {
	x, y := s.cursor.CursorPosition()
	hit := s.raycaster.Trace(x, y, types.ChannelVisibility)
	if !hit.BlockingHit {
		return
	}

	s.previous = s.current
	s.current = 0
	if hit.Entity != 0 {
		if _, ok := s.resolve(hit.Entity); ok {
			s.current = hit.Entity
		}
	}

	s.applyTransition()
}

// applyTransition 比较 previous/current 并发出通知
// 已销毁实体的句柄按"无"处理，不会收到通知
func (s *HoverTargetSystem) applyTransition() {
	prev, prevOK := s.lookup(s.previous)
	cur, curOK := s.lookup(s.current)

	switch {
	case !prevOK && !curOK:
		return
	case !prevOK:
		cur.Highlight()
	case !curOK:
		prev.Unhighlight()
	case s.previous != s.current:
		prev.Unhighlight()
		cur.Highlight()
	default:
		return
	}

	s.recordTransition(prevOK, curOK)
}

func (s *HoverTargetSystem) lookup(id ecs.EntityID) (components.Highlightable, bool) {
	if id == 0 {
		return nil, false
	}
	return s.resolve(id)
}

// recordTransition 记录一次目标切换（日志 + span）
func (s *HoverTargetSystem) recordTransition(prevOK, curOK bool) {
	var from, to ecs.EntityID
	if prevOK {
		from = s.previous
	}
	if curOK {
		to = s.current
	}
	log.Debugf("[HoverTargetSystem] 悬停目标切换: %d -> %d", from, to)

	_, span := s.tracer.Start(context.Background(), "hover.transition",
		trace.WithAttributes(
			attribute.Int64("hover.from", int64(from)),
			attribute.Int64("hover.to", int64(to)),
		))
	span.End()
}

// Targets 返回 (previous, current) 句柄
func (s *HoverTargetSystem) Targets() (previous, current ecs.EntityID) {
	return s.previous, s.current
}

// CurrentTarget 返回当前悬停目标，已销毁的目标返回 0
func (s *HoverTargetSystem) CurrentTarget() ecs.EntityID {
	if _, ok := s.lookup(s.current); !ok {
		return 0
	}
	return s.current
}

// Cleanup 丢弃状态（场景结束时调用），不发出通知
func (s *HoverTargetSystem) Cleanup() {
	s.previous = 0
	s.current = 0
}
