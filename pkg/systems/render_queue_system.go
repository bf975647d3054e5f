package systems

import (
	"cmp"
	"slices"

	"github.com/jakecoffman/cp"

	"github.com/gonewx/prison/pkg/components"
	"github.com/gonewx/prison/pkg/config"
	"github.com/gonewx/prison/pkg/ecs"
)

// RenderItem 渲染器需要的一个精灵的只读快照
type RenderItem struct {
	Entity   ecs.EntityID
	Region   string
	FlipX    bool
	FlipY    bool
	Size     cp.Vector
	Origin   cp.Vector
	Position cp.Vector
	Scale    cp.Vector
	// Rotation 角度制
	Rotation float64
	ZIndex   int
}

// RenderQueueSystem 每帧收集可见精灵，按 ZIndex 升序排列
// 同层级的顺序不作保证
type RenderQueueSystem struct {
	entityManager *ecs.EntityManager
	items         []RenderItem
}

// NewRenderQueueSystem 创建渲染队列系统
func NewRenderQueueSystem(em *ecs.EntityManager) *RenderQueueSystem {
	return &RenderQueueSystem{
		entityManager: em,
		items:         make([]RenderItem, 0, 256),
	}
}

// Priority 实现 ecs.System
func (s *RenderQueueSystem) Priority() int {
	return config.PriorityRender
}

// Update 实现 ecs.System
func (s *RenderQueueSystem) Update(deltaTime float64) {
	s.items = s.items[:0]
	for _, id := range ecs.GetEntitiesWith2[*components.SpriteComponent, *components.TransformComponent](s.entityManager) {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		if sprite.Hidden {
			continue
		}
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		s.items = append(s.items, RenderItem{
			Entity:   id,
			Region:   sprite.Region,
			FlipX:    sprite.FlipX,
			FlipY:    sprite.FlipY,
			Size:     sprite.Size,
			Origin:   sprite.Origin,
			Position: transform.Position,
			Scale:    transform.Scale,
			Rotation: transform.Rotation,
			ZIndex:   sprite.ZIndex,
		})
	}
	slices.SortStableFunc(s.items, func(a, b RenderItem) int {
		return cmp.Compare(a.ZIndex, b.ZIndex)
	})
}

// Items 本帧的渲染队列，下一次 Update 前有效
func (s *RenderQueueSystem) Items() []RenderItem {
	return s.items
}
