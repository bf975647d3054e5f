package systems

import (
	"github.com/gonewx/prison/pkg/components"
	"github.com/gonewx/prison/pkg/config"
	"github.com/gonewx/prison/pkg/ecs"
)

// AnimationSystem 推进动画时间并把当前帧写入精灵
type AnimationSystem struct {
	entityManager *ecs.EntityManager
}

// NewAnimationSystem 创建动画系统
func NewAnimationSystem(em *ecs.EntityManager) *AnimationSystem {
	return &AnimationSystem{entityManager: em}
}

// Priority 实现 ecs.System
func (s *AnimationSystem) Priority() int {
	return config.PriorityAnimation
}

// Update 实现 ecs.System
func (s *AnimationSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.AnimationComponent, *components.SpriteComponent](s.entityManager) {
		animation, _ := ecs.GetComponent[*components.AnimationComponent](s.entityManager, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)

		animation.Elapsed += deltaTime
		if frame := animation.CurrentFrame(); frame != "" {
			sprite.Region = frame
		}
	}
}
