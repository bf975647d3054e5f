package systems

import (
	"github.com/gonewx/prison/pkg/components"
	"github.com/gonewx/prison/pkg/config"
	"github.com/gonewx/prison/pkg/ecs"
)

// AimSystem 把瞄准点实体移动到输入的瞄准位置，并记录开火键状态
type AimSystem struct {
	entityManager *ecs.EntityManager
	input         Input
}

// NewAimSystem 创建瞄准系统
func NewAimSystem(em *ecs.EntityManager, input Input) *AimSystem {
	return &AimSystem{entityManager: em, input: input}
}

// Priority 实现 ecs.System
func (s *AimSystem) Priority() int {
	return config.PriorityAim
}

// Update 实现 ecs.System
func (s *AimSystem) Update(deltaTime float64) {
	if s.input == nil {
		return
	}
	for _, id := range ecs.GetEntitiesWith2[*components.AimComponent, *components.TransformComponent](s.entityManager) {
		aim, _ := ecs.GetComponent[*components.AimComponent](s.entityManager, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		transform.Position = s.input.AimTarget()
		aim.Firing = s.input.FireHeld()
	}
}

// findAim 返回瞄准点实体的组件；没有瞄准点时 ok 为 false
func findAim(em *ecs.EntityManager) (*components.AimComponent, *components.TransformComponent, bool) {
	ids := ecs.GetEntitiesWith2[*components.AimComponent, *components.TransformComponent](em)
	if len(ids) == 0 {
		return nil, nil, false
	}
	aim, _ := ecs.GetComponent[*components.AimComponent](em, ids[0])
	transform, _ := ecs.GetComponent[*components.TransformComponent](em, ids[0])
	return aim, transform, true
}

// findPlayer 返回玩家实体；没有玩家时返回 ecs.InvalidEntity
func findPlayer(em *ecs.EntityManager) ecs.EntityID {
	ids := ecs.GetEntitiesWith3[*components.PlayerComponent, *components.CharacterComponent, *components.TransformComponent](em)
	if len(ids) == 0 {
		return ecs.InvalidEntity
	}
	return ids[0]
}

// findCamera 返回镜头组件
func findCamera(em *ecs.EntityManager) (*components.CameraComponent, bool) {
	ids := ecs.GetEntitiesWith1[*components.CameraComponent](em)
	if len(ids) == 0 {
		return nil, false
	}
	return ecs.GetComponent[*components.CameraComponent](em, ids[0])
}
