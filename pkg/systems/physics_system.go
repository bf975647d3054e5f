package systems

import (
	"math"

	"github.com/gonewx/prison/pkg/components"
	"github.com/gonewx/prison/pkg/config"
	"github.com/gonewx/prison/pkg/ecs"
	"github.com/gonewx/prison/pkg/physics"
)

// PhysicsSystem 按固定步长推进物理世界，每步之后把刚体位置同步回变换
//
// 变换位置 = 刚体位置 + BodyOffset，旋转 = 刚体角度（角度制）；
// 判定盒被放回变换位置（加 HitBoxOffset），旋转为零。
// 静态刚体和不在物理世界中的刚体不同步。
type PhysicsSystem struct {
	entityManager *ecs.EntityManager
	world         *physics.World
	lastSteps     int
}

// NewPhysicsSystem 创建物理系统
func NewPhysicsSystem(em *ecs.EntityManager, world *physics.World) *PhysicsSystem {
	return &PhysicsSystem{entityManager: em, world: world}
}

// Priority 实现 ecs.System
func (s *PhysicsSystem) Priority() int {
	return config.PriorityPhysics
}

// Update 实现 ecs.System
func (s *PhysicsSystem) Update(deltaTime float64) {
	s.lastSteps = s.world.Advance(deltaTime, s.sync)
}

// LastSteps 上一帧走的物理步数
func (s *PhysicsSystem) LastSteps() int {
	return s.lastSteps
}

func (s *PhysicsSystem) sync() {
	for _, id := range ecs.GetEntitiesWith2[*components.PhysicsComponent, *components.TransformComponent](s.entityManager) {
		phys, _ := ecs.GetComponent[*components.PhysicsComponent](s.entityManager, id)
		body := phys.Body
		if body == nil || body.IsStatic() || !body.IsActive() {
			continue
		}
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		transform.Position = body.Position().Add(phys.BodyOffset)
		transform.Rotation = body.Angle() * 180 / math.Pi
		if phys.HitBox != nil {
			phys.HitBox.SetTransform(transform.Position.Add(phys.HitBoxOffset), 0)
		}
	}
}
