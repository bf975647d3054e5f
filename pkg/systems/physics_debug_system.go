package systems

import (
	"github.com/jakecoffman/cp"

	"github.com/gonewx/prison/pkg/config"
	"github.com/gonewx/prison/pkg/physics"
)

// DebugShape 调试叠加层绘制的一个碰撞盒
type DebugShape struct {
	Position cp.Vector
	HalfSize cp.Vector
	// Angle 弧度
	Angle    float64
	Category physics.Category
	Sensor   bool
}

// PhysicsDebugSystem 收集物理世界中参与模拟的碰撞盒，供调试叠加层绘制
type PhysicsDebugSystem struct {
	world   *physics.World
	enabled bool
	shapes  []DebugShape
}

// NewPhysicsDebugSystem 创建物理调试系统，enabled 为 false 时不收集
func NewPhysicsDebugSystem(world *physics.World, enabled bool) *PhysicsDebugSystem {
	return &PhysicsDebugSystem{world: world, enabled: enabled}
}

// Priority 实现 ecs.System
func (s *PhysicsDebugSystem) Priority() int {
	return config.PriorityPhysicsDebug
}

// SetEnabled 打开或关闭收集
func (s *PhysicsDebugSystem) SetEnabled(enabled bool) {
	s.enabled = enabled
	if !enabled {
		s.shapes = s.shapes[:0]
	}
}

// Enabled 是否在收集
func (s *PhysicsDebugSystem) Enabled() bool {
	return s.enabled
}

// Update 实现 ecs.System
func (s *PhysicsDebugSystem) Update(deltaTime float64) {
	s.shapes = s.shapes[:0]
	if !s.enabled {
		return
	}
	for _, body := range s.world.Bodies() {
		if !body.IsActive() {
			continue
		}
		s.shapes = append(s.shapes, DebugShape{
			Position: body.Position(),
			HalfSize: body.HalfSize(),
			Angle:    body.Angle(),
			Category: body.Filter().Category,
			Sensor:   body.IsSensor(),
		})
	}
}

// Shapes 本帧收集到的碰撞盒
func (s *PhysicsDebugSystem) Shapes() []DebugShape {
	return s.shapes
}
