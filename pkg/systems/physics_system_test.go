package systems

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gonewx/prison/pkg/components"
	"github.com/gonewx/prison/pkg/ecs"
	"github.com/gonewx/prison/pkg/physics"
)

// newMovingBody 创建一个带偏移和判定盒的动态刚体实体
func newMovingBody(t *testing.T, em *ecs.EntityManager, world *physics.World, position, velocity cp.Vector) ecs.EntityID {
	t.Helper()
	id := em.CreateEntity()
	transform := &components.TransformComponent{}
	transform.Reset()
	em.AddComponent(id, transform)

	phys := &components.PhysicsComponent{}
	phys.Reset()
	phys.Body = world.CreateBody(physics.BodyDef{
		Type:          physics.BodyDynamic,
		Position:      position,
		HalfSize:      cp.Vector{X: 0.1, Y: 0.1},
		Density:       1,
		FixedRotation: true,
		Filter:        physics.PlayerBodyFilter,
		Owner:         id,
	})
	phys.BodyOffset = cp.Vector{X: 0, Y: 0.5}
	phys.HitBox = world.CreateBody(physics.BodyDef{
		Type:     physics.BodyKinematic,
		Position: position,
		HalfSize: cp.Vector{X: 0.1, Y: 0.2},
		Filter:   physics.PlayerHitBoxFilter,
		Owner:    id,
	})
	phys.HitBoxOffset = cp.Vector{X: 0.25, Y: 0}
	phys.Body.SetLinearVelocity(velocity)
	em.AddComponent(id, phys)
	require.True(t, phys.Body.IsActive())
	return id
}

func TestPhysicsSystem_SyncAfterFixedSteps(t *testing.T) {
	em := ecs.NewEntityManager()
	world, err := physics.NewWorld(physics.DefaultConfig(), nil)
	require.NoError(t, err)
	t.Cleanup(world.Close)

	start := cp.Vector{X: 1, Y: -2}
	velocity := cp.Vector{X: 2, Y: 0.5}
	id := newMovingBody(t, em, world, start, velocity)
	system := NewPhysicsSystem(em, world)

	const n = 45
	for i := 0; i < n; i++ {
		system.Update(world.Step())
		assert.Equal(t, 1, system.LastSteps())
	}

	transform, _ := ecs.GetComponent[*components.TransformComponent](em, id)
	expected := start.Add(velocity.Mult(n * world.Step())).Add(cp.Vector{X: 0, Y: 0.5})
	assert.InDelta(t, expected.X, transform.Position.X, 1e-6)
	assert.InDelta(t, expected.Y, transform.Position.Y, 1e-6)
	assert.Zero(t, transform.Rotation)

	phys, _ := ecs.GetComponent[*components.PhysicsComponent](em, id)
	hitBox := phys.HitBox.Position()
	assert.InDelta(t, transform.Position.X+0.25, hitBox.X, 1e-9)
	assert.InDelta(t, transform.Position.Y, hitBox.Y, 1e-9)
	assert.Zero(t, phys.HitBox.Angle())
}

func TestPhysicsSystem_StepsOnlyWhenBankAllows(t *testing.T) {
	em := ecs.NewEntityManager()
	world, err := physics.NewWorld(physics.DefaultConfig(), nil)
	require.NoError(t, err)
	t.Cleanup(world.Close)
	system := NewPhysicsSystem(em, world)

	tests := []struct {
		dt    float64
		steps int
	}{
		{world.Step() / 2, 0},
		{world.Step() / 2, 1},
		{world.Step() * 2.5, 2},
		{world.Step() * 0.5, 1},
		{1, physics.DefaultMaxSteps},
		{world.Step() / 4, 0},
	}
	for i, tt := range tests {
		system.Update(tt.dt)
		assert.Equal(t, tt.steps, system.LastSteps(), "frame %d", i)
	}
}

func TestPhysicsSystem_SkipsStaticAndInactive(t *testing.T) {
	em := ecs.NewEntityManager()
	world, err := physics.NewWorld(physics.DefaultConfig(), nil)
	require.NoError(t, err)
	t.Cleanup(world.Close)

	id := newMovingBody(t, em, world, cp.Vector{}, cp.Vector{X: 1})
	phys, _ := ecs.GetComponent[*components.PhysicsComponent](em, id)
	phys.SetActive(false)

	staticID := em.CreateEntity()
	staticTransform := &components.TransformComponent{}
	staticTransform.Reset()
	staticTransform.Position = cp.Vector{X: 7, Y: 7}
	em.AddComponent(staticID, staticTransform)
	em.AddComponent(staticID, &components.PhysicsComponent{Body: world.CreateBody(physics.BodyDef{
		Type:     physics.BodyStatic,
		Position: cp.Vector{X: 1, Y: 1},
		HalfSize: cp.Vector{X: 1, Y: 1},
		Filter:   physics.PropFilter,
		Owner:    staticID,
	})})

	system := NewPhysicsSystem(em, world)
	for i := 0; i < 10; i++ {
		system.Update(world.Step())
	}

	transform, _ := ecs.GetComponent[*components.TransformComponent](em, id)
	assert.Equal(t, cp.Vector{}, transform.Position, "inactive bodies are not synced")
	assert.Equal(t, cp.Vector{X: 7, Y: 7}, staticTransform.Position, "static transforms are left alone")
}

func TestPhysicsSystem_RotationInDegrees(t *testing.T) {
	em := ecs.NewEntityManager()
	world, err := physics.NewWorld(physics.DefaultConfig(), nil)
	require.NoError(t, err)
	t.Cleanup(world.Close)

	id := newMovingBody(t, em, world, cp.Vector{}, cp.Vector{})
	phys, _ := ecs.GetComponent[*components.PhysicsComponent](em, id)
	phys.Body.SetTransform(cp.Vector{}, math.Pi/2)

	NewPhysicsSystem(em, world).Update(world.Step())

	transform, _ := ecs.GetComponent[*components.TransformComponent](em, id)
	assert.InDelta(t, 90, transform.Rotation, 1e-9)
}

func TestPhysicsDebug_CollectsActiveBodies(t *testing.T) {
	h := newHarness(t, cp.Vector{})
	h.run(1)

	shapes := h.physicsDebug.Shapes()
	// 玩家身体 + 玩家判定盒；空闲子弹不在物理世界中
	require.Len(t, shapes, 2)
	categories := []physics.Category{shapes[0].Category, shapes[1].Category}
	assert.ElementsMatch(t, []physics.Category{physics.CategoryPlayer, physics.CategoryPlayerHit}, categories)

	h.bulletSystem.Spawn(0, cp.Vector{X: 3}, 0)
	h.run(1)
	require.Len(t, h.physicsDebug.Shapes(), 3)
	sensors := 0
	for _, shape := range h.physicsDebug.Shapes() {
		if shape.Sensor {
			sensors++
			assert.Equal(t, physics.CategoryBullets, shape.Category)
		}
	}
	assert.Equal(t, 1, sensors)

	h.physicsDebug.SetEnabled(false)
	assert.False(t, h.physicsDebug.Enabled())
	h.run(1)
	assert.Empty(t, h.physicsDebug.Shapes())
}
