package entities

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"go.uber.org/zap"

	"github.com/gonewx/prison/pkg/components"
	"github.com/gonewx/prison/pkg/config"
	"github.com/gonewx/prison/pkg/ecs"
	"github.com/gonewx/prison/pkg/physics"
)

// propDef 场景道具的外观与碰撞体
type propDef struct {
	region string
	// size 精灵尺寸
	size cp.Vector
	// colliderHalfSize 碰撞盒半尺寸，碰撞盒只覆盖道具底部
	colliderHalfSize cp.Vector
	// colliderOffset 碰撞盒中心相对摆放位置的偏移
	colliderOffset cp.Vector
}

var propDefs = map[string]propDef{
	config.PropBarrel: {
		region:           "barrel",
		size:             cp.Vector{X: 0.5, Y: 0.75},
		colliderHalfSize: cp.Vector{X: 0.2, Y: 0.1},
		colliderOffset:   cp.Vector{X: 0, Y: -0.1},
	},
	config.PropLocker: {
		region:           "locker",
		size:             cp.Vector{X: 0.6, Y: 1},
		colliderHalfSize: cp.Vector{X: 0.2, Y: 0.15},
		colliderOffset:   cp.Vector{X: -0.05, Y: 0.25},
	},
}

// MapFactory 创建关卡、墙体和场景道具
type MapFactory struct {
	em     *ecs.EntityManager
	world  *physics.World
	logger *zap.Logger
}

// NewMapFactory 创建地图工厂
func NewMapFactory(em *ecs.EntityManager, world *physics.World, logger *zap.Logger) (*MapFactory, error) {
	if em == nil || world == nil {
		return nil, ErrNilManager
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MapFactory{em: em, world: world, logger: logger.Named("MapFactory")}, nil
}

// NewLevel 创建保存关卡信息的实体
func (f *MapFactory) NewLevel(level *config.LevelConfig) ecs.EntityID {
	id := f.em.CreateEntity()
	ecs.AddComponent(f.em, id, &components.LevelComponent{
		Name:   level.Name,
		Width:  level.Width,
		Height: level.Height,
	})
	return id
}

// NewWall 创建矩形墙体（静态刚体），rect 的 (X, Y) 为左下角
func (f *MapFactory) NewWall(rect config.RectConfig) (ecs.EntityID, error) {
	halfSize := cp.Vector{X: rect.Width / 2, Y: rect.Height / 2}
	center := cp.Vector{X: rect.X + halfSize.X, Y: rect.Y + halfSize.Y}

	id := f.em.CreateEntity()
	phys, err := obtain[components.PhysicsComponent](f.em, id)
	if err != nil {
		f.em.RemoveEntity(id)
		return ecs.InvalidEntity, fmt.Errorf("failed to create wall: %w", err)
	}
	phys.Body = f.world.CreateBody(physics.BodyDef{
		Type:     physics.BodyStatic,
		Position: center,
		HalfSize: halfSize,
		Filter:   physics.WallFilter,
		Owner:    id,
	})
	return id, nil
}

// NewProp 在 position 处摆放道具（barrel 或 locker）
// 精灵底边对齐 position，碰撞盒只挡住角色，子弹可以穿过
func (f *MapFactory) NewProp(kind string, position cp.Vector) (ecs.EntityID, error) {
	def, ok := propDefs[kind]
	if !ok {
		return ecs.InvalidEntity, fmt.Errorf("%w: unknown prop type %q", config.ErrInvalidConfig, kind)
	}

	id := f.em.CreateEntity()
	if err := f.assembleProp(id, def, position); err != nil {
		f.em.RemoveEntity(id)
		return ecs.InvalidEntity, fmt.Errorf("failed to create %s: %w", kind, err)
	}
	return id, nil
}

// NewBarrel 摆放油桶
func (f *MapFactory) NewBarrel(position cp.Vector) (ecs.EntityID, error) {
	return f.NewProp(config.PropBarrel, position)
}

// NewLocker 摆放储物柜
func (f *MapFactory) NewLocker(position cp.Vector) (ecs.EntityID, error) {
	return f.NewProp(config.PropLocker, position)
}

func (f *MapFactory) assembleProp(id ecs.EntityID, def propDef, position cp.Vector) error {
	transform, err := obtain[components.TransformComponent](f.em, id)
	if err != nil {
		return err
	}
	transform.Position = position.Add(cp.Vector{X: 0, Y: def.size.Y / 2})

	sprite, err := obtain[components.SpriteComponent](f.em, id)
	if err != nil {
		return err
	}
	sprite.Region = def.region
	sprite.Size = def.size
	sprite.Origin = def.size.Mult(0.5)
	sprite.ZIndex = config.ZIndexProp

	phys, err := obtain[components.PhysicsComponent](f.em, id)
	if err != nil {
		return err
	}
	bodyPosition := position.Add(def.colliderOffset)
	phys.Body = f.world.CreateBody(physics.BodyDef{
		Type:     physics.BodyStatic,
		Position: bodyPosition,
		HalfSize: def.colliderHalfSize,
		Filter:   physics.PropFilter,
		Owner:    id,
	})
	phys.BodyOffset = transform.Position.Sub(bodyPosition)
	return nil
}
