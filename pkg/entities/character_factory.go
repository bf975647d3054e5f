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

// 角色碰撞体尺寸（缩放为 1 时）
var (
	characterBodyHalfSize = cp.Vector{X: 0.15, Y: 0.1}
	characterHitHalfSize  = cp.Vector{X: 0.15, Y: 0.25}
	// characterBodyOffset 身体碰撞盒在脚下，变换位置比刚体高出该偏移
	characterBodyOffset = cp.Vector{X: 0, Y: 0.1}
)

// 密度：敌人更重，玩家推不动
const (
	playerDensity = 1.0
	enemyDensity  = 2.0
)

// characterKind 角色种类对应的碰撞参数
type characterKind struct {
	bodyFilter physics.Filter
	hitFilter  physics.Filter
	density    float64
}

var (
	playerKind = characterKind{bodyFilter: physics.PlayerBodyFilter, hitFilter: physics.PlayerHitBoxFilter, density: playerDensity}
	enemyKind  = characterKind{bodyFilter: physics.EnemyBodyFilter, hitFilter: physics.EnemyHitBoxFilter, density: enemyDensity}
)

// enemyArchetypes 关卡中的敌人类型 -> 外观原型
var enemyArchetypes = map[string]string{
	config.EnemyPrisoner:  "zombie_prisoner",
	config.EnemyPoliceman: "zombie_policeman",
}

// CharacterFactory 创建玩家和敌人
type CharacterFactory struct {
	em         *ecs.EntityManager
	world      *physics.World
	gameplay   *config.GameplayConfig
	archetypes *config.ArchetypesConfig
	logger     *zap.Logger
}

// NewCharacterFactory 创建角色工厂
func NewCharacterFactory(em *ecs.EntityManager, world *physics.World, gameplay *config.GameplayConfig, archetypes *config.ArchetypesConfig, logger *zap.Logger) (*CharacterFactory, error) {
	if em == nil || world == nil {
		return nil, ErrNilManager
	}
	if gameplay == nil {
		gameplay = config.DefaultGameplayConfig()
	}
	if archetypes == nil {
		archetypes = config.DefaultArchetypesConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CharacterFactory{
		em:         em,
		world:      world,
		gameplay:   gameplay,
		archetypes: archetypes,
		logger:     logger.Named("CharacterFactory"),
	}, nil
}

// NewPlayer 在 spawn 处创建玩家（囚犯外观，空手）
func (f *CharacterFactory) NewPlayer(spawn cp.Vector) (ecs.EntityID, error) {
	id, err := f.newCharacter(f.gameplay.Player.Archetype, playerKind, spawn, 1)
	if err != nil {
		return ecs.InvalidEntity, fmt.Errorf("failed to create player: %w", err)
	}

	character, _ := ecs.GetComponent[*components.CharacterComponent](f.em, id)
	character.Speed = f.gameplay.Player.Speed
	character.Health = f.gameplay.Player.Health

	if _, err := obtain[components.PlayerComponent](f.em, id); err != nil {
		f.em.RemoveEntity(id)
		return ecs.InvalidEntity, fmt.Errorf("failed to create player: %w", err)
	}

	f.logger.Debug("player created", zap.Uint64("entity", uint64(id)), zap.Float64("x", spawn.X), zap.Float64("y", spawn.Y))
	return id, nil
}

// NewEnemy 创建敌人
//
// 参数:
//   - kind: config.EnemyPrisoner 或 config.EnemyPoliceman
//   - position: 出生位置
//   - size: 统一缩放
func (f *CharacterFactory) NewEnemy(kind string, position cp.Vector, size float64) (ecs.EntityID, error) {
	archetype, ok := enemyArchetypes[kind]
	if !ok {
		return ecs.InvalidEntity, fmt.Errorf("%w: unknown enemy type %q", config.ErrInvalidConfig, kind)
	}
	if size <= 0 {
		size = 1
	}

	id, err := f.newCharacter(archetype, enemyKind, position, size)
	if err != nil {
		return ecs.InvalidEntity, fmt.Errorf("failed to create enemy %s: %w", kind, err)
	}

	character, _ := ecs.GetComponent[*components.CharacterComponent](f.em, id)
	character.Speed = f.gameplay.Enemy.Speed
	character.Health = f.gameplay.Enemy.Health

	enemy, err := obtain[components.EnemyComponent](f.em, id)
	if err != nil {
		f.em.RemoveEntity(id)
		return ecs.InvalidEntity, fmt.Errorf("failed to create enemy %s: %w", kind, err)
	}
	enemy.DetectRadius = f.gameplay.Enemy.DetectRadius
	enemy.AttackCooldown = f.gameplay.Enemy.AttackCooldown

	f.logger.Debug("enemy created", zap.String("type", kind), zap.Uint64("entity", uint64(id)))
	return id, nil
}

// NewZombiePrisoner 创建僵尸囚犯
func (f *CharacterFactory) NewZombiePrisoner(position cp.Vector, size float64) (ecs.EntityID, error) {
	return f.NewEnemy(config.EnemyPrisoner, position, size)
}

// NewZombiePoliceman 创建僵尸警察
func (f *CharacterFactory) NewZombiePoliceman(position cp.Vector, size float64) (ecs.EntityID, error) {
	return f.NewEnemy(config.EnemyPoliceman, position, size)
}

// newCharacter 组装角色共有的组件：变换、精灵、动画、角色、物理
func (f *CharacterFactory) newCharacter(archetypeName string, kind characterKind, position cp.Vector, scale float64) (ecs.EntityID, error) {
	archetype, err := f.archetypes.Get(archetypeName)
	if err != nil {
		return ecs.InvalidEntity, err
	}
	clips, err := BuildClips(archetype)
	if err != nil {
		return ecs.InvalidEntity, fmt.Errorf("archetype %q: %w", archetypeName, err)
	}

	id := f.em.CreateEntity()
	if err := f.assembleCharacter(id, clips, kind, position, scale); err != nil {
		f.em.RemoveEntity(id)
		return ecs.InvalidEntity, err
	}
	return id, nil
}

func (f *CharacterFactory) assembleCharacter(id ecs.EntityID, clips map[components.CharacterState]*components.AnimationClip, kind characterKind, position cp.Vector, scale float64) error {
	transform, err := obtain[components.TransformComponent](f.em, id)
	if err != nil {
		return err
	}
	transform.Position = position
	transform.Scale = cp.Vector{X: scale, Y: scale}

	sprite, err := obtain[components.SpriteComponent](f.em, id)
	if err != nil {
		return err
	}
	sprite.ZIndex = config.ZIndexCharacter

	animation, err := obtain[components.AnimationComponent](f.em, id)
	if err != nil {
		return err
	}
	animation.Clips = clips
	sprite.Region = animation.CurrentFrame()

	if _, err := obtain[components.CharacterComponent](f.em, id); err != nil {
		return err
	}

	phys, err := obtain[components.PhysicsComponent](f.em, id)
	if err != nil {
		return err
	}
	phys.Body = f.world.CreateBody(physics.BodyDef{
		Type:          physics.BodyDynamic,
		Position:      position,
		HalfSize:      characterBodyHalfSize.Mult(scale),
		Density:       kind.density,
		FixedRotation: true,
		Filter:        kind.bodyFilter,
		Owner:         id,
	})
	phys.BodyOffset = characterBodyOffset.Mult(scale)
	phys.HitBox = f.world.CreateBody(physics.BodyDef{
		Type:     physics.BodyKinematic,
		Position: position,
		HalfSize: characterHitHalfSize.Mult(scale),
		Filter:   kind.hitFilter,
		Owner:    id,
	})
	return nil
}
