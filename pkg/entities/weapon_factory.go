package entities

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/gonewx/prison/pkg/components"
	"github.com/gonewx/prison/pkg/config"
	"github.com/gonewx/prison/pkg/ecs"
	"github.com/gonewx/prison/pkg/physics"
)

// WeaponFactory 按武器配置创建武器与子弹
type WeaponFactory struct {
	em      *ecs.EntityManager
	world   *physics.World
	weapons *config.WeaponsConfig
	logger  *zap.Logger
}

// NewWeaponFactory 创建武器工厂
func NewWeaponFactory(em *ecs.EntityManager, world *physics.World, weapons *config.WeaponsConfig, logger *zap.Logger) (*WeaponFactory, error) {
	if em == nil || world == nil {
		return nil, ErrNilManager
	}
	if weapons == nil {
		weapons = config.DefaultWeaponsConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WeaponFactory{em: em, world: world, weapons: weapons, logger: logger.Named("WeaponFactory")}, nil
}

// Count 武器数量
func (f *WeaponFactory) Count() int {
	return len(f.weapons.Weapons)
}

// Config 第 slot 把武器的配置
func (f *WeaponFactory) Config(slot int) (config.WeaponConfig, error) {
	if slot < 0 || slot >= len(f.weapons.Weapons) {
		return config.WeaponConfig{}, fmt.Errorf("%w: weapon slot %d out of range", config.ErrInvalidConfig, slot)
	}
	return f.weapons.Weapons[slot], nil
}

// NewWeapon 创建第 slot 把武器（未装备、隐藏）
func (f *WeaponFactory) NewWeapon(slot int) (ecs.EntityID, error) {
	cfg, err := f.Config(slot)
	if err != nil {
		return ecs.InvalidEntity, err
	}

	id := f.em.CreateEntity()
	if err := f.assembleWeapon(id, slot, cfg); err != nil {
		f.em.RemoveEntity(id)
		return ecs.InvalidEntity, fmt.Errorf("failed to create weapon %s: %w", cfg.Name, err)
	}
	return id, nil
}

// NewWeapons 按配置顺序创建全部武器
func (f *WeaponFactory) NewWeapons() ([]ecs.EntityID, error) {
	ids := make([]ecs.EntityID, 0, f.Count())
	for slot := range f.weapons.Weapons {
		id, err := f.NewWeapon(slot)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (f *WeaponFactory) assembleWeapon(id ecs.EntityID, slot int, cfg config.WeaponConfig) error {
	if _, err := obtain[components.TransformComponent](f.em, id); err != nil {
		return err
	}

	sprite, err := obtain[components.SpriteComponent](f.em, id)
	if err != nil {
		return err
	}
	sprite.Region = cfg.Region
	sprite.Size = cfg.Size.Vector()
	sprite.Origin = cfg.Origin.Vector()
	sprite.ZIndex = config.ZIndexWeapon
	sprite.Hidden = true

	weapon, err := obtain[components.WeaponComponent](f.em, id)
	if err != nil {
		return err
	}
	weapon.Name = cfg.Name
	weapon.Slot = slot
	weapon.Offset = cfg.Offset.Vector()
	weapon.Muzzle = cfg.Muzzle.Vector()
	weapon.Cooldown = cfg.Cooldown
	weapon.CooldownTimer = cfg.Cooldown
	weapon.RumblePower = cfg.Rumble.Power
	weapon.RumbleDuration = cfg.Rumble.Duration
	return nil
}

// NewBullet 创建第 slot 把武器的一颗空闲子弹（隐藏、刚体不在物理世界中）
// 由子弹池在初始化时批量调用
func (f *WeaponFactory) NewBullet(slot int) (ecs.EntityID, error) {
	cfg, err := f.Config(slot)
	if err != nil {
		return ecs.InvalidEntity, err
	}

	id := f.em.CreateEntity()
	if err := f.assembleBullet(id, slot, cfg.Bullet); err != nil {
		f.em.RemoveEntity(id)
		return ecs.InvalidEntity, fmt.Errorf("failed to create %s bullet: %w", cfg.Name, err)
	}
	return id, nil
}

// BulletCreator 返回创建第 slot 把武器子弹的函数，交给子弹池使用
func (f *WeaponFactory) BulletCreator(slot int) func() (ecs.EntityID, error) {
	return func() (ecs.EntityID, error) {
		return f.NewBullet(slot)
	}
}

func (f *WeaponFactory) assembleBullet(id ecs.EntityID, slot int, cfg config.BulletConfig) error {
	if _, err := obtain[components.TransformComponent](f.em, id); err != nil {
		return err
	}

	size := cfg.Size.Vector()
	sprite, err := obtain[components.SpriteComponent](f.em, id)
	if err != nil {
		return err
	}
	sprite.Region = cfg.Region
	sprite.Size = size
	sprite.Origin = size.Mult(0.5)
	sprite.ZIndex = config.ZIndexBullet
	sprite.Hidden = true

	bullet, err := obtain[components.BulletComponent](f.em, id)
	if err != nil {
		return err
	}
	bullet.Speed = cfg.Speed
	bullet.Damage = cfg.Damage
	bullet.TimeToLive = cfg.TimeToLive
	bullet.Pool = slot

	phys, err := obtain[components.PhysicsComponent](f.em, id)
	if err != nil {
		return err
	}
	phys.Body = f.world.CreateBody(physics.BodyDef{
		Type:     physics.BodyDynamic,
		HalfSize: size.Mult(0.5),
		Density:  1,
		Sensor:   true,
		Filter:   physics.BulletFilter,
		Owner:    id,
		Inactive: true,
	})
	return nil
}
