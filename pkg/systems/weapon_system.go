package systems

import (
	"math"

	"github.com/jakecoffman/cp"
	"go.uber.org/zap"

	"github.com/gonewx/prison/pkg/components"
	"github.com/gonewx/prison/pkg/config"
	"github.com/gonewx/prison/pkg/ecs"
	"github.com/gonewx/prison/pkg/logger"
)

// BulletSpawner 发射子弹的一方（BulletSystem）
type BulletSpawner interface {
	Spawn(pool int, position cp.Vector, angle float64) (ecs.EntityID, bool)
}

// WeaponSystem 让装备中的武器跟随玩家指向瞄准点，并在冷却结束且按住开火键时发射子弹
type WeaponSystem struct {
	entityManager *ecs.EntityManager
	bullets       BulletSpawner
	logger        *zap.Logger
}

// NewWeaponSystem 创建武器系统
func NewWeaponSystem(em *ecs.EntityManager, bullets BulletSpawner, log *zap.Logger) *WeaponSystem {
	return &WeaponSystem{
		entityManager: em,
		bullets:       bullets,
		logger:        logger.OrNop(log).Named("WeaponSystem"),
	}
}

// Priority 实现 ecs.System
func (s *WeaponSystem) Priority() int {
	return config.PriorityWeapon
}

// Update 实现 ecs.System
func (s *WeaponSystem) Update(deltaTime float64) {
	// 未装备的武器不显示
	for _, id := range ecs.GetEntitiesWith2[*components.WeaponComponent, *components.SpriteComponent](s.entityManager) {
		weapon, _ := ecs.GetComponent[*components.WeaponComponent](s.entityManager, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		sprite.Hidden = !weapon.Equipped
	}

	playerID := findPlayer(s.entityManager)
	if playerID == ecs.InvalidEntity {
		return
	}
	player, _ := ecs.GetComponent[*components.PlayerComponent](s.entityManager, playerID)
	if !player.HasWeapon() {
		return
	}
	weapon, ok := ecs.GetComponent[*components.WeaponComponent](s.entityManager, player.CurrentWeapon)
	if !ok {
		return
	}
	playerTransform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, playerID)
	weaponTransform, hasTransform := ecs.GetComponent[*components.TransformComponent](s.entityManager, player.CurrentWeapon)
	if hasTransform {
		weaponTransform.Position = playerTransform.Position.Add(weapon.Offset)
	}

	weapon.CooldownTimer += deltaTime

	aim, aimTransform, ok := findAim(s.entityManager)
	if !ok {
		return
	}
	toAim := aimTransform.Position.Sub(playerTransform.Position)
	if toAim.LengthSq() == 0 {
		// 瞄准点与玩家重合，方向无定义：不旋转也不开火
		return
	}
	direction := toAim.Normalize()
	angle := direction.ToAngle()
	aimingLeft := direction.X < 0

	if aim.Firing && weapon.Ready() {
		weapon.CooldownTimer = 0
		s.fire(player.WeaponIndex, weapon, playerTransform.Position, direction, angle, aimingLeft)
	}

	if hasTransform {
		weaponTransform.Rotation = angle * 180 / math.Pi
	}
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, player.CurrentWeapon); ok {
		sprite.FlipY = aimingLeft
	}
}

// fire 计算枪口位置并发射一颗子弹，同时触发镜头震动
//
// 枪口偏移按武器朝右定义；指向左侧时武器垂直翻转，枪口的 y 偏移随之取反。
func (s *WeaponSystem) fire(pool int, weapon *components.WeaponComponent, origin, direction cp.Vector, angle float64, aimingLeft bool) {
	muzzle := weapon.Muzzle
	if aimingLeft {
		muzzle.Y = -muzzle.Y
	}
	position := muzzle.Rotate(direction).Add(origin).Add(weapon.Offset)

	if s.bullets != nil {
		if _, ok := s.bullets.Spawn(pool, position, angle); !ok {
			s.logger.Debug("no bullet spawned", zap.String("weapon", weapon.Name), zap.Int("pool", pool))
		}
	}
	if camera, ok := findCamera(s.entityManager); ok {
		camera.Rumble(weapon.RumbleDuration, weapon.RumblePower)
	}
}
