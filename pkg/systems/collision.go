package systems

import (
	"go.uber.org/zap"

	"github.com/gonewx/prison/pkg/components"
	"github.com/gonewx/prison/pkg/ecs"
	"github.com/gonewx/prison/pkg/logger"
	"github.com/gonewx/prison/pkg/physics"
)

// BulletEnvironmentHandler 子弹撞上墙体：标记子弹已销毁，由 BulletSystem 回收
type BulletEnvironmentHandler struct {
	entityManager *ecs.EntityManager
}

// BeginContact 实现 physics.ContactHandler
func (h *BulletEnvironmentHandler) BeginContact(a, b physics.Contact) {
	bulletContact, _ := physics.Order(physics.CategoryBullets, a, b)
	if bullet, ok := liveBullet(h.entityManager, bulletContact.Entity); ok {
		bullet.Destroyed = true
	}
}

// HitBoxBulletHandler 子弹命中受击判定盒：扣除子弹伤害、设置受击标记、标记子弹已销毁
//
// 同一步内一颗子弹可能同时接触多个形状，已销毁的子弹不再造成伤害。
type HitBoxBulletHandler struct {
	entityManager *ecs.EntityManager
	logger        *zap.Logger
}

// BeginContact 实现 physics.ContactHandler
func (h *HitBoxBulletHandler) BeginContact(a, b physics.Contact) {
	bulletContact, target := physics.Order(physics.CategoryBullets, a, b)
	bullet, ok := liveBullet(h.entityManager, bulletContact.Entity)
	if !ok {
		return
	}
	bullet.Destroyed = true
	if ApplyDamage(h.entityManager, target.Entity, bullet.Damage) {
		h.logger.Debug("bullet hit",
			zap.Uint64("target", uint64(target.Entity)),
			zap.Stringer("category", target.Category),
			zap.Float64("damage", bullet.Damage))
	}
}

// RegisterContactHandlers 向物理世界注册玩法需要的接触处理器
//
// 子弹只对敌人的判定盒生效；玩家的判定盒虽然会与子弹接触，但没有处理器。
func RegisterContactHandlers(world *physics.World, em *ecs.EntityManager, log *zap.Logger) {
	world.RegisterContactHandler(physics.CategoryBullets, physics.CategoryEnvironment,
		&BulletEnvironmentHandler{entityManager: em})
	world.RegisterContactHandler(physics.CategoryEnemyHit, physics.CategoryBullets,
		&HitBoxBulletHandler{entityManager: em, logger: logger.OrNop(log).Named("HitBoxBullet")})
}

// liveBullet 返回飞行中且未销毁的子弹组件
func liveBullet(em *ecs.EntityManager, id ecs.EntityID) (*components.BulletComponent, bool) {
	bullet, ok := ecs.GetComponent[*components.BulletComponent](em, id)
	if !ok || !bullet.Active || bullet.Destroyed {
		return nil, false
	}
	return bullet, true
}
