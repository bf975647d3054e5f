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

// BulletSystem 发射子弹、推进飞行中的子弹并回收过期或命中的子弹
type BulletSystem struct {
	entityManager *ecs.EntityManager
	pools         []*BulletPool
	logger        *zap.Logger
}

// NewBulletSystem 创建子弹系统，pools[i] 是第 i 把武器的子弹池
func NewBulletSystem(em *ecs.EntityManager, pools []*BulletPool, log *zap.Logger) *BulletSystem {
	return &BulletSystem{
		entityManager: em,
		pools:         pools,
		logger:        logger.OrNop(log).Named("BulletSystem"),
	}
}

// Priority 实现 ecs.System
func (s *BulletSystem) Priority() int {
	return config.PriorityBullet
}

// Pool 第 index 个子弹池
func (s *BulletSystem) Pool(index int) (*BulletPool, bool) {
	if index < 0 || index >= len(s.pools) {
		return nil, false
	}
	return s.pools[index], true
}

// Spawn 从第 pool 个子弹池取出一颗子弹，放到 position 并沿 angle（弧度）方向发射
//
// 返回:
//   - 子弹实体；池下标越界时返回 ecs.InvalidEntity, false
func (s *BulletSystem) Spawn(pool int, position cp.Vector, angle float64) (ecs.EntityID, bool) {
	p, ok := s.Pool(pool)
	if !ok {
		s.logger.Debug("spawn from unknown pool ignored", zap.Int("pool", pool))
		return ecs.InvalidEntity, false
	}
	id := p.Obtain()

	bullet, ok := ecs.GetComponent[*components.BulletComponent](s.entityManager, id)
	if !ok {
		p.Free(id)
		return ecs.InvalidEntity, false
	}
	bullet.Active = true
	bullet.LiveTime = 0
	bullet.Destroyed = false

	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok {
		sprite.Hidden = false
	}
	if transform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, id); ok {
		transform.Position = position
		transform.Rotation = angle * 180 / math.Pi
	}
	if phys, ok := ecs.GetComponent[*components.PhysicsComponent](s.entityManager, id); ok && phys.Body != nil {
		phys.Body.SetTransform(position, angle)
		phys.Body.SetActive(true)
		phys.Body.SetLinearVelocity(cp.ForAngle(angle).Mult(bullet.Speed))
	}
	return id, true
}

// Update 实现 ecs.System
func (s *BulletSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.BulletComponent, *components.PhysicsComponent](s.entityManager)
	for _, id := range entities {
		bullet, _ := ecs.GetComponent[*components.BulletComponent](s.entityManager, id)
		if !bullet.Active {
			continue
		}
		bullet.LiveTime += deltaTime

		if bullet.Expired() || bullet.Destroyed {
			if p, ok := s.Pool(bullet.Pool); ok {
				p.Free(id)
			}
			// 已回收的子弹本帧不再设置速度
			continue
		}

		phys, _ := ecs.GetComponent[*components.PhysicsComponent](s.entityManager, id)
		if phys.Body != nil {
			phys.Body.SetLinearVelocity(cp.ForAngle(phys.Body.Angle()).Mult(bullet.Speed))
		}
	}
}

// ActiveBullets 所有池中飞行中的子弹总数
func (s *BulletSystem) ActiveBullets() int {
	total := 0
	for _, p := range s.pools {
		total += p.ActiveCount()
	}
	return total
}

// Close 回收全部子弹
func (s *BulletSystem) Close() {
	for _, p := range s.pools {
		p.Close()
	}
}
