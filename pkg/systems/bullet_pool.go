package systems

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/gonewx/prison/pkg/components"
	"github.com/gonewx/prison/pkg/ecs"
	"github.com/gonewx/prison/pkg/logger"
)

// ErrPoolCapacity 子弹池容量非法
var ErrPoolCapacity = errors.New("invalid bullet pool capacity")

// BulletPool 一把武器专用的固定容量子弹池
//
// 创建时一次性造好全部子弹实体（隐藏、刚体不在物理世界中），之后从不扩容。
// 空闲子弹后进先出复用；池空时强制回收最早发射的子弹，Obtain 永远成功，
// 同时在飞行中的子弹数不会超过容量。
type BulletPool struct {
	entityManager *ecs.EntityManager
	slot          int
	bullets       []ecs.EntityID
	free          []ecs.EntityID
	// active 按发射先后排列，active[0] 最早
	active []ecs.EntityID
	logger *zap.Logger
}

// NewBulletPool 创建第 slot 把武器的子弹池
//
// 参数:
//   - em: 实体管理器
//   - slot: 武器下标，写入每颗子弹的 BulletComponent.Pool
//   - capacity: 子弹数量，必须为正
//   - create: 创建一颗空闲子弹实体的函数（见 entities.WeaponFactory.BulletCreator）
//   - log: 日志
//
// 返回:
//   - 容量非法返回 ErrPoolCapacity，创建子弹失败时返回其错误
func NewBulletPool(em *ecs.EntityManager, slot, capacity int, create func() (ecs.EntityID, error), log *zap.Logger) (*BulletPool, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: weapon %d capacity %d", ErrPoolCapacity, slot, capacity)
	}
	p := &BulletPool{
		entityManager: em,
		slot:          slot,
		bullets:       make([]ecs.EntityID, 0, capacity),
		free:          make([]ecs.EntityID, 0, capacity),
		active:        make([]ecs.EntityID, 0, capacity),
		logger:        logger.OrNop(log).Named("BulletPool"),
	}
	for i := 0; i < capacity; i++ {
		id, err := create()
		if err != nil {
			return nil, fmt.Errorf("failed to fill bullet pool %d: %w", slot, err)
		}
		p.bullets = append(p.bullets, id)
	}
	// 逆序压栈，第一次 Obtain 拿到最先创建的子弹
	for i := len(p.bullets) - 1; i >= 0; i-- {
		p.free = append(p.free, p.bullets[i])
	}
	p.logger.Debug("bullet pool created", zap.Int("weapon", slot), zap.Int("capacity", capacity))
	return p, nil
}

// Slot 池对应的武器下标
func (p *BulletPool) Slot() int {
	return p.slot
}

// Capacity 池容量
func (p *BulletPool) Capacity() int {
	return len(p.bullets)
}

// ActiveCount 飞行中的子弹数
func (p *BulletPool) ActiveCount() int {
	return len(p.active)
}

// Available 空闲子弹数
func (p *BulletPool) Available() int {
	return len(p.free)
}

// Bullets 池中全部子弹实体
func (p *BulletPool) Bullets() []ecs.EntityID {
	return p.bullets
}

// Obtain 取出一颗子弹并登记为飞行中
// 池空时回收最早发射的子弹重新使用
func (p *BulletPool) Obtain() ecs.EntityID {
	var id ecs.EntityID
	if n := len(p.free); n > 0 {
		id = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		id = p.active[0]
		p.active = p.active[1:]
		p.retire(id)
		p.logger.Warn("bullet pool exhausted, reusing oldest bullet",
			zap.Int("weapon", p.slot),
			zap.Uint64("bullet", uint64(id)))
	}
	p.active = append(p.active, id)
	return id
}

// Free 回收一颗飞行中的子弹：隐藏、移出物理世界、清除发射状态
// 不是本池飞行中的子弹时忽略
func (p *BulletPool) Free(id ecs.EntityID) {
	for i, activeID := range p.active {
		if activeID == id {
			p.active = append(p.active[:i], p.active[i+1:]...)
			p.retire(id)
			p.free = append(p.free, id)
			return
		}
	}
}

// Close 回收所有飞行中的子弹
func (p *BulletPool) Close() {
	for len(p.active) > 0 {
		p.Free(p.active[len(p.active)-1])
	}
}

func (p *BulletPool) retire(id ecs.EntityID) {
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](p.entityManager, id); ok {
		sprite.Hidden = true
	}
	if phys, ok := ecs.GetComponent[*components.PhysicsComponent](p.entityManager, id); ok {
		phys.SetActive(false)
	}
	if bullet, ok := ecs.GetComponent[*components.BulletComponent](p.entityManager, id); ok {
		bullet.Retire()
	}
}
