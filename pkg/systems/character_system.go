package systems

import (
	"github.com/jakecoffman/cp"
	"go.uber.org/zap"

	"github.com/gonewx/prison/pkg/components"
	"github.com/gonewx/prison/pkg/config"
	"github.com/gonewx/prison/pkg/ecs"
	"github.com/gonewx/prison/pkg/logger"
)

// CharacterSystem 角色状态机：IDLE、RUN、HIT、DIE
//
// 状态判定顺序：
//  1. 受击标记存在：进入 HIT，受击动画播完后清除标记，期间不改速度
//  2. 生命值耗尽：进入 DIE（终态），速度清零，身体和判定盒移出物理世界
//  3. 否则速度 = 方向 * 速率，按速度是否为零选择 RUN 或 IDLE
type CharacterSystem struct {
	entityManager *ecs.EntityManager
	logger        *zap.Logger
}

// NewCharacterSystem 创建角色状态机系统
func NewCharacterSystem(em *ecs.EntityManager, log *zap.Logger) *CharacterSystem {
	return &CharacterSystem{
		entityManager: em,
		logger:        logger.OrNop(log).Named("CharacterSystem"),
	}
}

// Priority 实现 ecs.System
func (s *CharacterSystem) Priority() int {
	return config.PriorityCharacter
}

// Update 实现 ecs.System
func (s *CharacterSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith3[*components.CharacterComponent, *components.AnimationComponent, *components.PhysicsComponent](s.entityManager)
	for _, id := range entities {
		character, _ := ecs.GetComponent[*components.CharacterComponent](s.entityManager, id)
		animation, _ := ecs.GetComponent[*components.AnimationComponent](s.entityManager, id)
		phys, _ := ecs.GetComponent[*components.PhysicsComponent](s.entityManager, id)

		if animation.State == components.StateDie {
			continue
		}

		if character.Damaged {
			animation.Transition(components.StateHit)
			if animation.IsCurrentFinished() {
				character.Damaged = false
			}
			continue
		}

		if character.IsDead() {
			animation.Transition(components.StateDie)
			if phys.Body != nil {
				phys.Body.SetLinearVelocity(cp.Vector{})
			}
			phys.SetActive(false)
			s.logger.Info("character died", zap.Uint64("entity", uint64(id)))
			continue
		}

		velocity := character.Direction.Mult(character.Speed)
		if phys.Body != nil {
			phys.Body.SetLinearVelocity(velocity)
		}
		if velocity.LengthSq() > 0 {
			animation.Transition(components.StateRun)
		} else {
			animation.Transition(components.StateIdle)
		}
		if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok {
			sprite.FlipX = character.FacingLeft
		}
	}
}

// ApplyDamage 对角色造成 amount 点伤害并设置受击标记
//
// 角色正处于 HIT 状态时受击动画从头播放。amount <= 0 时什么也不做，生命值只减不增。
// 返回是否造成了伤害。
func ApplyDamage(em *ecs.EntityManager, id ecs.EntityID, amount float64) bool {
	if amount <= 0 {
		return false
	}
	character, ok := ecs.GetComponent[*components.CharacterComponent](em, id)
	if !ok {
		return false
	}
	character.Health -= amount
	character.Damaged = true
	if animation, ok := ecs.GetComponent[*components.AnimationComponent](em, id); ok && animation.State == components.StateHit {
		animation.Restart()
	}
	return true
}
