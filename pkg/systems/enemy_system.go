package systems

import (
	"github.com/jakecoffman/cp"
	"go.uber.org/zap"

	"github.com/gonewx/prison/pkg/components"
	"github.com/gonewx/prison/pkg/config"
	"github.com/gonewx/prison/pkg/ecs"
	"github.com/gonewx/prison/pkg/logger"
)

// EnemySystem 敌人 AI：近战范围内攻击，发现范围内追击，否则原地不动
//
// 距离比较全部使用平方值。近战范围包含边界：距离恰好等于 MeleeRange 也会攻击。
type EnemySystem struct {
	entityManager *ecs.EntityManager
	meleeRange    float64
	meleeDamage   float64
	logger        *zap.Logger
}

// NewEnemySystem 创建敌人 AI 系统，近战距离和伤害取自 cfg
func NewEnemySystem(em *ecs.EntityManager, cfg config.EnemyConfig, log *zap.Logger) *EnemySystem {
	return &EnemySystem{
		entityManager: em,
		meleeRange:    cfg.MeleeRange,
		meleeDamage:   cfg.MeleeDamage,
		logger:        logger.OrNop(log).Named("EnemySystem"),
	}
}

// Priority 实现 ecs.System
func (s *EnemySystem) Priority() int {
	return config.PriorityEnemy
}

// Update 实现 ecs.System
func (s *EnemySystem) Update(deltaTime float64) {
	playerID := findPlayer(s.entityManager)
	if playerID == ecs.InvalidEntity {
		return
	}
	playerCharacter, _ := ecs.GetComponent[*components.CharacterComponent](s.entityManager, playerID)
	playerTransform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, playerID)
	meleeSq := s.meleeRange * s.meleeRange

	entities := ecs.GetEntitiesWith3[*components.EnemyComponent, *components.CharacterComponent, *components.TransformComponent](s.entityManager)
	for _, id := range entities {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
		character, _ := ecs.GetComponent[*components.CharacterComponent](s.entityManager, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)

		enemy.AttackTimer += deltaTime

		toPlayer := playerTransform.Position.Sub(transform.Position)
		distanceSq := toPlayer.LengthSq()

		switch {
		case distanceSq <= meleeSq:
			character.Direction = cp.Vector{}
			if enemy.AttackTimer > enemy.AttackCooldown && !playerCharacter.IsDead() && !character.IsDead() {
				ApplyDamage(s.entityManager, playerID, s.meleeDamage)
				enemy.AttackTimer = 0
				s.logger.Debug("melee hit",
					zap.Uint64("enemy", uint64(id)),
					zap.Float64("damage", s.meleeDamage),
					zap.Float64("playerHealth", playerCharacter.Health))
			}
		case distanceSq < enemy.DetectRadius*enemy.DetectRadius:
			character.Direction = toPlayer.Normalize()
		default:
			character.Direction = cp.Vector{}
		}
		character.FacingLeft = character.Direction.X < 0
	}
}
