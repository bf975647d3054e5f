package systems

import (
	"github.com/jakecoffman/cp"
	"go.uber.org/zap"

	"github.com/gonewx/prison/pkg/components"
	"github.com/gonewx/prison/pkg/config"
	"github.com/gonewx/prison/pkg/ecs"
	"github.com/gonewx/prison/pkg/logger"
)

// PlayerSystem 把输入转换为玩家的移动方向、朝向和武器选择
//
// 玩家出生时空手，每次按下切换键装备列表中的下一把武器（循环）。
// 玩家死亡后卸下武器，不再响应输入。
type PlayerSystem struct {
	entityManager *ecs.EntityManager
	input         Input
	weapons       []ecs.EntityID
	logger        *zap.Logger
}

// NewPlayerSystem 创建玩家系统
//
// 参数:
//   - em: 实体管理器
//   - input: 输入来源，nil 表示没有输入
//   - weapons: 可切换的武器实体，下标即子弹池下标
//   - log: 日志，nil 时不输出
func NewPlayerSystem(em *ecs.EntityManager, input Input, weapons []ecs.EntityID, log *zap.Logger) *PlayerSystem {
	return &PlayerSystem{
		entityManager: em,
		input:         input,
		weapons:       weapons,
		logger:        logger.OrNop(log).Named("PlayerSystem"),
	}
}

// Priority 实现 ecs.System
func (s *PlayerSystem) Priority() int {
	return config.PriorityPlayer
}

// Weapons 可切换的武器实体
func (s *PlayerSystem) Weapons() []ecs.EntityID {
	return s.weapons
}

// Update 实现 ecs.System
func (s *PlayerSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith3[*components.PlayerComponent, *components.CharacterComponent, *components.TransformComponent](s.entityManager)
	for _, id := range entities {
		player, _ := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
		character, _ := ecs.GetComponent[*components.CharacterComponent](s.entityManager, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)

		if character.IsDead() {
			if player.HasWeapon() {
				s.setEquipped(player.CurrentWeapon, false)
				s.logger.Debug("weapon dropped on death", zap.Uint64("player", uint64(id)))
			}
			player.CurrentWeapon = ecs.InvalidEntity
			player.WeaponIndex = 0
			continue
		}
		if s.input == nil {
			continue
		}

		if s.input.SwitchWeaponPressed() && len(s.weapons) > 0 {
			s.Equip(id, (player.WeaponIndex+1)%len(s.weapons))
		}

		movement := s.input.Movement()
		if movement.LengthSq() > 0 {
			movement = movement.Normalize()
		} else {
			movement = cp.Vector{}
		}
		character.Direction = movement

		if _, aimTransform, ok := findAim(s.entityManager); ok {
			character.FacingLeft = aimTransform.Position.X < transform.Position.X
		}
	}
}

// Equip 让玩家装备第 index 把武器，卸下当前武器
// 下标越界时什么也不做
func (s *PlayerSystem) Equip(playerID ecs.EntityID, index int) {
	if index < 0 || index >= len(s.weapons) {
		return
	}
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, playerID)
	if !ok {
		return
	}
	if player.HasWeapon() {
		s.setEquipped(player.CurrentWeapon, false)
	}
	player.WeaponIndex = index
	player.CurrentWeapon = s.weapons[index]
	s.setEquipped(player.CurrentWeapon, true)

	if weapon, ok := ecs.GetComponent[*components.WeaponComponent](s.entityManager, player.CurrentWeapon); ok {
		s.logger.Debug("weapon equipped", zap.String("weapon", weapon.Name), zap.Int("index", index))
	}
}

func (s *PlayerSystem) setEquipped(weaponID ecs.EntityID, equipped bool) {
	if weapon, ok := ecs.GetComponent[*components.WeaponComponent](s.entityManager, weaponID); ok {
		weapon.Equipped = equipped
	}
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, weaponID); ok {
		sprite.Hidden = !equipped
	}
}
