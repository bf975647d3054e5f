package components

import "github.com/gonewx/prison/pkg/ecs"

// PlayerComponent 玩家控制的角色，记录当前装备的武器
type PlayerComponent struct {
	// CurrentWeapon 当前装备的武器实体，InvalidEntity 表示空手
	CurrentWeapon ecs.EntityID
	// WeaponIndex 当前武器在武器列表中的下标（同时也是子弹池下标）
	WeaponIndex int
}

// HasWeapon 是否装备了武器
func (p *PlayerComponent) HasWeapon() bool {
	return p.CurrentWeapon != ecs.InvalidEntity
}

// Reset 中性状态：空手，下标 0
func (p *PlayerComponent) Reset() {
	p.CurrentWeapon = ecs.InvalidEntity
	p.WeaponIndex = 0
}
