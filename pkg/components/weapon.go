package components

import "github.com/jakecoffman/cp"

// 武器默认参数
const (
	DefaultWeaponCooldown = 0.25
	DefaultRumblePower    = 0.1
	DefaultRumbleDuration = 0.05
)

// WeaponComponent 可装备的武器
type WeaponComponent struct {
	// Name 武器名（pistol、rifle）
	Name string
	// Slot 在武器列表中的下标，同时选择对应的子弹池
	Slot int
	// Offset 相对持有者位置的偏移
	Offset cp.Vector
	// Muzzle 枪口相对武器原点的偏移（武器朝右时）
	Muzzle cp.Vector
	// Cooldown 两次射击的最短间隔（秒）
	Cooldown float64
	// CooldownTimer 距上次射击经过的时间（秒）
	CooldownTimer float64
	// RumblePower 开火时镜头震动强度
	RumblePower float64
	// RumbleDuration 开火时镜头震动时长（秒）
	RumbleDuration float64
	// Equipped 是否装备中
	Equipped bool
}

// Ready 冷却是否结束
func (w *WeaponComponent) Ready() bool {
	return w.CooldownTimer > w.Cooldown
}

// Reset 中性状态：默认参数，冷却已结束（刚装备即可开火）
func (w *WeaponComponent) Reset() {
	w.Name = ""
	w.Slot = 0
	w.Offset = cp.Vector{}
	w.Muzzle = cp.Vector{}
	w.Cooldown = DefaultWeaponCooldown
	w.CooldownTimer = DefaultWeaponCooldown
	w.RumblePower = DefaultRumblePower
	w.RumbleDuration = DefaultRumbleDuration
	w.Equipped = false
}
