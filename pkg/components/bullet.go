package components

// 子弹默认参数
const (
	DefaultBulletSpeed      = 10.0
	DefaultBulletDamage     = 5.0
	DefaultBulletTimeToLive = 5.0
)

// BulletComponent 子弹
//
// 子弹实体由子弹池预先创建并反复复用：Speed/Damage/TimeToLive/Pool 是池成员的固定配置，
// Active/LiveTime/Destroyed 是每次发射的运行状态。
type BulletComponent struct {
	// Speed 飞行速度（单位/秒）
	Speed float64
	// Damage 命中伤害
	Damage float64
	// TimeToLive 最长存活时间（秒）
	TimeToLive float64
	// Pool 所属子弹池下标
	Pool int

	// Active 是否在飞行中（不在池的空闲列表里）
	Active bool
	// LiveTime 本次发射后经过的时间（秒）
	LiveTime float64
	// Destroyed 已命中或撞墙，等待回收
	Destroyed bool
}

// Expired 存活时间超过上限
func (b *BulletComponent) Expired() bool {
	return b.LiveTime > b.TimeToLive
}

// Retire 清除发射状态，保留池成员配置
func (b *BulletComponent) Retire() {
	b.Active = false
	b.LiveTime = 0
	b.Destroyed = false
}

// Reset 中性状态：默认参数，未发射
func (b *BulletComponent) Reset() {
	b.Speed = DefaultBulletSpeed
	b.Damage = DefaultBulletDamage
	b.TimeToLive = DefaultBulletTimeToLive
	b.Pool = 0
	b.Retire()
}
