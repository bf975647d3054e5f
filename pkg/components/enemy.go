package components

// EnemyComponent 敌人 AI 参数与攻击计时
type EnemyComponent struct {
	// DetectRadius 发现玩家的距离
	DetectRadius float64
	// AttackCooldown 两次近战攻击之间的最短间隔（秒）
	AttackCooldown float64
	// AttackTimer 距上次攻击经过的时间（秒）
	AttackTimer float64
}

// 敌人默认参数
const (
	DefaultEnemyDetectRadius   = 5.0
	DefaultEnemyAttackCooldown = 0.6
)

// Reset 中性状态：默认参数，计时清零
func (e *EnemyComponent) Reset() {
	e.DetectRadius = DefaultEnemyDetectRadius
	e.AttackCooldown = DefaultEnemyAttackCooldown
	e.AttackTimer = 0
}
