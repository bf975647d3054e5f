package components

import "github.com/jakecoffman/cp"

// CharacterState 角色状态机的状态
type CharacterState int

const (
	// StateIdle 站立
	StateIdle CharacterState = iota
	// StateRun 移动中
	StateRun
	// StateHit 受击硬直，持续到受击动画播完
	StateHit
	// StateDie 死亡，终态
	StateDie
)

// AllCharacterStates 按声明顺序列出所有状态（动画配置校验用）
var AllCharacterStates = []CharacterState{StateIdle, StateRun, StateHit, StateDie}

// String 返回状态名，与动画配置里的 clip 键一致
func (s CharacterState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRun:
		return "run"
	case StateHit:
		return "hit"
	case StateDie:
		return "die"
	default:
		return "unknown"
	}
}

// DefaultHealth 角色初始生命值
const DefaultHealth = 100.0

// CharacterComponent 可移动、可受伤的角色（玩家与敌人共用）
type CharacterComponent struct {
	// Health 生命值，只会减少；<= 0 视为死亡
	Health float64
	// Speed 移动速度（单位/秒）
	Speed float64
	// Direction 期望移动方向（单位向量或零向量）
	Direction cp.Vector
	// FacingLeft 朝向左侧
	FacingLeft bool
	// Damaged 本帧受到伤害，由 CharacterSystem 在受击动画结束时清除
	Damaged bool
}

// IsDead 生命值耗尽
func (c *CharacterComponent) IsDead() bool {
	return c.Health <= 0
}

// Reset 中性状态：满血、静止、朝右、未受伤
func (c *CharacterComponent) Reset() {
	c.Health = DefaultHealth
	c.Speed = 0
	c.Direction = cp.Vector{}
	c.FacingLeft = false
	c.Damaged = false
}
