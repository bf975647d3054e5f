// Package systems 包含每帧运行的游戏系统
//
// 每个系统持有 EntityManager，实现 ecs.System（Priority + Update），
// 由 ecs.Scheduler 按优先级顺序驱动。所有系统在同一个 goroutine 中顺序执行。
package systems

import "github.com/jakecoffman/cp"

// Input 输入采集方提供的本帧输入
type Input interface {
	// Movement 四方向按键合成的移动向量（未归一化，右/上为正）
	Movement() cp.Vector
	// AimTarget 瞄准点的世界坐标
	AimTarget() cp.Vector
	// FireHeld 开火键是否按住
	FireHeld() bool
	// SwitchWeaponPressed 切换武器键是否在本帧刚按下
	SwitchWeaponPressed() bool
}

// InputState 以字段保存输入状态的 Input 实现
// 终端查看器和测试直接填写字段
type InputState struct {
	Up, Down, Left, Right bool
	Aim                   cp.Vector
	Fire                  bool
	SwitchWeapon          bool
}

// Movement 实现 Input
func (s *InputState) Movement() cp.Vector {
	var v cp.Vector
	if s.Up {
		v.Y++
	}
	if s.Down {
		v.Y--
	}
	if s.Right {
		v.X++
	}
	if s.Left {
		v.X--
	}
	return v
}

// AimTarget 实现 Input
func (s *InputState) AimTarget() cp.Vector {
	return s.Aim
}

// FireHeld 实现 Input
func (s *InputState) FireHeld() bool {
	return s.Fire
}

// SwitchWeaponPressed 实现 Input
func (s *InputState) SwitchWeaponPressed() bool {
	return s.SwitchWeapon
}

// EndFrame 清除边沿触发的输入，帧末调用
func (s *InputState) EndFrame() {
	s.SwitchWeapon = false
}
