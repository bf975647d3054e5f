package components

import (
	"github.com/jakecoffman/cp"

	"github.com/gonewx/prison/pkg/physics"
)

// PhysicsComponent 实体的物理刚体
//
// Body 决定实体位置（物理同步后 transform = body + BodyOffset）；
// HitBox 是可选的受击判定盒，每步被放回 transform 位置。
type PhysicsComponent struct {
	// Body 主刚体
	Body *physics.Body
	// BodyOffset 变换位置相对刚体位置的偏移
	BodyOffset cp.Vector
	// HitBox 受击判定盒（运动学刚体），没有时为 nil
	HitBox *physics.Body
	// HitBoxOffset 判定盒相对变换位置的偏移
	HitBoxOffset cp.Vector
}

// SetActive 同时激活或停用主刚体和判定盒
func (p *PhysicsComponent) SetActive(active bool) {
	if p.Body != nil {
		p.Body.SetActive(active)
	}
	if p.HitBox != nil {
		p.HitBox.SetActive(active)
	}
}

// Destroy 从物理世界移除刚体
func (p *PhysicsComponent) Destroy() {
	if p.Body != nil {
		p.Body.Destroy()
	}
	if p.HitBox != nil {
		p.HitBox.Destroy()
	}
	p.Body = nil
	p.HitBox = nil
}

// Dispose 组件离开实体时由 EntityManager 调用，刚体随组件一起销毁
func (p *PhysicsComponent) Dispose() {
	p.Destroy()
}

// Reset 中性状态：不持有刚体
// 归还对象池前已经过 Dispose，Reset 不触碰物理世界
func (p *PhysicsComponent) Reset() {
	p.Body = nil
	p.BodyOffset = cp.Vector{}
	p.HitBox = nil
	p.HitBoxOffset = cp.Vector{}
}
