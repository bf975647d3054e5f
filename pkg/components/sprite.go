package components

import "github.com/jakecoffman/cp"

// SpriteComponent 可渲染的图像引用
// 渲染器按 ZIndex 升序绘制可见精灵；Region 是图集中的区域名
type SpriteComponent struct {
	// Region 当前显示的图集区域名（动画系统每帧更新）
	Region string
	// FlipX 水平翻转（角色朝左）
	FlipX bool
	// FlipY 垂直翻转（武器指向左侧时保持枪口朝上）
	FlipY bool
	// Hidden 为 true 时不进入渲染队列
	Hidden bool
	// Size 世界单位尺寸
	Size cp.Vector
	// Origin 旋转/缩放中心，相对精灵左下角的世界单位偏移
	Origin cp.Vector
	// ZIndex 绘制层级，越大越靠前
	ZIndex int
}

// Reset 中性状态：可见、不翻转、1x1 尺寸、中心原点
func (s *SpriteComponent) Reset() {
	s.Region = ""
	s.FlipX = false
	s.FlipY = false
	s.Hidden = false
	s.Size = cp.Vector{X: 1, Y: 1}
	s.Origin = cp.Vector{X: 0.5, Y: 0.5}
	s.ZIndex = 0
}
