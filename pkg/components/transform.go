package components

import "github.com/jakecoffman/cp"

// TransformComponent 实体在世界中的位置、缩放和旋转
// 世界单位为米（1 单位 = PixelsPerUnit 像素），y 轴向上
type TransformComponent struct {
	// Position 世界坐标
	Position cp.Vector
	// Scale 缩放因子（1 = 原始大小）
	Scale cp.Vector
	// Rotation 旋转角度（度）
	Rotation float64
}

// NewTransform 在 position 处创建单位缩放、无旋转的变换
func NewTransform(position cp.Vector) *TransformComponent {
	return &TransformComponent{Position: position, Scale: cp.Vector{X: 1, Y: 1}}
}

// Reset 中性状态：原点、单位缩放、无旋转
func (t *TransformComponent) Reset() {
	t.Position = cp.Vector{}
	t.Scale = cp.Vector{X: 1, Y: 1}
	t.Rotation = 0
}
