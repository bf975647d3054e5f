package components

// AimComponent 标记瞄准点实体（鼠标指向的世界坐标，位置保存在 TransformComponent）
type AimComponent struct {
	// Firing 本帧开火键是否按住
	Firing bool
}

// Reset 中性状态
func (a *AimComponent) Reset() {
	a.Firing = false
}
