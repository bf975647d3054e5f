package components

// LevelComponent 当前加载的关卡信息
type LevelComponent struct {
	// Name 关卡名
	Name string
	// Width 关卡宽度（世界单位）
	Width float64
	// Height 关卡高度（世界单位）
	Height float64
}
