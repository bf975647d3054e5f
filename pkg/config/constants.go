package config

// 系统优先级：数值越小越先运行
//
// 输入与 AI 先写入速度和状态，物理步进在渲染队列之后、镜头之前，
// 镜头最后跟随同步后的玩家位置。
const (
	PriorityAim          = 100
	PriorityPlayer       = 101
	PriorityWeapon       = 102
	PriorityEnemy        = 103
	PriorityCharacter    = 104
	PriorityBullet       = 200
	PriorityAnimation    = 1000
	PriorityRender       = 1001
	PriorityPhysicsDebug = 2000
	PriorityPhysics      = 2001
	PriorityCamera       = 2002
)

// 渲染层级
const (
	ZIndexProp      = 0
	ZIndexCharacter = 1
	ZIndexWeapon    = 2
	ZIndexBullet    = 3
	ZIndexAim       = 10
)

// WindowTitle 窗口标题
const WindowTitle = "Prison Apocalypse"
