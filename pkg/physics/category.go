package physics

import "github.com/jakecoffman/cp"

// Category 碰撞分类位，一个形状属于一个分类，并通过 Mask 声明与哪些分类碰撞
type Category uint

const (
	// CategoryEnvironment 墙体与场景道具
	CategoryEnvironment Category = 0x01
	// CategoryPlayer 玩家身体
	CategoryPlayer Category = 0x02
	// CategoryPlayerHit 玩家受击判定盒
	CategoryPlayerHit Category = 0x04
	// CategoryEnemy 敌人身体
	CategoryEnemy Category = 0x08
	// CategoryEnemyHit 敌人受击判定盒
	CategoryEnemyHit Category = 0x10
	// CategoryBullets 子弹
	CategoryBullets Category = 0x20
)

// Has 是否包含 other 的任一位
func (c Category) Has(other Category) bool {
	return c&other != 0
}

// String 调试输出
func (c Category) String() string {
	switch c {
	case CategoryEnvironment:
		return "environment"
	case CategoryPlayer:
		return "player"
	case CategoryPlayerHit:
		return "player_hit"
	case CategoryEnemy:
		return "enemy"
	case CategoryEnemyHit:
		return "enemy_hit"
	case CategoryBullets:
		return "bullets"
	default:
		return "mixed"
	}
}

// Filter 形状的分类与掩码；两个形状都接受对方的分类时才会碰撞
type Filter struct {
	Category Category
	Mask     Category
}

// Accepts 两个过滤器是否允许彼此碰撞
func (f Filter) Accepts(other Filter) bool {
	return f.Mask.Has(other.Category) && other.Mask.Has(f.Category)
}

func (f Filter) shapeFilter() cp.ShapeFilter {
	return cp.ShapeFilter{
		Group:      0,
		Categories: uint(f.Category),
		Mask:       uint(f.Mask),
	}
}

// 游戏内用到的过滤器
var (
	PlayerBodyFilter   = Filter{Category: CategoryPlayer, Mask: CategoryEnvironment | CategoryEnemy}
	PlayerHitBoxFilter = Filter{Category: CategoryPlayerHit, Mask: CategoryBullets}
	EnemyBodyFilter    = Filter{Category: CategoryEnemy, Mask: CategoryEnvironment | CategoryPlayer}
	EnemyHitBoxFilter  = Filter{Category: CategoryEnemyHit, Mask: CategoryBullets}
	BulletFilter       = Filter{Category: CategoryBullets, Mask: CategoryEnvironment | CategoryPlayerHit | CategoryEnemyHit}
	WallFilter         = Filter{Category: CategoryEnvironment, Mask: CategoryPlayer | CategoryEnemy | CategoryBullets}
	PropFilter         = Filter{Category: CategoryEnvironment, Mask: CategoryPlayer | CategoryEnemy}
)
