package config

import "fmt"

// DefaultBulletPoolSize 每种武器的子弹池容量
const DefaultBulletPoolSize = 100

// WeaponsConfig 武器列表，顺序即切换顺序，第 i 把武器使用第 i 个子弹池
//
// 配置文件位置: data/weapons.yaml
type WeaponsConfig struct {
	Weapons []WeaponConfig `yaml:"weapons"`
}

// WeaponConfig 单把武器
type WeaponConfig struct {
	Name   string `yaml:"name"`
	Region string `yaml:"region"`
	// Size/Origin 精灵尺寸与旋转中心（世界单位）
	Size   Vec2 `yaml:"size"`
	Origin Vec2 `yaml:"origin"`
	// Offset 相对持有者的偏移
	Offset Vec2 `yaml:"offset"`
	// Muzzle 枪口位置（武器朝右时，相对武器原点）
	Muzzle   Vec2         `yaml:"muzzle"`
	Cooldown float64      `yaml:"cooldown"`
	Rumble   RumbleConfig `yaml:"rumble"`
	PoolSize int          `yaml:"poolSize"`
	Bullet   BulletConfig `yaml:"bullet"`
}

// RumbleConfig 开火时的镜头震动
type RumbleConfig struct {
	Power    float64 `yaml:"power"`
	Duration float64 `yaml:"duration"`
}

// BulletConfig 子弹参数
type BulletConfig struct {
	Region     string  `yaml:"region"`
	Size       Vec2    `yaml:"size"`
	Speed      float64 `yaml:"speed"`
	Damage     float64 `yaml:"damage"`
	TimeToLive float64 `yaml:"timeToLive"`
}

// DefaultWeaponsConfig 手枪与步枪
func DefaultWeaponsConfig() *WeaponsConfig {
	return &WeaponsConfig{
		Weapons: []WeaponConfig{
			{
				Name:     "pistol",
				Region:   "pistol",
				Size:     Vec2{X: 0.25, Y: 0.15},
				Origin:   Vec2{X: 0.125, Y: 0.075},
				Offset:   Vec2{X: 0, Y: -0.1},
				Muzzle:   Vec2{X: 0.2, Y: 0.02},
				Cooldown: 0.25,
				Rumble:   RumbleConfig{Power: 0.05, Duration: 0.08},
				PoolSize: DefaultBulletPoolSize,
				Bullet: BulletConfig{
					Region:     "pistol_bullet",
					Size:       Vec2{X: 0.1, Y: 0.05},
					Speed:      10,
					Damage:     5,
					TimeToLive: 5,
				},
			},
			{
				Name:     "rifle",
				Region:   "rifle",
				Size:     Vec2{X: 0.48, Y: 0.28},
				Origin:   Vec2{X: 0.15, Y: 0.14},
				Offset:   Vec2{X: 0, Y: -0.05},
				Muzzle:   Vec2{X: 0.3, Y: 0},
				Cooldown: 0.25,
				Rumble:   RumbleConfig{Power: 0.065, Duration: 0.1},
				PoolSize: DefaultBulletPoolSize,
				Bullet: BulletConfig{
					Region:     "rifle_bullet",
					Size:       Vec2{X: 0.25, Y: 0.1},
					Speed:      16,
					Damage:     10,
					TimeToLive: 8,
				},
			},
		},
	}
}

// LoadWeaponsConfig 从 YAML 文件加载武器列表
func LoadWeaponsConfig(path string) (*WeaponsConfig, error) {
	data, err := readFile("weapons", path)
	if err != nil {
		return nil, err
	}
	cfg, err := ParseWeaponsConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseWeaponsConfig 解析武器列表
func ParseWeaponsConfig(data []byte) (*WeaponsConfig, error) {
	var cfg WeaponsConfig
	if err := decode("weapons", data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults 为缺省字段补默认值
func (c *WeaponsConfig) applyDefaults() {
	for i := range c.Weapons {
		w := &c.Weapons[i]
		if w.PoolSize == 0 {
			w.PoolSize = DefaultBulletPoolSize
		}
		if w.Region == "" {
			w.Region = w.Name
		}
		if w.Bullet.Region == "" {
			w.Bullet.Region = w.Name + "_bullet"
		}
	}
}

// Validate 校验武器列表
func (c *WeaponsConfig) Validate() error {
	if len(c.Weapons) == 0 {
		return invalid("at least one weapon is required")
	}
	seen := make(map[string]bool, len(c.Weapons))
	for i, w := range c.Weapons {
		if w.Name == "" {
			return invalid("weapon %d: name is required", i)
		}
		if seen[w.Name] {
			return invalid("weapon %d: duplicate name %q", i, w.Name)
		}
		seen[w.Name] = true
		if w.PoolSize <= 0 {
			return invalid("weapon %q: poolSize must be positive, got %d", w.Name, w.PoolSize)
		}
		if w.Cooldown < 0 {
			return invalid("weapon %q: cooldown cannot be negative", w.Name)
		}
		if w.Rumble.Power < 0 || w.Rumble.Duration < 0 {
			return invalid("weapon %q: rumble cannot be negative", w.Name)
		}
		if w.Bullet.Speed < 0 || w.Bullet.Damage < 0 {
			return invalid("weapon %q: bullet speed and damage cannot be negative", w.Name)
		}
		if w.Bullet.TimeToLive <= 0 {
			return invalid("weapon %q: bullet timeToLive must be positive", w.Name)
		}
		if w.Bullet.Size.X <= 0 || w.Bullet.Size.Y <= 0 {
			return invalid("weapon %q: bullet size must be positive", w.Name)
		}
	}
	return nil
}

// Index 按名字查找武器下标
func (c *WeaponsConfig) Index(name string) (int, bool) {
	for i, w := range c.Weapons {
		if w.Name == name {
			return i, true
		}
	}
	return -1, false
}
