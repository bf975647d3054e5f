package config

import "fmt"

// 场景道具类型
const (
	PropBarrel = "barrel"
	PropLocker = "locker"
)

// 敌人类型
const (
	EnemyPrisoner  = "prisoner"
	EnemyPoliceman = "policeman"
)

// LevelConfig 关卡：墙体、道具、敌人与玩家出生点，全部使用世界坐标
//
// 配置文件位置: data/levels/*.yaml
type LevelConfig struct {
	Name        string             `yaml:"name"`
	Width       float64            `yaml:"width"`
	Height      float64            `yaml:"height"`
	PlayerSpawn Vec2               `yaml:"playerSpawn"`
	Colliders   []RectConfig       `yaml:"colliders"`
	Props       []PropConfig       `yaml:"props"`
	Enemies     []EnemySpawnConfig `yaml:"enemies"`
}

// RectConfig 轴对齐矩形，(X, Y) 为左下角
type RectConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PropConfig 场景道具
type PropConfig struct {
	Type     string `yaml:"type"`
	Position Vec2   `yaml:"position"`
}

// EnemySpawnConfig 敌人出生配置
type EnemySpawnConfig struct {
	Type     string `yaml:"type"`
	Position Vec2   `yaml:"position"`
	// Size 缩放，默认 1
	Size float64 `yaml:"size"`
}

// LoadLevelConfig 从 YAML 文件加载关卡
func LoadLevelConfig(path string) (*LevelConfig, error) {
	data, err := readFile("level", path)
	if err != nil {
		return nil, err
	}
	cfg, err := ParseLevelConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseLevelConfig 解析关卡
func ParseLevelConfig(data []byte) (*LevelConfig, error) {
	var cfg LevelConfig
	if err := decode("level", data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults 敌人尺寸缺省为 1
func (c *LevelConfig) applyDefaults() {
	for i := range c.Enemies {
		if c.Enemies[i].Size == 0 {
			c.Enemies[i].Size = 1
		}
	}
}

// Validate 校验关卡内容
func (c *LevelConfig) Validate() error {
	if c.Name == "" {
		return invalid("level name is required")
	}
	if c.Width < 0 || c.Height < 0 {
		return invalid("level size cannot be negative")
	}
	for i, rect := range c.Colliders {
		if rect.Width <= 0 || rect.Height <= 0 {
			return invalid("collider %d: width and height must be positive", i)
		}
	}
	for i, prop := range c.Props {
		switch prop.Type {
		case PropBarrel, PropLocker:
		default:
			return invalid("prop %d: type must be barrel or locker, got %q", i, prop.Type)
		}
	}
	for i, enemy := range c.Enemies {
		switch enemy.Type {
		case EnemyPrisoner, EnemyPoliceman:
		default:
			return invalid("enemy %d: type must be prisoner or policeman, got %q", i, enemy.Type)
		}
		if enemy.Size <= 0 {
			return invalid("enemy %d: size must be positive", i)
		}
	}
	return nil
}
