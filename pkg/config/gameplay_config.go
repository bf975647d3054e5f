package config

import "fmt"

// GameplayConfig 玩法调校参数
//
// 配置文件位置: data/gameplay.yaml
type GameplayConfig struct {
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Camera  CameraConfig  `yaml:"camera"`
}

// PhysicsConfig 物理步进参数
type PhysicsConfig struct {
	// StepDelta 固定步长（秒）
	StepDelta float64 `yaml:"stepDelta"`
	// MaxStepsPerFrame 每帧最多步数，超出的累积时间丢弃
	MaxStepsPerFrame int `yaml:"maxStepsPerFrame"`
	// Gravity 重力，俯视角为零
	Gravity Vec2 `yaml:"gravity"`
}

// PlayerConfig 玩家参数
type PlayerConfig struct {
	Archetype string  `yaml:"archetype"`
	Speed     float64 `yaml:"speed"`
	Health    float64 `yaml:"health"`
}

// EnemyConfig 敌人参数
type EnemyConfig struct {
	Speed          float64 `yaml:"speed"`
	Health         float64 `yaml:"health"`
	DetectRadius   float64 `yaml:"detectRadius"`
	AttackCooldown float64 `yaml:"attackCooldown"`
	// MeleeRange 近战距离，距离恰好等于该值时也算在范围内
	MeleeRange  float64 `yaml:"meleeRange"`
	MeleeDamage float64 `yaml:"meleeDamage"`
}

// CameraConfig 镜头参数
type CameraConfig struct {
	FollowSpeed    float64 `yaml:"followSpeed"`
	ViewportWidth  float64 `yaml:"viewportWidth"`
	ViewportHeight float64 `yaml:"viewportHeight"`
	PixelsPerUnit  float64 `yaml:"pixelsPerUnit"`
}

// DefaultGameplayConfig 默认玩法参数
func DefaultGameplayConfig() *GameplayConfig {
	return &GameplayConfig{
		Physics: PhysicsConfig{
			StepDelta:        1.0 / 60.0,
			MaxStepsPerFrame: 5,
		},
		Player: PlayerConfig{
			Archetype: "prisoner",
			Speed:     3,
			Health:    100,
		},
		Enemy: EnemyConfig{
			Speed:          1,
			Health:         100,
			DetectRadius:   5,
			AttackCooldown: 0.6,
			MeleeRange:     0.4,
			MeleeDamage:    25,
		},
		Camera: CameraConfig{
			FollowSpeed:    5,
			ViewportWidth:  8.5,
			ViewportHeight: 6,
			PixelsPerUnit:  32,
		},
	}
}

// LoadGameplayConfig 从 YAML 文件加载玩法参数
func LoadGameplayConfig(path string) (*GameplayConfig, error) {
	data, err := readFile("gameplay", path)
	if err != nil {
		return nil, err
	}
	cfg, err := ParseGameplayConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseGameplayConfig 解析玩法参数，文件中缺省的字段取默认值
func ParseGameplayConfig(data []byte) (*GameplayConfig, error) {
	cfg := DefaultGameplayConfig()
	if err := decode("gameplay", data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 校验参数范围
func (c *GameplayConfig) Validate() error {
	if c.Physics.StepDelta <= 0 {
		return invalid("physics.stepDelta must be positive, got %v", c.Physics.StepDelta)
	}
	if c.Physics.MaxStepsPerFrame <= 0 {
		return invalid("physics.maxStepsPerFrame must be positive, got %d", c.Physics.MaxStepsPerFrame)
	}
	if c.Player.Archetype == "" {
		return invalid("player.archetype is required")
	}
	if c.Player.Speed < 0 || c.Enemy.Speed < 0 {
		return invalid("speeds cannot be negative")
	}
	if c.Player.Health <= 0 || c.Enemy.Health <= 0 {
		return invalid("health must be positive")
	}
	if c.Enemy.DetectRadius < 0 || c.Enemy.MeleeRange < 0 {
		return invalid("enemy ranges cannot be negative")
	}
	if c.Enemy.AttackCooldown < 0 {
		return invalid("enemy.attackCooldown cannot be negative, got %v", c.Enemy.AttackCooldown)
	}
	if c.Enemy.MeleeDamage < 0 {
		return invalid("enemy.meleeDamage cannot be negative, got %v", c.Enemy.MeleeDamage)
	}
	if c.Camera.FollowSpeed < 0 {
		return invalid("camera.followSpeed cannot be negative, got %v", c.Camera.FollowSpeed)
	}
	if c.Camera.ViewportWidth <= 0 || c.Camera.ViewportHeight <= 0 || c.Camera.PixelsPerUnit <= 0 {
		return invalid("camera viewport and pixelsPerUnit must be positive")
	}
	return nil
}
