package game

import (
	"fmt"

	"github.com/gonewx/prison/pkg/config"
	"github.com/gonewx/prison/pkg/embedded"
)

// 嵌入的默认内容
const (
	GameplayFile   = "data/gameplay.yaml"
	WeaponsFile    = "data/weapons.yaml"
	ArchetypesFile = "data/archetypes.yaml"
	DefaultLevel   = "data/levels/sandbox.yaml"
)

// Content 一局游戏需要的全部配置
type Content struct {
	Gameplay   *config.GameplayConfig
	Weapons    *config.WeaponsConfig
	Archetypes *config.ArchetypesConfig
	Level      *config.LevelConfig
}

// ContentPaths 命令行指定的配置文件路径，空字符串表示使用嵌入的默认文件
type ContentPaths struct {
	Gameplay   string
	Weapons    string
	Archetypes string
	Level      string
}

// DefaultContent 代码内置的默认内容（不读文件）
// 关卡为空场地，玩家在原点出生
func DefaultContent() *Content {
	return &Content{
		Gameplay:   config.DefaultGameplayConfig(),
		Weapons:    config.DefaultWeaponsConfig(),
		Archetypes: config.DefaultArchetypesConfig(),
		Level:      &config.LevelConfig{Name: "empty"},
	}
}

// Validate 校验全部配置
func (c *Content) Validate() error {
	if c.Gameplay == nil || c.Weapons == nil || c.Archetypes == nil || c.Level == nil {
		return fmt.Errorf("%w: incomplete content", config.ErrInvalidConfig)
	}
	if err := c.Gameplay.Validate(); err != nil {
		return err
	}
	if err := c.Weapons.Validate(); err != nil {
		return err
	}
	if err := c.Archetypes.Validate(); err != nil {
		return err
	}
	return c.Level.Validate()
}

// LoadContent 加载配置：有路径时读磁盘文件，否则读嵌入文件
func LoadContent(paths ContentPaths) (*Content, error) {
	gameplay, err := load(paths.Gameplay, GameplayFile, config.LoadGameplayConfig, config.ParseGameplayConfig)
	if err != nil {
		return nil, err
	}
	weapons, err := load(paths.Weapons, WeaponsFile, config.LoadWeaponsConfig, config.ParseWeaponsConfig)
	if err != nil {
		return nil, err
	}
	archetypes, err := load(paths.Archetypes, ArchetypesFile, config.LoadArchetypesConfig, config.ParseArchetypesConfig)
	if err != nil {
		return nil, err
	}
	level, err := load(paths.Level, DefaultLevel, config.LoadLevelConfig, config.ParseLevelConfig)
	if err != nil {
		return nil, err
	}
	return &Content{Gameplay: gameplay, Weapons: weapons, Archetypes: archetypes, Level: level}, nil
}

// load 从 path 或嵌入文件 fallback 读取一份配置
func load[T any](path, fallback string, fromFile func(string) (*T, error), parse func([]byte) (*T, error)) (*T, error) {
	if path != "" {
		return fromFile(path)
	}
	data, err := embedded.ReadFile(fallback)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded %s: %w", fallback, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fallback, err)
	}
	return cfg, nil
}
