package entities

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/gonewx/prison/pkg/config"
	"github.com/gonewx/prison/pkg/ecs"
)

// LoadedLevel 关卡加载结果
type LoadedLevel struct {
	Level   ecs.EntityID
	Walls   []ecs.EntityID
	Props   []ecs.EntityID
	Enemies []ecs.EntityID
}

// LevelLoader 把关卡配置实例化为实体：墙体、道具、敌人
type LevelLoader struct {
	maps       *MapFactory
	characters *CharacterFactory
	logger     *zap.Logger
}

// NewLevelLoader 创建关卡加载器
func NewLevelLoader(maps *MapFactory, characters *CharacterFactory, logger *zap.Logger) *LevelLoader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LevelLoader{maps: maps, characters: characters, logger: logger.Named("LevelLoader")}
}

// Load 创建关卡中的所有实体；玩家由调用方在 level.PlayerSpawn 处创建
func (l *LevelLoader) Load(level *config.LevelConfig) (*LoadedLevel, error) {
	if level == nil {
		return nil, fmt.Errorf("%w: nil level", config.ErrInvalidConfig)
	}

	loaded := &LoadedLevel{Level: l.maps.NewLevel(level)}

	for i, rect := range level.Colliders {
		id, err := l.maps.NewWall(rect)
		if err != nil {
			return nil, fmt.Errorf("level %s collider %d: %w", level.Name, i, err)
		}
		loaded.Walls = append(loaded.Walls, id)
	}

	for i, prop := range level.Props {
		id, err := l.maps.NewProp(prop.Type, prop.Position.Vector())
		if err != nil {
			return nil, fmt.Errorf("level %s prop %d: %w", level.Name, i, err)
		}
		loaded.Props = append(loaded.Props, id)
	}

	for i, enemy := range level.Enemies {
		id, err := l.characters.NewEnemy(enemy.Type, enemy.Position.Vector(), enemy.Size)
		if err != nil {
			return nil, fmt.Errorf("level %s enemy %d: %w", level.Name, i, err)
		}
		loaded.Enemies = append(loaded.Enemies, id)
	}

	l.logger.Info("level loaded",
		zap.String("level", level.Name),
		zap.Int("walls", len(loaded.Walls)),
		zap.Int("props", len(loaded.Props)),
		zap.Int("enemies", len(loaded.Enemies)))
	return loaded, nil
}
