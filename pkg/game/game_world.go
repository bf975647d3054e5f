// Package game 把配置、实体工厂和系统组装成一局可运行的游戏
//
// GameWorld 是一局游戏的全部状态：实体管理器、物理世界、系统调度器。
// 平台层（pkg/app、cmd/tui）每帧调用 Update，并通过访问器读取渲染所需的数据。
package game

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/jakecoffman/cp"
	"go.uber.org/zap"

	"github.com/gonewx/prison/pkg/components"
	"github.com/gonewx/prison/pkg/config"
	"github.com/gonewx/prison/pkg/ecs"
	"github.com/gonewx/prison/pkg/entities"
	"github.com/gonewx/prison/pkg/logger"
	"github.com/gonewx/prison/pkg/physics"
	"github.com/gonewx/prison/pkg/systems"
)

// ErrWorldClosed 对已关闭的 GameWorld 操作
var ErrWorldClosed = errors.New("game world is closed")

// poolSlack 组件池在关卡内容之外预留的容量，用于运行时生成的敌人
const poolSlack = 32

// Options 创建 GameWorld 的参数
// 配置为 nil 时使用代码内置默认值
type Options struct {
	Gameplay   *config.GameplayConfig
	Weapons    *config.WeaponsConfig
	Archetypes *config.ArchetypesConfig
	Level      *config.LevelConfig

	// Input 玩家输入，必填
	Input systems.Input
	// Logger 可为 nil
	Logger *zap.Logger
	// Rand 镜头震动的随机源，nil 使用固定种子
	Rand *rand.Rand
	// DebugPhysics 是否收集碰撞盒供调试绘制
	DebugPhysics bool
}

// Stats 一帧结束后的统计信息，供调试显示
type Stats struct {
	Entities      int
	EnemiesAlive  int
	ActiveBullets int
	PlayerHealth  float64
	PhysicsSteps  int
}

// GameWorld 一局游戏
//
// 非并发安全：Update 和所有访问器必须在同一个 goroutine 中调用。
type GameWorld struct {
	entityManager *ecs.EntityManager
	physicsWorld  *physics.World
	scheduler     *ecs.Scheduler
	characters    *entities.CharacterFactory

	level   *entities.LoadedLevel
	enemies []ecs.EntityID
	player  ecs.EntityID
	camera  ecs.EntityID
	aim     ecs.EntityID

	playerSystem  *systems.PlayerSystem
	bulletSystem  *systems.BulletSystem
	physicsSystem *systems.PhysicsSystem
	physicsDebug  *systems.PhysicsDebugSystem
	renderQueue   *systems.RenderQueueSystem

	time   float64
	closed bool
	logger *zap.Logger
}

// NewGameWorld 创建一局游戏
//
// 组装顺序：组件池 -> 物理世界与接触处理器 -> 武器与子弹池 -> 玩家 -> 关卡 -> 瞄准点与镜头 -> 系统。
// 任何配置或内容错误都会返回 error，已创建的资源会被释放。
func NewGameWorld(opts Options) (*GameWorld, error) {
	if opts.Input == nil {
		return nil, fmt.Errorf("%w: input is required", config.ErrInvalidConfig)
	}
	content := DefaultContent()
	if opts.Gameplay != nil {
		content.Gameplay = opts.Gameplay
	}
	if opts.Weapons != nil {
		content.Weapons = opts.Weapons
	}
	if opts.Archetypes != nil {
		content.Archetypes = opts.Archetypes
	}
	if opts.Level != nil {
		content.Level = opts.Level
	}
	if err := content.Validate(); err != nil {
		return nil, err
	}

	log := logger.OrNop(opts.Logger)
	w := &GameWorld{
		entityManager: ecs.NewEntityManager(),
		logger:        log.Named("GameWorld"),
	}

	if err := w.registerPools(content); err != nil {
		return nil, err
	}

	physicsWorld, err := physics.NewWorld(physics.Config{
		Step:     content.Gameplay.Physics.StepDelta,
		MaxSteps: content.Gameplay.Physics.MaxStepsPerFrame,
		Gravity:  content.Gameplay.Physics.Gravity.Vector(),
	}, log.Named("PhysicsWorld"))
	if err != nil {
		return nil, err
	}
	w.physicsWorld = physicsWorld
	systems.RegisterContactHandlers(physicsWorld, w.entityManager, log)

	if err := w.build(content, opts, log); err != nil {
		w.Close()
		return nil, err
	}

	w.logger.Info("game world created",
		zap.String("level", content.Level.Name),
		zap.Int("entities", w.entityManager.EntityCount()),
		zap.Int("enemies", len(w.enemies)))
	return w, nil
}

// registerPools 按关卡内容为池化组件注册容量
func (w *GameWorld) registerPools(content *Content) error {
	bullets := 0
	for _, weapon := range content.Weapons.Weapons {
		bullets += weapon.PoolSize
	}
	weapons := len(content.Weapons.Weapons)
	characters := 1 + len(content.Level.Enemies)
	props := len(content.Level.Props)
	walls := len(content.Level.Colliders)

	// 瞄准点也有 Transform 和 Sprite
	visible := characters + weapons + bullets + props + 1 + poolSlack
	em := w.entityManager
	if _, err := ecs.RegisterPool[components.TransformComponent](em, visible); err != nil {
		return err
	}
	if _, err := ecs.RegisterPool[components.SpriteComponent](em, visible); err != nil {
		return err
	}
	if _, err := ecs.RegisterPool[components.PhysicsComponent](em, characters+bullets+props+walls+poolSlack); err != nil {
		return err
	}
	if _, err := ecs.RegisterPool[components.CharacterComponent](em, characters+poolSlack); err != nil {
		return err
	}
	if _, err := ecs.RegisterPool[components.AnimationComponent](em, characters+poolSlack); err != nil {
		return err
	}
	if _, err := ecs.RegisterPool[components.EnemyComponent](em, characters+poolSlack); err != nil {
		return err
	}
	if _, err := ecs.RegisterPool[components.WeaponComponent](em, weapons); err != nil {
		return err
	}
	if _, err := ecs.RegisterPool[components.BulletComponent](em, bullets); err != nil {
		return err
	}
	return nil
}

// build 创建实体和系统
func (w *GameWorld) build(content *Content, opts Options, log *zap.Logger) error {
	em := w.entityManager

	characters, err := entities.NewCharacterFactory(em, w.physicsWorld, content.Gameplay, content.Archetypes, log)
	if err != nil {
		return err
	}
	w.characters = characters
	maps, err := entities.NewMapFactory(em, w.physicsWorld, log)
	if err != nil {
		return err
	}
	weaponFactory, err := entities.NewWeaponFactory(em, w.physicsWorld, content.Weapons, log)
	if err != nil {
		return err
	}

	weapons, err := weaponFactory.NewWeapons()
	if err != nil {
		return fmt.Errorf("failed to create weapons: %w", err)
	}
	pools := make([]*systems.BulletPool, 0, weaponFactory.Count())
	for slot := 0; slot < weaponFactory.Count(); slot++ {
		cfg, err := weaponFactory.Config(slot)
		if err != nil {
			return err
		}
		pool, err := systems.NewBulletPool(em, slot, cfg.PoolSize, weaponFactory.BulletCreator(slot), log)
		if err != nil {
			return fmt.Errorf("failed to create bullet pool for %s: %w", cfg.Name, err)
		}
		pools = append(pools, pool)
	}
	w.bulletSystem = systems.NewBulletSystem(em, pools, log)

	spawn := content.Level.PlayerSpawn.Vector()
	w.player, err = characters.NewPlayer(spawn)
	if err != nil {
		return fmt.Errorf("failed to create player: %w", err)
	}

	w.level, err = entities.NewLevelLoader(maps, characters, log).Load(content.Level)
	if err != nil {
		return err
	}
	w.enemies = append(w.enemies, w.level.Enemies...)

	w.aim, err = entities.NewAim(em)
	if err != nil {
		return err
	}
	w.camera, err = entities.NewCamera(em, content.Gameplay.Camera, spawn)
	if err != nil {
		return err
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	w.playerSystem = systems.NewPlayerSystem(em, opts.Input, weapons, log)
	w.physicsSystem = systems.NewPhysicsSystem(em, w.physicsWorld)
	w.physicsDebug = systems.NewPhysicsDebugSystem(w.physicsWorld, opts.DebugPhysics)
	w.renderQueue = systems.NewRenderQueueSystem(em)

	w.scheduler = ecs.NewScheduler()
	for _, system := range []ecs.System{
		systems.NewAimSystem(em, opts.Input),
		w.playerSystem,
		systems.NewWeaponSystem(em, w.bulletSystem, log),
		systems.NewEnemySystem(em, content.Gameplay.Enemy, log),
		systems.NewCharacterSystem(em, log),
		w.bulletSystem,
		systems.NewAnimationSystem(em),
		w.renderQueue,
		w.physicsDebug,
		w.physicsSystem,
		systems.NewCameraSystem(em, rng),
	} {
		w.scheduler.AddSystem(system)
	}
	return nil
}

// Update 推进一帧：按优先级运行全部系统，然后移除标记删除的实体
func (w *GameWorld) Update(deltaTime float64) {
	if w.closed {
		return
	}
	w.time += deltaTime
	w.scheduler.Update(deltaTime)
	w.entityManager.RemoveMarkedEntities()
}

// SpawnEnemy 在运行时生成一个敌人
func (w *GameWorld) SpawnEnemy(kind string, position cp.Vector, size float64) (ecs.EntityID, error) {
	if w.closed {
		return ecs.InvalidEntity, ErrWorldClosed
	}
	id, err := w.characters.NewEnemy(kind, position, size)
	if err != nil {
		return ecs.InvalidEntity, err
	}
	w.enemies = append(w.enemies, id)
	return id, nil
}

// EntityManager 实体管理器
func (w *GameWorld) EntityManager() *ecs.EntityManager { return w.entityManager }

// PhysicsWorld 物理世界
func (w *GameWorld) PhysicsWorld() *physics.World { return w.physicsWorld }

// Scheduler 系统调度器
func (w *GameWorld) Scheduler() *ecs.Scheduler { return w.scheduler }

// Player 玩家实体
func (w *GameWorld) Player() ecs.EntityID { return w.player }

// Aim 瞄准点实体
func (w *GameWorld) Aim() ecs.EntityID { return w.aim }

// Weapons 武器实体，顺序与武器配置一致
func (w *GameWorld) Weapons() []ecs.EntityID { return w.playerSystem.Weapons() }

// Enemies 关卡和运行时生成的敌人（包括已死亡的）
func (w *GameWorld) Enemies() []ecs.EntityID { return w.enemies }

// Level 关卡加载结果
func (w *GameWorld) Level() *entities.LoadedLevel { return w.level }

// PlayerSystem 玩家系统（装备武器等操作）
func (w *GameWorld) PlayerSystem() *systems.PlayerSystem { return w.playerSystem }

// BulletSystem 子弹系统
func (w *GameWorld) BulletSystem() *systems.BulletSystem { return w.bulletSystem }

// Time 累计运行时间（秒）
func (w *GameWorld) Time() float64 { return w.time }

// Camera 镜头组件
func (w *GameWorld) Camera() (*components.CameraComponent, bool) {
	return ecs.GetComponent[*components.CameraComponent](w.entityManager, w.camera)
}

// RenderQueue 本帧按层级排好序的绘制列表
func (w *GameWorld) RenderQueue() []systems.RenderItem { return w.renderQueue.Items() }

// DebugShapes 本帧的碰撞盒，调试关闭时为空
func (w *GameWorld) DebugShapes() []systems.DebugShape { return w.physicsDebug.Shapes() }

// SetDebugPhysics 打开或关闭碰撞盒收集
func (w *GameWorld) SetDebugPhysics(enabled bool) { w.physicsDebug.SetEnabled(enabled) }

// DebugPhysics 是否在收集碰撞盒
func (w *GameWorld) DebugPhysics() bool { return w.physicsDebug.Enabled() }

// Stats 当前统计
func (w *GameWorld) Stats() Stats {
	stats := Stats{
		Entities:      w.entityManager.EntityCount(),
		ActiveBullets: w.bulletSystem.ActiveBullets(),
		PhysicsSteps:  w.physicsSystem.LastSteps(),
	}
	for _, id := range w.enemies {
		if character, ok := ecs.GetComponent[*components.CharacterComponent](w.entityManager, id); ok && !character.IsDead() {
			stats.EnemiesAlive++
		}
	}
	if character, ok := ecs.GetComponent[*components.CharacterComponent](w.entityManager, w.player); ok {
		stats.PlayerHealth = character.Health
	}
	return stats
}

// Close 结束本局：释放子弹池、清空实体并销毁物理空间
// 可重复调用
func (w *GameWorld) Close() {
	if w.closed {
		return
	}
	w.closed = true
	if w.bulletSystem != nil {
		w.bulletSystem.Close()
	}
	w.entityManager.Clear()
	if w.physicsWorld != nil {
		w.physicsWorld.Close()
	}
	w.logger.Debug("game world closed", zap.Float64("time", w.time))
}
