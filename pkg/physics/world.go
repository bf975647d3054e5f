package physics

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
	"go.uber.org/zap"
)

// ErrInvalidWorldConfig 物理世界参数非法
var ErrInvalidWorldConfig = errors.New("invalid physics world config")

// gameplayCollisionType 所有形状共用的碰撞类型，接触分发只经过一个处理器
const gameplayCollisionType cp.CollisionType = 1

// stepEpsilon 时间累积的容差，避免 1/60 累加的浮点误差让某一帧少走一步
const stepEpsilon = 1e-9

// 默认参数
const (
	DefaultStep     = 1.0 / 60.0
	DefaultMaxSteps = 5
)

// Config 物理世界参数
type Config struct {
	// Step 固定步长（秒）
	Step float64
	// MaxSteps 每帧最多模拟的步数，超出的累积时间被丢弃
	MaxSteps int
	// Gravity 重力（俯视角游戏为零）
	Gravity cp.Vector
}

// DefaultConfig 60Hz、每帧最多 5 步、无重力
func DefaultConfig() Config {
	return Config{Step: DefaultStep, MaxSteps: DefaultMaxSteps}
}

// World 固定步长的物理世界
//
// 拥有 Chipmunk2D 空间和时间累积器；所有刚体由 World 创建。
// 接触开始时按双方分类位的并集查找处理器并回调（见 RegisterContactHandler）。
// 非并发安全，只能在游戏循环线程使用。
type World struct {
	space       *cp.Space
	step        float64
	maxSteps    int
	accumulator float64
	bodies      []*Body
	handlers    map[Category]ContactHandler
	logger      *zap.Logger
}

// NewWorld 创建物理世界
func NewWorld(cfg Config, logger *zap.Logger) (*World, error) {
	if cfg.Step <= 0 {
		return nil, fmt.Errorf("%w: step %v", ErrInvalidWorldConfig, cfg.Step)
	}
	if cfg.MaxSteps <= 0 {
		return nil, fmt.Errorf("%w: max steps %d", ErrInvalidWorldConfig, cfg.MaxSteps)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	w := &World{
		space:    cp.NewSpace(),
		step:     cfg.Step,
		maxSteps: cfg.MaxSteps,
		handlers: make(map[Category]ContactHandler),
		logger:   logger,
	}
	w.space.SetGravity(cfg.Gravity)

	handler := w.space.NewCollisionHandler(gameplayCollisionType, gameplayCollisionType)
	handler.BeginFunc = w.begin

	return w, nil
}

// Step 固定步长
func (w *World) Step() float64 {
	return w.step
}

// Accumulator 尚未模拟的累积时间
func (w *World) Accumulator() float64 {
	return w.accumulator
}

// CreateBody 按定义创建刚体；def.Inactive 为 false 时立即加入模拟
func (w *World) CreateBody(def BodyDef) *Body {
	body := newBody(w, def)
	w.bodies = append(w.bodies, body)
	if !def.Inactive {
		body.SetActive(true)
	}
	return body
}

// Bodies 返回所有未销毁刚体的副本（按创建顺序）
func (w *World) Bodies() []*Body {
	result := make([]*Body, len(w.bodies))
	copy(result, w.bodies)
	return result
}

// Advance 累积 deltaTime 并按固定步长推进模拟
//
// 每走一步调用一次 afterStep（可为 nil），返回本帧走的步数。
// 累积时间超过 MaxSteps 步时，多余部分被丢弃。
// 接触处理器在步进过程中被调用，不能在其中激活或停用刚体。
func (w *World) Advance(deltaTime float64, afterStep func()) int {
	if deltaTime > 0 {
		w.accumulator += deltaTime
	}

	steps := 0
	for w.accumulator >= w.step-stepEpsilon {
		if steps >= w.maxSteps {
			w.logger.Debug("dropping physics backlog",
				zap.Float64("dropped", w.accumulator),
				zap.Int("steps", steps))
			w.accumulator = 0
			break
		}
		w.space.Step(w.step)
		w.accumulator -= w.step
		steps++
		if afterStep != nil {
			afterStep()
		}
	}
	if w.accumulator < 0 {
		w.accumulator = 0
	}
	return steps
}

// Close 销毁所有刚体
func (w *World) Close() {
	for len(w.bodies) > 0 {
		w.bodies[len(w.bodies)-1].Destroy()
	}
	w.accumulator = 0
}

func (w *World) forget(body *Body) {
	for i, b := range w.bodies {
		if b == body {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			return
		}
	}
}
