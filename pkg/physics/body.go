package physics

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/gonewx/prison/pkg/ecs"
)

// BodyType 刚体类型
type BodyType int

const (
	// BodyDynamic 受力与碰撞影响
	BodyDynamic BodyType = iota
	// BodyKinematic 只由代码摆放，推动动态刚体但自身不受影响
	BodyKinematic
	// BodyStatic 永不移动
	BodyStatic
)

// BodyDef 创建刚体的参数，形状固定为以刚体为中心的矩形
type BodyDef struct {
	Type BodyType
	// Position 初始位置（世界坐标）
	Position cp.Vector
	// Angle 初始角度（弧度）
	Angle float64
	// HalfSize 矩形半宽、半高
	HalfSize cp.Vector
	// Density 密度，质量 = 密度 * 面积（仅动态刚体）
	Density float64
	// FixedRotation 禁止旋转（角色）
	FixedRotation bool
	// Sensor 只报告接触，不产生碰撞响应（子弹）
	Sensor bool
	Filter Filter
	// Owner 拥有该刚体的实体，碰撞回调据此找到组件
	Owner ecs.EntityID
	// Inactive 创建后不加入物理世界（子弹池中的空闲子弹）
	Inactive bool
}

// Body 物理世界中的一个刚体及其矩形形状
type Body struct {
	world    *World
	body     *cp.Body
	shape    *cp.Shape
	kind     BodyType
	halfSize cp.Vector
	filter   Filter
	sensor   bool
	owner    ecs.EntityID
	active   bool
}

func newBody(w *World, def BodyDef) *Body {
	width, height := def.HalfSize.X*2, def.HalfSize.Y*2

	var body *cp.Body
	switch def.Type {
	case BodyStatic:
		body = cp.NewStaticBody()
	case BodyKinematic:
		body = cp.NewKinematicBody()
	default:
		density := def.Density
		if density <= 0 {
			density = 1
		}
		mass := density * width * height
		moment := cp.MomentForBox(mass, width, height)
		if def.FixedRotation {
			moment = math.Inf(1)
		}
		body = cp.NewBody(mass, moment)
	}
	body.SetPosition(def.Position)
	body.SetAngle(def.Angle)
	body.UserData = def.Owner

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFilter(def.Filter.shapeFilter())
	shape.SetSensor(def.Sensor)
	shape.SetCollisionType(gameplayCollisionType)
	shape.UserData = def.Filter.Category

	return &Body{
		world:    w,
		body:     body,
		shape:    shape,
		kind:     def.Type,
		halfSize: def.HalfSize,
		filter:   def.Filter,
		sensor:   def.Sensor,
		owner:    def.Owner,
	}
}

// Owner 拥有该刚体的实体
func (b *Body) Owner() ecs.EntityID {
	return b.owner
}

// Type 刚体类型
func (b *Body) Type() BodyType {
	return b.kind
}

// IsStatic 是否为静态刚体
func (b *Body) IsStatic() bool {
	return b.kind == BodyStatic
}

// Filter 形状的碰撞过滤器
func (b *Body) Filter() Filter {
	return b.filter
}

// IsSensor 是否只报告接触
func (b *Body) IsSensor() bool {
	return b.sensor
}

// HalfSize 矩形半宽、半高
func (b *Body) HalfSize() cp.Vector {
	return b.halfSize
}

// Position 刚体位置（世界坐标）
func (b *Body) Position() cp.Vector {
	return b.body.Position()
}

// Angle 刚体角度（弧度）
func (b *Body) Angle() float64 {
	return b.body.Angle()
}

// SetTransform 直接摆放刚体；静态刚体只应在创建时摆放
func (b *Body) SetTransform(position cp.Vector, angle float64) {
	b.body.SetPosition(position)
	b.body.SetAngle(angle)
}

// LinearVelocity 线速度
func (b *Body) LinearVelocity() cp.Vector {
	return b.body.Velocity()
}

// SetLinearVelocity 设置线速度
func (b *Body) SetLinearVelocity(v cp.Vector) {
	b.body.SetVelocity(v.X, v.Y)
}

// IsActive 是否参与模拟
func (b *Body) IsActive() bool {
	return b.active
}

// SetActive 把刚体加入或移出物理世界；移出后不参与任何碰撞
func (b *Body) SetActive(active bool) {
	if b.world == nil || b.active == active {
		return
	}
	if active {
		b.world.space.AddBody(b.body)
		b.world.space.AddShape(b.shape)
	} else {
		b.world.space.RemoveShape(b.shape)
		b.world.space.RemoveBody(b.body)
	}
	b.active = active
}

// Destroy 从物理世界移除刚体，之后不可再激活
func (b *Body) Destroy() {
	if b.world == nil {
		return
	}
	b.SetActive(false)
	b.world.forget(b)
	b.world = nil
}
