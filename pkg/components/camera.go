package components

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
)

// 镜头默认参数
const (
	DefaultFollowSpeed    = 5.0
	DefaultViewportWidth  = 8.5
	DefaultViewportHeight = 6.0
	DefaultPixelsPerUnit  = 32.0
	DefaultScreenWidth    = 1024.0
	DefaultScreenHeight   = 720.0
)

// CameraComponent 跟随玩家的正交镜头
//
// 坐标变换使用 ebiten.GeoM：
//   - View: 世界坐标 -> 以镜头为中心的世界单位
//   - Projection: 镜头单位 -> 屏幕像素（y 轴翻转，原点在屏幕中心）
//   - Combined: View 之后接 Projection
type CameraComponent struct {
	// Position 镜头中心（世界坐标）
	Position cp.Vector
	// FollowSpeed 跟随速度，每帧插值系数 = FollowSpeed * dt
	FollowSpeed float64
	// ViewportWidth/ViewportHeight 可见区域（世界单位）
	ViewportWidth  float64
	ViewportHeight float64
	// ScreenWidth/ScreenHeight 屏幕尺寸（像素）
	ScreenWidth  float64
	ScreenHeight float64

	// RumblePower 震动强度（世界单位）
	RumblePower float64
	// RumbleDuration 震动总时长（秒）
	RumbleDuration float64
	// RumbleTime 震动已进行的时间（秒）
	RumbleTime float64

	View       ebiten.GeoM
	Projection ebiten.GeoM
	Combined   ebiten.GeoM
}

// Rumble 开始（或重新开始）一次震动
func (c *CameraComponent) Rumble(duration, power float64) {
	c.RumbleDuration = duration
	c.RumblePower = power
	c.RumbleTime = 0
}

// IsRumbling 震动是否进行中
func (c *CameraComponent) IsRumbling() bool {
	return c.RumbleTime < c.RumbleDuration
}

// PixelsPerUnit 当前屏幕下每个世界单位对应的像素数（保持视口完整可见）
func (c *CameraComponent) PixelsPerUnit() float64 {
	if c.ViewportWidth <= 0 || c.ViewportHeight <= 0 {
		return DefaultPixelsPerUnit
	}
	return math.Min(c.ScreenWidth/c.ViewportWidth, c.ScreenHeight/c.ViewportHeight)
}

// UpdateMatrices 根据当前位置和屏幕尺寸重算 View/Projection/Combined
func (c *CameraComponent) UpdateMatrices() {
	c.View.Reset()
	c.View.Translate(-c.Position.X, -c.Position.Y)

	ppu := c.PixelsPerUnit()
	c.Projection.Reset()
	c.Projection.Scale(ppu, -ppu)
	c.Projection.Translate(c.ScreenWidth/2, c.ScreenHeight/2)

	c.Combined = c.View
	c.Combined.Concat(c.Projection)
}

// WorldToScreen 世界坐标 -> 屏幕像素
func (c *CameraComponent) WorldToScreen(p cp.Vector) cp.Vector {
	x, y := c.Combined.Apply(p.X, p.Y)
	return cp.Vector{X: x, Y: y}
}

// ScreenToWorld 屏幕像素 -> 世界坐标
func (c *CameraComponent) ScreenToWorld(x, y float64) cp.Vector {
	inverse := c.Combined
	if !inverse.IsInvertible() {
		return c.Position
	}
	inverse.Invert()
	wx, wy := inverse.Apply(x, y)
	return cp.Vector{X: wx, Y: wy}
}

// Reset 中性状态：原点、默认视口、无震动
func (c *CameraComponent) Reset() {
	c.Position = cp.Vector{}
	c.FollowSpeed = DefaultFollowSpeed
	c.ViewportWidth = DefaultViewportWidth
	c.ViewportHeight = DefaultViewportHeight
	c.ScreenWidth = DefaultScreenWidth
	c.ScreenHeight = DefaultScreenHeight
	c.RumblePower = 0
	c.RumbleDuration = 0
	c.RumbleTime = 0
	c.UpdateMatrices()
}
