package app

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"

	"github.com/gonewx/prison/pkg/components"
	"github.com/gonewx/prison/pkg/config"
	"github.com/gonewx/prison/pkg/game"
	"github.com/gonewx/prison/pkg/physics"
	"github.com/gonewx/prison/pkg/systems"
)

// 占位色块颜色
var (
	backgroundColor = color.RGBA{R: 38, G: 38, B: 46, A: 255}
	propColor       = color.RGBA{R: 139, G: 94, B: 60, A: 255}
	playerColor     = color.RGBA{R: 230, G: 140, B: 40, A: 255}
	zombieColor     = color.RGBA{R: 96, G: 160, B: 72, A: 255}
	weaponColor     = color.RGBA{R: 170, G: 170, B: 180, A: 255}
	bulletColor     = color.RGBA{R: 255, G: 230, B: 90, A: 255}
	aimColor        = color.RGBA{R: 255, G: 255, B: 255, A: 200}
)

// itemColor 按层级和区域名选择占位颜色
func itemColor(item systems.RenderItem) color.Color {
	switch item.ZIndex {
	case config.ZIndexProp:
		return propColor
	case config.ZIndexCharacter:
		if strings.HasPrefix(item.Region, "zombie") {
			return zombieColor
		}
		return playerColor
	case config.ZIndexWeapon:
		return weaponColor
	case config.ZIndexBullet:
		return bulletColor
	default:
		return aimColor
	}
}

// categoryColor 调试叠加层中按碰撞分类着色
func categoryColor(category physics.Category) color.Color {
	switch category {
	case physics.CategoryEnvironment:
		return color.RGBA{R: 80, G: 140, B: 255, A: 255}
	case physics.CategoryPlayer, physics.CategoryEnemy:
		return color.RGBA{R: 0, G: 255, B: 0, A: 255}
	case physics.CategoryPlayerHit, physics.CategoryEnemyHit:
		return color.RGBA{R: 255, G: 60, B: 60, A: 255}
	default:
		return color.RGBA{R: 255, G: 255, B: 0, A: 255}
	}
}

// itemCorners 精灵四个角的世界坐标
// 精灵以 Origin 为旋转中心，Position 对齐 Origin
func itemCorners(item systems.RenderItem) [4]cp.Vector {
	size := cp.Vector{X: item.Size.X * item.Scale.X, Y: item.Size.Y * item.Scale.Y}
	origin := cp.Vector{X: item.Origin.X * item.Scale.X, Y: item.Origin.Y * item.Scale.Y}
	if item.FlipX {
		origin.X = size.X - origin.X
	}
	if item.FlipY {
		origin.Y = size.Y - origin.Y
	}
	rotation := cp.ForAngle(item.Rotation * math.Pi / 180)
	local := [4]cp.Vector{
		{X: -origin.X, Y: -origin.Y},
		{X: size.X - origin.X, Y: -origin.Y},
		{X: size.X - origin.X, Y: size.Y - origin.Y},
		{X: -origin.X, Y: size.Y - origin.Y},
	}
	var corners [4]cp.Vector
	for i, p := range local {
		corners[i] = p.Rotate(rotation).Add(item.Position)
	}
	return corners
}

// shapeCorners 调试碰撞盒四个角的世界坐标
func shapeCorners(shape systems.DebugShape) [4]cp.Vector {
	rotation := cp.ForAngle(shape.Angle)
	h := shape.HalfSize
	local := [4]cp.Vector{{X: -h.X, Y: -h.Y}, {X: h.X, Y: -h.Y}, {X: h.X, Y: h.Y}, {X: -h.X, Y: h.Y}}
	var corners [4]cp.Vector
	for i, p := range local {
		corners[i] = p.Rotate(rotation).Add(shape.Position)
	}
	return corners
}

// drawQuad 未旋转时填充矩形，旋转时描边
func drawQuad(screen *ebiten.Image, camera *components.CameraComponent, corners [4]cp.Vector, clr color.Color, fill bool) {
	var points [4]cp.Vector
	for i, c := range corners {
		points[i] = camera.WorldToScreen(c)
	}

	axisAligned := points[0].Y == points[1].Y && points[1].X == points[2].X
	if fill && axisAligned {
		x := math.Min(points[0].X, points[2].X)
		y := math.Min(points[0].Y, points[2].Y)
		w := math.Abs(points[2].X - points[0].X)
		h := math.Abs(points[2].Y - points[0].Y)
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), clr, false)
		return
	}
	for i := range points {
		a, b := points[i], points[(i+1)%len(points)]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, clr, true)
	}
}

// drawWorld 按渲染队列顺序绘制占位色块
func drawWorld(screen *ebiten.Image, world *game.GameWorld) {
	screen.Fill(backgroundColor)
	camera, ok := world.Camera()
	if !ok {
		return
	}
	for _, item := range world.RenderQueue() {
		drawQuad(screen, camera, itemCorners(item), itemColor(item), true)
	}
}

// drawDebug 绘制碰撞盒和统计信息
func drawDebug(screen *ebiten.Image, world *game.GameWorld) {
	camera, ok := world.Camera()
	if !ok {
		return
	}
	for _, shape := range world.DebugShapes() {
		drawQuad(screen, camera, shapeCorners(shape), categoryColor(shape.Category), false)
	}

	stats := world.Stats()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("HP %.0f  enemies %d  bullets %d  entities %d  steps %d  TPS %.0f",
		stats.PlayerHealth, stats.EnemiesAlive, stats.ActiveBullets, stats.Entities, stats.PhysicsSteps, ebiten.ActualTPS()), 4, 4)
}
