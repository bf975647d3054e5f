package main

import (
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/jakecoffman/cp"

	"github.com/gonewx/prison/pkg/config"
	"github.com/gonewx/prison/pkg/physics"
	"github.com/gonewx/prison/pkg/systems"
)

// 每个字符格对应的世界尺寸，终端字符高约为宽的两倍
const (
	cellWidth  = 0.25
	cellHeight = 0.5
)

// viewport 以镜头位置为中心的字符网格
type viewport struct {
	center        cp.Vector
	width, height int
}

// worldToCell 世界坐标 -> 字符格（y 轴向下）
func (v viewport) worldToCell(p cp.Vector) (int, int) {
	x := int(math.Floor((p.X-v.center.X)/cellWidth)) + v.width/2
	y := v.height/2 - int(math.Floor((p.Y-v.center.Y)/cellHeight)) - 1
	return x, y
}

// cellToWorld 字符格中心 -> 世界坐标
func (v viewport) cellToWorld(x, y int) cp.Vector {
	return cp.Vector{
		X: v.center.X + (float64(x-v.width/2)+0.5)*cellWidth,
		Y: v.center.Y + (float64(v.height/2-y-1)+0.5)*cellHeight,
	}
}

// contains 字符格是否在网格内
func (v viewport) contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < v.width && y < v.height
}

// glyph 渲染项对应的字符和样式
func glyph(item systems.RenderItem) (rune, tcell.Style) {
	style := tcell.StyleDefault
	switch item.ZIndex {
	case config.ZIndexProp:
		if strings.HasPrefix(item.Region, config.PropLocker) {
			return 'L', style.Foreground(tcell.ColorOlive)
		}
		return 'o', style.Foreground(tcell.ColorMaroon)
	case config.ZIndexCharacter:
		if strings.HasPrefix(item.Region, "zombie") {
			return 'Z', style.Foreground(tcell.ColorGreen)
		}
		return '@', style.Foreground(tcell.ColorOrange).Bold(true)
	case config.ZIndexWeapon:
		return '-', style.Foreground(tcell.ColorSilver)
	case config.ZIndexBullet:
		return '*', style.Foreground(tcell.ColorYellow)
	default:
		return '+', style.Foreground(tcell.ColorWhite)
	}
}

// wallCells 环境碰撞盒覆盖的字符格
func (v viewport) wallCells(shape systems.DebugShape) [][2]int {
	if shape.Category != physics.CategoryEnvironment || shape.Sensor {
		return nil
	}
	x0, y1 := v.worldToCell(shape.Position.Sub(shape.HalfSize))
	x1, y0 := v.worldToCell(shape.Position.Add(shape.HalfSize))
	var cells [][2]int
	for y := max(y0, 0); y <= min(y1, v.height-1); y++ {
		for x := max(x0, 0); x <= min(x1, v.width-1); x++ {
			cells = append(cells, [2]int{x, y})
		}
	}
	return cells
}
