package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"

	"github.com/gonewx/prison/pkg/config"
	"github.com/gonewx/prison/pkg/physics"
	"github.com/gonewx/prison/pkg/systems"
)

func TestViewport_RoundTrip(t *testing.T) {
	v := viewport{center: cp.Vector{X: 3, Y: 3}, width: 80, height: 24}

	x, y := v.worldToCell(cp.Vector{X: 3, Y: 3})
	assert.Equal(t, 40, x)
	assert.Equal(t, 11, y)

	tests := []struct{ x, y int }{{0, 0}, {40, 11}, {79, 23}, {12, 5}}
	for _, tt := range tests {
		cx, cy := v.worldToCell(v.cellToWorld(tt.x, tt.y))
		assert.Equal(t, tt.x, cx)
		assert.Equal(t, tt.y, cy)
	}

	// y 轴向上，屏幕行向下
	_, above := v.worldToCell(cp.Vector{X: 3, Y: 4})
	assert.Less(t, above, y)
	assert.True(t, v.contains(0, 0))
	assert.False(t, v.contains(80, 0))
	assert.False(t, v.contains(0, -1))
}

func TestGlyph(t *testing.T) {
	tests := []struct {
		item     systems.RenderItem
		expected rune
	}{
		{systems.RenderItem{ZIndex: config.ZIndexCharacter, Region: "prisoner_09"}, '@'},
		{systems.RenderItem{ZIndex: config.ZIndexCharacter, Region: "zombie_policeman_01"}, 'Z'},
		{systems.RenderItem{ZIndex: config.ZIndexProp, Region: "locker"}, 'L'},
		{systems.RenderItem{ZIndex: config.ZIndexProp, Region: "barrel"}, 'o'},
		{systems.RenderItem{ZIndex: config.ZIndexBullet}, '*'},
		{systems.RenderItem{ZIndex: config.ZIndexWeapon}, '-'},
		{systems.RenderItem{ZIndex: config.ZIndexAim}, '+'},
	}
	for _, tt := range tests {
		r, style := glyph(tt.item)
		assert.Equal(t, tt.expected, r, tt.item.Region)
		assert.NotEqual(t, tcell.StyleDefault, style)
	}
}

func TestWallCells(t *testing.T) {
	v := viewport{width: 20, height: 10}
	wall := systems.DebugShape{
		Position: cp.Vector{X: 0.5, Y: 0.5},
		HalfSize: cp.Vector{X: 0.5, Y: 0.5},
		Category: physics.CategoryEnvironment,
	}
	// 1 x 1 的墙覆盖若干字符格，两端的格子都包含在内
	cells := v.wallCells(wall)
	assert.NotEmpty(t, cells)
	for _, cell := range cells {
		assert.True(t, v.contains(cell[0], cell[1]))
	}

	wall.Category = physics.CategoryEnemy
	assert.Empty(t, v.wallCells(wall))

	far := systems.DebugShape{Position: cp.Vector{X: 100}, HalfSize: cp.Vector{X: 1, Y: 1}, Category: physics.CategoryEnvironment}
	assert.Empty(t, v.wallCells(far), "walls outside the view are clipped")
}
