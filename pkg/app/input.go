package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/prison/pkg/components"
	"github.com/gonewx/prison/pkg/systems"
)

// EbitenInput 从键盘鼠标采集输入，实现 systems.Input
//
// 按键：WASD 移动，鼠标左键按住开火，空格切换武器（只在按下的那一帧生效）。
// 光标位置通过镜头的逆矩阵换算成世界坐标。
type EbitenInput struct {
	systems.InputState

	camera func() (*components.CameraComponent, bool)
}

// NewEbitenInput 创建输入采集器，camera 用于屏幕坐标到世界坐标的换算
func NewEbitenInput(camera func() (*components.CameraComponent, bool)) *EbitenInput {
	return &EbitenInput{camera: camera}
}

// Poll 采集本帧输入，在 GameWorld.Update 之前调用
func (i *EbitenInput) Poll() {
	i.Up = ebiten.IsKeyPressed(ebiten.KeyW)
	i.Down = ebiten.IsKeyPressed(ebiten.KeyS)
	i.Left = ebiten.IsKeyPressed(ebiten.KeyA)
	i.Right = ebiten.IsKeyPressed(ebiten.KeyD)
	i.Fire = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		i.SwitchWeapon = true
	}

	if i.camera == nil {
		return
	}
	if camera, ok := i.camera(); ok {
		x, y := ebiten.CursorPosition()
		i.Aim = camera.ScreenToWorld(float64(x), float64(y))
	}
}
