// Package app 把 GameWorld 包装成 ebiten.Game
//
// 该包负责平台相关的部分：采集键鼠输入、绘制占位画面、全屏和调试开关。
// 桌面端通过 main.go 调用 NewApp()。
package app

import (
	"errors"
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/gonewx/prison/pkg/game"
	"github.com/gonewx/prison/pkg/logger"
)

// Config 定义应用启动配置
type Config struct {
	// Content 本局使用的配置内容，必填
	Content *game.Content
	// Settings 用户设置，可为 nil（使用默认设置，不持久化）
	Settings *game.SettingsManager
	// Logger 可为 nil
	Logger *zap.Logger
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	world    *game.GameWorld
	input    *EbitenInput
	settings *game.SettingsManager
	logger   *zap.Logger

	screenWidth  int
	screenHeight int

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 逻辑屏幕尺寸 = 镜头视口 × 每单位像素数，窗口尺寸再乘以设置中的缩放倍数。
func NewApp(cfg Config) (*App, error) {
	if cfg.Content == nil {
		return nil, errors.New("app: content is required")
	}
	settings := cfg.Settings
	if settings == nil {
		settings = game.NewSettingsManager(nil, cfg.Logger)
	}
	log := logger.OrNop(cfg.Logger)

	a := &App{
		settings:     settings,
		logger:       log.Named("App"),
		screenWidth:  int(math.Round(cfg.Content.Gameplay.Camera.ViewportWidth * cfg.Content.Gameplay.Camera.PixelsPerUnit)),
		screenHeight: int(math.Round(cfg.Content.Gameplay.Camera.ViewportHeight * cfg.Content.Gameplay.Camera.PixelsPerUnit)),
	}
	a.input = NewEbitenInput(nil)

	world, err := game.NewGameWorld(game.Options{
		Gameplay:     cfg.Content.Gameplay,
		Weapons:      cfg.Content.Weapons,
		Archetypes:   cfg.Content.Archetypes,
		Level:        cfg.Content.Level,
		Input:        a.input,
		Logger:       log,
		Rand:         rand.New(rand.NewSource(time.Now().UnixNano())),
		DebugPhysics: settings.GetSettings().DebugPhysics,
	})
	if err != nil {
		return nil, err
	}
	a.world = world
	a.input.camera = world.Camera

	if camera, ok := world.Camera(); ok {
		camera.ScreenWidth = float64(a.screenWidth)
		camera.ScreenHeight = float64(a.screenHeight)
		camera.UpdateMatrices()
	}

	a.logger.Info("app created",
		zap.Int("screenWidth", a.screenWidth),
		zap.Int("screenHeight", a.screenHeight),
		zap.Bool("debugPhysics", world.DebugPhysics()))
	return a, nil
}

// WindowSize 按设置的缩放倍数计算窗口尺寸
func (a *App) WindowSize() (int, int) {
	scale := a.settings.GetSettings().WindowScale
	return a.screenWidth * scale, a.screenHeight * scale
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.WindowSize())
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
		a.settings.SetFullscreen(ebiten.IsFullscreen())
		a.saveSettings()
	}

	// F3 切换碰撞盒显示
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		enabled := !a.world.DebugPhysics()
		a.world.SetDebugPhysics(enabled)
		a.settings.SetDebugPhysics(enabled)
		a.saveSettings()
	}

	a.input.Poll()
	a.world.Update(1.0 / float64(ebiten.TPS()))
	a.input.EndFrame()
	return nil
}

func (a *App) saveSettings() {
	if err := a.settings.Save(); err != nil {
		a.logger.Warn("failed to save settings", zap.Error(err))
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	drawWorld(screen, a.world)
	if a.world.DebugPhysics() {
		drawDebug(screen, a.world)
	}
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时两侧填充黑色，使用最近邻采样保持像素风格
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.screenWidth, a.screenHeight
}

// World 返回当前对局
func (a *App) World() *game.GameWorld {
	return a.world
}

// Close 结束对局并保存设置
func (a *App) Close() {
	a.world.Close()
	a.saveSettings()
}
