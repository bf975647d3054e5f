// Command tui 在终端中运行一局游戏
//
// WASD 或方向键移动，鼠标指向瞄准，按住左键或 F 键开火，空格切换武器，Esc/q 退出。
// 终端没有按键抬起事件，移动键在最后一次按下（含自动重复）后保持 holdTime。
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/gonewx/prison/pkg/config"
	"github.com/gonewx/prison/pkg/embedded"
	"github.com/gonewx/prison/pkg/game"
	"github.com/gonewx/prison/pkg/logger"
	"github.com/gonewx/prison/pkg/systems"
)

const (
	tickRate = 60
	holdTime = 0.15
)

var (
	levelPath = flag.String("level", "", "关卡 YAML 文件，默认内置的 sandbox")
	logFile   = flag.String("log", "", "日志文件（终端被画面占用，默认不输出日志）")
	logLevel  = flag.String("log-level", "info", "日志级别")
)

// heldKeys 各方向键剩余的保持时间
type heldKeys struct {
	up, down, left, right float64
	fire                  float64
}

// viewer 终端查看器
type viewer struct {
	screen tcell.Screen
	world  *game.GameWorld
	input  *systems.InputState
	held   heldKeys
	mouse  struct {
		x, y   int
		inside bool
	}
	mouseFire bool
	view      viewport
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "tui: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	embedded.Init(os.DirFS("."))
	if !embedded.Exists(game.GameplayFile) {
		// 不在仓库根目录运行时退回代码内置默认值
		embedded.Init(nil)
	}

	log := zap.NewNop()
	if *logFile != "" {
		var err error
		log, err = logger.New(logger.Options{Level: *logLevel, Verbose: true, OutputPaths: []string{*logFile}})
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()
	}

	content := game.DefaultContent()
	switch {
	case embedded.IsInitialized():
		loaded, err := game.LoadContent(game.ContentPaths{Level: *levelPath})
		if err != nil {
			return err
		}
		content = loaded
	case *levelPath != "":
		level, err := config.LoadLevelConfig(*levelPath)
		if err != nil {
			return err
		}
		content.Level = level
	}

	input := &systems.InputState{}
	world, err := game.NewGameWorld(game.Options{
		Gameplay:     content.Gameplay,
		Weapons:      content.Weapons,
		Archetypes:   content.Archetypes,
		Level:        content.Level,
		Input:        input,
		Logger:       log,
		DebugPhysics: true,
	})
	if err != nil {
		return err
	}
	defer world.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	v := &viewer{screen: screen, world: world, input: input}
	v.loop()
	return nil
}

// loop 事件在独立 goroutine 中读取，通过 channel 交给游戏循环
func (v *viewer) loop() {
	ticker := time.NewTicker(time.Second / tickRate)
	defer ticker.Stop()

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	const dt = 1.0 / tickRate
	for {
		select {
		case ev := <-events:
			if !v.handle(ev) {
				return
			}
		case <-ticker.C:
			v.apply(dt)
			v.world.Update(dt)
			v.input.EndFrame()
			v.draw()
		}
	}
}

// handle 处理一个终端事件，返回 false 表示退出
func (v *viewer) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			v.held.up = holdTime
		case tcell.KeyDown:
			v.held.down = holdTime
		case tcell.KeyLeft:
			v.held.left = holdTime
		case tcell.KeyRight:
			v.held.right = holdTime
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'w', 'W':
				v.held.up = holdTime
			case 's', 'S':
				v.held.down = holdTime
			case 'a', 'A':
				v.held.left = holdTime
			case 'd', 'D':
				v.held.right = holdTime
			case 'f', 'F':
				v.held.fire = holdTime
			case ' ':
				v.input.SwitchWeapon = true
			}
		}
	case *tcell.EventMouse:
		v.mouse.x, v.mouse.y = ev.Position()
		v.mouse.inside = true
		v.mouseFire = ev.Buttons()&tcell.Button1 != 0
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

// apply 把保持中的按键写入输入状态
func (v *viewer) apply(dt float64) {
	h := &v.held
	v.input.Up, v.input.Down = h.up > 0, h.down > 0
	v.input.Left, v.input.Right = h.left > 0, h.right > 0
	v.input.Fire = v.mouseFire || h.fire > 0
	for _, t := range []*float64{&h.up, &h.down, &h.left, &h.right, &h.fire} {
		*t = max(*t-dt, 0)
	}
	if v.mouse.inside {
		v.input.Aim = v.view.cellToWorld(v.mouse.x, v.mouse.y)
	}
}

// draw 绘制墙体、渲染队列和状态栏
func (v *viewer) draw() {
	v.screen.Clear()
	width, height := v.screen.Size()
	camera, ok := v.world.Camera()
	if !ok {
		return
	}
	// 最后一行留给状态栏
	v.view = viewport{center: camera.Position, width: width, height: height - 1}

	wall := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for _, shape := range v.world.DebugShapes() {
		for _, cell := range v.view.wallCells(shape) {
			v.screen.SetContent(cell[0], cell[1], '█', nil, wall)
		}
	}
	for _, item := range v.world.RenderQueue() {
		x, y := v.view.worldToCell(item.Position)
		if !v.view.contains(x, y) {
			continue
		}
		r, style := glyph(item)
		v.screen.SetContent(x, y, r, nil, style)
	}

	stats := v.world.Stats()
	status := fmt.Sprintf(" HP %.0f | enemies %d | bullets %d | t %.1fs | space: switch  f/mouse: fire  q: quit",
		stats.PlayerHealth, stats.EnemiesAlive, stats.ActiveBullets, v.world.Time())
	for i, r := range status {
		if i >= width {
			break
		}
		v.screen.SetContent(i, height-1, r, nil, tcell.StyleDefault.Reverse(true))
	}
	v.screen.Show()
}
