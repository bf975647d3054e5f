package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"
	"go.uber.org/zap"

	"github.com/gonewx/prison/pkg/app"
	"github.com/gonewx/prison/pkg/config"
	"github.com/gonewx/prison/pkg/embedded"
	"github.com/gonewx/prison/pkg/game"
	"github.com/gonewx/prison/pkg/logger"
)

var (
	verbose      = flag.Bool("verbose", false, "显示详细日志")
	development  = flag.Bool("dev", false, "彩色控制台日志并打印调用位置")
	logLevel     = flag.String("log-level", "", "日志级别（debug/info/warn/error），默认取用户设置")
	debugPhysics = flag.Bool("debug-physics", false, "绘制碰撞盒（F3 切换）")
	levelPath    = flag.String("level", "", "关卡 YAML 文件，默认内置的 sandbox")
	gameplayPath = flag.String("gameplay", "", "玩法参数 YAML 文件")
	weaponsPath  = flag.String("weapons", "", "武器列表 YAML 文件")
	archetypes   = flag.String("archetypes", "", "角色原型 YAML 文件")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "游戏启动失败: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	// 用户设置存储失败时降级为内存设置
	gdataManager, gdataErr := gdata.Open(gdata.Config{AppName: "prison_apocalypse"})
	if gdataErr != nil {
		gdataManager = nil
	}
	settings := game.NewSettingsManager(gdataManager, nil)

	level := *logLevel
	if level == "" {
		level = settings.GetSettings().LogLevel
	}
	log, err := logger.New(logger.Options{Level: level, Verbose: *verbose, Development: *development})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	if gdataErr != nil {
		log.Warn("settings storage unavailable, settings will not be saved", zap.Error(gdataErr))
	}

	if *debugPhysics {
		settings.SetDebugPhysics(true)
	}

	content, err := game.LoadContent(game.ContentPaths{
		Gameplay:   *gameplayPath,
		Weapons:    *weaponsPath,
		Archetypes: *archetypes,
		Level:      *levelPath,
	})
	if err != nil {
		return err
	}

	gameApp, err := app.NewApp(app.Config{Content: content, Settings: settings, Logger: log})
	if err != nil {
		return err
	}
	defer gameApp.Close()

	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowSize(gameApp.WindowSize())
	ebiten.SetFullscreen(settings.GetSettings().Fullscreen)

	log.Info("game started", zap.String("level", content.Level.Name))
	if err := ebiten.RunGame(gameApp); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}
