// Package app 提供游戏应用的核心包装器
//
// 该包将启动逻辑（日志、配置、存档、场景）从 main 包提取出来，
// main.go 只负责解析命令行参数和打开窗口。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/decker502/voidline/pkg/config"
	"github.com/decker502/voidline/pkg/game"
	"github.com/decker502/voidline/pkg/scenes"
	"github.com/decker502/voidline/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// 默认配置文件路径（嵌入资源）
const (
	DefaultCombatConfigPath  = "data/combat.yaml"
	DefaultLoadoutConfigPath = "data/loadout.yaml"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// CombatPath 战斗参数文件，为空使用嵌入的默认文件
	CombatPath string
	// LoadoutPath 出击配置文件，为空使用嵌入的默认文件
	LoadoutPath string
	// Difficulty 覆盖出击配置中的难度（如 "HARD"），为空不覆盖
	Difficulty string
	// Boosters 追加的增益配置名
	Boosters []string
	// Pity 战术支援层数；负数表示沿用出击配置，配置为 0 时从战斗记录读取
	Pity int
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *scenes.SceneManager
	width        int
	height       int
	verbose      bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 使用嵌入路径前必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	combatPath := cfg.CombatPath
	if combatPath == "" {
		combatPath = DefaultCombatConfigPath
	}
	combat, err := config.LoadCombatConfig(combatPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load combat config: %w", err)
	}
	log.Printf("[App] Combat config loaded from %s", combatPath)

	setup, err := loadRunSetup(cfg)
	if err != nil {
		return nil, err
	}

	// 存档不可用时降级为仅内存记录
	var gdataManager *gdata.Manager
	if m, err := gdata.Open(gdata.Config{AppName: "voidline"}); err != nil {
		log.Printf("[App] Warning: gdata unavailable, run history will not persist: %v", err)
	} else {
		gdataManager = m
	}
	history, err := game.NewRunHistory(gdataManager)
	if err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	switch {
	case cfg.Pity >= 0:
		setup.PityStacks = cfg.Pity
	case setup.PityStacks == 0:
		setup.PityStacks = history.CurrentPityStacks()
		log.Printf("[App] Support stacks from history: %d", setup.PityStacks)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sceneManager := scenes.NewSceneManager()
	runCount := int64(0)
	sceneManager.SetRunFactory(func(s game.RunSetup) (scenes.Scene, error) {
		// 每次重开使用不同的种子，首局种子可复现
		runSeed := seed + runCount
		runCount++
		return scenes.NewBattleScene(combat, s, runSeed, sceneManager, history)
	})
	if err := sceneManager.StartRun(setup); err != nil {
		return nil, err
	}

	return &App{
		sceneManager: sceneManager,
		width:        int(combat.Field.Width),
		height:       int(combat.Field.Height),
		verbose:      cfg.Verbose,
	}, nil
}

// loadRunSetup 读取出击配置并应用命令行覆盖
func loadRunSetup(cfg Config) (game.RunSetup, error) {
	path := cfg.LoadoutPath
	if path == "" {
		path = DefaultLoadoutConfigPath
	}
	loadout, err := config.LoadLoadoutConfig(path)
	if err != nil {
		return game.RunSetup{}, fmt.Errorf("failed to load loadout: %w", err)
	}
	if cfg.Difficulty != "" {
		loadout.Difficulty = cfg.Difficulty
	}
	loadout.Boosters = append(loadout.Boosters, cfg.Boosters...)

	setup, err := game.RunSetupFromConfig(loadout)
	if err != nil {
		return game.RunSetup{}, fmt.Errorf("failed to load loadout %s: %w", path, err)
	}
	log.Printf("[App] Loadout %s: difficulty=%s weapons=%v spells=%v", path, setup.Difficulty, setup.Loadout.Weapons, setup.Loadout.Spells)
	return setup, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次，逻辑帧数由战斗场景内的时钟决定
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.width, a.height)
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
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.sceneManager.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时左右填充黑边
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

// WindowSize 返回逻辑屏幕尺寸，用于设置初始窗口大小
func (a *App) WindowSize() (int, int) {
	return a.width, a.height
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

// ParseBoosters 校验命令行给出的增益名
func ParseBoosters(names []string) error {
	for _, n := range names {
		if _, err := types.ParseBoosterID(n); err != nil {
			return fmt.Errorf("invalid booster %q: %w", n, err)
		}
	}
	return nil
}
