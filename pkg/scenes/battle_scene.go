package scenes

import (
	"log"
	"time"

	"github.com/decker502/voidline/pkg/battle"
	"github.com/decker502/voidline/pkg/config"
	"github.com/decker502/voidline/pkg/game"
	"github.com/decker502/voidline/pkg/modules"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// 提示效果持续的渲染帧数
const (
	hitFlashFrames    = 12
	bossWarningFrames = 120
)

// BattleScene 战斗场景
//
// 每个渲染帧采样一次输入，按真实经过的时间驱动固定步长时钟，
// 时钟决定本帧执行几个逻辑帧。暂停菜单打开时时钟停止累积。
type BattleScene struct {
	sim       *battle.Simulation
	clock     *game.Clock
	manager   *SceneManager
	history   *game.RunHistory
	pauseMenu *modules.PauseMenuModule
	setup     game.RunSetup
	width     int
	height    int

	// 输入源，测试中替换
	input       func() game.InputState
	justPressed func(ebiten.Key) bool

	// 终止事件在逻辑帧内触发，场景切换推迟到本帧逻辑执行完之后
	result *ResultScene

	hitFlash    int
	bossWarning int
	cueCounts   map[game.Cue]int
}

// NewBattleScene 创建战斗场景
//
// 参数:
//   - cfg: 战斗参数
//   - setup: 开局参数
//   - seed: 随机种子
//   - manager: 场景管理器，用于结算和重开
//   - history: 战斗记录，可为 nil
//
// 返回:
//   - *BattleScene: 场景实例
//   - error: 出击配置不合法时返回错误
func NewBattleScene(cfg *config.CombatConfig, setup game.RunSetup, seed int64, manager *SceneManager, history *game.RunHistory) (*BattleScene, error) {
	sim, err := battle.NewSimulation(cfg, setup, seed)
	if err != nil {
		return nil, err
	}
	cfg = sim.Config()

	maxDelta := time.Duration(cfg.Simulation.MaxFrameDeltaMs * float64(time.Millisecond))
	s := &BattleScene{
		sim:         sim,
		clock:       game.NewClock(cfg.Simulation.StepsPerSecond, maxDelta),
		manager:     manager,
		history:     history,
		setup:       setup,
		width:       int(cfg.Field.Width),
		height:      int(cfg.Field.Height),
		input:       SampleInput,
		justPressed: inpututil.IsKeyJustPressed,
		cueCounts:   make(map[game.Cue]int),
	}
	s.pauseMenu = modules.NewPauseMenuModule(s.clock, s.width, s.height, modules.PauseMenuCallbacks{
		OnRestart: s.restart,
		OnQuit:    s.abort,
	})
	sim.SetGameOverHandler(s.onGameOver)

	log.Printf("[BattleScene] Run started: difficulty=%s pity=%d seed=%d", setup.Difficulty, setup.PityStacks, seed)
	return s, nil
}

// Simulation 返回战斗核心
func (s *BattleScene) Simulation() *battle.Simulation {
	return s.sim
}

// Clock 返回时钟
func (s *BattleScene) Clock() *game.Clock {
	return s.clock
}

// Update 更新场景
func (s *BattleScene) Update(deltaTime float64) {
	if s.pauseMenu.IsActive() {
		s.pauseMenu.Update()
		return
	}
	if s.justPressed(ebiten.KeyP) || s.justPressed(ebiten.KeyEscape) {
		s.pauseMenu.Show()
		return
	}

	elapsed := time.Duration(deltaTime * float64(time.Second))
	input := s.input()
	s.clock.Run(elapsed, func() {
		s.sim.Step(input)
		s.consumeCues(s.sim.Cues())
	})

	if s.hitFlash > 0 {
		s.hitFlash--
	}
	if s.bossWarning > 0 {
		s.bossWarning--
	}

	if s.result != nil && s.manager != nil {
		s.manager.SwitchTo(s.result)
	}
}

// consumeCues 把提示事件转成画面效果
func (s *BattleScene) consumeCues(cues []game.Cue) {
	for _, c := range cues {
		s.cueCounts[c]++
		switch c {
		case game.CuePlayerHit:
			s.hitFlash = hitFlashFrames
		case game.CueBossWarning:
			s.bossWarning = bossWarningFrames
		}
	}
}

// CueCount 返回本局累计收到的某类提示次数
func (s *BattleScene) CueCount(c game.Cue) int {
	return s.cueCounts[c]
}

// onGameOver 记录战斗结果并准备结算场景
func (s *BattleScene) onGameOver(ev game.GameOverEvent) {
	log.Printf("[BattleScene] Game over: score=%d victory=%v fragments=%d", ev.Score, ev.Victory, ev.Fragments)

	var record *game.RunRecord
	if s.history != nil {
		rec, err := s.history.Record(ev, s.setup)
		if err != nil {
			log.Printf("[BattleScene] Warning: failed to save run: %v", err)
		}
		record = &rec
	}
	s.result = NewResultScene(s.manager, s.setup, ev, record, s.history)
}

func (s *BattleScene) restart() {
	if s.manager == nil {
		return
	}
	if err := s.manager.StartRun(s.setup); err != nil {
		log.Printf("[BattleScene] Warning: restart failed: %v", err)
	}
}

// abort 放弃本局，直接进入结算（不写入记录）
func (s *BattleScene) abort() {
	snap := s.sim.Snapshot()
	ev := game.GameOverEvent{Score: snap.Score, Fragments: snap.Fragments}
	log.Printf("[BattleScene] Run aborted at frame %d", snap.Frame)
	if s.manager != nil {
		s.manager.SwitchTo(NewResultScene(s.manager, s.setup, ev, nil, s.history))
	}
}
