package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/voidline/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var resultBackground = color.RGBA{5, 5, 16, 255}

// ResultScene 结算场景
type ResultScene struct {
	manager *SceneManager
	setup   game.RunSetup
	event   game.GameOverEvent
	record  *game.RunRecord // 未写入记录时为 nil

	best      game.RunRecord
	hasBest   bool
	totalFrag int

	justPressed func(ebiten.Key) bool
}

// NewResultScene 创建结算场景
// history 可为 nil
func NewResultScene(manager *SceneManager, setup game.RunSetup, ev game.GameOverEvent, record *game.RunRecord, history *game.RunHistory) *ResultScene {
	r := &ResultScene{
		manager:     manager,
		setup:       setup,
		event:       ev,
		record:      record,
		justPressed: inpututil.IsKeyJustPressed,
	}
	if history != nil {
		r.best, r.hasBest = history.Best()
		r.totalFrag = history.TotalFragments()
	}
	return r
}

// Event 返回本局终止事件
func (r *ResultScene) Event() game.GameOverEvent {
	return r.event
}

// Update Enter/空格 开始下一局
func (r *ResultScene) Update(deltaTime float64) {
	if !r.justPressed(ebiten.KeyEnter) && !r.justPressed(ebiten.KeySpace) {
		return
	}
	next := r.setup
	if r.record != nil {
		next.PityStacks = r.record.PityStacks
	}
	if r.manager == nil {
		return
	}
	if err := r.manager.StartRun(next); err != nil {
		log.Printf("[ResultScene] Warning: failed to start next run: %v", err)
	}
}

// Draw 绘制结算信息
func (r *ResultScene) Draw(screen *ebiten.Image) {
	screen.Fill(resultBackground)

	title := "// MISSION FAILED"
	if r.event.Victory {
		title = "// MISSION COMPLETE"
	}
	lines := []string{
		title,
		"",
		fmt.Sprintf("DIFFICULTY  %s", r.setup.Difficulty),
		fmt.Sprintf("SCORE       %d", r.event.Score),
		fmt.Sprintf("FRAGMENTS   +%d", r.event.Fragments),
	}
	if r.record != nil {
		lines = append(lines, fmt.Sprintf("SUPPORT LV  %d", r.record.PityStacks))
	}
	if r.hasBest {
		lines = append(lines, "", fmt.Sprintf("BEST        %d (%s)", r.best.Score, r.best.Difficulty))
		lines = append(lines, fmt.Sprintf("TOTAL FRAG  %d", r.totalFrag))
	}
	lines = append(lines, "", "PRESS ENTER TO REDEPLOY")

	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, 60, 200+i*18)
	}
}
