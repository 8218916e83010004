package game

import (
	"log"

	"github.com/decker502/voidline/pkg/ecs"
	"github.com/decker502/voidline/pkg/types"
)

// BattleState 单局战斗的全局状态（分数、阶段、首领、计时器等）
//
// 实体数据存放在 EntityManager 中，这里只保存不属于任何实体的状态。
// 每局创建一个实例，由 Simulation 持有并传给各个系统。
type BattleState struct {
	Difficulty types.Difficulty
	Modifiers  Modifiers

	Frame      int
	StageTimer int
	Stage      int
	Score      int
	Fragments  int

	BossActive  bool
	BossID      ecs.EntityID
	BossName    string
	BossVariant types.BossVariant

	WaveDelay int
	TimeScale float64

	Dialogue      string
	DialogueTimer int

	gameOver   *GameOverEvent
	onGameOver func(GameOverEvent)
	cues       []Cue
}

// NewBattleState 创建新一局的状态，阶段从 1 开始
func NewBattleState(difficulty types.Difficulty, mods Modifiers) *BattleState {
	return &BattleState{
		Difficulty: difficulty,
		Modifiers:  mods,
		Stage:      1,
		TimeScale:  1,
	}
}

// SetGameOverHandler 设置结束事件回调（每局最多触发一次）
func (s *BattleState) SetGameOverHandler(handler func(GameOverEvent)) {
	s.onGameOver = handler
}

// EndRun 发出终止事件
// 返回 false 表示本局已经结束过，本次调用被忽略
func (s *BattleState) EndRun(victory bool) bool {
	if s.gameOver != nil {
		return false
	}
	ev := GameOverEvent{Score: s.Score, Victory: victory, Fragments: s.Fragments}
	s.gameOver = &ev
	log.Printf("[BattleState] Run ended: victory=%v score=%d fragments=%d stage=%d", victory, ev.Score, ev.Fragments, s.Stage)
	if s.onGameOver != nil {
		s.onGameOver(ev)
	}
	return true
}

// IsOver 返回本局是否已经结束
func (s *BattleState) IsOver() bool {
	return s.gameOver != nil
}

// GameOver 返回结束事件（未结束时 ok 为 false）
func (s *BattleState) GameOver() (GameOverEvent, bool) {
	if s.gameOver == nil {
		return GameOverEvent{}, false
	}
	return *s.gameOver, true
}

// ShowDialogue 显示一段持续指定帧数的提示文本
func (s *BattleState) ShowDialogue(text string, frames int) {
	s.Dialogue = text
	s.DialogueTimer = frames
}

// AddCue 记录一个提示事件
func (s *BattleState) AddCue(c Cue) {
	s.cues = append(s.cues, c)
}

// DrainCues 取出并清空本帧的提示事件
func (s *BattleState) DrainCues() []Cue {
	out := s.cues
	s.cues = nil
	return out
}

// MaxStages 返回当前模式的阶段上限
func (s *BattleState) MaxStages(normal, bossRush int) int {
	if s.Difficulty.IsBossRush() {
		return bossRush
	}
	return normal
}
