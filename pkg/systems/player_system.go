package systems

import (
	"math"

	"github.com/decker502/voidline/pkg/config"
	"github.com/decker502/voidline/pkg/ecs"
	"github.com/decker502/voidline/pkg/game"
	"github.com/decker502/voidline/pkg/types"
	"github.com/decker502/voidline/pkg/utils"
)

// 时间膨胀生效时敌方子弹与杂兵的时间流速
const dilatedTimeScale = 0.2

// PlayerSystem 处理每帧开头的玩家状态
//
// 顺序：增益倒计时 → 时间流速 → 提示文本 → 波次间隔 → 符卡 → 冷却 → 回血 → 移动
type PlayerSystem struct {
	entityManager *ecs.EntityManager
	state         *game.BattleState
	config        *config.CombatConfig
	spells        *SpellSystem
}

// NewPlayerSystem 创建玩家控制系统
func NewPlayerSystem(em *ecs.EntityManager, state *game.BattleState, cfg *config.CombatConfig, spells *SpellSystem) *PlayerSystem {
	return &PlayerSystem{
		entityManager: em,
		state:         state,
		config:        cfg,
		spells:        spells,
	}
}

// Update 根据本帧输入更新玩家
func (s *PlayerSystem) Update(input game.InputState) {
	_, player, pos, ok := FindPlayer(s.entityManager)
	if !ok {
		return
	}

	for spell, left := range player.Buffs {
		if left > 0 {
			player.Buffs[spell] = left - 1
		} else {
			delete(player.Buffs, spell)
		}
	}

	if player.BuffActive(types.SpellTimeDilator) {
		s.state.TimeScale = dilatedTimeScale
	} else {
		s.state.TimeScale = 1
	}

	if s.state.DialogueTimer > 0 {
		s.state.DialogueTimer--
		if s.state.DialogueTimer <= 0 {
			s.state.Dialogue = ""
		}
	}

	if s.state.WaveDelay > 0 {
		s.state.WaveDelay--
	}

	player.Focused = input.Focus

	for slot, pressed := range input.Spell {
		if pressed {
			s.spells.Cast(slot)
		}
	}

	for i, cd := range player.SpellCooldowns {
		if cd > 0 {
			player.SpellCooldowns[i] = cd - 1
		}
	}

	pc := s.config.Player
	player.FramesSinceLastHit++
	delay := pc.RegenDelay
	if s.state.Modifiers.Boosters.Has(types.BoosterRegenUp) {
		delay = pc.BoostedRegenDelay
	}
	if player.FramesSinceLastHit > delay && s.state.Frame%pc.RegenInterval == 0 && player.HP < player.MaxHP {
		player.HP = math.Min(player.MaxHP, player.HP+1)
	}

	speed := pc.Speed
	if input.Focus {
		speed = pc.FocusSpeed
	}
	if player.BuffActive(types.SpellOverclock) {
		speed *= 2
	}

	field := s.config.Field
	if input.Up {
		pos.Y -= speed
	}
	if input.Down {
		pos.Y += speed
	}
	if input.Left {
		pos.X -= speed
	}
	if input.Right {
		pos.X += speed
	}
	pos.X = utils.Clamp(pos.X, pc.Size, field.Width-pc.Size)
	pos.Y = utils.Clamp(pos.Y, pc.Size, field.Height-pc.Size)
}
