package components

import "github.com/decker502/voidline/pkg/types"

// PlayerComponent 存储玩家机体的全部战斗状态
type PlayerComponent struct {
	HP    float64
	MaxHP float64

	InvulnerableFrames int // 无敌剩余帧数
	FramesSinceLastHit int // 距上次受伤的帧数，驱动被动回血
	Grazing            int // 擦弹计数
	Focused            bool

	// 装备（顺序决定开火顺序/符卡槽位）
	Weapons      []types.WeaponID
	Spells       []types.SpellID
	WeaponLevels map[types.WeaponID]int
	SpellLevels  map[types.SpellID]int

	SpellCooldowns []int // 与 Spells 一一对应，单位帧

	Shield  float64
	Revives int

	// Buffs 计时增益：符卡 -> 剩余帧数
	Buffs map[types.SpellID]int
}

// WeaponLevel 返回武器等级，未装备返回 0
func (p *PlayerComponent) WeaponLevel(w types.WeaponID) int {
	return p.WeaponLevels[w]
}

// SpellLevel 返回符卡等级，未装备返回 0
func (p *PlayerComponent) SpellLevel(s types.SpellID) int {
	return p.SpellLevels[s]
}

// HasWeapon 返回是否装备了指定武器
func (p *PlayerComponent) HasWeapon(w types.WeaponID) bool {
	for _, id := range p.Weapons {
		if id == w {
			return true
		}
	}
	return false
}

// BuffActive 返回增益是否仍在生效（剩余帧数 > 0）
func (p *PlayerComponent) BuffActive(s types.SpellID) bool {
	return p.Buffs[s] > 0
}

// ClampedHP 返回限制在 [0, MaxHP] 内的生命值
func (p *PlayerComponent) ClampedHP() float64 {
	if p.HP < 0 {
		return 0
	}
	if p.HP > p.MaxHP {
		return p.MaxHP
	}
	return p.HP
}
