package game

import "github.com/decker502/voidline/pkg/types"

// 战术支援（失败补偿）层数的上限与每层加成
const (
	MaxPityStacks        = 100
	pityHPPerStack       = 0.05
	pityDamagePerStack   = 0.02
	pityCooldownPerStack = 0.02
)

// BoosterSet 单局生效的增益道具集合
type BoosterSet map[types.BoosterID]bool

// NewBoosterSet 由增益列表构造集合
func NewBoosterSet(ids ...types.BoosterID) BoosterSet {
	set := make(BoosterSet, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

// Has 返回是否持有该增益，nil 集合视为空
func (b BoosterSet) Has(id types.BoosterID) bool {
	return b[id]
}

// Modifiers 外部传入的全局倍率
//
// 战斗核心只读取这些值，不负责计算或持久化它们。
type Modifiers struct {
	HPMultiplier             float64
	DamageMultiplier         float64
	CooldownRateMultiplier   float64
	IncomingDamageMultiplier float64
	Boosters                 BoosterSet
}

// DefaultModifiers 返回不带任何加成的中性倍率
func DefaultModifiers() Modifiers {
	return Modifiers{
		HPMultiplier:             1,
		DamageMultiplier:         1,
		CooldownRateMultiplier:   1,
		IncomingDamageMultiplier: 1,
		Boosters:                 BoosterSet{},
	}
}

// ModifiersFor 按战术支援层数和增益道具计算倍率
// 参数:
//   - pityStacks: 连续失败累积的层数，超出 [0, MaxPityStacks] 会被截断
//   - boosters: 本局购买的增益道具
func ModifiersFor(pityStacks int, boosters BoosterSet) Modifiers {
	if pityStacks < 0 {
		pityStacks = 0
	}
	if pityStacks > MaxPityStacks {
		pityStacks = MaxPityStacks
	}
	if boosters == nil {
		boosters = BoosterSet{}
	}

	stacks := float64(pityStacks)
	m := Modifiers{
		HPMultiplier:             1 + pityHPPerStack*stacks,
		DamageMultiplier:         1 + pityDamagePerStack*stacks,
		CooldownRateMultiplier:   1 + pityCooldownPerStack*stacks,
		IncomingDamageMultiplier: 1,
		Boosters:                 boosters,
	}
	if boosters.Has(types.BoosterDamageReduction) {
		m.IncomingDamageMultiplier = 0.66
	}
	return m
}

// AttackMultiplier 武器与爆炸伤害使用的倍率（含武器过载增益）
func (m Modifiers) AttackMultiplier() float64 {
	if m.Boosters.Has(types.BoosterAttackUp) {
		return 1.25 * m.DamageMultiplier
	}
	return m.DamageMultiplier
}

// LootMultiplier 碎片掉落倍率（数据挖掘增益翻倍）
func (m Modifiers) LootMultiplier() float64 {
	if m.Boosters.Has(types.BoosterLootUp) {
		return 2
	}
	return 1
}

// CooldownFactor 符卡冷却的乘数（快速处理器增益 -20%）
func (m Modifiers) CooldownFactor() float64 {
	if m.Boosters.Has(types.BoosterCDRUp) {
		return 0.8
	}
	return 1
}

// StartingRevives 开局复活次数
func (m Modifiers) StartingRevives() int {
	if m.Boosters.Has(types.BoosterExtraLife) {
		return 1
	}
	return 0
}

// NextPityStacks 根据本局结果计算下一局的战术支援层数
// 胜利清零，失败 +1（上限 MaxPityStacks）
func NextPityStacks(prev int, victory bool) int {
	if victory {
		return 0
	}
	if prev+1 > MaxPityStacks {
		return MaxPityStacks
	}
	return prev + 1
}
