package game

import (
	"errors"
	"fmt"

	"github.com/decker502/voidline/pkg/config"
	"github.com/decker502/voidline/pkg/types"
)

// 槽位上限（不含增益道具提供的额外槽位）
const (
	MaxWeaponSlots = 4
	MaxSpellSlots  = 2
	MinLevel       = 1
	MaxLevel       = 3
)

// ErrInvalidLoadout 出击配置不合法
var ErrInvalidLoadout = errors.New("invalid loadout")

// Loadout 本局的武器与符卡选择
//
// 核心在开局后只读取 Loadout；合法性必须在进入战斗前由 Validate 保证。
type Loadout struct {
	Weapons      []types.WeaponID
	Spells       []types.SpellID
	WeaponLevels map[types.WeaponID]int
	SpellLevels  map[types.SpellID]int
}

// Validate 校验槽位数量、重复装备与等级范围
// 未填写等级的已装备项补为 1 级
func (l *Loadout) Validate(boosters BoosterSet) error {
	maxWeapons := MaxWeaponSlots
	if boosters.Has(types.BoosterExtraWeapon) {
		maxWeapons++
	}
	maxSpells := MaxSpellSlots
	if boosters.Has(types.BoosterExtraSpell) {
		maxSpells++
	}

	if len(l.Weapons) == 0 {
		return fmt.Errorf("%w: at least one weapon is required", ErrInvalidLoadout)
	}
	if len(l.Weapons) > maxWeapons {
		return fmt.Errorf("%w: %d weapons exceed %d slots", ErrInvalidLoadout, len(l.Weapons), maxWeapons)
	}
	if len(l.Spells) > maxSpells {
		return fmt.Errorf("%w: %d spells exceed %d slots", ErrInvalidLoadout, len(l.Spells), maxSpells)
	}

	if l.WeaponLevels == nil {
		l.WeaponLevels = make(map[types.WeaponID]int)
	}
	if l.SpellLevels == nil {
		l.SpellLevels = make(map[types.SpellID]int)
	}

	seenWeapons := make(map[types.WeaponID]bool)
	for _, w := range l.Weapons {
		if w == types.WeaponNone {
			return fmt.Errorf("%w: empty weapon slot", ErrInvalidLoadout)
		}
		if seenWeapons[w] {
			return fmt.Errorf("%w: weapon %s equipped twice", ErrInvalidLoadout, w)
		}
		seenWeapons[w] = true
		if _, ok := l.WeaponLevels[w]; !ok {
			l.WeaponLevels[w] = MinLevel
		}
		if lvl := l.WeaponLevels[w]; lvl < MinLevel || lvl > MaxLevel {
			return fmt.Errorf("%w: weapon %s level %d out of range", ErrInvalidLoadout, w, lvl)
		}
	}

	seenSpells := make(map[types.SpellID]bool)
	for _, s := range l.Spells {
		if seenSpells[s] {
			return fmt.Errorf("%w: spell %s equipped twice", ErrInvalidLoadout, s)
		}
		seenSpells[s] = true
		if _, ok := l.SpellLevels[s]; !ok {
			l.SpellLevels[s] = MinLevel
		}
		if lvl := l.SpellLevels[s]; lvl < MinLevel || lvl > MaxLevel {
			return fmt.Errorf("%w: spell %s level %d out of range", ErrInvalidLoadout, s, lvl)
		}
	}

	return nil
}

// RunSetup 开局所需的全部外部输入
type RunSetup struct {
	Difficulty types.Difficulty
	PityStacks int
	Loadout    Loadout
	Boosters   BoosterSet
}

// Modifiers 返回本局的全局倍率
func (r RunSetup) Modifiers() Modifiers {
	return ModifiersFor(r.PityStacks, r.Boosters)
}

// RunSetupFromConfig 把配置文件中的名称解析为类型化的开局参数并校验
func RunSetupFromConfig(cfg *config.LoadoutConfig) (RunSetup, error) {
	setup := RunSetup{
		PityStacks: cfg.PityStacks,
		Boosters:   BoosterSet{},
		Loadout: Loadout{
			WeaponLevels: make(map[types.WeaponID]int),
			SpellLevels:  make(map[types.SpellID]int),
		},
	}

	difficulty, err := types.ParseDifficulty(cfg.Difficulty)
	if err != nil {
		return RunSetup{}, fmt.Errorf("%w: %v", ErrInvalidLoadout, err)
	}
	setup.Difficulty = difficulty

	for _, name := range cfg.Weapons {
		w, err := types.ParseWeaponID(name)
		if err != nil {
			return RunSetup{}, fmt.Errorf("%w: %v", ErrInvalidLoadout, err)
		}
		setup.Loadout.Weapons = append(setup.Loadout.Weapons, w)
	}
	for name, lvl := range cfg.WeaponLevels {
		w, err := types.ParseWeaponID(name)
		if err != nil {
			return RunSetup{}, fmt.Errorf("%w: %v", ErrInvalidLoadout, err)
		}
		setup.Loadout.WeaponLevels[w] = lvl
	}
	for _, name := range cfg.Spells {
		s, err := types.ParseSpellID(name)
		if err != nil {
			return RunSetup{}, fmt.Errorf("%w: %v", ErrInvalidLoadout, err)
		}
		setup.Loadout.Spells = append(setup.Loadout.Spells, s)
	}
	for name, lvl := range cfg.SpellLevels {
		s, err := types.ParseSpellID(name)
		if err != nil {
			return RunSetup{}, fmt.Errorf("%w: %v", ErrInvalidLoadout, err)
		}
		setup.Loadout.SpellLevels[s] = lvl
	}
	for _, name := range cfg.Boosters {
		b, err := types.ParseBoosterID(name)
		if err != nil {
			return RunSetup{}, fmt.Errorf("%w: %v", ErrInvalidLoadout, err)
		}
		setup.Boosters[b] = true
	}

	if err := setup.Loadout.Validate(setup.Boosters); err != nil {
		return RunSetup{}, err
	}
	return setup, nil
}
