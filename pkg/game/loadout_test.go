package game

import (
	"errors"
	"testing"

	"github.com/decker502/voidline/pkg/config"
	"github.com/decker502/voidline/pkg/types"
)

func TestLoadoutValidate(t *testing.T) {
	t.Run("补全缺省等级", func(t *testing.T) {
		l := Loadout{
			Weapons: []types.WeaponID{types.WeaponPlasmaCutter, types.WeaponGaussCannon},
			Spells:  []types.SpellID{types.SpellEMPBlast},
		}
		if err := l.Validate(nil); err != nil {
			t.Fatalf("Validate failed: %v", err)
		}
		if l.WeaponLevels[types.WeaponGaussCannon] != 1 || l.SpellLevels[types.SpellEMPBlast] != 1 {
			t.Errorf("Missing levels should default to 1, got %v %v", l.WeaponLevels, l.SpellLevels)
		}
	})

	t.Run("武器槽位超限", func(t *testing.T) {
		l := Loadout{Weapons: []types.WeaponID{
			types.WeaponPlasmaCutter, types.WeaponSpreadShotgun, types.WeaponHomingNeedles,
			types.WeaponLaserStream, types.WeaponWaveMotion,
		}}
		if err := l.Validate(nil); !errors.Is(err, ErrInvalidLoadout) {
			t.Errorf("Expected ErrInvalidLoadout, got %v", err)
		}
		if err := l.Validate(NewBoosterSet(types.BoosterExtraWeapon)); err != nil {
			t.Errorf("Extra weapon booster should allow 5 weapons: %v", err)
		}
	})

	t.Run("符卡槽位超限", func(t *testing.T) {
		l := Loadout{
			Weapons: []types.WeaponID{types.WeaponPlasmaCutter},
			Spells:  []types.SpellID{types.SpellEMPBlast, types.SpellOverclock, types.SpellNanoRepair},
		}
		if err := l.Validate(nil); err == nil {
			t.Error("Expected error for 3 spells without booster")
		}
		if err := l.Validate(NewBoosterSet(types.BoosterExtraSpell)); err != nil {
			t.Errorf("Extra spell booster should allow 3 spells: %v", err)
		}
	})

	t.Run("等级越界", func(t *testing.T) {
		l := Loadout{
			Weapons:      []types.WeaponID{types.WeaponPlasmaCutter},
			WeaponLevels: map[types.WeaponID]int{types.WeaponPlasmaCutter: 4},
		}
		if err := l.Validate(nil); !errors.Is(err, ErrInvalidLoadout) {
			t.Errorf("Expected level error, got %v", err)
		}
	})

	t.Run("重复装备", func(t *testing.T) {
		l := Loadout{Weapons: []types.WeaponID{types.WeaponPlasmaCutter, types.WeaponPlasmaCutter}}
		if err := l.Validate(nil); err == nil {
			t.Error("Expected duplicate weapon error")
		}
	})
}

func TestRunSetupFromConfig(t *testing.T) {
	cfg := &config.LoadoutConfig{
		Difficulty:   "HARD",
		PityStacks:   3,
		Weapons:      []string{"CHAIN_LIGHTNING", "ORBITING_ORBS"},
		Spells:       []string{"STASIS_FIELD"},
		WeaponLevels: map[string]int{"ORBITING_ORBS": 3},
		Boosters:     []string{"LOOT_UP"},
	}
	setup, err := RunSetupFromConfig(cfg)
	if err != nil {
		t.Fatalf("RunSetupFromConfig failed: %v", err)
	}
	if setup.Difficulty != types.DifficultyHard {
		t.Errorf("Expected HARD, got %v", setup.Difficulty)
	}
	if setup.Loadout.WeaponLevels[types.WeaponOrbitingOrbs] != 3 || setup.Loadout.WeaponLevels[types.WeaponChainLightning] != 1 {
		t.Errorf("Unexpected weapon levels: %v", setup.Loadout.WeaponLevels)
	}
	if !setup.Boosters.Has(types.BoosterLootUp) {
		t.Error("LOOT_UP booster should be active")
	}
	if setup.Modifiers().LootMultiplier() != 2 {
		t.Error("Modifiers should reflect boosters")
	}

	cfg.Weapons = []string{"RAILGUN"}
	if _, err := RunSetupFromConfig(cfg); !errors.Is(err, ErrInvalidLoadout) {
		t.Errorf("Expected ErrInvalidLoadout for unknown weapon, got %v", err)
	}
}
