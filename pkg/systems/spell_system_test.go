package systems

import (
	"testing"

	"github.com/decker502/voidline/pkg/components"
	"github.com/decker502/voidline/pkg/ecs"
	"github.com/decker502/voidline/pkg/entities"
	"github.com/decker502/voidline/pkg/game"
	"github.com/decker502/voidline/pkg/types"
)

func spellLoadout(spell types.SpellID, lvl int) game.Loadout {
	l := plasmaLoadout()
	l.Spells = []types.SpellID{spell}
	l.SpellLevels = map[types.SpellID]int{spell: lvl}
	return l
}

func TestCooldownFrames(t *testing.T) {
	tests := []struct {
		name  string
		spell types.SpellID
		lvl   int
		mods  game.Modifiers
		want  int
	}{
		{"emp base", types.SpellEMPBlast, 1, game.DefaultModifiers(), 1800},
		{"emp lv2 reduction", types.SpellEMPBlast, 2, game.DefaultModifiers(), 1500},
		{"dash lv3 reduction", types.SpellPhantomDash, 3, game.DefaultModifiers(), 1500},
		{"nano with cdr booster", types.SpellNanoRepair, 1, game.ModifiersFor(0, game.NewBoosterSet(types.BoosterCDRUp)), 4320},
		{"pity stacks shorten cooldown", types.SpellEMPBlast, 1, game.ModifiersFor(25, nil), 1200},
		{"floor at 60 frames", types.SpellPhantomDash, 3, game.Modifiers{CooldownRateMultiplier: 100}, 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CooldownFrames(tt.spell, tt.lvl, tt.mods); got != tt.want {
				t.Errorf("Expected %d frames, got %d", tt.want, got)
			}
		})
	}
}

// EMP 清除所有敌弹，保留玩家子弹，并设置冷却
func TestEMPBlastClearsEnemyBullets(t *testing.T) {
	w := newTestWorld(t, types.DifficultyNormal, spellLoadout(types.SpellEMPBlast, 1), game.DefaultModifiers())
	spells := NewSpellSystem(w.em, w.state, w.damage)

	for i := 0; i < 5; i++ {
		w.addEnemyBullet(float64(i*20), 100, 0, 2)
	}
	for i := 0; i < 3; i++ {
		entities.NewPlayerBullet(w.em, entities.BulletSpec{X: float64(i * 20), Y: 500, VY: -15, Width: 4, Height: 12, Damage: 10})
	}
	enemy := w.addEnemy(300, 100, 1000)

	if !spells.Cast(0) {
		t.Fatal("Cast should succeed")
	}
	if n := w.countBullets(components.OwnerEnemy); n != 0 {
		t.Errorf("Expected all enemy bullets removed, %d left", n)
	}
	if n := w.countBullets(components.OwnerPlayer); n != 3 {
		t.Errorf("Expected 3 player bullets kept, got %d", n)
	}
	if w.hp(enemy) != 1000 {
		t.Error("Level 1 EMP should not damage enemies")
	}

	p, _ := w.player()
	if p.SpellCooldowns[0] != 1800 {
		t.Errorf("Expected cooldown 1800, got %d", p.SpellCooldowns[0])
	}
	if spells.Cast(0) {
		t.Error("Cast should fail while cooling down")
	}
	if spells.Cast(1) {
		t.Error("Cast should fail for an empty slot")
	}
}

func TestEMPBlastLevel3Damage(t *testing.T) {
	// 攻击增益不影响 EMP 的固定伤害，只有战术支援倍率生效
	mods := game.ModifiersFor(50, game.NewBoosterSet(types.BoosterAttackUp))
	w := newTestWorld(t, types.DifficultyNormal, spellLoadout(types.SpellEMPBlast, 3), mods)
	spells := NewSpellSystem(w.em, w.state, w.damage)
	enemy := w.addEnemy(300, 100, 1000)

	spells.Cast(0)
	if got := w.hp(enemy); got != 600 {
		t.Errorf("Expected hp 600 after 200×2 damage, got %v", got)
	}
}

func TestSpellEffects(t *testing.T) {
	t.Run("time dilator lv3", func(t *testing.T) {
		w := newTestWorld(t, types.DifficultyNormal, spellLoadout(types.SpellTimeDilator, 3), game.DefaultModifiers())
		NewSpellSystem(w.em, w.state, w.damage).Cast(0)
		p, _ := w.player()
		if p.Buffs[types.SpellTimeDilator] != 600 {
			t.Errorf("Expected 600 buff frames, got %d", p.Buffs[types.SpellTimeDilator])
		}
	})

	t.Run("phantom dash lv2", func(t *testing.T) {
		w := newTestWorld(t, types.DifficultyNormal, spellLoadout(types.SpellPhantomDash, 2), game.DefaultModifiers())
		NewSpellSystem(w.em, w.state, w.damage).Cast(0)
		p, _ := w.player()
		if p.InvulnerableFrames != 300 {
			t.Errorf("Expected 300 invulnerable frames, got %d", p.InvulnerableFrames)
		}
	})

	t.Run("orbital strike lv3", func(t *testing.T) {
		w := newTestWorld(t, types.DifficultyNormal, spellLoadout(types.SpellOrbitalStrike, 3), game.DefaultModifiers())
		a := w.addEnemy(100, 100, 5000)
		b := w.addEnemy(500, 100, 5000)
		NewSpellSystem(w.em, w.state, w.damage).Cast(0)
		if w.hp(a) != 1000 || w.hp(b) != 1000 {
			t.Errorf("Expected both enemies at 1000 hp, got %v and %v", w.hp(a), w.hp(b))
		}
	})

	t.Run("nano repair clamps", func(t *testing.T) {
		w := newTestWorld(t, types.DifficultyNormal, spellLoadout(types.SpellNanoRepair, 3), game.DefaultModifiers())
		p, _ := w.player()
		p.HP = 40
		NewSpellSystem(w.em, w.state, w.damage).Cast(0)
		if p.HP != 100 {
			t.Errorf("Expected hp 100 after 50%% + 20 heal, got %v", p.HP)
		}
		p.SpellCooldowns[0] = 0
		p.HP = 99
		NewSpellSystem(w.em, w.state, w.damage).Cast(0)
		if p.HP != 100 {
			t.Errorf("Heal should clamp at max hp, got %v", p.HP)
		}
	})

	t.Run("aegis shield stacks", func(t *testing.T) {
		w := newTestWorld(t, types.DifficultyNormal, spellLoadout(types.SpellAegisShield, 2), game.DefaultModifiers())
		p, _ := w.player()
		p.Shield = 10
		NewSpellSystem(w.em, w.state, w.damage).Cast(0)
		if p.Shield != 90 {
			t.Errorf("Expected shield 90, got %v", p.Shield)
		}
	})

	t.Run("stasis freezes every enemy", func(t *testing.T) {
		w := newTestWorld(t, types.DifficultyNormal, spellLoadout(types.SpellStasisField, 1), game.DefaultModifiers())
		ids := []ecs.EntityID{w.addEnemy(100, 100, 10), w.addEnemy(200, 100, 10)}
		NewSpellSystem(w.em, w.state, w.damage).Cast(0)
		for _, id := range ids {
			enemy, _ := ecs.GetComponent[*components.EnemyComponent](w.em, id)
			if enemy.FrozenTimer != 180 {
				t.Errorf("Expected 180 frozen frames, got %d", enemy.FrozenTimer)
			}
		}
	})
}
