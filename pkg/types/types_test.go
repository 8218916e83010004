package types

import "testing"

func TestParseNamesRoundTrip(t *testing.T) {
	for _, w := range AllWeapons() {
		got, err := ParseWeaponID(w.String())
		if err != nil || got != w {
			t.Errorf("ParseWeaponID(%s) = %v, %v", w, got, err)
		}
	}
	if _, err := ParseWeaponID("BFG"); err == nil {
		t.Error("Expected error for unknown weapon")
	}

	for s := SpellTimeDilator; s <= SpellStasisField; s++ {
		got, err := ParseSpellID(s.String())
		if err != nil || got != s {
			t.Errorf("ParseSpellID(%s) = %v, %v", s, got, err)
		}
	}

	d, err := ParseDifficulty("BOSS_RUSH_EXTREME")
	if err != nil || !d.IsBossRush() {
		t.Errorf("Expected boss rush extreme, got %v (%v)", d, err)
	}
	if DifficultyInfinity.IsBossRush() {
		t.Error("INFINITY is not a boss rush mode")
	}

	b, err := ParseBoosterID("DMG_RED")
	if err != nil || b != BoosterDamageReduction {
		t.Errorf("Expected DMG_RED, got %v (%v)", b, err)
	}
}

func TestBossVariantOrder(t *testing.T) {
	want := []string{"CONSTRUCT", "VIPER", "TITAN", "SERAPH", "ORACLE"}
	for i, v := range BossVariants() {
		if v.CodeName() != want[i] {
			t.Errorf("variant %d: expected %s, got %s", i, want[i], v.CodeName())
		}
	}
}
