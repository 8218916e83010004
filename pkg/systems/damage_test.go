package systems

import (
	"testing"

	"github.com/decker502/voidline/pkg/entities"
	"github.com/decker502/voidline/pkg/game"
	"github.com/decker502/voidline/pkg/types"
)

func TestKillIsIdempotent(t *testing.T) {
	w := newTestWorld(t, types.DifficultyNormal, plasmaLoadout(), game.DefaultModifiers())
	id := w.addEnemy(100, 100, 30)

	if !w.damage.Kill(id) {
		t.Fatal("First Kill should resolve the death")
	}
	score, fragments := w.state.Score, w.state.Fragments
	if w.damage.Kill(id) {
		t.Error("Second Kill should be a no-op")
	}
	if w.state.Score != score || w.state.Fragments != fragments {
		t.Errorf("Rewards granted twice: score %d -> %d, fragments %d -> %d", score, w.state.Score, fragments, w.state.Fragments)
	}
	if score != 100 {
		t.Errorf("Expected score 100, got %d", score)
	}
	// NORMAL 难度: ceil(randInt[1,5] * 2)
	if fragments < 2 || fragments > 10 {
		t.Errorf("Fragments %d outside [2, 10]", fragments)
	}
	if w.damage.Kill(w.playerID) {
		t.Error("Kill should ignore non-enemy entities")
	}
}

func TestFragmentMultipliers(t *testing.T) {
	tests := []struct {
		name     string
		diff     types.Difficulty
		boosters game.BoosterSet
		min, max int
	}{
		{"easy", types.DifficultyEasy, nil, 3, 15},
		{"hard", types.DifficultyHard, nil, 2, 8},
		{"boss rush", types.DifficultyBossRush, nil, 3, 15},
		{"normal with data miner", types.DifficultyNormal, game.NewBoosterSet(types.BoosterLootUp), 4, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, tt.diff, plasmaLoadout(), game.ModifiersFor(0, tt.boosters))
			for i := 0; i < 20; i++ {
				before := w.state.Fragments
				w.damage.Kill(w.addEnemy(0, 0, 1))
				got := w.state.Fragments - before
				if got < tt.min || got > tt.max {
					t.Fatalf("Fragments %d outside [%d, %d]", got, tt.min, tt.max)
				}
			}
		})
	}
}

func TestExplodeAppliesAttackMultiplier(t *testing.T) {
	mods := game.ModifiersFor(0, game.NewBoosterSet(types.BoosterAttackUp))
	w := newTestWorld(t, types.DifficultyNormal, plasmaLoadout(), mods)

	near := w.addEnemy(150, 100, 1000) // 距离 50 < 60 + 12
	far := w.addEnemy(173, 100, 1000)  // 距离 73 >= 72

	w.damage.Explode(100, 100, 60, 100)

	if got := w.hp(near); got != 875 {
		t.Errorf("Expected near enemy hp 875, got %v", got)
	}
	if got := w.hp(far); got != 1000 {
		t.Errorf("Far enemy should be untouched, got %v", got)
	}
	if w.em.IsDestroyed(near) {
		t.Error("Explode should not resolve deaths by itself")
	}
}

func TestResolveDeaths(t *testing.T) {
	w := newTestWorld(t, types.DifficultyNormal, plasmaLoadout(), game.DefaultModifiers())
	a := w.addEnemy(100, 100, 10)
	b := w.addEnemy(110, 100, 10)
	c := w.addEnemy(400, 400, 10)

	w.damage.Explode(105, 100, 20, 20)
	if killed := w.damage.ResolveDeaths(); killed != 2 {
		t.Errorf("Expected 2 deaths, got %d", killed)
	}
	if !w.em.IsDestroyed(a) || !w.em.IsDestroyed(b) || w.em.IsDestroyed(c) {
		t.Error("Only enemies inside the blast should die")
	}
	if killed := w.damage.ResolveDeaths(); killed != 0 {
		t.Errorf("Deaths should resolve once, got %d more", killed)
	}
	if w.state.Score != 200 {
		t.Errorf("Expected score 200, got %d", w.state.Score)
	}
}

// 首领被击杀：清除首领状态、阶段 +1、分数增加首领分值与击杀奖励
func TestBossKillAdvancesStage(t *testing.T) {
	tests := []struct {
		name      string
		diff      types.Difficulty
		stage     int
		wantOver  bool
		wantStage int
	}{
		{"mid run", types.DifficultyNormal, 2, false, 3},
		{"final stage", types.DifficultyNormal, 5, true, 6},
		{"endless never ends", types.DifficultyInfinity, 5, false, 6},
		{"boss rush continues", types.DifficultyBossRush, 5, false, 6},
		{"boss rush final", types.DifficultyBossRush, 15, true, 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, tt.diff, plasmaLoadout(), game.DefaultModifiers())
			w.state.Stage = tt.stage
			w.state.StageTimer = 500
			boss := entities.NewBoss(w.em, entities.EnemySpec{Variant: types.VariantAlpha, HP: 1, Size: 40, Score: 5000 * tt.stage}, "boss")
			w.state.BossActive = true
			w.state.BossID = boss

			var events []game.GameOverEvent
			w.state.SetGameOverHandler(func(ev game.GameOverEvent) { events = append(events, ev) })

			w.damage.Kill(boss)

			if w.state.BossActive || w.state.BossID != 0 {
				t.Error("Boss state should be cleared")
			}
			if w.state.Stage != tt.wantStage {
				t.Errorf("Expected stage %d, got %d", tt.wantStage, w.state.Stage)
			}
			if w.state.StageTimer != 0 || w.state.WaveDelay != 120 {
				t.Errorf("Expected timers reset, got stageTimer=%d waveDelay=%d", w.state.StageTimer, w.state.WaveDelay)
			}
			if want := 5000*tt.stage + 10000; w.state.Score != want {
				t.Errorf("Expected score %d, got %d", want, w.state.Score)
			}
			if w.state.IsOver() != tt.wantOver {
				t.Errorf("Expected over=%v, got %v", tt.wantOver, w.state.IsOver())
			}
			if tt.wantOver {
				if len(events) != 1 || !events[0].Victory || events[0].Score != w.state.Score || events[0].Fragments != w.state.Fragments {
					t.Errorf("Expected one victory event with final totals, got %+v", events)
				}
			}
		})
	}
}
