package systems

import (
	"math"
	"testing"

	"github.com/decker502/voidline/pkg/components"
	"github.com/decker502/voidline/pkg/ecs"
	"github.com/decker502/voidline/pkg/entities"
	"github.com/decker502/voidline/pkg/game"
	"github.com/decker502/voidline/pkg/types"
)

func TestBulletBoundaryMargin(t *testing.T) {
	tests := []struct {
		name    string
		x, y    float64
		removed bool
	}{
		{"exactly at top margin", 300, -50, false},
		{"past top margin", 300, -50.5, true},
		{"exactly at bottom margin", 300, 850, false},
		{"past bottom margin", 300, 850.5, true},
		{"exactly at left margin", -50, 400, false},
		{"past right margin", 650.5, 400, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, types.DifficultyNormal, plasmaLoadout(), game.DefaultModifiers())
			ps := NewProjectileSystem(w.em, w.state, w.cfg, w.rng)
			id := w.addEnemyBullet(tt.x, tt.y, 0, 0)
			ps.Update()
			if w.em.IsDestroyed(id) != tt.removed {
				t.Errorf("Expected removed=%v at (%v, %v)", tt.removed, tt.x, tt.y)
			}
		})
	}
}

func TestEnemyBulletsUseTimeScale(t *testing.T) {
	w := newTestWorld(t, types.DifficultyNormal, plasmaLoadout(), game.DefaultModifiers())
	ps := NewProjectileSystem(w.em, w.state, w.cfg, w.rng)
	enemyBullet := w.addEnemyBullet(100, 100, 0, 5)
	playerBullet := entities.NewPlayerBullet(w.em, entities.BulletSpec{X: 100, Y: 500, VY: -15, Width: 4, Height: 12, Weapon: types.WeaponPlasmaCutter})

	w.state.TimeScale = 0.2
	ps.Update()

	if got := w.position(enemyBullet).Y; got != 101 {
		t.Errorf("Expected dilated enemy bullet at y=101, got %v", got)
	}
	if got := w.position(playerBullet).Y; got != 485 {
		t.Errorf("Player bullets ignore time scale, expected y=485, got %v", got)
	}
	if w.bullet(enemyBullet).Timer != 1 {
		t.Error("Bullets should age every tick")
	}
}

func TestHomingNeedleRetargets(t *testing.T) {
	w := newTestWorld(t, types.DifficultyNormal, plasmaLoadout(), game.DefaultModifiers())
	ps := NewProjectileSystem(w.em, w.state, w.cfg, w.rng)

	first := w.addEnemy(300, 100, 100)
	second := w.addEnemy(100, 100, 100)
	needle := entities.NewPlayerBullet(w.em, entities.BulletSpec{X: 300, Y: 400, VY: -10, Width: 3, Height: 6, Weapon: types.WeaponHomingNeedles, Level: 1})

	ps.Update()
	if got := w.bullet(needle).HomingTarget; got != first {
		t.Fatalf("Expected needle to lock on nearest enemy %d, got %d", first, got)
	}

	w.em.DestroyEntity(first)
	ps.Update()
	if got := w.bullet(needle).HomingTarget; got != second {
		t.Fatalf("Expected needle to retarget to %d, got %d", second, got)
	}
	vel := w.velocity(needle)
	if speed := math.Hypot(vel.VX, vel.VY); speed > 10+1e-9 {
		t.Errorf("Needle speed %v exceeds cap 10", speed)
	}
	if vel.VX >= 0 {
		t.Errorf("Needle should steer left toward the new target, vx=%v", vel.VX)
	}
}

func TestHomingWithoutEnemiesFliesStraight(t *testing.T) {
	w := newTestWorld(t, types.DifficultyNormal, plasmaLoadout(), game.DefaultModifiers())
	ps := NewProjectileSystem(w.em, w.state, w.cfg, w.rng)
	blade := entities.NewPlayerBullet(w.em, entities.BulletSpec{X: 300, Y: 400, VY: -10, Width: 8, Height: 8, Weapon: types.WeaponPhaseBlades, Level: 1})
	w.bullet(blade).Timer = 20

	ps.Update()
	vel := w.velocity(blade)
	if vel.VX != 0 || vel.VY != -10 {
		t.Errorf("Blade without targets should keep its velocity, got (%v, %v)", vel.VX, vel.VY)
	}
	if math.IsNaN(w.position(blade).X) {
		t.Error("Position must never become NaN")
	}
}

func TestWaveMotionPhase(t *testing.T) {
	w := newTestWorld(t, types.DifficultyNormal, plasmaLoadout(), game.DefaultModifiers())
	ps := NewProjectileSystem(w.em, w.state, w.cfg, w.rng)

	a := entities.NewPlayerBullet(w.em, entities.BulletSpec{X: 300, Y: 400, VY: -8, Width: 8, Height: 8, Weapon: types.WeaponWaveMotion})
	w.em.AddComponent(a, &components.WaveComponent{InitialX: 300})
	b := entities.NewPlayerBullet(w.em, entities.BulletSpec{X: 300, Y: 400, VY: -8, Width: 8, Height: 8, Weapon: types.WeaponWaveMotion})
	w.em.AddComponent(b, &components.WaveComponent{InitialX: 300, Phase: math.Pi})

	ps.Update()
	offA := w.position(a).X - 300
	offB := w.position(b).X - 300
	want := math.Sin(0.2) * 40
	if math.Abs(offA-want) > 1e-9 || math.Abs(offB+want) > 1e-9 {
		t.Errorf("Expected mirrored offsets ±%v, got %v and %v", want, offA, offB)
	}
	if w.position(a).Y != 392 {
		t.Errorf("Wave bullets still integrate vy, got y=%v", w.position(a).Y)
	}
}

func TestFireworkBurst(t *testing.T) {
	w := newTestWorld(t, types.DifficultyNormal, plasmaLoadout(), game.DefaultModifiers())
	ps := NewProjectileSystem(w.em, w.state, w.cfg, w.rng)
	fw := entities.NewFirework(w.em, 598, 300, 5, 0, 10, 20, entities.ColorMinion)

	ps.Update()
	if !w.em.IsDestroyed(fw) {
		t.Fatal("Firework crossing the field edge should burst")
	}
	shards := 0
	for _, id := range Bullets(w.em) {
		pos := w.position(id)
		if pos.X != 600 || pos.Y != 300 {
			t.Errorf("Shard should spawn clamped at (600, 300), got (%v, %v)", pos.X, pos.Y)
		}
		if w.bullet(id).Damage != 10 {
			t.Errorf("Expected shard damage 10, got %v", w.bullet(id).Damage)
		}
		shards++
	}
	if shards != 6 {
		t.Errorf("Expected 6 shards, got %d", shards)
	}
}

func TestBetaBossReaimsStationaryBullets(t *testing.T) {
	w := newTestWorld(t, types.DifficultyNormal, plasmaLoadout(), game.DefaultModifiers())
	ps := NewProjectileSystem(w.em, w.state, w.cfg, w.rng)
	w.state.BossActive = true
	w.state.BossVariant = types.VariantBeta

	_, ppos := w.player()
	id := w.addEnemyBullet(ppos.X, ppos.Y-300, 0, 0)
	w.bullet(id).Timer = 60

	ps.Update()
	vel := w.velocity(id)
	if math.Abs(vel.VX) > 1e-9 || math.Abs(vel.VY-6) > 1e-9 {
		t.Errorf("Expected bullet re-aimed at player with speed 6, got (%v, %v)", vel.VX, vel.VY)
	}
}

func TestVortexPullAndSettle(t *testing.T) {
	w := newTestWorld(t, types.DifficultyNormal, plasmaLoadout(), game.DefaultModifiers())
	ps := NewProjectileSystem(w.em, w.state, w.cfg, w.rng)

	vortex := entities.NewPlayerBullet(w.em, entities.BulletSpec{X: 300, Y: 200, VY: -5, Width: 12, Height: 12, Weapon: types.WeaponVortexDriver, Damage: 5})
	w.em.AddComponent(vortex, &components.VortexComponent{Strength: 1, Dot: true})
	near := w.addEnemy(300, 275, 100)     // 距离 75
	centered := w.addEnemy(300, 200, 100) // 距离 0
	boss := entities.NewBoss(w.em, entities.EnemySpec{Variant: types.VariantAlpha, X: 300, Y: 260, Size: 40, HP: 100}, "boss")

	w.state.Frame = 10
	ps.Update()

	// (1 - 75/150)^2 × 10 = 2.5
	if got := w.position(near).Y; math.Abs(got-272.5) > 1e-9 {
		t.Errorf("Expected enemy pulled to y=272.5, got %v", got)
	}
	if pos := w.position(centered); pos.X != 300 || pos.Y != 200 {
		t.Errorf("Enemy at the vortex center should not move, got (%v, %v)", pos.X, pos.Y)
	}
	if w.position(boss).Y != 260 {
		t.Error("Bosses are immune to the pull")
	}
	if w.hp(near) != 96 {
		t.Errorf("Expected 4 damage-over-time, got hp %v", w.hp(near))
	}
	if got := w.velocity(vortex).VY; math.Abs(got+4.8) > 1e-9 {
		t.Errorf("Expected drag to slow the vortex to -4.8, got %v", got)
	}

	vc, _ := ecs.GetComponent[*components.VortexComponent](w.em, vortex)
	if vc.Settled {
		t.Fatal("Moving vortex should not settle yet")
	}

	w.velocity(vortex).VY = 0.1
	w.state.Frame = 11
	for i := 0; i < 180; i++ {
		ps.Update()
	}
	if !vc.Settled || w.em.IsDestroyed(vortex) {
		t.Fatal("Vortex should be settled and alive after 180 settled frames")
	}
	ps.Update()
	if !w.em.IsDestroyed(vortex) {
		t.Error("Settled vortex should expire after 180 frames")
	}
}
