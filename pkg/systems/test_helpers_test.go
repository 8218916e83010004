package systems

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/decker502/voidline/pkg/components"
	"github.com/decker502/voidline/pkg/config"
	"github.com/decker502/voidline/pkg/ecs"
	"github.com/decker502/voidline/pkg/entities"
	"github.com/decker502/voidline/pkg/game"
	"github.com/decker502/voidline/pkg/types"
)

// testWorld 测试用的最小战斗环境（无粒子）
type testWorld struct {
	em        *ecs.EntityManager
	state     *game.BattleState
	cfg       *config.CombatConfig
	rng       *rand.Rand
	particles *ParticleEmitter
	damage    *DamageResolver
	playerID  ecs.EntityID
}

func newTestWorld(t *testing.T, difficulty types.Difficulty, loadout game.Loadout, mods game.Modifiers) *testWorld {
	t.Helper()
	if err := loadout.Validate(mods.Boosters); err != nil {
		t.Fatalf("invalid test loadout: %v", err)
	}
	em := ecs.NewEntityManager()
	cfg := config.DefaultCombatConfig()
	state := game.NewBattleState(difficulty, mods)
	rng := rand.New(rand.NewSource(42))
	particles := NewParticleEmitter(em, rand.New(rand.NewSource(43)), false)

	playerID, err := entities.NewPlayer(em, cfg.Player, loadout, mods)
	if err != nil {
		t.Fatalf("failed to create player: %v", err)
	}
	return &testWorld{
		em:        em,
		state:     state,
		cfg:       cfg,
		rng:       rng,
		particles: particles,
		damage:    NewDamageResolver(em, state, cfg, rng, particles),
		playerID:  playerID,
	}
}

// plasmaLoadout 只带一级等离子切割器的出击配置
func plasmaLoadout() game.Loadout {
	return game.Loadout{Weapons: []types.WeaponID{types.WeaponPlasmaCutter}}
}

func (w *testWorld) player() (*components.PlayerComponent, *components.PositionComponent) {
	p, _ := ecs.GetComponent[*components.PlayerComponent](w.em, w.playerID)
	pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, w.playerID)
	return p, pos
}

func (w *testWorld) addEnemy(x, y, hp float64) ecs.EntityID {
	return entities.NewEnemy(w.em, entities.EnemySpec{
		Type:  types.EnemyDrone,
		X:     x,
		Y:     y,
		Size:  12,
		HP:    hp,
		Score: 100,
	})
}

func (w *testWorld) addEnemyBullet(x, y, vx, vy float64) ecs.EntityID {
	return entities.NewEnemyBullet(w.em, x, y, vx, vy, 5, 10, color.RGBA{})
}

func (w *testWorld) hp(id ecs.EntityID) float64 {
	h, _ := ecs.GetComponent[*components.HealthComponent](w.em, id)
	return h.Current
}

func (w *testWorld) bullet(id ecs.EntityID) *components.BulletComponent {
	b, _ := ecs.GetComponent[*components.BulletComponent](w.em, id)
	return b
}

func (w *testWorld) position(id ecs.EntityID) *components.PositionComponent {
	p, _ := ecs.GetComponent[*components.PositionComponent](w.em, id)
	return p
}

func (w *testWorld) velocity(id ecs.EntityID) *components.VelocityComponent {
	v, _ := ecs.GetComponent[*components.VelocityComponent](w.em, id)
	return v
}

// countBullets 统计指定归属的存活子弹
func (w *testWorld) countBullets(owner components.BulletOwner) int {
	n := 0
	for _, id := range Bullets(w.em) {
		if w.bullet(id).Owner == owner {
			n++
		}
	}
	return n
}
