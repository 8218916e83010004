package behavior

import (
	"math/rand"
	"testing"

	"github.com/decker502/voidline/pkg/components"
	"github.com/decker502/voidline/pkg/config"
	"github.com/decker502/voidline/pkg/ecs"
	"github.com/decker502/voidline/pkg/entities"
	"github.com/decker502/voidline/pkg/game"
	"github.com/decker502/voidline/pkg/types"
)

type fixture struct {
	em     *ecs.EntityManager
	state  *game.BattleState
	cfg    *config.CombatConfig
	system *BehaviorSystem
	player ecs.EntityID
}

// newFixture 创建带玩家的行为测试环境，玩家位于 (300, 700)
func newFixture(t *testing.T) *fixture {
	t.Helper()
	em := ecs.NewEntityManager()
	cfg := config.DefaultCombatConfig()
	state := game.NewBattleState(types.DifficultyNormal, game.DefaultModifiers())
	loadout := game.Loadout{Weapons: []types.WeaponID{types.WeaponPlasmaCutter}}
	if err := loadout.Validate(nil); err != nil {
		t.Fatalf("invalid loadout: %v", err)
	}
	player, err := entities.NewPlayer(em, cfg.Player, loadout, game.DefaultModifiers())
	if err != nil {
		t.Fatalf("failed to create player: %v", err)
	}
	return &fixture{
		em:     em,
		state:  state,
		cfg:    cfg,
		system: NewBehaviorSystem(em, state, cfg, rand.New(rand.NewSource(7))),
		player: player,
	}
}

func (f *fixture) enemy(kind types.EnemyType, x, y float64) ecs.EntityID {
	return entities.NewEnemy(f.em, entities.EnemySpec{Type: kind, X: x, Y: y, Size: 12, HP: 100, Score: 100})
}

// fightingBoss 创建已完成入场的首领
func (f *fixture) fightingBoss(variant types.BossVariant, hp float64) ecs.EntityID {
	id := entities.NewBoss(f.em, entities.EnemySpec{Variant: variant, X: 300, Y: 100, Size: 40, HP: hp}, "test")
	boss, _ := ecs.GetComponent[*components.BossComponent](f.em, id)
	boss.State = components.BossFighting
	return id
}

func (f *fixture) pos(id ecs.EntityID) *components.PositionComponent {
	p, _ := ecs.GetComponent[*components.PositionComponent](f.em, id)
	return p
}

func (f *fixture) enemyComp(id ecs.EntityID) *components.EnemyComponent {
	e, _ := ecs.GetComponent[*components.EnemyComponent](f.em, id)
	return e
}

func (f *fixture) enemyBullets() int {
	n := 0
	for _, id := range ecs.GetEntitiesWith1[*components.BulletComponent](f.em) {
		b, _ := ecs.GetComponent[*components.BulletComponent](f.em, id)
		if b.Owner == components.OwnerEnemy {
			n++
		}
	}
	return n
}
