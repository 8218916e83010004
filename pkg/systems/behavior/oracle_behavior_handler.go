package behavior

import (
	"math"

	"github.com/decker502/voidline/pkg/components"
	"github.com/decker502/voidline/pkg/ecs"
	"github.com/decker502/voidline/pkg/entities"
	"github.com/decker502/voidline/pkg/systems"
	"github.com/decker502/voidline/pkg/types"
)

// theta 首领护盾与仆从参数
const (
	shieldRecharge   = 480  // 护盾关闭后多少帧重新开启
	shieldDuration   = 1200 // 护盾最长持续帧数
	shieldRatio      = 0.08
	minionPeriod     = 360
	minionHPFloor    = 0.05 // 首领血量低于该比例后不再召唤
	minionHPCost     = 0.01
	minionHPRatio    = 0.03
	minionBatch      = 3
	maxOrbitMinions  = 13
	maxPatrolMinions = 7
	minionSize       = 12.0
	minionScore      = 500
	minionOrbitR     = 80.0
	minionOrbitSpeed = 0.03
)

// updateThetaShield 护盾周期：关闭 480 帧后开启，开启 1200 帧或被打破后关闭
func (s *BehaviorSystem) updateThetaShield(id ecs.EntityID) {
	shield, ok := ecs.GetComponent[*components.BossShieldComponent](s.entityManager, id)
	if !ok {
		return
	}
	health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)

	shield.Timer++
	if shield.Active {
		if shield.Timer > shieldDuration || shield.HP <= 0 {
			shield.Active = false
			shield.Timer = 0
		}
		return
	}
	if shield.Timer > shieldRecharge {
		shield.Active = true
		shield.Max = health.Max * shieldRatio
		shield.HP = shield.Max
		shield.Timer = 0
	}
}

// spawnOracleMinions 每 360 帧消耗首领 1% 血量召唤最多 3 个仆从
// 环绕型上限 13，巡逻型上限 7
func (s *BehaviorSystem) spawnOracleMinions(id ecs.EntityID, pos *components.PositionComponent) {
	if s.state.Frame%minionPeriod != 0 {
		return
	}
	health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)
	if health.Current <= health.Max*minionHPFloor {
		return
	}

	orbiting, patrolling := s.countOracleMinions()
	health.Current -= health.Max * minionHPCost
	minionHP := health.Max * minionHPRatio

	for m := 0; m < minionBatch; m++ {
		if orbiting >= maxOrbitMinions && patrolling >= maxPatrolMinions {
			break
		}
		orbit := s.rng.Float64() > 0.3
		if patrolling >= maxPatrolMinions {
			orbit = true
		}
		if orbiting >= maxOrbitMinions {
			orbit = false
		}

		spec := entities.EnemySpec{
			Type:      types.EnemyOracleMinion,
			X:         pos.X,
			Y:         pos.Y,
			Size:      minionSize,
			HP:        minionHP,
			Score:     minionScore,
			ShotTimer: s.rng.Float64() * 60,
			Color:     entities.ColorMinion,
		}
		if orbit {
			spec.Variant = types.VariantAlpha
			entities.NewSatellite(s.entityManager, spec, id, (2*math.Pi/minionBatch)*float64(m), minionOrbitR, minionOrbitSpeed)
			orbiting++
			continue
		}

		dir := 1.0
		if s.rng.Float64() <= 0.5 {
			dir = -1
		}
		spec.Variant = types.VariantBeta
		spec.VX = (2 + s.rng.Float64()) * dir
		spec.VY = 0.5
		entities.NewSatellite(s.entityManager, spec, id, 0, 0, 0)
		patrolling++
	}
}

// countOracleMinions 统计存活的环绕型与巡逻型仆从
func (s *BehaviorSystem) countOracleMinions() (orbiting, patrolling int) {
	for _, id := range systems.Enemies(s.entityManager) {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
		if enemy.Type != types.EnemyOracleMinion {
			continue
		}
		if enemy.Variant == types.VariantAlpha {
			orbiting++
		} else {
			patrolling++
		}
	}
	return orbiting, patrolling
}
