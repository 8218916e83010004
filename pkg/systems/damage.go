package systems

import (
	"log"
	"math"
	"math/rand"

	"github.com/decker502/voidline/pkg/components"
	"github.com/decker502/voidline/pkg/config"
	"github.com/decker502/voidline/pkg/ecs"
	"github.com/decker502/voidline/pkg/entities"
	"github.com/decker502/voidline/pkg/game"
	"github.com/decker502/voidline/pkg/types"
	"github.com/decker502/voidline/pkg/utils"
)

// DamageResolver 负责范围伤害和敌人死亡结算
//
// 所有死亡都经过 Kill，实体第一次被标记时才发放分数、碎片和首领奖励，
// 同一敌人在同一帧内被多个来源击杀也只结算一次。
type DamageResolver struct {
	entityManager *ecs.EntityManager
	state         *game.BattleState
	config        *config.CombatConfig
	rng           *rand.Rand
	particles     *ParticleEmitter
}

// NewDamageResolver 创建伤害结算器
func NewDamageResolver(em *ecs.EntityManager, state *game.BattleState, cfg *config.CombatConfig, rng *rand.Rand, particles *ParticleEmitter) *DamageResolver {
	return &DamageResolver{
		entityManager: em,
		state:         state,
		config:        cfg,
		rng:           rng,
		particles:     particles,
	}
}

// Explode 在 (x, y) 处产生爆炸
// 半径 radius + 敌人半径内的所有敌人受到 damage × 攻击倍率 的伤害，damage 为 0 时只有视觉效果。
// 死亡不在这里结算，由碰撞阶段结束时的 ResolveDeaths 统一处理。
func (d *DamageResolver) Explode(x, y, radius, damage float64) {
	final := damage * d.state.Modifiers.AttackMultiplier()
	d.particles.Burst(x, y, 8, radius/2, 10, 15, entities.ColorExplosion)

	for _, id := range Enemies(d.entityManager) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](d.entityManager, id)
		col, ok := ecs.GetComponent[*components.CollisionComponent](d.entityManager, id)
		if !ok {
			continue
		}
		if utils.Distance(pos.X, pos.Y, x, y) < radius+col.Width {
			health, _ := ecs.GetComponent[*components.HealthComponent](d.entityManager, id)
			health.Current -= final
		}
	}
}

// Kill 结算敌人死亡
// 返回 true 表示本次调用完成了结算；已死亡或不是敌人的实体返回 false。
func (d *DamageResolver) Kill(id ecs.EntityID) bool {
	enemy, ok := ecs.GetComponent[*components.EnemyComponent](d.entityManager, id)
	if !ok {
		return false
	}
	if !d.entityManager.DestroyEntity(id) {
		return false
	}

	d.state.Score += enemy.ScoreValue
	d.state.Fragments += d.rollFragments()
	d.state.AddCue(game.CueExplosion)

	if enemy.Type == types.EnemyBoss {
		d.onBossDefeated()
	}
	return true
}

// ResolveDeaths 结算所有生命值 <= 0 但尚未死亡的敌人
// 返回本次结算的数量
func (d *DamageResolver) ResolveDeaths() int {
	killed := 0
	for _, id := range Enemies(d.entityManager) {
		health, _ := ecs.GetComponent[*components.HealthComponent](d.entityManager, id)
		if health.Current <= 0 && d.Kill(id) {
			killed++
		}
	}
	return killed
}

// rollFragments 计算一次击杀掉落的数据碎片
// ceil(randInt[min, max] × 难度倍率 × 首领连战倍率 × 增益倍率)
func (d *DamageResolver) rollFragments() int {
	loot := d.config.Loot
	base := loot.MinRoll + d.rng.Intn(loot.MaxRoll-loot.MinRoll+1)
	mult := d.config.LootMultiplier(d.state.Difficulty.String())
	if d.state.Difficulty.IsBossRush() {
		mult *= loot.BossRushMultiplier
	}
	mult *= d.state.Modifiers.LootMultiplier()
	return int(math.Ceil(float64(base) * mult))
}

func (d *DamageResolver) onBossDefeated() {
	s := d.state
	name := s.BossName

	s.BossActive = false
	s.BossID = 0
	s.BossName = ""
	s.BossVariant = types.VariantNone
	s.WaveDelay = d.config.Boss.WaveDelay
	s.Stage++
	s.StageTimer = 0
	s.Score += d.config.Boss.KillBonus

	log.Printf("[DamageResolver] Boss %s defeated, advancing to stage %d (score=%d)", name, s.Stage, s.Score)

	maxStages := s.MaxStages(d.config.Stages.MaxStages, d.config.Stages.BossRushMaxStages)
	if s.Stage >= maxStages && s.Difficulty != types.DifficultyInfinity {
		s.EndRun(true)
	}
}
