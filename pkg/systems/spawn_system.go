package systems

import (
	"fmt"
	"log"
	"math"
	"math/rand"

	"github.com/decker502/voidline/pkg/config"
	"github.com/decker502/voidline/pkg/ecs"
	"github.com/decker502/voidline/pkg/entities"
	"github.com/decker502/voidline/pkg/game"
	"github.com/decker502/voidline/pkg/types"
)

// 首领生成参数
const (
	bossSpawnY      = -100.0
	bossSize        = 40.0
	gammaBossSize   = 60.0
	bossRushStages  = 14 // 血量从最小值线性增长到最大值所需的阶段数
	seraphCount     = 6
	seraphSize      = 15.0
	seraphHPRatio   = 0.25
	seraphScore     = 500
	seraphRadius    = 100.0
	seraphOrbitRate = 0.02
)

var bossColors = map[types.BossVariant]string{
	types.VariantAlpha: "#ff0055",
	types.VariantBeta:  "#ffff00",
	types.VariantGamma: "#5500ff",
	types.VariantDelta: "#ffffff",
	types.VariantTheta: "#ffd700",
}

// SpawnSystem 杂兵生成与首领出场
type SpawnSystem struct {
	entityManager *ecs.EntityManager
	state         *game.BattleState
	config        *config.CombatConfig
	rng           *rand.Rand
}

// NewSpawnSystem 创建生成系统
func NewSpawnSystem(em *ecs.EntityManager, state *game.BattleState, cfg *config.CombatConfig, rng *rand.Rand) *SpawnSystem {
	return &SpawnSystem{
		entityManager: em,
		state:         state,
		config:        cfg,
		rng:           rng,
	}
}

// Update 每帧调用一次
// 首领连战模式只生成首领；其他模式在首领战和波次间隔期间不生成杂兵
func (s *SpawnSystem) Update() {
	st := s.state
	if st.Difficulty.IsBossRush() {
		if !st.BossActive && st.WaveDelay <= 0 {
			s.SpawnBoss()
		}
		return
	}
	if st.BossActive || st.WaveDelay > 0 {
		return
	}

	if st.Frame%s.spawnInterval() == 0 {
		s.spawnTrash()
	}

	if st.StageTimer > s.config.Boss.StageTimeLimit && !st.BossActive {
		s.SpawnBoss()
	}
}

// spawnInterval 当前的杂兵生成间隔（帧）
func (s *SpawnSystem) spawnInterval() int {
	if s.state.Difficulty == types.DifficultyInfinity {
		sp := s.config.Spawn
		interval := sp.InfinityBase - s.state.Stage*sp.InfinityStep
		if interval < sp.InfinityMin {
			interval = sp.InfinityMin
		}
		return interval
	}
	return s.config.SpawnInterval(s.state.Difficulty.String())
}

// rollEnemyType 按随机值和阶段选择杂兵类型
func rollEnemyType(roll float64, stage int, sp config.SpawnConfig) types.EnemyType {
	tankChance := sp.BaseTankChance - float64(stage)*sp.TankChanceStep
	switch {
	case roll > 0.9:
		return types.EnemyStealth
	case roll > 0.8:
		return types.EnemySeeker
	case roll > tankChance:
		return types.EnemyTank
	case roll > 0.45:
		return types.EnemyInterceptor
	}
	return types.EnemyDrone
}

func (s *SpawnSystem) spawnTrash() {
	sp := s.config.Spawn
	kind := rollEnemyType(s.rng.Float64(), s.state.Stage, sp)
	stats, ok := s.config.GetEnemyStats(kind.String())
	if !ok {
		return
	}
	x := s.rng.Float64()*sp.SpawnRangeX + sp.SpawnMinX

	growth := sp.StageHPGrowth
	if s.state.Difficulty == types.DifficultyInfinity {
		growth = sp.InfinityGrowth
	}
	hp := stats.HP * (1 + float64(s.state.Stage)*growth)

	entities.NewEnemy(s.entityManager, entities.EnemySpec{
		Type:      kind,
		X:         x,
		Y:         sp.SpawnY,
		Size:      stats.Size,
		HP:        hp,
		Score:     stats.Score,
		ShotTimer: s.rng.Float64() * 60,
		Color:     entities.ParseHexColor(stats.Color),
	})
}

// BossHP 计算当前阶段首领的血量
func BossHP(cfg *config.CombatConfig, diff types.Difficulty, stage int, variant types.BossVariant) float64 {
	var hp float64
	switch diff {
	case types.DifficultyBossRush:
		hp = lerpHP(cfg.Boss.BossRushHP, stage)
	case types.DifficultyBossRushExtreme:
		hp = lerpHP(cfg.Boss.BossRushExtremeHP, stage)
	default:
		mult := cfg.BossHPMultiplier(diff.String())
		if diff == types.DifficultyInfinity {
			mult = 2 * (1 + float64(stage)*0.5)
		}
		hp = cfg.Boss.BaseHP * float64(stage) * mult
	}
	if variant == types.VariantGamma {
		hp *= cfg.Boss.GammaHPMultiplier
	}
	return hp
}

func lerpHP(r config.HPRange, stage int) float64 {
	progress := math.Min(1, float64(stage-1)/bossRushStages)
	return r.Min + (r.Max-r.Min)*progress
}

// SpawnBoss 生成当前阶段的首领
// 已有首领时不做任何事，返回 false
func (s *SpawnSystem) SpawnBoss() bool {
	st := s.state
	if st.BossActive {
		return false
	}

	variants := types.BossVariants()
	variant := variants[s.rng.Intn(len(variants))]
	if st.Difficulty.IsBossRush() {
		variant = variants[(st.Stage-1)%len(variants)]
	}
	return s.SpawnBossVariant(variant)
}

// SpawnBossVariant 生成指定变体的首领，不检查是否已有首领
func (s *SpawnSystem) SpawnBossVariant(variant types.BossVariant) bool {
	st := s.state
	hp := BossHP(s.config, st.Difficulty, st.Stage, variant)
	name := fmt.Sprintf("UNIT-0%d-%s [%s]", st.Stage, variant.CodeName(), st.Difficulty)

	size := bossSize
	if variant == types.VariantGamma {
		size = gammaBossSize
	}
	x := s.config.Field.Width / 2

	id := entities.NewBoss(s.entityManager, entities.EnemySpec{
		Variant: variant,
		X:       x,
		Y:       bossSpawnY,
		Size:    size,
		HP:      hp,
		Score:   s.config.Boss.ScorePerStage * st.Stage,
		Color:   entities.ParseHexColor(bossColors[variant]),
	}, name)

	st.BossActive = true
	st.BossID = id
	st.BossName = name
	st.BossVariant = variant
	st.ShowDialogue(s.config.Boss.Dialogue, s.config.Boss.DialogueFrames)
	st.AddCue(game.CueBossWarning)

	if variant == types.VariantDelta {
		for i := 0; i < seraphCount; i++ {
			entities.NewSatellite(s.entityManager, entities.EnemySpec{
				Type:      types.EnemySeraphDrone,
				X:         x,
				Y:         bossSpawnY,
				Size:      seraphSize,
				HP:        hp * seraphHPRatio,
				Score:     seraphScore,
				ShotTimer: s.rng.Float64() * 60,
				Color:     entities.ColorSeraph,
			}, id, (2*math.Pi/seraphCount)*float64(i), seraphRadius, seraphOrbitRate)
		}
	}

	log.Printf("[SpawnSystem] Boss %s spawned (hp=%.0f, stage=%d)", name, hp, st.Stage)
	return true
}
