package behavior

import (
	"math"

	"github.com/decker502/voidline/pkg/components"
	"github.com/decker502/voidline/pkg/ecs"
	"github.com/decker502/voidline/pkg/entities"
	"github.com/decker502/voidline/pkg/types"
)

// 首领参数
const (
	bossAnchorY      = 100.0
	bossEnterEase    = 0.02
	phaseFrames      = 600 // 每个攻击阶段持续的帧数
	phaseCount       = 3
	summonMinPeriod  = 180
	summonBasePeriod = 720
	summonStep       = 120
	summonCount      = 2
	summonSpread     = 100.0
	summonOffsetY    = 20.0
	gammaFireFactor  = 0.75
)

var summonTypes = []types.EnemyType{types.EnemyDrone, types.EnemySeeker, types.EnemyTank}

// handleBossBehavior 首领状态机
// 返回 false 表示首领仍在入场，调用方跳过越界检查
func (s *BehaviorSystem) handleBossBehavior(id ecs.EntityID, enemy *components.EnemyComponent, pos *components.PositionComponent) bool {
	boss, ok := ecs.GetComponent[*components.BossComponent](s.entityManager, id)
	if !ok {
		return true
	}

	if boss.State == components.BossEntering {
		pos.Y += (bossAnchorY - pos.Y) * bossEnterEase
		if math.Abs(pos.Y-bossAnchorY) < 1 {
			boss.State = components.BossFighting
		}
		return false
	}

	if s.state.Stage > 1 {
		period := summonBasePeriod - (s.state.Stage-2)*summonStep
		if period < summonMinPeriod {
			period = summonMinPeriod
		}
		if s.state.Frame%period == 0 {
			s.summonMinions(pos.X, pos.Y)
		}
	}

	s.moveBoss(enemy.Variant, pos)

	if enemy.Variant == types.VariantTheta {
		s.updateThetaShield(id)
		s.spawnOracleMinions(id, pos)
	}

	if enemy.ShotTimer > float64(s.bossFireRate(enemy.Variant)) {
		enemy.ShotTimer = 0
		s.fireBossPattern(enemy.Variant, pos.X, pos.Y)
	}
	return true
}

// bossFireRate 按难度和变体计算攻击间隔
func (s *BehaviorSystem) bossFireRate(variant types.BossVariant) int {
	rate := s.config.BossFireRate(s.state.Difficulty.String())
	if variant == types.VariantGamma {
		rate = int(math.Floor(float64(rate) * gammaFireFactor))
	}
	return rate
}

// summonMinions 召唤两个不计分的杂兵
func (s *BehaviorSystem) summonMinions(x, y float64) {
	kind := summonTypes[s.rng.Intn(len(summonTypes))]
	stats, ok := s.config.GetEnemyStats(kind.String())
	if !ok {
		return
	}
	for k := 0; k < summonCount; k++ {
		entities.NewEnemy(s.entityManager, entities.EnemySpec{
			Type:      kind,
			X:         x + (s.rng.Float64()-0.5)*summonSpread,
			Y:         y + summonOffsetY,
			Size:      stats.Size,
			HP:        stats.HP,
			ShotTimer: s.rng.Float64() * 60,
			Color:     entities.ParseHexColor(stats.Color),
		})
	}
}

// moveBoss 各变体的移动轨迹（不受时间流速影响）
func (s *BehaviorSystem) moveBoss(variant types.BossVariant, pos *components.PositionComponent) {
	f := float64(s.state.Frame)
	cx := s.config.Field.Width / 2

	switch variant {
	case types.VariantBeta:
		pos.X = cx + math.Sin(f*0.04)*200
		pos.Y = 100 + math.Cos(f*0.03)*50
	case types.VariantGamma:
		pos.X = cx + math.Sin(f*0.01)*100
		pos.Y = 80
	case types.VariantDelta:
		pos.X = cx + math.Sin(f*0.02)*50
		pos.Y = 120 + math.Sin(f*0.05)*20
	case types.VariantTheta:
		pos.X = cx + math.Sin(f*0.01)*150
		pos.Y = 100 + math.Sin(f*0.02)*20
	default:
		hoverY := 120 + math.Sin(f*0.03)*30
		pos.X = cx + math.Sin(f*0.015)*180
		pos.Y += (hoverY - pos.Y) * 0.05
	}
}

// fireBossPattern 按当前阶段发射弹幕
// 阶段 = floor(frame / 600) mod 3
func (s *BehaviorSystem) fireBossPattern(variant types.BossVariant, x, y float64) {
	frame := s.state.Frame
	phase := (frame / phaseFrames) % phaseCount

	switch variant {
	case types.VariantBeta:
		const c = "#ffff00"
		switch phase {
		case 0:
			for i := -1; i <= 1; i++ {
				s.shootAimed(x, y, float64(i)*0.3, 3, 5, 10, c)
			}
		case 1:
			t := float64(frame%100) / 100
			angle := math.Pi/2 + (t - 0.5)
			s.shoot(x, y, math.Cos(angle)*4, math.Sin(angle)*4, 6, 10, c)
			s.shoot(x, y, math.Cos(angle+math.Pi)*4, math.Sin(angle+math.Pi)*4, 6, 10, c)
		default:
			s.shoot(x, y, (s.rng.Float64()-0.5)*5, (s.rng.Float64()-0.5)*5, 8, 15, c)
		}

	case types.VariantGamma:
		c := entities.ParseHexColor("#5500ff")
		switch phase {
		case 0:
			const arms = 8
			for i := 0; i < arms; i++ {
				angle := float64(frame)*0.05 + float64(i)*(2*math.Pi/arms)
				entities.NewEnemyBullet(s.entityManager, x, y, math.Cos(angle)*1.5, math.Sin(angle)*1.5, 12, 25, c)
			}
		case 1:
			offset := 0.0
			if frame%200 >= 100 {
				offset = 20
			}
			entities.NewEnemyBulletRect(s.entityManager, offset+float64(frame%20)*30, 0, 0, 3, 8, 20, 20, c)
		default:
			angle := s.aimAt(x, y)
			entities.NewEnemyBullet(s.entityManager, x, y, math.Cos(angle), math.Sin(angle), 20, 30, c)
		}

	case types.VariantDelta:
		c := entities.ParseHexColor("#ffffff")
		switch phase {
		case 0:
			if frame%3 == 0 {
				entities.NewEnemyBulletRect(s.entityManager, x, y, 0, 5, 40, 10, 20, c)
			}
		case 1:
			for k := 0; k < 2; k++ {
				angle := math.Pi/2 + (s.rng.Float64() - 0.5)
				entities.NewEnemyBulletRect(s.entityManager, x, y, math.Cos(angle)*3, math.Sin(angle)*3, 6, 12, 15, c)
			}
		default:
			entities.NewEnemyBullet(s.entityManager, x-50, y, -1, 3, 8, 15, c)
			entities.NewEnemyBullet(s.entityManager, x+50, y, 1, 3, 8, 15, c)
			entities.NewEnemyBullet(s.entityManager, x-25, y+10, -0.5, 3, 8, 15, c)
			entities.NewEnemyBullet(s.entityManager, x+25, y+10, 0.5, 3, 8, 15, c)
		}

	case types.VariantTheta:
		angle := s.rng.Float64() * 2 * math.Pi
		entities.NewFirework(s.entityManager, x, y, math.Cos(angle)*5, math.Sin(angle)*5, 10, 20, entities.ColorMinion)

	default:
		const c = "#ff0055"
		switch phase {
		case 0:
			const arms = 6
			for i := 0; i < arms; i++ {
				angle := float64(frame)*0.1 + float64(i)*(2*math.Pi/arms)
				s.shoot(x, y, math.Cos(angle)*2, math.Sin(angle)*2, 8, 15, c)
			}
		case 1:
			for i := -1; i <= 1; i++ {
				s.shootAimed(x, y, float64(i)*0.1, 3, 6, 15, c)
			}
		default:
			s.shoot(x+(s.rng.Float64()-0.5)*100, y, (s.rng.Float64()-0.5)*2, (s.rng.Float64()+0.5)*1.5, 10, 15, c)
		}
	}
}
