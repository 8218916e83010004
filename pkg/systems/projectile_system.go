package systems

import (
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

// 追踪参数
const (
	needleHomingStrength = 1.0
	needleMaxSpeed       = 10.0
	bladeHomingStrength  = 2.0
	bladeMaxSpeed        = 15.0
	bladeHomingDelay     = 10 // 相位刃发射后多少帧开始追踪
	bladeTeleportPeriod  = 30

	waveFrequency = 0.2
	waveAmplitude = 40.0

	vortexDrag         = 0.96
	vortexSettleSpeed  = 0.2
	vortexSettledLife  = 180
	vortexPullRadius   = 150.0
	vortexSettledPull  = 225.0
	vortexForce        = 10.0
	vortexDotInterval  = 10
	vortexDotDamage    = 4.0
	betaReaimAge       = 60
	betaReaimSpeed     = 6.0
	fireworkShards     = 6
	fireworkShardSpeed = 3.0
	fireworkShardSize  = 4.0
	fireworkShardDmg   = 10.0
)

var colorFireworkShard = entities.ParseHexColor("#ffff00")

// ProjectileSystem 推进所有子弹：特殊运动、速度积分、越界回收
type ProjectileSystem struct {
	entityManager *ecs.EntityManager
	state         *game.BattleState
	config        *config.CombatConfig
	rng           *rand.Rand
}

// NewProjectileSystem 创建子弹运动系统
func NewProjectileSystem(em *ecs.EntityManager, state *game.BattleState, cfg *config.CombatConfig, rng *rand.Rand) *ProjectileSystem {
	return &ProjectileSystem{
		entityManager: em,
		state:         state,
		config:        cfg,
		rng:           rng,
	}
}

// Update 更新所有子弹
// 本帧新生成的碎片弹不参与本帧运动
func (s *ProjectileSystem) Update() {
	_, _, playerPos, hasPlayer := FindPlayer(s.entityManager)

	for _, id := range Bullets(s.entityManager) {
		if s.entityManager.IsDestroyed(id) {
			continue
		}
		b, _ := ecs.GetComponent[*components.BulletComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)

		b.Timer++
		orb, isOrb := ecs.GetComponent[*components.OrbComponent](s.entityManager, id)

		if b.Owner == components.OwnerPlayer {
			switch {
			case b.Weapon == types.WeaponWaveMotion:
				if wave, ok := ecs.GetComponent[*components.WaveComponent](s.entityManager, id); ok {
					pos.X = wave.InitialX + math.Sin(float64(b.Timer)*waveFrequency+wave.Phase)*waveAmplitude
				}
			case isOrb:
				orb.Angle += orb.Speed
				if hasPlayer {
					pos.X = playerPos.X + math.Cos(orb.Angle)*orb.Radius
					pos.Y = playerPos.Y + math.Sin(orb.Angle)*orb.Radius
				}
				if orb.Cooldown > 0 {
					orb.Cooldown--
				}
			case b.HomingTarget != 0 || (b.Weapon == types.WeaponPhaseBlades && b.Timer > bladeHomingDelay):
				s.steer(b, pos, vel)
			case b.Weapon == types.WeaponHomingNeedles:
				if target, ok := NearestEnemy(s.entityManager, pos.X, pos.Y, 0, nil); ok {
					b.HomingTarget = target
				}
			}

			if vortex, ok := ecs.GetComponent[*components.VortexComponent](s.entityManager, id); ok {
				s.updateVortex(id, pos, vel, vortex)
			}
		} else if s.state.BossActive && s.state.BossVariant == types.VariantBeta &&
			vel.VX == 0 && vel.VY == 0 && b.Timer > betaReaimAge && hasPlayer {
			vel.VX, vel.VY = utils.Polar(utils.AimAngle(pos.X, pos.Y, playerPos.X, playerPos.Y), betaReaimSpeed)
		}

		if !isOrb {
			scale := 1.0
			if b.Owner == components.OwnerEnemy {
				scale = s.state.TimeScale
			}
			pos.X += vel.VX * scale
			pos.Y += vel.VY * scale
		}

		field := s.config.Field
		if b.Firework {
			if pos.X < 0 || pos.X > field.Width || pos.Y > field.Height || pos.Y < -field.Margin {
				s.entityManager.DestroyEntity(id)
				s.burstFirework(pos.X, pos.Y)
			}
		} else if outOfField(pos.X, pos.Y, field.Width, field.Height, field.Margin) {
			s.entityManager.DestroyEntity(id)
		}
	}
}

// steer 追踪弹转向目标
// 锁定目标消失时重新选择最近的敌人，没有敌人时保持直线
func (s *ProjectileSystem) steer(b *components.BulletComponent, pos *components.PositionComponent, vel *components.VelocityComponent) {
	if b.HomingTarget == 0 || s.entityManager.IsDestroyed(b.HomingTarget) {
		target, ok := NearestEnemy(s.entityManager, pos.X, pos.Y, 0, nil)
		if !ok {
			b.HomingTarget = 0
			return
		}
		b.HomingTarget = target
	}
	targetPos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, b.HomingTarget)
	if !ok {
		return
	}

	if b.Weapon == types.WeaponPhaseBlades && b.Level >= 3 && b.Timer%bladeTeleportPeriod == 0 {
		pos.X, pos.Y = targetPos.X, targetPos.Y
		return
	}

	strength, maxSpeed := needleHomingStrength, needleMaxSpeed
	if b.Weapon == types.WeaponPhaseBlades {
		strength, maxSpeed = bladeHomingStrength, bladeMaxSpeed
	}
	ux, uy, _ := utils.Normalize(targetPos.X-pos.X, targetPos.Y-pos.Y)
	vel.VX += ux * strength
	vel.VY += uy * strength
	vel.VX, vel.VY = utils.CapSpeed(vel.VX, vel.VY, maxSpeed)
}

// updateVortex 引力场：减速停驻，吸引非首领敌人，3 级附带持续伤害
func (s *ProjectileSystem) updateVortex(id ecs.EntityID, pos *components.PositionComponent, vel *components.VelocityComponent, vortex *components.VortexComponent) {
	vel.VY *= vortexDrag
	if math.Abs(vel.VY) < vortexSettleSpeed {
		vel.VY = 0
		vortex.Settled = true
	}
	if vortex.Settled {
		vortex.SettledTimer++
		if vortex.SettledTimer > vortexSettledLife {
			s.entityManager.DestroyEntity(id)
		}
	}

	radius := vortexPullRadius
	if vortex.Settled {
		radius = vortexSettledPull
	}
	dotTick := vortex.Dot && s.state.Frame%vortexDotInterval == 0

	for _, eid := range Enemies(s.entityManager) {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.entityManager, eid)
		if enemy.Type == types.EnemyBoss {
			continue
		}
		epos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, eid)
		ux, uy, dist := utils.Normalize(pos.X-epos.X, pos.Y-epos.Y)
		if dist >= radius {
			continue
		}
		intensity := math.Pow(math.Max(0, 1-dist/radius), 2)
		force := intensity * vortexForce * vortex.Strength
		epos.X += ux * force
		epos.Y += uy * force

		if dotTick {
			health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, eid)
			health.Current -= vortexDotDamage
		}
	}
}

// burstFirework 焰火弹在边界炸裂成碎片，碎片位置限制在战场内
func (s *ProjectileSystem) burstFirework(x, y float64) {
	field := s.config.Field
	cx := utils.Clamp(x, 0, field.Width)
	cy := utils.Clamp(y, 0, field.Height)
	for k := 0; k < fireworkShards; k++ {
		angle := (2*math.Pi/fireworkShards)*float64(k) + s.rng.Float64()*0.5
		vx, vy := utils.Polar(angle, fireworkShardSpeed)
		entities.NewEnemyBullet(s.entityManager, cx, cy, vx, vy, fireworkShardSize, fireworkShardDmg, colorFireworkShard)
	}
}
