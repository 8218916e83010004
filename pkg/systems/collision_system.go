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

const (
	thetaShieldRadius = 80.0
	frozenBonus       = 1.5

	pulseBlastRadius     = 60.0
	pulseDetonateRadius  = 100.0
	pulseDetonateDamage  = 50.0
	clusterBlasts        = 3
	clusterBlastRadius   = 30.0
	clusterBlastSpread   = 40.0
	chainBaseRange       = 200.0
	chainSpeed           = 20.0
	aegisRetaliateRadius = 150.0
	aegisRetaliateDamage = 100.0
	orbDeflectCooldown   = 240
)

// CollisionSystem 处理玩家子弹命中敌人、玩家受击和环绕球拦截
type CollisionSystem struct {
	entityManager *ecs.EntityManager
	state         *game.BattleState
	config        *config.CombatConfig
	rng           *rand.Rand
	damage        *DamageResolver
	particles     *ParticleEmitter
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(em *ecs.EntityManager, state *game.BattleState, cfg *config.CombatConfig, rng *rand.Rand, damage *DamageResolver, particles *ParticleEmitter) *CollisionSystem {
	return &CollisionSystem{
		entityManager: em,
		state:         state,
		config:        cfg,
		rng:           rng,
		damage:        damage,
		particles:     particles,
	}
}

// Update 执行一次完整的碰撞结算
// 最后统一结算爆炸、符卡、持续伤害造成的死亡
func (s *CollisionSystem) Update() {
	s.resolvePlayerBullets()
	s.resolvePlayerHits()
	s.damage.ResolveDeaths()
}

func (s *CollisionSystem) resolvePlayerBullets() {
	enemies := Enemies(s.entityManager)

	for _, bid := range Bullets(s.entityManager) {
		b, _ := ecs.GetComponent[*components.BulletComponent](s.entityManager, bid)
		if b.Owner != components.OwnerPlayer || ecs.HasComponent[*components.VortexComponent](s.entityManager, bid) {
			continue
		}
		for _, eid := range enemies {
			if s.entityManager.IsDestroyed(bid) {
				break
			}
			if s.entityManager.IsDestroyed(eid) || b.HasHit(eid) {
				continue
			}
			if health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, eid); ok && health.Current <= 0 {
				continue
			}
			s.resolveBulletHit(bid, b, eid)
		}
	}
}

// resolveBulletHit 处理一颗玩家子弹与一个敌人的接触
func (s *CollisionSystem) resolveBulletHit(bid ecs.EntityID, b *components.BulletComponent, eid ecs.EntityID) {
	em := s.entityManager
	bpos, _ := ecs.GetComponent[*components.PositionComponent](em, bid)
	bcol, _ := ecs.GetComponent[*components.CollisionComponent](em, bid)
	epos, _ := ecs.GetComponent[*components.PositionComponent](em, eid)
	ecol, _ := ecs.GetComponent[*components.CollisionComponent](em, eid)
	enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, eid)
	health, _ := ecs.GetComponent[*components.HealthComponent](em, eid)

	dist := utils.Distance(bpos.X, bpos.Y, epos.X, epos.Y)

	if shield, ok := ecs.GetComponent[*components.BossShieldComponent](em, eid); ok && shield.Active && shield.HP > 0 {
		if dist < thetaShieldRadius {
			shield.HP -= b.Damage
			s.particles.Burst(bpos.X, bpos.Y, 1, 2, 5, 5, entities.ColorShieldSpark)
			em.DestroyEntity(bid)
			return
		}
	}

	if dist >= ecol.Width+bcol.Width {
		return
	}

	_, player, _, _ := FindPlayer(em)
	bonus := 1.0
	if enemy.FrozenTimer > 0 && player != nil && player.SpellLevel(types.SpellStasisField) >= 3 {
		bonus = frozenBonus
	}
	health.Current -= b.Damage * bonus
	s.particles.Burst(bpos.X, bpos.Y, 1, 2, 5, 5, entities.ColorHitSpark)

	if b.Weapon == types.WeaponPulseNova && b.PulseRate > 0 && b.Timer%b.PulseRate == 0 {
		s.damage.Explode(bpos.X, bpos.Y, pulseBlastRadius, b.Damage/2)
	}

	switch {
	case b.Splash > 0 && splashAllowed(b.Weapon):
		s.damage.Explode(bpos.X, bpos.Y, b.Splash, b.Damage)
		if b.Cluster {
			for i := 0; i < clusterBlasts; i++ {
				cx := bpos.X + (s.rng.Float64()-0.5)*clusterBlastSpread
				cy := bpos.Y + (s.rng.Float64()-0.5)*clusterBlastSpread
				s.damage.Explode(cx, cy, clusterBlastRadius, b.Damage/2)
			}
		}
		em.DestroyEntity(bid)

	case b.ChainCount > 0:
		b.ChainCount--
		b.RecordHit(eid)
		if b.ChainCount <= 0 {
			em.DestroyEntity(bid)
			break
		}
		next, found := NearestEnemy(em, epos.X, epos.Y, chainBaseRange*b.ChainRange, func(id ecs.EntityID) bool {
			return id == eid || b.HasHit(id)
		})
		if !found {
			em.DestroyEntity(bid)
			break
		}
		npos, _ := ecs.GetComponent[*components.PositionComponent](em, next)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](em, bid)
		vel.VX, vel.VY = utils.Polar(utils.AimAngle(bpos.X, bpos.Y, npos.X, npos.Y), chainSpeed)
		bpos.X, bpos.Y = epos.X, epos.Y

	case b.Piercing:
		b.RecordHit(eid)
		if b.Weapon == types.WeaponGaussCannon && b.PierceCount > 0 {
			b.PierceCount--
			if b.PierceCount <= 0 {
				em.DestroyEntity(bid)
			}
		}

	case b.Weapon != types.WeaponOrbitingOrbs && b.Weapon != types.WeaponPulseNova:
		em.DestroyEntity(bid)
	}

	if health.Current <= 0 && s.damage.Kill(eid) {
		if b.Weapon == types.WeaponPulseNova && b.Level >= 3 {
			s.damage.Explode(epos.X, epos.Y, pulseDetonateRadius, pulseDetonateDamage)
		}
	}
}

// splashAllowed 环绕球、脉冲新星和波动弹不触发溅射
func splashAllowed(w types.WeaponID) bool {
	return w != types.WeaponOrbitingOrbs && w != types.WeaponPulseNova && w != types.WeaponWaveMotion
}

// resolvePlayerHits 敌方子弹与机体撞击玩家
// 一次受击生效后（进入无敌或本局结束）本帧不再检测
func (s *CollisionSystem) resolvePlayerHits() {
	em := s.entityManager
	_, player, ppos, ok := FindPlayer(em)
	if !ok {
		return
	}
	if player.InvulnerableFrames > 0 {
		player.InvulnerableFrames--
		return
	}

	canDeflect := player.HasWeapon(types.WeaponOrbitingOrbs) &&
		(player.WeaponLevel(types.WeaponOrbitingOrbs) >= 3 || s.state.Modifiers.Boosters.Has(types.BoosterOrbDeflector))
	var orbs []ecs.EntityID
	if canDeflect {
		orbs = ecs.GetEntitiesWith2[*components.OrbComponent, *components.PositionComponent](em)
	}

	for _, bid := range Bullets(em) {
		if s.hitResolved(player) {
			return
		}
		b, _ := ecs.GetComponent[*components.BulletComponent](em, bid)
		if b.Owner != components.OwnerEnemy || em.IsDestroyed(bid) {
			continue
		}
		bpos, _ := ecs.GetComponent[*components.PositionComponent](em, bid)
		bcol, _ := ecs.GetComponent[*components.CollisionComponent](em, bid)

		if s.deflect(orbs, bpos, bcol) {
			em.DestroyEntity(bid)
			continue
		}
		if s.checkHit(player, ppos, bpos.X, bpos.Y, bcol.Width) {
			em.DestroyEntity(bid)
		}
	}

	for _, eid := range Enemies(em) {
		if s.hitResolved(player) {
			return
		}
		epos, _ := ecs.GetComponent[*components.PositionComponent](em, eid)
		ecol, _ := ecs.GetComponent[*components.CollisionComponent](em, eid)
		s.checkHit(player, ppos, epos.X, epos.Y, ecol.Width+s.config.Player.BodyPadding)
	}
}

func (s *CollisionSystem) hitResolved(player *components.PlayerComponent) bool {
	return player.InvulnerableFrames > 0 || s.state.IsOver()
}

// deflect 检查是否有未冷却的环绕球拦截了这颗子弹
func (s *CollisionSystem) deflect(orbs []ecs.EntityID, bpos *components.PositionComponent, bcol *components.CollisionComponent) bool {
	for _, oid := range orbs {
		if s.entityManager.IsDestroyed(oid) {
			continue
		}
		orb, _ := ecs.GetComponent[*components.OrbComponent](s.entityManager, oid)
		if orb.Cooldown > 0 {
			continue
		}
		opos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, oid)
		ocol, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, oid)
		if utils.Distance(opos.X, opos.Y, bpos.X, bpos.Y) < ocol.Width+bcol.Width {
			orb.Cooldown = orbDeflectCooldown
			return true
		}
	}
	return false
}

// checkHit 判定 (x, y) 处半径为 size 的物体是否击中玩家
// 返回 true 表示命中；未命中但进入擦弹半径时加分
func (s *CollisionSystem) checkHit(player *components.PlayerComponent, ppos *components.PositionComponent, x, y, size float64) bool {
	pc := s.config.Player
	dist := utils.Distance(x, y, ppos.X, ppos.Y)

	if dist >= size+pc.HitPadding {
		if dist < pc.GrazeRadius {
			player.Grazing++
			s.state.Score += pc.GrazeScore
		}
		return false
	}

	damage := pc.HitDamage * s.state.Modifiers.IncomingDamageMultiplier
	if player.Shield > 0 {
		player.Shield = math.Max(0, player.Shield-damage)
		if player.SpellLevel(types.SpellAegisShield) >= 3 {
			s.damage.Explode(ppos.X, ppos.Y, aegisRetaliateRadius, aegisRetaliateDamage)
		}
		player.InvulnerableFrames = pc.ShieldInvuln
		return true
	}

	player.HP -= damage
	player.FramesSinceLastHit = 0
	s.state.AddCue(game.CuePlayerHit)

	switch {
	case player.HP > 0:
		player.InvulnerableFrames = pc.HitInvuln
	case player.Revives > 0:
		player.Revives--
		player.HP = player.MaxHP
		player.InvulnerableFrames = pc.ReviveInvuln
		s.damage.Explode(ppos.X, ppos.Y, pc.ReviveBlastRadius, pc.ReviveBlastDamage)
	default:
		s.state.EndRun(false)
	}
	return true
}
