package systems

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/decker502/voidline/pkg/components"
	"github.com/decker502/voidline/pkg/config"
	"github.com/decker502/voidline/pkg/ecs"
	"github.com/decker502/voidline/pkg/entities"
	"github.com/decker502/voidline/pkg/game"
	"github.com/decker502/voidline/pkg/types"
)

// 武器节奏常量（帧）
const (
	overclockFireInterval    = 3
	overclockMaxFireInterval = 2 // 过载符卡 3 级

	vortexInterval = 53
	orbInterval    = 10
	gaussInterval  = 40
	pulseInterval  = 50
	bladeInterval  = 30
)

var weaponColors = map[types.WeaponID]color.RGBA{
	types.WeaponPlasmaCutter:   entities.ParseHexColor("#00f0ff"),
	types.WeaponSpreadShotgun:  entities.ParseHexColor("#ff5500"),
	types.WeaponHomingNeedles:  entities.ParseHexColor("#ff00aa"),
	types.WeaponLaserStream:    entities.ParseHexColor("#aa00ff"),
	types.WeaponWaveMotion:     entities.ParseHexColor("#00ffaa"),
	types.WeaponRocketBarrage:  entities.ParseHexColor("#ff0000"),
	types.WeaponChainLightning: entities.ParseHexColor("#00aaff"),
	types.WeaponBackTurret:     entities.ParseHexColor("#aaaaaa"),
	types.WeaponVortexDriver:   entities.ParseHexColor("#ffffff"),
	types.WeaponOrbitingOrbs:   entities.ParseHexColor("#ffff00"),
	types.WeaponGaussCannon:    entities.ParseHexColor("#00ff00"),
	types.WeaponPulseNova:      entities.ParseHexColor("#ff00ff"),
	types.WeaponPhaseBlades:    entities.ParseHexColor("#ff8800"),
}

// WeaponSystem 按装备的武器和等级生成玩家子弹
type WeaponSystem struct {
	entityManager *ecs.EntityManager
	state         *game.BattleState
	config        *config.CombatConfig
	rng           *rand.Rand
}

// NewWeaponSystem 创建武器系统
func NewWeaponSystem(em *ecs.EntityManager, state *game.BattleState, cfg *config.CombatConfig, rng *rand.Rand) *WeaponSystem {
	return &WeaponSystem{
		entityManager: em,
		state:         state,
		config:        cfg,
		rng:           rng,
	}
}

// Update 按住射击键且到达射击帧时，所有已装备武器各发射一轮
func (s *WeaponSystem) Update(input game.InputState) {
	if !input.Fire {
		return
	}
	_, player, pos, ok := FindPlayer(s.entityManager)
	if !ok {
		return
	}

	if s.state.Frame%s.fireInterval(player) != 0 {
		return
	}

	dmgMult := s.state.Modifiers.AttackMultiplier()
	for _, w := range player.Weapons {
		s.fireWeapon(w, player.WeaponLevel(w), pos.X, pos.Y, dmgMult)
	}
	s.state.AddCue(game.CueShoot)
}

// fireInterval 当前射击间隔
func (s *WeaponSystem) fireInterval(player *components.PlayerComponent) int {
	if !player.BuffActive(types.SpellOverclock) {
		return s.config.Player.FireInterval
	}
	if player.SpellLevel(types.SpellOverclock) >= 3 {
		return overclockMaxFireInterval
	}
	return overclockFireInterval
}

func (s *WeaponSystem) fireWeapon(w types.WeaponID, lvl int, x, y, dmgMult float64) {
	frame := s.state.Frame

	switch w {
	case types.WeaponPlasmaCutter:
		dmg := pick(lvl >= 2, 13, 10) * dmgMult
		s.spawn(w, lvl, entities.BulletSpec{X: x, Y: y - 10, Width: 4, Height: 12, VY: -15, Damage: dmg})
		if lvl >= 3 {
			s.spawn(w, lvl, entities.BulletSpec{X: x - 8, Y: y - 5, Width: 3, Height: 10, VX: -1, VY: -15, Damage: dmg})
			s.spawn(w, lvl, entities.BulletSpec{X: x + 8, Y: y - 5, Width: 3, Height: 10, VX: 1, VY: -15, Damage: dmg})
		}

	case types.WeaponSpreadShotgun:
		spread := 2
		if lvl >= 3 {
			spread = 3
		}
		dmg := pick(lvl >= 2, 8, 6) * dmgMult
		for i := -spread; i <= spread; i++ {
			s.spawn(w, lvl, entities.BulletSpec{
				X: x, Y: y, Width: 3, Height: 3,
				VX: float64(i) * 2, VY: -12,
				Damage:   dmg,
				Piercing: lvl >= 3,
			})
		}

	case types.WeaponHomingNeedles:
		speedMult := pick(lvl >= 2, 1.5, 1)
		count := 2
		if lvl >= 3 {
			count = 4
		}
		for i := 0; i < count; i++ {
			s.spawn(w, lvl, entities.BulletSpec{
				X: x + float64(i*10-count*5), Y: y, Width: 3, Height: 6,
				VX: (s.rng.Float64() - 0.5) * 4, VY: -10 * speedMult,
				Damage: 4 * dmgMult,
			})
		}

	case types.WeaponLaserStream:
		s.spawn(w, lvl, entities.BulletSpec{
			X: x, Y: y - 10, Width: pick(lvl >= 2, 10, 6), Height: 40,
			VY: -25, Damage: pick(lvl >= 3, 45, 30) * dmgMult, Piercing: true,
		})

	case types.WeaponWaveMotion:
		dmg := 18 * dmgMult
		s.spawnWave(lvl, x, y, dmg, 0)
		if lvl >= 3 {
			s.spawnWave(lvl, x, y, dmg, math.Pi)
		}

	case types.WeaponRocketBarrage:
		s.spawn(w, lvl, entities.BulletSpec{
			X: x, Y: y, Width: 8, Height: 12,
			VX: (s.rng.Float64() - 0.5) * 2, VY: -4,
			Damage:  10 * dmgMult,
			Splash:  pick(lvl >= 2, 90, 60),
			Cluster: lvl >= 3,
		})

	case types.WeaponChainLightning:
		jumps := 4
		if lvl >= 3 {
			jumps = 8
		}
		s.spawn(w, lvl, entities.BulletSpec{
			X: x, Y: y, Width: 4, Height: 10, VY: -18,
			Damage:     pick(lvl >= 2, 58, 40) * dmgMult,
			ChainCount: jumps,
			ChainRange: pick(lvl >= 2, 2.0, 1.2),
		})

	case types.WeaponBackTurret:
		dmg := pick(lvl >= 2, 35, 25) * dmgMult
		s.spawn(w, lvl, entities.BulletSpec{X: x, Y: y + 10, Width: 6, Height: 10, VY: 12, Damage: dmg})
		if lvl >= 3 {
			s.spawn(w, lvl, entities.BulletSpec{X: x, Y: y - 10, Width: 6, Height: 10, VY: -12, Damage: dmg})
		}

	case types.WeaponVortexDriver:
		if frame%vortexInterval != 0 {
			return
		}
		targetY := 100 + s.rng.Float64()*120
		id := s.spawn(w, lvl, entities.BulletSpec{
			X: x, Y: y, Width: 12, Height: 12,
			VY: -(y - targetY) * 0.042, Damage: 5 * dmgMult,
		})
		s.entityManager.AddComponent(id, &components.VortexComponent{
			Strength: pick(lvl >= 2, 1.5, 1),
			Dot:      lvl >= 3,
		})

	case types.WeaponOrbitingOrbs:
		maxOrbs := 2
		switch {
		case lvl >= 3:
			maxOrbs = 4
		case lvl == 2:
			maxOrbs = 3
		}
		existing := len(ecs.GetEntitiesWith1[*components.OrbComponent](s.entityManager))
		if existing >= maxOrbs || frame%orbInterval != 0 {
			return
		}
		id := s.spawn(w, lvl, entities.BulletSpec{
			X: x, Y: y, Width: 10, Height: 10,
			Damage: pick(lvl >= 2, 20, 15) * dmgMult,
		})
		s.entityManager.AddComponent(id, &components.OrbComponent{
			Angle:  float64(existing) * (2 * math.Pi / float64(maxOrbs)),
			Radius: pick(lvl >= 3, 80, 60),
			Speed:  pick(lvl >= 2, 0.3, 0.15),
		})

	case types.WeaponGaussCannon:
		if frame%gaussInterval != 0 {
			return
		}
		pierce := 1
		switch {
		case lvl >= 3:
			pierce = 99
		case lvl == 2:
			pierce = 3
		}
		s.spawn(w, lvl, entities.BulletSpec{
			X: x, Y: y - 10, Width: 5, Height: 30, VY: -40,
			Damage: 600 * dmgMult, Piercing: true, PierceCount: pierce,
		})

	case types.WeaponPulseNova:
		if frame%pulseInterval != 0 {
			return
		}
		size := pick(lvl >= 3, 40, 20)
		rate := 20
		if lvl >= 2 {
			rate = 10
		}
		s.spawn(w, lvl, entities.BulletSpec{
			X: x, Y: y, Width: size, Height: size, VY: -2,
			Damage: 68 * dmgMult, Piercing: true, PulseRate: rate,
		})

	case types.WeaponPhaseBlades:
		if frame%bladeInterval != 0 {
			return
		}
		count := 2
		if lvl >= 2 {
			count = 3
		}
		for i := 0; i < count; i++ {
			s.spawn(w, lvl, entities.BulletSpec{
				X: x + (s.rng.Float64()-0.5)*40, Y: y, Width: 8, Height: 8,
				VX: (s.rng.Float64() - 0.5) * 5, VY: -10,
				Damage: 18 * dmgMult,
			})
		}
	}
}

func (s *WeaponSystem) spawn(w types.WeaponID, lvl int, spec entities.BulletSpec) ecs.EntityID {
	spec.Weapon = w
	spec.Level = lvl
	spec.Color = weaponColors[w]
	return entities.NewPlayerBullet(s.entityManager, spec)
}

func (s *WeaponSystem) spawnWave(lvl int, x, y, dmg, phase float64) {
	id := s.spawn(types.WeaponWaveMotion, lvl, entities.BulletSpec{
		X: x, Y: y, Width: 8, Height: 8, VY: -8, Damage: dmg,
	})
	s.entityManager.AddComponent(id, &components.WaveComponent{InitialX: x, Phase: phase})
}

// pick 按条件二选一
func pick(cond bool, yes, no float64) float64 {
	if cond {
		return yes
	}
	return no
}
