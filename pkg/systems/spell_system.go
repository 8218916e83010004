package systems

import (
	"log"
	"math"

	"github.com/decker502/voidline/pkg/components"
	"github.com/decker502/voidline/pkg/ecs"
	"github.com/decker502/voidline/pkg/game"
	"github.com/decker502/voidline/pkg/types"
)

// 符卡基础冷却（秒）
var spellCooldownSeconds = map[types.SpellID]float64{
	types.SpellTimeDilator:   45,
	types.SpellEMPBlast:      30,
	types.SpellOverclock:     40,
	types.SpellPhantomDash:   35,
	types.SpellOrbitalStrike: 60,
	types.SpellNanoRepair:    90,
	types.SpellAegisShield:   50,
	types.SpellStasisField:   60,
}

// 冷却帧数下限
const minSpellCooldown = 60

// SpellSystem 执行符卡效果
type SpellSystem struct {
	entityManager *ecs.EntityManager
	state         *game.BattleState
	damage        *DamageResolver
}

// NewSpellSystem 创建符卡系统
func NewSpellSystem(em *ecs.EntityManager, state *game.BattleState, damage *DamageResolver) *SpellSystem {
	return &SpellSystem{
		entityManager: em,
		state:         state,
		damage:        damage,
	}
}

// CooldownFrames 计算符卡施放后的冷却帧数
func CooldownFrames(spell types.SpellID, lvl int, mods game.Modifiers) int {
	cd := spellCooldownSeconds[spell] * 60 * mods.CooldownFactor()
	if mods.CooldownRateMultiplier > 0 {
		cd /= mods.CooldownRateMultiplier
	}
	if spell == types.SpellEMPBlast && lvl >= 2 {
		cd -= 300
	}
	if spell == types.SpellPhantomDash && lvl >= 3 {
		cd -= 600
	}
	return int(math.Max(minSpellCooldown, math.Ceil(cd)))
}

// Cast 尝试施放指定槽位的符卡
// 槽位为空或仍在冷却时返回 false
func (s *SpellSystem) Cast(slot int) bool {
	_, player, _, ok := FindPlayer(s.entityManager)
	if !ok || slot < 0 || slot >= len(player.Spells) {
		return false
	}
	if player.SpellCooldowns[slot] > 0 {
		return false
	}

	spell := player.Spells[slot]
	lvl := player.SpellLevel(spell)
	player.SpellCooldowns[slot] = CooldownFrames(spell, lvl, s.state.Modifiers)
	s.state.AddCue(game.CueSpell)
	log.Printf("[SpellSystem] Cast %s (level %d) from slot %d, cooldown %d frames", spell, lvl, slot, player.SpellCooldowns[slot])

	s.apply(player, spell, lvl)
	return true
}

func (s *SpellSystem) apply(player *components.PlayerComponent, spell types.SpellID, lvl int) {
	switch spell {
	case types.SpellEMPBlast:
		for _, id := range Bullets(s.entityManager) {
			b, _ := ecs.GetComponent[*components.BulletComponent](s.entityManager, id)
			if b.Owner == components.OwnerEnemy {
				s.entityManager.DestroyEntity(id)
			}
		}
		if lvl >= 3 {
			s.damageAllEnemies(200*s.state.Modifiers.DamageMultiplier, 50)
		}

	case types.SpellTimeDilator:
		duration := 300
		if lvl >= 2 {
			duration += 120
		}
		if lvl >= 3 {
			duration += 180
		}
		player.Buffs[types.SpellTimeDilator] = duration

	case types.SpellOverclock:
		duration := 300
		if lvl >= 2 {
			duration += 120
		}
		player.Buffs[types.SpellOverclock] = duration

	case types.SpellPhantomDash:
		invuln := 240
		if lvl >= 2 {
			invuln += 60
		}
		player.InvulnerableFrames = invuln

	case types.SpellOrbitalStrike:
		dmg := 2000.0
		if lvl >= 3 {
			dmg = 4000
		}
		radius := 100.0
		if lvl >= 2 {
			radius = 150
		}
		s.damageAllEnemies(dmg*s.state.Modifiers.DamageMultiplier, radius)

	case types.SpellNanoRepair:
		heal := 0.3
		if lvl >= 2 {
			heal = 0.5
		}
		player.HP = math.Min(player.MaxHP, player.HP+player.MaxHP*heal)
		if lvl >= 3 {
			player.HP = math.Min(player.MaxHP, player.HP+20)
		}

	case types.SpellAegisShield:
		amount := 50.0
		if lvl >= 2 {
			amount = 80
		}
		player.Shield += amount

	case types.SpellStasisField:
		frames := 180
		if lvl >= 2 {
			frames = 300
		}
		for _, id := range Enemies(s.entityManager) {
			enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
			enemy.FrozenTimer = frames
		}
	}
}

// damageAllEnemies 对所有敌人造成固定伤害，并在每个敌人处播放无伤害的爆炸效果
func (s *SpellSystem) damageAllEnemies(amount, blastRadius float64) {
	for _, id := range Enemies(s.entityManager) {
		health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		health.Current -= amount
		s.damage.Explode(pos.X, pos.Y, blastRadius, 0)
	}
}
