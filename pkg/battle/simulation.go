// Package battle 组装战斗核心：实体管理器、战斗状态和全部系统，
// 按固定顺序执行一个逻辑帧。
package battle

import (
	"fmt"
	"math/rand"

	"github.com/decker502/voidline/pkg/components"
	"github.com/decker502/voidline/pkg/config"
	"github.com/decker502/voidline/pkg/ecs"
	"github.com/decker502/voidline/pkg/entities"
	"github.com/decker502/voidline/pkg/game"
	"github.com/decker502/voidline/pkg/systems"
	"github.com/decker502/voidline/pkg/systems/behavior"
)

// Simulation 一局战斗的完整上下文
//
// 单线程使用：Step 执行完毕后才能读取 Snapshot。没有任何全局状态，
// 同一进程可以同时运行多局。
type Simulation struct {
	entityManager *ecs.EntityManager
	state         *game.BattleState
	config        *config.CombatConfig
	setup         game.RunSetup
	playerID      ecs.EntityID

	damage           *systems.DamageResolver
	spellSystem      *systems.SpellSystem
	playerSystem     *systems.PlayerSystem
	weaponSystem     *systems.WeaponSystem
	spawnSystem      *systems.SpawnSystem
	behaviorSystem   *behavior.BehaviorSystem
	projectileSystem *systems.ProjectileSystem
	collisionSystem  *systems.CollisionSystem
	particleSystem   *systems.ParticleSystem

	cues     []game.Cue
	snapshot game.HUDSnapshot
}

// NewSimulation 创建一局新的战斗
//
// 参数:
//   - cfg: 战斗参数，nil 时使用默认值
//   - setup: 难度、战术支援层数、出击配置和增益
//   - seed: 随机种子，相同输入序列下结果可复现
//
// 返回:
//   - *Simulation: 已放置玩家的模拟实例
//   - error: 出击配置不合法时返回错误
func NewSimulation(cfg *config.CombatConfig, setup game.RunSetup, seed int64) (*Simulation, error) {
	if cfg == nil {
		cfg = config.DefaultCombatConfig()
	}
	if err := setup.Loadout.Validate(setup.Boosters); err != nil {
		return nil, fmt.Errorf("failed to start simulation: %w", err)
	}

	mods := setup.Modifiers()
	em := ecs.NewEntityManager()
	state := game.NewBattleState(setup.Difficulty, mods)

	playerID, err := entities.NewPlayer(em, cfg.Player, setup.Loadout, mods)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	rng := rand.New(rand.NewSource(seed))
	particles := systems.NewParticleEmitter(em, rand.New(rand.NewSource(seed+1)), cfg.Simulation.Particles)
	damage := systems.NewDamageResolver(em, state, cfg, rng, particles)
	spells := systems.NewSpellSystem(em, state, damage)

	sim := &Simulation{
		entityManager:    em,
		state:            state,
		config:           cfg,
		setup:            setup,
		playerID:         playerID,
		damage:           damage,
		spellSystem:      spells,
		playerSystem:     systems.NewPlayerSystem(em, state, cfg, spells),
		weaponSystem:     systems.NewWeaponSystem(em, state, cfg, rng),
		spawnSystem:      systems.NewSpawnSystem(em, state, cfg, rng),
		behaviorSystem:   behavior.NewBehaviorSystem(em, state, cfg, rng),
		projectileSystem: systems.NewProjectileSystem(em, state, cfg, rng),
		collisionSystem:  systems.NewCollisionSystem(em, state, cfg, rng, damage, particles),
		particleSystem:   systems.NewParticleSystem(em),
	}
	sim.publishSnapshot()
	return sim, nil
}

// Step 执行一个逻辑帧
// 本局结束后调用不产生任何效果
func (s *Simulation) Step(input game.InputState) {
	if s.state.IsOver() {
		return
	}

	s.state.Frame++
	s.state.StageTimer++

	s.playerSystem.Update(input)
	s.weaponSystem.Update(input)
	s.spawnSystem.Update()
	s.behaviorSystem.Update()
	s.projectileSystem.Update()
	s.collisionSystem.Update()
	s.entityManager.RemoveMarkedEntities()
	s.particleSystem.Update()

	s.cues = s.state.DrainCues()
	s.publishSnapshot()
}

// publishSnapshot 复制本帧结束时的 HUD 数据
func (s *Simulation) publishSnapshot() {
	st := s.state
	snap := game.HUDSnapshot{
		Score:     st.Score,
		Stage:     st.Stage,
		BossName:  st.BossName,
		Dialogue:  st.Dialogue,
		Fragments: st.Fragments,
		Frame:     st.Frame,
	}

	if player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.playerID); ok {
		snap.HP = player.ClampedHP()
		snap.MaxHP = player.MaxHP
		snap.Shield = player.Shield
		snap.Revives = player.Revives
		snap.Grazing = player.Grazing
		snap.SpellCooldowns = append([]int(nil), player.SpellCooldowns...)
		snap.SpellsReady = make([]bool, len(player.SpellCooldowns))
		for i, cd := range player.SpellCooldowns {
			snap.SpellsReady[i] = cd <= 0
		}
	}

	if st.BossActive {
		if health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, st.BossID); ok {
			snap.BossHP = health.Clamped()
			snap.BossMaxHP = health.Max
		}
	}

	if ev, over := st.GameOver(); over {
		snap.GameOver = true
		snap.Victory = ev.Victory
	}
	s.snapshot = snap
}

// Snapshot 返回最近一帧的 HUD 快照（值拷贝）
func (s *Simulation) Snapshot() game.HUDSnapshot {
	snap := s.snapshot
	snap.SpellsReady = append([]bool(nil), s.snapshot.SpellsReady...)
	snap.SpellCooldowns = append([]int(nil), s.snapshot.SpellCooldowns...)
	return snap
}

// Cues 返回最近一帧产生的提示事件
func (s *Simulation) Cues() []game.Cue {
	return s.cues
}

// GameOver 返回终止事件（未结束时 ok 为 false）
func (s *Simulation) GameOver() (game.GameOverEvent, bool) {
	return s.state.GameOver()
}

// SetGameOverHandler 设置终止事件回调，每局最多触发一次
func (s *Simulation) SetGameOverHandler(handler func(game.GameOverEvent)) {
	s.state.SetGameOverHandler(handler)
}

// EntityManager 返回实体管理器，渲染层只读
func (s *Simulation) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// State 返回战斗状态
func (s *Simulation) State() *game.BattleState {
	return s.state
}

// Config 返回战斗参数
func (s *Simulation) Config() *config.CombatConfig {
	return s.config
}

// Setup 返回本局的出击设置
func (s *Simulation) Setup() game.RunSetup {
	return s.setup
}

// PlayerID 返回玩家实体ID
func (s *Simulation) PlayerID() ecs.EntityID {
	return s.playerID
}

// Spawner 返回生成系统（测试与调试工具用）
func (s *Simulation) Spawner() *systems.SpawnSystem {
	return s.spawnSystem
}
