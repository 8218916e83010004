package behavior

import (
	"math/rand"

	"github.com/decker502/voidline/pkg/components"
	"github.com/decker502/voidline/pkg/config"
	"github.com/decker502/voidline/pkg/ecs"
	"github.com/decker502/voidline/pkg/entities"
	"github.com/decker502/voidline/pkg/game"
	"github.com/decker502/voidline/pkg/systems"
	"github.com/decker502/voidline/pkg/types"
	"github.com/decker502/voidline/pkg/utils"
)

// BehaviorSystem 驱动所有敌人的移动与攻击
// 按敌人类型分派到杂兵、首领、卫星的处理函数
type BehaviorSystem struct {
	entityManager *ecs.EntityManager
	state         *game.BattleState
	config        *config.CombatConfig
	rng           *rand.Rand

	// 本帧玩家位置（没有玩家时保持上一帧的值）
	playerX, playerY float64
}

// NewBehaviorSystem 创建一个新的行为系统
// 参数:
//   - em: EntityManager 实例
//   - state: 当前战斗状态（帧数、阶段、时间流速）
//   - cfg: 战斗参数
//   - rng: 战斗逻辑使用的随机数源
func NewBehaviorSystem(em *ecs.EntityManager, state *game.BattleState, cfg *config.CombatConfig, rng *rand.Rand) *BehaviorSystem {
	return &BehaviorSystem{
		entityManager: em,
		state:         state,
		config:        cfg,
		rng:           rng,
		playerX:       cfg.Player.StartX,
		playerY:       cfg.Player.StartY,
	}
}

// Update 更新所有敌人
// 被冻结的敌人只倒计时冻结帧；越过回收边界的敌人直接移除（不计分）
func (s *BehaviorSystem) Update() {
	if _, _, pos, ok := systems.FindPlayer(s.entityManager); ok {
		s.playerX, s.playerY = pos.X, pos.Y
	}

	field := s.config.Field
	for _, id := range systems.Enemies(s.entityManager) {
		if s.entityManager.IsDestroyed(id) {
			continue
		}
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		if enemy.FrozenTimer > 0 {
			enemy.FrozenTimer--
			continue
		}

		enemy.PatternTimer++
		enemy.ShotTimer++

		switch enemy.Type {
		case types.EnemyBoss:
			if !s.handleBossBehavior(id, enemy, pos) {
				continue
			}
		case types.EnemySeraphDrone:
			s.handleSeraphBehavior(id, enemy, pos)
		case types.EnemyOracleMinion:
			s.handleOracleMinionBehavior(id, enemy, pos)
		default:
			s.handleTrashBehavior(id, enemy, pos)
		}

		if pos.Y > field.Height+field.Margin || pos.X < -field.Margin || pos.X > field.Width+field.Margin {
			s.entityManager.DestroyEntity(id)
		}
	}
}

// aimAt 返回从 (x, y) 指向玩家的角度
func (s *BehaviorSystem) aimAt(x, y float64) float64 {
	return utils.AimAngle(x, y, s.playerX, s.playerY)
}

// shoot 发射一颗正方形敌弹
func (s *BehaviorSystem) shoot(x, y, vx, vy, size, damage float64, color string) ecs.EntityID {
	return entities.NewEnemyBullet(s.entityManager, x, y, vx, vy, size, damage, entities.ParseHexColor(color))
}

// shootAimed 以指定速度朝玩家方向发射
func (s *BehaviorSystem) shootAimed(x, y, angleOffset, speed, size, damage float64, color string) {
	vx, vy := utils.Polar(s.aimAt(x, y)+angleOffset, speed)
	s.shoot(x, y, vx, vy, size, damage, color)
}
