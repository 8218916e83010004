package behavior

import (
	"math"

	"github.com/decker502/voidline/pkg/components"
	"github.com/decker502/voidline/pkg/ecs"
	"github.com/decker502/voidline/pkg/types"
	"github.com/decker502/voidline/pkg/utils"
)

// 杂兵参数
const (
	droneShotPeriod   = 120
	tankShotPeriod    = 90
	stealthShotPeriod = 150

	interceptorDiveFrames = 60
	interceptorSideSpeed  = 4.0
)

// handleTrashBehavior 杂兵移动（受时间流速影响）与射击
func (s *BehaviorSystem) handleTrashBehavior(id ecs.EntityID, enemy *components.EnemyComponent, pos *components.PositionComponent) {
	ts := s.state.TimeScale

	switch enemy.Type {
	case types.EnemyDrone:
		pos.Y += 2 * ts
		pos.X += math.Sin(float64(enemy.PatternTimer)*0.05) * 3 * ts
		if enemy.ShotTimer > droneShotPeriod {
			enemy.ShotTimer = 0
			s.shootAimed(pos.X, pos.Y, 0, 2, 5, 10, "#ff00aa")
		}

	case types.EnemyTank:
		pos.Y += 0.8 * ts
		if enemy.ShotTimer > tankShotPeriod {
			enemy.ShotTimer = 0
			for i := -1; i <= 1; i++ {
				s.shoot(pos.X, pos.Y, float64(i)*1.5, 3, 8, 15, "#ffaa00")
			}
		}

	case types.EnemyInterceptor:
		if enemy.PatternTimer < interceptorDiveFrames {
			pos.Y += 3 * ts
			return
		}
		vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
		if !ok {
			return
		}
		if vel.VX == 0 {
			if s.playerX > pos.X {
				vel.VX = interceptorSideSpeed
			} else {
				vel.VX = -interceptorSideSpeed
			}
		}
		pos.X += vel.VX * ts
		pos.Y += 4 * ts

	case types.EnemySeeker:
		vx, vy := utils.Polar(s.aimAt(pos.X, pos.Y), 3)
		pos.X += vx * ts
		pos.Y += vy * ts

	case types.EnemyStealth:
		pos.Y += 1.5 * ts
		if enemy.ShotTimer > stealthShotPeriod {
			enemy.ShotTimer = 0
			s.shoot(pos.X, pos.Y, 0, 5, 6, 20, "#444444")
		}
	}
}
