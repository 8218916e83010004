package behavior

import (
	"math"

	"github.com/decker502/voidline/pkg/components"
	"github.com/decker502/voidline/pkg/ecs"
	"github.com/decker502/voidline/pkg/types"
)

const (
	seraphShotPeriod = 120
	oracleShotPeriod = 120
	oracleBombPeriod = 60
	patrolBounceEdge = 10.0
)

// orbitParent 让卫星绕父实体旋转
// 父实体已死亡或不存在时返回 false
func (s *BehaviorSystem) orbitParent(sat *components.SatelliteComponent, pos *components.PositionComponent) bool {
	if sat.ParentID == 0 || s.entityManager.IsDestroyed(sat.ParentID) {
		return false
	}
	parentPos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, sat.ParentID)
	if !ok {
		return false
	}
	sat.OrbitAngle += sat.OrbitSpeed
	pos.X = parentPos.X + math.Cos(sat.OrbitAngle)*sat.OrbitRadius
	pos.Y = parentPos.Y + math.Sin(sat.OrbitAngle)*sat.OrbitRadius
	return true
}

// handleSeraphBehavior 炽天使护卫：绕首领旋转并瞄准射击，首领消失后随之消失
func (s *BehaviorSystem) handleSeraphBehavior(id ecs.EntityID, enemy *components.EnemyComponent, pos *components.PositionComponent) {
	sat, ok := ecs.GetComponent[*components.SatelliteComponent](s.entityManager, id)
	if !ok || !s.orbitParent(sat, pos) {
		s.entityManager.DestroyEntity(id)
		return
	}
	if enemy.ShotTimer > seraphShotPeriod {
		enemy.ShotTimer = 0
		s.shootAimed(pos.X, pos.Y, 0, 2, 4, 8, "#ccffff")
	}
}

// handleOracleMinionBehavior 神谕仆从，首领消失后随之消失
// 环绕型绕首领旋转；巡逻型左右往返并投弹
func (s *BehaviorSystem) handleOracleMinionBehavior(id ecs.EntityID, enemy *components.EnemyComponent, pos *components.PositionComponent) {
	sat, ok := ecs.GetComponent[*components.SatelliteComponent](s.entityManager, id)
	if !ok || sat.ParentID == 0 || !s.entityManager.Exists(sat.ParentID) {
		s.entityManager.DestroyEntity(id)
		return
	}

	if enemy.Variant == types.VariantAlpha {
		if !s.orbitParent(sat, pos) {
			s.entityManager.DestroyEntity(id)
			return
		}
		if enemy.ShotTimer > oracleShotPeriod {
			enemy.ShotTimer = 0
			angle := s.rng.Float64() * 2 * math.Pi
			if s.rng.Float64() > 0.5 {
				angle = s.aimAt(pos.X, pos.Y)
			}
			s.shoot(pos.X, pos.Y, math.Cos(angle)*3, math.Sin(angle)*3, 4, 8, "#ffaa00")
		}
		return
	}

	vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
	if !ok {
		return
	}
	pos.X += vel.VX
	pos.Y += vel.VY
	if pos.X < patrolBounceEdge || pos.X > s.config.Field.Width-patrolBounceEdge {
		vel.VX = -vel.VX
	}
	if enemy.ShotTimer > oracleBombPeriod {
		enemy.ShotTimer = 0
		s.shoot(pos.X, pos.Y, 0, 4, 6, 10, "#ff5500")
	}
}
