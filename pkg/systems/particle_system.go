package systems

import (
	"github.com/decker502/voidline/pkg/components"
	"github.com/decker502/voidline/pkg/ecs"
)

// ParticleSystem 推进装饰粒子
type ParticleSystem struct {
	entityManager *ecs.EntityManager
}

// NewParticleSystem 创建粒子系统
func NewParticleSystem(em *ecs.EntityManager) *ParticleSystem {
	return &ParticleSystem{entityManager: em}
}

// Update 移动粒子并衰减透明度，寿命耗尽的粒子标记删除
func (s *ParticleSystem) Update() {
	ids := ecs.GetEntitiesWith3[*components.ParticleComponent, *components.PositionComponent, *components.VelocityComponent](s.entityManager)
	for _, id := range ids {
		particle, _ := ecs.GetComponent[*components.ParticleComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)

		pos.X += vel.VX
		pos.Y += vel.VY
		particle.Life--
		if particle.MaxLife > 0 {
			particle.Alpha = float64(particle.Life) / float64(particle.MaxLife)
		}
		if particle.Life <= 0 {
			s.entityManager.DestroyEntity(id)
		}
	}
}
