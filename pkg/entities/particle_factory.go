package entities

import (
	"image/color"

	"github.com/decker502/voidline/pkg/components"
	"github.com/decker502/voidline/pkg/ecs"
)

// NewParticle 创建一个装饰粒子
func NewParticle(em *ecs.EntityManager, x, y, vx, vy, size float64, life int, c color.RGBA) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.VelocityComponent{VX: vx, VY: vy})
	em.AddComponent(id, &components.ShapeComponent{Color: c})
	em.AddComponent(id, &components.ParticleComponent{Life: life, MaxLife: life, Alpha: 1, Size: size})
	return id
}
