package entities

import (
	"image/color"

	"github.com/decker502/voidline/pkg/components"
	"github.com/decker502/voidline/pkg/ecs"
	"github.com/decker502/voidline/pkg/types"
)

// EnemySpec 创建敌人所需的参数
type EnemySpec struct {
	Type      types.EnemyType
	Variant   types.BossVariant
	X, Y      float64
	VX, VY    float64
	Size      float64
	HP        float64
	Score     int
	ShotTimer float64
	Color     color.RGBA
}

// NewEnemy 创建敌人实体（杂兵、召唤物、卫星共用）
func NewEnemy(em *ecs.EntityManager, spec EnemySpec) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: spec.X, Y: spec.Y})
	em.AddComponent(id, &components.VelocityComponent{VX: spec.VX, VY: spec.VY})
	em.AddComponent(id, &components.CollisionComponent{Width: spec.Size, Height: spec.Size})
	em.AddComponent(id, &components.HealthComponent{Current: spec.HP, Max: spec.HP})
	em.AddComponent(id, &components.ShapeComponent{Color: spec.Color})
	em.AddComponent(id, &components.EnemyComponent{
		Type:       spec.Type,
		Variant:    spec.Variant,
		ScoreValue: spec.Score,
		ShotTimer:  spec.ShotTimer,
	})
	return id
}

// NewSatellite 创建绕父实体运动的卫星敌人
func NewSatellite(em *ecs.EntityManager, spec EnemySpec, parent ecs.EntityID, angle, radius, speed float64) ecs.EntityID {
	id := NewEnemy(em, spec)
	em.AddComponent(id, &components.SatelliteComponent{
		ParentID:    parent,
		OrbitAngle:  angle,
		OrbitRadius: radius,
		OrbitSpeed:  speed,
	})
	return id
}

// NewBoss 创建首领实体
// theta 变体额外挂载护盾组件（初始为未激活）
func NewBoss(em *ecs.EntityManager, spec EnemySpec, name string) ecs.EntityID {
	spec.Type = types.EnemyBoss
	id := NewEnemy(em, spec)
	em.AddComponent(id, &components.BossComponent{State: components.BossEntering, Name: name})
	if spec.Variant == types.VariantTheta {
		em.AddComponent(id, &components.BossShieldComponent{Max: spec.HP * 0.08})
	}
	return id
}
