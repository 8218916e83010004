package entities

import (
	"image/color"

	"github.com/decker502/voidline/pkg/components"
	"github.com/decker502/voidline/pkg/ecs"
	"github.com/decker502/voidline/pkg/types"
)

// BulletSpec 玩家子弹参数
type BulletSpec struct {
	X, Y          float64
	VX, VY        float64
	Width, Height float64
	Damage        float64
	Weapon        types.WeaponID
	Level         int
	Color         color.RGBA

	Piercing    bool
	Splash      float64
	Cluster     bool
	ChainCount  int
	ChainRange  float64
	PierceCount int
	PulseRate   int
}

// NewPlayerBullet 创建玩家子弹
// 特殊运动（波形、环绕、引力场）由调用方追加对应组件
func NewPlayerBullet(em *ecs.EntityManager, spec BulletSpec) ecs.EntityID {
	id := newBulletEntity(em, spec.X, spec.Y, spec.VX, spec.VY, spec.Width, spec.Height, spec.Color)
	em.AddComponent(id, &components.BulletComponent{
		Owner:       components.OwnerPlayer,
		Damage:      spec.Damage,
		Weapon:      spec.Weapon,
		Level:       spec.Level,
		Piercing:    spec.Piercing,
		Splash:      spec.Splash,
		Cluster:     spec.Cluster,
		ChainCount:  spec.ChainCount,
		ChainRange:  spec.ChainRange,
		PierceCount: spec.PierceCount,
		PulseRate:   spec.PulseRate,
	})
	return id
}

// NewEnemyBullet 创建敌方子弹（正方形，size 为半宽）
func NewEnemyBullet(em *ecs.EntityManager, x, y, vx, vy, size, damage float64, c color.RGBA) ecs.EntityID {
	return NewEnemyBulletRect(em, x, y, vx, vy, size, size, damage, c)
}

// NewEnemyBulletRect 创建长方形敌方子弹（如光束、雨弹）
func NewEnemyBulletRect(em *ecs.EntityManager, x, y, vx, vy, width, height, damage float64, c color.RGBA) ecs.EntityID {
	id := newBulletEntity(em, x, y, vx, vy, width, height, c)
	em.AddComponent(id, &components.BulletComponent{
		Owner:  components.OwnerEnemy,
		Damage: damage,
		Weapon: types.WeaponNone,
	})
	return id
}

// NewFirework 创建出界时炸裂的敌方焰火弹
func NewFirework(em *ecs.EntityManager, x, y, vx, vy, size, damage float64, c color.RGBA) ecs.EntityID {
	id := NewEnemyBullet(em, x, y, vx, vy, size, damage, c)
	if b, ok := ecs.GetComponent[*components.BulletComponent](em, id); ok {
		b.Firework = true
	}
	return id
}

func newBulletEntity(em *ecs.EntityManager, x, y, vx, vy, w, h float64, c color.RGBA) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.VelocityComponent{VX: vx, VY: vy})
	em.AddComponent(id, &components.CollisionComponent{Width: w, Height: h})
	em.AddComponent(id, &components.ShapeComponent{Color: c, Round: true})
	return id
}
