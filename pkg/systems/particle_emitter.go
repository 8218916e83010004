package systems

import (
	"image/color"
	"math/rand"

	"github.com/decker502/voidline/pkg/ecs"
	"github.com/decker502/voidline/pkg/entities"
)

// ParticleEmitter 生成装饰粒子
//
// 使用独立的随机数源，关闭粒子不会改变战斗逻辑的随机序列。
type ParticleEmitter struct {
	entityManager *ecs.EntityManager
	rng           *rand.Rand
	enabled       bool
}

// NewParticleEmitter 创建粒子发射器
// enabled 为 false 时 Burst 不产生任何实体
func NewParticleEmitter(em *ecs.EntityManager, rng *rand.Rand, enabled bool) *ParticleEmitter {
	return &ParticleEmitter{
		entityManager: em,
		rng:           rng,
		enabled:       enabled,
	}
}

// Burst 在 (x, y) 处向随机方向喷射 count 个粒子
// 每个方向的速度分量在 [-spread/2, spread/2) 内
func (e *ParticleEmitter) Burst(x, y float64, count int, size, spread float64, life int, c color.RGBA) {
	if e == nil || !e.enabled {
		return
	}
	for i := 0; i < count; i++ {
		vx := (e.rng.Float64() - 0.5) * spread
		vy := (e.rng.Float64() - 0.5) * spread
		entities.NewParticle(e.entityManager, x, y, vx, vy, size, life, c)
	}
}
