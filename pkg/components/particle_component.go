package components

// ParticleComponent 纯装饰粒子，不参与任何游戏逻辑
type ParticleComponent struct {
	Life    int
	MaxLife int
	Alpha   float64
	Size    float64
}
