package components

// HealthComponent 存储敌人的生命值
//
// Current 在伤害结算过程中可以暂时低于 0，死亡判定统一由伤害结算器完成。
type HealthComponent struct {
	Current float64
	Max     float64
}

// Clamped 返回限制在 [0, Max] 内的生命值，供外部读取
func (h *HealthComponent) Clamped() float64 {
	if h.Current < 0 {
		return 0
	}
	if h.Current > h.Max {
		return h.Max
	}
	return h.Current
}
