package game

// HUDSnapshot 每帧结束时发布给表现层的只读快照
//
// 所有字段都是值拷贝，渲染层可以在下一帧逻辑执行期间安全读取。
type HUDSnapshot struct {
	HP    float64 // 已限制在 [0, MaxHP]
	MaxHP float64
	Score int
	Stage int

	BossName  string
	BossHP    float64
	BossMaxHP float64
	Dialogue  string

	SpellsReady    []bool
	SpellCooldowns []int
	Shield         float64
	Revives        int
	Grazing        int
	Fragments      int
	Frame          int

	Paused   bool
	GameOver bool
	Victory  bool
}
