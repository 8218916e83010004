package components

import (
	"github.com/decker502/voidline/pkg/ecs"
	"github.com/decker502/voidline/pkg/types"
)

// EnemyComponent 敌人的类型与行为计时器
type EnemyComponent struct {
	Type    types.EnemyType
	Variant types.BossVariant // 首领变体；神谕仆从用 alpha/beta 区分环绕/巡逻

	ScoreValue   int
	PatternTimer int
	ShotTimer    float64 // 初始值为随机小数，保持浮点
	FrozenTimer  int
}

// BossState 首领生命周期状态
type BossState int

const (
	BossEntering BossState = iota // 入场：缓动到锚点，不攻击
	BossFighting                  // 战斗
)

// BossComponent 标记首领实体
type BossComponent struct {
	State BossState
	Name  string
}

// SatelliteComponent 绕父实体运动的卫星（炽天使护卫、神谕仆从）
//
// ParentID 是弱引用，每帧通过 EntityManager 查询解析。
type SatelliteComponent struct {
	ParentID    ecs.EntityID
	OrbitAngle  float64
	OrbitRadius float64
	OrbitSpeed  float64
}

// BossShieldComponent theta 首领的周期护盾
type BossShieldComponent struct {
	HP     float64
	Max    float64
	Active bool
	Timer  int
}
