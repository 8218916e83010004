package components

import (
	"github.com/decker502/voidline/pkg/ecs"
	"github.com/decker502/voidline/pkg/types"
)

// BulletOwner 子弹归属
type BulletOwner int

const (
	OwnerPlayer BulletOwner = iota
	OwnerEnemy
)

// BulletComponent 子弹的通用属性
type BulletComponent struct {
	Owner  BulletOwner
	Damage float64
	Timer  int // 存活帧数

	Weapon types.WeaponID // 敌方子弹为 WeaponNone
	Level  int            // 发射时的武器等级

	Piercing bool
	HitList  map[ecs.EntityID]struct{} // 已命中的敌人，每个目标至多命中一次

	HomingTarget ecs.EntityID // 弱引用，0 表示未锁定

	Splash  float64 // 溅射半径，0 表示无溅射
	Cluster bool    // 溅射后追加子爆炸

	ChainCount int     // 连锁剩余跳数
	ChainRange float64 // 连锁范围倍率

	PierceCount int // 高斯炮剩余穿透次数，0 表示不限（仅对 Piercing 有意义）

	PulseRate int // 脉冲新星的脉冲间隔

	Firework bool // 出界时炸裂成碎片
}

// HasHit 返回子弹是否已经命中过该敌人
func (b *BulletComponent) HasHit(id ecs.EntityID) bool {
	_, ok := b.HitList[id]
	return ok
}

// RecordHit 记录命中
func (b *BulletComponent) RecordHit(id ecs.EntityID) {
	if b.HitList == nil {
		b.HitList = make(map[ecs.EntityID]struct{})
	}
	b.HitList[id] = struct{}{}
}

// WaveComponent 正弦波弹：x 由初始 x 与存活帧数决定
type WaveComponent struct {
	InitialX float64
	Phase    float64
}

// OrbComponent 环绕玩家的卫星弹
type OrbComponent struct {
	Angle    float64
	Radius   float64
	Speed    float64
	Cooldown int // 拦截敌弹后的冷却帧数
}

// VortexComponent 引力场弹
type VortexComponent struct {
	Strength     float64
	Dot          bool // 范围内持续伤害
	Settled      bool
	SettledTimer int
}
