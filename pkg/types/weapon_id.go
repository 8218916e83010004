// Package types 定义共享的基础类型
package types

import "fmt"

// WeaponID 定义主武器类型
type WeaponID int

const (
	WeaponNone           WeaponID = iota // 无武器（敌方子弹）
	WeaponPlasmaCutter                   // 等离子切割器，直线弹
	WeaponSpreadShotgun                  // 散射霰弹
	WeaponHomingNeedles                  // 追踪针
	WeaponLaserStream                    // 激光流，穿透
	WeaponWaveMotion                     // 正弦波弹
	WeaponRocketBarrage                  // 火箭弹幕，溅射
	WeaponChainLightning                 // 连锁闪电
	WeaponBackTurret                     // 后置炮台
	WeaponVortexDriver                   // 漩涡驱动器，引力场
	WeaponOrbitingOrbs                   // 环绕球
	WeaponGaussCannon                    // 高斯炮
	WeaponPulseNova                      // 脉冲新星
	WeaponPhaseBlades                    // 相位刃
)

var weaponNames = map[WeaponID]string{
	WeaponPlasmaCutter:   "PLASMA_CUTTER",
	WeaponSpreadShotgun:  "SPREAD_SHOTGUN",
	WeaponHomingNeedles:  "HOMING_NEEDLES",
	WeaponLaserStream:    "LASER_STREAM",
	WeaponWaveMotion:     "WAVE_MOTION",
	WeaponRocketBarrage:  "ROCKET_BARRAGE",
	WeaponChainLightning: "CHAIN_LIGHTNING",
	WeaponBackTurret:     "BACK_TURRET",
	WeaponVortexDriver:   "VORTEX_DRIVER",
	WeaponOrbitingOrbs:   "ORBITING_ORBS",
	WeaponGaussCannon:    "GAUSS_CANNON",
	WeaponPulseNova:      "PULSE_NOVA",
	WeaponPhaseBlades:    "PHASE_BLADES",
}

// String 返回武器的配置名（如 "PLASMA_CUTTER"）
func (w WeaponID) String() string {
	if name, ok := weaponNames[w]; ok {
		return name
	}
	return fmt.Sprintf("WEAPON(%d)", int(w))
}

// ParseWeaponID 根据配置名解析武器类型
func ParseWeaponID(name string) (WeaponID, error) {
	for id, n := range weaponNames {
		if n == name {
			return id, nil
		}
	}
	return 0, fmt.Errorf("unknown weapon %q", name)
}

// AllWeapons 按定义顺序返回所有武器
func AllWeapons() []WeaponID {
	out := make([]WeaponID, 0, len(weaponNames))
	for w := WeaponPlasmaCutter; w <= WeaponPhaseBlades; w++ {
		out = append(out, w)
	}
	return out
}
