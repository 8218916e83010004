package types

import "fmt"

// BoosterID 定义单局增益道具
type BoosterID int

const (
	BoosterExtraLife       BoosterID = iota // 紧急重启：复活一次
	BoosterAttackUp                         // 武器过载：伤害 +25%
	BoosterRegenUp                          // 纳米注射：回血速度翻倍
	BoosterCDRUp                            // 快速处理器：冷却 -20%
	BoosterLootUp                           // 数据挖掘：碎片 x2
	BoosterExtraWeapon                      // 辅助挂载：武器槽 +1
	BoosterExtraSpell                       // 内存扩展：符卡槽 +1
	BoosterDamageReduction                  // 复合装甲：受到伤害 -34%
	BoosterOrbDeflector                     // 偏导线圈：任意等级的环绕球都能拦截子弹
)

var boosterNames = map[BoosterID]string{
	BoosterExtraLife:       "EXTRA_LIFE",
	BoosterAttackUp:        "ATTACK_UP",
	BoosterRegenUp:         "REGEN_UP",
	BoosterCDRUp:           "CDR_UP",
	BoosterLootUp:          "LOOT_UP",
	BoosterExtraWeapon:     "EXTRA_WEAPON",
	BoosterExtraSpell:      "EXTRA_SPELL",
	BoosterDamageReduction: "DMG_RED",
	BoosterOrbDeflector:    "ORB_DEFLECTOR",
}

func (b BoosterID) String() string {
	if name, ok := boosterNames[b]; ok {
		return name
	}
	return fmt.Sprintf("BOOSTER(%d)", int(b))
}

// ParseBoosterID 根据名称解析增益道具
func ParseBoosterID(name string) (BoosterID, error) {
	for id, n := range boosterNames {
		if n == name {
			return id, nil
		}
	}
	return 0, fmt.Errorf("unknown booster %q", name)
}
