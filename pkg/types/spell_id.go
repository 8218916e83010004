package types

import "fmt"

// SpellID 定义符卡（主动技能）类型
type SpellID int

const (
	SpellTimeDilator   SpellID = iota // 时间膨胀：敌方子弹与杂兵减速
	SpellEMPBlast                     // EMP：清除敌方子弹
	SpellOverclock                    // 超频：移速与射速翻倍
	SpellPhantomDash                  // 幻影冲刺：无敌帧
	SpellOrbitalStrike                // 轨道打击：全屏伤害
	SpellNanoRepair                   // 纳米修复：治疗
	SpellAegisShield                  // 神盾：护盾值
	SpellStasisField                  // 静滞场：冻结敌人
)

var spellNames = map[SpellID]string{
	SpellTimeDilator:   "TIME_DILATOR",
	SpellEMPBlast:      "EMP_BLAST",
	SpellOverclock:     "OVERCLOCK",
	SpellPhantomDash:   "PHANTOM_DASH",
	SpellOrbitalStrike: "ORBITAL_STRIKE",
	SpellNanoRepair:    "NANO_REPAIR",
	SpellAegisShield:   "AEGIS_SHIELD",
	SpellStasisField:   "STASIS_FIELD",
}

func (s SpellID) String() string {
	if name, ok := spellNames[s]; ok {
		return name
	}
	return fmt.Sprintf("SPELL(%d)", int(s))
}

// ParseSpellID 根据配置名解析符卡类型
func ParseSpellID(name string) (SpellID, error) {
	for id, n := range spellNames {
		if n == name {
			return id, nil
		}
	}
	return 0, fmt.Errorf("unknown spell %q", name)
}
