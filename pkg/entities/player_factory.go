package entities

import (
	"fmt"

	"github.com/decker502/voidline/pkg/components"
	"github.com/decker502/voidline/pkg/config"
	"github.com/decker502/voidline/pkg/ecs"
	"github.com/decker502/voidline/pkg/game"
	"github.com/decker502/voidline/pkg/types"
)

// NewPlayer 根据出击配置创建玩家机体
//
// 参数:
//   - em: 实体管理器
//   - cfg: 玩家参数（起始位置、尺寸、基础血量）
//   - loadout: 已通过 Validate 的出击配置
//   - mods: 外部倍率（血量倍率、复活次数）
//
// 返回:
//   - ecs.EntityID: 玩家实体ID
//   - error: 如果参数为空返回错误
func NewPlayer(em *ecs.EntityManager, cfg config.PlayerConfig, loadout game.Loadout, mods game.Modifiers) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	maxHP := cfg.BaseHP * mods.HPMultiplier

	weaponLevels := make(map[types.WeaponID]int, len(loadout.WeaponLevels))
	for k, v := range loadout.WeaponLevels {
		weaponLevels[k] = v
	}
	spellLevels := make(map[types.SpellID]int, len(loadout.SpellLevels))
	for k, v := range loadout.SpellLevels {
		spellLevels[k] = v
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: cfg.StartX, Y: cfg.StartY})
	em.AddComponent(id, &components.VelocityComponent{})
	em.AddComponent(id, &components.CollisionComponent{Width: cfg.Size, Height: cfg.Size})
	em.AddComponent(id, &components.ShapeComponent{Color: ColorPlayer})
	em.AddComponent(id, &components.PlayerComponent{
		HP:             maxHP,
		MaxHP:          maxHP,
		Weapons:        append([]types.WeaponID(nil), loadout.Weapons...),
		Spells:         append([]types.SpellID(nil), loadout.Spells...),
		WeaponLevels:   weaponLevels,
		SpellLevels:    spellLevels,
		SpellCooldowns: make([]int, len(loadout.Spells)),
		Revives:        mods.StartingRevives(),
		Buffs:          make(map[types.SpellID]int),
	})
	return id, nil
}
