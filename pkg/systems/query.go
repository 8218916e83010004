package systems

import (
	"math"

	"github.com/decker502/voidline/pkg/components"
	"github.com/decker502/voidline/pkg/ecs"
	"github.com/decker502/voidline/pkg/utils"
)

// FindPlayer 返回玩家实体及其组件
// 场景中没有玩家时 ok 为 false
func FindPlayer(em *ecs.EntityManager) (id ecs.EntityID, player *components.PlayerComponent, pos *components.PositionComponent, ok bool) {
	ids := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](em)
	if len(ids) == 0 {
		return 0, nil, nil, false
	}
	id = ids[0]
	player, _ = ecs.GetComponent[*components.PlayerComponent](em, id)
	pos, _ = ecs.GetComponent[*components.PositionComponent](em, id)
	return id, player, pos, true
}

// Enemies 返回所有存活的敌人（含首领和卫星），按ID升序
func Enemies(em *ecs.EntityManager) []ecs.EntityID {
	return ecs.GetEntitiesWith3[*components.EnemyComponent, *components.PositionComponent, *components.HealthComponent](em)
}

// Bullets 返回所有存活的子弹（双方），按ID升序
func Bullets(em *ecs.EntityManager) []ecs.EntityID {
	return ecs.GetEntitiesWith3[*components.BulletComponent, *components.PositionComponent, *components.VelocityComponent](em)
}

// NearestEnemy 查找离 (x, y) 最近的存活敌人
//
// 参数:
//   - maxDist: 搜索半径（严格小于），<= 0 表示不限
//   - skip: 返回 true 的敌人不参与比较，可以为 nil
func NearestEnemy(em *ecs.EntityManager, x, y, maxDist float64, skip func(ecs.EntityID) bool) (ecs.EntityID, bool) {
	best := ecs.EntityID(0)
	bestDist := math.Inf(1)
	for _, id := range Enemies(em) {
		if skip != nil && skip(id) {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		d := utils.DistanceSq(x, y, pos.X, pos.Y)
		if maxDist > 0 && d >= maxDist*maxDist {
			continue
		}
		if d < bestDist {
			best = id
			bestDist = d
		}
	}
	return best, best != 0
}

// outOfField 判断坐标是否越过战场边界外的回收区（恰好在边界上不算越界）
func outOfField(x, y, width, height, margin float64) bool {
	return y < -margin || y > height+margin || x < -margin || x > width+margin
}
