package components

// CollisionComponent 定义实体的碰撞尺寸
//
// Width/Height 为半宽/半高。碰撞检测使用圆形近似，Width 同时作为碰撞半径。
type CollisionComponent struct {
	Width  float64
	Height float64
}
