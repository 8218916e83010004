package components

// PositionComponent 实体在战场中的世界坐标（实体中心点，像素）
type PositionComponent struct {
	X float64
	Y float64
}

// VelocityComponent 实体每帧的位移速度（像素/帧）
type VelocityComponent struct {
	VX float64
	VY float64
}
