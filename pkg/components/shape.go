package components

import "image/color"

// ShapeComponent 描述实体的渲染外观（纯几何图形，无贴图）
type ShapeComponent struct {
	Color color.RGBA
	// Round 为 true 时绘制圆形，否则绘制矩形
	Round bool
}
