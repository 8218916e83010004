// Package utils 提供通用数学工具函数
package utils

import "math"

// Distance 返回两点间距离
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// DistanceSq 返回两点间距离的平方（比较远近时避免开方）
func DistanceSq(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// Normalize 返回 (dx, dy) 的单位向量与原长度
// 长度为 0 时返回 (0, 0, 0)，调用方据此跳过方向相关的计算
func Normalize(dx, dy float64) (float64, float64, float64) {
	length := math.Hypot(dx, dy)
	if length == 0 {
		return 0, 0, 0
	}
	return dx / length, dy / length, length
}

// AimAngle 返回从 (fromX, fromY) 指向 (toX, toY) 的角度（弧度）
func AimAngle(fromX, fromY, toX, toY float64) float64 {
	return math.Atan2(toY-fromY, toX-fromX)
}

// Polar 返回指定角度和速度的速度分量
func Polar(angle, speed float64) (float64, float64) {
	return math.Cos(angle) * speed, math.Sin(angle) * speed
}

// Clamp 将 v 限制在 [lo, hi] 内
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// CapSpeed 把速度向量的模长限制在 max 内
func CapSpeed(vx, vy, max float64) (float64, float64) {
	v := math.Hypot(vx, vy)
	if v > max && v > 0 {
		return vx / v * max, vy / v * max
	}
	return vx, vy
}
