// Package scenes 表现层场景：把战斗核心接到 Ebitengine 的更新/绘制循环上。
//
// 战斗核心（battle 包及其依赖）不引用 ebiten；本包负责采样输入、驱动时钟、
// 读取快照并渲染。
package scenes

import "github.com/hajimehoshi/ebiten/v2"

// Scene 场景接口
type Scene interface {
	// Update 更新场景逻辑，deltaTime 为距上一帧的秒数
	Update(deltaTime float64)
	// Draw 绘制场景
	Draw(screen *ebiten.Image)
}
