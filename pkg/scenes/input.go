package scenes

import (
	"github.com/decker502/voidline/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// SampleInput 读取当前键盘状态
// 每个渲染帧调用一次，本帧内的所有逻辑帧共用同一份输入
func SampleInput() game.InputState {
	return sampleInput(ebiten.IsKeyPressed)
}

func sampleInput(pressed func(ebiten.Key) bool) game.InputState {
	held := func(keys ...ebiten.Key) bool {
		for _, k := range keys {
			if pressed(k) {
				return true
			}
		}
		return false
	}

	return game.InputState{
		Up:    held(ebiten.KeyArrowUp, ebiten.KeyW),
		Down:  held(ebiten.KeyArrowDown, ebiten.KeyS),
		Left:  held(ebiten.KeyArrowLeft, ebiten.KeyA),
		Right: held(ebiten.KeyArrowRight, ebiten.KeyD),
		Fire:  held(ebiten.KeyZ, ebiten.KeySpace),
		Focus: held(ebiten.KeyShiftLeft, ebiten.KeyShiftRight),
		Spell: [3]bool{
			held(ebiten.KeyX, ebiten.Key1),
			held(ebiten.KeyC, ebiten.Key2),
			held(ebiten.KeyV, ebiten.Key3),
		},
	}
}
