package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/voidline/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// RunFactory 根据开局参数创建战斗场景
type RunFactory func(setup game.RunSetup) (Scene, error)

// SceneManager 管理当前场景和场景切换
type SceneManager struct {
	currentScene Scene
	runFactory   RunFactory
}

// NewSceneManager 创建场景管理器
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetRunFactory 设置开局用的场景工厂
func (sm *SceneManager) SetRunFactory(factory RunFactory) {
	sm.runFactory = factory
}

// SwitchTo 切换到新场景
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
	log.Printf("[SceneManager] Switched to %T", scene)
}

// GetCurrentScene 返回当前场景
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// StartRun 通过工厂创建一局新战斗并切换过去
//
// 参数:
//   - setup: 开局参数
//
// 返回:
//   - error: 未设置工厂或创建失败时返回错误，当前场景保持不变
func (sm *SceneManager) StartRun(setup game.RunSetup) error {
	if sm.runFactory == nil {
		return fmt.Errorf("failed to start run: no run factory set")
	}
	scene, err := sm.runFactory(setup)
	if err != nil {
		return fmt.Errorf("failed to start run: %w", err)
	}
	sm.SwitchTo(scene)
	return nil
}

// Update 更新当前场景
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw 绘制当前场景
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
