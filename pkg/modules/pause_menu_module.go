package modules

import (
	"image/color"
	"log"

	"github.com/decker502/voidline/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 暂停菜单布局
const (
	pauseMenuWidth      = 240
	pauseMenuItemHeight = 24
	pauseMenuPadding    = 20
)

var (
	pauseOverlayColor = color.RGBA{0, 0, 0, 160}
	pausePanelColor   = color.RGBA{10, 16, 32, 230}
	pauseBorderColor  = color.RGBA{0, 240, 255, 255}
)

type pauseMenuAction int

const (
	actionContinue pauseMenuAction = iota
	actionRestart
	actionQuit
)

type pauseMenuItem struct {
	label  string
	action pauseMenuAction
}

// PauseMenuModule 暂停菜单模块
// 封装暂停菜单的全部功能：
//   - 暂停状态的控制（通过 Clock 暂停/恢复逻辑帧）
//   - 键盘选择与确认
//   - 遮罩和面板渲染
//
// 暂停期间战斗核心不执行任何逻辑帧，菜单只读取快照。
type PauseMenuModule struct {
	clock *game.Clock

	items    []pauseMenuItem
	selected int

	// justPressed 按键检测，默认使用 inpututil，测试中替换
	justPressed func(ebiten.Key) bool

	onContinue func()
	onRestart  func()
	onQuit     func()

	windowWidth  int
	windowHeight int
}

// PauseMenuCallbacks 暂停菜单回调函数集合
type PauseMenuCallbacks struct {
	OnContinue func() // "继续"
	OnRestart  func() // "重新开始"
	OnQuit     func() // "结束本局"
}

// NewPauseMenuModule 创建一个新的暂停菜单模块
//
// 参数:
//   - clock: 战斗时钟，菜单通过它暂停逻辑帧
//   - windowWidth, windowHeight: 窗口逻辑尺寸
//   - callbacks: 菜单回调
func NewPauseMenuModule(clock *game.Clock, windowWidth, windowHeight int, callbacks PauseMenuCallbacks) *PauseMenuModule {
	return &PauseMenuModule{
		clock: clock,
		items: []pauseMenuItem{
			{label: "CONTINUE", action: actionContinue},
			{label: "RESTART", action: actionRestart},
			{label: "ABORT RUN", action: actionQuit},
		},
		justPressed:  inpututil.IsKeyJustPressed,
		onContinue:   callbacks.OnContinue,
		onRestart:    callbacks.OnRestart,
		onQuit:       callbacks.OnQuit,
		windowWidth:  windowWidth,
		windowHeight: windowHeight,
	}
}

// SetKeySource 替换按键检测函数
func (m *PauseMenuModule) SetKeySource(fn func(ebiten.Key) bool) {
	if fn != nil {
		m.justPressed = fn
	}
}

// Show 显示暂停菜单并暂停时钟
func (m *PauseMenuModule) Show() {
	m.selected = 0
	m.clock.SetPaused(true)
	log.Printf("[PauseMenuModule] Paused")
}

// Hide 隐藏暂停菜单并恢复时钟
func (m *PauseMenuModule) Hide() {
	m.clock.SetPaused(false)
	log.Printf("[PauseMenuModule] Resumed")
}

// IsActive 返回暂停菜单是否显示中
func (m *PauseMenuModule) IsActive() bool {
	return m.clock.Paused()
}

// Selected 返回当前高亮的菜单项
func (m *PauseMenuModule) Selected() int {
	return m.selected
}

// Update 处理菜单按键
// 菜单未激活时不做任何事；Esc/P 直接继续
func (m *PauseMenuModule) Update() {
	if !m.IsActive() {
		return
	}

	switch {
	case m.justPressed(ebiten.KeyEscape) || m.justPressed(ebiten.KeyP):
		m.activate(actionContinue)
	case m.justPressed(ebiten.KeyArrowUp) || m.justPressed(ebiten.KeyW):
		m.selected = (m.selected + len(m.items) - 1) % len(m.items)
	case m.justPressed(ebiten.KeyArrowDown) || m.justPressed(ebiten.KeyS):
		m.selected = (m.selected + 1) % len(m.items)
	case m.justPressed(ebiten.KeyEnter) || m.justPressed(ebiten.KeySpace):
		m.activate(m.items[m.selected].action)
	}
}

func (m *PauseMenuModule) activate(action pauseMenuAction) {
	m.Hide()
	switch action {
	case actionContinue:
		if m.onContinue != nil {
			m.onContinue()
		}
	case actionRestart:
		log.Printf("[PauseMenuModule] Restart selected")
		if m.onRestart != nil {
			m.onRestart()
		}
	case actionQuit:
		log.Printf("[PauseMenuModule] Abort selected")
		if m.onQuit != nil {
			m.onQuit()
		}
	}
}

// Draw 绘制遮罩、面板和菜单项
func (m *PauseMenuModule) Draw(screen *ebiten.Image) {
	if !m.IsActive() {
		return
	}

	vector.DrawFilledRect(screen, 0, 0, float32(m.windowWidth), float32(m.windowHeight), pauseOverlayColor, false)

	height := pauseMenuPadding*2 + pauseMenuItemHeight*(len(m.items)+1)
	x := (m.windowWidth - pauseMenuWidth) / 2
	y := (m.windowHeight - height) / 2
	vector.DrawFilledRect(screen, float32(x), float32(y), pauseMenuWidth, float32(height), pausePanelColor, false)
	vector.StrokeRect(screen, float32(x), float32(y), pauseMenuWidth, float32(height), 2, pauseBorderColor, false)

	ebitenutil.DebugPrintAt(screen, "// SYSTEM PAUSED", x+pauseMenuPadding, y+pauseMenuPadding)
	for i, item := range m.items {
		label := "  " + item.label
		if i == m.selected {
			label = "> " + item.label
		}
		ebitenutil.DebugPrintAt(screen, label, x+pauseMenuPadding, y+pauseMenuPadding+pauseMenuItemHeight*(i+1))
	}
}
