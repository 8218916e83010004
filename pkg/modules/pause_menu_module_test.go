package modules

import (
	"testing"
	"time"

	"github.com/decker502/voidline/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// fakeKeys 记录本帧"刚按下"的按键
type fakeKeys map[ebiten.Key]bool

func (k fakeKeys) justPressed(key ebiten.Key) bool {
	return k[key]
}

func newTestMenu(callbacks PauseMenuCallbacks) (*PauseMenuModule, *game.Clock, fakeKeys) {
	clock := game.NewClock(90, 100*time.Millisecond)
	m := NewPauseMenuModule(clock, 600, 800, callbacks)
	keys := fakeKeys{}
	m.SetKeySource(keys.justPressed)
	return m, clock, keys
}

func press(m *PauseMenuModule, keys fakeKeys, key ebiten.Key) {
	keys[key] = true
	m.Update()
	delete(keys, key)
}

func TestPauseMenuShowHide(t *testing.T) {
	m, clock, _ := newTestMenu(PauseMenuCallbacks{})

	if m.IsActive() {
		t.Error("Menu should start hidden")
	}
	m.Show()
	if !m.IsActive() || !clock.Paused() {
		t.Error("Show should pause the clock")
	}
	if clock.Advance(50*time.Millisecond) != 0 {
		t.Error("Paused clock should not produce steps")
	}
	m.Hide()
	if m.IsActive() || clock.Paused() {
		t.Error("Hide should resume the clock")
	}
}

func TestPauseMenuNavigation(t *testing.T) {
	tests := []struct {
		name     string
		keys     []ebiten.Key
		selected int
	}{
		{"down once", []ebiten.Key{ebiten.KeyArrowDown}, 1},
		{"wraps up", []ebiten.Key{ebiten.KeyArrowUp}, 2},
		{"wraps down", []ebiten.Key{ebiten.KeyS, ebiten.KeyS, ebiten.KeyS}, 0},
		{"down then up", []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyW}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _, keys := newTestMenu(PauseMenuCallbacks{})
			m.Show()
			for _, k := range tt.keys {
				press(m, keys, k)
			}
			if m.Selected() != tt.selected {
				t.Errorf("Expected selection %d, got %d", tt.selected, m.Selected())
			}
		})
	}
}

func TestPauseMenuActions(t *testing.T) {
	var continued, restarted, quit int
	callbacks := PauseMenuCallbacks{
		OnContinue: func() { continued++ },
		OnRestart:  func() { restarted++ },
		OnQuit:     func() { quit++ },
	}

	m, clock, keys := newTestMenu(callbacks)
	m.Show()
	press(m, keys, ebiten.KeyEscape)
	if continued != 1 || clock.Paused() {
		t.Errorf("Escape should continue, continued=%d paused=%v", continued, clock.Paused())
	}

	m.Show()
	press(m, keys, ebiten.KeyArrowDown)
	press(m, keys, ebiten.KeyEnter)
	if restarted != 1 {
		t.Errorf("Expected restart callback, got %d", restarted)
	}

	m.Show()
	press(m, keys, ebiten.KeyArrowUp)
	press(m, keys, ebiten.KeySpace)
	if quit != 1 {
		t.Errorf("Expected quit callback, got %d", quit)
	}
}

func TestPauseMenuIgnoresKeysWhenHidden(t *testing.T) {
	called := false
	m, _, keys := newTestMenu(PauseMenuCallbacks{OnContinue: func() { called = true }})
	press(m, keys, ebiten.KeyEscape)
	press(m, keys, ebiten.KeyArrowDown)
	if called || m.Selected() != 0 {
		t.Error("Hidden menu should ignore input")
	}
}
