package scenes

import (
	"fmt"
	"image/color"

	"github.com/decker502/voidline/pkg/components"
	"github.com/decker502/voidline/pkg/ecs"
	"github.com/decker502/voidline/pkg/entities"
	"github.com/decker502/voidline/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	battleBackground = color.RGBA{5, 5, 16, 255}
	hudBarBack       = color.RGBA{40, 40, 60, 255}
	hudHPColor       = color.RGBA{0, 240, 255, 255}
	hudShieldColor   = color.RGBA{120, 160, 255, 255}
	hudBossColor     = color.RGBA{255, 0, 85, 255}
	hitFlashColor    = color.RGBA{255, 0, 0, 60}
)

// Draw 绘制战场、实体和 HUD
func (s *BattleScene) Draw(screen *ebiten.Image) {
	screen.Fill(battleBackground)

	snap := s.sim.Snapshot()
	s.drawEntities(screen, snap)
	s.drawHUD(screen, snap)

	if s.hitFlash > 0 {
		vector.DrawFilledRect(screen, 0, 0, float32(s.width), float32(s.height), hitFlashColor, false)
	}
	s.pauseMenu.Draw(screen)
}

// drawEntities 按实体创建顺序绘制所有带形状的实体
// 位置是中心点，碰撞宽高是半径
func (s *BattleScene) drawEntities(screen *ebiten.Image, snap game.HUDSnapshot) {
	em := s.sim.EntityManager()
	for _, id := range ecs.GetEntitiesWith2[*components.PositionComponent, *components.ShapeComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		shape, _ := ecs.GetComponent[*components.ShapeComponent](em, id)

		if player, ok := ecs.GetComponent[*components.PlayerComponent](em, id); ok {
			// 无敌期间闪烁
			if player.InvulnerableFrames > 0 && (snap.Frame/4)%2 == 0 {
				continue
			}
		}

		x, y := float32(pos.X), float32(pos.Y)
		clr := shape.Color

		if particle, ok := ecs.GetComponent[*components.ParticleComponent](em, id); ok {
			clr.A = uint8(float64(clr.A) * particle.Alpha)
			r := float32(particle.Size)
			vector.DrawFilledRect(screen, x-r/2, y-r/2, r, r, clr, false)
			continue
		}

		w, h := float32(2), float32(2)
		if col, ok := ecs.GetComponent[*components.CollisionComponent](em, id); ok {
			w, h = float32(col.Width), float32(col.Height)
		}
		if shape.Round {
			vector.DrawFilledCircle(screen, x, y, w, clr, false)
		} else {
			vector.DrawFilledRect(screen, x-w, y-h, w*2, h*2, clr, false)
		}

		if shield, ok := ecs.GetComponent[*components.BossShieldComponent](em, id); ok && shield.Active {
			vector.StrokeCircle(screen, x, y, w+20, 3, entities.ColorShieldSpark, false)
		}
	}
}

// drawHUD 绘制生命、护盾、首领血条和文字信息
func (s *BattleScene) drawHUD(screen *ebiten.Image, snap game.HUDSnapshot) {
	const barWidth = 200

	drawBar(screen, 10, float32(s.height-24), barWidth, 8, snap.HP, snap.MaxHP, hudHPColor)
	if snap.Shield > 0 {
		drawBar(screen, 10, float32(s.height-34), barWidth, 4, snap.Shield, snap.MaxHP, hudShieldColor)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("HP %.0f/%.0f  REVIVE %d", snap.HP, snap.MaxHP, snap.Revives), 10, s.height-52)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE %d", snap.Score), 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("STAGE %d  GRAZE %d", snap.Stage, snap.Grazing), 10, 26)

	for i, cd := range snap.SpellCooldowns {
		if i >= len(spellKeys) {
			break
		}
		label := "READY"
		if !snap.SpellsReady[i] {
			label = fmt.Sprintf("%ds", (cd+59)/60)
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("[%s] %s", spellKeys[i], label), s.width-110, s.height-52+i*14)
	}

	if snap.BossName != "" && snap.BossMaxHP > 0 {
		ebitenutil.DebugPrintAt(screen, snap.BossName, s.width/2-100, 44)
		drawBar(screen, float32(s.width/2-150), 62, 300, 6, snap.BossHP, snap.BossMaxHP, hudBossColor)
	}
	if snap.Dialogue != "" {
		ebitenutil.DebugPrintAt(screen, snap.Dialogue, 40, s.height/2-80)
	}
	if s.bossWarning > 0 && (s.bossWarning/10)%2 == 0 {
		ebitenutil.DebugPrintAt(screen, "!! WARNING: HIGH ENERGY SIGNATURE !!", s.width/2-110, s.height/3)
	}
}

var spellKeys = [3]string{"X", "C", "V"}

// drawBar 绘制一个按比例填充的进度条
func drawBar(screen *ebiten.Image, x, y, w, h float32, value, maxValue float64, clr color.Color) {
	vector.DrawFilledRect(screen, x, y, w, h, hudBarBack, false)
	if maxValue <= 0 {
		return
	}
	ratio := value / maxValue
	if ratio > 1 {
		ratio = 1
	}
	if ratio > 0 {
		vector.DrawFilledRect(screen, x, y, w*float32(ratio), h, clr, false)
	}
}
