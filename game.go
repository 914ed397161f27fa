package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"

	"github.com/milk9111/danmaku/ecs"
	"github.com/milk9111/danmaku/ecs/component"
	"github.com/milk9111/danmaku/sim"
)

const (
	hudWidth     = 160
	screenWidth  = 384 + hudWidth
	screenHeight = 448
)

// Game adapts the simulation to ebiten's loop. Rendering is debug shapes:
// colored circles per collision layer plus the HUD panel. Sprites are a
// frontend concern the simulation only carries keys for.
type Game struct {
	sim   *sim.Sim
	input *Input
	log   logrus.FieldLogger
}

func NewGame(s *sim.Sim, log logrus.FieldLogger) *Game {
	return &Game{
		sim:   s,
		input: NewInput(),
		log:   log,
	}
}

func (g *Game) Update() error {
	g.sim.Advance(g.input.Poll())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.sim.Snapshot()
	for _, view := range snap.Entities {
		r := float32(view.Radius)
		if r < 2 {
			r = 2
		}
		vector.DrawFilledCircle(screen, float32(view.X), float32(view.Y), r, layerColor(view.Layer), true)
	}

	g.drawHUD(screen, snap.HUD)
}

func (g *Game) drawHUD(screen *ebiten.Image, hud sim.HUD) {
	vector.DrawFilledRect(screen, 384, 0, hudWidth, screenHeight, color.RGBA{24, 24, 32, 255}, false)

	text := fmt.Sprintf(
		"Score %d\nLives %d\nBombs %d\nPower %d\nGraze %d\nMeter %.0f/%.0f",
		hud.Score, hud.Lives, hud.Bombs, hud.Power, hud.Graze, hud.Energy, hud.MaxEnergy,
	)
	if hud.Enhanced {
		text += "\nENHANCED"
	}
	if hud.GameOver {
		text += "\n\nGAME OVER"
	}
	ebitenutil.DebugPrintAt(screen, text, 392, 8)

	if boss := hud.Boss; boss != nil {
		barW := float32(376 * boss.HPFraction)
		vector.DrawFilledRect(screen, 4, 4, 376, 6, color.RGBA{60, 20, 20, 255}, false)
		if !boss.Survival {
			vector.DrawFilledRect(screen, 4, 4, barW, 6, color.RGBA{220, 60, 60, 255}, false)
		}
		label := fmt.Sprintf("%s  %s  (%d/%d)  %ds",
			boss.Name, boss.PhaseName, boss.PhaseIndex+1, boss.PhaseCount, boss.TimeLeft/ecs.TicksPerSecond)
		ebitenutil.DebugPrintAt(screen, label, 8, 12)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func layerColor(layer component.Layer) color.Color {
	switch layer {
	case component.LayerPlayer:
		return color.RGBA{255, 255, 255, 255}
	case component.LayerPlayerBullet:
		return color.RGBA{120, 180, 255, 200}
	case component.LayerEnemy:
		return color.RGBA{220, 80, 80, 255}
	case component.LayerEnemyBullet:
		return color.RGBA{255, 200, 80, 255}
	case component.LayerItem:
		return color.RGBA{120, 255, 140, 255}
	case component.LayerBombField:
		return color.RGBA{180, 120, 255, 70}
	}
	return color.White
}
