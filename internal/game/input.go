package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Garsondee/Terminal-Infiltration/internal/mission"
)

// actionKeys maps the number row to actions in button order.
var actionKeys = [mission.ActionCount]ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}

// handleInput processes edge-triggered keys and clicks.
func (g *Game) handleInput() {
	mx, my := ebiten.CursorPosition()
	g.mouseX, g.mouseY = float64(mx), float64(my)
	click := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	confirmKey := inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)

	switch g.session.State() {
	case mission.StatePlaying:
		for i, k := range actionKeys {
			if inpututil.IsKeyJustPressed(k) {
				g.trigger(mission.TriggerFor(mission.Action(i)))
			}
		}
		if click {
			g.clickAction(g.mouseX, g.mouseY)
		}
	default:
		if confirmKey || (click && g.confirmButton.Contains(g.mouseX, g.mouseY)) {
			g.confirm()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyC) {
			g.copyDebrief()
		}
	}
}

// clickAction fires the action whose button is under the cursor.
func (g *Game) clickAction(x, y float64) bool {
	for i, b := range g.actionButtons {
		if b.Contains(x, y) {
			return g.trigger(mission.TriggerFor(mission.Action(i)))
		}
	}
	return false
}
