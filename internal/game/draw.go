package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Terminal-Infiltration/internal/hud"
	"github.com/Garsondee/Terminal-Infiltration/internal/mission"
)

const (
	titleSize = 36
	textSize  = 20
	smallSize = 16

	consoleX = 100
	consoleY = 520
	consoleW = 800
	consoleH = 165
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colBlack)
	snap := g.session.Snapshot()
	switch snap.State {
	case mission.StateMenu:
		g.drawMenu(screen)
	case mission.StatePlaying:
		g.drawPlaying(screen, snap)
	default:
		g.drawEnd(screen, snap)
	}
	if g.noticeLeft > 0 && g.notice != "" {
		g.fonts.DrawCentered(screen, g.notice, fontRegular, smallSize, screenWidth/2, screenHeight-20, colLightGray)
	}
}

func (g *Game) drawMenu(screen *ebiten.Image) {
	g.fonts.DrawCentered(screen, "Terminal Infiltration", fontBold, titleSize, screenWidth/2, 150, colGreen)
	cfg := g.session.Config()
	lines := []string{
		"Your agent is infiltrating a secure facility.",
		"Use the terminal to help them avoid detection.",
		fmt.Sprintf("Complete %d hacks before time runs out.", cfg.ObjectivesNeeded),
		"Don't let the detection reach 100%!",
	}
	for i, l := range lines {
		g.fonts.DrawCentered(screen, l, fontRegular, textSize, screenWidth/2, 250+float64(i)*40, colWhite)
	}
	g.confirmButton.Title = "START MISSION"
	g.confirmButton.Draw(screen, g.fonts, textSize, true, "")
	g.fonts.DrawCentered(screen, "Enter to start  |  1-4 trigger actions during the mission", fontRegular, smallSize, screenWidth/2, 640, colGray)
}

func (g *Game) drawPlaying(screen *ebiten.Image, snap mission.Snapshot) {
	g.fonts.DrawCentered(screen, "SECURITY TERMINAL", fontBold, titleSize, screenWidth/2, 40, colGreen)

	timeCol := colBlue
	if hud.TimeCritical(snap) {
		timeCol = hud.Blend(timeCol, colTimeWarn, hud.Pulse(g.uiTime))
	}
	g.drawBar(screen, 100, 90, 300, 30, "TIME", hud.TimeRatio(snap),
		fmt.Sprintf("%d/%.0f", int(snap.TimeRemaining), snap.MissionDuration), timeCol)

	detCol := colRed
	if hud.DetectionCritical(snap) {
		detCol = hud.Blend(detCol, colWhite, hud.Pulse(g.uiTime))
	}
	g.drawBar(screen, screenWidth-400, 90, 300, 30, "DETECTION", hud.DetectionRatio(snap),
		fmt.Sprintf("%d/%.0f", int(snap.Detection), snap.MaxDetection), detCol)

	g.fonts.DrawCentered(screen, fmt.Sprintf("Objectives: %d/%d", snap.Progress, snap.ObjectivesNeeded),
		fontRegular, textSize, screenWidth/2, 100, colGreen)
	g.fonts.DrawCentered(screen, fmt.Sprintf("hack chance %d%%", int(snap.HackChance*100)),
		fontRegular, smallSize-2, screenWidth/2, 122, colGray)

	for i, f := range snap.Feedback {
		g.fonts.DrawCentered(screen, f.Text, fontBold, textSize, screenWidth-200, 360+float64(i)*26, toneColor(f.Tone))
	}

	for i, gv := range snap.Guards {
		g.drawGuard(screen, gv, 100, 170+float64(i)*60, 800, 40, snap.ChokeMin, snap.ChokeMax)
	}

	g.drawSystem(screen, 100, 360, "CAMERAS", snap.CamerasOffline, snap.CameraOutage)
	g.drawSystem(screen, 350, 360, "LIGHTS", snap.LightsOffline, snap.LightsOutage)

	if ev := snap.Event; ev != nil {
		g.fonts.DrawCentered(screen, fmt.Sprintf("! %s", ev.Label), fontBold, smallSize, screenWidth/2, 405, colYellow)
	}

	for i, b := range g.actionButtons {
		cd := snap.Cooldowns[i]
		b.Draw(screen, g.fonts, smallSize, cd.Ready, hud.CooldownLabel(cd))
	}

	g.console.Draw(screen, g.fonts, consoleX, consoleY, consoleW, consoleH)
}

// drawBar renders a labelled meter filled to frac.
func (g *Game) drawBar(screen *ebiten.Image, x, y, w, h float64, label string, frac float64, value string, fill color.RGBA) {
	g.fonts.Draw(screen, label, fontRegular, smallSize, x, y-22, colWhite)
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), colDarkGray, false)
	vector.FillRect(screen, float32(x), float32(y), float32(w*frac), float32(h), fill, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 2, colWhite, false)
	g.fonts.DrawCentered(screen, value, fontRegular, smallSize, x+w/2, y+h/2, colWhite)
}

// drawGuard renders one patrol route with its choke window and the guard.
func (g *Game) drawGuard(screen *ebiten.Image, gv mission.GuardView, x, y, w, h, chokeMin, chokeMax float64) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), colDarkGray, false)
	vector.FillRect(screen, float32(x+chokeMin*w), float32(y), float32((chokeMax-chokeMin)*w), float32(h), colChoke, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, colWhite, false)

	gc := colBlue
	if gv.Alerted {
		gc = colRed
	}
	vector.FillCircle(screen, float32(x+gv.Position*w), float32(y+h/2), float32(h/3), gc, true)

	label := fmt.Sprintf("Guard %d", gv.ID)
	if gv.Alerted {
		label += "  ALERT"
	}
	g.fonts.Draw(screen, label, fontRegular, smallSize-2, x, y-18, colWhite)
}

func (g *Game) drawSystem(screen *ebiten.Image, x, y float64, name string, offline bool, left float64) {
	if offline {
		g.fonts.Draw(screen, fmt.Sprintf("%s: OFFLINE (%s)", name, hud.CooldownLabel(mission.CooldownView{Remaining: left})),
			fontRegular, smallSize, x, y, colGreen)
		return
	}
	g.fonts.Draw(screen, name+": ONLINE", fontRegular, smallSize, x, y, colRed)
}

func (g *Game) drawEnd(screen *ebiten.Image, snap mission.Snapshot) {
	d := snap.Debrief
	if d == nil {
		return
	}
	col := colRed
	if d.Outcome == mission.OutcomeSuccess {
		col = colGreen
	}
	g.fonts.DrawCentered(screen, d.Title(), fontBold, titleSize, screenWidth/2, screenHeight/2-100, col)
	g.fonts.DrawCentered(screen, d.Description, fontRegular, smallSize, screenWidth/2, screenHeight/2-60, colGray)
	for i, l := range d.Lines() {
		g.fonts.DrawCentered(screen, l, fontRegular, textSize, screenWidth/2, screenHeight/2+float64(i)*40, colWhite)
	}
	g.confirmButton.Title = "RETURN TO MENU"
	g.confirmButton.Draw(screen, g.fonts, textSize, true, "")
	g.fonts.DrawCentered(screen, "C copies the full debrief", fontRegular, smallSize, screenWidth/2, screenHeight/2+175, colGray)
}

func toneColor(t mission.Tone) color.RGBA {
	switch t {
	case mission.TonePositive:
		return colGreen
	case mission.ToneNegative:
		return colRed
	default:
		return colCyan
	}
}
