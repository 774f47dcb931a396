package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	hoverLerp     = 0.13 // seconds to ease into hover
	scaleLerp     = 0.08
	hoverGrow     = 0.05
	pressDuration = 0.12
	pressSquash   = 0.92
)

// Button is a clickable panel with a hover glow and a press squash.
type Button struct {
	X, Y, W, H float64
	Title      string
	Base       color.RGBA
	Hover      color.RGBA

	hoverT     float64
	scaleT     float64
	pressTimer float64
}

// NewButton creates a button at rest.
func NewButton(x, y, w, h float64, title string, base, hover color.RGBA) *Button {
	return &Button{X: x, Y: y, W: w, H: h, Title: title, Base: base, Hover: hover, scaleT: 1}
}

// Contains reports whether the point lies on the button's unscaled rect.
func (b *Button) Contains(px, py float64) bool {
	return px >= b.X && px < b.X+b.W && py >= b.Y && py < b.Y+b.H
}

// Update eases hover and scale toward their targets. Inactive buttons never
// light up.
func (b *Button) Update(dt, mx, my float64, active bool) {
	if dt <= 0 {
		return
	}
	target := 0.0
	if active && b.Contains(mx, my) {
		target = 1
	}
	b.hoverT += (target - b.hoverT) * math.Min(1, dt/hoverLerp)

	if b.pressTimer > 0 {
		b.pressTimer = math.Max(0, b.pressTimer-dt)
	}
	scale := 1 + hoverGrow*b.hoverT
	if b.pressTimer > 0 {
		scale *= pressSquash
	}
	b.scaleT += (scale - b.scaleT) * math.Min(1, dt/scaleLerp)
}

// Press starts the squash animation.
func (b *Button) Press() {
	b.pressTimer = pressDuration
	b.scaleT *= pressSquash
}

// Bounds returns the scaled rect, centred on the unscaled one.
func (b *Button) Bounds() (x, y, w, h float64) {
	w, h = b.W*b.scaleT, b.H*b.scaleT
	return b.X + (b.W-w)/2, b.Y + (b.H-h)/2, w, h
}

func (b *Button) fill(active bool) color.RGBA {
	if !active {
		return colGray
	}
	lerp := func(a, c uint8) uint8 { return uint8(float64(a) + (float64(c)-float64(a))*b.hoverT) }
	return color.RGBA{lerp(b.Base.R, b.Hover.R), lerp(b.Base.G, b.Hover.G), lerp(b.Base.B, b.Hover.B), 255}
}

// Draw renders the button. caption, if set, is drawn to the right in yellow.
func (b *Button) Draw(dst *ebiten.Image, f *Fonts, size float64, active bool, caption string) {
	x, y, w, h := b.Bounds()
	vector.FillRect(dst, float32(x), float32(y), float32(w), float32(h), b.fill(active), false)
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), 2, colWhite, false)
	f.DrawCentered(dst, b.Title, fontBold, size, x+w/2, y+h/2, colWhite)
	if caption != "" {
		f.Draw(dst, caption, fontRegular, size, x+w+5, y+5, colYellow)
	}
}
