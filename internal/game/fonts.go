package game

import (
	"bytes"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// fontKind selects one of the embedded typefaces.
type fontKind int

const (
	fontRegular fontKind = iota
	fontBold
	fontMono
	fontKindCount
)

// debugCharW is the advance of ebitenutil's fixed debug font.
const debugCharW = 6

// Fonts holds the UI typefaces. A typeface that failed to load falls back to
// the debug font, so the HUD stays readable.
type Fonts struct {
	sources [fontKindCount]*text.GoTextFaceSource
}

// LoadFonts parses the embedded Go fonts.
func LoadFonts(logger *log.Logger) *Fonts {
	f := &Fonts{}
	ttf := [fontKindCount][]byte{goregular.TTF, gobold.TTF, gomono.TTF}
	names := [fontKindCount]string{"Go Regular", "Go Bold", "Go Mono"}
	for k := range ttf {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(ttf[k]))
		if err != nil {
			logger.Printf("font %s failed to load, using debug font: %v", names[k], err)
			continue
		}
		f.sources[k] = src
	}
	return f
}

func (f *Fonts) face(kind fontKind, size float64) text.Face {
	if f == nil || f.sources[kind] == nil {
		return nil
	}
	return &text.GoTextFace{Source: f.sources[kind], Size: size}
}

// Draw renders s with its top-left corner at x,y.
func (f *Fonts) Draw(dst *ebiten.Image, s string, kind fontKind, size, x, y float64, clr color.Color) {
	face := f.face(kind, size)
	if face == nil {
		ebitenutil.DebugPrintAt(dst, s, int(x), int(y))
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}

// DrawCentered renders s centred horizontally on cx and vertically on cy.
func (f *Fonts) DrawCentered(dst *ebiten.Image, s string, kind fontKind, size, cx, cy float64, clr color.Color) {
	face := f.face(kind, size)
	if face == nil {
		ebitenutil.DebugPrintAt(dst, s, int(cx)-len(s)*debugCharW/2, int(cy)-8)
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, s, face, op)
}
