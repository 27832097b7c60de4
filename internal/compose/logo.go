package compose

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// LogoColors are the colors of the two-glyph logo mark.
type LogoColors struct {
	FillA   color.RGBA // first glyph
	FillB   color.RGBA // second glyph
	Glow    color.RGBA // diagonal glow pass, normally the primary color
	Outline color.RGBA
	Shadow  color.RGBA
}

// glyphOverlap is how far the second glyph slides into the first, as a
// fraction of glyph width. The overlap plus the vertical stagger makes the
// pair read as intentional layering.
const glyphOverlap = 0.30

// LogoMark renders the stylized "DD" letterform pair into a (2*size)×(3*size/2)
// buffer. alpha scales every pass; scale grows/shrinks the whole mark about
// its center (used by the materialize and settle phases).
func LogoMark(size int, c LogoColors, face font.Face, alpha, scale float64) *image.RGBA {
	bufW, bufH := size*2, size*3/2
	dc := gg.NewContext(bufW, bufH)
	if alpha <= 0 || scale <= 0 {
		return dc.Image().(*image.RGBA)
	}
	dc.SetFontFace(face)

	dc.ScaleAbout(scale, scale, float64(bufW)/2, float64(bufH)/2)

	gw, _ := dc.MeasureString("D")
	overlap := gw * glyphOverlap
	pairW := 2*gw - overlap
	stagger := float64(size) * 0.06

	// Anchor centers of the two glyphs; pair centered as a whole.
	x0 := (float64(bufW) - pairW) / 2
	cy := float64(bufH) / 2
	ax, ay := x0+gw/2, cy-stagger/2
	bx, by := x0+gw-overlap+gw/2, cy+stagger/2

	both := func(col color.Color, dx, dy float64) {
		dc.SetColor(col)
		dc.DrawStringAnchored("D", ax+dx, ay+dy, 0.5, 0.5)
		dc.DrawStringAnchored("D", bx+dx, by+dy, 0.5, 0.5)
	}

	// Shadow pass: several small offsets sharing the opacity budget.
	shadowOffsets := [][2]float64{{2, 2}, {3, 3}, {4, 4}}
	for _, off := range shadowOffsets {
		both(Tint(c.Shadow, 0.25*alpha/float64(len(shadowOffsets))), off[0], off[1])
	}

	// Glow pass: four diagonal offsets at low opacity.
	for _, off := range [][2]float64{{-3, -3}, {3, -3}, {-3, 3}, {3, 3}} {
		both(Tint(c.Glow, 0.10*alpha), off[0], off[1])
	}

	// Glyph fill: two different colors for contrast.
	dc.SetColor(Tint(c.FillA, alpha))
	dc.DrawStringAnchored("D", ax, ay, 0.5, 0.5)
	dc.SetColor(Tint(c.FillB, alpha))
	dc.DrawStringAnchored("D", bx, by, 0.5, 0.5)

	// Outline pass: four orthogonal offsets.
	for _, off := range [][2]float64{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		both(Tint(c.Outline, 0.35*alpha), off[0], off[1])
	}

	// Final crisp redraw on top.
	dc.SetColor(Tint(c.FillA, alpha))
	dc.DrawStringAnchored("D", ax, ay, 0.5, 0.5)
	dc.SetColor(Tint(c.FillB, alpha))
	dc.DrawStringAnchored("D", bx, by, 0.5, 0.5)

	return dc.Image().(*image.RGBA)
}
