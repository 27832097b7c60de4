// Package compose provides the stateless drawing primitives of the
// lowerthird renderer: gradient fills, shadowed panels, the logo mark,
// progressive text and blurred glow halos.
//
// Every primitive takes explicit geometry, colors and opacity and returns a
// pixel buffer with per-pixel transparency. The caller merges buffers onto a
// frame in a fixed paint order with standard src-over compositing.
package compose

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/fogleman/gg"
)

// PanelMargin is the extra border kept around panel buffers so the shadow
// stack has room. Callers composite panels at (x-PanelMargin, y-PanelMargin).
const PanelMargin = 24

// Tint returns c with its opacity scaled by alpha in [0,1].
func Tint(c color.RGBA, alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(255*alpha + 0.5)}
}

// Merge paints src onto dst at (x, y) using src-over compositing.
// Regions outside dst clip silently.
func Merge(dst *image.RGBA, src image.Image, x, y int) {
	b := src.Bounds()
	r := image.Rect(x, y, x+b.Dx(), y+b.Dy())
	draw.Draw(dst, r, src, b.Min, draw.Over)
}

// MergeWithAlpha paints src onto dst at (x, y) scaled by a uniform opacity.
func MergeWithAlpha(dst *image.RGBA, src image.Image, x, y int, alpha float64) {
	if alpha <= 0 {
		return
	}
	if alpha >= 1 {
		Merge(dst, src, x, y)
		return
	}
	b := src.Bounds()
	r := image.Rect(x, y, x+b.Dx(), y+b.Dy())
	mask := image.NewUniform(color.Alpha{A: uint8(255*alpha + 0.5)})
	draw.DrawMask(dst, r, src, b.Min, mask, image.Point{}, draw.Over)
}

// Flatten paints the transparent overlay over an opaque background color
// into dst, producing the final frame. dst, overlay and the frame size must
// agree.
func Flatten(dst *image.RGBA, overlay image.Image, background color.RGBA) {
	draw.Draw(dst, dst.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), overlay, overlay.Bounds().Min, draw.Over)
}

// GradientRect fills a w×h buffer with a linear interpolation between two
// colors, across the width when horizontal is true, otherwise down the
// height.
func GradientRect(w, h int, from, to color.Color, horizontal bool) *image.RGBA {
	dc := gg.NewContext(w, h)

	var grad gg.Gradient
	if horizontal {
		grad = gg.NewLinearGradient(0, 0, float64(w), 0)
	} else {
		grad = gg.NewLinearGradient(0, 0, 0, float64(h))
	}
	grad.AddColorStop(0, from)
	grad.AddColorStop(1, to)

	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	dc.Fill()

	return dc.Image().(*image.RGBA)
}

// PanelColors are the colors of one bar panel.
type PanelColors struct {
	GradientFrom color.RGBA
	GradientTo   color.RGBA
	Accent       color.RGBA
	Shadow       color.RGBA
}

// Panel draws a rounded-corner gradient panel with a layered drop shadow and
// a thin accent line along the top edge. Three shadow passes are painted
// deepest-first with growing offset and falling opacity; the accent line
// lands last. The returned buffer is (w+2*PanelMargin)×(h+2*PanelMargin).
func Panel(w, h int, radius float64, c PanelColors, opacity float64) *image.RGBA {
	bufW, bufH := w+2*PanelMargin, h+2*PanelMargin
	dc := gg.NewContext(bufW, bufH)

	x, y := float64(PanelMargin), float64(PanelMargin)
	fw, fh := float64(w), float64(h)

	// Shadow stack: deepest pass first.
	shadows := []struct {
		dx, dy, grow float64
		alpha        float64
	}{
		{8, 10, 8, 0.10},
		{6, 8, 4, 0.16},
		{4, 5, 0, 0.24},
	}
	for _, s := range shadows {
		dc.SetColor(Tint(c.Shadow, s.alpha*opacity))
		dc.DrawRoundedRectangle(x+s.dx-s.grow/2, y+s.dy-s.grow/2, fw+s.grow, fh+s.grow, radius+s.grow/2)
		dc.Fill()
	}

	// Gradient body under a rounded mask.
	grad := gg.NewLinearGradient(x, 0, x+fw, 0)
	grad.AddColorStop(0, Tint(c.GradientFrom, opacity))
	grad.AddColorStop(1, Tint(c.GradientTo, opacity))
	dc.SetFillStyle(grad)
	dc.DrawRoundedRectangle(x, y, fw, fh, radius)
	dc.Fill()

	// Accent highlight along the top edge.
	accentH := 4.0
	if fh < 24 {
		accentH = 2.0
	}
	dc.SetColor(Tint(c.Accent, 0.9*opacity))
	dc.DrawRoundedRectangle(x+radius/2, y, fw-radius, accentH, accentH/2)
	dc.Fill()

	return dc.Image().(*image.RGBA)
}
