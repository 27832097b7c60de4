package compose

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// Halo paints a soft-edged ellipse inscribed in a w×h buffer and blurs it
// with a symmetric Gaussian kernel. Used for ambient backlighting and the
// anticipatory edge glow.
func Halo(w, h int, c color.RGBA, alpha, sigma float64) image.Image {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dc := gg.NewContext(w, h)
	if alpha > 0 {
		// Inset so the blur has room to feather inside the buffer.
		dc.SetColor(Tint(c, alpha))
		dc.DrawEllipse(float64(w)/2, float64(h)/2, float64(w)*0.35, float64(h)*0.35)
		dc.Fill()
	}
	if sigma <= 0 {
		return dc.Image()
	}
	return imaging.Blur(dc.Image(), sigma)
}
