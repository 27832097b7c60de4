package compose

import (
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// textPad keeps room in text buffers for shadow offsets.
const textPad = 8

// RevealChars returns the first floor(len·r) runes of s, for the title's
// character-by-character reveal.
func RevealChars(s string, r float64) string {
	runes := []rune(s)
	n := int(math.Floor(float64(len(runes)) * clamp01(r)))
	if n >= len(runes) {
		return s
	}
	return string(runes[:n])
}

// RevealWords returns the first floor(words·r) whole words of s, for the
// subtitle's word-by-word reveal.
func RevealWords(s string, r float64) string {
	words := strings.Fields(s)
	n := int(math.Floor(float64(len(words)) * clamp01(r)))
	if n >= len(words) {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:n], " ")
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Text renders s with a two-pass drop shadow under the main fill. The buffer
// is sized to the measured string plus shadow padding; an empty string yields
// a minimal transparent buffer.
func Text(s string, face font.Face, fill, shadow color.RGBA, alpha float64) *image.RGBA {
	if s == "" || alpha <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}

	measure := gg.NewContext(1, 1)
	measure.SetFontFace(face)
	tw, th := measure.MeasureString(s)

	bufW := int(math.Ceil(tw)) + 2*textPad
	bufH := int(math.Ceil(th)) + 2*textPad
	dc := gg.NewContext(bufW, bufH)
	dc.SetFontFace(face)

	cx, cy := float64(bufW)/2, float64(bufH)/2

	// Drop shadow, deeper pass first.
	dc.SetColor(Tint(shadow, 0.20*alpha))
	dc.DrawStringAnchored(s, cx+3, cy+3, 0.5, 0.5)
	dc.SetColor(Tint(shadow, 0.35*alpha))
	dc.DrawStringAnchored(s, cx+2, cy+2, 0.5, 0.5)

	dc.SetColor(Tint(fill, alpha))
	dc.DrawStringAnchored(s, cx, cy, 0.5, 0.5)

	return dc.Image().(*image.RGBA)
}
