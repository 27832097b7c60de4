package renderer

import (
	"image"

	"github.com/datadash/lowerthird/internal/apperr"
	"github.com/datadash/lowerthird/internal/compose"
	"github.com/datadash/lowerthird/internal/palette"
	"github.com/datadash/lowerthird/internal/timeline"
)

// Assets bundles everything a render prepares once and reuses for every
// frame: resolved palette, timing profile, font faces and the optional QR
// badge. Immutable after PrepareAssets, except that the font faces carry
// mutable rasterization state; goroutines rendering in parallel must each
// take their own copy via Clone.
type Assets struct {
	Palette palette.Palette
	Profile timeline.Profile
	Fonts   *compose.FontSet
	Badge   image.Image

	geo geometry
}

// geometry holds the pixel layout for one frame size. All values derive from
// the 1920×1080 reference design and scale with the actual frame width.
type geometry struct {
	scale float64

	barX, barY float64
	barW, barH float64
	barRadius  float64

	logoSize int
	logoX    int
	logoY    int

	titleX, titleY       int
	subtitleX, subtitleY int

	badgeSize int
	badgeX    int
	badgeY    int
}

func layoutFor(w, h int) geometry {
	s := float64(w) / 1920.0

	g := geometry{
		scale:     s,
		barX:      60 * s,
		barY:      840 * s,
		barW:      560 * s,
		barH:      160 * s,
		barRadius: 18 * s,
		logoSize:  int(110 * s),
	}
	g.logoX = int(g.barX + 24*s)
	g.logoY = int(g.barY + (g.barH-float64(g.logoSize)*1.5)/2)
	g.titleX = int(g.barX + 260*s)
	g.titleY = int(g.barY + 18*s)
	g.subtitleX = g.titleX
	g.subtitleY = int(g.barY + 92*s)
	g.badgeSize = int(120 * s)
	g.badgeX = w - g.badgeSize - int(60*s)
	g.badgeY = int(g.barY + 20*s)
	return g
}

// fontsFor builds the font faces for a layout. Face construction is
// deterministic, so faces built from the same layout raster identically.
func fontsFor(g geometry) *compose.FontSet {
	return compose.LoadFonts(52*g.scale, 32*g.scale, float64(g.logoSize)*0.62)
}

// Clone returns a copy of a with freshly built font faces. Everything else
// is shared; only the faces hold per-use glyph buffers that make them
// unsafe to raster from two goroutines at once.
func (a *Assets) Clone() *Assets {
	c := *a
	c.Fonts = fontsFor(a.geo)
	return &c
}

// PrepareAssets resolves the palette, loads fonts (never fails; falls back
// to the embedded faces) and pre-renders the QR badge when requested.
func PrepareAssets(spec AnimationSpec, profile timeline.Profile) (*Assets, error) {
	if err := profile.Normalize(); err != nil {
		return nil, apperr.Wrap(apperr.CodeConfiguration, err, "bad animation profile")
	}

	geo := layoutFor(spec.Width, spec.Height)
	pal := palette.Resolve(spec.Style)

	a := &Assets{
		Palette: pal,
		Profile: profile,
		Fonts:   fontsFor(geo),
		geo:     geo,
	}

	if spec.BadgeURL != "" {
		badge, err := compose.Badge(spec.BadgeURL, geo.badgeSize, pal.Dark, pal.White)
		if err != nil {
			return nil, apperr.Wrap(apperr.CodeInvalidInput, err, "badge URL cannot be encoded")
		}
		a.Badge = badge
	}
	return a, nil
}
