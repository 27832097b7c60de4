package renderer

import (
	"image"
	"math"

	"github.com/datadash/lowerthird/internal/apperr"
	"github.com/datadash/lowerthird/internal/compose"
	"github.com/datadash/lowerthird/internal/easing"
	"github.com/datadash/lowerthird/internal/timeline"
)

// RenderFrame produces the fully composited frame for frameIndex of a
// totalFrames render.
func RenderFrame(frameIndex, totalFrames int, spec AnimationSpec, a *Assets) (*image.RGBA, error) {
	dst := image.NewRGBA(image.Rect(0, 0, spec.Width, spec.Height))
	if err := RenderFrameInto(dst, frameIndex, totalFrames, spec, a); err != nil {
		return nil, err
	}
	return dst, nil
}

// RenderFrameInto renders into a caller-provided buffer (normally taken from
// the frame pool). The buffer bounds must match the requested frame size.
func RenderFrameInto(dst *image.RGBA, frameIndex, totalFrames int, spec AnimationSpec, a *Assets) error {
	if a == nil {
		return apperr.New(apperr.CodeFrameRender, "assets not prepared")
	}
	if totalFrames <= 0 || frameIndex < 0 || frameIndex >= totalFrames {
		return apperr.New(apperr.CodeFrameRender, "frame %d outside render of %d frames", frameIndex, totalFrames)
	}
	if b := dst.Bounds(); b.Dx() != spec.Width || b.Dy() != spec.Height {
		return apperr.New(apperr.CodeFrameRender, "frame buffer %v does not match %dx%d", b, spec.Width, spec.Height)
	}

	t := progressAt(frameIndex, totalFrames)
	overlay := image.NewRGBA(image.Rect(0, 0, spec.Width, spec.Height))

	p := painter{spec: spec, a: a, t: t, overlay: overlay}

	// Fixed paint order; changing it changes the look.
	p.ambientBackground()
	p.edgeGlow()
	p.bar()
	p.logo()
	p.title()
	p.subtitle()
	p.badge()
	p.foregroundGlow()

	compose.Flatten(dst, overlay, a.Palette.Background)
	return nil
}

// painter carries one frame's state through the element painters.
type painter struct {
	spec    AnimationSpec
	a       *Assets
	t       float64
	overlay *image.RGBA
}

// ambientBackground drifts a translucent gradient band across the lower
// third. No easing; the horizontal drift is sinusoidal in overall progress.
func (p *painter) ambientBackground() {
	w := p.a.Profile.Ambient
	if w.State(p.t) == timeline.Dormant {
		return
	}
	g := p.a.geo
	alpha := 0.16 * w.Progress(p.t)
	drift := math.Sin(2*math.Pi*p.t) * 40 * g.scale

	bandH := p.spec.Height / 3
	band := compose.GradientRect(p.spec.Width, bandH,
		compose.Tint(p.a.Palette.Secondary, 0),
		compose.Tint(p.a.Palette.Secondary, alpha),
		false)
	compose.Merge(p.overlay, band, int(drift), p.spec.Height-bandH)
}

// edgeGlow is the anticipatory halo at the bar's origin, active from the
// very first frame.
func (p *painter) edgeGlow() {
	w := p.a.Profile.EdgeGlow
	if w.State(p.t) == timeline.Dormant {
		return
	}
	g := p.a.geo
	prog := easing.Linear(w.Progress(p.t))

	hw := int((200 + 220*prog) * g.scale)
	hh := int((120 + 100*prog) * g.scale)
	halo := compose.Halo(hw, hh, p.a.Palette.Primary, 0.35*prog, 18*g.scale)

	cx := int(g.barX + 40*g.scale)
	cy := int(g.barY + g.barH/2)
	compose.Merge(p.overlay, halo, cx-hw/2, cy-hh/2)
}

// bar sweeps the gradient panel open left to right.
func (p *painter) bar() {
	w := p.a.Profile.Bar
	if w.State(p.t) == timeline.Dormant {
		return
	}
	g := p.a.geo
	width := g.barW * easing.InOutSine(w.Progress(p.t))
	if width < 1 {
		return
	}

	panel := compose.Panel(int(width), int(g.barH), g.barRadius, compose.PanelColors{
		GradientFrom: p.a.Palette.Primary,
		GradientTo:   p.a.Palette.Secondary,
		Accent:       p.a.Palette.Accent,
		Shadow:       p.a.Palette.Dark,
	}, 1.0)
	compose.Merge(p.overlay, panel, int(g.barX)-compose.PanelMargin, int(g.barY)-compose.PanelMargin)
}

// logo runs the nested three-phase timeline: glow, materialize, settle.
func (p *painter) logo() {
	w := p.a.Profile.Logo
	if w.State(p.t) == timeline.Dormant {
		return
	}
	g := p.a.geo
	phase, local := p.a.Profile.LogoPhases.Phase(w.Progress(p.t))

	logoCX := g.logoX + g.logoSize
	logoCY := g.logoY + g.logoSize*3/4

	var glyphAlpha, scale, haloAlpha float64
	switch phase {
	case timeline.PhaseGlow:
		haloAlpha = 0.30 * easing.OutQuart(local)
	case timeline.PhaseMaterialize:
		haloAlpha = 0.30 * (1 - local)
		glyphAlpha = easing.OutQuart(local)
		scale = 0.60 + 0.44*easing.OutQuart(local) // lands at 1.04 overshoot
	case timeline.PhaseSettle:
		glyphAlpha = 1
		scale = 1.04 - 0.04*easing.InOutSine(local) // relaxes back to 1.0
	}

	if haloAlpha > 0 {
		hw := int(float64(g.logoSize) * 2.6)
		hh := int(float64(g.logoSize) * 1.8)
		halo := compose.Halo(hw, hh, p.a.Palette.Primary, haloAlpha, 14*g.scale)
		compose.Merge(p.overlay, halo, logoCX-hw/2, logoCY-hh/2)
	}

	if glyphAlpha > 0 {
		mark := compose.LogoMark(g.logoSize, compose.LogoColors{
			FillA:   p.a.Palette.White,
			FillB:   p.a.Palette.Accent,
			Glow:    p.a.Palette.Primary,
			Outline: p.a.Palette.Dark,
			Shadow:  p.a.Palette.Dark,
		}, p.a.Fonts.Logo, glyphAlpha, scale)
		compose.Merge(p.overlay, mark, g.logoX, g.logoY)
	}
}

// title reveals character by character with a fading glow at the text.
func (p *painter) title() {
	w := p.a.Profile.Title
	if w.State(p.t) == timeline.Dormant {
		return
	}
	prog := easing.OutQuart(w.Progress(p.t))

	shown := compose.RevealChars(p.spec.MainTitle, prog)
	if shown == "" {
		return
	}
	txt := compose.Text(shown, p.a.Fonts.Title, p.a.Palette.White, p.a.Palette.Dark, prog)

	// Reveal glow: faint backlight while the text is still arriving.
	if prog < 1 {
		tb := txt.Bounds()
		halo := compose.Halo(tb.Dx()+40, tb.Dy()+30, p.a.Palette.Primary, 0.12*(1-prog), 10*p.a.geo.scale)
		compose.Merge(p.overlay, halo, p.a.geo.titleX-20, p.a.geo.titleY-15)
	}
	compose.Merge(p.overlay, txt, p.a.geo.titleX, p.a.geo.titleY)
}

// subtitle reveals whole words.
func (p *painter) subtitle() {
	w := p.a.Profile.Subtitle
	if w.State(p.t) == timeline.Dormant {
		return
	}
	prog := easing.OutQuart(w.Progress(p.t))

	shown := compose.RevealWords(p.spec.Subtitle, prog)
	if shown == "" {
		return
	}
	txt := compose.Text(shown, p.a.Fonts.Subtitle, p.a.Palette.Accent, p.a.Palette.Dark, prog)
	compose.Merge(p.overlay, txt, p.a.geo.subtitleX, p.a.geo.subtitleY)
}

// badge fades the pre-rendered QR code in with the subtitle window.
func (p *painter) badge() {
	if p.a.Badge == nil {
		return
	}
	w := p.a.Profile.Subtitle
	if w.State(p.t) == timeline.Dormant {
		return
	}
	alpha := easing.OutQuart(w.Progress(p.t))
	compose.MergeWithAlpha(p.overlay, p.a.Badge, p.a.geo.badgeX, p.a.geo.badgeY, alpha)
}

// foregroundGlow is the capped ambient wash over the assembled composition.
func (p *painter) foregroundGlow() {
	w := p.a.Profile.ForegroundGlow
	if w.State(p.t) == timeline.Dormant {
		return
	}
	g := p.a.geo
	alpha := 0.22 * easing.Linear(w.Progress(p.t))

	hw := int(g.barW + 240*g.scale)
	hh := int(g.barH + 160*g.scale)
	halo := compose.Halo(hw, hh, p.a.Palette.Primary, alpha, 22*g.scale)

	cx := int(g.barX + g.barW/2)
	cy := int(g.barY + g.barH/2)
	compose.Merge(p.overlay, halo, cx-hw/2, cy-hh/2)
}
