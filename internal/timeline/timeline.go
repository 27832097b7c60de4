// Package timeline models when each lowerthird element animates.
//
// Every element owns an independent window over normalized progress t in
// [0,1]. A window is Dormant before its start, Animating inside
// [start, start+duration), and Settled afterwards. The logo additionally
// runs a nested three-phase timeline inside its own window.
package timeline

import (
	"github.com/datadash/lowerthird/internal/easing"
)

// State is the lifecycle of one animated element at a given t.
type State int

const (
	Dormant State = iota
	Animating
	Settled
)

func (s State) String() string {
	switch s {
	case Dormant:
		return "dormant"
	case Animating:
		return "animating"
	case Settled:
		return "settled"
	}
	return "unknown"
}

// Window is one element's [start, start+duration] slice of overall progress,
// both expressed as fractions of the total clip duration.
type Window struct {
	Start    float64 `yaml:"start"`
	Duration float64 `yaml:"duration"`
}

// end returns the window close, clipped to 1 so elements whose nominal
// window runs past the clip still settle on the final frame.
func (w Window) end() float64 {
	e := w.Start + w.Duration
	if e > 1 {
		return 1
	}
	return e
}

// State classifies t against the window.
func (w Window) State(t float64) State {
	switch {
	case t < w.Start:
		return Dormant
	case t < w.end():
		return Animating
	default:
		return Settled
	}
}

// Progress returns the raw local progress in [0,1]: 0 while Dormant, 1 once
// Settled. Callers apply the element's easing curve on top.
func (w Window) Progress(t float64) float64 {
	span := w.end() - w.Start
	if span <= 0 {
		if t < w.Start {
			return 0
		}
		return 1
	}
	return easing.Clamp((t - w.Start) / span)
}

// LogoPhase identifies the sub-state of the logo's nested timeline.
type LogoPhase int

const (
	// PhaseGlow grows an anticipatory halo before any glyph appears.
	PhaseGlow LogoPhase = iota
	// PhaseMaterialize scales and fades the glyphs in.
	PhaseMaterialize
	// PhaseSettle relaxes a small overshoot back to rest.
	PhaseSettle
)

// LogoPhases holds the fractions of the logo window spent in the first two
// phases; the settle phase takes the remainder. Wrong boundaries produce
// visible popping, so these are validated by Profile.Normalize.
type LogoPhases struct {
	Glow        float64 `yaml:"glow"`
	Materialize float64 `yaml:"materialize"`
}

// Phase splits the logo-local progress into the active phase and that
// phase's own local progress in [0,1].
func (p LogoPhases) Phase(local float64) (LogoPhase, float64) {
	local = easing.Clamp(local)
	glowEnd := p.Glow
	matEnd := p.Glow + p.Materialize

	switch {
	case local < glowEnd:
		return PhaseGlow, easing.Clamp(local / glowEnd)
	case local < matEnd:
		return PhaseMaterialize, easing.Clamp((local - glowEnd) / p.Materialize)
	default:
		settleDur := 1 - matEnd
		if settleDur <= 0 {
			return PhaseSettle, 1
		}
		return PhaseSettle, easing.Clamp((local - matEnd) / settleDur)
	}
}
