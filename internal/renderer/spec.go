// Package renderer produces fully composited lowerthird frames.
//
// RenderFrame is a pure function of (frameIndex, totalFrames, spec, assets):
// frames may be rendered in any order or in parallel and re-rendering the
// same inputs yields byte-identical pixels.
package renderer

import (
	"math"

	"github.com/datadash/lowerthird/internal/apperr"
)

// Fixed output profile.
const (
	DefaultWidth  = 1920
	DefaultHeight = 1080
	DefaultFPS    = 30
)

// AnimationSpec describes one render request. Created once per render and
// read-only for its lifetime.
type AnimationSpec struct {
	MainTitle string
	Subtitle  string
	Duration  float64 // seconds, must be positive
	Style     string
	BadgeURL  string // optional QR badge; empty skips the element

	Width  int
	Height int
	FPS    int
}

// DefaultSpec returns a spec with the fixed output profile filled in.
func DefaultSpec() AnimationSpec {
	return AnimationSpec{Width: DefaultWidth, Height: DefaultHeight, FPS: DefaultFPS}
}

// TotalFrames returns round(duration × fps).
func (s AnimationSpec) TotalFrames() int {
	return int(math.Round(s.Duration * float64(s.FPS)))
}

// Validate guards the invariants the boundary layer also enforces. The
// renderer rejects rather than clamps a non-positive duration.
func (s AnimationSpec) Validate() error {
	if s.Duration <= 0 {
		return apperr.New(apperr.CodeInvalidInput, "duration must be positive, got %v", s.Duration)
	}
	if s.Width <= 0 || s.Height <= 0 || s.FPS <= 0 {
		return apperr.New(apperr.CodeInvalidInput, "invalid output profile %dx%d@%d", s.Width, s.Height, s.FPS)
	}
	return nil
}

// progressAt maps a frame index to normalized progress so that the first
// frame lands at t=0 and the last frame at t=1, keeping the final frame
// fully settled for any frame count.
func progressAt(frameIndex, totalFrames int) float64 {
	if totalFrames <= 1 {
		return 1
	}
	return float64(frameIndex) / float64(totalFrames-1)
}
