// Package palette defines the DataDash brand color tables.
//
// The table is fixed at compile time and read-only process-wide. Unknown
// style identifiers resolve to the default palette rather than failing —
// callers discover valid names via Names.
package palette

import (
	"image/color"
	"sort"
)

// Palette holds the six named colors of one visual style.
type Palette struct {
	Primary    color.RGBA // bar fill, logo glyphs, glow
	Secondary  color.RGBA // gradient tail, second logo glyph
	Accent     color.RGBA // highlight line, subtitle text
	White      color.RGBA // title text
	Dark       color.RGBA // shadows, outlines
	Background color.RGBA // opaque frame base
}

// DefaultStyle is used when an unknown identifier is requested.
const DefaultStyle = "cloud_blue"

var styles = map[string]Palette{
	"cloud_blue": {
		Primary:    color.RGBA{45, 151, 255, 255},
		Secondary:  color.RGBA{0, 87, 184, 255},
		Accent:     color.RGBA{200, 220, 255, 255},
		White:      color.RGBA{255, 255, 255, 255},
		Dark:       color.RGBA{10, 18, 32, 255},
		Background: color.RGBA{8, 10, 16, 255},
	},
	"secure_red": {
		Primary:    color.RGBA{226, 56, 56, 255},
		Secondary:  color.RGBA{150, 16, 30, 255},
		Accent:     color.RGBA{255, 190, 190, 255},
		White:      color.RGBA{255, 255, 255, 255},
		Dark:       color.RGBA{26, 10, 12, 255},
		Background: color.RGBA{14, 6, 8, 255},
	},
	"sase_purple": {
		Primary:    color.RGBA{142, 84, 233, 255},
		Secondary:  color.RGBA{74, 20, 140, 255},
		Accent:     color.RGBA{216, 191, 255, 255},
		White:      color.RGBA{255, 255, 255, 255},
		Dark:       color.RGBA{20, 12, 34, 255},
		Background: color.RGBA{10, 6, 20, 255},
	},
	"connectivity_yellow": {
		Primary:    color.RGBA{255, 196, 0, 255},
		Secondary:  color.RGBA{200, 120, 0, 255},
		Accent:     color.RGBA{255, 235, 160, 255},
		White:      color.RGBA{255, 255, 255, 255},
		Dark:       color.RGBA{32, 24, 6, 255},
		Background: color.RGBA{16, 12, 4, 255},
	},
}

// Legacy identifiers from earlier renderer iterations, kept as aliases so old
// callers keep working. Mapped by nearest hue.
var aliases = map[string]string{
	"default":   "cloud_blue",
	"corporate": "cloud_blue",
	"minimal":   "sase_purple",
	"tech":      "connectivity_yellow",
}

// Resolve returns the palette for the given style identifier. Unknown
// identifiers fall back to the default palette; this is a deliberate
// soft-fallback policy, not an error.
func Resolve(style string) Palette {
	if canonical, ok := aliases[style]; ok {
		style = canonical
	}
	if p, ok := styles[style]; ok {
		return p
	}
	return styles[DefaultStyle]
}

// Known reports whether style maps to a palette without falling back.
func Known(style string) bool {
	if _, ok := aliases[style]; ok {
		return true
	}
	_, ok := styles[style]
	return ok
}

// Names returns the canonical style identifiers in sorted order.
func Names() []string {
	names := make([]string, 0, len(styles))
	for name := range styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
