package compose

import (
	"os"
	"sync"

	"github.com/flopp/go-findfont"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontSet holds the faces for one render, loaded once and reused across all
// frames of that render.
type FontSet struct {
	Title    font.Face
	Subtitle font.Face
	Logo     font.Face
}

// System font candidates, tried in order. Exhaustion falls back to the
// embedded Go fonts; font loading degrades fidelity but never fails.
var (
	boldCandidates    = []string{"DejaVuSans-Bold.ttf", "arialbd.ttf", "Arial Bold.ttf", "Helvetica-Bold.ttf"}
	regularCandidates = []string{"DejaVuSans.ttf", "arial.ttf", "Arial.ttf", "Helvetica.ttf"}
)

var (
	fontOnce    sync.Once
	boldData    []byte
	regularData []byte
)

// loadFontData resolves the bold and regular font bytes once per process.
func loadFontData() ([]byte, []byte) {
	fontOnce.Do(func() {
		boldData = firstFont(boldCandidates, gobold.TTF)
		regularData = firstFont(regularCandidates, goregular.TTF)
	})
	return boldData, regularData
}

func firstFont(candidates []string, fallback []byte) []byte {
	for _, name := range candidates {
		path, err := findfont.Find(name)
		if err != nil {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if _, err := opentype.Parse(data); err != nil {
			continue
		}
		return data
	}
	return fallback
}

// LoadFonts builds the faces for a render at the given pixel sizes.
// It never returns an error: unparseable fonts degrade to the embedded Go
// fonts, and in the worst case to a fixed bitmap face.
func LoadFonts(titleSize, subtitleSize, logoSize float64) *FontSet {
	bold, regular := loadFontData()
	return &FontSet{
		Title:    newFace(bold, gobold.TTF, titleSize),
		Subtitle: newFace(regular, goregular.TTF, subtitleSize),
		Logo:     newFace(bold, gobold.TTF, logoSize),
	}
}

func newFace(data, fallback []byte, size float64) font.Face {
	for _, d := range [][]byte{data, fallback} {
		ft, err := opentype.Parse(d)
		if err != nil {
			continue
		}
		face, err := opentype.NewFace(ft, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			continue
		}
		return face
	}
	return basicfont.Face7x13
}
