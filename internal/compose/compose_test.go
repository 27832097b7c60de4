package compose

import (
	"image"
	"image/color"
	"strings"
	"testing"
)

var (
	testBlue  = color.RGBA{45, 151, 255, 255}
	testDark  = color.RGBA{10, 18, 32, 255}
	testWhite = color.RGBA{255, 255, 255, 255}
)

func TestRevealCharsMonotonic(t *testing.T) {
	s := "DataDash"
	prev := 0
	for i := 0; i <= 100; i++ {
		r := float64(i) / 100
		n := len([]rune(RevealChars(s, r)))
		if n < prev {
			t.Fatalf("reveal shrank at r=%.2f: %d < %d", r, n, prev)
		}
		prev = n
	}
	if RevealChars(s, 0) != "" {
		t.Error("RevealChars at 0 should be empty")
	}
	if RevealChars(s, 1) != s {
		t.Error("RevealChars at 1 should be the full string")
	}
}

func TestRevealWords(t *testing.T) {
	s := "Fortinet Community Insights"

	tests := []struct {
		r    float64
		want string
	}{
		{0, ""},
		{0.34, "Fortinet"},
		{0.67, "Fortinet Community"},
		{1.0, "Fortinet Community Insights"},
	}
	for _, tt := range tests {
		if got := RevealWords(s, tt.r); got != tt.want {
			t.Errorf("RevealWords(%.2f) = %q, expected %q", tt.r, got, tt.want)
		}
	}

	// Clamped outside the domain.
	if got := RevealWords(s, 1.5); got != s {
		t.Errorf("RevealWords(1.5) = %q, expected full string", got)
	}
	if got := RevealWords(s, -1); got != "" {
		t.Errorf("RevealWords(-1) = %q, expected empty", got)
	}
}

func TestGradientRectEndpoints(t *testing.T) {
	img := GradientRect(100, 10, testBlue, testDark, true)

	left := img.RGBAAt(1, 5)
	right := img.RGBAAt(98, 5)

	if left.B < 200 {
		t.Errorf("left edge should be near the from color, got %+v", left)
	}
	if right.B > 100 {
		t.Errorf("right edge should be near the to color, got %+v", right)
	}
}

func TestPanelShadowStaysInMargin(t *testing.T) {
	img := Panel(200, 60, 12, PanelColors{
		GradientFrom: testBlue,
		GradientTo:   testDark,
		Accent:       testWhite,
		Shadow:       testDark,
	}, 1.0)

	b := img.Bounds()
	if b.Dx() != 200+2*PanelMargin || b.Dy() != 60+2*PanelMargin {
		t.Fatalf("unexpected panel buffer size %v", b)
	}

	// Panel body must be opaque, corners of the margin transparent.
	if _, _, _, a := img.At(PanelMargin+100, PanelMargin+30).RGBA(); a == 0 {
		t.Error("panel body is transparent")
	}
	if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
		t.Error("top-left margin corner should stay transparent")
	}
}

func TestLogoMarkRespectsAlpha(t *testing.T) {
	fonts := LoadFonts(52, 32, 66)
	colors := LogoColors{
		FillA:   testWhite,
		FillB:   testBlue,
		Glow:    testBlue,
		Outline: testDark,
		Shadow:  testDark,
	}

	invisible := LogoMark(110, colors, fonts.Logo, 0, 1)
	for _, p := range invisible.Pix {
		if p != 0 {
			t.Fatal("alpha=0 logo should be fully transparent")
		}
	}

	visible := LogoMark(110, colors, fonts.Logo, 1, 1)
	opaque := 0
	for i := 3; i < len(visible.Pix); i += 4 {
		if visible.Pix[i] > 0 {
			opaque++
		}
	}
	if opaque == 0 {
		t.Error("alpha=1 logo produced no visible pixels")
	}
}

func TestHaloIsSoft(t *testing.T) {
	img := Halo(120, 80, testBlue, 0.5, 10)
	b := img.Bounds()
	if b.Dx() != 120 || b.Dy() != 80 {
		t.Fatalf("unexpected halo size %v", b)
	}

	// Center brighter than edge, both below full opacity.
	_, _, _, ca := img.At(60, 40).RGBA()
	_, _, _, ea := img.At(2, 2).RGBA()
	if ca == 0 {
		t.Error("halo center is transparent")
	}
	if ea >= ca {
		t.Error("halo edge should be dimmer than center")
	}
}

func TestTextEmptyAndOverlong(t *testing.T) {
	fonts := LoadFonts(52, 32, 66)

	empty := Text("", fonts.Title, testWhite, testDark, 1)
	if empty.Bounds().Dx() != 1 {
		t.Error("empty text should yield a minimal buffer")
	}

	// A very long title must render without panicking; it simply produces a
	// wide buffer that clips when merged.
	long := Text(strings.Repeat("DataDash ", 40), fonts.Title, testWhite, testDark, 1)
	if long.Bounds().Dx() <= 0 {
		t.Error("long text produced empty buffer")
	}

	dst := image.NewRGBA(image.Rect(0, 0, 320, 180))
	Merge(dst, long, 200, 100) // clips off the right edge
}

func TestMergeWithAlphaBounds(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	src := image.NewUniform(testWhite)
	sub := image.NewRGBA(image.Rect(0, 0, 4, 4))
	Merge(sub, src, 0, 0)

	MergeWithAlpha(dst, sub, 2, 2, 0.5)
	if _, _, _, a := dst.At(3, 3).RGBA(); a == 0 {
		t.Error("half-alpha merge left destination transparent")
	}
	MergeWithAlpha(dst, sub, 0, 0, 0) // must be a no-op
	if _, _, _, a := dst.At(0, 0).RGBA(); a != 0 {
		t.Error("zero-alpha merge painted pixels")
	}
}

func TestBadge(t *testing.T) {
	img, err := Badge("https://community.fortinet.com", 120, testDark, testWhite)
	if err != nil {
		t.Fatalf("Badge failed: %v", err)
	}
	if img.Bounds().Dx() != 120 {
		t.Errorf("unexpected badge size %v", img.Bounds())
	}
}

func TestLoadFontsNeverNil(t *testing.T) {
	fonts := LoadFonts(52, 32, 66)
	if fonts.Title == nil || fonts.Subtitle == nil || fonts.Logo == nil {
		t.Fatal("LoadFonts returned a nil face")
	}
}
