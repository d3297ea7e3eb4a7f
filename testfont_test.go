package textsvg

import (
	"fmt"

	"github.com/qqqqq18/text-to-svg/font"
)

// fakeFont is a synthetic font.Font with hand-picked metrics, so tests
// can assert exact pixel values. Glyph IDs are the rune values.
type fakeFont struct {
	upem      int
	ascender  float64
	descender float64

	// advances maps runes to design-unit advance widths. Runes not in
	// the map get zero advance (like a zero-width glyph).
	advances map[rune]float64

	// kerns maps adjacent glyph pairs to design-unit deltas.
	kerns map[[2]font.GlyphID]float64

	// lastOutline records the arguments of the most recent
	// OutlinePath call for pass-through assertions.
	lastOutline *outlineCall
}

type outlineCall struct {
	text     string
	x, y     float64
	fontSize float64
	opts     font.ShapingOptions
}

// newFakeFont returns the reference font used across these tests:
// 1000 units per em, ascender 800, descender -200, "A" and "V" 500
// units wide with an AV kerning pair of -50.
func newFakeFont() *fakeFont {
	return &fakeFont{
		upem:      1000,
		ascender:  800,
		descender: -200,
		advances:  map[rune]float64{'A': 500, 'V': 500, 'x': 600},
		kerns: map[[2]font.GlyphID]float64{
			{font.GlyphID('A'), font.GlyphID('V')}: -50,
		},
	}
}

func (f *fakeFont) UnitsPerEm() int    { return f.upem }
func (f *fakeFont) Ascender() float64  { return f.ascender }
func (f *fakeFont) Descender() float64 { return f.descender }

func (f *fakeFont) Glyphs(text string) []font.Glyph {
	var glyphs []font.Glyph
	for _, r := range text {
		glyphs = append(glyphs, font.Glyph{
			ID:           font.GlyphID(r),
			Rune:         r,
			AdvanceWidth: f.advances[r],
		})
	}
	return glyphs
}

func (f *fakeFont) Kern(g0, g1 font.GlyphID) float64 {
	return f.kerns[[2]font.GlyphID{g0, g1}]
}

func (f *fakeFont) OutlinePath(text string, x, y, fontSize float64, opts font.ShapingOptions) string {
	f.lastOutline = &outlineCall{text: text, x: x, y: y, fontSize: fontSize, opts: opts}
	if text == "" {
		return ""
	}
	return fmt.Sprintf("M%v,%vZ", x, y)
}
