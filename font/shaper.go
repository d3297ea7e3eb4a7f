package font

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"
)

// harfbuzzSequencer resolves text to a glyph sequence with
// go-text/typesetting's HarfBuzz implementation. It applies ligature
// substitution, GPOS positioning (including kerning) and right-to-left
// reordering.
//
// The parsed *gtfont.Font is read-only and safe for concurrent use;
// gtfont.Face is not, so each sequence call creates its own lightweight
// Face. HarfbuzzShaper instances carry mutable buffers and are pooled.
type harfbuzzSequencer struct {
	font *gtfont.Font

	// shaperPool pools HarfbuzzShaper instances for concurrent use.
	shaperPool sync.Pool
}

// newHarfbuzzSequencer parses the font data for the shaping backend.
func newHarfbuzzSequencer(data []byte) (*harfbuzzSequencer, error) {
	face, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("font: shaping backend failed to parse font: %w", err)
	}
	return &harfbuzzSequencer{
		font: face.Font,
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}, nil
}

// sequence shapes the text at ppem == upem so that advances and
// offsets come out in design units.
func (s *harfbuzzSequencer) sequence(text string, upem int) []Glyph {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}

	dir := detectDirection(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      gtfont.NewFace(s.font),
		Size:      fixed.Int26_6(upem) << 6,
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	shaper := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := shaper.Shape(input)
	s.shaperPool.Put(shaper)

	glyphs := make([]Glyph, len(output.Glyphs))
	for i, g := range output.Glyphs {
		idx := g.TextIndex()
		var r rune
		if idx >= 0 && idx < len(runes) {
			r = runes[idx]
		}
		glyphs[i] = Glyph{
			ID:           GlyphID(uint16(g.GlyphID)), //nolint:gosec // glyph IDs are 16-bit in sfnt fonts
			Rune:         r,
			AdvanceWidth: fixedToFloat64(g.Advance),
			XOffset:      fixedToFloat64(g.XOffset),
			YOffset:      fixedToFloat64(g.YOffset),
		}
	}
	return glyphs
}

// detectDirection runs the Unicode bidi algorithm over the text and
// returns RTL when the first resolved run is right-to-left.
func detectDirection(text string) di.Direction {
	p := bidi.Paragraph{}
	if _, err := p.SetString(text, bidi.DefaultDirection(bidi.Neutral)); err != nil {
		return di.DirectionLTR
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return di.DirectionLTR
	}
	run := ordering.Run(0)
	if run.Direction() == bidi.RightToLeft {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript inspects the runes and returns the script of the first
// non-space character. Mixed-script text should be split into runs by
// the caller before shaping.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
