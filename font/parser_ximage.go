package font

import (
	"fmt"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser implements Parser using golang.org/x/image/font/opentype.
type ximageParser struct{}

// Parse implements Parser.Parse.
func (p *ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font: failed to parse font: %w", err)
	}
	return &ximageParsedFont{font: f}, nil
}

// ximageParsedFont implements ParsedFont on sfnt.Font.
//
// Design-unit metrics are obtained by querying the font at
// ppem == unitsPerEm with hinting off, so one font unit maps to one
// pixel and no rounding is introduced.
type ximageParsedFont struct {
	font *sfnt.Font
}

// Name implements ParsedFont.Name.
func (f *ximageParsedFont) Name() string {
	if name, err := f.font.Name(nil, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if full, err := f.font.Name(nil, sfnt.NameIDFull); err == nil && full != "" {
		return full
	}
	return ""
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *ximageParsedFont) UnitsPerEm() int {
	return int(f.font.UnitsPerEm())
}

// Ascender implements ParsedFont.Ascender.
func (f *ximageParsedFont) Ascender() float64 {
	var buf sfnt.Buffer
	m, err := f.font.Metrics(&buf, f.upemFixed(), xfont.HintingNone)
	if err != nil {
		return 0
	}
	return fixedToFloat64(m.Ascent)
}

// Descender implements ParsedFont.Descender.
// sfnt reports descent as a positive distance below the baseline; the
// conventional signed form is negative.
func (f *ximageParsedFont) Descender() float64 {
	var buf sfnt.Buffer
	m, err := f.font.Metrics(&buf, f.upemFixed(), xfont.HintingNone)
	if err != nil {
		return 0
	}
	return -fixedToFloat64(m.Descent)
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *ximageParsedFont) GlyphIndex(r rune) GlyphID {
	var buf sfnt.Buffer
	idx, err := f.font.GlyphIndex(&buf, r)
	if err != nil {
		return 0
	}
	return GlyphID(idx)
}

// GlyphAdvance implements ParsedFont.GlyphAdvance.
func (f *ximageParsedFont) GlyphAdvance(g GlyphID) float64 {
	var buf sfnt.Buffer
	advance, err := f.font.GlyphAdvance(&buf, sfnt.GlyphIndex(g), f.upemFixed(), xfont.HintingNone)
	if err != nil {
		return 0
	}
	return fixedToFloat64(advance)
}

// Kern implements ParsedFont.Kern. Fonts without a kern table, or
// pairs the table does not define, yield 0.
func (f *ximageParsedFont) Kern(g0, g1 GlyphID) float64 {
	var buf sfnt.Buffer
	kern, err := f.font.Kern(&buf, sfnt.GlyphIndex(g0), sfnt.GlyphIndex(g1), f.upemFixed(), xfont.HintingNone)
	if err != nil {
		return 0
	}
	return fixedToFloat64(kern)
}

// GlyphSegments implements ParsedFont.GlyphSegments.
func (f *ximageParsedFont) GlyphSegments(g GlyphID, ppem float64) []Segment {
	var buf sfnt.Buffer
	raw, err := f.font.LoadGlyph(&buf, sfnt.GlyphIndex(g), fixed.Int26_6(ppem*64), nil)
	if err != nil || len(raw) == 0 {
		return nil
	}

	segments := make([]Segment, 0, len(raw))
	for _, seg := range raw {
		out := Segment{}
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			out.Op = SegmentMoveTo
			out.Args[0] = fixedPoint(seg.Args[0])
		case sfnt.SegmentOpLineTo:
			out.Op = SegmentLineTo
			out.Args[0] = fixedPoint(seg.Args[0])
		case sfnt.SegmentOpQuadTo:
			out.Op = SegmentQuadTo
			out.Args[0] = fixedPoint(seg.Args[0])
			out.Args[1] = fixedPoint(seg.Args[1])
		case sfnt.SegmentOpCubeTo:
			out.Op = SegmentCubeTo
			out.Args[0] = fixedPoint(seg.Args[0])
			out.Args[1] = fixedPoint(seg.Args[1])
			out.Args[2] = fixedPoint(seg.Args[2])
		default:
			continue
		}
		segments = append(segments, out)
	}
	return segments
}

// upemFixed returns unitsPerEm as a 26.6 fixed-point ppem value.
func (f *ximageParsedFont) upemFixed() fixed.Int26_6 {
	return fixed.Int26_6(f.font.UnitsPerEm()) << 6
}

// fixedPoint converts a fixed.Point26_6 to a Point.
func fixedPoint(p fixed.Point26_6) Point {
	return Point{
		X: fixedToFloat64(p.X),
		Y: fixedToFloat64(p.Y),
	}
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
