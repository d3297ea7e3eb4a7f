package font

import (
	"github.com/qqqqq18/text-to-svg/internal/svgpath"
)

// DefaultFontSize is the pixel size used when a caller passes 0.
const DefaultFontSize = 72

// OutlinePath implements Font.OutlinePath. Glyph outlines are loaded at
// fontSize pixels per em in a y-down coordinate space, translated to
// the running pen position, and serialized as SVG path data. The pen
// advances by the same rules the engine uses to measure width, so a
// rendered path always spans the measured width.
func (s *Source) OutlinePath(text string, x, y, fontSize float64, opts ShapingOptions) string {
	s.copyCheck()
	if text == "" {
		return ""
	}
	if fontSize == 0 {
		fontSize = DefaultFontSize
	}

	scale := fontSize / float64(s.parsed.UnitsPerEm())
	kerning := opts.KerningEnabled()
	spacing := opts.SpacingPerGlyph(fontSize)

	var b svgpath.Builder
	glyphs := s.Glyphs(text)
	pen := x
	for i, g := range glyphs {
		appendGlyph(&b, s.parsed.GlyphSegments(g.ID, fontSize), pen+g.XOffset*scale, y+g.YOffset*scale)

		if g.AdvanceWidth != 0 {
			pen += g.AdvanceWidth * scale
		}
		if kerning && i < len(glyphs)-1 {
			pen += s.Kern(g.ID, glyphs[i+1].ID) * scale
		}
		pen += spacing
	}
	return b.String()
}

// appendGlyph writes one glyph's outline segments, translated by
// (dx, dy), closing each contour before the next begins.
func appendGlyph(b *svgpath.Builder, segments []Segment, dx, dy float64) {
	open := false
	for _, seg := range segments {
		switch seg.Op {
		case SegmentMoveTo:
			if open {
				b.Close()
			}
			b.MoveTo(dx+seg.Args[0].X, dy+seg.Args[0].Y)
			open = true
		case SegmentLineTo:
			b.LineTo(dx+seg.Args[0].X, dy+seg.Args[0].Y)
		case SegmentQuadTo:
			b.QuadTo(
				dx+seg.Args[0].X, dy+seg.Args[0].Y,
				dx+seg.Args[1].X, dy+seg.Args[1].Y,
			)
		case SegmentCubeTo:
			b.CubicTo(
				dx+seg.Args[0].X, dy+seg.Args[0].Y,
				dx+seg.Args[1].X, dy+seg.Args[1].Y,
				dx+seg.Args[2].X, dy+seg.Args[2].Y,
			)
		}
	}
	if open {
		b.Close()
	}
}
