// Package svgpath builds SVG path data ("d" attribute) strings.
package svgpath

import (
	"strconv"
	"strings"
)

// Builder accumulates path commands and serializes them to the SVG path
// mini-language. The zero value is ready to use.
//
// Coordinates are rounded to two decimal places with trailing zeros
// trimmed, so output stays compact and stable across platforms.
type Builder struct {
	buf strings.Builder
}

// MoveTo starts a new subpath at (x, y).
func (b *Builder) MoveTo(x, y float64) {
	b.buf.WriteByte('M')
	b.writePoint(x, y)
}

// LineTo draws a line to (x, y).
func (b *Builder) LineTo(x, y float64) {
	b.buf.WriteByte('L')
	b.writePoint(x, y)
}

// QuadTo draws a quadratic Bezier curve through control point (cx, cy)
// to (x, y).
func (b *Builder) QuadTo(cx, cy, x, y float64) {
	b.buf.WriteByte('Q')
	b.writePoint(cx, cy)
	b.buf.WriteByte(' ')
	b.writePoint(x, y)
}

// CubicTo draws a cubic Bezier curve through control points (c1x, c1y)
// and (c2x, c2y) to (x, y).
func (b *Builder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	b.buf.WriteByte('C')
	b.writePoint(c1x, c1y)
	b.buf.WriteByte(' ')
	b.writePoint(c2x, c2y)
	b.buf.WriteByte(' ')
	b.writePoint(x, y)
}

// Close closes the current subpath.
func (b *Builder) Close() {
	b.buf.WriteByte('Z')
}

// Empty reports whether no commands have been written.
func (b *Builder) Empty() bool {
	return b.buf.Len() == 0
}

// String returns the accumulated path data.
func (b *Builder) String() string {
	return b.buf.String()
}

func (b *Builder) writePoint(x, y float64) {
	b.buf.WriteString(Coord(x))
	b.buf.WriteByte(',')
	b.buf.WriteString(Coord(y))
}

// Coord formats a coordinate for path data: two decimal places,
// trailing zeros and a bare decimal point trimmed.
func Coord(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}
