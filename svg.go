package textsvg

import (
	"math"
	"slices"
	"strings"

	"github.com/qqqqq18/text-to-svg/internal/svgpath"
)

const svgNamespaces = `xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink"`

// PathData returns raw SVG path data ("d" attribute syntax) for the
// text, positioned so the anchor-resolved origin lands on the
// caller-supplied (X, Y). The outline is produced by the font
// collaborator and passed through unvalidated.
func (e *Engine) PathData(text string, opts *Options) string {
	m := e.Metrics(text, opts)
	return e.font.OutlinePath(text, m.X, m.Baseline, opts.fontSize(), opts.shaping())
}

// Path returns a <path> element wrapping PathData. Extra attributes
// from Options.Attributes are emitted in sorted key order before d.
// Attribute values are not XML-escaped.
func (e *Engine) Path(text string, opts *Options) string {
	d := e.PathData(text, opts)

	var attrs strings.Builder
	if opts != nil {
		keys := make([]string, 0, len(opts.Attributes))
		for k := range opts.Attributes {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			attrs.WriteString(k)
			attrs.WriteString(`="`)
			attrs.WriteString(opts.Attributes[k])
			attrs.WriteString(`" `)
		}
	}
	return `<path ` + attrs.String() + `d="` + d + `"/>`
}

// SVG returns a standalone SVG document sized to the text's own
// bounding box (width and height from Metrics, ignoring any origin
// offset), containing the path element.
func (e *Engine) SVG(text string, opts *Options) string {
	m := e.Metrics(text, opts)
	return `<svg ` + svgNamespaces +
		` width="` + svgpath.Coord(m.Width) + `" height="` + svgpath.Coord(m.Height) + `">` +
		e.Path(text, opts) +
		`</svg>`
}

// DebugSVG returns an SVG document sized to bound the text including
// its origin offset, with red 1px guide lines through the origin and
// the text path on top. The caller's options are never mutated.
func (e *Engine) DebugSVG(text string, opts *Options) string {
	o := opts.Clone()
	m := e.Metrics(text, o)

	boxW := math.Max(m.X+m.Width, 0) - math.Min(m.X, 0)
	boxH := math.Max(m.Y+m.Height, 0) - math.Min(m.Y, 0)
	originX := boxW - math.Max(m.X+m.Width, 0)
	originY := boxH - math.Max(m.Y+m.Height, 0)

	// Shift the render origin so the guides land on the text's origin
	// wherever the box ends up.
	o.X += originX
	o.Y += originY

	return `<svg ` + svgNamespaces +
		` width="` + svgpath.Coord(boxW) + `" height="` + svgpath.Coord(boxH) + `">` +
		guideLine(0, originY, boxW, originY) +
		guideLine(originX, 0, originX, boxH) +
		e.Path(text, o) +
		`</svg>`
}

// guideLine returns a red hairline path from (x0, y0) to (x1, y1).
func guideLine(x0, y0, x1, y1 float64) string {
	var b svgpath.Builder
	b.MoveTo(x0, y0)
	b.LineTo(x1, y1)
	return `<path fill="none" stroke="red" stroke-width="1" d="` + b.String() + `"/>`
}
