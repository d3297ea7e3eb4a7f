package font

// Parser is an interface for font parsing backends. This abstraction
// allows swapping the font parsing library.
//
// The default implementation uses golang.org/x/image/font/opentype.
type Parser interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont is a parsed font file as seen by a Source. All metric
// methods report design units; only GlyphSegments takes a pixel size.
type ParsedFont interface {
	// Name returns the font family name, or "" if not available.
	Name() string

	// UnitsPerEm returns the units per em for the font.
	UnitsPerEm() int

	// Ascender returns the ascender in design units (positive).
	Ascender() float64

	// Descender returns the descender in design units (negative).
	Descender() float64

	// GlyphIndex returns the glyph index for a rune, 0 if not found.
	GlyphIndex(r rune) GlyphID

	// GlyphAdvance returns the advance width in design units.
	// Returns 0 for glyphs the font does not contain.
	GlyphAdvance(g GlyphID) float64

	// Kern returns the kerning adjustment for an adjacent glyph pair
	// in design units, 0 when the font defines no such pair.
	Kern(g0, g1 GlyphID) float64

	// GlyphSegments returns the outline of a glyph scaled to ppem
	// pixels per em, in a y-down coordinate space with the origin on
	// the baseline. Returns nil for glyphs without an outline (such
	// as the space character).
	GlyphSegments(g GlyphID, ppem float64) []Segment
}

// SegmentOp is the type of outline path operation.
type SegmentOp uint8

const (
	// SegmentMoveTo starts a new contour.
	SegmentMoveTo SegmentOp = iota

	// SegmentLineTo draws a line to the target point.
	SegmentLineTo

	// SegmentQuadTo draws a quadratic Bezier curve.
	SegmentQuadTo

	// SegmentCubeTo draws a cubic Bezier curve.
	SegmentCubeTo
)

// Point is a point in an outline, in pixels.
type Point struct {
	X, Y float64
}

// Segment is one operation of a glyph outline.
//
//   - MoveTo/LineTo: Args[0] is the target point
//   - QuadTo: Args[0] is the control point, Args[1] the target
//   - CubeTo: Args[0], Args[1] are controls, Args[2] the target
type Segment struct {
	Op   SegmentOp
	Args [3]Point
}

// parserRegistry holds registered font parsers.
// The default parser is "ximage" (golang.org/x/image).
var parserRegistry = map[string]Parser{
	"ximage": &ximageParser{},
}

// defaultParserName is the name of the default parser.
const defaultParserName = "ximage"

// RegisterParser registers a custom font parser. This allows users to
// plug in an alternative font parsing library.
func RegisterParser(name string, parser Parser) {
	parserRegistry[name] = parser
}

// getParser returns the parser by name, or the default if not found.
func getParser(name string) Parser {
	if p, ok := parserRegistry[name]; ok {
		return p
	}
	return parserRegistry[defaultParserName]
}
