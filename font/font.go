package font

// GlyphID identifies a glyph within a font.
type GlyphID uint16

// Glyph is one positioned glyph in a sequence produced by Font.Glyphs.
// Metric fields are in font design units; scale by fontSize/unitsPerEm
// to convert to pixels.
type Glyph struct {
	// ID is the glyph index within the font.
	ID GlyphID

	// Rune is the source rune this glyph was chosen for. For ligatures
	// produced by a shaping backend it is the first rune of the cluster.
	Rune rune

	// AdvanceWidth is the horizontal advance in design units.
	// Zero means the glyph contributes nothing to the total width.
	AdvanceWidth float64

	// XOffset and YOffset are positioning adjustments in design units.
	// They are zero unless a shaping backend is active.
	XOffset float64
	YOffset float64
}

// ShapingOptions carries per-call layout options into outline
// production. Nil fields mean "use the default": kerning on, no extra
// spacing. The defaults match the engine's width computation so that
// measured and rendered text agree.
type ShapingOptions struct {
	// Kerning enables kerning-pair adjustments. Nil means true.
	Kerning *bool

	// LetterSpacing adds LetterSpacing*fontSize pixels after every
	// glyph. A set but zero value behaves like unset.
	LetterSpacing *float64

	// Tracking adds Tracking/1000*fontSize pixels after every glyph.
	// Ignored when LetterSpacing is set and nonzero.
	Tracking *float64
}

// KerningEnabled resolves the tri-state Kerning field.
func (o ShapingOptions) KerningEnabled() bool {
	if o.Kerning == nil {
		return true
	}
	return *o.Kerning
}

// SpacingPerGlyph returns the extra pixels appended after each glyph at
// the given font size. LetterSpacing takes priority over Tracking; the
// choice is made once per call, not per glyph.
func (o ShapingOptions) SpacingPerGlyph(fontSize float64) float64 {
	if o.LetterSpacing != nil && *o.LetterSpacing != 0 {
		return *o.LetterSpacing * fontSize
	}
	if o.Tracking != nil && *o.Tracking != 0 {
		return *o.Tracking / 1000 * fontSize
	}
	return 0
}

// Font is the capability the engine consumes: font-wide metrics, glyph
// lookup, kerning, and outline-path production. *Source implements it;
// tests may substitute synthetic fonts.
//
// Implementations must be read-only after construction so that calls
// are safe from multiple goroutines.
type Font interface {
	// UnitsPerEm returns the design-unit grid size (always > 0).
	UnitsPerEm() int

	// Ascender returns the distance from the baseline to the top of
	// the font, in design units (positive).
	Ascender() float64

	// Descender returns the distance from the baseline to the bottom
	// of the font, in design units (conventionally negative).
	Descender() float64

	// Glyphs returns the ordered glyph sequence for the text.
	Glyphs(text string) []Glyph

	// Kern returns the kerning adjustment between two adjacent glyphs
	// in design units, or 0 when the font defines no such pair.
	Kern(g0, g1 GlyphID) float64

	// OutlinePath returns SVG path data for the text rendered at
	// fontSize pixels with the pen starting at (x, y), y being the
	// baseline. Empty text yields an empty string.
	OutlinePath(text string, x, y, fontSize float64, opts ShapingOptions) string
}
