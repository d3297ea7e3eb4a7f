package font

import "errors"

// Sentinel errors for the font package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("font: empty font data")

	// ErrMissingGlyph is returned by lookups for glyphs the font does
	// not contain.
	ErrMissingGlyph = errors.New("font: missing glyph")
)
