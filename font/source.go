package font

import (
	"fmt"
	"os"
)

// Source is a loaded font. One Source backs any number of concurrent
// measurement and rendering calls; it is read-only after construction.
//
// Source must not be copied after creation (enforced by copyCheck).
type Source struct {
	// addr is used for copy protection. It must point to the Source
	// itself.
	addr *Source

	// Font data
	data   []byte
	parsed ParsedFont

	// Metadata
	name string

	// sequencer resolves text to glyphs when HarfBuzz shaping is
	// enabled; nil means plain cmap lookup.
	sequencer *harfbuzzSequencer

	config sourceConfig
}

// NewSource creates a Source from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewSource(data []byte, opts ...SourceOption) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	// Copy before parsing: the parsed font keeps references into the
	// slice it was given.
	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	parser := getParser(config.parserName)
	parsed, err := parser.Parse(dataCopy)
	if err != nil {
		return nil, err
	}

	s := &Source{
		data:   dataCopy,
		parsed: parsed,
		config: config,
	}
	s.addr = s // Self-reference for copy detection
	s.name = parsed.Name()

	if config.shaping {
		s.sequencer, err = newHarfbuzzSequencer(dataCopy)
		if err != nil {
			return nil, err
		}
	}

	return s, nil
}

// NewSourceFromFile loads a Source from a font file path.
func NewSourceFromFile(path string, opts ...SourceOption) (*Source, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("font: failed to read font file: %w", err)
	}

	return NewSource(data, opts...)
}

// Name returns the font family name.
func (s *Source) Name() string {
	s.copyCheck()
	return s.name
}

// Parsed returns the parsed font for advanced operations.
func (s *Source) Parsed() ParsedFont {
	s.copyCheck()
	return s.parsed
}

// UnitsPerEm implements Font.UnitsPerEm.
func (s *Source) UnitsPerEm() int {
	s.copyCheck()
	return s.parsed.UnitsPerEm()
}

// Ascender implements Font.Ascender.
func (s *Source) Ascender() float64 {
	s.copyCheck()
	return s.parsed.Ascender()
}

// Descender implements Font.Descender.
func (s *Source) Descender() float64 {
	s.copyCheck()
	return s.parsed.Descender()
}

// Glyphs implements Font.Glyphs. Without shaping every rune maps to
// one glyph through the font's cmap; with shaping the HarfBuzz
// sequencer decides the glyph sequence (ligatures, RTL order).
func (s *Source) Glyphs(text string) []Glyph {
	s.copyCheck()
	if text == "" {
		return nil
	}

	if s.sequencer != nil {
		return s.sequencer.sequence(text, s.parsed.UnitsPerEm())
	}

	glyphs := make([]Glyph, 0, len(text))
	for _, r := range text {
		id := s.parsed.GlyphIndex(r)
		glyphs = append(glyphs, Glyph{
			ID:           id,
			Rune:         r,
			AdvanceWidth: s.parsed.GlyphAdvance(id),
		})
	}
	return glyphs
}

// Kern implements Font.Kern. When the HarfBuzz sequencer is active it
// returns 0: shaped advances already carry GPOS kerning, and adding the
// kern-table delta on top would count it twice.
func (s *Source) Kern(g0, g1 GlyphID) float64 {
	s.copyCheck()
	if s.sequencer != nil {
		return 0
	}
	return s.parsed.Kern(g0, g1)
}

// copyCheck panics if Source was copied by value.
func (s *Source) copyCheck() {
	if s.addr != s {
		panic("font: Source must not be copied by value")
	}
}

// SourceOption configures Source creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for Source.
type sourceConfig struct {
	parserName string
	shaping    bool
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		parserName: defaultParserName,
	}
}

// WithParser specifies the font parser backend.
// The default is "ximage" which uses golang.org/x/image/font/opentype.
//
// Custom parsers can be registered with RegisterParser.
func WithParser(name string) SourceOption {
	return func(c *sourceConfig) {
		c.parserName = name
	}
}

// WithShaping enables HarfBuzz text shaping via go-text/typesetting.
// Shaping resolves ligatures and complex-script positioning; kerning is
// then applied by the shaper rather than by kern-table lookup.
func WithShaping() SourceOption {
	return func(c *sourceConfig) {
		c.shaping = true
	}
}
