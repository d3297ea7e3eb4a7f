package textsvg

// Metrics describes where and how large a piece of text renders, in
// pixels. X and Y are the top-left render origin after anchor
// adjustment; Baseline is always Y + Ascender.
type Metrics struct {
	X        float64
	Y        float64
	Baseline float64
	Width    float64
	Height   float64

	Ascender  float64
	Descender float64
}

// Width returns the total horizontal advance of the text in pixels:
// per-glyph advances, kerning-pair adjustments (enabled by default)
// and letter spacing or tracking. Width does not depend on anchor or
// origin. An empty string measures 0.
func (e *Engine) Width(text string, opts *Options) float64 {
	fontSize := opts.fontSize()
	scale := fontSize / float64(e.font.UnitsPerEm())

	shaping := opts.shaping()
	kerning := shaping.KerningEnabled()
	spacing := shaping.SpacingPerGlyph(fontSize)

	glyphs := e.font.Glyphs(text)
	width := 0.0
	for i, g := range glyphs {
		if g.AdvanceWidth != 0 {
			width += g.AdvanceWidth * scale
		}
		if kerning && i < len(glyphs)-1 {
			width += e.font.Kern(g.ID, glyphs[i+1].ID) * scale
		}
		width += spacing
	}
	return width
}

// Height returns the font-wide line height at the given pixel size:
// (ascender - descender) scaled from design units. It does not depend
// on any text.
func (e *Engine) Height(fontSize float64) float64 {
	scale := fontSize / float64(e.font.UnitsPerEm())
	return (e.font.Ascender() - e.font.Descender()) * scale
}

// Metrics computes the full positioning metrics for the text: width,
// height, pixel ascender/descender, and the render origin after the
// anchor keywords adjust the caller-supplied X and Y.
func (e *Engine) Metrics(text string, opts *Options) Metrics {
	fontSize := opts.fontSize()
	scale := fontSize / float64(e.font.UnitsPerEm())

	width := e.Width(text, opts)
	height := e.Height(fontSize)
	ascender := e.font.Ascender() * scale
	descender := e.font.Descender() * scale

	h, v := opts.anchor()
	x, y := opts.origin()
	x += h.xOffset(width)
	y += v.yOffset(ascender, height)

	return Metrics{
		X:         x,
		Y:         y,
		Baseline:  y + ascender,
		Width:     width,
		Height:    height,
		Ascender:  ascender,
		Descender: descender,
	}
}
