// Package font provides the font capability behind the text-to-svg engine.
//
// The rendering pipeline follows a separation of concerns:
//
//   - Source: heavyweight, shared font resource (parses TTF/OTF bytes)
//   - Parser: pluggable font parsing backend (default: golang.org/x/image)
//   - Font: the interface the engine consumes for metrics and outlines
//
// # Example usage
//
//	// Load font (do once, share across the application)
//	src, err := font.NewSourceFromFile("Roboto-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	d := src.OutlinePath("hello", 0, 72, 96, font.ShapingOptions{})
//
// # Pluggable parser backend
//
// Font parsing is abstracted through the Parser interface. By default,
// golang.org/x/image/font/opentype is used. Custom parsers can be
// registered for alternative implementations:
//
//	font.RegisterParser("myparser", myCustomParser)
//	src, err := font.NewSource(data, font.WithParser("myparser"))
//
// # Shaping
//
// By default glyphs map one-to-one from runes via the font's cmap, and
// kerning comes from the font's kern table. WithShaping switches the
// glyph sequencer to go-text/typesetting's HarfBuzz implementation,
// which resolves ligatures and GPOS positioning (including kerning and
// right-to-left scripts).
package font
