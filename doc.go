// Package textsvg converts text strings to SVG vector path data using
// glyph outlines from a parsed font.
//
// # Overview
//
// textsvg renders text as crisp vector paths without a browser or a
// rasterizer, for document and image generators that want text-as-path
// output. Font parsing is delegated to the font subpackage; this
// package computes widths, heights and anchor-resolved positioning and
// wraps the resulting path data in SVG markup.
//
// # Quick Start
//
//	import textsvg "github.com/qqqqq18/text-to-svg"
//
//	engine, err := textsvg.New("Roboto-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	svg := engine.SVG("hello!", &textsvg.Options{
//	    FontSize: 72,
//	    Anchor:   "top",
//	})
//
// # Anchors
//
// The Anchor option is a free-form string holding up to one horizontal
// keyword (left, center, right) and one vertical keyword (baseline,
// top, middle, bottom), matched case-insensitively by substring.
// "right middle" and "rightmiddle" resolve identically. Missing
// keywords default to left and baseline.
//
// # Known limitations
//
// Attribute values from Options.Attributes and the text itself are not
// XML-escaped; the caller is responsible for supplying safe values.
package textsvg
