package textsvg

import (
	"github.com/qqqqq18/text-to-svg/font"
)

// DefaultFontSize is used when Options.FontSize is zero.
const DefaultFontSize = font.DefaultFontSize

// Options controls one measurement or rendering call. The zero value
// (and a nil *Options) renders at the default font size, kerning on,
// anchored left/baseline at origin (0, 0).
//
// Kerning, LetterSpacing and Tracking are pointers so that "unset" is
// distinguishable from an explicit zero or false: kerning defaults to
// enabled only when the field is nil.
type Options struct {
	// FontSize is the render size in pixels. Zero means
	// DefaultFontSize.
	FontSize float64

	// Kerning enables kerning-pair adjustments. Nil means true.
	Kerning *bool

	// LetterSpacing adds LetterSpacing*FontSize pixels after every
	// glyph, including the last. A set but zero value behaves like
	// unset.
	LetterSpacing *float64

	// Tracking adds Tracking/1000*FontSize pixels after every glyph.
	// Ignored when LetterSpacing is set and nonzero.
	Tracking *float64

	// Anchor is a free-form anchor string; see ParseAnchor.
	Anchor string

	// X, Y is the pixel origin the anchor aligns to.
	X, Y float64

	// Attributes are extra XML attributes for the generated path
	// element, serialized in sorted key order. Values are not
	// escaped; the caller must supply XML-safe strings.
	Attributes map[string]string
}

// Bool returns a pointer to v, for filling the tri-state option
// fields.
func Bool(v bool) *bool { return &v }

// Float64 returns a pointer to v, for filling the optional numeric
// option fields.
func Float64(v float64) *float64 { return &v }

// Clone returns a deep copy of the options. Pointer fields and the
// attribute map are duplicated so mutating the clone never touches the
// original. A nil receiver yields a fresh zero Options.
func (o *Options) Clone() *Options {
	c := &Options{}
	if o == nil {
		return c
	}
	*c = *o
	if o.Kerning != nil {
		c.Kerning = Bool(*o.Kerning)
	}
	if o.LetterSpacing != nil {
		c.LetterSpacing = Float64(*o.LetterSpacing)
	}
	if o.Tracking != nil {
		c.Tracking = Float64(*o.Tracking)
	}
	if o.Attributes != nil {
		c.Attributes = make(map[string]string, len(o.Attributes))
		for k, v := range o.Attributes {
			c.Attributes[k] = v
		}
	}
	return c
}

// fontSize resolves the effective font size, nil-safe.
func (o *Options) fontSize() float64 {
	if o == nil || o.FontSize == 0 {
		return DefaultFontSize
	}
	return o.FontSize
}

// anchor resolves the anchor string, nil-safe.
func (o *Options) anchor() (HorizontalAnchor, VerticalAnchor) {
	if o == nil {
		return AnchorLeft, AnchorBaseline
	}
	return ParseAnchor(o.Anchor)
}

// origin returns the caller-supplied origin, nil-safe.
func (o *Options) origin() (x, y float64) {
	if o == nil {
		return 0, 0
	}
	return o.X, o.Y
}

// shaping converts the layout-relevant fields for the font
// collaborator. Unset fields stay nil so the collaborator applies its
// own defaults, which match this package's.
func (o *Options) shaping() font.ShapingOptions {
	if o == nil {
		return font.ShapingOptions{}
	}
	return font.ShapingOptions{
		Kerning:       o.Kerning,
		LetterSpacing: o.LetterSpacing,
		Tracking:      o.Tracking,
	}
}
