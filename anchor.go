package textsvg

import (
	"fmt"
	"strings"
)

// HorizontalAnchor selects which horizontal point of the text's
// bounding box aligns to the caller-supplied X origin.
type HorizontalAnchor uint8

const (
	AnchorLeft HorizontalAnchor = iota
	AnchorCenter
	AnchorRight
)

// String returns the anchor keyword.
func (h HorizontalAnchor) String() string {
	switch h {
	case AnchorLeft:
		return "left"
	case AnchorCenter:
		return "center"
	case AnchorRight:
		return "right"
	default:
		return fmt.Sprintf("HorizontalAnchor(%d)", uint8(h))
	}
}

// VerticalAnchor selects which vertical point of the text's bounding
// box aligns to the caller-supplied Y origin.
type VerticalAnchor uint8

const (
	AnchorBaseline VerticalAnchor = iota
	AnchorTop
	AnchorBottom
	AnchorMiddle
)

// String returns the anchor keyword.
func (v VerticalAnchor) String() string {
	switch v {
	case AnchorBaseline:
		return "baseline"
	case AnchorTop:
		return "top"
	case AnchorBottom:
		return "bottom"
	case AnchorMiddle:
		return "middle"
	default:
		return fmt.Sprintf("VerticalAnchor(%d)", uint8(v))
	}
}

var (
	horizontalKeywords = []struct {
		word   string
		anchor HorizontalAnchor
	}{
		{"left", AnchorLeft},
		{"center", AnchorCenter},
		{"right", AnchorRight},
	}

	verticalKeywords = []struct {
		word   string
		anchor VerticalAnchor
	}{
		{"baseline", AnchorBaseline},
		{"top", AnchorTop},
		{"bottom", AnchorBottom},
		{"middle", AnchorMiddle},
	}
)

// ParseAnchor extracts the horizontal and vertical anchor keywords
// from a free-form string. Matching is case-insensitive and by
// substring, not token: "rightmiddle" parses the same as
// "right middle". When several keywords occur, the one appearing
// earliest in the string wins. Missing keywords default to
// AnchorLeft and AnchorBaseline.
func ParseAnchor(anchor string) (HorizontalAnchor, VerticalAnchor) {
	s := strings.ToLower(anchor)

	h := AnchorLeft
	best := -1
	for _, kw := range horizontalKeywords {
		if i := strings.Index(s, kw.word); i >= 0 && (best < 0 || i < best) {
			h = kw.anchor
			best = i
		}
	}

	v := AnchorBaseline
	best = -1
	for _, kw := range verticalKeywords {
		if i := strings.Index(s, kw.word); i >= 0 && (best < 0 || i < best) {
			v = kw.anchor
			best = i
		}
	}

	return h, v
}

// xOffset returns the horizontal origin adjustment for a text of the
// given width.
func (h HorizontalAnchor) xOffset(width float64) float64 {
	switch h {
	case AnchorLeft:
		return 0
	case AnchorCenter:
		return -width / 2
	case AnchorRight:
		return -width
	}
	// Unreachable via ParseAnchor; only a cast can get here.
	panic(&InvalidAnchorError{Keyword: h.String()})
}

// yOffset returns the vertical origin adjustment for a text with the
// given pixel ascender and total height.
func (v VerticalAnchor) yOffset(ascender, height float64) float64 {
	switch v {
	case AnchorBaseline:
		return -ascender
	case AnchorTop:
		return 0
	case AnchorMiddle:
		return -height / 2
	case AnchorBottom:
		return -height
	}
	panic(&InvalidAnchorError{Keyword: v.String()})
}
