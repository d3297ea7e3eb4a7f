package font

import (
	"strings"
	"testing"

	"github.com/qqqqq18/text-to-svg/internal/svgpath"
)

func TestOutlinePath(t *testing.T) {
	src := loadTestSource(t)

	tests := []struct {
		name string
		text string
	}{
		{"single char", "A"},
		{"word", "Hamburger"},
		{"with space", "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := src.OutlinePath(tt.text, 0, 100, 72, ShapingOptions{})
			if d == "" {
				t.Fatalf("OutlinePath(%q) is empty", tt.text)
			}
			if !strings.HasPrefix(d, "M") {
				t.Errorf("path data starts with %q, want M", d[:1])
			}
			if !strings.HasSuffix(d, "Z") {
				t.Errorf("path data ends with %q, want Z", d[len(d)-1:])
			}
		})
	}
}

func TestOutlinePathEmptyText(t *testing.T) {
	src := loadTestSource(t)

	if d := src.OutlinePath("", 0, 0, 72, ShapingOptions{}); d != "" {
		t.Errorf("OutlinePath(\"\") = %q, want empty", d)
	}
}

func TestOutlinePathSpaceOnly(t *testing.T) {
	src := loadTestSource(t)

	// The space glyph has an advance but no outline.
	if d := src.OutlinePath(" ", 0, 0, 72, ShapingOptions{}); d != "" {
		t.Errorf("OutlinePath(\" \") = %q, want empty", d)
	}
}

func TestOutlinePathDefaultFontSize(t *testing.T) {
	src := loadTestSource(t)

	zero := src.OutlinePath("x", 0, 0, 0, ShapingOptions{})
	def := src.OutlinePath("x", 0, 0, DefaultFontSize, ShapingOptions{})
	if zero != def {
		t.Error("fontSize 0 does not render like the default size")
	}
}

func TestOutlinePathOriginShift(t *testing.T) {
	src := loadTestSource(t)

	at0 := src.OutlinePath("A", 0, 0, 72, ShapingOptions{})
	at10 := src.OutlinePath("A", 10, 0, 72, ShapingOptions{})
	if at0 == at10 {
		t.Error("shifting the origin did not change the path data")
	}
}

func TestOutlinePathLetterSpacingWidens(t *testing.T) {
	src := loadTestSource(t)

	// More glyphs means more contours; spacing shifts every glyph
	// after the first, so the serialized paths must differ.
	plain := src.OutlinePath("AB", 0, 0, 72, ShapingOptions{})
	ls := 0.5
	spaced := src.OutlinePath("AB", 0, 0, 72, ShapingOptions{LetterSpacing: &ls})
	if plain == spaced {
		t.Error("letter spacing did not change the path data")
	}
}

func TestAppendGlyphClosesContours(t *testing.T) {
	segments := []Segment{
		{Op: SegmentMoveTo, Args: [3]Point{{X: 0, Y: 0}}},
		{Op: SegmentLineTo, Args: [3]Point{{X: 10, Y: 0}}},
		{Op: SegmentMoveTo, Args: [3]Point{{X: 20, Y: 0}}},
		{Op: SegmentQuadTo, Args: [3]Point{{X: 25, Y: 5}, {X: 30, Y: 0}}},
	}

	var b svgpath.Builder
	appendGlyph(&b, segments, 0, 0)

	want := "M0,0L10,0ZM20,0Q25,5 30,0Z"
	if got := b.String(); got != want {
		t.Errorf("serialized contours = %q, want %q", got, want)
	}
}

func TestAppendGlyphTranslates(t *testing.T) {
	segments := []Segment{
		{Op: SegmentMoveTo, Args: [3]Point{{X: 1, Y: 2}}},
		{Op: SegmentLineTo, Args: [3]Point{{X: 3, Y: 4}}},
	}

	var b svgpath.Builder
	appendGlyph(&b, segments, 100, -50)

	want := "M101,-48L103,-46Z"
	if got := b.String(); got != want {
		t.Errorf("translated contour = %q, want %q", got, want)
	}
}
