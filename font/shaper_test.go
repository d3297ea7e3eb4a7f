package font

import (
	"math"
	"strings"
	"testing"
)

func TestShapingBasicLatin(t *testing.T) {
	src := loadTestSource(t, WithShaping())

	tests := []struct {
		name    string
		text    string
		wantLen int
	}{
		{"single char", "A", 1},
		{"word", "Hello", 5},
		{"with space", "Hello World", 11},
		{"numbers", "12345", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			glyphs := src.Glyphs(tt.text)
			if len(glyphs) != tt.wantLen {
				t.Fatalf("Glyphs(%q): got %d glyphs, want %d", tt.text, len(glyphs), tt.wantLen)
			}
			for i, g := range glyphs {
				if g.AdvanceWidth <= 0 {
					t.Errorf("glyph %d in %q: AdvanceWidth=%f, want > 0", i, tt.text, g.AdvanceWidth)
				}
			}
		})
	}
}

func TestShapingAdvancesMatchUnshaped(t *testing.T) {
	plain := loadTestSource(t)
	shaped := loadTestSource(t, WithShaping())

	// For plain Latin without kerning pairs the shaped and unshaped
	// advances come from the same hmtx table and must agree closely.
	const text = "mill"
	sum := func(glyphs []Glyph) float64 {
		total := 0.0
		for _, g := range glyphs {
			total += g.AdvanceWidth
		}
		return total
	}

	p := sum(plain.Glyphs(text))
	s := sum(shaped.Glyphs(text))
	if p <= 0 || s <= 0 {
		t.Fatalf("degenerate advance sums: plain=%f shaped=%f", p, s)
	}
	if diff := math.Abs(p-s) / p; diff > 0.05 {
		t.Errorf("shaped advance sum %f deviates %f%% from unshaped %f", s, diff*100, p)
	}
}

func TestShapingDisablesKernLookup(t *testing.T) {
	src := loadTestSource(t, WithShaping())

	glyphs := src.Glyphs("AV")
	if len(glyphs) != 2 {
		t.Fatalf("got %d glyphs, want 2", len(glyphs))
	}

	// Shaped advances already carry GPOS kerning; the pair lookup
	// must contribute nothing on top.
	if kern := src.Kern(glyphs[0].ID, glyphs[1].ID); kern != 0 {
		t.Errorf("Kern() = %f under shaping, want 0", kern)
	}
}

func TestShapingOutlinePath(t *testing.T) {
	src := loadTestSource(t, WithShaping())

	d := src.OutlinePath("Hello", 0, 100, 72, ShapingOptions{})
	if d == "" {
		t.Fatal("OutlinePath is empty under shaping")
	}
	if !strings.HasPrefix(d, "M") {
		t.Errorf("path data starts with %q, want M", d[:1])
	}
}

func TestDetectScriptSkipsSpace(t *testing.T) {
	runes := []rune("  X")
	if got := detectScript(runes); got != detectScript([]rune("X")) {
		t.Errorf("leading spaces changed script detection: %v", got)
	}
}
