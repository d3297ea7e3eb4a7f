package textsvg

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOptionsClone(t *testing.T) {
	orig := &Options{
		FontSize:      48,
		Kerning:       Bool(false),
		LetterSpacing: Float64(0.5),
		Tracking:      Float64(120),
		Anchor:        "center middle",
		X:             10,
		Y:             -20,
		Attributes:    map[string]string{"fill": "red"},
	}

	clone := orig.Clone()
	if diff := cmp.Diff(orig, clone); diff != "" {
		t.Fatalf("clone differs from original:\n%s", diff)
	}

	// Mutating the clone must not leak into the original.
	*clone.Kerning = true
	*clone.LetterSpacing = 9
	clone.Attributes["fill"] = "blue"
	clone.X = 99

	if *orig.Kerning || *orig.LetterSpacing != 0.5 || orig.Attributes["fill"] != "red" || orig.X != 10 {
		t.Errorf("mutating the clone changed the original: %+v", orig)
	}
}

func TestOptionsCloneNil(t *testing.T) {
	var opts *Options
	clone := opts.Clone()
	if clone == nil {
		t.Fatal("Clone of nil options is nil")
	}
	if clone.FontSize != 0 || clone.Kerning != nil {
		t.Errorf("Clone of nil options is not zero: %+v", clone)
	}
}

func TestOptionsDefaults(t *testing.T) {
	var opts *Options
	if got := opts.fontSize(); got != DefaultFontSize {
		t.Errorf("nil options fontSize = %v, want %v", got, DefaultFontSize)
	}
	if got := (&Options{}).fontSize(); got != DefaultFontSize {
		t.Errorf("zero options fontSize = %v, want %v", got, DefaultFontSize)
	}
	if got := (&Options{FontSize: 14}).fontSize(); got != 14 {
		t.Errorf("fontSize = %v, want 14", got)
	}

	h, v := opts.anchor()
	if h != AnchorLeft || v != AnchorBaseline {
		t.Errorf("nil options anchor = (%v, %v), want (left, baseline)", h, v)
	}

	if !opts.shaping().KerningEnabled() {
		t.Error("nil options disable kerning")
	}
	if !(&Options{Kerning: Bool(true)}).shaping().KerningEnabled() {
		t.Error("explicit true disables kerning")
	}
	if (&Options{Kerning: Bool(false)}).shaping().KerningEnabled() {
		t.Error("explicit false enables kerning")
	}
}
