package ui

import (
	"testing"
)

func TestGlyphForKnownNames(t *testing.T) {
	for _, name := range IconNames() {
		if GlyphFor(name) == "" {
			t.Errorf("no glyph for %q", name)
		}
	}
}

func TestGlyphForUnknownNameFallsBack(t *testing.T) {
	// Unrecognized icon names come from hand-edited imports; they render
	// as the miscellaneous glyph, never an error.
	if got := GlyphFor("NotARealIcon"); got != fallbackGlyph {
		t.Fatalf("GlyphFor(unknown) = %q, want %q", got, fallbackGlyph)
	}
	if got := GlyphFor(""); got != fallbackGlyph {
		t.Fatalf("GlyphFor(empty) = %q, want %q", got, fallbackGlyph)
	}
}

func TestColorForUnknownTokenFallsBack(t *testing.T) {
	if ColorFor("text-chartreuse-900") != ColorFor("text-gray-500") {
		t.Fatal("unknown token did not fall back to gray")
	}
}
