package ui

import (
	"image/color"
)

// The stored iconName is a symbolic key from this fixed registry; only the
// UI ever resolves it to something drawable. Unknown keys fall back to the
// miscellaneous glyph rather than erroring, which also covers hand-edited
// imports.
var iconGlyphs = map[string]string{
	"Briefcase":      "💼",
	"BookOpen":       "📖",
	"Dumbbell":       "🏋",
	"User":           "👤",
	"MoreHorizontal": "⋯",
	"Heart":          "❤",
	"Car":            "🚗",
	"Gamepad2":       "🎮",
	"Music":          "🎵",
	"Palette":        "🎨",
	"Plane":          "✈",
	"ShoppingCart":   "🛒",
	"Utensils":       "🍴",
}

const fallbackGlyph = "⋯"

// GlyphFor resolves a symbolic icon name to its glyph.
func GlyphFor(iconName string) string {
	if g, ok := iconGlyphs[iconName]; ok {
		return g
	}
	return fallbackGlyph
}

// IconNames lists the selectable icon keys in a stable order.
func IconNames() []string {
	return []string{
		"Briefcase", "BookOpen", "Dumbbell", "User", "Heart", "Car",
		"Gamepad2", "Music", "Palette", "Plane", "ShoppingCart",
		"Utensils", "MoreHorizontal",
	}
}

var colorValues = map[string]color.Color{
	"text-blue-500":   color.NRGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff},
	"text-green-500":  color.NRGBA{R: 0x22, G: 0xc5, B: 0x5e, A: 0xff},
	"text-red-500":    color.NRGBA{R: 0xef, G: 0x44, B: 0x44, A: 0xff},
	"text-purple-500": color.NRGBA{R: 0xa8, G: 0x55, B: 0xf7, A: 0xff},
	"text-yellow-500": color.NRGBA{R: 0xea, G: 0xb3, B: 0x08, A: 0xff},
	"text-pink-500":   color.NRGBA{R: 0xec, G: 0x48, B: 0x99, A: 0xff},
	"text-orange-500": color.NRGBA{R: 0xf9, G: 0x73, B: 0x16, A: 0xff},
	"text-teal-500":   color.NRGBA{R: 0x14, G: 0xb8, B: 0xa6, A: 0xff},
	"text-gray-500":   color.NRGBA{R: 0x6b, G: 0x72, B: 0x80, A: 0xff},
}

// ColorFor resolves a symbolic color token, defaulting to gray.
func ColorFor(token string) color.Color {
	if c, ok := colorValues[token]; ok {
		return c
	}
	return colorValues["text-gray-500"]
}
