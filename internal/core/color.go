package core

import (
	"slices"
	"strings"
)

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for scene elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

var colorNames = map[string]Color{
	"":               ColorDefault,
	"default":        ColorDefault,
	"red":            ColorRed,
	"green":          ColorGreen,
	"yellow":         ColorYellow,
	"blue":           ColorBlue,
	"magenta":        ColorMagenta,
	"cyan":           ColorCyan,
	"white":          ColorWhite,
	"bright-red":     ColorBrightRed,
	"bright-green":   ColorBrightGreen,
	"bright-yellow":  ColorBrightYellow,
	"bright-blue":    ColorBrightBlue,
	"bright-magenta": ColorBrightMagenta,
	"bright-cyan":    ColorBrightCyan,
	"bright-white":   ColorBrightWhite,
	"orange":         ColorOrange,
	"gray":           ColorGray,
	"grey":           ColorGray,
}

// ParseColor looks up a color by name, case-insensitively.
func ParseColor(name string) (Color, bool) {
	c, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// String returns the canonical name of the color.
func (c Color) String() string {
	var names []string
	for name, v := range colorNames {
		if v == c && name != "" && name != "grey" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "unknown"
	}
	slices.Sort(names)
	return names[0]
}

// Palette is the rotation of colors handed out to shapes without one.
var Palette = []Color{
	ColorBrightCyan,
	ColorBrightYellow,
	ColorBrightMagenta,
	ColorBrightGreen,
	ColorOrange,
	ColorBrightBlue,
}

// PaletteColor returns the i-th palette color, wrapping around.
func PaletteColor(i int) Color {
	if i < 0 {
		i = -i
	}
	return Palette[i%len(Palette)]
}
