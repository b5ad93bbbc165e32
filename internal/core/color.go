package core

import "strings"

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for cars, track lines and the HUD.
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

// colorNames maps config names to the bright variant, which reads better
// on dark terminals.
var colorNames = map[string]Color{
	"red":     ColorBrightRed,
	"green":   ColorBrightGreen,
	"yellow":  ColorBrightYellow,
	"blue":    ColorBrightBlue,
	"magenta": ColorBrightMagenta,
	"cyan":    ColorBrightCyan,
	"white":   ColorBrightWhite,
	"orange":  ColorOrange,
	"gray":    ColorGray,
	"grey":    ColorGray,
}

// ColorByName returns the color for a name such as "blue", ignoring case.
func ColorByName(name string) (Color, bool) {
	c, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// carColors is the rotation used for cars without a color name.
var carColors = []Color{
	ColorBrightBlue,
	ColorBrightRed,
	ColorBrightMagenta,
	ColorOrange,
	ColorBrightCyan,
}

// CarColor picks the color for the i-th car, preferring its name.
func CarColor(i int, name string) Color {
	if c, ok := ColorByName(name); ok {
		return c
	}
	if i < 0 {
		i = -i
	}
	return carColors[i%len(carColors)]
}
