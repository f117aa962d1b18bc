package render

import "github.com/gdamore/tcell/v2"

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBGreen = RGB{0, 200, 83}
	RGBRed   = RGB{229, 57, 53}
	RGBWhite = RGB{236, 239, 241}
)

// Color names a palette entry. The simulation draws with names and never
// sees terminal color details.
type Color string

const (
	Black Color = "black"
	Green Color = "green"
	Red   Color = "red"
	White Color = "white"
)

// RGBOf resolves a palette name. Unknown names fall back to white so a bad
// name stays visible instead of vanishing into the background.
func RGBOf(c Color) RGB {
	switch c {
	case Black:
		return RGBBlack
	case Green:
		return RGBGreen
	case Red:
		return RGBRed
	case White:
		return RGBWhite
	default:
		return RGBWhite
	}
}

// Tcell converts to a terminal color for screen output.
func (dst RGB) Tcell() tcell.Color {
	return tcell.NewRGBColor(int32(dst.R), int32(dst.G), int32(dst.B))
}

// Scale multiplies each channel by factor (for dimmed variants)
func (dst RGB) Scale(factor float64) RGB {
	if factor <= 0 {
		return RGBBlack
	}
	if factor >= 1 {
		return dst
	}
	return RGB{
		R: uint8(float64(dst.R) * factor),
		G: uint8(float64(dst.G) * factor),
		B: uint8(float64(dst.B) * factor),
	}
}
