// Package cellraster converts flat binary cell buffers (one record per
// grid position: character code plus foreground/background RGB) into
// draw calls on a 2D drawing surface.
//
// This package contains:
//   - Color and cell types
//   - The wire format decoder/encoder for cell buffers
//   - The rasterizer, which batches draw operations by color
//
// Toolkit-specific packages (gtk, qt, tcell, ansi) provide drawing
// surfaces and frame painters built on this core package.
package cellraster

// Color is a 24-bit RGB color as carried by the cell-buffer wire format.
type Color struct {
	R, G, B uint8
}

// RGB creates a color from its red, green, blue components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Predefined colors
var (
	Black = Color{R: 0, G: 0, B: 0}
	White = Color{R: 255, G: 255, B: 255}

	DefaultForeground = Color{R: 212, G: 212, B: 212}
	DefaultBackground = Color{R: 30, G: 30, B: 30}
)

// Hex returns the color as a lowercase hex string like "#rrggbb".
// Each channel is zero-padded to two digits.
func (c Color) Hex() string {
	return "#" + hexByte(c.R) + hexByte(c.G) + hexByte(c.B)
}

func hexByte(b uint8) string {
	const hex = "0123456789abcdef"
	return string([]byte{hex[b>>4], hex[b&0x0F]})
}

// ParseHex parses a hex color string in "#rrggbb" or "#rgb" format.
func ParseHex(s string) (Color, bool) {
	if len(s) == 0 || s[0] != '#' {
		return Color{}, false
	}
	s = s[1:]
	var r, g, b uint8
	switch len(s) {
	case 3:
		r = parseHexNibble(s[0]) * 17
		g = parseHexNibble(s[1]) * 17
		b = parseHexNibble(s[2]) * 17
	case 6:
		r = parseHexNibble(s[0])<<4 | parseHexNibble(s[1])
		g = parseHexNibble(s[2])<<4 | parseHexNibble(s[3])
		b = parseHexNibble(s[4])<<4 | parseHexNibble(s[5])
	default:
		return Color{}, false
	}
	return Color{R: r, G: g, B: b}, true
}

func parseHexNibble(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return 0
	}
}
