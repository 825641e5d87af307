// Package cellrastergtk provides a cairo drawing surface and a GTK
// viewer widget for painting cell frames.
package cellrastergtk

import (
	"github.com/gotk3/gotk3/cairo"

	"github.com/phroun/cellraster"
)

// Surface adapts a cairo drawing context to the rasterizer's surface
// contract. Cairo shares one source color between fills and text, so
// both color setters update the same source; the rasterizer always sets
// the relevant color before the operations that use it.
type Surface struct {
	cr         *cairo.Context
	fontFamily string
}

// NewSurface creates a surface drawing onto the given cairo context
func NewSurface(cr *cairo.Context) *Surface {
	return &Surface{
		cr:         cr,
		fontFamily: "Monospace",
	}
}

// SetFontFamily overrides the monospace font family used for glyphs
func (s *Surface) SetFontFamily(family string) {
	s.fontFamily = family
}

// SetFont selects the monospace font at the given pixel size
func (s *Surface) SetFont(pixelSize int) {
	s.cr.SelectFontFace(s.fontFamily, cairo.FONT_SLANT_NORMAL, cairo.FONT_WEIGHT_NORMAL)
	s.cr.SetFontSize(float64(pixelSize))
}

// SetFillColor sets the cairo source color for subsequent fills
func (s *Surface) SetFillColor(c cellraster.Color) {
	s.setSource(c)
}

// FillRect fills a rectangle with the current source color
func (s *Surface) FillRect(x, y, w, h int) {
	s.cr.Rectangle(float64(x), float64(y), float64(w), float64(h))
	s.cr.Fill()
}

// SetTextColor sets the cairo source color for subsequent text
func (s *Surface) SetTextColor(c cellraster.Color) {
	s.setSource(c)
}

// DrawText draws text with its baseline at the given position
func (s *Surface) DrawText(text string, x, y int) {
	s.cr.MoveTo(float64(x), float64(y))
	s.cr.ShowText(text)
}

func (s *Surface) setSource(c cellraster.Color) {
	s.cr.SetSourceRGB(
		float64(c.R)/255.0,
		float64(c.G)/255.0,
		float64(c.B)/255.0)
}
