// Package cellrasterqt provides a QPainter drawing surface and a Qt
// viewer widget for painting cell frames.
package cellrasterqt

import (
	"github.com/mappu/miqt/qt"

	"github.com/phroun/cellraster"
)

// Surface adapts a Qt painter to the rasterizer's surface contract
type Surface struct {
	painter    *qt.QPainter
	fontFamily string
	fill       *qt.QColor
}

// NewSurface creates a surface drawing through the given painter
func NewSurface(painter *qt.QPainter) *Surface {
	return &Surface{
		painter:    painter,
		fontFamily: "Monospace",
	}
}

// SetFontFamily overrides the monospace font family used for glyphs
func (s *Surface) SetFontFamily(family string) {
	s.fontFamily = family
}

// SetFont selects the monospace font at the given pixel size
func (s *Surface) SetFont(pixelSize int) {
	font := qt.NewQFont6(s.fontFamily, pixelSize)
	font.SetPixelSize(pixelSize)
	s.painter.SetFont(font)
}

// SetFillColor sets the color used by subsequent fills
func (s *Surface) SetFillColor(c cellraster.Color) {
	s.fill = qt.NewQColor3(int(c.R), int(c.G), int(c.B))
}

// FillRect fills a rectangle with the current fill color
func (s *Surface) FillRect(x, y, w, h int) {
	s.painter.FillRect5(x, y, w, h, s.fill)
}

// SetTextColor sets the pen color used by subsequent text
func (s *Surface) SetTextColor(c cellraster.Color) {
	s.painter.SetPen(qt.NewQColor3(int(c.R), int(c.G), int(c.B)))
}

// DrawText draws text with its baseline at the given position
func (s *Surface) DrawText(text string, x, y int) {
	s.painter.DrawText3(x, y, text)
}
