// Package cellrastertcell paints cell frames onto a tcell screen.
// Unlike the pixel-space surface adapters, this painter maps grid cells
// directly to terminal cells, so no cell pixel dimensions apply.
package cellrastertcell

import (
	"github.com/gdamore/tcell/v2"

	"github.com/phroun/cellraster"
)

// Painter paints frames cell-for-cell onto a tcell screen
type Painter struct {
	screen tcell.Screen
}

// NewPainter creates a painter for the given screen
func NewPainter(screen tcell.Screen) *Painter {
	return &Painter{screen: screen}
}

// PaintFrame writes every cell of the frame to the screen and shows it
func (p *Painter) PaintFrame(f *cellraster.Frame) {
	for y := 0; y < f.Rows(); y++ {
		for x := 0; x < f.Cols(); x++ {
			cell := f.At(x, y)
			style := tcell.StyleDefault.
				Foreground(ToTcell(cell.Foreground)).
				Background(ToTcell(cell.Background))
			p.screen.SetContent(x, y, cell.Char, nil, style)
		}
	}
	p.screen.Show()
}

// PaintBuffer decodes a raw row-major cell buffer and paints it
func (p *Painter) PaintBuffer(data []byte, cols, rows int) error {
	f, err := cellraster.DecodeFrame(data, cols, rows)
	if err != nil {
		return err
	}
	p.PaintFrame(f)
	return nil
}

// ToTcell converts a cell color to a tcell RGB color
func ToTcell(c cellraster.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
