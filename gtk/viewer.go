package cellrastergtk

import (
	"sync"

	"github.com/gotk3/gotk3/cairo"
	"github.com/gotk3/gotk3/glib"
	"github.com/gotk3/gotk3/gtk"

	"github.com/phroun/cellraster"
)

// Viewer is a GTK drawing area that displays the most recent frame.
// SetFrame may be called from any goroutine; repaints are queued onto
// the GTK main loop.
type Viewer struct {
	mu sync.Mutex

	drawingArea *gtk.DrawingArea
	frame       *cellraster.Frame
	opts        cellraster.Options
	fontFamily  string
}

// NewViewer creates a viewer for frames of the given grid size
func NewViewer(cols, rows int, opts cellraster.Options) (*Viewer, error) {
	drawingArea, err := gtk.DrawingAreaNew()
	if err != nil {
		return nil, err
	}

	v := &Viewer{
		drawingArea: drawingArea,
		opts:        opts,
		fontFamily:  "Monospace",
	}

	// Size the widget to the grid using the rasterizer's cell metrics
	cellW, cellH := opts.Metrics()
	drawingArea.SetSizeRequest(cols*cellW, rows*cellH)
	drawingArea.Connect("draw", v.onDraw)

	return v, nil
}

// Widget returns the underlying GTK drawing area
func (v *Viewer) Widget() *gtk.DrawingArea {
	return v.drawingArea
}

// SetFontFamily overrides the monospace font family used for glyphs
func (v *Viewer) SetFontFamily(family string) {
	v.mu.Lock()
	v.fontFamily = family
	v.mu.Unlock()
}

// SetFrame replaces the displayed frame and queues a repaint
func (v *Viewer) SetFrame(f *cellraster.Frame) {
	v.mu.Lock()
	v.frame = f
	v.mu.Unlock()

	glib.IdleAdd(func() {
		v.drawingArea.QueueDraw()
	})
}

func (v *Viewer) onDraw(da *gtk.DrawingArea, cr *cairo.Context) bool {
	v.mu.Lock()
	frame := v.frame
	fontFamily := v.fontFamily
	opts := v.opts
	v.mu.Unlock()

	if frame == nil {
		return false
	}

	surface := NewSurface(cr)
	surface.SetFontFamily(fontFamily)
	cellraster.NewRasterizer(surface, opts).Paint(frame)
	return false
}
