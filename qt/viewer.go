package cellrasterqt

import (
	"sync"

	"github.com/mappu/miqt/qt"

	"github.com/phroun/cellraster"
)

// Viewer is a Qt widget that displays the most recent frame. SetFrame
// may be called from any goroutine; repaints are coalesced onto the Qt
// main thread by an update timer, following the miqt threading rules.
type Viewer struct {
	mu sync.Mutex

	widget      *qt.QWidget
	updateTimer *qt.QTimer
	frame       *cellraster.Frame
	needsUpdate bool
	opts        cellraster.Options
	fontFamily  string
}

// NewViewer creates a viewer for frames of the given grid size
func NewViewer(cols, rows int, opts cellraster.Options) *Viewer {
	v := &Viewer{
		widget:     qt.NewQWidget2(),
		opts:       opts,
		fontFamily: "Monospace",
	}

	cellW, cellH := opts.Metrics()
	v.widget.SetMinimumSize2(cols*cellW, rows*cellH)

	v.widget.OnPaintEvent(func(super func(event *qt.QPaintEvent), event *qt.QPaintEvent) {
		v.onPaint()
	})

	// Coalesce background-thread frame updates onto the Qt main thread (16ms ~ 60fps)
	v.updateTimer = qt.NewQTimer2(v.widget.QObject)
	v.updateTimer.OnTimeout(func() {
		v.mu.Lock()
		needsUpdate := v.needsUpdate
		v.needsUpdate = false
		v.mu.Unlock()
		if needsUpdate {
			v.widget.Update()
		}
	})
	v.updateTimer.Start(16)

	return v
}

// Widget returns the underlying Qt widget
func (v *Viewer) Widget() *qt.QWidget {
	return v.widget
}

// SetFontFamily overrides the monospace font family used for glyphs
func (v *Viewer) SetFontFamily(family string) {
	v.mu.Lock()
	v.fontFamily = family
	v.mu.Unlock()
}

// SetFrame replaces the displayed frame and schedules a repaint
func (v *Viewer) SetFrame(f *cellraster.Frame) {
	v.mu.Lock()
	v.frame = f
	v.needsUpdate = true
	v.mu.Unlock()
}

func (v *Viewer) onPaint() {
	v.mu.Lock()
	frame := v.frame
	fontFamily := v.fontFamily
	opts := v.opts
	v.mu.Unlock()

	if frame == nil {
		return
	}

	painter := qt.NewQPainter2(v.widget.QPaintDevice)
	defer painter.End()

	surface := NewSurface(painter)
	surface.SetFontFamily(fontFamily)
	cellraster.NewRasterizer(surface, opts).Paint(frame)
}
