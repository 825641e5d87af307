package cellraster

// Surface is the drawing target the rasterizer paints onto. Coordinates
// are in pixels; DrawText positions the text baseline. Implementations
// are expected to keep the fill and text colors as current state until
// they are changed again.
type Surface interface {
	// SetFont selects a monospace font sized to the given pixel height
	SetFont(pixelSize int)
	// SetFillColor sets the current fill color for FillRect
	SetFillColor(c Color)
	// FillRect fills a rectangle with the current fill color
	FillRect(x, y, w, h int)
	// SetTextColor sets the current text color for DrawText
	SetTextColor(c Color)
	// DrawText draws a string with its baseline at the given position
	DrawText(text string, x, y int)
}

// DefaultCellWidth is the cell pixel width used when Options leaves it unset.
// Cell height defaults to twice the width, matching the aspect of a
// monospace font sized to the cell height.
const DefaultCellWidth = 12

// Options configures a rasterizer
type Options struct {
	CellWidth      int   // Cell width in pixels (default: 12)
	CellHeight     int   // Cell height in pixels (default: 2x CellWidth)
	Order          Order // Record order of buffers passed to PaintBuffer (default: RowMajor)
	ReplaceInvalid bool  // Substitute U+FFFD for invalid character codes instead of failing
}

// Metrics returns the cell pixel dimensions with defaults applied
func (o Options) Metrics() (w, h int) {
	w, h = o.CellWidth, o.CellHeight
	if w <= 0 {
		w = DefaultCellWidth
	}
	if h <= 0 {
		h = w * 2
	}
	return w, h
}

// Rasterizer paints decoded cell frames onto a drawing surface.
// It holds no state between paints beyond its configuration; the
// per-color batches built during Paint are discarded after each call.
type Rasterizer struct {
	surface Surface
	cellW   int
	cellH   int
	opts    Options
}

// NewRasterizer creates a rasterizer painting onto the given surface
func NewRasterizer(surface Surface, opts Options) *Rasterizer {
	cellW, cellH := opts.Metrics()
	return &Rasterizer{
		surface: surface,
		cellW:   cellW,
		cellH:   cellH,
		opts:    opts,
	}
}

// CellSize returns the configured cell pixel dimensions
func (r *Rasterizer) CellSize() (w, h int) {
	return r.cellW, r.cellH
}

// PaintBuffer decodes a raw cell buffer and paints it. The buffer
// length must equal cols*rows*RecordSize; on a format or decode error
// nothing is drawn and the error is returned.
func (r *Rasterizer) PaintBuffer(data []byte, cols, rows int) error {
	f, err := DecodeFrameWithOptions(data, cols, rows, DecodeOptions{
		Order:          r.opts.Order,
		ReplaceInvalid: r.opts.ReplaceInvalid,
	})
	if err != nil {
		return err
	}
	r.Paint(f)
	return nil
}

// Paint paints a frame onto the surface, batching by color: one fill
// color change per distinct background color, then one text color
// change per distinct foreground color. Within a color, cells are
// painted in frame order. Backgrounds are always filled; glyphs are
// skipped for blank cells.
func (r *Rasterizer) Paint(f *Frame) {
	r.surface.SetFont(r.cellH)

	backgrounds := newColorBatch()
	glyphs := newColorBatch()
	for y := 0; y < f.rows; y++ {
		for x := 0; x < f.cols; x++ {
			cell := f.cells[y*f.cols+x]
			backgrounds.add(cell.Background, x, y, 0)
			if !cell.IsBlank() {
				glyphs.add(cell.Foreground, x, y, cell.Char)
			}
		}
	}

	for _, group := range backgrounds.groups {
		r.surface.SetFillColor(group.color)
		for _, c := range group.cells {
			r.surface.FillRect(c.x*r.cellW, c.y*r.cellH, r.cellW, r.cellH)
		}
	}
	for _, group := range glyphs.groups {
		r.surface.SetTextColor(group.color)
		for _, c := range group.cells {
			r.surface.DrawText(string(c.char), c.x*r.cellW, r.baselineY(c.y))
		}
	}
}

// PaintDirect paints a frame cell by cell without batching, issuing one
// color change per draw operation. Output is identical to Paint; only
// the number of surface state changes differs.
func (r *Rasterizer) PaintDirect(f *Frame) {
	r.surface.SetFont(r.cellH)

	for y := 0; y < f.rows; y++ {
		for x := 0; x < f.cols; x++ {
			cell := f.cells[y*f.cols+x]
			r.surface.SetFillColor(cell.Background)
			r.surface.FillRect(x*r.cellW, y*r.cellH, r.cellW, r.cellH)
			if !cell.IsBlank() {
				r.surface.SetTextColor(cell.Foreground)
				r.surface.DrawText(string(cell.Char), x*r.cellW, r.baselineY(y))
			}
		}
	}
}

// baselineY returns the pixel y of the text baseline for a cell row.
// The baseline sits at 3/4 of the cell height.
func (r *Rasterizer) baselineY(y int) int {
	return y*r.cellH + r.cellH*3/4
}

// gridCell is one queued draw position within a color group
type gridCell struct {
	x, y int
	char rune // Only set for glyph batches
}

// colorGroup holds the cells queued for one distinct color, in the
// order they were encountered.
type colorGroup struct {
	color Color
	cells []gridCell
}

// colorBatch groups cells by exact color, keyed by the "#rrggbb" hex
// representation. Groups keep first-seen order so batched painting is
// deterministic.
type colorBatch struct {
	index  map[string]int
	groups []*colorGroup
}

func newColorBatch() *colorBatch {
	return &colorBatch{index: make(map[string]int)}
}

func (b *colorBatch) add(c Color, x, y int, char rune) {
	key := c.Hex()
	i, ok := b.index[key]
	if !ok {
		i = len(b.groups)
		b.index[key] = i
		b.groups = append(b.groups, &colorGroup{color: c})
	}
	g := b.groups[i]
	g.cells = append(g.cells, gridCell{x: x, y: y, char: char})
}
