package cellraster

// Frame is a decoded grid of cells for one paint. Cells are stored
// row-major regardless of the wire order the frame was decoded from.
type Frame struct {
	cols  int
	rows  int
	cells []Cell
}

// NewFrame creates a frame of the given size with every cell empty
func NewFrame(cols, rows int) *Frame {
	f := &Frame{
		cols:  cols,
		rows:  rows,
		cells: make([]Cell, cols*rows),
	}
	f.Fill(EmptyCell())
	return f
}

// Cols returns the frame width in cells
func (f *Frame) Cols() int {
	return f.cols
}

// Rows returns the frame height in cells
func (f *Frame) Rows() int {
	return f.rows
}

// At returns the cell at the given position.
// Out-of-bounds positions return an empty cell.
func (f *Frame) At(x, y int) Cell {
	if x < 0 || x >= f.cols || y < 0 || y >= f.rows {
		return EmptyCell()
	}
	return f.cells[y*f.cols+x]
}

// Set replaces the cell at the given position.
// Out-of-bounds positions are ignored.
func (f *Frame) Set(x, y int, cell Cell) {
	if x < 0 || x >= f.cols || y < 0 || y >= f.rows {
		return
	}
	f.cells[y*f.cols+x] = cell
}

// SetText writes a string into the frame starting at the given position,
// one rune per cell, clipped at the right edge.
func (f *Frame) SetText(x, y int, text string, fg, bg Color) {
	for _, r := range text {
		if x >= f.cols {
			return
		}
		f.Set(x, y, Cell{Char: r, Foreground: fg, Background: bg})
		x++
	}
}

// Fill sets every cell in the frame to the given cell
func (f *Frame) Fill(cell Cell) {
	for i := range f.cells {
		f.cells[i] = cell
	}
}
