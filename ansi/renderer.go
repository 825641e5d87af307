// Package ansi renders cell frames to a host terminal (or any
// io.Writer) using ANSI escape sequences with truecolor SGR codes.
// Successive frames are rendered differentially: only cells that
// changed since the previous frame are rewritten.
package ansi

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"

	"github.com/phroun/cellraster"
)

// Options configures a renderer
type Options struct {
	OffsetX    int  // Left edge of the grid on the host terminal, in cells
	OffsetY    int  // Top edge of the grid on the host terminal, in cells
	ShowCursor bool // Re-show the cursor below the grid after each paint
}

// Renderer paints frames to an io.Writer as ANSI escape sequences
type Renderer struct {
	mu   sync.Mutex
	out  io.Writer
	opts Options

	// Previous frame for differential rendering
	lastCells [][]cellraster.Cell

	// Output buffer for batching writes
	output strings.Builder
}

// NewRenderer creates a renderer writing to out
func NewRenderer(out io.Writer, opts Options) *Renderer {
	return &Renderer{
		out:  out,
		opts: opts,
	}
}

// HostSize returns the size of the host terminal in cells.
// Falls back to 80x24 when stdout is not a terminal.
func HostSize() (cols, rows int) {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || cols <= 0 || rows <= 0 {
		return 80, 24
	}
	return cols, rows
}

// ForceFullRedraw clears the cached state so the next paint rewrites
// every cell
func (r *Renderer) ForceFullRedraw() {
	r.mu.Lock()
	r.lastCells = nil
	r.mu.Unlock()
}

// PaintFrame writes the frame to the output, rewriting only cells that
// changed since the previous frame.
func (r *Renderer) PaintFrame(f *cellraster.Frame) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cols, rows := f.Cols(), f.Rows()

	prevCells := r.lastCells
	needsFullRender := prevCells == nil || len(prevCells) != rows

	newCells := make([][]cellraster.Cell, rows)
	for y := 0; y < rows; y++ {
		newCells[y] = make([]cellraster.Cell, cols)
	}

	r.output.Reset()

	// Hide cursor during rendering to prevent flicker
	r.output.WriteString("\033[?25l")

	// Current colors for SGR optimization
	var currentFg, currentBg cellraster.Color
	haveAttr := false
	wrote := false

	for y := 0; y < rows; y++ {
		rowChanged := needsFullRender
		if !needsFullRender && len(prevCells[y]) != cols {
			rowChanged = true
		}

		for x := 0; x < cols; x++ {
			cell := f.At(x, y)
			newCells[y][x] = cell

			if !rowChanged && prevCells[y][x] == cell {
				continue
			}

			// Move cursor to position
			fmt.Fprintf(&r.output, "\033[%d;%dH", r.opts.OffsetY+y+1, r.opts.OffsetX+x+1)

			// Emit colors only when they differ from the current state
			var sgr []string
			if !haveAttr || cell.Foreground != currentFg {
				sgr = append(sgr, sgrForeground(cell.Foreground))
				currentFg = cell.Foreground
			}
			if !haveAttr || cell.Background != currentBg {
				sgr = append(sgr, sgrBackground(cell.Background))
				currentBg = cell.Background
			}
			haveAttr = true

			if len(sgr) > 0 {
				r.output.WriteString("\033[")
				r.output.WriteString(strings.Join(sgr, ";"))
				r.output.WriteString("m")
			}

			if cell.Char == 0 || cell.Char == ' ' {
				r.output.WriteRune(' ')
			} else {
				r.output.WriteRune(cell.Char)
			}
			wrote = true
		}
	}

	// Reset attributes after painting any cells
	if wrote {
		r.output.WriteString("\033[0m")
	}

	// Position and re-show the cursor below the grid if configured
	if r.opts.ShowCursor {
		fmt.Fprintf(&r.output, "\033[%d;%dH", r.opts.OffsetY+rows+1, r.opts.OffsetX+1)
		r.output.WriteString("\033[?25h")
	}

	if _, err := io.WriteString(r.out, r.output.String()); err != nil {
		return err
	}

	r.lastCells = newCells
	return nil
}

// ShowCursor re-shows the host terminal's cursor. Call it when done
// painting so the terminal is left usable; paints hide the cursor to
// prevent flicker.
func (r *Renderer) ShowCursor() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, err := io.WriteString(r.out, "\033[?25h")
	return err
}

// sgrForeground returns the truecolor SGR parameter for a foreground color
func sgrForeground(c cellraster.Color) string {
	return fmt.Sprintf("38;2;%d;%d;%d", c.R, c.G, c.B)
}

// sgrBackground returns the truecolor SGR parameter for a background color
func sgrBackground(c cellraster.Color) string {
	return fmt.Sprintf("48;2;%d;%d;%d", c.R, c.G, c.B)
}
