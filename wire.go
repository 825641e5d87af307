package cellraster

import (
	"encoding/binary"
	"errors"
	"fmt"
	"unicode/utf8"
)

// RecordSize is the size in bytes of one cell record on the wire:
// a 4-byte little-endian Unicode scalar value, 3 bytes of foreground
// RGB and 3 bytes of background RGB.
const RecordSize = 10

// Order is the traversal order of cell records in a buffer
type Order int

const (
	// RowMajor orders records left to right, top to bottom
	RowMajor Order = iota
	// ColumnMajor orders records top to bottom, left to right
	ColumnMajor
)

// String returns the order name
func (o Order) String() string {
	if o == ColumnMajor {
		return "column-major"
	}
	return "row-major"
}

// FormatError indicates a buffer whose length does not match the
// expected cols*rows*RecordSize. Nothing is drawn when it is returned.
type FormatError struct {
	Cols, Rows int
	Expected   int // Expected buffer length in bytes
	Actual     int // Actual buffer length in bytes
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("cellraster: buffer is %d bytes, want %d for a %dx%d grid",
		e.Actual, e.Expected, e.Cols, e.Rows)
}

// DecodeError indicates a character code that is not a valid Unicode
// scalar value (surrogate or above U+10FFFF).
type DecodeError struct {
	Offset int    // Byte offset of the offending record
	Code   uint32 // The raw character code
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cellraster: invalid character code %#x at offset %d", e.Code, e.Offset)
}

// DecodeOptions configures frame decoding
type DecodeOptions struct {
	Order          Order // Record traversal order (default: RowMajor)
	ReplaceInvalid bool  // Substitute U+FFFD for invalid character codes instead of failing
}

// DecodeFrame decodes a row-major cell buffer into a frame.
// The buffer length must be exactly cols*rows*RecordSize.
func DecodeFrame(data []byte, cols, rows int) (*Frame, error) {
	return DecodeFrameWithOptions(data, cols, rows, DecodeOptions{})
}

// DecodeFrameWithOptions decodes a cell buffer into a frame.
// It fails with a FormatError before decoding any cell if the buffer
// length does not match the grid, and with a DecodeError on the first
// invalid character code unless ReplaceInvalid is set.
func DecodeFrameWithOptions(data []byte, cols, rows int, opts DecodeOptions) (*Frame, error) {
	if cols <= 0 || rows <= 0 {
		return nil, errors.New("cellraster: grid dimensions must be positive")
	}
	expected := cols * rows * RecordSize
	if len(data) != expected {
		return nil, &FormatError{Cols: cols, Rows: rows, Expected: expected, Actual: len(data)}
	}

	f := &Frame{
		cols:  cols,
		rows:  rows,
		cells: make([]Cell, cols*rows),
	}
	for i := 0; i < cols*rows; i++ {
		offset := i * RecordSize
		rec := data[offset : offset+RecordSize]

		code := binary.LittleEndian.Uint32(rec[0:4])
		char := rune(code)
		if !utf8.ValidRune(char) {
			if !opts.ReplaceInvalid {
				return nil, &DecodeError{Offset: offset, Code: code}
			}
			char = utf8.RuneError
		}

		cell := Cell{
			Char:       char,
			Foreground: Color{R: rec[4], G: rec[5], B: rec[6]},
			Background: Color{R: rec[7], G: rec[8], B: rec[9]},
		}

		var x, y int
		if opts.Order == ColumnMajor {
			x, y = i/rows, i%rows
		} else {
			x, y = i%cols, i/cols
		}
		f.cells[y*cols+x] = cell
	}
	return f, nil
}

// AppendRecord appends the wire encoding of a single cell to dst
func AppendRecord(dst []byte, cell Cell) []byte {
	dst = binary.LittleEndian.AppendUint32(dst, uint32(cell.Char))
	dst = append(dst, cell.Foreground.R, cell.Foreground.G, cell.Foreground.B)
	dst = append(dst, cell.Background.R, cell.Background.G, cell.Background.B)
	return dst
}

// EncodeFrame encodes a frame into a cell buffer in the given order.
// This is the producer side of the wire format; decoding the result
// with the same order yields the original frame.
func EncodeFrame(f *Frame, order Order) []byte {
	data := make([]byte, 0, f.cols*f.rows*RecordSize)
	if order == ColumnMajor {
		for x := 0; x < f.cols; x++ {
			for y := 0; y < f.rows; y++ {
				data = AppendRecord(data, f.cells[y*f.cols+x])
			}
		}
		return data
	}
	for i := range f.cells {
		data = AppendRecord(data, f.cells[i])
	}
	return data
}
