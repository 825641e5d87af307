package cellraster

import (
	"encoding/binary"
	"errors"
	"testing"
)

func testFrame(t *testing.T) *Frame {
	t.Helper()
	f := NewFrame(3, 2)
	f.Set(0, 0, Cell{Char: 'A', Foreground: Color{255, 0, 0}, Background: Color{0, 0, 0}})
	f.Set(1, 0, Cell{Char: '界', Foreground: Color{1, 2, 3}, Background: Color{4, 5, 6}})
	f.Set(2, 0, EmptyCellWithColors(Color{255, 255, 255}, Color{0, 0, 255}))
	f.Set(0, 1, Cell{Char: 'z', Foreground: Color{9, 8, 7}, Background: Color{6, 5, 4}})
	return f
}

// TestEncodeDecodeRoundTrip verifies both traversal orders round-trip
func TestEncodeDecodeRoundTrip(t *testing.T) {
	f := testFrame(t)

	for _, order := range []Order{RowMajor, ColumnMajor} {
		data := EncodeFrame(f, order)
		if len(data) != 3*2*RecordSize {
			t.Fatalf("%v: encoded length = %d, want %d", order, len(data), 3*2*RecordSize)
		}

		decoded, err := DecodeFrameWithOptions(data, 3, 2, DecodeOptions{Order: order})
		if err != nil {
			t.Fatalf("%v: decode failed: %v", order, err)
		}
		for y := 0; y < 2; y++ {
			for x := 0; x < 3; x++ {
				if decoded.At(x, y) != f.At(x, y) {
					t.Errorf("%v: cell (%d,%d) = %+v, want %+v", order, x, y, decoded.At(x, y), f.At(x, y))
				}
			}
		}
	}
}

// TestRecordLayout verifies the wire layout of one record:
// 4-byte little-endian character code, then fg RGB, then bg RGB.
func TestRecordLayout(t *testing.T) {
	cell := Cell{Char: '界', Foreground: Color{10, 20, 30}, Background: Color{40, 50, 60}}
	rec := AppendRecord(nil, cell)

	if len(rec) != RecordSize {
		t.Fatalf("record length = %d, want %d", len(rec), RecordSize)
	}
	if code := binary.LittleEndian.Uint32(rec[0:4]); code != uint32('界') {
		t.Errorf("character code = %#x, want %#x", code, uint32('界'))
	}
	want := []byte{10, 20, 30, 40, 50, 60}
	for i, b := range want {
		if rec[4+i] != b {
			t.Errorf("color byte %d = %d, want %d", 4+i, rec[4+i], b)
		}
	}
}

// TestColumnMajorMapping verifies record index to grid position mapping
func TestColumnMajorMapping(t *testing.T) {
	// 2x2 grid with distinct characters, encoded column-major:
	// records are (0,0), (0,1), (1,0), (1,1)
	chars := []rune{'a', 'b', 'c', 'd'}
	var data []byte
	for _, r := range chars {
		data = AppendRecord(data, Cell{Char: r})
	}

	f, err := DecodeFrameWithOptions(data, 2, 2, DecodeOptions{Order: ColumnMajor})
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if f.At(0, 0).Char != 'a' || f.At(0, 1).Char != 'b' || f.At(1, 0).Char != 'c' || f.At(1, 1).Char != 'd' {
		t.Errorf("column-major grid = %c %c / %c %c, want a c / b d",
			f.At(0, 0).Char, f.At(1, 0).Char, f.At(0, 1).Char, f.At(1, 1).Char)
	}
}

// TestFormatError verifies length validation happens before decoding
func TestFormatError(t *testing.T) {
	for _, n := range []int{0, RecordSize - 1, RecordSize*6 - 1, RecordSize*6 + 1} {
		_, err := DecodeFrame(make([]byte, n), 3, 2)
		var fe *FormatError
		if !errors.As(err, &fe) {
			t.Fatalf("length %d: got %v, want FormatError", n, err)
		}
		if fe.Expected != 3*2*RecordSize || fe.Actual != n {
			t.Errorf("length %d: FormatError = %+v", n, fe)
		}
	}
}

// TestDecodeInvalidDimensions verifies non-positive grids are rejected
func TestDecodeInvalidDimensions(t *testing.T) {
	if _, err := DecodeFrame(nil, 0, 2); err == nil {
		t.Error("expected error for zero cols")
	}
	if _, err := DecodeFrame(nil, 2, -1); err == nil {
		t.Error("expected error for negative rows")
	}
}

// TestDecodeInvalidRune verifies invalid scalar handling in both policies
func TestDecodeInvalidRune(t *testing.T) {
	// Surrogate (0xD800) and out-of-range (0x110000) codes
	for _, code := range []uint32{0xD800, 0x110000} {
		data := make([]byte, RecordSize)
		binary.LittleEndian.PutUint32(data[0:4], code)

		_, err := DecodeFrame(data, 1, 1)
		var de *DecodeError
		if !errors.As(err, &de) {
			t.Fatalf("code %#x: got %v, want DecodeError", code, err)
		}
		if de.Code != code || de.Offset != 0 {
			t.Errorf("code %#x: DecodeError = %+v", code, de)
		}

		f, err := DecodeFrameWithOptions(data, 1, 1, DecodeOptions{ReplaceInvalid: true})
		if err != nil {
			t.Fatalf("code %#x: replace policy failed: %v", code, err)
		}
		if f.At(0, 0).Char != '�' {
			t.Errorf("code %#x: replaced char = %q, want U+FFFD", code, f.At(0, 0).Char)
		}
	}
}

// TestDecodeErrorReportsOffset verifies the offset points at the bad record
func TestDecodeErrorReportsOffset(t *testing.T) {
	f := NewFrame(2, 1)
	data := EncodeFrame(f, RowMajor)
	binary.LittleEndian.PutUint32(data[RecordSize:RecordSize+4], 0x110000)

	_, err := DecodeFrame(data, 2, 1)
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("got %v, want DecodeError", err)
	}
	if de.Offset != RecordSize {
		t.Errorf("offset = %d, want %d", de.Offset, RecordSize)
	}
}
