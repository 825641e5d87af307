package cellraster

import "testing"

// TestFrameAccessors verifies bounds handling on At/Set
func TestFrameAccessors(t *testing.T) {
	f := NewFrame(2, 2)
	cell := Cell{Char: 'x', Foreground: White, Background: Black}
	f.Set(1, 1, cell)

	if f.At(1, 1) != cell {
		t.Errorf("At(1,1) = %+v, want %+v", f.At(1, 1), cell)
	}
	if f.At(0, 0) != EmptyCell() {
		t.Errorf("At(0,0) = %+v, want empty cell", f.At(0, 0))
	}

	// Out-of-bounds reads return an empty cell, writes are ignored
	if f.At(-1, 0) != EmptyCell() || f.At(2, 0) != EmptyCell() {
		t.Error("out-of-bounds At did not return empty cell")
	}
	f.Set(5, 5, cell)
	f.Set(-1, -1, cell)
}

// TestFrameSetText verifies text writing clips at the right edge
func TestFrameSetText(t *testing.T) {
	f := NewFrame(3, 1)
	f.SetText(1, 0, "abc", White, Black)

	if f.At(0, 0).Char != ' ' {
		t.Errorf("cell 0 = %q, want space", f.At(0, 0).Char)
	}
	if f.At(1, 0).Char != 'a' || f.At(2, 0).Char != 'b' {
		t.Errorf("cells = %q %q, want 'a' 'b'", f.At(1, 0).Char, f.At(2, 0).Char)
	}
}
