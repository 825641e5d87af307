package cellraster

// Cell represents a single character cell in the grid
type Cell struct {
	Char       rune // Base character
	Foreground Color
	Background Color
}

// IsBlank returns true if the cell draws no glyph (space character).
// Blank cells still get their background filled.
func (c Cell) IsBlank() bool {
	return c.Char == ' '
}

// EmptyCell returns an empty cell with default colors
func EmptyCell() Cell {
	return Cell{
		Char:       ' ',
		Foreground: DefaultForeground,
		Background: DefaultBackground,
	}
}

// EmptyCellWithColors returns an empty cell with specified colors
func EmptyCellWithColors(fg, bg Color) Cell {
	return Cell{
		Char:       ' ',
		Foreground: fg,
		Background: bg,
	}
}
