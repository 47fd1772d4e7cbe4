package core

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Cell is a single terminal column of the screen buffer.
// A glyph wider than one column occupies its first cell; the cells it
// covers to the right are marked as continuations and render as nothing.
type Cell struct {
	Glyph        string
	Color        Color
	continuation bool
}

// Screen is a 2D glyph buffer for rendering game graphics.
// It decouples game rendering from the terminal, allowing the game to draw
// emoji and box characters while the platform handles actual display.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(width, 0),
		height: max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in columns.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in rows.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions. Content is discarded; the game
// redraws every frame.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear()
}

// Clear fills the entire screen with blank cells.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Glyph: " "}
		}
	}
}

// Set places a glyph at the given position with the default color.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, glyph string) {
	s.SetColored(x, y, glyph, ColorDefault)
}

// SetColored places a glyph at the given position.
// Wide glyphs (most emoji) claim the following columns; a glyph that does
// not fit before the right edge is dropped.
func (s *Screen) SetColored(x, y int, glyph string, c Color) {
	if y < 0 || y >= s.height || x < 0 || x >= s.width {
		return
	}
	w := GlyphWidth(glyph)
	if x+w > s.width {
		return
	}

	s.breakWide(x, y)
	s.cells[y][x] = Cell{Glyph: glyph, Color: c}
	for i := 1; i < w; i++ {
		s.breakWide(x+i, y)
		s.cells[y][x+i] = Cell{Color: c, continuation: true}
	}
}

// breakWide blanks any wide glyph that currently covers (x, y) so partial
// overwrites never leave half an emoji behind.
func (s *Screen) breakWide(x, y int) {
	row := s.cells[y]
	if !row[x].continuation && GlyphWidth(row[x].Glyph) <= 1 {
		return
	}
	start := x
	for start > 0 && row[start].continuation {
		start--
	}
	w := max(GlyphWidth(row[start].Glyph), 1)
	for i := start; i < start+w && i < s.width; i++ {
		row[i] = Cell{Glyph: " "}
	}
}

// Get returns the glyph at the given position.
// Returns a space for out-of-bounds coordinates and for continuation cells.
func (s *Screen) Get(x, y int) string {
	cell := s.GetCell(x, y)
	if cell.continuation {
		return " "
	}
	return cell.Glyph
}

// GetCell returns the full cell at the given position.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Glyph: " "}
	}
	return s.cells[y][x]
}

// IsContinuation reports whether the cell is covered by a wide glyph to its left.
func (c Cell) IsContinuation() bool {
	return c.continuation
}

// DrawTextColored writes a colored string horizontally starting at (x, y),
// one grapheme cluster per cell so emoji with modifiers stay whole.
func (s *Screen) DrawTextColored(x, y int, text string, c Color) {
	col := x
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		glyph := g.Str()
		s.SetColored(col, y, glyph, c)
		col += GlyphWidth(glyph)
	}
}

// DrawTextCentered draws colored text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string, c Color) {
	x := (s.width - runewidth.StringWidth(text)) / 2
	s.DrawTextColored(x, y, text, c)
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (s *Screen) DrawHLine(x, y, length int, glyph string, c Color) {
	for i := 0; i < length; i++ {
		s.SetColored(x+i, y, glyph, c)
	}
}

// DrawBox draws a box outline using box-drawing characters and blanks its interior.
func (s *Screen) DrawBox(x, y, w, h int) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			s.Set(col, row, " ")
		}
	}

	s.Set(x, y, "┌")
	s.Set(x+w-1, y, "┐")
	s.Set(x, y+h-1, "└")
	s.Set(x+w-1, y+h-1, "┘")
	for col := x + 1; col < x+w-1; col++ {
		s.Set(col, y, "─")
		s.Set(col, y+h-1, "─")
	}
	for row := y + 1; row < y+h-1; row++ {
		s.Set(x, row, "│")
		s.Set(x+w-1, row, "│")
	}
}

// String converts the screen buffer to a plain string.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}

// Row returns the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, cell := range s.cells[y] {
		if cell.continuation {
			continue
		}
		sb.WriteString(cell.Glyph)
	}
	return sb.String()
}

// GlyphWidth returns the number of terminal columns a glyph occupies.
func GlyphWidth(glyph string) int {
	w := runewidth.StringWidth(glyph)
	if w < 1 {
		return 1
	}
	return w
}
