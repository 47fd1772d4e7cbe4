package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != " " {
				t.Fatalf("New screen should be blank, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, "X")
	if s.Get(5, 5) != "X" {
		t.Errorf("Get(5, 5) = %q, expected \"X\"", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, "A")
	s.Set(100, 0, "A")
	s.Set(0, -1, "A")
	s.Set(0, 100, "A")

	if s.Get(-1, 0) != " " {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenWideGlyph(t *testing.T) {
	s := NewScreen(6, 1)
	s.SetColored(1, 0, "🔥", ColorBrightRed)

	if s.Get(1, 0) != "🔥" {
		t.Errorf("Get(1, 0) = %q, expected fire glyph", s.Get(1, 0))
	}
	if !s.GetCell(2, 0).IsContinuation() {
		t.Error("Cell after a wide glyph should be a continuation")
	}
	if got := s.Row(0); got != " 🔥   " {
		t.Errorf("Row(0) = %q, expected %q", got, " 🔥   ")
	}

	// Overwriting the continuation removes the whole glyph
	s.Set(2, 0, "x")
	if got := s.Row(0); got != "  x   " {
		t.Errorf("Row(0) after overwrite = %q, expected %q", got, "  x   ")
	}
}

func TestScreenWideGlyphClippedAtEdge(t *testing.T) {
	s := NewScreen(4, 1)
	s.Set(3, 0, "💣")

	if got := s.Row(0); got != "    " {
		t.Errorf("Wide glyph at the last column should be dropped, row = %q", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColored(2, 1, "Hello", ColorDefault)

	for i, ch := range "Hello" {
		if s.Get(2+i, 1) != string(ch) {
			t.Errorf("DrawTextColored: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	s.DrawTextColored(18, 0, "Hello", ColorDefault)
	if s.Get(18, 0) != "H" || s.Get(19, 0) != "e" {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextKeepsGraphemes(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextColored(0, 0, "a🌶️b", ColorDefault)

	if got := s.Get(1, 0); got != "🌶️" {
		t.Errorf("Get(1, 0) = %q, expected the whole pepper glyph", got)
	}
	if got := s.Row(0); !strings.HasPrefix(got, "a🌶️b") {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorCyan)

	x := (20 - 2) / 2
	if s.Get(x, 2) != "H" || s.Get(x+1, 2) != "i" {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
	if s.GetCell(x, 2).Color != ColorCyan {
		t.Error("DrawTextCentered should keep the color")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(3, 2, "Z")
	s.DrawBox(1, 1, 5, 4)

	corners := map[[2]int]string{
		{1, 1}: "┌",
		{5, 1}: "┐",
		{1, 4}: "└",
		{5, 4}: "┘",
	}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("corner at %v = %q, expected %q", pos, got, want)
		}
	}
	if s.Get(3, 2) != " " {
		t.Error("DrawBox should blank the interior")
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawHLine(2, 2, 5, "-", ColorGray)

	for x := 2; x < 7; x++ {
		if s.Get(x, 2) != "-" {
			t.Errorf("DrawHLine: expected '-' at (%d, 2), got %q", x, s.Get(x, 2))
		}
		if s.GetCell(x, 2).Color != ColorGray {
			t.Errorf("DrawHLine: expected gray at (%d, 2)", x)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawTextColored(0, 0, "AAAAA", ColorDefault)
	s.DrawTextColored(0, 1, "BBBBB", ColorDefault)
	s.DrawTextColored(0, 2, "CCCCC", ColorDefault)

	if got, want := s.String(), "AAAAA\nBBBBB\nCCCCC"; got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColored(0, 0, "Hello", ColorDefault)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if row := s.Row(0); strings.TrimSpace(row) != "" {
		t.Errorf("Resize should clear content, row 0 = %q", row)
	}
}
