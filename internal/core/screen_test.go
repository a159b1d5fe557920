package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(10, 5)
	if s.Width() != 10 || s.Height() != 5 {
		t.Errorf("dimensions = %dx%d, want 10x5", s.Width(), s.Height())
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("new screen not blank at (%d,%d): %q", x, y, s.Get(x, y))
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '@')
	if s.Get(3, 2) != '@' {
		t.Errorf("Get(3,2) = %q, want '@'", s.Get(3, 2))
	}

	// Out-of-bounds writes are silently dropped.
	s.Set(-1, 0, 'X')
	s.Set(10, 0, 'X')
	s.Set(0, -1, 'X')
	s.Set(0, 5, 'X')

	// Out-of-bounds reads return space.
	if s.Get(-1, 0) != ' ' || s.Get(10, 0) != ' ' {
		t.Error("out-of-bounds Get should return space")
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetColored(1, 1, '♦', ColorBrightRed)

	cell := s.GetCell(1, 1)
	if cell.Rune != '♦' || cell.Color != ColorBrightRed {
		t.Errorf("GetCell(1,1) = %+v, want {♦ bright red}", cell)
	}
	if got := s.GetCell(9, 9); got.Rune != ' ' || got.Color != ColorDefault {
		t.Errorf("out-of-bounds GetCell = %+v, want blank default", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetColored(2, 2, 'X', ColorBrightBlue)
	s.Clear()

	cell := s.GetCell(2, 2)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("Clear left %+v at (2,2)", cell)
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(10, 6)
	s.FillRect(2, 1, 3, 2, '#')

	for y := 1; y <= 2; y++ {
		for x := 2; x <= 4; x++ {
			if s.Get(x, y) != '#' {
				t.Errorf("(%d,%d) = %q, want '#'", x, y, s.Get(x, y))
			}
		}
	}
	if s.Get(1, 1) != ' ' || s.Get(5, 1) != ' ' || s.Get(2, 3) != ' ' {
		t.Error("FillRect spilled outside the area")
	}

	// A fill overflowing the buffer clips instead of panicking.
	s.FillRect(8, 4, 5, 5, '*')
	if s.Get(9, 5) != '*' {
		t.Error("clipped fill should still cover in-bounds cells")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hello")

	if s.Row(1) != "  hello   " {
		t.Errorf("Row(1) = %q", s.Row(1))
	}

	// Text running off the right edge is clipped.
	s.DrawText(7, 0, "world")
	if s.Row(0) != "       wor" {
		t.Errorf("clipped Row(0) = %q", s.Row(0))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)
	s.DrawTextCentered(1, "abc")
	if s.Row(1) != "    abc    " {
		t.Errorf("Row(1) = %q", s.Row(1))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(8, 5)
	s.DrawBox(1, 1, 5, 3)

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' {
		t.Error("top corners wrong")
	}
	if s.Get(1, 3) != '└' || s.Get(5, 3) != '┘' {
		t.Error("bottom corners wrong")
	}
	if s.Get(3, 1) != '─' || s.Get(3, 3) != '─' {
		t.Error("horizontal edges wrong")
	}
	if s.Get(1, 2) != '│' || s.Get(5, 2) != '│' {
		t.Error("vertical edges wrong")
	}
	if s.Get(3, 2) != ' ' {
		t.Error("box interior should stay empty")
	}
}

func TestScreenDrawLines(t *testing.T) {
	s := NewScreen(8, 6)

	s.DrawHLine(1, 2, 4, '=')
	if s.Row(2) != " ====   " {
		t.Errorf("Row(2) = %q", s.Row(2))
	}

	s.DrawVLine(6, 1, 3, '|')
	for y := 1; y <= 3; y++ {
		if s.Get(6, y) != '|' {
			t.Errorf("(6,%d) = %q, want '|'", y, s.Get(6, y))
		}
	}
	if s.Get(6, 4) != ' ' {
		t.Error("DrawVLine overshot its length")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String = %q, want %q", got, want)
	}
	if strings.Count(s.String(), "\n") != 1 {
		t.Error("String should join rows with single newlines")
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "ab")

	if s.Row(0) != "ab  " {
		t.Errorf("Row(0) = %q", s.Row(0))
	}
	// Out-of-bounds rows come back as blank, full-width strings.
	if s.Row(-1) != "    " || s.Row(2) != "    " {
		t.Error("out-of-bounds Row should be all spaces")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawText(0, 0, "keep")
	s.SetColored(1, 1, 'c', ColorBrightGreen)

	// Shrink preserves the top-left region.
	s.Resize(4, 2)
	if s.Width() != 4 || s.Height() != 2 {
		t.Fatalf("dimensions after shrink = %dx%d", s.Width(), s.Height())
	}
	if s.Row(0) != "keep" {
		t.Errorf("Row(0) after shrink = %q", s.Row(0))
	}
	if cell := s.GetCell(1, 1); cell.Rune != 'c' || cell.Color != ColorBrightGreen {
		t.Errorf("color lost on shrink: %+v", cell)
	}

	// Enlarge preserves content and blanks the new cells.
	s.Resize(8, 3)
	if s.Row(0) != "keep    " {
		t.Errorf("Row(0) after enlarge = %q", s.Row(0))
	}
	if s.Get(7, 2) != ' ' {
		t.Error("new cells should be blank")
	}
}
