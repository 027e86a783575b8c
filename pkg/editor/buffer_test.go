package editor

import "testing"

func TestInsertRune(t *testing.T) {
	b := NewBuffer("")
	for _, r := range "héllo" {
		b.InsertRune(r)
	}

	if b.Content() != "héllo" {
		t.Errorf("Content() = %q, want %q", b.Content(), "héllo")
	}
	if b.Cursor() != 5 {
		t.Errorf("Cursor() = %d, want 5 (rune offset, not byte)", b.Cursor())
	}
}

func TestInsertRuneMidBuffer(t *testing.T) {
	b := NewBuffer("ab")
	b.MoveLeft()
	b.InsertRune('x')

	if b.Content() != "axb" {
		t.Errorf("Content() = %q, want %q", b.Content(), "axb")
	}
	if b.Cursor() != 2 {
		t.Errorf("Cursor() = %d, want 2", b.Cursor())
	}
}

func TestDeleteBackward(t *testing.T) {
	b := NewBuffer("héllo")
	b.DeleteBackward()

	if b.Content() != "héll" {
		t.Errorf("Content() = %q, want %q", b.Content(), "héll")
	}
	if b.Cursor() != 4 {
		t.Errorf("Cursor() = %d, want 4", b.Cursor())
	}
}

func TestDeleteBackwardAtStartIsNoop(t *testing.T) {
	b := NewBuffer("abc")
	b.MoveStart()
	b.DeleteBackward()

	if b.Content() != "abc" || b.Cursor() != 0 {
		t.Errorf("delete at offset 0 changed state: content %q cursor %d", b.Content(), b.Cursor())
	}
}

func TestDeleteBackwardEmptyBuffer(t *testing.T) {
	b := NewBuffer("")
	b.DeleteBackward()

	if b.Content() != "" || b.Cursor() != 0 {
		t.Errorf("delete on empty buffer changed state: content %q cursor %d", b.Content(), b.Cursor())
	}
}

func TestHorizontalMovementClamps(t *testing.T) {
	b := NewBuffer("ab")

	b.MoveRight()
	if b.Cursor() != 2 {
		t.Errorf("Cursor() = %d, want clamp at 2", b.Cursor())
	}

	b.MoveLeft()
	b.MoveLeft()
	b.MoveLeft()
	if b.Cursor() != 0 {
		t.Errorf("Cursor() = %d, want clamp at 0", b.Cursor())
	}
}

func TestMoveRightAcrossNewline(t *testing.T) {
	b := NewBuffer("a\nb")
	b.MoveStart()
	b.MoveRight()
	b.MoveRight()

	line, col := b.LineCol()
	if line != 1 || col != 0 {
		t.Errorf("LineCol() = (%d, %d), want (1, 0) after crossing the newline", line, col)
	}
}

func TestMoveDownClampsToShortLine(t *testing.T) {
	// Cursor at the end of "abcdef" (offset 6, column 6); the next line has
	// only two characters, so the cursor snaps to its end: 6+1+2 = 9.
	b := NewBuffer("abcdef\nxy")
	b.cursor = 6

	b.MoveDown()
	if b.Cursor() != 9 {
		t.Errorf("Cursor() = %d, want 9", b.Cursor())
	}
}

func TestMoveUpClampsToShortLine(t *testing.T) {
	b := NewBuffer("xy\nabcdef")
	b.MoveEnd()

	b.MoveUp()
	if b.Cursor() != 2 {
		t.Errorf("Cursor() = %d, want 2 (end of short first line)", b.Cursor())
	}
}

func TestVerticalMoveHasNoStickyColumn(t *testing.T) {
	// Moving up from column 6 through a 2-char line and back down lands at
	// the clamped column 2, not the original 6.
	b := NewBuffer("abcdef\nxy\nabcdef")
	b.MoveEnd()

	b.MoveUp()
	b.MoveDown()

	line, col := b.LineCol()
	if line != 2 || col != 2 {
		t.Errorf("LineCol() = (%d, %d), want (2, 2): the clamped column is not remembered", line, col)
	}
}

func TestMoveUpOnFirstLineIsNoop(t *testing.T) {
	b := NewBuffer("abc\ndef")
	b.MoveStart()
	b.MoveRight()

	b.MoveUp()
	if b.Cursor() != 1 {
		t.Errorf("Cursor() = %d, want 1 (no-op on first line)", b.Cursor())
	}
}

func TestMoveDownOnLastLineIsNoop(t *testing.T) {
	b := NewBuffer("abc\ndef")
	b.MoveEnd()

	b.MoveDown()
	if b.Cursor() != 7 {
		t.Errorf("Cursor() = %d, want 7 (no-op on last line)", b.Cursor())
	}
}

func TestVerticalMoveWithUnicode(t *testing.T) {
	b := NewBuffer("日本語のメモ\nab")
	b.cursor = 6 // end of first line, column 6 in runes

	b.MoveDown()
	if b.Cursor() != 9 {
		t.Errorf("Cursor() = %d, want 9 (6 runes + newline + clamp to 2)", b.Cursor())
	}
}

func TestMoveStartEnd(t *testing.T) {
	b := NewBuffer("abc")

	b.MoveStart()
	if b.Cursor() != 0 {
		t.Errorf("MoveStart: Cursor() = %d, want 0", b.Cursor())
	}

	b.MoveEnd()
	if b.Cursor() != 3 {
		t.Errorf("MoveEnd: Cursor() = %d, want 3", b.Cursor())
	}
}

func TestSetContentClampsCursor(t *testing.T) {
	b := NewBuffer("a long line of text")
	b.MoveEnd()
	b.SetContent("ab")

	if b.Cursor() != 2 {
		t.Errorf("Cursor() = %d, want clamp to new length 2", b.Cursor())
	}
}

func TestLineCol(t *testing.T) {
	tests := []struct {
		name   string
		cursor int
		line   int
		col    int
	}{
		{"start", 0, 0, 0},
		{"mid first line", 2, 0, 2},
		{"end of first line", 3, 0, 3},
		{"start of second line", 4, 1, 0},
		{"end of buffer", 7, 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer("abc\ndef")
			b.cursor = tt.cursor
			line, col := b.LineCol()
			if line != tt.line || col != tt.col {
				t.Errorf("LineCol() = (%d, %d), want (%d, %d)", line, col, tt.line, tt.col)
			}
		})
	}
}
