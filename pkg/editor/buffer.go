// Package editor implements the in-memory document model for a log entry
// under composition: a Unicode-aware text buffer with a single cursor, and
// the autocomplete engine that derives tag suggestions from the cursor
// context.
package editor

import "strings"

// Buffer owns the entry text being composed and a single cursor. The cursor
// is a count of Unicode scalar values preceding it, always within
// [0, CharCount()]. Addressing by rune rather than byte keeps every
// operation correct on multi-byte text.
type Buffer struct {
	content []rune
	cursor  int
}

// NewBuffer returns a buffer initialized with content and the cursor at the
// end.
func NewBuffer(content string) *Buffer {
	runes := []rune(content)
	return &Buffer{content: runes, cursor: len(runes)}
}

// Content returns the buffer text.
func (b *Buffer) Content() string {
	return string(b.content)
}

// Cursor returns the cursor offset in runes.
func (b *Buffer) Cursor() int {
	return b.cursor
}

// CharCount returns the number of runes in the buffer.
func (b *Buffer) CharCount() int {
	return len(b.content)
}

// SetContent replaces the buffer text and clamps the cursor into range.
func (b *Buffer) SetContent(content string) {
	b.content = []rune(content)
	if b.cursor > len(b.content) {
		b.cursor = len(b.content)
	}
}

// InsertRune splices r at the cursor and advances the cursor past it.
func (b *Buffer) InsertRune(r rune) {
	b.content = append(b.content[:b.cursor], append([]rune{r}, b.content[b.cursor:]...)...)
	b.cursor++
}

// InsertString splices s at the cursor and advances the cursor past it.
func (b *Buffer) InsertString(s string) {
	runes := []rune(s)
	b.content = append(b.content[:b.cursor], append(runes, b.content[b.cursor:]...)...)
	b.cursor += len(runes)
}

// DeleteBackward removes the rune immediately before the cursor. It is a
// no-op with the cursor at offset 0.
func (b *Buffer) DeleteBackward() {
	if b.cursor == 0 {
		return
	}
	b.content = append(b.content[:b.cursor-1], b.content[b.cursor:]...)
	b.cursor--
}

// MoveLeft moves the cursor one rune left, clamped at 0. Newlines are
// ordinary characters: moving left across one lands at the end of the
// previous line.
func (b *Buffer) MoveLeft() {
	if b.cursor > 0 {
		b.cursor--
	}
}

// MoveRight moves the cursor one rune right, clamped at the buffer end.
func (b *Buffer) MoveRight() {
	if b.cursor < len(b.content) {
		b.cursor++
	}
}

// MoveStart jumps to offset 0.
func (b *Buffer) MoveStart() {
	b.cursor = 0
}

// MoveEnd jumps past the last rune.
func (b *Buffer) MoveEnd() {
	b.cursor = len(b.content)
}

// MoveUp moves the cursor to the previous line, keeping the column where
// possible and otherwise snapping to the end of the shorter line. No column
// is remembered across consecutive vertical moves: moving through a short
// line loses the original column. No-op on the first line.
func (b *Buffer) MoveUp() {
	line, col := b.LineCol()
	if line == 0 {
		return
	}

	lines := b.lines()
	target := min(col, len(lines[line-1]))
	b.cursor = offsetOfLine(lines, line-1) + target
}

// MoveDown is symmetric with MoveUp against the next line. No-op on the
// last line.
func (b *Buffer) MoveDown() {
	line, col := b.LineCol()
	lines := b.lines()
	if line >= len(lines)-1 {
		return
	}

	target := min(col, len(lines[line+1]))
	b.cursor = offsetOfLine(lines, line+1) + target
}

// LineCol returns the cursor's 0-based line index and rune column, derived
// from the text preceding the cursor.
func (b *Buffer) LineCol() (line, col int) {
	col = 0
	for _, r := range b.content[:b.cursor] {
		if r == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}
	return line, col
}

// lines splits the content on newlines, keeping empty lines.
func (b *Buffer) lines() [][]rune {
	parts := strings.Split(string(b.content), "\n")
	lines := make([][]rune, len(parts))
	for i, p := range parts {
		lines[i] = []rune(p)
	}
	return lines
}

// offsetOfLine returns the rune offset of the first character of line idx,
// counting one rune per separating newline.
func offsetOfLine(lines [][]rune, idx int) int {
	offset := 0
	for i := 0; i < idx; i++ {
		offset += len(lines[i]) + 1
	}
	return offset
}
