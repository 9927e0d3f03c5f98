package main

import "strings"

// Board is the immutable grid of runes that makes up a program. Rows may
// have different lengths; there is no wraparound.
type Board struct {
	rows  [][]rune
	width int
}

// LoadBoard builds a board from program text. A single leading blank line
// is dropped, since programs are routinely written as here-documents that
// start with a newline; so is the empty row after a trailing newline.
func LoadBoard(src string) Board {
	if i := strings.IndexByte(src, '\n'); i >= 0 && strings.TrimSpace(src[:i]) == "" {
		src = src[i+1:]
	}
	src = strings.TrimSuffix(src, "\n")

	var b Board
	if src == "" {
		return b
	}
	lines := strings.Split(src, "\n")
	b.rows = make([][]rune, len(lines))
	for i, line := range lines {
		b.rows[i] = []rune(strings.TrimSuffix(line, "\r"))
		if n := len(b.rows[i]); n > b.width {
			b.width = n
		}
	}
	return b
}

// At returns the rune at pos, or an AddressError if pos is off the board.
func (b Board) At(pos Vec) (rune, error) {
	if pos.Y < 0 || pos.Y >= len(b.rows) {
		return 0, AddressError{pos}
	}
	row := b.rows[pos.Y]
	if pos.X < 0 || pos.X >= len(row) {
		return 0, AddressError{pos}
	}
	return row[pos.X], nil
}

// Height returns the number of rows.
func (b Board) Height() int { return len(b.rows) }

// Width returns the length of the longest row.
func (b Board) Width() int { return b.width }

// Row returns the runes of row y, or nil if there is no such row.
func (b Board) Row(y int) []rune {
	if y < 0 || y >= len(b.rows) {
		return nil
	}
	return b.rows[y]
}

func (b Board) String() string {
	var sb strings.Builder
	for _, row := range b.rows {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}
	return sb.String()
}
