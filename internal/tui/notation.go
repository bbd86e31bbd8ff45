package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/longyuxi/yinsh"
)

// ParseCoord parses board notation like "f6" into a coordinate. Columns run
// a-k left to right, rows 1-11 upward along each column. Parsing is
// case-insensitive and tolerates surrounding whitespace.
func ParseCoord(input string) (yinsh.Coord, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	if len(s) < 2 || len(s) > 3 {
		return yinsh.Coord{}, fmt.Errorf("invalid coordinate %q: want column a-k and row 1-11, like f6", input)
	}

	col := s[0]
	if col < 'a' || col > 'k' {
		return yinsh.Coord{}, fmt.Errorf("invalid column %q: want a-k", string(s[0]))
	}
	row, err := strconv.Atoi(s[1:])
	if err != nil {
		return yinsh.Coord{}, fmt.Errorf("invalid row %q: want 1-11", s[1:])
	}
	if row < 1 || row > 11 {
		return yinsh.Coord{}, fmt.Errorf("invalid row %d: want 1-11", row)
	}

	c := yinsh.Coord{X: int(col-'a') + 1, Y: row}
	if !yinsh.Valid(c) {
		return yinsh.Coord{}, fmt.Errorf("%s is outside the board", s)
	}
	return c, nil
}

// FormatCoord renders a coordinate in board notation, the inverse of
// ParseCoord. The coordinate must be on the board.
func FormatCoord(c yinsh.Coord) string {
	return fmt.Sprintf("%c%d", 'a'+byte(c.X)-1, c.Y)
}
