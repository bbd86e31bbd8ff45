package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/longyuxi/yinsh"
)

// Board glyphs. Rings are uppercase, markers lowercase; color carries the
// rest of the distinction.
const (
	glyphWhiteRing   = 'W'
	glyphWhiteMarker = 'w'
	glyphBlackRing   = 'B'
	glyphBlackMarker = 'b'
	glyphFree        = '·'
	glyphHint        = '+'
)

// Canvas geometry. Columns sit four characters apart; each step up a column
// is two rows, and adjacent columns are offset by one row, which yields the
// hexagonal stagger. The vertical key is 2y-x, spanning -3..15 across the
// board, drawn below a letter row and per-column row labels.
const (
	canvasRows = 22
	canvasCols = 43
)

func pointRow(c yinsh.Coord) int { return 2 + (15 - (2*c.Y - c.X)) }
func pointCol(c yinsh.Coord) int { return 4 * (c.X - 1) }

// buildBoardCanvas lays out the position as a plain rune grid. origin, when
// set, is bracketed; hint coordinates are drawn as landing marks.
func buildBoardCanvas(board yinsh.Board, origin *yinsh.Coord, hints []yinsh.Coord) [][]rune {
	canvas := make([][]rune, canvasRows)
	for i := range canvas {
		canvas[i] = make([]rune, canvasCols)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	// Column letters along the top.
	for x := 1; x <= 11; x++ {
		canvas[0][pointCol(yinsh.Coord{X: x, Y: 1})] = rune('a' + x - 1)
	}

	// Track each column's lowest and highest row so the edge labels can sit
	// just beyond them.
	lowest := map[int]yinsh.Coord{}
	highest := map[int]yinsh.Coord{}
	for _, c := range yinsh.BoardCoordinates() {
		if lo, ok := lowest[c.X]; !ok || c.Y < lo.Y {
			lowest[c.X] = c
		}
		if hi, ok := highest[c.X]; !ok || c.Y > hi.Y {
			highest[c.X] = c
		}

		ch := glyphFree
		if e, ok := board.ElementAt(c); ok {
			switch {
			case e.IsRing() && e.Owner == yinsh.White:
				ch = glyphWhiteRing
			case e.IsRing():
				ch = glyphBlackRing
			case e.Owner == yinsh.White:
				ch = glyphWhiteMarker
			default:
				ch = glyphBlackMarker
			}
		}
		canvas[pointRow(c)][pointCol(c)] = ch
	}

	// Row numbers above and below each column.
	for x := 1; x <= 11; x++ {
		writeLabel(canvas, pointRow(highest[x])-1, pointCol(highest[x]), highest[x].Y)
		writeLabel(canvas, pointRow(lowest[x])+1, pointCol(lowest[x]), lowest[x].Y)
	}

	for _, h := range hints {
		canvas[pointRow(h)][pointCol(h)] = glyphHint
	}
	if origin != nil {
		canvas[pointRow(*origin)][pointCol(*origin)-1] = '['
		canvas[pointRow(*origin)][pointCol(*origin)+1] = ']'
	}

	return canvas
}

func writeLabel(canvas [][]rune, row, col, n int) {
	for i, d := range intToDigits(n) {
		canvas[row][col+i] = d
	}
}

func intToDigits(n int) []rune {
	if n >= 10 {
		return []rune{'1', rune('0' + n - 10)}
	}
	return []rune{rune('0' + n)}
}

// renderBoardPane styles the canvas for display.
func (m *Model) renderBoardPane() string {
	state := m.match.State()

	var origin *yinsh.Coord
	var hints []yinsh.Coord
	if slide, ok := state.Phase.(yinsh.SlideRing); ok {
		origin = &slide.Origin
		if m.showHints {
			hints = yinsh.ValidDestinations(state.Board, slide.Origin)
		}
	}

	canvas := buildBoardCanvas(state.Board, origin, hints)

	var b strings.Builder
	for i, row := range canvas {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(m.styleCanvasRow(row))
	}
	return b.String()
}

// styleCanvasRow colors a canvas row rune by rune, batching runs of the
// same style to keep the output compact.
func (m *Model) styleCanvasRow(row []rune) string {
	var b strings.Builder
	var run []rune
	var runStyle *lipgloss.Style

	flush := func() {
		if len(run) == 0 {
			return
		}
		if runStyle == nil {
			b.WriteString(string(run))
		} else {
			b.WriteString(runStyle.Render(string(run)))
		}
		run = run[:0]
	}

	for _, ch := range row {
		style := m.canvasStyle(ch)
		if !sameStyle(style, runStyle) {
			flush()
			runStyle = style
		}
		run = append(run, ch)
	}
	flush()
	return strings.TrimRight(b.String(), " ")
}

func (m *Model) canvasStyle(ch rune) *lipgloss.Style {
	switch ch {
	case glyphWhiteRing, glyphWhiteMarker:
		return &m.whiteStyle
	case glyphBlackRing, glyphBlackMarker:
		return &m.blackStyle
	case glyphHint:
		return &SuccessStyle
	case '[', ']':
		return &WarningStyle
	case glyphFree:
		return &InfoStyle
	case ' ':
		return nil
	default: // labels
		return &InfoStyle
	}
}

func sameStyle(a, b *lipgloss.Style) bool {
	return a == b
}

// PlainBoard renders the position without styling, for non-interactive
// output.
func PlainBoard(board yinsh.Board) string {
	return canvasString(buildBoardCanvas(board, nil, nil))
}

// canvasString renders the plain, unstyled canvas.
func canvasString(canvas [][]rune) string {
	lines := make([]string, len(canvas))
	for i, row := range canvas {
		lines[i] = strings.TrimRight(string(row), " ")
	}
	return strings.Join(lines, "\n")
}

// destinationList renders slide destinations in notation order for the
// sidebar hint block.
func destinationList(board yinsh.Board, origin yinsh.Coord) string {
	dests := yinsh.ValidDestinations(board, origin)
	names := make([]string, len(dests))
	for i, d := range dests {
		names[i] = FormatCoord(d)
	}
	slices.Sort(names)
	return strings.Join(names, " ")
}
