package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/longyuxi/yinsh"
)

func TestParseCoordRoundTrip(t *testing.T) {
	for _, c := range yinsh.BoardCoordinates() {
		notation := FormatCoord(c)
		parsed, err := ParseCoord(notation)
		require.NoError(t, err, "notation %s", notation)
		assert.Equal(t, c, parsed, "notation %s", notation)
	}
}

func TestParseCoordSloppyInput(t *testing.T) {
	tests := []struct {
		input string
		want  yinsh.Coord
	}{
		{"f6", yinsh.Coord{X: 6, Y: 6}},
		{"F6", yinsh.Coord{X: 6, Y: 6}},
		{"  g7 ", yinsh.Coord{X: 7, Y: 7}},
		{"K10", yinsh.Coord{X: 11, Y: 10}},
		{"b1", yinsh.Coord{X: 2, Y: 1}},
	}

	for _, tt := range tests {
		got, err := ParseCoord(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestParseCoordRejections(t *testing.T) {
	tests := []struct {
		input   string
		wantErr string
	}{
		{"", "invalid coordinate"},
		{"f", "invalid coordinate"},
		{"f123", "invalid coordinate"},
		{"12", "invalid column"},
		{"z5", "invalid column"},
		{"f0", "invalid row"},
		{"f12", "invalid row"},
		{"fx", "invalid row"},
		{"a1", "outside the board"},  // corner cut
		{"f1", "outside the board"},  // below column f
		{"k11", "outside the board"}, // above column k
	}

	for _, tt := range tests {
		_, err := ParseCoord(tt.input)
		require.Error(t, err, "input %q", tt.input)
		assert.Contains(t, err.Error(), tt.wantErr, "input %q", tt.input)
	}
}
