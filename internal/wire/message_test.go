package wire

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/longyuxi/yinsh"
)

func midGameState() yinsh.GameState {
	board := yinsh.NewBoard().
		Place(yinsh.Coord{X: 3, Y: 3}, yinsh.Ring(yinsh.White)).
		Place(yinsh.Coord{X: 8, Y: 9}, yinsh.Ring(yinsh.Black)).
		Place(yinsh.Coord{X: 5, Y: 5}, yinsh.Marker(yinsh.White)).
		Place(yinsh.Coord{X: 5, Y: 6}, yinsh.Marker(yinsh.Black)).
		Place(yinsh.Coord{X: 6, Y: 6}, yinsh.Marker(yinsh.White))
	return yinsh.GameState{
		Active:     yinsh.Black,
		Phase:      yinsh.SlideRing{Origin: yinsh.Coord{X: 8, Y: 9}},
		Board:      board,
		ScoreWhite: 1,
		ScoreBlack: 0,
	}
}

func TestStateRoundTrip(t *testing.T) {
	t.Parallel()
	states := map[string]yinsh.GameState{
		"fresh game": yinsh.NewGame(),
		"mid slide":  midGameState(),
		"removal": {
			Active:     yinsh.White,
			Phase:      yinsh.RemoveRun{},
			Board:      yinsh.NewBoard().Place(yinsh.Coord{X: 4, Y: 4}, yinsh.Marker(yinsh.White)),
			ScoreWhite: 1,
			ScoreBlack: 1,
		},
	}
	for name, state := range states {
		t.Run(name, func(t *testing.T) {
			data := StateFromGame(state)

			raw, err := json.Marshal(data)
			require.NoError(t, err)
			var decoded StateData
			require.NoError(t, json.Unmarshal(raw, &decoded))

			got, err := decoded.ToGame()
			require.NoError(t, err)
			assert.Equal(t, state.Active, got.Active)
			assert.Equal(t, state.Phase, got.Phase)
			assert.Equal(t, state.ScoreWhite, got.ScoreWhite)
			assert.Equal(t, state.ScoreBlack, got.ScoreBlack)
			assert.True(t, got.Board.Equal(state.Board), "board changed across the wire")
		})
	}
}

func TestStateCellsAreOrdered(t *testing.T) {
	t.Parallel()
	data := StateFromGame(midGameState())
	require.Len(t, data.Cells, 5)
	for i := 1; i < len(data.Cells); i++ {
		prev, cur := data.Cells[i-1].Coord, data.Cells[i].Coord
		ordered := prev.X < cur.X || (prev.X == cur.X && prev.Y < cur.Y)
		assert.True(t, ordered, "cells out of order: %v before %v", prev, cur)
	}
}

func TestSlideOriginSurvives(t *testing.T) {
	t.Parallel()
	data := StateFromGame(midGameState())
	require.NotNil(t, data.Phase.Origin)
	assert.Equal(t, CoordData{X: 8, Y: 9}, *data.Phase.Origin)

	// A non-slide phase carries no origin field at all.
	raw, err := json.Marshal(StateFromGame(yinsh.NewGame()).Phase)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "origin")
}

func TestToGameRejectsMalformedPayloads(t *testing.T) {
	t.Parallel()
	base := StateFromGame(midGameState())

	tests := []struct {
		name   string
		mutate func(*StateData)
	}{
		{"unknown player", func(d *StateData) { d.Active = "Gray" }},
		{"unknown phase", func(d *StateData) { d.Phase.Kind = "dance" }},
		{"slide without origin", func(d *StateData) { d.Phase.Origin = nil }},
		{"unknown cell kind", func(d *StateData) { d.Cells[0].Kind = "token" }},
		{"unknown cell owner", func(d *StateData) { d.Cells[0].Owner = "Red" }},
		{"off-board cell", func(d *StateData) { d.Cells[0].Coord = CoordData{X: 1, Y: 1} }},
		{"duplicate cell", func(d *StateData) { d.Cells[1].Coord = d.Cells[0].Coord }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := base
			data.Cells = append([]Cell(nil), base.Cells...)
			phase := base.Phase
			if base.Phase.Origin != nil {
				origin := *base.Phase.Origin
				phase.Origin = &origin
			}
			data.Phase = phase

			tt.mutate(&data)
			_, err := data.ToGame()
			assert.Error(t, err)
		})
	}
}

func TestMessageEnvelope(t *testing.T) {
	t.Parallel()
	rejection := RejectionFromError(yinsh.Coord{X: 2, Y: 6}, yinsh.ErrOccupied)
	msg, err := NewMessage(MessageTypeRejection, rejection)
	require.NoError(t, err)
	assert.Equal(t, MessageTypeRejection, msg.Type)
	assert.False(t, msg.Timestamp.IsZero())

	raw, err := json.Marshal(msg)
	require.NoError(t, err)
	var decoded Message
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Equal(t, MessageTypeRejection, decoded.Type)

	var payload RejectionData
	require.NoError(t, json.Unmarshal(decoded.Data, &payload))
	assert.Equal(t, CoordData{X: 2, Y: 6}, payload.Target)
	assert.Contains(t, payload.Reason, "occupied")
}

func TestMoveMessage(t *testing.T) {
	t.Parallel()
	msg, err := NewMessage(MessageTypeMove, MoveData{Target: CoordData{X: 6, Y: 6}})
	require.NoError(t, err)

	var payload MoveData
	require.NoError(t, json.Unmarshal(msg.Data, &payload))
	assert.Equal(t, yinsh.Coord{X: 6, Y: 6}, payload.Target.ToGame())
}
