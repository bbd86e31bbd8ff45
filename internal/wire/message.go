// Package wire defines the JSON surface shared with transports and
// rendering layers. Snapshots are field-exact: a state serialized and read
// back is the state, including a mid-slide origin and both scores.
package wire

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/longyuxi/yinsh"
)

// MessageType identifies the payload carried by a Message.
type MessageType string

const (
	MessageTypeState     MessageType = "state"
	MessageTypeRejection MessageType = "rejection"
	MessageTypeMove      MessageType = "move"
)

// Message is the envelope every payload travels in.
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewMessage creates a new message with the current timestamp.
func NewMessage(messageType MessageType, data any) (*Message, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return &Message{
		Type:      messageType,
		Data:      dataBytes,
		Timestamp: time.Now(),
	}, nil
}

// CoordData is a board coordinate on the wire.
type CoordData struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// CoordFromGame converts a coordinate for the wire.
func CoordFromGame(c yinsh.Coord) CoordData {
	return CoordData{X: c.X, Y: c.Y}
}

// ToGame converts the coordinate back.
func (d CoordData) ToGame() yinsh.Coord {
	return yinsh.Coord{X: d.X, Y: d.Y}
}

// Cell is one occupied board point.
type Cell struct {
	Coord CoordData `json:"coord"`
	Kind  string    `json:"kind"`  // "ring" or "marker"
	Owner string    `json:"owner"` // "White" or "Black"
}

// PhaseData carries the turn phase; Origin is present only mid-slide.
type PhaseData struct {
	Kind   string     `json:"kind"`
	Origin *CoordData `json:"origin,omitempty"`
}

// Phase kind strings.
const (
	PhaseKindPlaceRing   = "place_ring"
	PhaseKindPlaceMarker = "place_marker"
	PhaseKindSlideRing   = "slide_ring"
	PhaseKindSwapPending = "swap_pending"
	PhaseKindRemoveRun   = "remove_run"
	PhaseKindRemoveRing  = "remove_ring"
)

// StateData is a full game snapshot. Cells are in (x, y) order so equal
// states serialize identically.
type StateData struct {
	Active     string    `json:"active"`
	Phase      PhaseData `json:"phase"`
	Cells      []Cell    `json:"cells"`
	ScoreWhite int       `json:"scoreWhite"`
	ScoreBlack int       `json:"scoreBlack"`
}

// MoveData is a player's selection of a coordinate.
type MoveData struct {
	Target CoordData `json:"target"`
}

// RejectionData reports a refused interaction back to a player.
type RejectionData struct {
	Target CoordData `json:"target"`
	Reason string    `json:"reason"`
}

// RejectionFromError converts a rejected interaction for the wire.
func RejectionFromError(target yinsh.Coord, err error) RejectionData {
	return RejectionData{
		Target: CoordFromGame(target),
		Reason: err.Error(),
	}
}

// PhaseFromGame converts a phase for the wire.
func PhaseFromGame(p yinsh.Phase) PhaseData {
	switch ph := p.(type) {
	case yinsh.PlaceRing:
		return PhaseData{Kind: PhaseKindPlaceRing}
	case yinsh.PlaceMarker:
		return PhaseData{Kind: PhaseKindPlaceMarker}
	case yinsh.SlideRing:
		origin := CoordFromGame(ph.Origin)
		return PhaseData{Kind: PhaseKindSlideRing, Origin: &origin}
	case yinsh.SwapPending:
		return PhaseData{Kind: PhaseKindSwapPending}
	case yinsh.RemoveRun:
		return PhaseData{Kind: PhaseKindRemoveRun}
	case yinsh.RemoveRing:
		return PhaseData{Kind: PhaseKindRemoveRing}
	}
	panic(fmt.Sprintf("wire: unknown phase %T", p))
}

// ToGame converts the phase back.
func (d PhaseData) ToGame() (yinsh.Phase, error) {
	switch d.Kind {
	case PhaseKindPlaceRing:
		return yinsh.PlaceRing{}, nil
	case PhaseKindPlaceMarker:
		return yinsh.PlaceMarker{}, nil
	case PhaseKindSlideRing:
		if d.Origin == nil {
			return nil, fmt.Errorf("phase %q without origin", d.Kind)
		}
		return yinsh.SlideRing{Origin: d.Origin.ToGame()}, nil
	case PhaseKindSwapPending:
		return yinsh.SwapPending{}, nil
	case PhaseKindRemoveRun:
		return yinsh.RemoveRun{}, nil
	case PhaseKindRemoveRing:
		return yinsh.RemoveRing{}, nil
	}
	return nil, fmt.Errorf("unknown phase kind %q", d.Kind)
}

func playerFromName(name string) (yinsh.Player, error) {
	switch name {
	case yinsh.White.String():
		return yinsh.White, nil
	case yinsh.Black.String():
		return yinsh.Black, nil
	}
	return 0, fmt.Errorf("unknown player %q", name)
}

func elementFromCell(c Cell) (yinsh.Element, error) {
	owner, err := playerFromName(c.Owner)
	if err != nil {
		return yinsh.Element{}, err
	}
	switch c.Kind {
	case "ring":
		return yinsh.Ring(owner), nil
	case "marker":
		return yinsh.Marker(owner), nil
	}
	return yinsh.Element{}, fmt.Errorf("unknown element kind %q", c.Kind)
}

func cellKind(e yinsh.Element) string {
	if e.IsRing() {
		return "ring"
	}
	return "marker"
}

// StateFromGame converts a snapshot for the wire.
func StateFromGame(g yinsh.GameState) StateData {
	var cells []Cell
	for _, c := range yinsh.BoardCoordinates() {
		e, ok := g.Board.ElementAt(c)
		if !ok {
			continue
		}
		cells = append(cells, Cell{
			Coord: CoordFromGame(c),
			Kind:  cellKind(e),
			Owner: e.Owner.String(),
		})
	}
	return StateData{
		Active:     g.Active.String(),
		Phase:      PhaseFromGame(g.Phase),
		Cells:      cells,
		ScoreWhite: g.ScoreWhite,
		ScoreBlack: g.ScoreBlack,
	}
}

// ToGame reconstructs the snapshot. Malformed payloads (unknown players or
// kinds, off-board or doubled-up cells, a slide without its origin) are
// reported, never applied.
func (d StateData) ToGame() (yinsh.GameState, error) {
	active, err := playerFromName(d.Active)
	if err != nil {
		return yinsh.GameState{}, fmt.Errorf("active player: %w", err)
	}
	phase, err := d.Phase.ToGame()
	if err != nil {
		return yinsh.GameState{}, fmt.Errorf("phase: %w", err)
	}
	board := yinsh.NewBoard()
	for _, cell := range d.Cells {
		c := cell.Coord.ToGame()
		if !yinsh.Valid(c) {
			return yinsh.GameState{}, fmt.Errorf("cell %s is off the board", c)
		}
		if !board.IsFree(c) {
			return yinsh.GameState{}, fmt.Errorf("cell %s appears twice", c)
		}
		e, err := elementFromCell(cell)
		if err != nil {
			return yinsh.GameState{}, fmt.Errorf("cell %s: %w", c, err)
		}
		board = board.Place(c, e)
	}
	return yinsh.GameState{
		Active:     active,
		Phase:      phase,
		Board:      board,
		ScoreWhite: d.ScoreWhite,
		ScoreBlack: d.ScoreBlack,
	}, nil
}
