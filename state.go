package yinsh

import (
	"errors"
	"fmt"
	"slices"
)

// Rejection reasons returned by Apply. The state is untouched whenever one
// of these comes back; callers re-prompt and try again.
var (
	ErrOffBoard     = errors.New("coordinate is off the board")
	ErrOccupied     = errors.New("point is occupied")
	ErrNotYourRing  = errors.New("no ring of the active player there")
	ErrIllegalSlide = errors.New("ring cannot slide there")
	ErrNotInRun     = errors.New("marker is not part of a run")
)

// ringsPerPlayer rings each, placed alternately during the opening.
const ringsPerPlayer = 5

// PointsForWin is the score a player must reach to win a standard game.
// Apply never consults it: the machine keeps accepting moves past the
// threshold, and drivers decide via Winner when a game is over.
const PointsForWin = 2

// Phase is the current step of the turn sequence. It decides how Apply
// interprets the selected coordinate. The six implementations below are the
// complete set.
type Phase interface {
	fmt.Stringer
	isPhase()
}

// PlaceRing is the opening: players alternate putting their five rings on
// free points.
type PlaceRing struct{}

// PlaceMarker starts a regular turn: the active player picks one of their
// own rings, which swaps to a marker and must then slide.
type PlaceMarker struct{}

// SlideRing awaits the destination for the ring lifted at Origin.
type SlideRing struct {
	Origin Coord
}

// SwapPending is the instant between a run being formed and its removal:
// the turn has already passed to the opponent, and the next transition
// hands it straight back to the run's owner. It consumes no input.
type SwapPending struct{}

// RemoveRun awaits a marker selecting which run of the active player to
// clear off the board.
type RemoveRun struct{}

// RemoveRing awaits the ring the active player gives up to score a point.
type RemoveRing struct{}

func (PlaceRing) isPhase()   {}
func (PlaceMarker) isPhase() {}
func (SlideRing) isPhase()   {}
func (SwapPending) isPhase() {}
func (RemoveRun) isPhase()   {}
func (RemoveRing) isPhase()  {}

func (PlaceRing) String() string   { return "place ring" }
func (PlaceMarker) String() string { return "place marker" }
func (p SlideRing) String() string { return fmt.Sprintf("slide ring from %s", p.Origin) }
func (SwapPending) String() string { return "swap pending" }
func (RemoveRun) String() string   { return "remove run" }
func (RemoveRing) String() string  { return "remove ring" }

// GameState is one immutable snapshot of a game. Apply returns the next
// snapshot; nothing ever modifies an existing one.
type GameState struct {
	Active     Player
	Phase      Phase
	Board      Board
	ScoreWhite int
	ScoreBlack int
}

// NewGame returns the initial state: empty board, White to place the first
// ring, no score.
func NewGame() GameState {
	return GameState{
		Active: White,
		Phase:  PlaceRing{},
		Board:  NewBoard(),
	}
}

// Score returns p's current score.
func (g GameState) Score(p Player) int {
	if p == White {
		return g.ScoreWhite
	}
	return g.ScoreBlack
}

// Winner reports whether either player has reached PointsForWin. This is
// the layered game-over check: Apply ignores it, so drivers that want
// endless play (or a different threshold) simply never call it.
func (g GameState) Winner() (Player, bool) {
	switch {
	case g.ScoreWhite >= PointsForWin:
		return White, true
	case g.ScoreBlack >= PointsForWin:
		return Black, true
	}
	return White, false
}

// Apply interprets the selection of target under the current phase and
// returns the resulting state. Illegal selections return the state
// unchanged alongside a rejection error; the guard runs in full before any
// board change, so acceptance is all-or-nothing.
func (g GameState) Apply(target Coord) (GameState, error) {
	switch ph := g.Phase.(type) {
	case PlaceRing:
		return g.applyPlaceRing(target)
	case PlaceMarker:
		return g.applyPlaceMarker(target)
	case SlideRing:
		return g.applySlideRing(ph.Origin, target)
	case SwapPending:
		return g.applySwapPending()
	case RemoveRun:
		return g.applyRemoveRun(target)
	case RemoveRing:
		return g.applyRemoveRing(target)
	}
	panic(fmt.Sprintf("yinsh: unknown phase %T", g.Phase))
}

func (g GameState) applyPlaceRing(target Coord) (GameState, error) {
	if !Valid(target) {
		return g, fmt.Errorf("place ring at %s: %w", target, ErrOffBoard)
	}
	if !g.Board.IsFree(target) {
		return g, fmt.Errorf("place ring at %s: %w", target, ErrOccupied)
	}
	ng := g
	ng.Board = g.Board.Place(target, Ring(g.Active))
	if ng.Board.RingCount() < 2*ringsPerPlayer {
		ng.Phase = PlaceRing{}
	} else {
		ng.Phase = PlaceMarker{}
	}
	ng.Active = g.Active.Other()
	return ng, nil
}

func (g GameState) applyPlaceMarker(target Coord) (GameState, error) {
	if !Valid(target) {
		return g, fmt.Errorf("pick ring at %s: %w", target, ErrOffBoard)
	}
	if e, ok := g.Board.ElementAt(target); !ok || e != Ring(g.Active) {
		return g, fmt.Errorf("pick ring at %s: %w", target, ErrNotYourRing)
	}
	ng := g
	ng.Board = g.Board.Replace(target, Marker(g.Active))
	ng.Phase = SlideRing{Origin: target}
	return ng, nil
}

func (g GameState) applySlideRing(origin, target Coord) (GameState, error) {
	if !slices.Contains(ValidDestinations(g.Board, origin), target) {
		return g, fmt.Errorf("slide ring %s to %s: %w", origin, target, ErrIllegalSlide)
	}
	board := g.Board
	for _, c := range LineBetween(origin, target) {
		if e, ok := board.ElementAt(c); ok && e.IsMarker() {
			board = board.Replace(c, e.flip())
		}
	}
	board = board.Place(target, Ring(g.Active))

	ng := g
	ng.Board = board
	// Only the mover's markers are checked: a run flipped into existence
	// for the opponent waits until they form one themselves.
	if HasRun(board.Markers(g.Active)) {
		ng.Phase = SwapPending{}
	} else {
		ng.Phase = PlaceMarker{}
	}
	ng.Active = g.Active.Other()
	return ng, nil
}

// applySwapPending passes the turn straight back to the player who formed
// the run. Any coordinate is accepted and ignored; drivers advance through
// this phase without player input.
func (g GameState) applySwapPending() (GameState, error) {
	ng := g
	ng.Phase = RemoveRun{}
	ng.Active = g.Active.Other()
	return ng, nil
}

func (g GameState) applyRemoveRun(target Coord) (GameState, error) {
	run := RunCoordinates(g.Board.Markers(g.Active), target)
	if run == nil {
		return g, fmt.Errorf("remove run at %s: %w", target, ErrNotInRun)
	}
	board := g.Board
	for _, c := range run {
		board = board.Remove(c)
	}
	ng := g
	ng.Board = board
	ng.Phase = RemoveRing{}
	return ng, nil
}

func (g GameState) applyRemoveRing(target Coord) (GameState, error) {
	if !Valid(target) {
		return g, fmt.Errorf("remove ring at %s: %w", target, ErrOffBoard)
	}
	if e, ok := g.Board.ElementAt(target); !ok || e != Ring(g.Active) {
		return g, fmt.Errorf("remove ring at %s: %w", target, ErrNotYourRing)
	}
	ng := g
	ng.Board = g.Board.Remove(target)
	if g.Active == White {
		ng.ScoreWhite++
	} else {
		ng.ScoreBlack++
	}
	ng.Phase = PlaceMarker{}
	ng.Active = g.Active.Other()
	return ng, nil
}
