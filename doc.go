// Package yinsh implements the rules engine for the board game Yinsh.
//
// The main type is GameState, an immutable snapshot of a game in progress.
// Each accepted interaction produces a new state; an illegal one returns an
// error and leaves the old state untouched:
//
//	g := yinsh.NewGame()
//	g, err := g.Apply(yinsh.Coord{X: 6, Y: 6})
//	if errors.Is(err, yinsh.ErrOccupied) {
//	    // re-prompt the player
//	}
//
// The interaction model is deliberately narrow: every move a player makes is
// the selection of a single board coordinate, and the current Phase decides
// what that selection means (placing a ring, choosing a ring to move, picking
// a slide destination, selecting a run to clear). Drivers therefore need no
// move vocabulary beyond Coord.
//
// # Board Geometry
//
// The board is the fixed 85-point set returned by BoardCoordinates: a
// radius-5 hexagon around (6,6) on an axial lattice, minus its six corner
// points. The lattice basis puts the six unit directions at (0,±1), (±1,0)
// and ±(1,1), so three straight-line axes exist: constant x, constant y, and
// constant x−y. All geometry helpers (Connected, Between, LineBetween,
// Neighbors, Reachable) work in plain integers on this basis.
//
// # Concurrency
//
// GameState and Board are values. Applying a move never mutates shared data,
// so snapshots may be kept, compared and shared across goroutines freely.
// Serializing concurrent moves onto one "current" state is the caller's job.
package yinsh
