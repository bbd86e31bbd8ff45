package yinsh

import (
	"fmt"
	"maps"
	"sort"
)

// Player identifies one of the two sides. White moves first.
type Player int

const (
	White Player = iota
	Black
)

var playerNames = [...]string{"White", "Black"}

func (p Player) String() string {
	if p < 0 || int(p) >= len(playerNames) {
		return fmt.Sprintf("Player(%d)", int(p))
	}
	return playerNames[p]
}

// Other returns the opposing player.
func (p Player) Other() Player {
	return 1 - p
}

// ElementKind distinguishes the two piece types that can occupy a point.
type ElementKind int

const (
	KindRing ElementKind = iota
	KindMarker
)

// Element is a board occupant: a ring or a marker, owned by one player.
type Element struct {
	Kind  ElementKind
	Owner Player
}

// Ring returns a ring element owned by p.
func Ring(p Player) Element { return Element{KindRing, p} }

// Marker returns a marker element owned by p.
func Marker(p Player) Element { return Element{KindMarker, p} }

// IsRing reports whether the element is a ring.
func (e Element) IsRing() bool { return e.Kind == KindRing }

// IsMarker reports whether the element is a marker.
func (e Element) IsMarker() bool { return e.Kind == KindMarker }

// flip returns a marker with inverted ownership. Rings never flip.
func (e Element) flip() Element {
	return Marker(e.Owner.Other())
}

func (e Element) String() string {
	kind := "ring"
	if e.IsMarker() {
		kind = "marker"
	}
	return fmt.Sprintf("%s %s", e.Owner, kind)
}

// Board is an immutable placement snapshot. It keeps a cell map alongside
// per-player ring and marker enumerations; the two views are updated
// together by Place, Remove and Replace, so they can never disagree.
// Enumerations are held in (x, y) order, which keeps iteration independent
// of move history.
//
// All mutators return a fresh Board and never touch the receiver, so any
// number of snapshots may be shared without synchronization.
type Board struct {
	cells   map[Coord]Element
	rings   [2][]Coord
	markers [2][]Coord
}

// NewBoard returns an empty board.
func NewBoard() Board {
	return Board{cells: map[Coord]Element{}}
}

// ElementAt returns the element at c, if any.
func (b Board) ElementAt(c Coord) (Element, bool) {
	e, ok := b.cells[c]
	return e, ok
}

// IsFree reports whether no element sits at c. It says nothing about board
// membership; off-board coordinates are trivially free.
func (b Board) IsFree(c Coord) bool {
	_, ok := b.cells[c]
	return !ok
}

// Rings returns the coordinates of p's rings in (x, y) order.
func (b Board) Rings(p Player) []Coord {
	out := make([]Coord, len(b.rings[p]))
	copy(out, b.rings[p])
	return out
}

// Markers returns the coordinates of p's markers in (x, y) order.
func (b Board) Markers(p Player) []Coord {
	out := make([]Coord, len(b.markers[p]))
	copy(out, b.markers[p])
	return out
}

// RingCount returns the total number of rings on the board, both players.
func (b Board) RingCount() int {
	return len(b.rings[White]) + len(b.rings[Black])
}

// Place returns a board with e added at c. The point must be free; placing
// onto an occupied point is a programming error and panics.
func (b Board) Place(c Coord, e Element) Board {
	if old, ok := b.cells[c]; ok {
		panic(fmt.Sprintf("yinsh: place %s at %s which holds %s", e, c, old))
	}
	nb := b
	nb.cells = maps.Clone(b.cells)
	if nb.cells == nil {
		nb.cells = map[Coord]Element{}
	}
	nb.cells[c] = e
	if e.IsRing() {
		nb.rings[e.Owner] = insertCoord(b.rings[e.Owner], c)
	} else {
		nb.markers[e.Owner] = insertCoord(b.markers[e.Owner], c)
	}
	return nb
}

// Remove returns a board with the element at c removed. The point must be
// occupied; removing from an empty point is a programming error and panics.
func (b Board) Remove(c Coord) Board {
	e, ok := b.cells[c]
	if !ok {
		panic(fmt.Sprintf("yinsh: remove from empty point %s", c))
	}
	nb := b
	nb.cells = maps.Clone(b.cells)
	delete(nb.cells, c)
	if e.IsRing() {
		nb.rings[e.Owner] = deleteCoord(b.rings[e.Owner], c)
	} else {
		nb.markers[e.Owner] = deleteCoord(b.markers[e.Owner], c)
	}
	return nb
}

// Replace returns a board with the element at c swapped for e: a Remove
// followed by a Place, with the same preconditions.
func (b Board) Replace(c Coord, e Element) Board {
	return b.Remove(c).Place(c, e)
}

// Equal reports whether two boards hold the same elements at the same
// points. The enumerations are derived and canonically ordered, so cell
// equality is board equality.
func (b Board) Equal(o Board) bool {
	return maps.Equal(b.cells, o.cells)
}

func coordLess(a, b Coord) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

// insertCoord returns a new slice with c added in (x, y) order. The input
// is never modified; boards share enumeration slices structurally.
func insertCoord(s []Coord, c Coord) []Coord {
	i := sort.Search(len(s), func(i int) bool { return !coordLess(s[i], c) })
	out := make([]Coord, 0, len(s)+1)
	out = append(out, s[:i]...)
	out = append(out, c)
	return append(out, s[i:]...)
}

// deleteCoord returns a new slice with c removed. The caller guarantees c
// is present; absence would mean the dual index is already broken.
func deleteCoord(s []Coord, c Coord) []Coord {
	i := sort.Search(len(s), func(i int) bool { return !coordLess(s[i], c) })
	if i >= len(s) || s[i] != c {
		panic(fmt.Sprintf("yinsh: enumeration missing %s", c))
	}
	if len(s) == 1 {
		return nil
	}
	out := make([]Coord, 0, len(s)-1)
	out = append(out, s[:i]...)
	return append(out, s[i+1:]...)
}
