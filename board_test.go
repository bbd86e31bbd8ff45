package yinsh

import (
	"slices"
	"testing"
)

// checkDualIndex verifies the enumerations agree with the cell map exactly.
func checkDualIndex(t *testing.T, b Board) {
	t.Helper()
	for _, p := range []Player{White, Black} {
		for _, c := range b.Rings(p) {
			if e, ok := b.ElementAt(c); !ok || e != Ring(p) {
				t.Errorf("ring enumeration lists %s but cell holds %v", c, e)
			}
		}
		for _, c := range b.Markers(p) {
			if e, ok := b.ElementAt(c); !ok || e != Marker(p) {
				t.Errorf("marker enumeration lists %s but cell holds %v", c, e)
			}
		}
	}
	total := len(b.Rings(White)) + len(b.Rings(Black)) +
		len(b.Markers(White)) + len(b.Markers(Black))
	if total != len(b.cells) {
		t.Errorf("enumerations list %d points, cell map has %d", total, len(b.cells))
	}
}

func TestBoardPlaceAndLookup(t *testing.T) {
	t.Parallel()
	b := NewBoard().
		Place(Coord{3, 4}, Ring(White)).
		Place(Coord{5, 5}, Marker(Black))

	if e, ok := b.ElementAt(Coord{3, 4}); !ok || e != Ring(White) {
		t.Errorf("ElementAt((3,4)) = %v, %v", e, ok)
	}
	if e, ok := b.ElementAt(Coord{5, 5}); !ok || e != Marker(Black) {
		t.Errorf("ElementAt((5,5)) = %v, %v", e, ok)
	}
	if _, ok := b.ElementAt(Coord{6, 6}); ok {
		t.Error("ElementAt((6,6)) found an element on an empty point")
	}
	if b.IsFree(Coord{3, 4}) {
		t.Error("IsFree((3,4)) = true for an occupied point")
	}
	if !b.IsFree(Coord{6, 6}) {
		t.Error("IsFree((6,6)) = false for an empty point")
	}
	checkDualIndex(t, b)
}

func TestBoardImmutability(t *testing.T) {
	t.Parallel()
	b0 := NewBoard().Place(Coord{3, 4}, Ring(White))
	b1 := b0.Place(Coord{5, 5}, Marker(White))
	b2 := b1.Remove(Coord{3, 4})

	if !b0.IsFree(Coord{5, 5}) {
		t.Error("placing on a copy modified the original")
	}
	if b1.IsFree(Coord{3, 4}) {
		t.Error("removing from a copy modified the original")
	}
	if got := len(b2.Rings(White)); got != 0 {
		t.Errorf("b2 has %d white rings, want 0", got)
	}
	if got := len(b1.Rings(White)); got != 1 {
		t.Errorf("b1 has %d white rings, want 1", got)
	}
}

func TestBoardPlaceRemoveRoundTrip(t *testing.T) {
	t.Parallel()
	base := NewBoard().
		Place(Coord{2, 3}, Ring(White)).
		Place(Coord{4, 4}, Ring(Black)).
		Place(Coord{6, 6}, Marker(White)).
		Place(Coord{7, 9}, Marker(Black))

	after := base.Place(Coord{5, 5}, Marker(White)).Remove(Coord{5, 5})
	if !after.Equal(base) {
		t.Error("place/remove round trip changed the board")
	}
	if !slices.Equal(after.Markers(White), base.Markers(White)) {
		t.Errorf("marker enumeration changed: %v vs %v", after.Markers(White), base.Markers(White))
	}
	checkDualIndex(t, after)
}

func TestBoardReplace(t *testing.T) {
	t.Parallel()
	b := NewBoard().Place(Coord{6, 6}, Ring(White)).Replace(Coord{6, 6}, Marker(White))
	if e, _ := b.ElementAt(Coord{6, 6}); e != Marker(White) {
		t.Errorf("after replace, ElementAt = %v, want white marker", e)
	}
	if got := len(b.Rings(White)); got != 0 {
		t.Errorf("replace left %d rings enumerated, want 0", got)
	}
	if got := b.Markers(White); len(got) != 1 || got[0] != (Coord{6, 6}) {
		t.Errorf("marker enumeration = %v, want [(6,6)]", got)
	}
	checkDualIndex(t, b)
}

func TestBoardEnumerationOrder(t *testing.T) {
	t.Parallel()
	// Insert out of (x, y) order; enumeration must come back sorted.
	b := NewBoard().
		Place(Coord{9, 6}, Marker(White)).
		Place(Coord{3, 8}, Marker(White)).
		Place(Coord{3, 2}, Marker(White)).
		Place(Coord{5, 5}, Marker(White))

	want := []Coord{{3, 2}, {3, 8}, {5, 5}, {9, 6}}
	if got := b.Markers(White); !slices.Equal(got, want) {
		t.Errorf("Markers(White) = %v, want %v", got, want)
	}
}

func TestBoardEnumerationCopies(t *testing.T) {
	t.Parallel()
	b := NewBoard().Place(Coord{6, 6}, Ring(Black))
	rings := b.Rings(Black)
	rings[0] = Coord{1, 2}
	if got := b.Rings(Black)[0]; got != (Coord{6, 6}) {
		t.Errorf("mutating the returned slice changed the board: %s", got)
	}
}

func TestBoardPlaceOccupiedPanics(t *testing.T) {
	t.Parallel()
	b := NewBoard().Place(Coord{6, 6}, Ring(White))
	defer func() {
		if recover() == nil {
			t.Error("placing on an occupied point did not panic")
		}
	}()
	b.Place(Coord{6, 6}, Marker(Black))
}

func TestBoardRemoveEmptyPanics(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Error("removing from an empty point did not panic")
		}
	}()
	NewBoard().Remove(Coord{6, 6})
}

func TestPlayerOther(t *testing.T) {
	t.Parallel()
	if White.Other() != Black || Black.Other() != White {
		t.Error("Other() does not swap the players")
	}
	if White.String() != "White" || Black.String() != "Black" {
		t.Errorf("player names = %q, %q", White.String(), Black.String())
	}
}

func TestElementHelpers(t *testing.T) {
	t.Parallel()
	if !Ring(White).IsRing() || Ring(White).IsMarker() {
		t.Error("Ring kind predicates wrong")
	}
	if !Marker(Black).IsMarker() || Marker(Black).IsRing() {
		t.Error("Marker kind predicates wrong")
	}
	if got := Marker(White).flip(); got != Marker(Black) {
		t.Errorf("flip(white marker) = %v", got)
	}
	if got := Marker(Black).flip(); got != Marker(White) {
		t.Errorf("flip(black marker) = %v", got)
	}
	if got := Ring(Black).String(); got != "Black ring" {
		t.Errorf("String() = %q", got)
	}
}
