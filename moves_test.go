package yinsh

import (
	"slices"
	"testing"
)

func containsCoord(cs []Coord, c Coord) bool {
	return slices.Contains(cs, c)
}

func TestValidDestinationsEmptyBoard(t *testing.T) {
	t.Parallel()
	// With nothing in the way, a ring reaches every point sharing an axis.
	got := ValidDestinations(NewBoard(), Coord{6, 6})
	want := Reachable(Coord{6, 6})
	if len(got) != len(want) {
		t.Fatalf("got %d destinations, want %d", len(got), len(want))
	}
	for _, c := range want {
		if !containsCoord(got, c) {
			t.Errorf("destination %s missing", c)
		}
	}
	if containsCoord(got, Coord{6, 6}) {
		t.Error("origin listed as its own destination")
	}
}

func TestValidDestinationsRingBlocks(t *testing.T) {
	t.Parallel()
	b := NewBoard().Place(Coord{6, 8}, Ring(Black))
	got := ValidDestinations(b, Coord{6, 6})

	if !containsCoord(got, Coord{6, 7}) {
		t.Error("free point before the blocking ring missing")
	}
	for _, c := range []Coord{{6, 8}, {6, 9}, {6, 10}} {
		if containsCoord(got, c) {
			t.Errorf("ray continues past a ring to %s", c)
		}
	}
}

func TestValidDestinationsMarkerJump(t *testing.T) {
	t.Parallel()
	b := NewBoard().
		Place(Coord{6, 7}, Marker(Black)).
		Place(Coord{6, 8}, Marker(White))
	got := ValidDestinations(b, Coord{6, 6})

	if !containsCoord(got, Coord{6, 9}) {
		t.Error("landing point just past the marker block missing")
	}
	if containsCoord(got, Coord{6, 10}) {
		t.Error("ray continues past the jump landing point")
	}
	for _, c := range []Coord{{6, 7}, {6, 8}} {
		if containsCoord(got, c) {
			t.Errorf("marker point %s listed as destination", c)
		}
	}
}

func TestValidDestinationsJumpNeedsLanding(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		board  Board
		banned []Coord
	}{
		{
			// Markers run to the board edge; there is nowhere to land.
			"block against the edge",
			NewBoard().
				Place(Coord{6, 9}, Marker(Black)).
				Place(Coord{6, 10}, Marker(Black)),
			[]Coord{{6, 9}, {6, 10}},
		},
		{
			// A ring immediately past the block blocks the landing too.
			"ring after the block",
			NewBoard().
				Place(Coord{6, 7}, Marker(Black)).
				Place(Coord{6, 8}, Ring(White)),
			[]Coord{{6, 7}, {6, 8}, {6, 9}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidDestinations(tt.board, Coord{6, 6})
			for _, c := range tt.banned {
				if containsCoord(got, c) {
					t.Errorf("%s wrongly reachable", c)
				}
			}
		})
	}
}

func TestValidDestinationsFreeGapBeforeMarkers(t *testing.T) {
	t.Parallel()
	// North ray: two free points, then a two-marker block whose landing
	// point (6,11) is off the board. The free points stay reachable.
	b := NewBoard().
		Place(Coord{6, 9}, Marker(White)).
		Place(Coord{6, 10}, Marker(White))
	got := ValidDestinations(b, Coord{6, 6})

	for _, c := range []Coord{{6, 7}, {6, 8}} {
		if !containsCoord(got, c) {
			t.Errorf("free point %s before the block missing", c)
		}
	}
	if containsCoord(got, Coord{6, 11}) {
		t.Error("off-board landing point listed")
	}
}

func TestValidDestinationsDoesNotTouchBoard(t *testing.T) {
	t.Parallel()
	b := NewBoard().
		Place(Coord{6, 7}, Marker(Black)).
		Place(Coord{4, 6}, Ring(White))
	snapshot := b
	_ = ValidDestinations(b, Coord{6, 6})
	if !b.Equal(snapshot) {
		t.Error("ValidDestinations modified the board")
	}
}
