package yinsh

// runSize is the number of markers that make a run. Longer lines still
// surrender exactly this many.
const runSize = 5

type coordSet map[Coord]struct{}

func toCoordSet(cs []Coord) coordSet {
	set := make(coordSet, len(cs))
	for _, c := range cs {
		set[c] = struct{}{}
	}
	return set
}

// chainFrom collects the contiguous members of set starting at from and
// stepping by step, in walk order. Empty when from itself is not a member.
func chainFrom(set coordSet, from, step Coord) []Coord {
	var out []Coord
	for c := from; ; c = c.add(step) {
		if _, ok := set[c]; !ok {
			return out
		}
		out = append(out, c)
	}
}

// HasRun reports whether markers contains five consecutive coordinates on
// any lattice axis. The slice is one player's markers; ownership mixing is
// the caller's mistake.
func HasRun(markers []Coord) bool {
	set := toCoordSet(markers)
	for _, c := range markers {
		if partOfRun(set, c) {
			return true
		}
	}
	return false
}

// PartOfRun reports whether c is one of at least five consecutive markers
// on some lattice axis. False when c is not itself in markers.
func PartOfRun(markers []Coord, c Coord) bool {
	return partOfRun(toCoordSet(markers), c)
}

func partOfRun(set coordSet, c Coord) bool {
	if _, ok := set[c]; !ok {
		return false
	}
	for _, axis := range runAxes {
		fwd := chainFrom(set, c, axis.Offset())
		back := axis.Opposite().Offset()
		rev := chainFrom(set, c.add(back), back)
		if len(fwd)+len(rev) >= runSize {
			return true
		}
	}
	return false
}

// RunCoordinates returns the five markers removed when the run through c is
// cleared, or nil when c is not part of any run. Lines longer than five need
// a deterministic pick: axes are scanned NW, N, NE, and along the first
// qualifying axis the chain through c in the axis direction (c first) is
// interleaved with the reverse chain, taking the first five. Clicking the
// same marker always selects the same five.
func RunCoordinates(markers []Coord, c Coord) []Coord {
	set := toCoordSet(markers)
	if _, ok := set[c]; !ok {
		return nil
	}
	for _, axis := range runAxes {
		fwd := chainFrom(set, c, axis.Offset())
		back := axis.Opposite().Offset()
		rev := chainFrom(set, c.add(back), back)
		if len(fwd)+len(rev) < runSize {
			continue
		}
		run := make([]Coord, 0, runSize)
		for i := 0; len(run) < runSize; i++ {
			if i < len(fwd) {
				run = append(run, fwd[i])
			}
			if len(run) < runSize && i < len(rev) {
				run = append(run, rev[i])
			}
		}
		return run
	}
	return nil
}
