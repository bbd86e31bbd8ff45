package yinsh

// ValidDestinations returns every point the ring at origin may slide to,
// walking each of the six directions in turn. A ray contributes its free
// points up to the first obstacle; a contiguous block of markers may be
// jumped, landing only on the first point past the block, and the ray ends
// there. Rings and the board edge stop a ray outright. Read-only: the board
// is never modified, and origin is not checked for actually holding a ring.
func ValidDestinations(b Board, origin Coord) []Coord {
	var out []Coord
	for _, d := range directionOffsets {
		jumped := false
		for c := origin.add(d); Valid(c); c = c.add(d) {
			e, ok := b.ElementAt(c)
			if ok {
				if e.IsRing() {
					break
				}
				jumped = true
				continue
			}
			out = append(out, c)
			if jumped {
				break
			}
		}
	}
	return out
}
