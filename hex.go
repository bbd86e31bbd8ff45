package yinsh

import "fmt"

// Coord is a point on the axial hex lattice. The playable board is the
// fixed subset reported by BoardCoordinates; geometry helpers accept any
// coordinate and the phase machine guards board membership itself.
type Coord struct {
	X, Y int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

func (c Coord) add(o Coord) Coord { return Coord{c.X + o.X, c.Y + o.Y} }
func (c Coord) sub(o Coord) Coord { return Coord{c.X - o.X, c.Y - o.Y} }

// norm2 is the squared length of v under the 120° lattice basis.
// The form is positive definite, so norm2(v) == 0 only for the zero vector.
func norm2(v Coord) int {
	return v.X*v.X + v.Y*v.Y - v.X*v.Y
}

// dot2 is twice the inner product matching norm2, kept doubled so it stays
// integral. Cauchy–Schwarz becomes dot2(u,v)² == 4·norm2(u)·norm2(v), with
// equality exactly when u and v are collinear.
func dot2(u, v Coord) int {
	return 2*u.X*v.X + 2*u.Y*v.Y - u.X*v.Y - u.Y*v.X
}

// Direction is one of the six unit directions on the lattice, in cyclic
// order so that the opposite direction is three steps away.
type Direction int

const (
	North Direction = iota
	Northeast
	Southeast
	South
	Southwest
	Northwest
)

var directionNames = [...]string{"N", "NE", "SE", "S", "SW", "NW"}

var directionOffsets = [...]Coord{
	{0, 1},   // North
	{1, 1},   // Northeast
	{1, 0},   // Southeast
	{0, -1},  // South
	{-1, -1}, // Southwest
	{-1, 0},  // Northwest
}

// runAxes holds one representative direction per lattice axis, in the order
// the run detector scans them.
var runAxes = [3]Direction{Northwest, North, Northeast}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Offset returns the unit lattice vector for d.
func (d Direction) Offset() Coord {
	return directionOffsets[d]
}

// Opposite returns the direction pointing the other way along d's axis.
func (d Direction) Opposite() Direction {
	return (d + 3) % 6
}

// columnExtents gives the inclusive y-range of playable points per column
// x = 1..11 (index 0 unused). Together the columns form the radius-5 hexagon
// around (6,6) with its six corner points cut off: 85 points.
var columnExtents = [12]struct{ lo, hi int }{
	1:  {2, 5},
	2:  {1, 7},
	3:  {1, 8},
	4:  {1, 9},
	5:  {1, 10},
	6:  {2, 10},
	7:  {2, 11},
	8:  {3, 11},
	9:  {4, 11},
	10: {5, 11},
	11: {7, 10},
}

var allCoords = func() []Coord {
	cs := make([]Coord, 0, 85)
	for x := 1; x <= 11; x++ {
		for y := columnExtents[x].lo; y <= columnExtents[x].hi; y++ {
			cs = append(cs, Coord{x, y})
		}
	}
	return cs
}()

// Valid reports whether c is one of the 85 playable board points.
func Valid(c Coord) bool {
	if c.X < 1 || c.X > 11 {
		return false
	}
	ext := columnExtents[c.X]
	return c.Y >= ext.lo && c.Y <= ext.hi
}

// BoardCoordinates returns all playable coordinates in (x, y) order.
func BoardCoordinates() []Coord {
	out := make([]Coord, len(allCoords))
	copy(out, allCoords)
	return out
}

// Connected reports whether a and b lie on a common lattice axis: same x,
// same y, or same x−y. Symmetric, and true for a == b.
func Connected(a, b Coord) bool {
	return a.X == b.X || a.Y == b.Y || a.X-a.Y == b.X-b.Y
}

// Neighbors returns the playable coordinates one step from c, at most six.
func Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, 6)
	for _, off := range directionOffsets {
		if n := c.add(off); Valid(n) {
			out = append(out, n)
		}
	}
	return out
}

// Reachable returns every playable coordinate other than c that shares a
// lattice axis with c, in (x, y) order.
func Reachable(c Coord) []Coord {
	var out []Coord
	for _, o := range allCoords {
		if o != c && Connected(c, o) {
			out = append(out, o)
		}
	}
	return out
}

// Between reports whether c lies strictly between a and b. Collinearity is
// the Cauchy–Schwarz equality on the lattice form; strictness excludes both
// endpoints. Pure integer arithmetic throughout.
func Between(a, b, c Coord) bool {
	u := b.sub(a)
	v := c.sub(a)
	if d := dot2(u, v); d*d != 4*norm2(u)*norm2(v) {
		return false
	}
	span := norm2(u)
	return norm2(v) < span && norm2(c.sub(b)) < span
}

// LineBetween returns the lattice points strictly between a and b, ordered
// from a towards b. The two coordinates must be distinct and share an axis;
// anything else is a programming error and panics.
func LineBetween(a, b Coord) []Coord {
	if a == b || !Connected(a, b) {
		panic(fmt.Sprintf("yinsh: no lattice line between %s and %s", a, b))
	}
	d := b.sub(a)
	steps := max(abs(d.X), abs(d.Y))
	unit := Coord{d.X / steps, d.Y / steps}
	out := make([]Coord, 0, steps-1)
	for c := a.add(unit); c != b; c = c.add(unit) {
		out = append(out, c)
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
