// Package geom provides the coordinate types and directional distance
// metrics that drive focus navigation. Coordinates are terminal cells:
// Row grows downward, Col grows rightward.
package geom

import "fmt"

// MaxDelta bounds all zone arithmetic in the distance metrics. It must
// exceed the largest supported terminal dimension in either axis;
// behavior for coordinates at or beyond MaxDelta is undefined.
const MaxDelta = 256

// Band is the width of one angular zone in the directional metric.
// Distance values in [0, Band) are straight-ahead candidates, [Band, 2*Band)
// the next zone for that direction, and so on.
const Band = MaxDelta * MaxDelta

// SelfDistance is returned when origin and candidate coincide. A widget is
// never a closer candidate than itself, but it is not excluded either: it
// simply never wins a min-based search inside the straight-ahead zone.
const SelfDistance = Band

// InsideHitbox is the sentinel distance for a point already inside a
// widget hitbox.
const InsideHitbox = MaxDelta * Band

// InsideGroup is the sentinel distance for a point already inside a group
// bounding box.
const InsideGroup = 4 * Band

// Point is a (row, column) pair in terminal cells.
type Point struct {
	Row int
	Col int
}

// Direction is an arrow-key travel direction. It doubles as "the side a
// widget is approached from". Values outside the four constants are
// programming errors and make every consumer panic.
type Direction int

const (
	Down Direction = iota
	Right
	Up
	Left
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Down:
		return "down"
	case Right:
		return "right"
	case Up:
		return "up"
	case Left:
		return "left"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Opposite returns the reverse travel direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Down:
		return Up
	case Right:
		return Left
	case Up:
		return Down
	case Left:
		return Right
	}
	panic(invalidDirection(d))
}

func invalidDirection(d Direction) string {
	return fmt.Sprintf("geom: invalid direction %d, must be Down, Right, Up or Left", int(d))
}
