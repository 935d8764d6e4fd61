package geom

// Distance returns the directional "distance" from origin to p when
// traveling toward dir. Lower is closer. The plane around the origin is
// partitioned into angular zones; each zone occupies a disjoint band of
// Band-sized values so that candidates in the direction of travel always
// rank below candidates requiring lateral movement, which rank below
// candidates behind the origin. Within a band, candidates are ordered by a
// linear mix of primary- and secondary-axis offsets.
//
// The per-direction arithmetic is intentionally kept as four hand-written
// cases: widget layouts depend on these exact tie-breaks, and the four
// rotations are not symmetric (Down/Up use four zones, Right/Left five).
// The zone ordering for each direction is documented inline as a 6x6 rank
// matrix (MaxDelta = 6 for readability); distance_test.go pins each matrix.
//
// If changes are made here, update the escalation bands in focus.Group
// accordingly.
func Distance(origin, p Point, dir Direction) int {
	return distance(origin, p, dir, MaxDelta)
}

// distance is Distance with the zone bound as a parameter so tests can use
// a small grid and check the full rank ordering.
func distance(origin, p Point, dir Direction, delta int) int {
	y1, x1 := origin.Row, origin.Col
	y2, x2 := p.Row, p.Col
	dy, dx := y2-y1, x2-x1
	band := delta * delta

	if dy == 0 && dx == 0 {
		return band // self, see SelfDistance
	}

	switch dir {
	case Down:
		// Rank order, origin at row 1, col 2:
		//	31 33 35 25 27 29
		//	32 34 36 26 28 30
		//	17 18  1  5  9 13
		//	19 20  2  6 10 14
		//	21 22  3  7 11 15
		//	23 24  4  8 12 16
		switch {
		case dy > 0 && dx >= 0: // zone 1, below and rightward
			return dy + dx*(delta-y1-1)
		case dy > 0 && dx < 0: // zone 2, below left
			return band + (delta-y1-1)*(delta-x1) + (dy-1)*x1 + x2 + 1
		case dy <= 0 && dx > 0: // zone 3, above right
			return 2*band + (delta-y1-1)*delta + (dx-1)*(y1+1) + y2 + 1
		default: // zone 4, above left
			sbot := (delta - y1 - 1) * delta
			return 3*band + sbot + (y1+1)*(delta-x1-1) + x2*(y1+1) + y2 + 1
		}

	case Right:
		// Rank order, origin at row 2, col 2:
		//	22 28 34  5  7  9
		//	23 29 35  4  6  8
		//	24 30 36  1  2  3
		//	25 31 19 10 13 16
		//	26 32 20 11 14 17
		//	27 33 21 12 15 18
		switch {
		case dx > 0 && dy == 0: // zone 1, straight right
			return dx
		case dx > 0 && dy < 0: // zone 2, above right
			return band + (y1 - y2) + (dx-1)*y1
		case dx > 0 && dy > 0: // zone 3, below right
			return 2*band + dy + (dx-1)*(delta-y1-1)
		case dx == 0 && dy > 0: // zone 4, straight below
			return 3*band + dy
		default: // zone 5, behind
			return 4*band + y2 + x2*delta
		}

	case Up:
		// Rank order, origin at row 2, col 2:
		//	 6  4  2  8 10 12
		//	 5  3  1  7  9 11
		//	14 13 36 35 34 33
		//	20 19 32 31 30 29
		//	18 17 28 27 26 25
		//	16 15 24 23 22 21
		switch {
		case dy < 0 && dx <= 0: // zone 1, above and leftward
			return y1*(x1-x2) + y1 - y2
		case dy < 0 && dx > 0: // zone 2, above right
			return band + y1*(x1+1) + (dx-1)*y1 + y1 - y2
		case dy == 0 && dx < 0: // zone 3, straight left
			return 2*band + y1*delta + (x1 - x2)
		case dy > 0 && dx < 0: // zone 3bis, below left
			return 2*band + y1*delta + x1 + x1*(delta-y2-1) + x1 - x2
		default: // zone 4, below right
			s := y1*delta + (delta-y1)*x1
			return 3*band + s + (delta-x1)*(delta-y2-1) + delta - x2
		}

	case Left:
		// Rank order, origin at row 2, col 3:
		//	 9  7  5 34 28 22
		//	 8  6  4 35 29 23
		//	 3  2  1 36 30 24
		//	16 13 10 19 31 25
		//	17 14 11 20 32 26
		//	18 15 12 21 33 27
		switch {
		case dx < 0 && dy == 0: // zone 1, straight left
			return x1 - x2
		case dx < 0 && dy < 0: // zone 2, above left
			return band + (y1 - y2) + y1*(x1-x2-1)
		case dx < 0 && dy > 0: // zone 3, below left
			return 2*band + (delta - y2 - 1) + (x1-x2-1)*(delta-y1-1)
		case dx == 0 && dy < 0: // zone 4, straight above
			return 3*band + y1 - y2
		default: // zone 5, behind
			return 4*band + y2 + (delta-x1-1)*delta
		}
	}

	panic(invalidDirection(dir))
}

// FirstEntry returns the simplified entry distance from origin to p when a
// container hands focus into a group for the first time. Unlike Distance it
// is linear, not zoned: with no prior alignment inside the group, the
// nearest member along the travel axis wins, with the cross-axis offset as
// tie-break.
func FirstEntry(origin, p Point, dir Direction) int {
	dy := p.Row - origin.Row
	dx := p.Col - origin.Col

	switch dir {
	case Down:
		return dy*MaxDelta + dx + 1
	case Right:
		return dx*MaxDelta + dy + 1
	case Up:
		return -dy*MaxDelta - dx + 1
	case Left:
		return -dx*MaxDelta + dy + 1
	}
	panic(invalidDirection(dir))
}

// EntryCorner returns the hitbox corner facing "into" the direction of
// travel, the reference point for first-entry ranking: the corner a cursor
// traveling toward dir reaches first.
func EntryCorner(h Hitbox, dir Direction) Point {
	switch dir {
	case Down, Right:
		return h.TL
	case Up:
		return h.BR
	case Left:
		return h.TR()
	}
	panic(invalidDirection(dir))
}
