package geom

// Hitbox is an axis-aligned rectangle of terminal cells, inclusive on both
// corners. Only TL and BR are stored; the other corners are derived.
//
// A degenerate hitbox (BR above or left of TL) is treated as zero-area at
// TL rather than producing an undefined distance ranking.
type Hitbox struct {
	TL Point
	BR Point
}

// NewHitbox builds a hitbox from its top-left and bottom-right corners.
func NewHitbox(tl, br Point) Hitbox {
	return Hitbox{TL: tl, BR: br}
}

// canon returns the hitbox with degenerate extents clamped to zero-area.
func (h Hitbox) canon() Hitbox {
	if h.BR.Row < h.TL.Row {
		h.BR.Row = h.TL.Row
	}
	if h.BR.Col < h.TL.Col {
		h.BR.Col = h.TL.Col
	}
	return h
}

// TR returns the derived top-right corner.
func (h Hitbox) TR() Point {
	h = h.canon()
	return Point{Row: h.TL.Row, Col: h.BR.Col}
}

// BL returns the derived bottom-left corner.
func (h Hitbox) BL() Point {
	h = h.canon()
	return Point{Row: h.BR.Row, Col: h.TL.Col}
}

// Corners returns the four corners in tl, tr, br, bl order.
func (h Hitbox) Corners() [4]Point {
	h = h.canon()
	return [4]Point{h.TL, h.TR(), h.BR, h.BL()}
}

// Contains reports whether p lies inside the hitbox.
func (h Hitbox) Contains(p Point) bool {
	h = h.canon()
	return h.TL.Row <= p.Row && p.Row <= h.BR.Row &&
		h.TL.Col <= p.Col && p.Col <= h.BR.Col
}

// Translate returns the hitbox shifted by the given offsets.
func (h Hitbox) Translate(rows, cols int) Hitbox {
	return Hitbox{
		TL: Point{Row: h.TL.Row + rows, Col: h.TL.Col + cols},
		BR: Point{Row: h.BR.Row + rows, Col: h.BR.Col + cols},
	}
}

// Union returns the smallest hitbox covering both h and other.
func (h Hitbox) Union(other Hitbox) Hitbox {
	h, other = h.canon(), other.canon()
	if other.TL.Row < h.TL.Row {
		h.TL.Row = other.TL.Row
	}
	if other.TL.Col < h.TL.Col {
		h.TL.Col = other.TL.Col
	}
	if other.BR.Row > h.BR.Row {
		h.BR.Row = other.BR.Row
	}
	if other.BR.Col > h.BR.Col {
		h.BR.Col = other.BR.Col
	}
	return h
}

// DistanceFrom returns the directional distance from p to this hitbox: the
// minimum Distance from p to any of the four corners, or the InsideHitbox
// sentinel when p is already inside.
func (h Hitbox) DistanceFrom(p Point, dir Direction) int {
	h = h.canon()
	if h.Contains(p) {
		return InsideHitbox
	}
	best := Distance(p, h.TL, dir)
	for _, c := range [3]Point{h.TR(), h.BR, h.BL()} {
		if d := Distance(p, c, dir); d < best {
			best = d
		}
	}
	return best
}

// PerimeterDistanceFrom returns the minimum directional distance from p to
// any cell on the hitbox perimeter, or the InsideGroup sentinel when p is
// inside. Groups use this to rank their whole bounding box against a
// travelling cursor: sampling per-cell rather than per-corner matters
// because a group's true shape may be non-convex relative to its bounds.
func (h Hitbox) PerimeterDistanceFrom(p Point, dir Direction) int {
	h = h.canon()
	if h.Contains(p) {
		return InsideGroup
	}

	best := -1
	consider := func(q Point) {
		if d := Distance(p, q, dir); best < 0 || d < best {
			best = d
		}
	}
	for col := h.TL.Col; col <= h.BR.Col; col++ {
		consider(Point{Row: h.TL.Row, Col: col}) // top edge
		consider(Point{Row: h.BR.Row, Col: col}) // bottom edge
	}
	for row := h.TL.Row; row <= h.BR.Row; row++ {
		consider(Point{Row: row, Col: h.TL.Col}) // left edge
		consider(Point{Row: row, Col: h.BR.Col}) // right edge
	}
	return best
}
