// Package cursor provides a reusable cursor for widgets that show a
// scrollable run of items or lines.
package cursor

// Cursor tracks a position and scroll offset inside a list. List length and
// viewport height are passed to methods rather than stored, since widgets
// resize and refill dynamically.
type Cursor struct {
	pos    int // current position (0-indexed)
	offset int // first visible item index
}

// Pos returns the current position.
func (c Cursor) Pos() int {
	return c.pos
}

// Offset returns the current scroll offset.
func (c Cursor) Offset() int {
	return c.offset
}

// AtStart reports whether the cursor sits on the first item.
func (c Cursor) AtStart() bool {
	return c.pos == 0
}

// AtEnd reports whether the cursor sits on the last item.
func (c Cursor) AtEnd(listLen int) bool {
	return listLen == 0 || c.pos == listLen-1
}

// Move shifts the cursor by delta, clamped to the list, and keeps it
// visible. No-op on an empty list.
func (c *Cursor) Move(delta, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(c.pos+delta, listLen-1)
	c.ensureVisible(listLen, height)
}

// Jump sets the cursor to an absolute position, clamped to the list, and
// keeps it visible. No-op on an empty list.
func (c *Cursor) Jump(pos, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(pos, listLen-1)
	c.ensureVisible(listLen, height)
}

// Reset returns the cursor to the first item with no scroll.
func (c *Cursor) Reset() {
	c.pos = 0
	c.offset = 0
}

// ClampTo keeps the cursor valid after the list shrank. It reports whether
// the position changed.
func (c *Cursor) ClampTo(listLen int) bool {
	if listLen == 0 {
		changed := c.pos != 0 || c.offset != 0
		c.Reset()
		return changed
	}
	old := c.pos
	c.pos = clamp(c.pos, listLen-1)
	return c.pos != old
}

// VisibleRange returns the visible index range [start, end).
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	return c.offset, min(c.offset+height, listLen)
}

func (c *Cursor) ensureVisible(listLen, height int) {
	if height <= 0 || listLen == 0 {
		return
	}
	if c.pos < c.offset {
		c.offset = c.pos
	}
	if c.pos >= c.offset+height {
		c.offset = c.pos - height + 1
	}
	c.offset = clamp(c.offset, max(listLen-height, 0))
}

func clamp(v, upper int) int {
	if v < 0 {
		return 0
	}
	if v > upper {
		return upper
	}
	return v
}
