package cursor

import "testing"

func TestMove_ClampsToList(t *testing.T) {
	var c Cursor

	c.Move(3, 10, 5)
	if c.Pos() != 3 {
		t.Errorf("Pos = %d, want 3", c.Pos())
	}

	c.Move(100, 10, 5)
	if c.Pos() != 9 {
		t.Errorf("Pos = %d, want 9", c.Pos())
	}

	c.Move(-100, 10, 5)
	if c.Pos() != 0 {
		t.Errorf("Pos = %d, want 0", c.Pos())
	}
}

func TestMove_EmptyListIsNoop(t *testing.T) {
	var c Cursor
	c.Move(5, 0, 5)
	if c.Pos() != 0 || c.Offset() != 0 {
		t.Errorf("got pos=%d offset=%d, want 0,0", c.Pos(), c.Offset())
	}
}

func TestMove_ScrollsToKeepCursorVisible(t *testing.T) {
	var c Cursor

	c.Move(7, 20, 5) // pos 7, viewport of 5
	if c.Offset() != 3 {
		t.Errorf("Offset = %d, want 3", c.Offset())
	}

	c.Move(-7, 20, 5) // back to 0
	if c.Offset() != 0 {
		t.Errorf("Offset = %d, want 0", c.Offset())
	}
}

func TestJump_AndVisibleRange(t *testing.T) {
	var c Cursor
	c.Jump(15, 20, 5)

	start, end := c.VisibleRange(20, 5)
	if start > 15 || end <= 15 {
		t.Errorf("VisibleRange = [%d,%d), must contain 15", start, end)
	}
	if end-start != 5 {
		t.Errorf("viewport size = %d, want 5", end-start)
	}
}

func TestAtStartAtEnd(t *testing.T) {
	var c Cursor
	if !c.AtStart() {
		t.Error("fresh cursor must be AtStart")
	}
	c.Jump(9, 10, 5)
	if !c.AtEnd(10) {
		t.Error("cursor at last index must be AtEnd")
	}
	if c.AtStart() {
		t.Error("cursor at last index must not be AtStart")
	}
}

func TestClampTo_ShrunkList(t *testing.T) {
	var c Cursor
	c.Jump(9, 10, 5)

	if changed := c.ClampTo(4); !changed {
		t.Error("expected clamp to report a change")
	}
	if c.Pos() != 3 {
		t.Errorf("Pos = %d, want 3", c.Pos())
	}

	if changed := c.ClampTo(0); !changed {
		t.Error("expected reset on empty list")
	}
	if c.Pos() != 0 || c.Offset() != 0 {
		t.Errorf("got pos=%d offset=%d, want 0,0", c.Pos(), c.Offset())
	}
}
