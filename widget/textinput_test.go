package widget

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/tdelacour/tuikit/geom"
)

func TestTextInput_TypingAndEditing(t *testing.T) {
	in := NewTextInput(0, 0, 10, "")
	in.TakeFocus(geom.Point{}, geom.Down)

	for _, r := range "hello" {
		assert.True(t, in.HandleKey(runesMsg(string(r))))
	}
	assert.True(t, in.HandleKey(keyMsg(tea.KeySpace)))
	assert.True(t, in.HandleKey(runesMsg("go")))
	assert.Equal(t, "hello go", in.Value())

	assert.True(t, in.HandleKey(keyMsg(tea.KeyBackspace)))
	assert.Equal(t, "hello g", in.Value())

	assert.True(t, in.HandleKey(keyMsg(tea.KeyHome)))
	assert.True(t, in.HandleKey(keyMsg(tea.KeyDelete)))
	assert.Equal(t, "ello g", in.Value())
}

func TestTextInput_LeftConsumedUntilStart(t *testing.T) {
	owner := &recordingOwner{}
	in := NewTextInput(3, 5, 10, "")
	in.SetOwner(owner)
	in.SetValue("ab")
	in.TakeFocus(geom.Point{Row: 3, Col: 7}, geom.Left)

	// Two moves reach the start; the third leaves.
	assert.True(t, in.HandleKey(keyMsg(tea.KeyLeft)))
	assert.True(t, in.HandleKey(keyMsg(tea.KeyLeft)))
	assert.Empty(t, owner.calls)

	assert.True(t, in.HandleKey(keyMsg(tea.KeyLeft)))
	if assert.Len(t, owner.calls, 1) {
		assert.Equal(t, geom.Left, owner.calls[0].dir)
		assert.Equal(t, geom.Point{Row: 3, Col: 5}, owner.calls[0].origin)
	}
}

func TestTextInput_RightLeavesFromRightEdge(t *testing.T) {
	owner := &recordingOwner{}
	in := NewTextInput(3, 5, 10, "")
	in.SetOwner(owner)
	in.SetValue("ab")
	in.TakeFocus(geom.Point{Row: 3, Col: 20}, geom.Left) // clamps to end

	assert.True(t, in.HandleKey(keyMsg(tea.KeyRight)))
	if assert.Len(t, owner.calls, 1) {
		assert.Equal(t, geom.Right, owner.calls[0].dir)
		assert.Equal(t, geom.Point{Row: 3, Col: 14}, owner.calls[0].origin)
	}
}

func TestTextInput_VerticalLeavesFromCursorColumn(t *testing.T) {
	owner := &recordingOwner{}
	in := NewTextInput(3, 5, 10, "")
	in.SetOwner(owner)
	in.SetValue("abcdef")
	in.TakeFocus(geom.Point{Row: 0, Col: 8}, geom.Down)

	assert.True(t, in.HandleKey(keyMsg(tea.KeyDown)))
	if assert.Len(t, owner.calls, 1) {
		assert.Equal(t, geom.Down, owner.calls[0].dir)
		assert.Equal(t, geom.Point{Row: 3, Col: 8}, owner.calls[0].origin)
	}
}

func TestTextInput_EntrySeedsCursorFromOrigin(t *testing.T) {
	in := NewTextInput(3, 5, 10, "")
	in.SetValue("abcdef")

	in.TakeFocus(geom.Point{Row: 2, Col: 7}, geom.Down)
	assert.Equal(t, 2, in.cur.Pos())

	// Entering from far right clamps to the insertion point.
	in.TakeFocus(geom.Point{Row: 3, Col: 40}, geom.Left)
	assert.Equal(t, 6, in.cur.Pos())
}

func TestTextInput_SuppressesGlobalShortcuts(t *testing.T) {
	in := NewTextInput(0, 0, 10, "")
	assert.True(t, in.Bypass())
}
