package focus

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdelacour/tuikit/geom"
)

// stubWidget records the focus lifecycle calls a group makes.
type stubWidget struct {
	hitbox   geom.Hitbox
	owner    Owner
	focused  bool
	bypass   bool
	takes    int
	releases int
	origin   geom.Point
	dir      geom.Direction
}

func newStub(tl, br geom.Point) *stubWidget {
	return &stubWidget{hitbox: geom.NewHitbox(tl, br)}
}

func (s *stubWidget) Hitbox() geom.Hitbox { return s.hitbox }

func (s *stubWidget) TakeFocus(origin geom.Point, dir geom.Direction) {
	s.focused = true
	s.takes++
	s.origin = origin
	s.dir = dir
}

func (s *stubWidget) ReleaseFocus(geom.Direction) {
	s.focused = false
	s.releases++
}

func (s *stubWidget) HandleKey(tea.KeyMsg) bool { return false }
func (s *stubWidget) Bypass() bool              { return s.bypass }
func (s *stubWidget) SetOwner(o Owner)          { s.owner = o }

// leave simulates the widget deciding an arrow press should leave it: it
// escalates through its owner from the given cursor point.
func (s *stubWidget) leave(from geom.Point, dir geom.Direction) {
	s.owner.MoveFrom(from, dir)
}

func rowWidget(row, colStart, colEnd int) *stubWidget {
	return newStub(geom.Point{Row: row, Col: colStart}, geom.Point{Row: row, Col: colEnd})
}

func TestGroup_AddInstallsOwnerAndGrowsBounds(t *testing.T) {
	g := NewGroup()
	a := rowWidget(0, 0, 9)
	b := rowWidget(5, 2, 20)

	g.Add(a)
	assert.Same(t, Owner(g), a.owner)
	assert.Equal(t, a.hitbox, g.Bounds())

	g.Add(b)
	assert.Equal(t, geom.NewHitbox(geom.Point{}, geom.Point{Row: 5, Col: 20}), g.Bounds())
}

func TestGroup_BoundsNeverShrinkOnAdd(t *testing.T) {
	g := NewGroup()
	g.Add(rowWidget(0, 0, 40))
	g.Add(rowWidget(1, 0, 5))

	assert.Equal(t, geom.NewHitbox(geom.Point{}, geom.Point{Row: 1, Col: 40}), g.Bounds())
}

func TestGroup_ClearThenReAddShrinksBounds(t *testing.T) {
	g := NewGroup()
	g.Add(rowWidget(0, 0, 40))
	g.Clear()
	g.Add(rowWidget(2, 2, 6))

	assert.Equal(t, geom.NewHitbox(geom.Point{Row: 2, Col: 2}, geom.Point{Row: 2, Col: 6}), g.Bounds())
}

func TestGroup_Activate(t *testing.T) {
	g := NewGroup()
	a, b := rowWidget(0, 0, 9), rowWidget(2, 0, 9)
	g.Add(a)
	g.Add(b)

	g.Activate(1)
	assert.False(t, a.focused)
	assert.True(t, b.focused)
	assert.Equal(t, 1, g.SelectedIndex())
	assert.Equal(t, geom.Point{}, b.origin, "programmatic activation uses the synthetic origin")

	g.Activate(NoSelection)
	assert.False(t, b.focused)
	assert.Equal(t, NoSelection, g.SelectedIndex())
}

func TestGroup_ActivateOutOfRangePanics(t *testing.T) {
	g := NewGroup()
	g.Add(rowWidget(0, 0, 9))

	assert.Panics(t, func() { g.Activate(1) })
	assert.Panics(t, func() { g.Activate(-2) })
}

func TestGroup_MoveFromWithoutSelectionPanics(t *testing.T) {
	g := NewGroup()
	g.Add(rowWidget(0, 0, 9))

	assert.Panics(t, func() { g.MoveFrom(geom.Point{}, geom.Down) })
}

// Three widgets stacked vertically at rows 0, 5, 10: Down, Down lands on
// the bottom one, Up returns to the middle one.
func TestGroup_VerticalStackNavigation(t *testing.T) {
	g := NewGroup()
	top := rowWidget(0, 0, 9)
	mid := rowWidget(5, 0, 9)
	bot := rowWidget(10, 0, 9)
	g.Add(top)
	g.Add(mid)
	g.Add(bot)
	g.Activate(0)

	top.leave(geom.Point{Row: 0, Col: 0}, geom.Down)
	assert.Equal(t, 1, g.SelectedIndex())
	assert.True(t, mid.focused)

	mid.leave(geom.Point{Row: 5, Col: 0}, geom.Down)
	assert.Equal(t, 2, g.SelectedIndex())
	assert.True(t, bot.focused)

	bot.leave(geom.Point{Row: 10, Col: 0}, geom.Up)
	assert.Equal(t, 1, g.SelectedIndex())
	assert.True(t, mid.focused)
	assert.False(t, bot.focused)
}

// Moving Down then Up between two aligned widgets is a round trip, and so
// is Right then Left.
func TestGroup_RoundTripSymmetry(t *testing.T) {
	t.Run("vertical", func(t *testing.T) {
		g := NewGroup()
		a := rowWidget(0, 0, 9)
		b := rowWidget(6, 0, 9)
		g.Add(a)
		g.Add(b)
		g.Activate(0)

		a.leave(geom.Point{Row: 0, Col: 4}, geom.Down)
		require.True(t, b.focused)
		// The cursor now sits on b's row; leaving upward returns to a.
		b.leave(geom.Point{Row: 6, Col: 4}, geom.Up)
		assert.True(t, a.focused)
		assert.Equal(t, 0, g.SelectedIndex())
	})

	t.Run("horizontal", func(t *testing.T) {
		g := NewGroup()
		a := newStub(geom.Point{Row: 2, Col: 0}, geom.Point{Row: 2, Col: 5})
		b := newStub(geom.Point{Row: 2, Col: 12}, geom.Point{Row: 2, Col: 17})
		g.Add(a)
		g.Add(b)
		g.Activate(0)

		a.leave(geom.Point{Row: 2, Col: 5}, geom.Right)
		require.True(t, b.focused)
		b.leave(geom.Point{Row: 2, Col: 12}, geom.Left)
		assert.True(t, a.focused)
	})
}

// With no escalator installed, a move whose best candidate is behind the
// origin still resolves locally so focus is never lost.
func TestGroup_NoEscalatorFallsBackLocally(t *testing.T) {
	g := NewGroup()
	a := rowWidget(0, 0, 9)
	b := rowWidget(5, 0, 9)
	g.Add(a)
	g.Add(b)
	g.Activate(1)

	// Down from the bottom widget: only candidates are behind.
	b.leave(geom.Point{Row: 5, Col: 0}, geom.Down)

	assert.NotEqual(t, NoSelection, g.SelectedIndex())
	assert.NotNil(t, g.Selected())
}

// failingEscalator rejects every handoff and counts attempts.
type failingEscalator struct{ calls int }

func (f *failingEscalator) MoveFrom(geom.Point, geom.Direction) bool {
	f.calls++
	return false
}

func TestGroup_EscalatesWhenBestCandidateIsBehind(t *testing.T) {
	g := NewGroup()
	esc := &failingEscalator{}
	g.SetEscalator(esc)

	a := rowWidget(0, 0, 9)
	b := rowWidget(5, 0, 9)
	g.Add(a)
	g.Add(b)
	g.Activate(0)

	// Up from the top widget: nothing ahead, the move must escalate.
	a.leave(geom.Point{Row: 0, Col: 0}, geom.Up)
	assert.Equal(t, 1, esc.calls)
	// Rejected handoff falls back to a local reassignment.
	assert.NotEqual(t, NoSelection, g.SelectedIndex())

	// Down from the top widget resolves locally, no escalation.
	g.Activate(0)
	a.leave(geom.Point{Row: 0, Col: 0}, geom.Down)
	assert.Equal(t, 1, esc.calls)
	assert.Equal(t, 1, g.SelectedIndex())
}

func TestGroup_FindFirstTieBreaksOnLowestIndex(t *testing.T) {
	g := NewGroup()
	a := rowWidget(3, 0, 9)
	b := rowWidget(3, 0, 9) // identical geometry
	g.Add(a)
	g.Add(b)

	assert.Equal(t, 0, g.FindFirst(geom.Point{Row: 0, Col: 0}, geom.Down))
}

func TestGroup_FindFirstEmptyGroup(t *testing.T) {
	g := NewGroup()
	assert.Equal(t, NoSelection, g.FindFirst(geom.Point{}, geom.Down))
}

func TestGroup_DistanceFromUsesStaleBoundsAfterClear(t *testing.T) {
	g := NewGroup()
	g.Add(rowWidget(10, 0, 9))
	g.Clear()

	require.Zero(t, g.Len())
	assert.NotPanics(t, func() {
		d := g.DistanceFrom(geom.Point{Row: 0, Col: 0}, geom.Down)
		// Last-known bounds at row 10 are still ranked ahead.
		assert.Less(t, d, geom.Band)
	})
}

func TestGroup_DistanceFromInside(t *testing.T) {
	g := NewGroup()
	g.Add(newStub(geom.Point{Row: 0, Col: 0}, geom.Point{Row: 10, Col: 10}))

	assert.Equal(t, geom.InsideGroup, g.DistanceFrom(geom.Point{Row: 5, Col: 5}, geom.Up))
}

func TestGroup_TakeFocusEntersViaFirstEntryMetric(t *testing.T) {
	g := NewGroup()
	far := rowWidget(8, 0, 9)
	near := rowWidget(2, 0, 9)
	g.Add(far)
	g.Add(near)

	g.TakeFocus(geom.Point{Row: 0, Col: 0}, geom.Down)
	assert.Equal(t, 1, g.SelectedIndex())
	assert.True(t, near.focused)
}

func TestGroup_BypassFollowsSelectedMember(t *testing.T) {
	g := NewGroup()
	plain := rowWidget(0, 0, 9)
	editor := rowWidget(2, 0, 9)
	editor.bypass = true
	g.Add(plain)
	g.Add(editor)

	g.Activate(0)
	assert.False(t, g.Bypass())
	g.Activate(1)
	assert.True(t, g.Bypass())
	g.Activate(NoSelection)
	assert.False(t, g.Bypass())
}

func TestGroup_ReleaseFocusIsIdempotent(t *testing.T) {
	g := NewGroup()
	a := rowWidget(0, 0, 9)
	g.Add(a)
	g.Activate(0)

	g.ReleaseFocus(geom.Down)
	assert.NotPanics(t, func() { g.ReleaseFocus(geom.Down) })
	assert.Equal(t, NoSelection, g.SelectedIndex())
}
