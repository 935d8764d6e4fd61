package focus

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tdelacour/tuikit/geom"
)

// Container is an ordered collection of groups shown as one screen. It
// tracks which group holds focus and arbitrates moves between groups when
// a group escalates. At most one group is active at a time.
type Container struct {
	groups        []*Group
	selected      int
	defaultGroup  int
	defaultMember int
	booted        bool
}

// NewContainer returns an empty container whose bootstrap selection is
// group 0, member 0.
func NewContainer() *Container {
	return &Container{}
}

// SetDefaultSelection sets the (group, member) pair the one-time bootstrap
// focuses. Must be called before the first draw to have any effect.
func (c *Container) SetDefaultSelection(group, member int) {
	c.defaultGroup = group
	c.defaultMember = member
}

// AddToGroup adds a widget to the group at groupIndex. The group is created
// when groupIndex is exactly the next sequential index; anything further
// out of range is a programming error.
func (c *Container) AddToGroup(w Focusable, groupIndex int) {
	switch {
	case groupIndex >= 0 && groupIndex < len(c.groups):
		c.groups[groupIndex].Add(w)
	case groupIndex == len(c.groups):
		g := NewGroup()
		g.SetEscalator(c)
		g.Add(w)
		c.groups = append(c.groups, g)
	default:
		panic(fmt.Sprintf("focus: group index %d out of range, container has %d groups", groupIndex, len(c.groups)))
	}
}

// SetGroup replaces the group at index wholesale (index == len appends),
// installing this container as its escalator. Used to swap a static group
// for a dynamically generated one.
func (c *Container) SetGroup(g *Group, index int) {
	g.SetEscalator(c)
	switch {
	case index >= 0 && index < len(c.groups):
		c.groups[index] = g
	case index == len(c.groups):
		c.groups = append(c.groups, g)
	default:
		panic(fmt.Sprintf("focus: group index %d out of range, container has %d groups", index, len(c.groups)))
	}
}

// Group returns the group at index.
func (c *Container) Group(index int) *Group {
	return c.groups[index]
}

// Groups returns the number of groups.
func (c *Container) Groups() int {
	return len(c.groups)
}

// Clear drops all groups and resets the bootstrap state.
func (c *Container) Clear() {
	c.groups = nil
	c.selected = 0
	c.booted = false
}

// MoveFrom arbitrates a move a group could not resolve locally. It
// implements Escalator. The group whose bounds rank closest to the origin
// wins; when that is the currently active group the handoff is rejected so
// the caller falls back to a local reassignment instead of looping. Groups
// without members never win: their stale bounds still rank but there is
// nothing inside to focus.
func (c *Container) MoveFrom(origin geom.Point, dir geom.Direction) bool {
	n := c.selected
	m := NoSelection
	best := 0
	for i, g := range c.groups {
		if g.Len() == 0 {
			continue
		}
		if d := g.DistanceFrom(origin, dir); m == NoSelection || d < best {
			m, best = i, d
		}
	}

	if m == NoSelection || m == n {
		return false
	}

	c.groups[n].ReleaseFocus(dir)
	c.selected = m
	c.groups[m].TakeFocus(origin, dir)
	return true
}

// Select programmatically focuses the member at (groupIndex, memberIndex),
// deactivating every other group. It bypasses geometric search entirely;
// out-of-range indexes are programming errors.
func (c *Container) Select(groupIndex, memberIndex int) {
	if groupIndex < 0 || groupIndex >= len(c.groups) {
		panic(fmt.Sprintf("focus: Select group %d out of range, container has %d groups", groupIndex, len(c.groups)))
	}
	for i, g := range c.groups {
		if i == groupIndex {
			g.Activate(memberIndex)
			c.selected = groupIndex
		} else {
			g.Activate(NoSelection)
		}
	}
}

// Bootstrap performs the one-time default selection on first draw. It is a
// no-op on later calls and on containers that still have no groups (the
// legitimate before-first-render state).
func (c *Container) Bootstrap() {
	if c.booted || len(c.groups) == 0 {
		return
	}
	c.booted = true
	c.Select(c.defaultGroup, c.defaultMember)
}

// SelectedIndexes returns the active (group, member) pair, or
// (NoSelection, NoSelection) for an empty container.
func (c *Container) SelectedIndexes() (group, member int) {
	if c.selected < 0 || c.selected >= len(c.groups) {
		return NoSelection, NoSelection
	}
	return c.selected, c.groups[c.selected].SelectedIndex()
}

// SelectedWidget returns the focused widget, or nil.
func (c *Container) SelectedWidget() Focusable {
	if c.selected < 0 || c.selected >= len(c.groups) {
		return nil
	}
	return c.groups[c.selected].Selected()
}

// HandleKey routes a key press to the active group.
func (c *Container) HandleKey(msg tea.KeyMsg) bool {
	if c.selected < 0 || c.selected >= len(c.groups) {
		return false
	}
	return c.groups[c.selected].HandleKey(msg)
}

// Bypass reports whether the focused widget suppresses global shortcuts.
func (c *Container) Bypass() bool {
	if c.selected < 0 || c.selected >= len(c.groups) {
		return false
	}
	return c.groups[c.selected].Bypass()
}
