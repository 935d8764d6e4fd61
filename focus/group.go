package focus

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tdelacour/tuikit/geom"
)

// NoSelection marks a group (or container slot) with no focused member.
const NoSelection = -1

// Group is a flat cluster of focusable widgets navigated together before
// escalating outward. It caches the union of its members' hitboxes; the
// cache grows on Add and is only rebuilt by Clear followed by re-adding.
// At most one member holds focus at a time.
type Group struct {
	members   []Focusable
	bounds    geom.Hitbox
	hasBounds bool
	selected  int
	escalator Escalator
}

// NewGroup returns an empty group with no selection.
func NewGroup() *Group {
	return &Group{selected: NoSelection}
}

// SetEscalator installs the container the group escalates through when a
// move cannot be resolved locally. A nil escalator means escalation always
// fails and every move resolves inside the group.
func (g *Group) SetEscalator(e Escalator) {
	g.escalator = e
}

// Add appends a widget, installs this group as its owner and grows the
// cached bounds to cover the widget's hitbox.
func (g *Group) Add(w Focusable) {
	w.SetOwner(g)
	g.members = append(g.members, w)

	hb := w.Hitbox()
	if !g.hasBounds {
		g.bounds = hb
		g.hasBounds = true
		return
	}
	g.bounds = g.bounds.Union(hb)
}

// Clear drops all members and the selection. The cached bounds are kept so
// a cleared group still ranks against siblings with its last-known extent;
// the next Add reseeds them.
func (g *Group) Clear() {
	g.members = nil
	g.selected = NoSelection
	g.hasBounds = false
}

// Len returns the number of members.
func (g *Group) Len() int {
	return len(g.members)
}

// Member returns the widget at index i.
func (g *Group) Member(i int) Focusable {
	return g.members[i]
}

// SelectedIndex returns the focused member index, or NoSelection.
func (g *Group) SelectedIndex() int {
	return g.selected
}

// Selected returns the focused member, or nil.
func (g *Group) Selected() Focusable {
	if g.selected < 0 || g.selected >= len(g.members) {
		return nil
	}
	return g.members[g.selected]
}

// Bounds returns the cached bounding hitbox (possibly stale after Clear).
func (g *Group) Bounds() geom.Hitbox {
	return g.bounds
}

// SetBounds overrides the cached bounding hitbox. Intended for groups built
// as wholesale replacements (Container.SetGroup) whose extent is known
// before members are added.
func (g *Group) SetBounds(tl, br geom.Point) {
	g.bounds = geom.NewHitbox(tl, br)
	g.hasBounds = true
}

// Activate focuses the member at index and releases every other member.
// The focused member is entered with a synthetic origin since no travel
// produced the activation. index NoSelection deactivates the whole group.
// Any other out-of-range index is a programming error.
func (g *Group) Activate(index int) {
	if index < NoSelection || index >= len(g.members) {
		if index != NoSelection {
			panic(fmt.Sprintf("focus: Activate index %d out of range, group has %d members", index, len(g.members)))
		}
	}
	g.selected = index
	for i, m := range g.members {
		if i == index {
			m.TakeFocus(geom.Point{}, geom.Down)
		} else {
			m.ReleaseFocus(geom.Down)
		}
	}
}

// FindFirst returns the index of the member whose entry corner is closest
// to p under the linear first-entry metric, or NoSelection for an empty
// group. Used when a container hands focus into this group, where no prior
// alignment exists.
func (g *Group) FindFirst(p geom.Point, dir geom.Direction) int {
	best := NoSelection
	bestDist := 0
	for i, m := range g.members {
		d := geom.FirstEntry(p, geom.EntryCorner(m.Hitbox(), dir), dir)
		if best == NoSelection || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// closest returns the member index minimizing the zoned distance from
// origin to the member's hitbox, lowest index winning ties.
func (g *Group) closest(origin geom.Point, dir geom.Direction) int {
	best := NoSelection
	bestDist := 0
	for i, m := range g.members {
		d := m.Hitbox().DistanceFrom(origin, dir)
		if best == NoSelection || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// staysLocal reports whether a winning distance falls inside the zones the
// group resolves itself. The thresholds mirror the metric's zone layout:
// vertical travel has two ahead zones, horizontal travel four (straight,
// two lateral, same-column), and everything past them means the best
// candidate is behind the origin, so the move belongs to a sibling group.
func staysLocal(dist int, dir geom.Direction) bool {
	switch dir {
	case geom.Down, geom.Up:
		return dist < 2*geom.Band
	case geom.Right, geom.Left:
		return dist < 4*geom.Band
	}
	panic(fmt.Sprintf("focus: invalid direction %d", int(dir)))
}

// MoveFrom is the escalation entry point a member widget invokes when it
// cannot continue navigating internally. It implements Owner.
//
// The closest member under the zoned metric either takes focus directly
// (winner in a local zone) or the move escalates to the container. If the
// container reports failure - there is nowhere else to go - the local
// winner takes focus anyway so exactly one widget stays focused.
func (g *Group) MoveFrom(origin geom.Point, dir geom.Direction) {
	if g.selected < 0 || g.selected >= len(g.members) {
		panic("focus: MoveFrom called with no member focused")
	}

	current := g.members[g.selected]
	m := g.closest(origin, dir)
	dist := g.members[m].Hitbox().DistanceFrom(origin, dir)

	current.ReleaseFocus(dir)

	if !staysLocal(dist, dir) && g.escalator != nil && g.escalator.MoveFrom(origin, dir) {
		return
	}
	g.selected = m
	g.members[m].TakeFocus(origin, dir)
}

// DistanceFrom ranks this whole group against a travelling cursor for the
// container: the inside sentinel when p is within the cached bounds,
// otherwise the best per-cell perimeter distance. An empty group answers
// with its last-known bounds rather than erroring.
func (g *Group) DistanceFrom(p geom.Point, dir geom.Direction) int {
	return g.bounds.PerimeterDistanceFrom(p, dir)
}

// TakeFocus hands focus into the group from an outside origin, selecting
// the first-entry member.
func (g *Group) TakeFocus(origin geom.Point, dir geom.Direction) {
	id := g.FindFirst(origin, dir)
	if id == NoSelection {
		g.selected = NoSelection
		return
	}
	g.Activate(id)
}

// ReleaseFocus releases the focused member, if any, and clears the
// selection.
func (g *Group) ReleaseFocus(dir geom.Direction) {
	if w := g.Selected(); w != nil {
		w.ReleaseFocus(dir)
	}
	g.selected = NoSelection
}

// HandleKey routes a key press to the focused member.
func (g *Group) HandleKey(msg tea.KeyMsg) bool {
	if w := g.Selected(); w != nil {
		return w.HandleKey(msg)
	}
	return false
}

// Bypass reports whether the focused member suppresses global shortcuts.
func (g *Group) Bypass() bool {
	if w := g.Selected(); w != nil {
		return w.Bypass()
	}
	return false
}
