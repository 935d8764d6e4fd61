// Package focus implements directional focus navigation between widgets:
// a Group resolves arrow-key movement among its members by ranking hitbox
// corners with the geom distance metric, and a Container arbitrates between
// groups when a group cannot resolve a move locally. The whole escalation
// chain (widget -> group -> container -> group -> widget) runs inline in
// the key-handling path; nothing here is safe for concurrent use.
package focus

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tdelacour/tuikit/geom"
)

// Focusable is the capability contract for anything that can hold focus.
// Concrete widgets decide when an arrow key means "move within me" versus
// "leave me"; on leave they call their Owner's MoveFrom with the point
// their internal cursor sits at.
type Focusable interface {
	// Hitbox returns the widget bounds in screen cells.
	Hitbox() geom.Hitbox

	// TakeFocus marks the widget focused. origin is where focus came
	// from and dir the travel direction, so the widget can seed its
	// internal cursor (e.g. a text box entered from below starts on its
	// last line).
	TakeFocus(origin geom.Point, dir geom.Direction)

	// ReleaseFocus clears focus and any internal highlight state. It must
	// be idempotent: groups re-release every non-selected member on
	// activation.
	ReleaseFocus(dir geom.Direction)

	// HandleKey processes one key press while focused. It reports whether
	// the key was consumed.
	HandleKey(msg tea.KeyMsg) bool

	// Bypass reports whether global shortcuts should be suppressed while
	// this widget holds focus (text inputs want plain letters).
	Bypass() bool

	// SetOwner installs the group the widget escalates through. Called by
	// Group.Add on every membership change.
	SetOwner(owner Owner)
}

// Owner receives navigation requests a focused widget cannot resolve
// internally. Group implements it; widgets hold their owning group through
// this interface rather than a rebindable callback.
type Owner interface {
	MoveFrom(origin geom.Point, dir geom.Direction)
}

// Escalator is the container-side half of the escalation chain: a group
// that cannot resolve a move locally asks its escalator to hand focus to a
// sibling group. The return value reports whether another group accepted;
// on false the group falls back to a local reassignment so focus is never
// lost.
type Escalator interface {
	MoveFrom(origin geom.Point, dir geom.Direction) bool
}
