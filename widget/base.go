// Package widget provides the built-in widget catalog: small stateful
// components that render with lipgloss and implement the focus.Focusable
// contract. Each widget decides when an arrow key moves its internal cursor
// and when it means "leave", in which case the widget escalates through its
// owning group.
package widget

import (
	"github.com/tdelacour/tuikit/focus"
	"github.com/tdelacour/tuikit/geom"
)

// Base carries the position, focus and ownership state every widget
// shares. Embed it in widget models; widgets implement TakeFocus and
// ReleaseFocus themselves when they need to seed or clear cursor state.
type Base struct {
	row, col int
	focused  bool
	bypass   bool
	owner    focus.Owner
	override *geom.Hitbox
}

// SetPosition moves the widget's top-left corner.
func (b *Base) SetPosition(row, col int) {
	b.row = row
	b.col = col
}

// Position returns the widget's top-left corner.
func (b *Base) Position() (row, col int) {
	return b.row, b.col
}

// IsFocused returns whether the widget currently holds focus.
func (b *Base) IsFocused() bool {
	return b.focused
}

// SetFocused sets the focus flag directly. Navigation uses TakeFocus and
// ReleaseFocus; this is for standalone rendering outside a group.
func (b *Base) SetFocused(focused bool) {
	b.focused = focused
}

// Bypass reports whether the widget suppresses global shortcuts while
// focused.
func (b *Base) Bypass() bool {
	return b.bypass
}

// SetBypass overrides the widget's global-shortcut suppression.
func (b *Base) SetBypass(bypass bool) {
	b.bypass = bypass
}

// SetOwner installs the group the widget escalates through.
func (b *Base) SetOwner(owner focus.Owner) {
	b.owner = owner
}

// OverrideHitbox pins the widget's hitbox instead of deriving it from
// position and content.
func (b *Base) OverrideHitbox(h geom.Hitbox) {
	b.override = &h
}

// ResetHitbox drops a pinned hitbox.
func (b *Base) ResetHitbox() {
	b.override = nil
}

// overridden returns the pinned hitbox, if any.
func (b *Base) overridden() (geom.Hitbox, bool) {
	if b.override != nil {
		return *b.override, true
	}
	return geom.Hitbox{}, false
}

// escalate hands a navigation request outward. A widget without an owner
// (standalone use) keeps focus.
func (b *Base) escalate(origin geom.Point, dir geom.Direction) {
	if b.owner != nil {
		b.owner.MoveFrom(origin, dir)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
