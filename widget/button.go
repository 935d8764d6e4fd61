package widget

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tdelacour/tuikit/geom"
	"github.com/tdelacour/tuikit/render"
	"github.com/tdelacour/tuikit/style"
)

// Button is a single-row push widget. Enter fires the press callback;
// arrow keys always leave.
type Button struct {
	Base
	label   string
	onPress func()
}

func NewButton(row, col int, label string, onPress func()) *Button {
	b := &Button{label: render.Sanitize(label), onPress: onPress}
	b.SetPosition(row, col)
	return b
}

func (b *Button) SetLabel(label string) {
	b.label = render.Sanitize(label)
}

// width returns the rendered width in cells, brackets included.
func (b *Button) width() int {
	return render.Width(b.label) + 4
}

func (b *Button) Hitbox() geom.Hitbox {
	if h, ok := b.overridden(); ok {
		return h
	}
	tl := geom.Point{Row: b.row, Col: b.col}
	return geom.Hitbox{TL: tl, BR: geom.Point{Row: b.row, Col: b.col + b.width() - 1}}
}

func (b *Button) TakeFocus(origin geom.Point, dir geom.Direction) {
	b.focused = true
}

func (b *Button) ReleaseFocus(dir geom.Direction) {
	b.focused = false
}

func (b *Button) HandleKey(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, Keys.Accept):
		if b.onPress != nil {
			b.onPress()
		}
		return true
	case key.Matches(msg, Keys.Up), key.Matches(msg, Keys.Down):
		b.escalate(geom.Point{Row: b.row, Col: b.col}, dirOf(msg))
		return true
	case key.Matches(msg, Keys.Left):
		b.escalate(geom.Point{Row: b.row, Col: b.col}, geom.Left)
		return true
	case key.Matches(msg, Keys.Right):
		b.escalate(geom.Point{Row: b.row, Col: b.col + b.width() - 1}, geom.Right)
		return true
	}
	return false
}

func (b *Button) View() string {
	text := fmt.Sprintf("[ %s ]", b.label)
	if b.focused {
		return style.T().S().Focused.Render(text)
	}
	return style.T().S().Blurred.Render(text)
}

// dirOf maps a matched navigation key to its direction. Callers only pass
// messages that matched one of the four arrow bindings.
func dirOf(msg tea.KeyMsg) geom.Direction {
	switch {
	case key.Matches(msg, Keys.Down):
		return geom.Down
	case key.Matches(msg, Keys.Right):
		return geom.Right
	case key.Matches(msg, Keys.Up):
		return geom.Up
	default:
		return geom.Left
	}
}
