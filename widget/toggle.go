package widget

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tdelacour/tuikit/geom"
	"github.com/tdelacour/tuikit/render"
	"github.com/tdelacour/tuikit/style"
)

// Toggle is a labeled checkbox. Enter or space flips the state.
type Toggle struct {
	Base
	label    string
	checked  bool
	onToggle func(checked bool)
}

func NewToggle(row, col int, label string, onToggle func(bool)) *Toggle {
	t := &Toggle{label: render.Sanitize(label), onToggle: onToggle}
	t.SetPosition(row, col)
	return t
}

func (t *Toggle) Checked() bool {
	return t.checked
}

func (t *Toggle) SetChecked(checked bool) {
	t.checked = checked
}

func (t *Toggle) width() int {
	return render.Width(t.label) + 4 // "[x] "
}

func (t *Toggle) Hitbox() geom.Hitbox {
	if h, ok := t.overridden(); ok {
		return h
	}
	tl := geom.Point{Row: t.row, Col: t.col}
	return geom.Hitbox{TL: tl, BR: geom.Point{Row: t.row, Col: t.col + t.width() - 1}}
}

func (t *Toggle) TakeFocus(origin geom.Point, dir geom.Direction) {
	t.focused = true
}

func (t *Toggle) ReleaseFocus(dir geom.Direction) {
	t.focused = false
}

func (t *Toggle) HandleKey(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, Keys.Accept), msg.Type == tea.KeySpace:
		t.checked = !t.checked
		if t.onToggle != nil {
			t.onToggle(t.checked)
		}
		return true
	case key.Matches(msg, Keys.Up), key.Matches(msg, Keys.Down), key.Matches(msg, Keys.Left):
		t.escalate(geom.Point{Row: t.row, Col: t.col}, dirOf(msg))
		return true
	case key.Matches(msg, Keys.Right):
		t.escalate(geom.Point{Row: t.row, Col: t.col + t.width() - 1}, geom.Right)
		return true
	}
	return false
}

func (t *Toggle) View() string {
	mark := " "
	if t.checked {
		mark = "x"
	}
	text := fmt.Sprintf("[%s] %s", mark, t.label)
	if t.focused {
		return style.T().S().Focused.Render(text)
	}
	return style.T().S().Blurred.Render(text)
}
