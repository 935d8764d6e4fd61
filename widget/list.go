package widget

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tdelacour/tuikit/cursor"
	"github.com/tdelacour/tuikit/geom"
	"github.com/tdelacour/tuikit/render"
	"github.com/tdelacour/tuikit/style"
)

// SelectList is a scrollable list of options. Up and down move the
// highlight and only leave at the first or last option; left and right
// always leave, from the highlighted row. Enter fires the select callback.
type SelectList struct {
	Base
	options       []string
	cur           cursor.Cursor
	width, height int
	onSelect      func(index int, option string)
}

func NewSelectList(row, col, width, height int, options []string) *SelectList {
	l := &SelectList{width: width, height: height}
	l.SetPosition(row, col)
	l.SetOptions(options)
	return l
}

// OnSelect installs the callback enter fires with the highlighted option.
func (l *SelectList) OnSelect(fn func(index int, option string)) {
	l.onSelect = fn
}

func (l *SelectList) SetOptions(options []string) {
	l.options = make([]string, len(options))
	for i, o := range options {
		l.options[i] = render.Sanitize(o)
	}
	l.cur.ClampTo(len(l.options))
}

// Highlighted returns the index of the highlighted option, or -1 when the
// list is empty.
func (l *SelectList) Highlighted() int {
	if len(l.options) == 0 {
		return -1
	}
	return l.cur.Pos()
}

// cursorRow returns the highlighted row's absolute screen row.
func (l *SelectList) cursorRow() int {
	return l.row + l.cur.Pos() - l.cur.Offset()
}

func (l *SelectList) Hitbox() geom.Hitbox {
	if h, ok := l.overridden(); ok {
		return h
	}
	tl := geom.Point{Row: l.row, Col: l.col}
	return geom.Hitbox{TL: tl, BR: geom.Point{
		Row: l.row + l.height - 1,
		Col: l.col + l.width - 1,
	}}
}

// TakeFocus seeds the highlight from the direction of entry: entering
// downward starts at the top, upward at the bottom, and sideways on the row
// the move came from.
func (l *SelectList) TakeFocus(origin geom.Point, dir geom.Direction) {
	l.focused = true
	switch dir {
	case geom.Down:
		l.cur.Jump(0, len(l.options), l.height)
	case geom.Up:
		l.cur.Jump(len(l.options)-1, len(l.options), l.height)
	default:
		l.cur.Jump(origin.Row-l.row+l.cur.Offset(), len(l.options), l.height)
	}
}

func (l *SelectList) ReleaseFocus(dir geom.Direction) {
	l.focused = false
}

func (l *SelectList) HandleKey(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, Keys.Up):
		if l.cur.AtStart() {
			l.escalate(geom.Point{Row: l.row, Col: l.col}, geom.Up)
		} else {
			l.cur.Move(-1, len(l.options), l.height)
		}
		return true
	case key.Matches(msg, Keys.Down):
		if l.cur.AtEnd(len(l.options)) {
			l.escalate(geom.Point{Row: l.row + l.height - 1, Col: l.col}, geom.Down)
		} else {
			l.cur.Move(1, len(l.options), l.height)
		}
		return true
	case key.Matches(msg, Keys.Left):
		l.escalate(geom.Point{Row: l.cursorRow(), Col: l.col}, geom.Left)
		return true
	case key.Matches(msg, Keys.Right):
		l.escalate(geom.Point{Row: l.cursorRow(), Col: l.col + l.width - 1}, geom.Right)
		return true
	case key.Matches(msg, Keys.Accept):
		if l.onSelect != nil && len(l.options) > 0 {
			l.onSelect(l.cur.Pos(), l.options[l.cur.Pos()])
		}
		return true
	}
	return false
}

func (l *SelectList) View() string {
	s := style.T().S()
	start, end := l.cur.VisibleRange(len(l.options), l.height)

	rows := make([]string, 0, l.height)
	if len(l.options) == 0 {
		rows = append(rows, s.Muted.Render(render.Centered("(empty)", l.width)))
	}
	for i := start; i < end; i++ {
		text := render.Fixed("  "+l.options[i], l.width)
		switch {
		case i == l.cur.Pos() && l.focused:
			rows = append(rows, s.Cursor.Render("▸"+text[1:]))
		case i == l.cur.Pos():
			rows = append(rows, s.Base.Render(text))
		default:
			rows = append(rows, s.Muted.Render(text))
		}
	}
	for len(rows) < l.height {
		rows = append(rows, strings.Repeat(" ", l.width))
	}
	return strings.Join(rows, "\n")
}
