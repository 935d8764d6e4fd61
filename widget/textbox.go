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

// TextBox is a multi-line editable area. Up and down move the edit cursor
// between lines and only leave once it sits on the first or last line. Left
// and right wrap across line boundaries and leave at the very start or end
// of the text.
type TextBox struct {
	Base
	lines         [][]rune
	line          cursor.Cursor // vertical position and scroll
	curCol        int
	width, height int
}

func NewTextBox(row, col, width, height int) *TextBox {
	t := &TextBox{
		lines:  [][]rune{nil},
		width:  width,
		height: height,
	}
	t.SetPosition(row, col)
	t.bypass = true
	return t
}

func (t *TextBox) Value() string {
	parts := make([]string, len(t.lines))
	for i, l := range t.lines {
		parts[i] = string(l)
	}
	return strings.Join(parts, "\n")
}

func (t *TextBox) SetValue(value string) {
	raw := strings.Split(value, "\n")
	t.lines = make([][]rune, len(raw))
	for i, l := range raw {
		t.lines[i] = []rune(render.Sanitize(l))
	}
	t.line.ClampTo(len(t.lines))
	t.curCol = clamp(t.curCol, 0, len(t.current()))
}

func (t *TextBox) current() []rune {
	return t.lines[t.line.Pos()]
}

// cursorPoint returns the edit cursor's absolute screen position.
func (t *TextBox) cursorPoint() geom.Point {
	return geom.Point{
		Row: t.row + t.line.Pos() - t.line.Offset(),
		Col: t.col + clamp(t.curCol, 0, t.width-1),
	}
}

func (t *TextBox) Hitbox() geom.Hitbox {
	if h, ok := t.overridden(); ok {
		return h
	}
	tl := geom.Point{Row: t.row, Col: t.col}
	return geom.Hitbox{TL: tl, BR: geom.Point{
		Row: t.row + t.height - 1,
		Col: t.col + t.width - 1,
	}}
}

// TakeFocus places the edit cursor on the line and column nearest where the
// move came from.
func (t *TextBox) TakeFocus(origin geom.Point, dir geom.Direction) {
	t.focused = true
	t.line.Jump(origin.Row-t.row+t.line.Offset(), len(t.lines), t.height)
	t.curCol = clamp(origin.Col-t.col, 0, len(t.current()))
}

func (t *TextBox) ReleaseFocus(dir geom.Direction) {
	t.focused = false
}

func (t *TextBox) HandleKey(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, Keys.Up):
		if t.line.AtStart() {
			t.escalate(t.cursorPoint(), geom.Up)
		} else {
			t.line.Move(-1, len(t.lines), t.height)
			t.curCol = clamp(t.curCol, 0, len(t.current()))
		}
		return true
	case key.Matches(msg, Keys.Down):
		if t.line.AtEnd(len(t.lines)) {
			t.escalate(t.cursorPoint(), geom.Down)
		} else {
			t.line.Move(1, len(t.lines), t.height)
			t.curCol = clamp(t.curCol, 0, len(t.current()))
		}
		return true
	case key.Matches(msg, Keys.Left):
		switch {
		case t.curCol > 0:
			t.curCol--
		case !t.line.AtStart():
			t.line.Move(-1, len(t.lines), t.height)
			t.curCol = len(t.current())
		default:
			t.escalate(geom.Point{Row: t.cursorPoint().Row, Col: t.col}, geom.Left)
		}
		return true
	case key.Matches(msg, Keys.Right):
		switch {
		case t.curCol < len(t.current()):
			t.curCol++
		case !t.line.AtEnd(len(t.lines)):
			t.line.Move(1, len(t.lines), t.height)
			t.curCol = 0
		default:
			t.escalate(geom.Point{Row: t.cursorPoint().Row, Col: t.col + t.width - 1}, geom.Right)
		}
		return true
	}

	switch msg.Type {
	case tea.KeyEnter:
		i, line := t.line.Pos(), t.current()
		rest := append([]rune(nil), line[t.curCol:]...)
		t.lines[i] = line[:t.curCol:t.curCol]
		t.lines = append(t.lines[:i+1], append([][]rune{rest}, t.lines[i+1:]...)...)
		t.line.Move(1, len(t.lines), t.height)
		t.curCol = 0
		return true
	case tea.KeyBackspace:
		i, line := t.line.Pos(), t.current()
		switch {
		case t.curCol > 0:
			t.lines[i] = append(line[:t.curCol-1], line[t.curCol:]...)
			t.curCol--
		case i > 0:
			prev := t.lines[i-1]
			t.curCol = len(prev)
			t.lines[i-1] = append(prev, line...)
			t.lines = append(t.lines[:i], t.lines[i+1:]...)
			t.line.Move(-1, len(t.lines), t.height)
		}
		return true
	case tea.KeySpace:
		t.insert([]rune{' '})
		return true
	case tea.KeyRunes:
		t.insert(msg.Runes)
		return true
	}
	return false
}

func (t *TextBox) insert(runes []rune) {
	i, line := t.line.Pos(), t.current()
	t.lines[i] = append(line[:t.curCol:t.curCol], append(runes, line[t.curCol:]...)...)
	t.curCol += len(runes)
}

func (t *TextBox) View() string {
	s := style.T().S()
	start, end := t.line.VisibleRange(len(t.lines), t.height)

	rows := make([]string, 0, t.height)
	for i := start; i < end; i++ {
		text := render.Fixed(string(t.lines[i]), t.width)
		if t.focused && i == t.line.Pos() {
			rel := clamp(t.curCol, 0, t.width-1)
			runes := []rune(text)
			for len(runes) <= rel {
				runes = append(runes, ' ')
			}
			rows = append(rows,
				s.Edit.Render(string(runes[:rel]))+
					s.Cursor.Render(string(runes[rel]))+
					s.Edit.Render(string(runes[rel+1:])))
			continue
		}
		rows = append(rows, s.Edit.Render(text))
	}
	for len(rows) < t.height {
		rows = append(rows, s.Edit.Render(strings.Repeat(" ", t.width)))
	}
	return strings.Join(rows, "\n")
}
