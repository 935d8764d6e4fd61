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

// TextInput is a single-row editable field. Left and right move the edit
// cursor and only leave once it sits at the corresponding end of the text;
// up and down always leave. While focused the field suppresses global
// shortcuts so typed letters land in the text.
type TextInput struct {
	Base
	text        []rune
	cur         cursor.Cursor
	width       int
	placeholder string
	onSubmit    func(value string)
}

func NewTextInput(row, col, width int, placeholder string) *TextInput {
	t := &TextInput{width: width, placeholder: render.Sanitize(placeholder)}
	t.SetPosition(row, col)
	t.bypass = true
	return t
}

// OnSubmit installs the callback enter fires with the current value.
func (t *TextInput) OnSubmit(fn func(value string)) {
	t.onSubmit = fn
}

func (t *TextInput) Value() string {
	return string(t.text)
}

func (t *TextInput) SetValue(value string) {
	t.text = []rune(render.Sanitize(value))
	t.cur.ClampTo(t.slots())
}

// slots counts cursor positions: one per rune plus the insertion point past
// the last rune.
func (t *TextInput) slots() int {
	return len(t.text) + 1
}

// cursorCol returns the cursor's absolute screen column.
func (t *TextInput) cursorCol() int {
	return t.col + t.cur.Pos() - t.cur.Offset()
}

func (t *TextInput) Hitbox() geom.Hitbox {
	if h, ok := t.overridden(); ok {
		return h
	}
	tl := geom.Point{Row: t.row, Col: t.col}
	return geom.Hitbox{TL: tl, BR: geom.Point{Row: t.row, Col: t.col + t.width - 1}}
}

// TakeFocus seeds the edit cursor from the column the move came from, so
// entering the field feels like the cursor traveled in a straight line.
func (t *TextInput) TakeFocus(origin geom.Point, dir geom.Direction) {
	t.focused = true
	t.cur.Jump(origin.Col-t.col+t.cur.Offset(), t.slots(), t.width)
}

func (t *TextInput) ReleaseFocus(dir geom.Direction) {
	t.focused = false
}

func (t *TextInput) HandleKey(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, Keys.Left):
		if t.cur.AtStart() {
			t.escalate(geom.Point{Row: t.row, Col: t.col}, geom.Left)
		} else {
			t.cur.Move(-1, t.slots(), t.width)
		}
		return true
	case key.Matches(msg, Keys.Right):
		if t.cur.AtEnd(t.slots()) {
			t.escalate(geom.Point{Row: t.row, Col: t.col + t.width - 1}, geom.Right)
		} else {
			t.cur.Move(1, t.slots(), t.width)
		}
		return true
	case key.Matches(msg, Keys.Up), key.Matches(msg, Keys.Down):
		t.escalate(geom.Point{Row: t.row, Col: t.cursorCol()}, dirOf(msg))
		return true
	case key.Matches(msg, Keys.Accept):
		if t.onSubmit != nil {
			t.onSubmit(t.Value())
			return true
		}
		return false
	}

	switch msg.Type {
	case tea.KeyHome:
		t.cur.Jump(0, t.slots(), t.width)
		return true
	case tea.KeyEnd:
		t.cur.Jump(len(t.text), t.slots(), t.width)
		return true
	case tea.KeyBackspace:
		if p := t.cur.Pos(); p > 0 {
			t.text = append(t.text[:p-1], t.text[p:]...)
			t.cur.Move(-1, t.slots(), t.width)
		}
		return true
	case tea.KeyDelete:
		if p := t.cur.Pos(); p < len(t.text) {
			t.text = append(t.text[:p], t.text[p+1:]...)
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

func (t *TextInput) insert(runes []rune) {
	p := t.cur.Pos()
	t.text = append(t.text[:p:p], append(runes, t.text[p:]...)...)
	t.cur.Move(len(runes), t.slots(), t.width)
}

func (t *TextInput) View() string {
	s := style.T().S()
	if len(t.text) == 0 && !t.focused && t.placeholder != "" {
		return s.Muted.Render(render.Fixed(t.placeholder, t.width))
	}

	start, end := t.cur.Offset(), min(t.cur.Offset()+t.width, len(t.text))
	window := string(t.text[start:end])
	if !t.focused {
		return s.Edit.Render(render.Fixed(window, t.width))
	}

	// Highlight the cell under the cursor. Wide runes can leave fewer runes
	// than cells, so pad rune-wise before indexing.
	rel := t.cur.Pos() - start
	runes := []rune(render.Pad(window, t.width))
	for len(runes) <= rel {
		runes = append(runes, ' ')
	}
	var b strings.Builder
	b.WriteString(s.Edit.Render(string(runes[:rel])))
	b.WriteString(s.Cursor.Render(string(runes[rel])))
	b.WriteString(s.Edit.Render(string(runes[rel+1:])))
	return b.String()
}
