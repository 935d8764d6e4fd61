package widget

import (
	"github.com/tdelacour/tuikit/render"
	"github.com/tdelacour/tuikit/style"
)

// Label is a static line of text. It never participates in focus
// navigation; add it to a screen as a plain drawable.
type Label struct {
	row, col int
	text     string
	isError  bool
}

func NewLabel(row, col int, text string) *Label {
	return &Label{row: row, col: col, text: render.Sanitize(text)}
}

func (l *Label) Position() (row, col int) {
	return l.row, l.col
}

// SetText replaces the label's content and returns it to normal styling.
func (l *Label) SetText(text string) {
	l.text = render.Sanitize(text)
	l.isError = false
}

// SetError replaces the label's content and renders it in the theme's
// error color until the next SetText.
func (l *Label) SetError(text string) {
	l.text = render.Sanitize(text)
	l.isError = true
}

func (l *Label) View() string {
	if l.isError {
		return style.T().S().Error.Render(l.text)
	}
	return style.T().S().Label.Render(l.text)
}
