// Package screen composes widgets into a fixed-size terminal canvas and
// routes key input to the focused widget through the container.
package screen

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/tdelacour/tuikit/focus"
	"github.com/tdelacour/tuikit/geom"
)

// Drawable is anything the screen can paint: it knows where it sits and
// renders itself as a (possibly multi-line, possibly styled) block.
type Drawable interface {
	Position() (row, col int)
	View() string
}

// Widget is a drawable that participates in focus navigation.
type Widget interface {
	focus.Focusable
	Drawable
}

// Screen owns one container of focusable widgets plus static drawables.
// Draw order is insertion order: static content first, then widgets.
type Screen struct {
	container *focus.Container
	statics   []Drawable
	widgets   []Widget

	width, height int
}

// New creates an empty screen. The navigation metric packs row and column
// offsets into fields of geom.MaxDelta cells, so both dimensions must stay
// below it.
func New(width, height int) *Screen {
	if width >= geom.MaxDelta || height >= geom.MaxDelta {
		panic(fmt.Sprintf("screen: %dx%d exceeds the %d-cell coordinate space",
			width, height, geom.MaxDelta))
	}
	return &Screen{
		container: focus.NewContainer(),
		width:     width,
		height:    height,
	}
}

// Container exposes the screen's focus container for group setup.
func (s *Screen) Container() *focus.Container {
	return s.container
}

// Size returns the canvas dimensions.
func (s *Screen) Size() (width, height int) {
	return s.width, s.height
}

// AddWidget registers a focusable widget in the given navigation group and
// paints it above static content.
func (s *Screen) AddWidget(w Widget, group int) {
	s.container.AddToGroup(w, group)
	s.widgets = append(s.widgets, w)
}

// AddDrawable registers static, non-focusable content.
func (s *Screen) AddDrawable(d Drawable) {
	s.statics = append(s.statics, d)
}

// Bypass reports whether the focused widget wants global shortcuts
// suppressed. The application checks this before acting on keys like "q".
func (s *Screen) Bypass() bool {
	return s.container.Bypass()
}

// Update routes a message to the screen. Key messages go to the focused
// widget; the first one bootstraps focus if nothing is focused yet.
func (s *Screen) Update(msg tea.Msg) bool {
	if key, ok := msg.(tea.KeyMsg); ok {
		s.container.Bootstrap()
		return s.container.HandleKey(key)
	}
	return false
}

// View paints all drawables onto a blank canvas.
func (s *Screen) View() string {
	s.container.Bootstrap()

	blank := strings.Repeat(" ", s.width)
	canvas := make([]string, s.height)
	for i := range canvas {
		canvas[i] = blank
	}

	for _, d := range s.statics {
		s.paint(canvas, d)
	}
	for _, w := range s.widgets {
		s.paint(canvas, w)
	}
	return strings.Join(canvas, "\n")
}

func (s *Screen) paint(canvas []string, d Drawable) {
	row, col := d.Position()
	if col < 0 || col >= s.width {
		return
	}
	for i, line := range strings.Split(d.View(), "\n") {
		r := row + i
		if r < 0 || r >= s.height {
			continue
		}
		canvas[r] = overlayLine(canvas[r], line, col, s.width)
	}
}

// overlayLine splices styled content into a base line at a display column,
// cutting by cells so ANSI sequences stay intact.
func overlayLine(base, content string, col, width int) string {
	w := ansi.StringWidth(ansi.Strip(content))
	if w == 0 {
		return base
	}
	if col+w > width {
		content = ansi.Truncate(content, width-col, "")
		w = width - col
	}

	result := ansi.Cut(base, 0, col) + content
	if col+w < width {
		result += ansi.Cut(base, col+w, width)
	}
	return result
}
