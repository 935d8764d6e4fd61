// Package style defines the color theme and pre-built lipgloss styles the
// widget catalog renders with.
package style

import "github.com/charmbracelet/lipgloss"

// Theme is the color palette widgets draw from. Focused and blurred
// variants must stay visually distinct: rendering collaborators rely on the
// difference to show where focus sits.
type Theme struct {
	// Accents
	Primary   lipgloss.Color // focused widgets, active cursor
	Secondary lipgloss.Color // secondary accent (toggles, markers)

	// Text hierarchy
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	// Backgrounds
	BgCursor lipgloss.Color // selection highlight inside widgets
	BgFocus  lipgloss.Color // focused widget background

	// Borders
	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	// Status
	Error lipgloss.Color

	styles *Styles
}

// Styles contains the pre-built styles widgets share.
type Styles struct {
	Base    lipgloss.Style // default text
	Muted   lipgloss.Style
	Label   lipgloss.Style // static labels
	Focused lipgloss.Style // focused interactive widget
	Blurred lipgloss.Style // unfocused interactive widget
	Cursor  lipgloss.Style // cursor cell / highlighted row
	Edit    lipgloss.Style // editable text content
	Error   lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#7aa2f7"),
	Secondary: lipgloss.Color("#e0af68"),

	FgBase:   lipgloss.Color("#c0caf5"),
	FgMuted:  lipgloss.Color("#787c99"),
	FgSubtle: lipgloss.Color("#565f89"),

	BgCursor: lipgloss.Color("#33467c"),
	BgFocus:  lipgloss.Color("#292e42"),

	Border:      lipgloss.Color("#565f89"),
	BorderFocus: lipgloss.Color("#7aa2f7"),

	Error: lipgloss.Color("#f7768e"),
}

var current = defaultTheme

// T returns the active theme.
func T() *Theme {
	return &current
}

// SetTheme replaces the active theme and invalidates the built styles.
// Call before the first render; widgets resolve styles at draw time.
func SetTheme(t Theme) {
	t.styles = nil
	current = t
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:    base,
		Muted:   lipgloss.NewStyle().Foreground(t.FgMuted),
		Label:   lipgloss.NewStyle().Foreground(t.FgSubtle),
		Focused: lipgloss.NewStyle().Foreground(t.Primary).Background(t.BgFocus).Bold(true),
		Blurred: lipgloss.NewStyle().Foreground(t.FgMuted),
		Cursor:  base.Background(t.BgCursor),
		Edit:    base.Background(t.BgFocus),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
	}
}
