// Command tuikit-demo is a small form application showing directional focus
// navigation across two widget groups.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tdelacour/tuikit/internal/config"
	"github.com/tdelacour/tuikit/internal/errmsg"
	"github.com/tdelacour/tuikit/internal/stderr"
	"github.com/tdelacour/tuikit/screen"
	"github.com/tdelacour/tuikit/style"
	"github.com/tdelacour/tuikit/widget"
)

const (
	screenWidth  = 72
	screenHeight = 18
)

// banner is a static drawable rendered with a color gradient.
type banner struct {
	row, col int
	text     string
}

func (b banner) Position() (row, col int) {
	return b.row, b.col
}

func (b banner) View() string {
	t := style.T()
	return style.ApplyGradient(b.text, t.Primary, t.Secondary)
}

type model struct {
	screen *screen.Screen
	status *widget.Label
}

func initialModel() (model, error) {
	cfg, err := config.Load()
	if err != nil {
		return model{}, err
	}
	style.SetTheme(cfg.ApplyTheme(*style.T()))

	s := screen.New(screenWidth, screenHeight)
	status := widget.NewLabel(15, 2, "arrows: move focus · enter: activate · q: quit")

	s.AddDrawable(banner{row: 1, col: 2, text: "tuikit demo"})
	s.AddDrawable(status)

	// Left group: a small form.
	name := widget.NewTextInput(3, 12, 24, "your name")
	bio := widget.NewTextBox(5, 12, 24, 4)
	subscribe := widget.NewToggle(10, 12, "subscribe to updates", func(checked bool) {
		status.SetText(fmt.Sprintf("subscribe: %v", checked))
	})
	submit := widget.NewButton(12, 12, "Submit", func() {
		status.SetText(fmt.Sprintf("submitted %q", name.Value()))
	})

	s.AddDrawable(widget.NewLabel(3, 2, "Name"))
	s.AddDrawable(widget.NewLabel(5, 2, "Bio"))
	s.AddWidget(name, 0)
	s.AddWidget(bio, 0)
	s.AddWidget(subscribe, 0)
	s.AddWidget(submit, 0)

	// Right group: a picker.
	picker := widget.NewSelectList(3, 46, 22, 8, []string{
		"tokyo night",
		"catppuccin",
		"gruvbox",
		"nord",
		"solarized",
	})
	picker.OnSelect(func(_ int, option string) {
		status.SetText(fmt.Sprintf("theme picked: %s", option))
	})
	refresh := widget.NewButton(12, 46, "Refresh", func() {
		status.SetText("refreshed")
	})

	s.AddDrawable(widget.NewLabel(2, 46, "Theme"))
	s.AddWidget(picker, 1)
	s.AddWidget(refresh, 1)

	c := s.Container()
	if cfg.Startup.Group >= 0 && cfg.Startup.Group < c.Groups() &&
		cfg.Startup.Widget >= 0 && cfg.Startup.Widget < c.Group(cfg.Startup.Group).Len() {
		c.SetDefaultSelection(cfg.Startup.Group, cfg.Startup.Widget)
	}

	return model{screen: s, status: status}, nil
}

// stderrMsg carries a captured stderr line into the update loop.
type stderrMsg string

func listenStderr() tea.Cmd {
	return func() tea.Msg {
		line, ok := <-stderr.Messages
		if !ok {
			return nil
		}
		return stderrMsg(line)
	}
}

func (m model) Init() tea.Cmd {
	return listenStderr()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if line, ok := msg.(stderrMsg); ok {
		m.status.SetError(string(line))
		return m, listenStderr()
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			// Editing widgets need the letter; only quit when the focused
			// widget does not claim raw input.
			if !m.screen.Bypass() {
				return m, tea.Quit
			}
		}
	}

	m.screen.Update(msg)
	return m, nil
}

func (m model) View() string {
	return m.screen.View()
}

func main() {
	// Capture stray fd-2 writes before entering the alternate screen.
	_ = stderr.Start()
	defer stderr.Stop()

	m, err := initialModel()
	if err != nil {
		stderr.Stop()
		fmt.Println(errmsg.Format(errmsg.OpConfigLoad, err))
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		stderr.WriteOriginal(errmsg.Format(errmsg.OpRun, err) + "\n")
		os.Exit(1)
	}
}
