package welcome

import (
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vetcards/internal/router"
	"github.com/abhisek/vetcards/internal/screen"
	"github.com/abhisek/vetcards/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	fadeDur      = 500 * time.Millisecond
	holdDur      = 2000 * time.Millisecond
)

type tickMsg time.Time

// WelcomeScreen fades the banner in, then hands over to the home screen on
// a keypress or once holdDur has passed.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		w.elapsed += tickInterval
		if w.elapsed >= holdDur {
			return w, w.transition()
		}
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{
		RenderBanner(width, w.bannerColor()),
		"",
		lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("Disease ⇄ Symptom flashcards for the clinic"),
	}

	if w.elapsed >= fadeDur {
		sections = append(sections, "", theme.Hint.Render("press any key to continue"))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// bannerColor returns the fade step for the elapsed time.
func (w *WelcomeScreen) bannerColor() color.Color {
	if w.elapsed >= fadeDur {
		return fadeRamp[len(fadeRamp)-1]
	}
	step := int(w.elapsed * time.Duration(len(fadeRamp)) / fadeDur)
	return fadeRamp[step]
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
