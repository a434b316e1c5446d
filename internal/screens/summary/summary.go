package summary

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vetcards/internal/quiz"
	"github.com/abhisek/vetcards/internal/router"
	"github.com/abhisek/vetcards/internal/screen"
	"github.com/abhisek/vetcards/internal/session"
	"github.com/abhisek/vetcards/internal/store"
	"github.com/abhisek/vetcards/internal/ui/layout"
	"github.com/abhisek/vetcards/internal/ui/theme"
)

const topPrompts = 5

// statsLoadedMsg carries the result of the event log query.
type statsLoadedMsg struct {
	stats *store.QuizStats
	err   error
}

// SummaryScreen shows practice statistics for this session and all time.
type SummaryScreen struct {
	sess    *session.Session
	stats   *store.QuizStats
	err     error
	loading bool
	now     func() time.Time
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(sess *session.Session) *SummaryScreen {
	return &SummaryScreen{sess: sess, loading: true, now: time.Now}
}

func (s *SummaryScreen) Init() tea.Cmd {
	s.loading = true
	sess := s.sess
	return func() tea.Msg {
		st, err := sess.Stats(context.Background(), topPrompts)
		return statsLoadedMsg{stats: st, err: err}
	}
}

func (s *SummaryScreen) Title() string {
	return "Practice Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		s.loading = false
		s.stats = msg.stats
		s.err = msg.err
	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	var b strings.Builder

	center := func(style lipgloss.Style, text string) {
		b.WriteString(style.Width(width).Align(lipgloss.Center).Render(text))
		b.WriteString("\n")
	}

	center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true), "This session")
	b.WriteString("\n")

	elapsed := s.now().Sub(s.sess.StartTime)
	mins := int(elapsed.Minutes())
	secs := int(elapsed.Seconds()) % 60
	center(lipgloss.NewStyle().Foreground(theme.TextDim), fmt.Sprintf("Duration: %d:%02d", mins, secs))
	center(lipgloss.NewStyle().Foreground(theme.Text),
		fmt.Sprintf("Cards drawn: %d        Answers revealed: %d", s.sess.Draws, s.sess.Reveals))
	b.WriteString("\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	center(lipgloss.NewStyle().Foreground(theme.TextDim), "All time")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	switch {
	case s.loading:
		center(theme.Hint, "Loading…")
		return b.String()
	case s.err != nil:
		center(theme.Warning, "Could not load history: "+s.err.Error())
		return b.String()
	case s.stats == nil:
		center(theme.Hint, "No practice history is recorded.")
		return b.String()
	}

	st := s.stats
	center(lipgloss.NewStyle().Foreground(theme.Text), fmt.Sprintf(
		"Sessions: %d    Draws: %d (disease %d, symptom %d)    Reveals: %d",
		st.Sessions, st.Draws,
		st.DrawsByKind[string(quiz.KindDisease)], st.DrawsByKind[string(quiz.KindSymptom)],
		st.Reveals))

	if len(st.TopPrompts) > 0 {
		b.WriteString("\n")
		center(lipgloss.NewStyle().Foreground(theme.TextDim), "Most drawn")
		for _, p := range st.TopPrompts {
			line := fmt.Sprintf("%s: %s  ×%d", quiz.Kind(p.Kind).Label(), p.Prompt, p.Count)
			center(lipgloss.NewStyle().Foreground(theme.Accent), line)
		}
	}

	return b.String()
}
