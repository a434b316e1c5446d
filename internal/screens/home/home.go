package home

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vetcards/internal/quiz"
	"github.com/abhisek/vetcards/internal/router"
	"github.com/abhisek/vetcards/internal/screen"
	"github.com/abhisek/vetcards/internal/screens/browse"
	"github.com/abhisek/vetcards/internal/screens/editor"
	"github.com/abhisek/vetcards/internal/screens/history"
	"github.com/abhisek/vetcards/internal/screens/summary"
	"github.com/abhisek/vetcards/internal/session"
	"github.com/abhisek/vetcards/internal/ui/components"
	"github.com/abhisek/vetcards/internal/ui/layout"
	"github.com/abhisek/vetcards/internal/ui/theme"
)

// Menu item indexes.
const (
	itemDraw = iota
	itemReveal
	itemBrowse
	itemEdit
	itemSummary
	itemHistory
	itemQuit
)

const cardWidth = 56

// HomeScreen shows the current flashcard and the main menu.
type HomeScreen struct {
	sess   *session.Session
	menu   components.Menu
	errMsg string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(sess *session.Session) *HomeScreen {
	h := &HomeScreen{sess: sess}
	h.menu = components.NewMenu([]components.MenuItem{
		{Label: "DRAW CARD", Action: h.draw},
		{Label: "SHOW ANSWER", Action: h.reveal},
		{Label: "BROWSE", Action: h.openBrowse},
		{Label: "ADD / EDIT", Action: h.openEditor},
		{Label: "SUMMARY", Action: h.openSummary},
		{Label: "HISTORY", Action: h.openHistory},
		{Label: "QUIT", Action: func() tea.Cmd { return tea.Quit }},
	})
	h.refresh()
	return h
}

// Init refreshes menu state; the deck may have changed on another screen.
func (h *HomeScreen) Init() tea.Cmd {
	h.refresh()
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "space":
			return h, h.advance()
		case "b":
			return h, h.openBrowse()
		case "a":
			return h, h.openEditor()
		case "s":
			return h, h.openSummary()
		case "h":
			return h, h.openHistory()
		case "q":
			return h, tea.Quit
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := min(cardWidth, width-4)

	sections := []string{
		theme.Title.Width(cw).Render("Disease ⇄ Symptom Flashcards"),
		components.RenderFlashcard(h.sess.Current(), cw),
	}

	switch {
	case h.errMsg != "":
		sections = append(sections, theme.Warning.Render(h.errMsg))
	case !h.sess.CanDraw():
		sections = append(sections, theme.Hint.Render("The deck is empty. Add a disease to start drawing cards."))
	default:
		sections = append(sections,
			components.NewProgressBar("Revealed", h.sess.Reveals, h.sess.Draws, cw).View())
	}

	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Space", Description: "Reveal / Next"},
		{Key: "↑↓ Enter", Description: "Menu"},
		{Key: "b", Description: "Browse"},
		{Key: "a", Description: "Add"},
		{Key: "s", Description: "Summary"},
		{Key: "h", Description: "History"},
		{Key: "q", Description: "Quit"},
	}
}

// advance reveals the current card, or draws a new one once it is revealed.
func (h *HomeScreen) advance() tea.Cmd {
	if card := h.sess.Current(); card != nil && !card.Revealed {
		return h.reveal()
	}
	return h.draw()
}

func (h *HomeScreen) draw() tea.Cmd {
	h.errMsg = ""
	if _, err := h.sess.Draw(context.Background()); err != nil {
		if !errors.Is(err, quiz.ErrEmptyDeck) {
			h.errMsg = err.Error()
		}
		h.refresh()
		return nil
	}
	h.refresh()
	h.menu.Selected = itemReveal
	return nil
}

func (h *HomeScreen) reveal() tea.Cmd {
	h.sess.Reveal(context.Background())
	h.refresh()
	return nil
}

func (h *HomeScreen) openBrowse() tea.Cmd {
	sess := h.sess
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: browse.New(sess)}
	}
}

func (h *HomeScreen) openEditor() tea.Cmd {
	sess := h.sess
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: editor.New(sess, "")}
	}
}

func (h *HomeScreen) openSummary() tea.Cmd {
	sess := h.sess
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: summary.New(sess)}
	}
}

func (h *HomeScreen) openHistory() tea.Cmd {
	sess := h.sess
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: history.New(sess)}
	}
}

// refresh enables menu items that apply to the current state.
func (h *HomeScreen) refresh() {
	card := h.sess.Current()
	h.menu.SetDisabled(itemDraw, !h.sess.CanDraw())
	h.menu.SetDisabled(itemReveal, card == nil || card.Revealed)
}
