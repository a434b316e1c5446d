package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/vetcards/internal/quiz"
	"github.com/abhisek/vetcards/internal/ui/theme"
)

// RenderFlashcard renders a quiz card: the prompt line, then either the
// answer list or a reveal hint.
func RenderFlashcard(card *quiz.Card, width int) string {
	style := theme.Card
	if width > 0 {
		style = style.Width(width)
	}

	if card == nil {
		return style.Render(theme.Hint.Render("Draw a card to start."))
	}

	var b strings.Builder
	b.WriteString(theme.Prompt.Render(card.Kind.Label() + ": " + card.Prompt))
	b.WriteString("\n\n")

	if !card.Revealed {
		b.WriteString(theme.Hint.Render("space: show answer"))
		return style.Render(b.String())
	}

	if len(card.Answer) == 0 {
		b.WriteString(theme.Hint.Render("(no entries)"))
	}
	items := make([]string, 0, len(card.Answer))
	for _, a := range card.Answer {
		items = append(items, theme.Answer.Render("• "+a))
	}
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, items...))
	return style.Render(b.String())
}
