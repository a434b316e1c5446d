package editor

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vetcards/internal/deck"
	"github.com/abhisek/vetcards/internal/screen"
	"github.com/abhisek/vetcards/internal/session"
	"github.com/abhisek/vetcards/internal/ui/components"
	"github.com/abhisek/vetcards/internal/ui/layout"
	"github.com/abhisek/vetcards/internal/ui/theme"
)

const (
	fieldName = iota
	fieldSymptoms
)

const formWidth = 56

// EditorScreen adds a disease or replaces the symptoms of an existing one.
type EditorScreen struct {
	sess     *session.Session
	name     components.TextInput
	symptoms components.TextInput
	focus    int
	status   string
	errMsg   string
}

var _ screen.Screen = (*EditorScreen)(nil)

// New creates an EditorScreen. A non-empty disease prefills the form with
// its current symptoms.
func New(sess *session.Session, disease string) *EditorScreen {
	// Unlimited: CharLimit truncates SetValue, and the prefill must round-trip.
	e := &EditorScreen{
		sess:     sess,
		name:     components.NewTextInput("Disease", "e.g. Hemorrhagic septicemia", 0),
		symptoms: components.NewTextInput("Symptoms (comma-separated)", "fever, dyspnea, nasal discharge", 0),
	}
	if disease != "" {
		e.name.SetValue(disease)
		e.symptoms.SetValue(deck.JoinSymptoms(sess.Deck().Symptoms(disease)))
		e.focus = fieldSymptoms
	}
	return e
}

func (e *EditorScreen) Init() tea.Cmd {
	return e.applyFocus()
}

func (e *EditorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "tab", "shift+tab", "up", "down":
			e.focus = 1 - e.focus
			return e, e.applyFocus()
		case "enter":
			if e.focus == fieldName {
				e.focus = fieldSymptoms
				return e, e.applyFocus()
			}
			return e, e.submit()
		}
	}

	var cmd tea.Cmd
	if e.focus == fieldName {
		e.name, cmd = e.name.Update(msg)
	} else {
		e.symptoms, cmd = e.symptoms.Update(msg)
	}
	return e, cmd
}

func (e *EditorScreen) View(width, height int) string {
	w := min(formWidth, width-8)

	sections := []string{
		theme.Title.Width(w).Render("Add / Edit Disease"),
		e.name.View(w),
		e.symptoms.View(w),
	}

	if parsed := deck.ParseSymptoms(e.symptoms.Value()); len(parsed) > 0 {
		sections = append(sections, theme.Hint.Render("→ "+strings.Join(parsed, " · ")))
	}

	switch {
	case e.errMsg != "":
		sections = append(sections, theme.Warning.Render(e.errMsg))
	case e.status != "":
		sections = append(sections, theme.Status.Render(e.status))
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (e *EditorScreen) Title() string {
	return "Editor"
}

func (e *EditorScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Switch field"},
		{Key: "Enter", Description: "Save"},
		{Key: "Esc", Description: "Back"},
	}
}

// Status returns the confirmation line of the last successful save.
func (e *EditorScreen) Status() string {
	return e.status
}

// submit upserts the form. Invalid input leaves the form untouched.
func (e *EditorScreen) submit() tea.Cmd {
	name := strings.TrimSpace(e.name.Value())
	ok, err := e.sess.Upsert(context.Background(), name, e.symptoms.Value())
	if !ok {
		return nil
	}
	if err != nil {
		e.errMsg = "Could not save: " + err.Error()
		e.status = ""
		return nil
	}

	e.errMsg = ""
	e.status = "Saved " + name
	e.name.Reset()
	e.symptoms.Reset()
	e.focus = fieldName
	return e.applyFocus()
}

func (e *EditorScreen) applyFocus() tea.Cmd {
	if e.focus == fieldName {
		e.symptoms.Blur()
		return e.name.Focus()
	}
	e.name.Blur()
	return e.symptoms.Focus()
}
