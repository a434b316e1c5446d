package browse

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vetcards/internal/deck"
	"github.com/abhisek/vetcards/internal/router"
	"github.com/abhisek/vetcards/internal/screen"
	"github.com/abhisek/vetcards/internal/screens/editor"
	"github.com/abhisek/vetcards/internal/session"
	"github.com/abhisek/vetcards/internal/ui/layout"
	"github.com/abhisek/vetcards/internal/ui/theme"
)

// Mode selects which side of the deck is listed.
type Mode int

const (
	ModeDisease Mode = iota
	ModeSymptom
)

// BrowseScreen lists every disease with its symptoms, or every symptom with
// the diseases that present it. Entries expand and collapse in place.
type BrowseScreen struct {
	sess     *session.Session
	mode     Mode
	items    []string
	children map[string][]string
	expanded [2]map[string]bool
	cursor   int
	status   string
}

var _ screen.Screen = (*BrowseScreen)(nil)

// New creates a BrowseScreen in disease mode.
func New(sess *session.Session) *BrowseScreen {
	b := &BrowseScreen{
		sess:     sess,
		expanded: [2]map[string]bool{{}, {}},
	}
	b.reload()
	return b
}

// Init reloads the listing; the editor may have changed the deck.
func (b *BrowseScreen) Init() tea.Cmd {
	b.reload()
	return nil
}

func (b *BrowseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return b, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if b.cursor > 0 {
			b.cursor--
		}
	case "down", "j":
		if b.cursor < len(b.items)-1 {
			b.cursor++
		}
	case "enter", "space":
		if name, ok := b.selected(); ok {
			b.expanded[b.mode][name] = !b.expanded[b.mode][name]
		}
	case "tab":
		b.toggleMode()
	case "a":
		return b, b.openEditor("")
	case "e":
		if name, ok := b.selected(); ok && b.mode == ModeDisease {
			return b, b.openEditor(name)
		}
	case "d":
		if name, ok := b.selected(); ok && b.mode == ModeDisease {
			b.remove(name)
		}
	}
	return b, nil
}

func (b *BrowseScreen) View(width, height int) string {
	heading := "Diseases"
	if b.mode == ModeSymptom {
		heading = "Symptoms"
	}

	var sections []string
	sections = append(sections, theme.Title.Render(fmt.Sprintf("%s (%d)", heading, len(b.items))))

	if len(b.items) == 0 {
		sections = append(sections, theme.Hint.Render("Nothing here yet. Press a to add a disease."))
	} else {
		// Title, status and padding take roughly six rows.
		sections = append(sections, b.renderList(width-4, height-6))
	}

	if b.status != "" {
		sections = append(sections, theme.Status.Render(b.status))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(sections, "\n\n"))
}

func (b *BrowseScreen) Title() string {
	return "Browse"
}

func (b *BrowseScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Expand"},
		{Key: "Tab", Description: "Switch view"},
		{Key: "a", Description: "Add"},
	}
	if b.mode == ModeDisease {
		hints = append(hints,
			layout.KeyHint{Key: "e", Description: "Edit"},
			layout.KeyHint{Key: "d", Description: "Delete"},
		)
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

// Mode returns the current listing mode.
func (b *BrowseScreen) Mode() Mode {
	return b.mode
}

// Items returns the entries currently listed, in display order.
func (b *BrowseScreen) Items() []string {
	return b.items
}

func (b *BrowseScreen) toggleMode() {
	if b.mode == ModeDisease {
		b.mode = ModeSymptom
	} else {
		b.mode = ModeDisease
	}
	b.cursor = 0
	b.status = ""
	b.reload()
}

// reload rebuilds the listing from the session deck, keeping the cursor on
// the same entry when it still exists.
func (b *BrowseScreen) reload() {
	prev, hadPrev := b.selected()

	d := b.sess.Deck()
	if b.mode == ModeDisease {
		b.items = d.Names()
		b.children = make(map[string][]string, len(b.items))
		for name, symptoms := range d.All() {
			b.children[name] = symptoms
		}
	} else {
		inv := deck.Invert(d)
		b.items = inv.Symptoms()
		b.children = inv.Map()
	}

	if hadPrev {
		for i, item := range b.items {
			if item == prev {
				b.cursor = i
				break
			}
		}
	}
	if b.cursor >= len(b.items) {
		b.cursor = max(len(b.items)-1, 0)
	}
}

func (b *BrowseScreen) selected() (string, bool) {
	if b.cursor < 0 || b.cursor >= len(b.items) {
		return "", false
	}
	return b.items[b.cursor], true
}

func (b *BrowseScreen) remove(name string) {
	if _, err := b.sess.Remove(context.Background(), name); err != nil {
		b.status = "Could not save: " + err.Error()
	} else {
		b.status = "Removed " + name
	}
	delete(b.expanded[ModeDisease], name)
	b.reload()
}

func (b *BrowseScreen) openEditor(name string) tea.Cmd {
	sess := b.sess
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: editor.New(sess, name)}
	}
}

// renderList renders the entries and keeps the cursor row inside a window of
// maxRows lines.
func (b *BrowseScreen) renderList(width, maxRows int) string {
	var lines []string
	cursorLine := 0

	for i, item := range b.items {
		children := b.children[item]
		open := b.expanded[b.mode][item]

		marker := "▸"
		if open {
			marker = "▾"
		}
		label := fmt.Sprintf("%s %s (%d)", marker, item, len(children))

		if i == b.cursor {
			cursorLine = len(lines)
			lines = append(lines, theme.Selected.Width(width).Render(label))
		} else {
			lines = append(lines, theme.Unselected.Width(width).Render(label))
		}

		if open {
			for _, c := range children {
				lines = append(lines, theme.Answer.Render("    • "+c))
			}
		}
	}

	if maxRows < 1 || len(lines) <= maxRows {
		return strings.Join(lines, "\n")
	}

	start := cursorLine - maxRows/2
	start = max(start, 0)
	start = min(start, len(lines)-maxRows)
	return strings.Join(lines[start:start+maxRows], "\n")
}
