package home

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/vetcards/internal/deck"
	"github.com/abhisek/vetcards/internal/library"
	"github.com/abhisek/vetcards/internal/quiz"
	"github.com/abhisek/vetcards/internal/router"
	"github.com/abhisek/vetcards/internal/screens/browse"
	"github.com/abhisek/vetcards/internal/screens/editor"
	"github.com/abhisek/vetcards/internal/screens/history"
	"github.com/abhisek/vetcards/internal/screens/summary"
	"github.com/abhisek/vetcards/internal/session"
)

type memKV map[string]string

func (m memKV) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m[key]
	return v, ok, nil
}

func (m memKV) Put(_ context.Context, key, value string) error {
	m[key] = value
	return nil
}

type fixedSource int

func (f fixedSource) IntN(int) int { return int(f) }

func newTestHome(t *testing.T, d *deck.Deck) (*HomeScreen, *session.Session) {
	t.Helper()
	sess, err := session.New(context.Background(), session.Options{
		Deck:     d,
		Library:  library.New(memKV{}, nil),
		Selector: quiz.NewSelector(fixedSource(0)),
	})
	require.NoError(t, err)
	return New(sess), sess
}

func space() tea.KeyPressMsg { return tea.KeyPressMsg{Code: ' '} }

func TestInitialMenuState(t *testing.T) {
	h, _ := newTestHome(t, deck.Seed())

	assert.False(t, h.menu.Items[itemDraw].Disabled)
	assert.True(t, h.menu.Items[itemReveal].Disabled, "nothing to reveal before a draw")
	assert.Equal(t, itemDraw, h.menu.Selected)
}

func TestEmptyDeckDisablesDraw(t *testing.T) {
	h, sess := newTestHome(t, deck.New())

	assert.True(t, h.menu.Items[itemDraw].Disabled)
	assert.Equal(t, itemBrowse, h.menu.Selected)

	h.Update(space())
	assert.Nil(t, sess.Current())
	assert.Empty(t, h.errMsg)
	assert.Contains(t, h.View(80, 30), "The deck is empty")
}

func TestSpaceRevealsThenAdvances(t *testing.T) {
	h, sess := newTestHome(t, deck.Seed())

	h.Update(space())
	require.NotNil(t, sess.Current())
	assert.False(t, sess.Current().Revealed)
	assert.Equal(t, itemReveal, h.menu.Selected)
	assert.Contains(t, h.View(80, 30), "Pnuemonic manheimiosis")

	h.Update(space())
	assert.True(t, sess.Current().Revealed)
	assert.True(t, h.menu.Items[itemReveal].Disabled)

	h.Update(space())
	assert.False(t, sess.Current().Revealed)
	assert.Equal(t, 2, sess.Draws)
	assert.Equal(t, 1, sess.Reveals)
}

func TestMenuDrawAndReveal(t *testing.T) {
	h, sess := newTestHome(t, deck.Seed())

	h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, sess.Current())

	h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.True(t, sess.Current().Revealed)

	view := h.View(80, 30)
	for _, s := range sess.Current().Answer {
		assert.Contains(t, view, s)
	}
}

func TestShortcutsPushScreens(t *testing.T) {
	h, _ := newTestHome(t, deck.Seed())

	_, cmd := h.Update(tea.KeyPressMsg{Code: 'b', Text: "b"})
	require.NotNil(t, cmd)
	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &browse.BrowseScreen{}, push.Screen)

	_, cmd = h.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	require.NotNil(t, cmd)
	push, ok = cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &editor.EditorScreen{}, push.Screen)

	_, cmd = h.Update(tea.KeyPressMsg{Code: 's', Text: "s"})
	require.NotNil(t, cmd)
	push, ok = cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &summary.SummaryScreen{}, push.Screen)

	_, cmd = h.Update(tea.KeyPressMsg{Code: 'h', Text: "h"})
	require.NotNil(t, cmd)
	push, ok = cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &history.HistoryScreen{}, push.Screen)
}

func TestInitRefreshesAfterDeckChange(t *testing.T) {
	h, sess := newTestHome(t, deck.New())
	require.True(t, h.menu.Items[itemDraw].Disabled)

	ok, err := sess.Upsert(context.Background(), "Anthrax", "sudden death")
	require.NoError(t, err)
	require.True(t, ok)

	h.Init()
	assert.False(t, h.menu.Items[itemDraw].Disabled)
}

func TestViewShowsRevealProgress(t *testing.T) {
	h, _ := newTestHome(t, deck.Seed())
	h.Update(space())
	h.Update(space())

	view := h.View(80, 30)
	assert.True(t, strings.Contains(view, "1/1"), "progress suffix missing from view")
}
