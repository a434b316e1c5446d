package app

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/vetcards/internal/deck"
	"github.com/abhisek/vetcards/internal/library"
	"github.com/abhisek/vetcards/internal/router"
	"github.com/abhisek/vetcards/internal/screens/browse"
	"github.com/abhisek/vetcards/internal/screens/home"
	"github.com/abhisek/vetcards/internal/screens/welcome"
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

func newTestModel(t *testing.T, skipSplash bool) AppModel {
	t.Helper()
	sess, err := session.New(context.Background(), session.Options{
		Deck:    deck.Seed(),
		Library: library.New(memKV{}, nil),
	})
	require.NoError(t, err)
	return newAppModel(Options{Session: sess, SkipSplash: skipSplash})
}

func resize(t *testing.T, m AppModel, w, h int) AppModel {
	t.Helper()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return updated.(AppModel)
}

func TestStartsOnSplash(t *testing.T) {
	m := newTestModel(t, false)
	assert.IsType(t, &welcome.WelcomeScreen{}, m.router.Active())
	assert.NotNil(t, m.Init(), "splash starts its fade ticker")
}

func TestSkipSplash(t *testing.T) {
	m := newTestModel(t, true)
	assert.IsType(t, &home.HomeScreen{}, m.router.Active())
}

func TestHeaderShowsDeckCounts(t *testing.T) {
	m := resize(t, newTestModel(t, true), 100, 40)

	assert.True(t, m.View().AltScreen)
	view := m.render()
	assert.Contains(t, view, "3 diseases")
	assert.Contains(t, view, "13 symptoms")
}

func TestTooSmall(t *testing.T) {
	m := resize(t, newTestModel(t, true), 40, 10)
	assert.Contains(t, m.render(), "Terminal too small")
}

func TestEscPopsToHome(t *testing.T) {
	m := newTestModel(t, true)
	m.router.Push(browse.New(m.sess))
	require.Equal(t, 2, m.router.Depth())

	updated, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	m = updated.(AppModel)
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())

	m.Update(router.PopScreenMsg{})
	assert.Equal(t, 1, m.router.Depth())
}

func TestEscOnRootIsNoop(t *testing.T) {
	m := newTestModel(t, true)
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd)
}

func TestFooterUsesScreenHints(t *testing.T) {
	m := resize(t, newTestModel(t, true), 100, 40)
	assert.Contains(t, m.render(), "Reveal / Next")
}

func TestRunRequiresSession(t *testing.T) {
	assert.Error(t, Run(Options{}))
}
