package editor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/vetcards/internal/deck"
	"github.com/abhisek/vetcards/internal/library"
	"github.com/abhisek/vetcards/internal/session"
)

type memKV struct {
	data   map[string]string
	putErr error
}

func (m *memKV) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memKV) Put(_ context.Context, key, value string) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.data[key] = value
	return nil
}

func newTestEditor(t *testing.T, d *deck.Deck, disease string) (*EditorScreen, *session.Session, *memKV) {
	t.Helper()
	kv := &memKV{data: map[string]string{}}
	sess, err := session.New(context.Background(), session.Options{
		Deck:    d,
		Library: library.New(kv, nil),
	})
	require.NoError(t, err)
	e := New(sess, disease)
	e.Init()
	return e, sess, kv
}

func typeText(e *EditorScreen, s string) {
	for _, r := range s {
		e.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func enter() tea.KeyPressMsg { return tea.KeyPressMsg{Code: tea.KeyEnter} }

func TestAddDisease(t *testing.T) {
	e, sess, kv := newTestEditor(t, deck.New(), "")
	require.True(t, e.name.Focused())

	typeText(e, "  Anthrax ")
	e.Update(enter())
	require.True(t, e.symptoms.Focused(), "enter on the name moves to symptoms")

	typeText(e, "sudden death, , bleeding")
	e.Update(enter())

	assert.Equal(t, []string{"sudden death", "bleeding"}, sess.Deck().Symptoms("Anthrax"))
	assert.Equal(t, "Saved Anthrax", e.Status())
	assert.Empty(t, e.name.Value())
	assert.Empty(t, e.symptoms.Value())
	assert.True(t, e.name.Focused())
	assert.Equal(t, `{"Anthrax":["sudden death","bleeding"]}`, kv.data[library.SlotKey])
}

func TestPrefillForEdit(t *testing.T) {
	e, _, _ := newTestEditor(t, deck.Seed(), "Respiratory Histophilosis")

	assert.Equal(t, "Respiratory Histophilosis", e.name.Value())
	assert.Equal(t, "Histophilosis somni, Bronhopneumonia, 전신, 흡인 감염", e.symptoms.Value())
	assert.True(t, e.symptoms.Focused())
}

func TestEditReplacesInPlace(t *testing.T) {
	e, sess, _ := newTestEditor(t, deck.Seed(), "Pnuemonic manheimiosis")
	e.symptoms.SetValue("cough")
	e.Update(enter())

	assert.Equal(t, []string{"cough"}, sess.Deck().Symptoms("Pnuemonic manheimiosis"))
	assert.Equal(t, "Pnuemonic manheimiosis", sess.Deck().Names()[0])
	assert.Equal(t, 3, sess.Deck().Len())
}

func TestEditLongEntryKeepsData(t *testing.T) {
	var symptoms []string
	for i := range 120 {
		symptoms = append(symptoms, fmt.Sprintf("clinical sign %03d", i))
	}
	longName := strings.Repeat("Bovine ", 15) + "syndrome"
	require.Greater(t, len(deck.JoinSymptoms(symptoms)), 1000)
	require.Greater(t, len(longName), 80)

	d := deck.New()
	d.Set("A", symptoms)
	d.Set(longName, []string{"fever"})

	e, sess, _ := newTestEditor(t, d, "A")
	e.Update(enter())
	assert.Equal(t, "Saved A", e.Status())
	assert.Equal(t, symptoms, sess.Deck().Symptoms("A"))

	e, sess, _ = newTestEditor(t, sess.Deck(), longName)
	e.Update(enter())
	assert.Equal(t, 2, sess.Deck().Len())
	assert.Equal(t, []string{"A", longName}, sess.Deck().Names())
	assert.Equal(t, []string{"fever"}, sess.Deck().Symptoms(longName))
}

func TestInvalidInputIsIgnored(t *testing.T) {
	tests := []struct {
		name     string
		disease  string
		symptoms string
	}{
		{"blank name", "   ", "fever"},
		{"blank symptoms", "Anthrax", "  "},
		{"only separators", "Anthrax", " , ,"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, sess, kv := newTestEditor(t, deck.New(), "")
			e.name.SetValue(tt.disease)
			e.symptoms.SetValue(tt.symptoms)
			e.focus = fieldSymptoms
			e.Update(enter())

			assert.Zero(t, sess.Deck().Len())
			assert.Empty(t, kv.data)
			assert.Empty(t, e.Status())
			assert.Equal(t, tt.disease, e.name.Value(), "form is left as typed")
		})
	}
}

func TestSaveErrorShown(t *testing.T) {
	e, sess, kv := newTestEditor(t, deck.New(), "")
	kv.putErr = errors.New("disk full")

	e.name.SetValue("Anthrax")
	e.symptoms.SetValue("sudden death")
	e.focus = fieldSymptoms
	e.Update(enter())

	assert.Empty(t, e.Status())
	assert.Contains(t, e.View(80, 30), "disk full")
	assert.False(t, sess.Deck().Has("Anthrax"))
}

func TestTabSwitchesFocus(t *testing.T) {
	e, _, _ := newTestEditor(t, deck.New(), "")

	e.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	assert.True(t, e.symptoms.Focused())
	assert.False(t, e.name.Focused())

	e.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	assert.True(t, e.name.Focused())
}

func TestViewPreviewsParsedSymptoms(t *testing.T) {
	e, _, _ := newTestEditor(t, deck.New(), "")
	e.symptoms.SetValue("fever,  cough ,")

	assert.Contains(t, e.View(80, 30), "fever · cough")
}
