package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vetcards/internal/router"
	"github.com/abhisek/vetcards/internal/screen"
	"github.com/abhisek/vetcards/internal/ui/theme"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return "home" }
func (s *stubScreen) Title() string                          { return "Home" }

func newTestWelcomeWithCounter() (*WelcomeScreen, *int) {
	callCount := 0
	factory := func() screen.Screen {
		callCount++
		return &stubScreen{}
	}
	return New(factory), &callCount
}

func sendTicks(w *WelcomeScreen, n int) tea.Cmd {
	var cmd tea.Cmd
	for i := 0; i < n; i++ {
		_, cmd = w.Update(tickMsg(time.Now()))
	}
	return cmd
}

func TestFadeIn(t *testing.T) {
	w, _ := newTestWelcomeWithCounter()

	if w.bannerColor() != theme.Border {
		t.Error("banner should start at the dimmest fade step")
	}
	if strings.Contains(w.View(80, 24), "press any key") {
		t.Error("hint should not be visible while fading in")
	}

	sendTicks(w, 5)
	if w.elapsed != fadeDur {
		t.Errorf("expected elapsed %v, got %v", fadeDur, w.elapsed)
	}
	if w.bannerColor() != theme.Primary {
		t.Error("banner should be fully faded in")
	}
	if !strings.Contains(w.View(80, 24), "press any key") {
		t.Error("hint should be visible after the fade")
	}
}

func TestKeypressDuringFadeTransitions(t *testing.T) {
	w, callCount := newTestWelcomeWithCounter()
	sendTicks(w, 2)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("keypress should trigger transition")
	}
	msg := cmd()
	replaceMsg, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if replaceMsg.Screen == nil {
		t.Error("replace screen should not be nil")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called once, got %d", *callCount)
	}
}

func TestAutoTransitionAfterHold(t *testing.T) {
	w, callCount := newTestWelcomeWithCounter()

	cmd := sendTicks(w, int(holdDur/tickInterval)-1)
	if *callCount != 0 {
		t.Fatalf("factory should not be called before the hold ends, got %d", *callCount)
	}
	if cmd == nil {
		t.Fatal("ticks should keep coming before the hold ends")
	}

	cmd = sendTicks(w, 1)
	if cmd == nil {
		t.Fatal("expected a transition command")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called once, got %d", *callCount)
	}
}

func TestFactoryCalledOnce(t *testing.T) {
	w, callCount := newTestWelcomeWithCounter()

	w.Update(tea.KeyPressMsg{Code: 'a'})

	_, cmd := w.Update(tea.KeyPressMsg{Code: 'b'})
	if cmd != nil {
		t.Error("second keypress should not produce a command")
	}
	if cmd := sendTicks(w, 30); cmd != nil {
		t.Error("ticks after the transition should stop")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called exactly once, got %d", *callCount)
	}
}

func TestCompactBannerOnNarrowTerminal(t *testing.T) {
	w, _ := newTestWelcomeWithCounter()
	if !strings.Contains(w.View(60, 24), "V E T") {
		t.Error("narrow terminal should show the compact banner")
	}
}

func TestTitleEmpty(t *testing.T) {
	w, _ := newTestWelcomeWithCounter()
	if w.Title() != "" {
		t.Errorf("expected empty title, got %q", w.Title())
	}
}
