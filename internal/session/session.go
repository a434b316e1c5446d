// Package session holds the state of one running vetcards process: the deck,
// the card on screen, and the services that persist and log changes to them.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/vetcards/internal/deck"
	"github.com/abhisek/vetcards/internal/library"
	"github.com/abhisek/vetcards/internal/quiz"
	"github.com/abhisek/vetcards/internal/store"
)

// Options configures a Session. Library is required; the rest are optional.
type Options struct {
	Deck      *deck.Deck
	Library   *library.Library
	Selector  *quiz.Selector
	EventRepo store.EventRepo
	Logger    *zap.Logger
}

// Session owns the deck for the lifetime of the process. Every mutation goes
// through Upsert or Remove, which write the whole deck back to the library.
type Session struct {
	ID        string
	StartTime time.Time

	// Draws and Reveals count quiz interactions in this session.
	Draws   int
	Reveals int

	deck      *deck.Deck
	current   *quiz.Card
	library   *library.Library
	selector  *quiz.Selector
	eventRepo store.EventRepo
	logger    *zap.Logger
}

// New creates a Session. A nil Deck is loaded from the library.
func New(ctx context.Context, opts Options) (*Session, error) {
	if opts.Library == nil {
		return nil, fmt.Errorf("session: library is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	d := opts.Deck
	if d == nil {
		var err error
		d, err = opts.Library.Load(ctx)
		if err != nil {
			return nil, err
		}
	}
	sel := opts.Selector
	if sel == nil {
		sel = quiz.NewSelector(nil)
	}

	s := &Session{
		ID:        uuid.New().String(),
		StartTime: time.Now(),
		deck:      d,
		library:   opts.Library,
		selector:  sel,
		eventRepo: opts.EventRepo,
		logger:    logger,
	}
	s.logger = logger.With(zap.String("session_id", s.ID))
	return s, nil
}

// Deck returns the session's deck. Callers must not mutate it directly.
func (s *Session) Deck() *deck.Deck {
	return s.deck
}

// Current returns the card on screen, or nil before the first draw.
func (s *Session) Current() *quiz.Card {
	return s.current
}

// CanDraw reports whether a card can be drawn.
func (s *Session) CanDraw() bool {
	return s.deck.Len() > 0
}

// Draw replaces the current card with a freshly drawn, unrevealed one.
// Returns quiz.ErrEmptyDeck when the deck has no diseases.
func (s *Session) Draw(ctx context.Context) (quiz.Card, error) {
	card, err := s.selector.Draw(s.deck)
	if err != nil {
		return quiz.Card{}, err
	}
	s.current = &card
	s.Draws++
	s.logger.Debug("card drawn", zap.String("kind", string(card.Kind)), zap.String("prompt", card.Prompt))
	s.record(ctx, store.ActionDraw, card)
	return card, nil
}

// Reveal shows the answer of the current card. It is a no-op without a card
// or when the answer is already shown.
func (s *Session) Reveal(ctx context.Context) {
	if s.current == nil || s.current.Revealed {
		return
	}
	s.current.Reveal()
	s.Reveals++
	s.record(ctx, store.ActionReveal, *s.current)
}

// Upsert adds or replaces a disease from comma-separated symptom text and
// saves the deck. Rejected input returns false and saves nothing. The deck
// only changes once the save succeeds.
func (s *Session) Upsert(ctx context.Context, name, rawSymptoms string) (bool, error) {
	next := s.deck.Clone()
	if !next.Upsert(name, rawSymptoms) {
		s.logger.Debug("upsert rejected", zap.String("disease", name))
		return false, nil
	}
	if err := s.commit(ctx, next); err != nil {
		return true, err
	}
	s.logger.Info("disease saved", zap.String("disease", name))
	return true, nil
}

// Remove deletes a disease and saves the deck. Removing an absent disease
// still writes the deck through.
func (s *Session) Remove(ctx context.Context, name string) (bool, error) {
	next := s.deck.Clone()
	removed := next.Remove(name)
	if err := s.commit(ctx, next); err != nil {
		return removed, err
	}
	if removed {
		s.logger.Info("disease removed", zap.String("disease", name))
	}
	return removed, nil
}

// Replace swaps in a new deck (import, reset) and saves it.
func (s *Session) Replace(ctx context.Context, d *deck.Deck) error {
	if err := s.commit(ctx, d); err != nil {
		return err
	}
	s.current = nil
	return nil
}

// commit saves next and makes it the session deck. A failed save keeps the
// previous deck.
func (s *Session) commit(ctx context.Context, next *deck.Deck) error {
	if err := s.library.Save(ctx, next); err != nil {
		s.logger.Warn("deck not saved", zap.Error(err))
		return err
	}
	s.deck = next
	return nil
}

// Stats aggregates the quiz event log across all sessions. Without an event
// repository it returns nil.
func (s *Session) Stats(ctx context.Context, top int) (*store.QuizStats, error) {
	if s.eventRepo == nil {
		return nil, nil
	}
	st, err := s.eventRepo.QuizStats(ctx, top)
	if err != nil {
		return nil, fmt.Errorf("query quiz stats: %w", err)
	}
	return st, nil
}

// History returns recent session summaries, newest first, with the cards
// drawn in each keyed by session id. Without an event repository it returns
// nothing.
func (s *Session) History(ctx context.Context, limit int) ([]store.SessionSummary, map[string][]store.DrawRecord, error) {
	if s.eventRepo == nil {
		return nil, nil, nil
	}
	sessions, err := s.eventRepo.RecentSessions(ctx, limit)
	if err != nil {
		return nil, nil, fmt.Errorf("query sessions: %w", err)
	}

	ids := make([]string, len(sessions))
	for i, ss := range sessions {
		ids[i] = ss.SessionID
	}
	records, err := s.eventRepo.SessionDraws(ctx, ids)
	if err != nil {
		return nil, nil, fmt.Errorf("query draws: %w", err)
	}

	draws := make(map[string][]store.DrawRecord, len(sessions))
	for _, r := range records {
		draws[r.SessionID] = append(draws[r.SessionID], r)
	}
	return sessions, draws, nil
}

// record appends a quiz event. Logging failures never fail the interaction.
func (s *Session) record(ctx context.Context, action string, card quiz.Card) {
	if s.eventRepo == nil {
		return
	}
	err := s.eventRepo.AppendQuizEvent(ctx, store.QuizEventData{
		SessionID: s.ID,
		Action:    action,
		Kind:      string(card.Kind),
		Prompt:    card.Prompt,
	})
	if err != nil {
		s.logger.Warn("failed to record quiz event", zap.Error(err))
	}
}
