// Package library loads and saves the deck through a key/value slot.
package library

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/vetcards/internal/deck"
	"github.com/abhisek/vetcards/internal/store"
)

// SlotKey is the key/value slot holding the serialized deck.
const SlotKey = "diseaseData"

// Library persists a deck to a single key/value slot.
type Library struct {
	kv     store.KVRepo
	logger *zap.Logger
}

// New creates a Library. A nil logger discards log output.
func New(kv store.KVRepo, logger *zap.Logger) *Library {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Library{kv: kv, logger: logger}
}

// Load returns the saved deck. A missing slot or unreadable content yields the
// seed deck; only a failure to read the slot itself is returned as an error.
func (l *Library) Load(ctx context.Context) (*deck.Deck, error) {
	raw, ok, err := l.kv.Get(ctx, SlotKey)
	if err != nil {
		return nil, fmt.Errorf("read deck: %w", err)
	}
	if !ok {
		l.logger.Info("no saved deck, using seed")
		return deck.Seed(), nil
	}

	d, err := deck.ParseJSON([]byte(raw))
	if err != nil {
		l.logger.Warn("saved deck unreadable, using seed", zap.Error(err))
		return deck.Seed(), nil
	}
	l.logger.Debug("deck loaded", zap.Int("diseases", d.Len()))
	return d, nil
}

// Save serializes the whole deck into the slot.
func (l *Library) Save(ctx context.Context, d *deck.Deck) error {
	data, err := d.MarshalJSON()
	if err != nil {
		return fmt.Errorf("serialize deck: %w", err)
	}
	if err := l.kv.Put(ctx, SlotKey, string(data)); err != nil {
		return fmt.Errorf("write deck: %w", err)
	}
	l.logger.Debug("deck saved", zap.Int("diseases", d.Len()))
	return nil
}

// Reset replaces the saved deck with the seed deck and returns it.
func (l *Library) Reset(ctx context.Context) (*deck.Deck, error) {
	d := deck.Seed()
	if err := l.Save(ctx, d); err != nil {
		return nil, err
	}
	l.logger.Info("deck reset to seed")
	return d, nil
}
