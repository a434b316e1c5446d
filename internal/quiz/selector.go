// Package quiz draws random flashcards from a deck.
package quiz

import (
	"errors"
	"math/rand/v2"

	"github.com/abhisek/vetcards/internal/deck"
)

// ErrEmptyDeck is returned when a card is drawn from a deck without diseases.
var ErrEmptyDeck = errors.New("deck is empty")

// Source yields uniformly distributed integers in [0, n).
type Source interface {
	IntN(n int) int
}

// NewSource returns a Source backed by math/rand/v2. A zero seed uses a
// randomly seeded generator.
func NewSource(seed uint64) Source {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// Selector draws cards using an injected random source.
type Selector struct {
	src Source
}

// NewSelector creates a Selector. A nil src uses a randomly seeded source.
func NewSelector(src Source) *Selector {
	if src == nil {
		src = NewSource(0)
	}
	return &Selector{src: src}
}

// Draw picks a prompt side with equal probability, then a uniformly random
// prompt on that side. Symptom mode over a deck whose diseases list no
// symptoms falls back to disease mode.
func (s *Selector) Draw(d *deck.Deck) (Card, error) {
	if d == nil || d.Len() == 0 {
		return Card{}, ErrEmptyDeck
	}

	if s.src.IntN(2) == 1 {
		inv := deck.Invert(d)
		if inv.Len() > 0 {
			symptoms := inv.Symptoms()
			symptom := symptoms[s.src.IntN(len(symptoms))]
			return Card{
				Kind:   KindSymptom,
				Prompt: symptom,
				Answer: inv.Diseases(symptom),
			}, nil
		}
	}

	names := d.Names()
	name := names[s.src.IntN(len(names))]
	return Card{
		Kind:   KindDisease,
		Prompt: name,
		Answer: d.Symptoms(name),
	}, nil
}
