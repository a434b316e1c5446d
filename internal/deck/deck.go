// Package deck holds the disease store: an insertion-ordered mapping from
// disease name to its symptom list, plus the symptom-indexed inversion.
package deck

import (
	"iter"
	"slices"
	"strings"
)

// Deck maps disease names to ordered symptom lists. Iteration follows
// insertion order; replacing an existing disease keeps its position.
type Deck struct {
	order    []string
	symptoms map[string][]string
}

// New creates an empty Deck.
func New() *Deck {
	return &Deck{symptoms: make(map[string][]string)}
}

// Len returns the number of diseases.
func (d *Deck) Len() int {
	return len(d.order)
}

// Has reports whether the deck contains the disease.
func (d *Deck) Has(name string) bool {
	_, ok := d.symptoms[name]
	return ok
}

// Names returns the disease names in insertion order.
func (d *Deck) Names() []string {
	return slices.Clone(d.order)
}

// Symptoms returns a copy of the symptom list for name, or nil if absent.
func (d *Deck) Symptoms(name string) []string {
	s, ok := d.symptoms[name]
	if !ok {
		return nil
	}
	return slices.Clone(s)
}

// All iterates over diseases and their symptom lists in insertion order.
// The yielded slices must not be modified.
func (d *Deck) All() iter.Seq2[string, []string] {
	return func(yield func(string, []string) bool) {
		for _, name := range d.order {
			if !yield(name, d.symptoms[name]) {
				return
			}
		}
	}
}

// Set replaces (or appends) the entry for name with symptoms verbatim.
func (d *Deck) Set(name string, symptoms []string) {
	if _, ok := d.symptoms[name]; !ok {
		d.order = append(d.order, name)
	}
	d.symptoms[name] = slices.Clone(symptoms)
}

// Upsert parses rawSymptoms as a comma-separated list and replaces the entry
// for name with it. Blank input, or input without any non-empty symptom, is
// rejected and leaves the deck unchanged. Invalid UTF-8 is replaced with
// U+FFFD so the entry survives a JSON round trip. Returns whether the deck
// was written.
func (d *Deck) Upsert(name, rawSymptoms string) bool {
	name = strings.TrimSpace(strings.ToValidUTF8(name, "\uFFFD"))
	if name == "" || strings.TrimSpace(rawSymptoms) == "" {
		return false
	}
	symptoms := ParseSymptoms(rawSymptoms)
	if len(symptoms) == 0 {
		return false
	}
	d.Set(name, symptoms)
	return true
}

// Remove deletes name from the deck. Removing an absent disease is a no-op.
// Returns whether anything was removed.
func (d *Deck) Remove(name string) bool {
	if _, ok := d.symptoms[name]; !ok {
		return false
	}
	delete(d.symptoms, name)
	d.order = slices.DeleteFunc(d.order, func(n string) bool { return n == name })
	return true
}

// Clone returns a deep copy.
func (d *Deck) Clone() *Deck {
	c := New()
	for name, symptoms := range d.All() {
		c.Set(name, symptoms)
	}
	return c
}

// Equal reports whether both decks hold the same diseases in the same order
// with identical symptom lists.
func (d *Deck) Equal(other *Deck) bool {
	if other == nil || !slices.Equal(d.order, other.order) {
		return false
	}
	for name, symptoms := range d.All() {
		if !slices.Equal(symptoms, other.symptoms[name]) {
			return false
		}
	}
	return true
}

// ParseSymptoms splits raw on commas, trims each piece and drops empty ones.
// Duplicates are kept. Invalid UTF-8 becomes U+FFFD.
func ParseSymptoms(raw string) []string {
	var out []string
	for _, piece := range strings.Split(strings.ToValidUTF8(raw, "\uFFFD"), ",") {
		if s := strings.TrimSpace(piece); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// JoinSymptoms renders a symptom list in the form accepted by ParseSymptoms.
func JoinSymptoms(symptoms []string) string {
	return strings.Join(symptoms, ", ")
}
