package deck

import "slices"

// Inverted is the symptom-indexed view of a Deck.
type Inverted struct {
	order    []string
	diseases map[string][]string
}

// Invert maps every symptom in d to the diseases listing it. Symptoms and
// diseases appear in first-encounter order over the deck's insertion order;
// a disease is listed at most once per symptom.
func Invert(d *Deck) *Inverted {
	inv := &Inverted{diseases: make(map[string][]string)}
	for disease, symptoms := range d.All() {
		for _, symptom := range symptoms {
			list, ok := inv.diseases[symptom]
			if !ok {
				inv.order = append(inv.order, symptom)
			}
			if !slices.Contains(list, disease) {
				inv.diseases[symptom] = append(list, disease)
			}
		}
	}
	return inv
}

// Len returns the number of distinct symptoms.
func (inv *Inverted) Len() int {
	return len(inv.order)
}

// Symptoms returns the symptoms in first-encounter order.
func (inv *Inverted) Symptoms() []string {
	return slices.Clone(inv.order)
}

// Diseases returns the diseases listing symptom, or nil if none do.
func (inv *Inverted) Diseases(symptom string) []string {
	return slices.Clone(inv.diseases[symptom])
}

// Map returns the inversion as a plain map.
func (inv *Inverted) Map() map[string][]string {
	m := make(map[string][]string, len(inv.diseases))
	for k, v := range inv.diseases {
		m[k] = slices.Clone(v)
	}
	return m
}
