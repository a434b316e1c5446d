package quiz

import "slices"

// Kind identifies which side of the deck a card prompts with.
type Kind string

const (
	// KindDisease prompts with a disease name; the answer is its symptoms.
	KindDisease Kind = "disease"
	// KindSymptom prompts with a symptom; the answer is the diseases listing it.
	KindSymptom Kind = "symptom"
)

// Label returns the human-readable prompt label for the kind.
func (k Kind) Label() string {
	switch k {
	case KindDisease:
		return "Disease"
	case KindSymptom:
		return "Symptom"
	default:
		return string(k)
	}
}

// Card is one question/answer pair. A freshly drawn card is never revealed.
type Card struct {
	Kind     Kind
	Prompt   string
	Answer   []string
	Revealed bool
}

// Reveal marks the answer as shown.
func (c *Card) Reveal() {
	c.Revealed = true
}

// Equal reports whether two cards have the same kind, prompt, answer and
// reveal state.
func (c Card) Equal(other Card) bool {
	return c.Kind == other.Kind &&
		c.Prompt == other.Prompt &&
		c.Revealed == other.Revealed &&
		slices.Equal(c.Answer, other.Answer)
}
