package card

import "slices"

// Card represents a drawable card
type Card struct {
	Name    string   // Display name, not guaranteed unique
	Classes []string // Classes allowed to draw this card
	Type    string   // Type tag (e.g. weapon, item)
	Text    string   // Optional rules or flavour text
}

// EligibleFor reports whether class may draw the card
func (c Card) EligibleFor(class string) bool {
	return slices.Contains(c.Classes, class)
}

// HasType reports whether the card type is one of types.
// An empty types list matches every card.
func (c Card) HasType(types []string) bool {
	if len(types) == 0 {
		return true
	}
	return slices.Contains(types, c.Type)
}

// Names returns the names of cards in order
func Names(cards []Card) []string {
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.Name
	}
	return names
}
