package deck

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/arcanaland/wt/internal/card"
)

// ErrDataLoad is returned when a card source is missing or malformed
var ErrDataLoad = errors.New("cannot load card data")

// Deck is the read-only card store for a session
type Deck struct {
	Name        string
	Description string
	Path        string
	Cards       []card.Card
}

// LoadDeck loads every card from a directory or a single card file
func LoadDeck(path string) (*Deck, error) {
	src, err := ReadSource(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataLoad, err)
	}

	deck := &Deck{
		Name:        src.Name,
		Description: src.Description,
		Path:        path,
		Cards:       make([]card.Card, 0, len(src.Entries)),
	}

	for _, e := range src.Entries {
		if strings.TrimSpace(e.Name) == "" {
			return nil, fmt.Errorf("%w: %s: card %d has no name", ErrDataLoad, e.File, e.Position)
		}
		deck.Cards = append(deck.Cards, e.Card())
	}

	return deck, nil
}

// Find returns the first card with the given name
func (d *Deck) Find(name string) (card.Card, bool) {
	for _, c := range d.Cards {
		if c.Name == name {
			return c, true
		}
	}
	return card.Card{}, false
}

// Classes returns every class named by the deck, sorted
func (d *Deck) Classes() []string {
	var classes []string
	for _, c := range d.Cards {
		classes = append(classes, c.Classes...)
	}
	slices.Sort(classes)
	return slices.Compact(classes)
}

// Types returns every card type in the deck, sorted
func (d *Deck) Types() []string {
	var types []string
	for _, c := range d.Cards {
		if c.Type != "" {
			types = append(types, c.Type)
		}
	}
	slices.Sort(types)
	return slices.Compact(types)
}

// defaultName derives a deck name from its path
func defaultName(path string) string {
	base := filepath.Base(filepath.Clean(path))
	return strings.TrimSuffix(base, filepath.Ext(base))
}
