// Package selection narrows a card set to the cards a class may draw and
// samples from the result.
package selection

import (
	"fmt"

	"github.com/arcanaland/wt/internal/card"
)

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// IntN returns a non-negative random int in [0, n).
	IntN(n int) int
}

// Filter returns every card eligible for class, in input order.
func Filter(cards []card.Card, class string) []card.Card {
	return FilterByType(cards, class, nil)
}

// FilterByType returns the cards eligible for class whose type is one of
// types. An empty types list behaves like Filter. Input order is preserved.
func FilterByType(cards []card.Card, class string, types []string) []card.Card {
	return FilterForClasses(cards, []string{class}, types)
}

// FilterForClasses keeps the cards eligible for any of classes whose type is
// one of types. Input order is preserved and each card appears at most once.
func FilterForClasses(cards []card.Card, classes []string, types []string) []card.Card {
	pool := []card.Card{}
	for _, c := range cards {
		if !c.HasType(types) {
			continue
		}
		for _, class := range classes {
			if c.EligibleFor(class) {
				pool = append(pool, c)
				break
			}
		}
	}
	return pool
}

// Draw samples n cards from pool without replacement. Asking for more cards
// than the pool holds is an error; the result is never truncated.
func Draw(pool []card.Card, n int, rng RNG) ([]card.Card, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}
	if n > len(pool) {
		return nil, fmt.Errorf("%w: requested %d, pool has %d", ErrInsufficientPool, n, len(pool))
	}

	// Partial Fisher-Yates over positions: only the first n slots are settled.
	indices := make([]int, len(pool))
	for i := range indices {
		indices[i] = i
	}
	drawn := make([]card.Card, n)
	for i := range n {
		j := i + rng.IntN(len(indices)-i)
		indices[i], indices[j] = indices[j], indices[i]
		drawn[i] = pool[indices[i]]
	}
	return drawn, nil
}

// PrepAndDraw filters cards for class and types, then draws n from the result.
func PrepAndDraw(cards []card.Card, class string, types []string, n int, rng RNG) ([]card.Card, error) {
	return Draw(FilterByType(cards, class, types), n, rng)
}
