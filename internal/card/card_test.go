package card_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arcanaland/wt/internal/card"
)

func TestEligibleFor(t *testing.T) {
	c := card.Card{Name: "Staff", Classes: []string{"Mage", "Warrior"}, Type: "weapon"}

	assert.True(t, c.EligibleFor("Mage"))
	assert.True(t, c.EligibleFor("Warrior"))
	assert.False(t, c.EligibleFor("mage"))
	assert.False(t, card.Card{Name: "Lute"}.EligibleFor("Bard"))
}

func TestHasType(t *testing.T) {
	c := card.Card{Name: "Staff", Type: "weapon"}

	assert.True(t, c.HasType(nil))
	assert.True(t, c.HasType([]string{"item", "weapon"}))
	assert.False(t, c.HasType([]string{"item"}))
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{}, card.Names(nil))
	assert.Equal(t, []string{"A", "B"}, card.Names([]card.Card{{Name: "A"}, {Name: "B"}}))
}
