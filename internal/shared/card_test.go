package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCardPoints(t *testing.T) {
	assert.Equal(t, 6, Card(55).Points())
	assert.Equal(t, 1, MinCard.Points())
	assert.Equal(t, 1, MaxCard.Points())
}

func TestCardValid(t *testing.T) {
	tests := []struct {
		card Card
		want bool
	}{
		{0, false},
		{1, true},
		{55, true},
		{104, true},
		{105, false},
		{-1, false},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, tt.card.Valid(), "Card(%d).Valid()", tt.card)
	}
}

func TestCardPointsIgnoresDeckRange(t *testing.T) {
	// Out-of-deck values still score.
	assert.False(t, Card(0).Valid())
	assert.Equal(t, 5, Card(0).Points())
	assert.Equal(t, 5, Card(110).Points())
}

func TestTotal(t *testing.T) {
	assert.Equal(t, 0, Total(nil))
	assert.Equal(t, 0, Total([]Card{}))
	// 1 + 2 + 3 + 5 + 6
	assert.Equal(t, 17, Total([]Card{1, 5, 10, 11, 55}))

	cards := make([]Card, 0, MaxCard)
	for c := MinCard; c <= MaxCard; c++ {
		cards = append(cards, c)
	}
	assert.Equal(t, 170, Total(cards))
}
