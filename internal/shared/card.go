package shared

// Card is the face value of a single card. Values are not restricted to
// the deck range; any int is a card value as far as scoring is concerned.
type Card int

// Face values of the standard 104-card deck.
const (
	MinCard Card = 1
	MaxCard Card = 104
)

// Points returns the point value of the card.
func (c Card) Points() int {
	return Points(int(c))
}

// Valid reports whether the card lies within the standard deck.
func (c Card) Valid() bool {
	return c >= MinCard && c <= MaxCard
}

// Total sums the point values of a row of cards.
func Total(cards []Card) int {
	total := 0
	for _, c := range cards {
		total += c.Points()
	}
	return total
}
