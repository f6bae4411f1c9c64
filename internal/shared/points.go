package shared

// Tier is one of the outcomes of the scoring rule.
type Tier struct {
	Score int    `json:"score" yaml:"score"`
	Label string `json:"label" yaml:"label"`
}

var (
	tierPlain     = Tier{Score: 1, Label: "plain"}
	tierFive      = Tier{Score: 2, Label: "five"}
	tierTen       = Tier{Score: 3, Label: "ten"}
	tierDouble    = Tier{Score: 5, Label: "double"}
	tierFiftyFive = Tier{Score: 6, Label: "fifty-five"}
)

// Tiers lists every tier in ascending score order.
func Tiers() []Tier {
	return []Tier{tierPlain, tierFive, tierTen, tierDouble, tierFiftyFive}
}

// Classify returns the tier a card value falls into. Multiples of 11 are
// checked first, so 55 and 0 never reach the multiple-of-5 branch.
func Classify(cardValue int) Tier {
	switch {
	case cardValue%11 == 0:
		if cardValue == 55 {
			return tierFiftyFive
		}
		return tierDouble
	case cardValue%5 == 0:
		if cardValue%10 == 0 {
			return tierTen
		}
		return tierFive
	default:
		return tierPlain
	}
}

// Points returns the point value of a card value. It is defined for every
// int, including zero and negatives, and always returns 1, 2, 3, 5 or 6.
func Points(cardValue int) int {
	return Classify(cardValue).Score
}
