package domain

// Card is a single value from the planning poker deck.
type Card string

// The deck is a closed set and part of the wire contract.
const (
	CardZero      Card = "0"
	CardOne       Card = "1"
	CardTwo       Card = "2"
	CardThree     Card = "3"
	CardFive      Card = "5"
	CardEight     Card = "8"
	CardThirteen  Card = "13"
	CardTwentyOne Card = "21"
	CardQuestion  Card = "?"
	CardCoffee    Card = "☕"

	// NoVote marks a player who has not cast, or has cleared, a vote.
	NoVote Card = ""
)

var deck = map[Card]struct{}{
	CardZero:      {},
	CardOne:       {},
	CardTwo:       {},
	CardThree:     {},
	CardFive:      {},
	CardEight:     {},
	CardThirteen:  {},
	CardTwentyOne: {},
	CardQuestion:  {},
	CardCoffee:    {},
}

// Valid reports whether c is a deck value or the cleared vote.
func (c Card) Valid() bool {
	if c == NoVote {
		return true
	}
	_, ok := deck[c]
	return ok
}

// Numeric returns the card's numeric value for averaging.
// ok is false for NoVote, "?" and "☕".
func (c Card) Numeric() (float64, bool) {
	switch c {
	case CardZero:
		return 0, true
	case CardOne:
		return 1, true
	case CardTwo:
		return 2, true
	case CardThree:
		return 3, true
	case CardFive:
		return 5, true
	case CardEight:
		return 8, true
	case CardThirteen:
		return 13, true
	case CardTwentyOne:
		return 21, true
	default:
		return 0, false
	}
}
