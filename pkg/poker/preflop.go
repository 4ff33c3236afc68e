package poker

import (
	"fmt"

	"pokermind/pkg/deck"
)

// PreflopCategory is the shape of a two-card starting hand
type PreflopCategory int

// Constants for preflop category
const (
	Offsuit PreflopCategory = iota
	Suited
	Pair
)

func (p PreflopCategory) String() string {
	switch p {
	case Offsuit:
		return "Offsuit"
	case Suited:
		return "Suited"
	case Pair:
		return "Pair"
	default:
		return fmt.Sprintf("PreflopCategory(%d)", int(p))
	}
}

// ClassifyPreflop classifies two hole cards as a pair, suited or offsuit
func ClassifyPreflop(a, b deck.Card) (PreflopCategory, error) {
	if err := (deck.Hand{a, b}).Validate(); err != nil {
		return Offsuit, err
	}

	switch {
	case a.Rank == b.Rank:
		return Pair, nil
	case a.Suit == b.Suit:
		return Suited, nil
	default:
		return Offsuit, nil
	}
}
