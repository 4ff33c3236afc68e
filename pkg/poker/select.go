package poker

import (
	"pokermind/pkg/deck"
)

// bounds on the number of cards SelectBest accepts
const (
	MinCards = 5
	MaxCards = 7
)

// SelectBest finds the strongest five-card hand that can be made from 5-7 cards.
// Every five-card subset is classified and folded with Compare; when several
// subsets draw, the first one enumerated is returned.
func SelectBest(cards deck.Hand) (EvaluatedHand, error) {
	if len(cards) < MinCards || len(cards) > MaxCards {
		return EvaluatedHand{}, &InsufficientCardsError{Min: MinCards, Max: MaxCards, Got: len(cards)}
	}

	if err := cards.Validate(); err != nil {
		return EvaluatedHand{}, err
	}

	var best EvaluatedHand
	found := false

	subset := make(deck.Hand, handSize)
	for _, combo := range Combinations(len(cards), handSize) {
		for i, idx := range combo {
			subset[i] = cards[idx]
		}

		hand := classify(subset)
		if !found || Compare(hand, best) > 0 {
			best = hand
			found = true
		}
	}

	return best, nil
}
