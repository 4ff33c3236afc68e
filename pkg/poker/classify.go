package poker

import (
	"fmt"
	"sort"
	"strings"

	"pokermind/pkg/deck"
)

const handSize = 5

// EvaluatedHand is the result of classifying exactly five cards
type EvaluatedHand struct {
	Category Category `json:"category"`

	// Tiebreak holds the five ranks, most significant first
	Tiebreak []int `json:"tiebreak"`

	// Cards are the five contributing cards, in the same order as Tiebreak
	Cards deck.Hand `json:"cards"`
}

func (h EvaluatedHand) String() string {
	cards := make([]string, len(h.Cards))
	for i, c := range h.Cards {
		cards[i] = c.String()
	}

	return fmt.Sprintf("%s [%s]", h.Category, strings.Join(cards, " "))
}

// Classify classifies exactly five cards
func Classify(cards deck.Hand) (EvaluatedHand, error) {
	if len(cards) != handSize {
		return EvaluatedHand{}, &InsufficientCardsError{Min: handSize, Max: handSize, Got: len(cards)}
	}

	if err := cards.Validate(); err != nil {
		return EvaluatedHand{}, err
	}

	return classify(cards), nil
}

// classify expects five valid, distinct cards and does not retain the slice
func classify(cards deck.Hand) EvaluatedHand {
	counts := make(map[int]int, handSize)
	suits := make(map[deck.Suit]struct{}, 4)
	for _, c := range cards {
		counts[c.Rank]++
		suits[c.Suit] = struct{}{}
	}

	// grouped cards first (quads, trips, pairs), then by rank
	ordered := cards.Clone()
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if counts[a.Rank] != counts[b.Rank] {
			return counts[a.Rank] > counts[b.Rank]
		}

		if a.Rank != b.Rank {
			return a.Rank > b.Rank
		}

		return a.Suit < b.Suit
	})

	tiebreak := ordered.Ranks()

	isFlush := len(suits) == 1
	isStraight := len(counts) == handSize && tiebreak[0]-tiebreak[handSize-1] == 4

	if isWheel(counts) {
		isStraight = true

		// the ace plays low
		wheel := make(deck.Hand, 0, handSize)
		wheel = append(wheel, ordered[1:]...)
		ordered = append(wheel, ordered[0])
		tiebreak = []int{5, 4, 3, 2, deck.LowAce}
	}

	return EvaluatedHand{
		Category: categorize(isFlush, isStraight, counts, tiebreak),
		Tiebreak: tiebreak,
		Cards:    ordered,
	}
}

func isWheel(counts map[int]int) bool {
	if len(counts) != handSize {
		return false
	}

	for _, rank := range []int{deck.Ace, 2, 3, 4, 5} {
		if counts[rank] == 0 {
			return false
		}
	}

	return true
}

// categorize applies the category ladder; the first matching rule wins
func categorize(isFlush, isStraight bool, counts map[int]int, tiebreak []int) Category {
	var quads, trips, pairs int
	for _, n := range counts {
		switch n {
		case 4:
			quads++
		case 3:
			trips++
		case 2:
			pairs++
		}
	}

	switch {
	case isFlush && isStraight && tiebreak[0] == deck.Ace && tiebreak[handSize-1] == deck.Ten:
		return RoyalFlush
	case isFlush && isStraight:
		return StraightFlush
	case quads > 0:
		return FourOfAKind
	case trips > 0 && pairs > 0:
		return FullHouse
	case isFlush:
		return Flush
	case isStraight:
		return Straight
	case trips > 0:
		return ThreeOfAKind
	case pairs == 2:
		return TwoPair
	case pairs == 1:
		return OnePair
	default:
		return HighCard
	}
}
