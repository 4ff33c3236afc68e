package deck

// Hand represents a collection of cards
type Hand []Card

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card Card) bool {
	for _, c := range h {
		if c == card {
			return true
		}
	}

	return false
}

// Validate returns the first invalid or duplicated card as an error
func (h Hand) Validate() error {
	seen := make(map[Card]struct{}, len(h))
	for _, c := range h {
		if !c.Valid() {
			return &InvalidCardError{Rank: c.Rank, Suit: int(c.Suit)}
		}

		if _, ok := seen[c]; ok {
			return &DuplicateCardError{Card: c}
		}

		seen[c] = struct{}{}
	}

	return nil
}

// IDs returns the canonical identifiers of each card
func (h Hand) IDs() []int {
	ids := make([]int, len(h))
	for i, c := range h {
		ids[i] = c.ID()
	}

	return ids
}

// Ranks returns the rank of each card
func (h Hand) Ranks() []int {
	ranks := make([]int, len(h))
	for i, c := range h {
		ranks[i] = c.Rank
	}

	return ranks
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
