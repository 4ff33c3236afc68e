package deck

import (
	"errors"
	"fmt"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// InvalidCardError is returned when a card's rank or suit is out of range
type InvalidCardError struct {
	Rank  int
	Suit  int
	Input string
}

func (i *InvalidCardError) Error() string {
	if i.Input != "" && i.Rank == 0 && i.Suit == 0 {
		return fmt.Sprintf("invalid card %q", i.Input)
	}

	return fmt.Sprintf("invalid card: rank %d must be in 2-14 and suit %d must be in 1-4", i.Rank, i.Suit)
}

// DuplicateCardError is returned when the same card appears twice in one set
type DuplicateCardError struct {
	Card Card
}

func (d *DuplicateCardError) Error() string {
	return fmt.Sprintf("duplicate card %s (%d)", d.Card, d.Card.ID())
}
