package poker

import "fmt"

// InsufficientCardsError is an error on the number of cards offered for evaluation
type InsufficientCardsError struct {
	Min int
	Max int
	Got int
}

func (i *InsufficientCardsError) Error() string {
	if i.Min == i.Max {
		return fmt.Sprintf("expected %d cards, got %d", i.Min, i.Got)
	}

	return fmt.Sprintf("expected %d-%d cards, got %d", i.Min, i.Max, i.Got)
}
