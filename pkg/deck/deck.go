package deck

import (
	"math/rand"
	"time"
)

// Deck represents a playing deck
type Deck struct {
	Cards []Card `json:"cards"`
	seed  int64
	rng   *rand.Rand
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	d := &Deck{
		seed: -1,
	}

	d.buildDeck()
	return d
}

// buildDeck lays the cards out suit by suit (♠ ♣ ♢ ♡), deuce to ace
func (d *Deck) buildDeck() {
	cards := make([]Card, 0, 52)
	for _, suit := range Suits {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
}

// Shuffle will shuffle the deck of cards
// You can manually specify the seed, or you can leave it as 0.
func (d *Deck) Shuffle(seed int64) {
	if seed < 0 {
		panic("seed cannot be < 0")
	}

	// we always want to shuffle from an unshuffled deck
	if len(d.Cards) != 52 || d.seed != -1 {
		d.buildDeck()
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	d.seed = seed
	d.rng = rand.New(rand.NewSource(seed))

	for j := len(d.Cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// GetSeed returns the seed used to shuffle the deck
func (d *Deck) GetSeed() int64 {
	return d.seed
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned along with a zero card.
func (d *Deck) Draw() (Card, error) {
	if len(d.Cards) <= 0 {
		return Card{}, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// DrawN draws n cards
func (d *Deck) DrawN(n int) (Hand, error) {
	if !d.CanDraw(n) {
		return nil, ErrEndOfDeck
	}

	cards := make(Hand, n)
	copy(cards, d.Cards[:n])
	d.Cards = d.Cards[n:]

	return cards, nil
}

// Remove takes the given cards out of the deck
func (d *Deck) Remove(cards ...Card) {
	if len(cards) == 0 {
		return
	}

	excluded := Hand(cards)
	remaining := make([]Card, 0, len(d.Cards))
	for _, c := range d.Cards {
		if !excluded.HasCard(c) {
			remaining = append(remaining, c)
		}
	}

	d.Cards = remaining
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// Remaining returns the unshuffled deck minus the excluded cards
func Remaining(excluded Hand) Hand {
	d := New()
	d.Remove(excluded...)

	return d.Cards
}
