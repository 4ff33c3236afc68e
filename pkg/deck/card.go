package deck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Suit represents a card suit
type Suit int

// suit constants, numbered the way card identifiers encode them
const (
	Spades   Suit = 1
	Clubs    Suit = 2
	Diamonds Suit = 3
	Hearts   Suit = 4
)

// Suits lists every suit in identifier order
var Suits = []Suit{Spades, Clubs, Diamonds, Hearts}

// Valid returns true if the suit is one of the four suits
func (s Suit) Valid() bool {
	return s >= Spades && s <= Hearts
}

// String returns the suit glyph
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Clubs:
		return "♣"
	case Diamonds:
		return "♢"
	case Hearts:
		return "♡"
	default:
		return "?"
	}
}

// face cards
const (
	Two    = 2
	Ten    = 10
	Jack   = 11
	Queen  = 12
	King   = 13
	Ace    = 14
	LowAce = 1
)

// Card is an individual playing card.
// Two cards are equal iff rank and suit match, so Card is safe to compare with ==.
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

// NewCard returns a validated card
func NewCard(rank int, suit Suit) (Card, error) {
	c := Card{Rank: rank, Suit: suit}
	if !c.Valid() {
		return Card{}, &InvalidCardError{Rank: rank, Suit: int(suit)}
	}

	return c, nil
}

// Valid returns true if the rank is within 2..14 and the suit within 1..4
func (c Card) Valid() bool {
	return c.Rank >= Two && c.Rank <= Ace && c.Suit.Valid()
}

// ID returns the canonical identifier, rank*10 + suit (Ace of Spades is 141)
func (c Card) ID() int {
	return c.Rank*10 + int(c.Suit)
}

// ParseID decodes a canonical identifier
func ParseID(id int) (Card, error) {
	if id < 0 {
		return Card{}, &InvalidCardError{Rank: id / 10, Suit: id % 10, Input: strconv.Itoa(id)}
	}

	c := Card{Rank: id / 10, Suit: Suit(id % 10)}
	if !c.Valid() {
		return Card{}, &InvalidCardError{Rank: c.Rank, Suit: int(c.Suit), Input: strconv.Itoa(id)}
	}

	return c, nil
}

// AceLowRank return the rank where Ace is considered low instead of high
func (c Card) AceLowRank() int {
	if c.Rank == Ace {
		return LowAce
	}

	return c.Rank
}

// RankString returns the display rank (2-10, J, Q, K, A)
func RankString(rank int) string {
	switch rank {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace, LowAce:
		return "A"
	default:
		return strconv.Itoa(rank)
	}
}

func (c Card) String() string {
	return RankString(c.Rank) + c.Suit.String()
}

var idRx = regexp.MustCompile(`^([0-9]{1,2})([0-9])\z`)
var letterRx = regexp.MustCompile(`(?i)^([0-9]{1,2}|[tjqka])([shdc])\z`)

// CardFromString returns a Card from the string.
// The string is either a canonical identifier (141) or <rank><suit> where rank is
// 2-14 or one of T,J,Q,K,A and suit is one of [shdc] (14s, As, Td).
func CardFromString(s string) (Card, error) {
	s = strings.TrimSpace(s)

	if match := idRx.FindStringSubmatch(s); match != nil {
		rank, _ := strconv.Atoi(match[1])
		suit, _ := strconv.Atoi(match[2])
		c := Card{Rank: rank, Suit: Suit(suit)}
		if !c.Valid() {
			return Card{}, &InvalidCardError{Rank: rank, Suit: suit, Input: s}
		}

		return c, nil
	}

	match := letterRx.FindStringSubmatch(s)
	if match == nil {
		return Card{}, &InvalidCardError{Input: s}
	}

	var rank int
	switch strings.ToUpper(match[1]) {
	case "T":
		rank = Ten
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	case "A":
		rank = Ace
	default:
		rank, _ = strconv.Atoi(match[1])
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "s":
		suit = Spades
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	}

	c := Card{Rank: rank, Suit: suit}
	if !c.Valid() {
		return Card{}, &InvalidCardError{Rank: rank, Suit: int(suit), Input: s}
	}

	return c, nil
}

// MustCardFromString is like CardFromString but panics on error.
// Only use it with literals.
func MustCardFromString(s string) Card {
	c, err := CardFromString(s)
	if err != nil {
		panic(fmt.Sprintf("could not parse card: %v", err))
	}

	return c
}

// CardsFromString parses a comma separated list of cards
func CardsFromString(s string) (Hand, error) {
	if strings.TrimSpace(s) == "" {
		return Hand{}, nil
	}

	parts := strings.Split(s, ",")
	cards := make(Hand, len(parts))
	for i, part := range parts {
		c, err := CardFromString(part)
		if err != nil {
			return nil, err
		}

		cards[i] = c
	}

	return cards, nil
}

// MustCardsFromString is like CardsFromString but panics on error
func MustCardsFromString(s string) Hand {
	cards, err := CardsFromString(s)
	if err != nil {
		panic(fmt.Sprintf("could not parse cards: %v", err))
	}

	return cards
}

// CardsFromIDs decodes a slice of canonical identifiers
func CardsFromIDs(ids []int) (Hand, error) {
	cards := make(Hand, len(ids))
	for i, id := range ids {
		c, err := ParseID(id)
		if err != nil {
			return nil, err
		}

		cards[i] = c
	}

	return cards, nil
}

// CardsToString will convert a slice of cards to a string in the format of 141,22,133,...
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = strconv.Itoa(card.ID())
	}

	return strings.Join(c, ",")
}
