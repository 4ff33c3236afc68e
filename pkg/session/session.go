package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"pokermind/pkg/deck"
	"pokermind/pkg/poker"
)

// constants for the table size
const (
	MinOpponents = 1
	MaxOpponents = 8

	holeCards      = 2
	communityCards = 5
)

// Session is a single hand being entered: two hole cards, the number of
// opponents, and the community cards as they are revealed
type Session struct {
	ID        uuid.UUID
	Opponents int
	CreatedAt time.Time

	hole      deck.Hand
	community deck.Hand
	logger    logrus.FieldLogger

	mu sync.RWMutex
}

// New returns a new session for the hole cards
func New(logger logrus.FieldLogger, hole deck.Hand, opponents int) (*Session, error) {
	if len(hole) != holeCards {
		return nil, &poker.InsufficientCardsError{Min: holeCards, Max: holeCards, Got: len(hole)}
	}

	if err := hole.Validate(); err != nil {
		return nil, err
	}

	if opponents < MinOpponents || opponents > MaxOpponents {
		return nil, ErrInvalidOpponents
	}

	id := uuid.New()

	s := &Session{
		ID:        id,
		Opponents: opponents,
		CreatedAt: time.Now(),
		hole:      hole.Clone(),
		community: make(deck.Hand, 0, communityCards),
		logger:    logger.WithField("session", id.String()),
	}

	s.logger.WithFields(logrus.Fields{
		"hole":      s.hole.String(),
		"opponents": opponents,
	}).Debug("session created")

	return s, nil
}

// Hole returns a copy of the hole cards
func (s *Session) Hole() deck.Hand {
	return s.hole.Clone()
}

// Community returns a copy of the community cards revealed so far
func (s *Session) Community() deck.Hand {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.community.Clone()
}

// AddCommunity reveals one or more community cards. Nothing is added if any
// card is invalid or already in use.
func (s *Session) AddCommunity(cards ...deck.Card) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.community)+len(cards) > communityCards {
		return ErrBoardFull
	}

	used := s.cardsLocked()
	for _, c := range cards {
		if !c.Valid() {
			return &deck.InvalidCardError{Rank: c.Rank, Suit: int(c.Suit)}
		}

		if used.HasCard(c) {
			return &deck.DuplicateCardError{Card: c}
		}

		used = append(used, c)
	}

	before := streetFor(len(s.community))
	s.community = append(s.community, cards...)

	if after := streetFor(len(s.community)); after != before {
		s.logger.WithFields(logrus.Fields{
			"street":    after.String(),
			"community": s.community.String(),
		}).Debug("street dealt")
	}

	return nil
}

// Street returns the current street
func (s *Session) Street() Street {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return streetFor(len(s.community))
}

// Preflop classifies the hole cards
func (s *Session) Preflop() poker.PreflopCategory {
	// hole cards were validated in New
	category, _ := poker.ClassifyPreflop(s.hole[0], s.hole[1])
	return category
}

// Best returns the best five-card hand from the hole and community cards
func (s *Session) Best() (poker.EvaluatedHand, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.community) < Flop.communityCards() {
		return poker.EvaluatedHand{}, ErrNotEnoughCommunity
	}

	return poker.SelectBest(s.cardsLocked())
}

// StreetResult is the best hand available on a street
type StreetResult struct {
	Street Street              `json:"street"`
	Best   poker.EvaluatedHand `json:"best"`
}

// Streets returns the best hand after each street dealt so far, starting with the flop
func (s *Session) Streets() ([]StreetResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]StreetResult, 0, 3)
	for _, street := range []Street{Flop, Turn, River} {
		n := street.communityCards()
		if len(s.community) < n {
			break
		}

		cards := append(s.hole.Clone(), s.community[:n]...)
		best, err := poker.SelectBest(cards)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", street, err)
		}

		results = append(results, StreetResult{Street: street, Best: best})
	}

	return results, nil
}

// Available returns every card not yet used by the session, in deck order
func (s *Session) Available() deck.Hand {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return deck.Remaining(s.cardsLocked())
}

// Cards returns the hole cards followed by the community cards
func (s *Session) Cards() deck.Hand {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.cardsLocked()
}

func (s *Session) cardsLocked() deck.Hand {
	cards := make(deck.Hand, 0, len(s.hole)+len(s.community))
	cards = append(cards, s.hole...)
	return append(cards, s.community...)
}
